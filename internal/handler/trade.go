package handler

import (
	"net/http"

	"github.com/curioboard/curio/internal/domain"
	"github.com/curioboard/curio/internal/trade"
)

type TradeHandler struct {
	service trade.Service
}

func NewTradeHandler(service trade.Service) *TradeHandler {
	return &TradeHandler{service: service}
}

type ProposeTradeRequest struct {
	SenderID      string   `json:"sender_id" validate:"required,uuid"`
	SenderItems   []string `json:"sender_items" validate:"dive,uuid"`
	ReceiverID    string   `json:"receiver_id" validate:"required,uuid"`
	ReceiverItems []string `json:"receiver_items" validate:"dive,uuid"`
	Note          string   `json:"note" validate:"max=500"`
}

func (h *TradeHandler) HandleProposeTrade(w http.ResponseWriter, r *http.Request) {
	var req ProposeTradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Propose trade"); err != nil {
		return
	}

	proposed, err := h.service.Propose(r.Context(), &domain.TradeRequest{
		SenderID:      req.SenderID,
		SenderItems:   req.SenderItems,
		ReceiverID:    req.ReceiverID,
		ReceiverItems: req.ReceiverItems,
		Note:          req.Note,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgProposeTradeFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, proposed)
}

type TradeActionRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

func (h *TradeHandler) HandleAcceptTrade(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := GetQueryParam(r, w, "id")
	if !ok {
		return
	}

	var req TradeActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Accept trade"); err != nil {
		return
	}

	if err := h.service.Accept(r.Context(), tradeID, req.UserID); err != nil {
		respondServiceError(w, r, ErrMsgAcceptTradeFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTradeAcceptedSuccess})
}

func (h *TradeHandler) HandleDeclineTrade(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := GetQueryParam(r, w, "id")
	if !ok {
		return
	}

	var req TradeActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Decline trade"); err != nil {
		return
	}

	if err := h.service.Decline(r.Context(), tradeID, req.UserID); err != nil {
		respondServiceError(w, r, ErrMsgDeclineTradeFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTradeDeclinedSuccess})
}

func (h *TradeHandler) HandleListTrades(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	trades, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgListTradesFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: trades})
}
