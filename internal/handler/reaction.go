package handler

import (
	"net/http"

	"github.com/curioboard/curio/internal/reaction"
)

type ReactionHandler struct {
	service reaction.Service
}

func NewReactionHandler(service reaction.Service) *ReactionHandler {
	return &ReactionHandler{service: service}
}

type ConsumeReactionRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	DropID string `json:"drop_id" validate:"required,uuid"`
	PostID string `json:"post_id" validate:"required,uuid"`
}

func (h *ReactionHandler) HandleConsumeReaction(w http.ResponseWriter, r *http.Request) {
	var req ConsumeReactionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Consume reaction"); err != nil {
		return
	}

	if err := h.service.Consume(r.Context(), req.DropID, req.UserID, req.PostID); err != nil {
		respondServiceError(w, r, ErrMsgConsumeReactionFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgReactionConsumedSuccess})
}
