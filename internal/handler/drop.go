package handler

import (
	"net/http"

	"github.com/curioboard/curio/internal/domain"
	"github.com/curioboard/curio/internal/drop"
)

type DropHandler struct {
	service drop.Service
}

func NewDropHandler(service drop.Service) *DropHandler {
	return &DropHandler{service: service}
}

type AttemptDropRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// AttemptDropResponse reports one issuance attempt. Issued is false for
// the routine non-error outcomes (window blocked, lost flip, empty tier).
type AttemptDropResponse struct {
	Issued  bool             `json:"issued"`
	Message string           `json:"message,omitempty"`
	Drop    *domain.ItemDrop `json:"drop,omitempty"`
}

func (h *DropHandler) HandleAttemptDrop(w http.ResponseWriter, r *http.Request) {
	var req AttemptDropRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Attempt drop"); err != nil {
		return
	}

	issued, err := h.service.AttemptDrop(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, ErrMsgAttemptDropFailed, err)
		return
	}
	if issued == nil {
		respondJSON(w, http.StatusOK, AttemptDropResponse{Issued: false, Message: MsgNoDropThisTime})
		return
	}

	respondJSON(w, http.StatusCreated, AttemptDropResponse{Issued: true, Drop: issued})
}
