package handler

import (
	"net/http"

	"github.com/curioboard/curio/internal/equip"
)

type EquipHandler struct {
	service equip.Service
}

func NewEquipHandler(service equip.Service) *EquipHandler {
	return &EquipHandler{service: service}
}

type EquipRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	DropID string `json:"drop_id" validate:"required,uuid"`
}

func (h *EquipHandler) HandleEquip(w http.ResponseWriter, r *http.Request) {
	var req EquipRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Equip item"); err != nil {
		return
	}

	if err := h.service.Equip(r.Context(), req.UserID, req.DropID); err != nil {
		respondServiceError(w, r, ErrMsgEquipFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemEquippedSuccess})
}

func (h *EquipHandler) HandleUnequip(w http.ResponseWriter, r *http.Request) {
	var req EquipRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Unequip item"); err != nil {
		return
	}

	if err := h.service.Unequip(r.Context(), req.UserID, req.DropID); err != nil {
		respondServiceError(w, r, ErrMsgUnequipFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemUnequippedSuccess})
}
