package handler

import (
	"net/http"

	"github.com/curioboard/curio/internal/catalog"
	"github.com/curioboard/curio/internal/domain"
	"github.com/curioboard/curio/internal/drop"
)

// AdminHandler serves the administrative minting endpoints: defining new
// catalog items and granting drops outside the eligibility flow.
type AdminHandler struct {
	catalog catalog.Service
	drops   drop.Service
}

func NewAdminHandler(cat catalog.Service, drops drop.Service) *AdminHandler {
	return &AdminHandler{catalog: cat, drops: drops}
}

type CreateItemRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=64"`
	Description string   `json:"description" validate:"max=500"`
	Available   bool     `json:"available"`
	Rarity      string   `json:"rarity" validate:"required,oneof=COMMON UNCOMMON RARE ULTRA_RARE LEGENDARY UNIQUE"`
	Kind        string   `json:"kind" validate:"required,oneof=USELESS AVATAR BACKGROUND REACTION BADGE"`
	Image       string   `json:"image" validate:"max=256"`
	Colors      []string `json:"colors" validate:"max=8,dive,hexcolor"`
	XPValue     int      `json:"xp_value"`
	BadgeText   string   `json:"badge_text" validate:"max=32"`
}

func (h *AdminHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
		return
	}

	item := &domain.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		Rarity:      domain.Rarity(req.Rarity),
		Kind:        domain.ItemKind(req.Kind),
		Image:       req.Image,
		Colors:      req.Colors,
		XPValue:     req.XPValue,
		BadgeText:   req.BadgeText,
	}
	if err := h.catalog.CreateItem(r.Context(), item); err != nil {
		respondServiceError(w, r, ErrMsgCreateItemFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

type MintDropRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	ItemID int    `json:"item_id" validate:"required,min=1"`
}

func (h *AdminHandler) HandleMintDrop(w http.ResponseWriter, r *http.Request) {
	var req MintDropRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Mint drop"); err != nil {
		return
	}

	minted, err := h.drops.MintDrop(r.Context(), req.UserID, req.ItemID)
	if err != nil {
		respondServiceError(w, r, ErrMsgMintDropFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, minted)
}
