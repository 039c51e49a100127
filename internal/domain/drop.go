package domain

import "time"

// ItemDrop is an ownership record binding one catalog item to one user.
// Identity alone defines equality of two drops; the same catalog item can
// be dropped to any number of users.
type ItemDrop struct {
	ID      string `json:"drop_id" db:"drop_id"`
	OwnerID string `json:"owner_id" db:"owner_id"`
	ItemID  int    `json:"item_id" db:"item_id"`

	// Pattern is an opaque per-drop random seed used for cosmetic
	// sub-variation when rendering. It has no gameplay semantics.
	Pattern uint16 `json:"pattern" db:"pattern"`

	// Consumed is meaningful only for Reaction items. Once set it is
	// never cleared; a consumed reaction remains transferable as an
	// object but can no longer be used to react.
	Consumed bool `json:"consumed" db:"consumed"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// InventoryEntry is a drop joined with its catalog item and equip state,
// as returned by inventory listings.
type InventoryEntry struct {
	Drop     ItemDrop `json:"drop"`
	Item     Item     `json:"item"`
	Equipped bool     `json:"equipped"`
}
