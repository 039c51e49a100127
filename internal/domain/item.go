package domain

// Rarity represents the drop-probability tier of a catalog item.
// Tiers are totally ordered from most to least common; Unique items are
// never produced by the rarity roller and exist only through manual minting.
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityUltraRare Rarity = "ULTRA_RARE"
	RarityLegendary Rarity = "LEGENDARY"
	RarityUnique    Rarity = "UNIQUE"
)

// Rarities lists every tier the roller can produce, most common first.
// RarityUnique is intentionally absent.
var Rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityUltraRare,
	RarityLegendary,
}

// Valid reports whether r is a known rarity tier.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityUltraRare, RarityLegendary, RarityUnique:
		return true
	}
	return false
}

// ItemKind is the closed set of item type variants. The variant decides
// which payload fields of Item are meaningful and which equip slot (if any)
// the item binds to.
type ItemKind string

const (
	KindUseless    ItemKind = "USELESS"
	KindAvatar     ItemKind = "AVATAR"
	KindBackground ItemKind = "BACKGROUND"
	KindReaction   ItemKind = "REACTION"
	KindBadge      ItemKind = "BADGE"
)

// Valid reports whether k is a known item kind.
func (k ItemKind) Valid() bool {
	switch k {
	case KindUseless, KindAvatar, KindBackground, KindReaction, KindBadge:
		return true
	}
	return false
}

// Item represents a catalog item. Catalog rows are immutable once created
// by administrators; ownership is tracked separately via ItemDrop.
type Item struct {
	ID          int      `json:"item_id" db:"item_id"`
	Name        string   `json:"name" db:"item_name"`
	Description string   `json:"description" db:"item_description"`
	Available   bool     `json:"available" db:"available"`
	Rarity      Rarity   `json:"rarity" db:"rarity"`
	Kind        ItemKind `json:"kind" db:"kind"`

	// Variant payload. Which fields are set depends on Kind:
	// Avatar and Reaction use Image, Background uses Colors,
	// Reaction uses XPValue (may be negative), Badge uses BadgeText.
	Image     string   `json:"image,omitempty"`
	Colors    []string `json:"colors,omitempty"`
	XPValue   int      `json:"xp_value,omitempty"`
	BadgeText string   `json:"badge_text,omitempty"`
}

// Equipable reports whether the item can occupy an equip slot.
func (i *Item) Equipable() bool {
	switch i.Kind {
	case KindAvatar, KindBackground, KindBadge:
		return true
	}
	return false
}

// Consumable reports whether the item is spent on use.
func (i *Item) Consumable() bool {
	return i.Kind == KindReaction
}
