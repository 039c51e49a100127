package equip

// Error context strings
const (
	ErrContextFailedToGetUser = "failed to get user"
	ErrContextFailedToBeginTx = "failed to begin equip transaction"
	ErrContextFailedToGetDrop = "failed to get drop"
	ErrContextFailedToGetItem = "failed to get item"
	ErrContextFailedToSetSlot = "failed to set equip slot"
	ErrContextFailedToClear   = "failed to clear equip slot"
	ErrContextFailedToCommit  = "failed to commit equip transaction"
)

// Log messages
const (
	LogMsgEquipped   = "Item equipped"
	LogMsgUnequipped = "Item unequipped"
)

// Slot names for metrics
const (
	SlotAvatar     = "avatar"
	SlotBackground = "background"
	SlotBadge      = "badge"
	SlotAll        = "all"
)
