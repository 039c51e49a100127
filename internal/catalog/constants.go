package catalog

const (
	// ItemCacheSize bounds the per-id item cache. The catalog is small in
	// practice; this mostly guards against unbounded growth.
	ItemCacheSize = 1024
)

// Error context strings
const (
	ErrContextFailedToInitCache  = "failed to initialize item cache"
	ErrContextFailedToGetItem    = "failed to get item"
	ErrContextFailedToListItems  = "failed to list items by rarity"
	ErrContextFailedToCreateItem = "failed to create item"
)

// Log messages
const (
	LogMsgItemCreated = "Catalog item created"
)
