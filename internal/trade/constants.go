package trade

// Error context strings
const (
	ErrContextFailedToGetUser    = "failed to get user"
	ErrContextFailedToGetDrop    = "failed to get drop"
	ErrContextFailedToInsert     = "failed to insert trade request"
	ErrContextFailedToGetTrade   = "failed to get trade request"
	ErrContextFailedToDelete     = "failed to delete trade request"
	ErrContextFailedToList       = "failed to list trade requests"
	ErrContextFailedToBeginTx    = "failed to begin trade transaction"
	ErrContextFailedToUnequip    = "failed to unequip transferred drop"
	ErrContextFailedToTransfer   = "failed to transfer drop"
	ErrContextFailedToRevalidate = "failed to revalidate transferred drop"
	ErrContextFailedToCommit     = "failed to commit trade transaction"
)

// Log messages
const (
	LogMsgTradeProposed      = "Trade proposed"
	LogMsgTradeSettled       = "Trade settled"
	LogMsgTradeDeclined      = "Trade declined"
	LogMsgTradeConflict      = "Trade settlement aborted on conflict"
	LogMsgEventPublishFailed = "Failed to publish trade event"
)
