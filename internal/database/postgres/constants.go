package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"

	// PgErrorCodeForeignKeyViolation is raised when a referenced row is missing
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
)

// Error Messages - Row Operations
const (
	ErrMsgFailedToInsertUser    = "failed to insert user"
	ErrMsgFailedToGetUser       = "failed to get user"
	ErrMsgFailedToGetInventory  = "failed to get inventory"
	ErrMsgFailedToInsertItem    = "failed to insert item"
	ErrMsgFailedToGetItem       = "failed to get item"
	ErrMsgFailedToListItems     = "failed to list items"
	ErrMsgFailedToInsertDrop    = "failed to insert drop"
	ErrMsgFailedToGetDrop       = "failed to get drop"
	ErrMsgFailedToAdvanceReward = "failed to advance last reward"
	ErrMsgFailedToInsertTrade   = "failed to insert trade request"
	ErrMsgFailedToGetTrade      = "failed to get trade request"
	ErrMsgFailedToDeleteTrade   = "failed to delete trade request"
	ErrMsgFailedToListTrades    = "failed to list trade requests"
	ErrMsgFailedToTransferDrop  = "failed to transfer drop"
	ErrMsgFailedToUnequipDrop   = "failed to unequip drop"
	ErrMsgFailedToConsumeDrop   = "failed to consume drop"
	ErrMsgFailedToGetPost       = "failed to get post"
	ErrMsgFailedToAppendReact   = "failed to append post reaction"
	ErrMsgFailedToCreditXP      = "failed to credit experience"
)
