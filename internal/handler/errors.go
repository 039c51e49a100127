package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Drop operation error messages
	ErrMsgAttemptDropFailed = "Failed to attempt drop"
	ErrMsgMintDropFailed    = "Failed to mint drop"

	// Equip operation error messages
	ErrMsgEquipFailed   = "Failed to equip item"
	ErrMsgUnequipFailed = "Failed to unequip item"

	// Trade operation error messages
	ErrMsgProposeTradeFailed = "Failed to propose trade"
	ErrMsgAcceptTradeFailed  = "Failed to accept trade"
	ErrMsgDeclineTradeFailed = "Failed to decline trade"
	ErrMsgListTradesFailed   = "Failed to list trades"
	ErrMsgTradeNotFoundHTTP  = "Trade not found"

	// Reaction operation error messages
	ErrMsgConsumeReactionFailed = "Failed to consume reaction"

	// User management error messages
	ErrMsgRegisterUserFailed = "Failed to register user"
	ErrMsgGetUserFailed      = "Failed to get user"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgUserNotFoundHTTP   = "user not found"

	// Admin error messages
	ErrMsgCreateItemFailed = "Failed to create item"
)

// Success messages for API responses
const (
	MsgUserRegisteredSuccess   = "User registered successfully"
	MsgItemEquippedSuccess     = "Item equipped successfully"
	MsgItemUnequippedSuccess   = "Item unequipped successfully"
	MsgTradeAcceptedSuccess    = "Trade accepted successfully"
	MsgTradeDeclinedSuccess    = "Trade declined successfully"
	MsgReactionConsumedSuccess = "Reaction added to post"
	MsgNoDropThisTime          = "No drop this time"
)
