package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Item/drop errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgDropNotFound = "drop not found"
	ErrMsgNotYourItem  = "item does not belong to you"
	ErrMsgUnequipable  = "item cannot be equipped"

	// Trade errors
	ErrMsgTradeNotFound = "trade not found"
	ErrMsgNotYourTrade  = "trade does not involve you"
	ErrMsgTradeConflict = "conflicting trade already executed"
	ErrMsgInvalidTrade  = "invalid trade"

	// Reaction errors
	ErrMsgPostNotFound    = "post not found"
	ErrMsgNotAReaction    = "item is not a reaction"
	ErrMsgAlreadyConsumed = "reaction already consumed"
	ErrMsgOwnPost         = "cannot react to your own post"
	ErrMsgNotOwner        = "drop is not owned by the reacting user"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
//
// Policy rejections (user-facing, expected under normal operation) are all
// expressed as sentinel errors here; store and transport failures are wrapped
// driver errors and never one of these.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Item/drop errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrDropNotFound = errors.New(ErrMsgDropNotFound)
	ErrNotYourItem  = errors.New(ErrMsgNotYourItem)
	ErrUnequipable  = errors.New(ErrMsgUnequipable)

	// Trade errors
	ErrTradeNotFound = errors.New(ErrMsgTradeNotFound)
	ErrNotYourTrade  = errors.New(ErrMsgNotYourTrade)
	ErrTradeConflict = errors.New(ErrMsgTradeConflict)
	ErrInvalidTrade  = errors.New(ErrMsgInvalidTrade)

	// Reaction errors
	ErrPostNotFound    = errors.New(ErrMsgPostNotFound)
	ErrNotAReaction    = errors.New(ErrMsgNotAReaction)
	ErrAlreadyConsumed = errors.New(ErrMsgAlreadyConsumed)
	ErrOwnPost         = errors.New(ErrMsgOwnPost)
	ErrNotOwner        = errors.New(ErrMsgNotOwner)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
