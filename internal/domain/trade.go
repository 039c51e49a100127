package domain

import "time"

// TradeRequest is a proposal to exchange sets of drops between two users.
// It is only a proposal: it holds no lock on the referenced drops, so by
// the time it is accepted any listed drop may have changed owner. The
// settlement step detects that with predicated transfers and aborts.
type TradeRequest struct {
	ID            string    `json:"trade_id" db:"trade_id"`
	SenderID      string    `json:"sender_id" db:"sender_id"`
	SenderItems   []string  `json:"sender_items" db:"sender_items"`
	ReceiverID    string    `json:"receiver_id" db:"receiver_id"`
	ReceiverItems []string  `json:"receiver_items" db:"receiver_items"`
	Note          string    `json:"note,omitempty" db:"note"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Involves reports whether userID is a party to the trade.
func (t *TradeRequest) Involves(userID string) bool {
	return t.SenderID == userID || t.ReceiverID == userID
}
