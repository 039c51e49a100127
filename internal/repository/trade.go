package repository

import (
	"context"

	"github.com/curioboard/curio/internal/domain"
)

// Trade defines trade-request persistence and the settlement transaction.
type Trade interface {
	InsertTradeRequest(ctx context.Context, trade *domain.TradeRequest) error
	GetTradeRequest(ctx context.Context, tradeID string) (*domain.TradeRequest, error)
	DeleteTradeRequest(ctx context.Context, tradeID string) error
	ListTradeRequestsForUser(ctx context.Context, userID string) ([]domain.TradeRequest, error)
	GetDropByID(ctx context.Context, dropID string) (*domain.ItemDrop, error)

	BeginTradeTx(ctx context.Context) (TradeTx, error)
}

// TradeTx scopes one trade settlement. Every transfer and the request-row
// delete commit or roll back as a unit.
type TradeTx interface {
	Tx

	// UnequipEverywhere clears the drop from any user's avatar,
	// background, or badge slots. Idempotent: clearing a slot the drop
	// does not occupy is a no-op.
	UnequipEverywhere(ctx context.Context, dropID string) error

	// TransferDrop is the predicated ownership update:
	// owner becomes "to" only while the row still reads "from". The
	// boolean reports whether a row was affected; false means the item
	// already moved and the settlement has lost the race.
	TransferDrop(ctx context.Context, dropID, from, to string) (bool, error)

	// GetDrop re-reads a drop inside the transaction for post-transfer
	// validation.
	GetDrop(ctx context.Context, dropID string) (*domain.ItemDrop, error)

	DeleteTradeRequest(ctx context.Context, tradeID string) error
}
