package repository

import (
	"context"
	"time"

	"github.com/curioboard/curio/internal/domain"
)

// Drop defines ownership-record persistence for drop issuance.
type Drop interface {
	GetDropByID(ctx context.Context, dropID string) (*domain.ItemDrop, error)

	// MintDrop inserts a drop outside the eligibility flow (admin path).
	MintDrop(ctx context.Context, drop *domain.ItemDrop) error

	BeginDropTx(ctx context.Context) (DropTx, error)
}

// DropTx scopes one drop issuance. The insert and the last_reward advance
// commit or roll back as a unit.
type DropTx interface {
	Tx

	InsertDrop(ctx context.Context, drop *domain.ItemDrop) error

	// AdvanceLastReward performs the compare-and-swap on the user's
	// last_reward column: the update only applies while the stored value
	// still equals prev. It returns false when zero rows matched, meaning
	// a concurrent attempt already advanced the window and this issuance
	// must be rolled back.
	AdvanceLastReward(ctx context.Context, userID string, prev, next time.Time) (bool, error)
}
