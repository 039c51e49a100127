package repository

import (
	"context"

	"github.com/curioboard/curio/internal/domain"
)

// Equip defines persistence for equip slot mutations.
type Equip interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	BeginEquipTx(ctx context.Context) (EquipTx, error)
}

// EquipTx scopes one equip or unequip operation. The drop is re-read
// inside the transaction so the ownership check and the slot write cannot
// straddle an ownership change.
type EquipTx interface {
	Tx

	GetDrop(ctx context.Context, dropID string) (*domain.ItemDrop, error)
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)

	SetAvatar(ctx context.Context, userID, dropID string) error
	SetBackground(ctx context.Context, userID, dropID string) error

	// AddBadge appends the drop to the badge list only while it is absent
	// and capacity remains; otherwise it silently does nothing.
	AddBadge(ctx context.Context, userID, dropID string) error

	// The clear operations are predicated on the slot currently holding
	// exactly this drop and are therefore idempotent.
	ClearAvatar(ctx context.Context, userID, dropID string) error
	ClearBackground(ctx context.Context, userID, dropID string) error
	RemoveBadge(ctx context.Context, userID, dropID string) error
}
