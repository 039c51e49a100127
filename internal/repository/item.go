package repository

import (
	"context"

	"github.com/curioboard/curio/internal/domain"
)

// Item defines catalog persistence operations. The catalog is read-mostly;
// InsertItem is the admin minting path.
type Item interface {
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
	ListAvailableByRarity(ctx context.Context, rarity domain.Rarity) ([]domain.Item, error)
	InsertItem(ctx context.Context, item *domain.Item) error
}
