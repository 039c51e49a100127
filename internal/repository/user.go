package repository

import (
	"context"

	"github.com/curioboard/curio/internal/domain"
)

// User defines user persistence operations needed by the economy engine.
type User interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error)
}
