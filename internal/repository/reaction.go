package repository

import (
	"context"

	"github.com/curioboard/curio/internal/domain"
)

// Reaction defines persistence for reaction consumption.
type Reaction interface {
	GetDropByID(ctx context.Context, dropID string) (*domain.ItemDrop, error)
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
	GetPost(ctx context.Context, postID string) (*domain.Post, error)

	BeginReactionTx(ctx context.Context) (ReactionTx, error)
}

// ReactionTx scopes one reaction consumption: the consume flag flip, the
// post's reaction-list append, and the author's experience credit.
type ReactionTx interface {
	Tx

	// ConsumeDrop flips consumed from false to true with a predicated
	// update. False means zero rows matched: another consumption already
	// won the race.
	ConsumeDrop(ctx context.Context, dropID string) (bool, error)

	AppendPostReaction(ctx context.Context, postID, dropID string) error

	// CreditExperience adjusts the user's experience by delta (possibly
	// negative), clamping the stored total at zero.
	CreditExperience(ctx context.Context, userID string, delta int) error
}
