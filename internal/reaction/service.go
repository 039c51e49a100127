package reaction

import (
	"context"
	"fmt"

	"github.com/curioboard/curio/internal/domain"
	"github.com/curioboard/curio/internal/event"
	"github.com/curioboard/curio/internal/logger"
	"github.com/curioboard/curio/internal/metrics"
	"github.com/curioboard/curio/internal/repository"
)

// Service defines the interface for reaction consumption
type Service interface {
	// Consume spends the reaction drop on a post. Exactly one consumption
	// can succeed per drop; a lost race surfaces as ErrAlreadyConsumed.
	// The post author is credited the item's experience value, which may
	// be negative but never pushes the stored total below zero.
	Consume(ctx context.Context, dropID, userID, postID string) error
}

type service struct {
	repo     repository.Reaction
	eventBus event.Bus
}

// NewService creates a new reaction service
func NewService(repo repository.Reaction, eventBus event.Bus) Service {
	return &service{repo: repo, eventBus: eventBus}
}

func (s *service) Consume(ctx context.Context, dropID, userID, postID string) error {
	post, err := s.repo.GetPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetPost, err)
	}
	if post == nil {
		return domain.ErrPostNotFound
	}
	if post.AuthorID == userID {
		return domain.ErrOwnPost
	}

	drop, err := s.repo.GetDropByID(ctx, dropID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetDrop, err)
	}
	if drop == nil {
		return domain.ErrDropNotFound
	}
	if drop.OwnerID != userID {
		return domain.ErrNotOwner
	}

	item, err := s.repo.GetItemByID(ctx, drop.ItemID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetItem, err)
	}
	if item == nil {
		return fmt.Errorf("drop %s references missing catalog item %d", dropID, drop.ItemID)
	}
	if !item.Consumable() {
		return domain.ErrNotAReaction
	}

	tx, err := s.repo.BeginReactionTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// The predicated update is the authoritative guard: of any number of
	// concurrent consumption attempts, exactly one flips the flag.
	consumed, err := tx.ConsumeDrop(ctx, dropID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToConsume, err)
	}
	if !consumed {
		return domain.ErrAlreadyConsumed
	}

	if err := tx.AppendPostReaction(ctx, postID, dropID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToAppend, err)
	}
	if err := tx.CreditExperience(ctx, post.AuthorID, item.XPValue); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCredit, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	metrics.ReactionsConsumed.Inc()
	if item.XPValue > 0 {
		metrics.ExperienceGranted.Add(float64(item.XPValue))
	}
	logger.FromContext(ctx).Info(LogMsgReactionConsumed,
		"drop_id", dropID, "post_id", postID, "reactor_id", userID,
		"author_id", post.AuthorID, "xp_value", item.XPValue)

	if err := s.eventBus.Publish(ctx, event.NewReactionConsumedEvent(dropID, postID, userID, post.AuthorID, item.XPValue)); err != nil {
		logger.FromContext(ctx).Error(LogMsgEventPublishFailed, "error", err, "drop_id", dropID)
	}
	return nil
}
