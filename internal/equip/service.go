package equip

import (
	"context"
	"fmt"

	"github.com/curioboard/curio/internal/domain"
	"github.com/curioboard/curio/internal/logger"
	"github.com/curioboard/curio/internal/metrics"
	"github.com/curioboard/curio/internal/repository"
)

// Service defines the interface for equip slot operations
type Service interface {
	// Equip places the drop into the slot its item kind binds to.
	// Avatars and backgrounds displace whatever held the slot; badges
	// append, silently doing nothing when already worn or at capacity.
	Equip(ctx context.Context, userID, dropID string) error

	// Unequip clears the drop from every slot that holds it. Clearing a
	// drop that is not equipped is a no-op, so the operation is idempotent.
	Unequip(ctx context.Context, userID, dropID string) error
}

type service struct {
	repo repository.Equip
}

// NewService creates a new equip service
func NewService(repo repository.Equip) Service {
	return &service{repo: repo}
}

func (s *service) Equip(ctx context.Context, userID, dropID string) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	tx, err := s.repo.BeginEquipTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	drop, err := tx.GetDrop(ctx, dropID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetDrop, err)
	}
	if drop == nil {
		return domain.ErrDropNotFound
	}
	if drop.OwnerID != userID {
		return domain.ErrNotYourItem
	}

	item, err := tx.GetItem(ctx, drop.ItemID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetItem, err)
	}
	if item == nil {
		return fmt.Errorf("drop %s references missing catalog item %d", dropID, drop.ItemID)
	}

	var slot string
	switch item.Kind {
	case domain.KindAvatar:
		slot = SlotAvatar
		err = tx.SetAvatar(ctx, userID, dropID)
	case domain.KindBackground:
		slot = SlotBackground
		err = tx.SetBackground(ctx, userID, dropID)
	case domain.KindBadge:
		slot = SlotBadge
		err = tx.AddBadge(ctx, userID, dropID)
	default:
		return domain.ErrUnequipable
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSetSlot, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	metrics.EquipOperations.WithLabelValues(metrics.OperationEquip, slot).Inc()
	logger.FromContext(ctx).Info(LogMsgEquipped,
		"user_id", userID, "drop_id", dropID, "slot", slot)
	return nil
}

func (s *service) Unequip(ctx context.Context, userID, dropID string) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	tx, err := s.repo.BeginEquipTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Each clear is predicated on the slot holding exactly this drop, so
	// there is no need to look up the item kind first.
	if err := tx.ClearAvatar(ctx, userID, dropID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToClear, err)
	}
	if err := tx.ClearBackground(ctx, userID, dropID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToClear, err)
	}
	if err := tx.RemoveBadge(ctx, userID, dropID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToClear, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	metrics.EquipOperations.WithLabelValues(metrics.OperationUnequip, SlotAll).Inc()
	logger.FromContext(ctx).Info(LogMsgUnequipped, "user_id", userID, "drop_id", dropID)
	return nil
}
