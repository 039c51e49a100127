package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/curioboard/curio/internal/domain"
	"github.com/curioboard/curio/internal/repository"
)

// EquipRepository implements the equip repository for PostgreSQL
type EquipRepository struct {
	*UserRepository
	db *pgxpool.Pool
}

// NewEquipRepository creates a new EquipRepository
func NewEquipRepository(db *pgxpool.Pool) *EquipRepository {
	return &EquipRepository{
		UserRepository: NewUserRepository(db),
		db:             db,
	}
}

// BeginEquipTx starts an equip mutation transaction.
func (r *EquipRepository) BeginEquipTx(ctx context.Context) (repository.EquipTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &equipTx{tx: tx}, nil
}

type equipTx struct {
	tx pgx.Tx
}

func (t *equipTx) GetDrop(ctx context.Context, dropID string) (*domain.ItemDrop, error) {
	return getDrop(ctx, t.tx, dropID)
}

func (t *equipTx) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	query := `
		SELECT item_id, item_name, item_description, available, rarity, kind, properties
		FROM items
		WHERE item_id = $1
	`
	item, err := scanItem(t.tx.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

func (t *equipTx) SetAvatar(ctx context.Context, userID, dropID string) error {
	return t.setSlot(ctx, `UPDATE users SET avatar_drop = $2 WHERE user_id = $1`, userID, dropID)
}

func (t *equipTx) SetBackground(ctx context.Context, userID, dropID string) error {
	return t.setSlot(ctx, `UPDATE users SET background_drop = $2 WHERE user_id = $1`, userID, dropID)
}

// AddBadge enforces the no-duplicate and capacity rules in the predicate
// itself; zero affected rows is the intended silent no-op.
func (t *equipTx) AddBadge(ctx context.Context, userID, dropID string) error {
	query := `
		UPDATE users
		SET badges = array_append(badges, $2::uuid)
		WHERE user_id = $1
		  AND NOT ($2::uuid = ANY(badges))
		  AND COALESCE(array_length(badges, 1), 0) < $3
	`
	if _, err := t.tx.Exec(ctx, query, userID, dropID, domain.MaxBadges); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUnequipDrop, err)
	}
	return nil
}

func (t *equipTx) ClearAvatar(ctx context.Context, userID, dropID string) error {
	return t.setSlot(ctx, `UPDATE users SET avatar_drop = NULL WHERE user_id = $1 AND avatar_drop = $2`, userID, dropID)
}

func (t *equipTx) ClearBackground(ctx context.Context, userID, dropID string) error {
	return t.setSlot(ctx, `UPDATE users SET background_drop = NULL WHERE user_id = $1 AND background_drop = $2`, userID, dropID)
}

func (t *equipTx) RemoveBadge(ctx context.Context, userID, dropID string) error {
	query := `
		UPDATE users
		SET badges = array_remove(badges, $2::uuid)
		WHERE user_id = $1 AND $2::uuid = ANY(badges)
	`
	if _, err := t.tx.Exec(ctx, query, userID, dropID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUnequipDrop, err)
	}
	return nil
}

func (t *equipTx) setSlot(ctx context.Context, query, userID, dropID string) error {
	if _, err := t.tx.Exec(ctx, query, userID, dropID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUnequipDrop, err)
	}
	return nil
}

func (t *equipTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *equipTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
