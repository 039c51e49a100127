package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/curioboard/curio/internal/domain"
	"github.com/curioboard/curio/internal/repository"
)

// DropRepository implements the drop repository for PostgreSQL
type DropRepository struct {
	db *pgxpool.Pool
}

// NewDropRepository creates a new DropRepository
func NewDropRepository(db *pgxpool.Pool) *DropRepository {
	return &DropRepository{db: db}
}

// GetDropByID fetches one ownership record. Returns nil without error when
// no row exists.
func (r *DropRepository) GetDropByID(ctx context.Context, dropID string) (*domain.ItemDrop, error) {
	return getDrop(ctx, r.db, dropID)
}

// MintDrop inserts a drop outside the eligibility flow (admin path).
func (r *DropRepository) MintDrop(ctx context.Context, drop *domain.ItemDrop) error {
	return insertDrop(ctx, r.db, drop)
}

// BeginDropTx starts a drop issuance transaction.
func (r *DropRepository) BeginDropTx(ctx context.Context) (repository.DropTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &dropTx{tx: tx}, nil
}

type dropTx struct {
	tx pgx.Tx
}

func (t *dropTx) InsertDrop(ctx context.Context, drop *domain.ItemDrop) error {
	return insertDrop(ctx, t.tx, drop)
}

// AdvanceLastReward is the compare-and-swap guarding drop issuance: the
// predicate requires last_reward to still hold the value read before the
// transaction. Zero affected rows means a concurrent attempt won the
// window and the caller must roll back.
func (t *dropTx) AdvanceLastReward(ctx context.Context, userID string, prev, next time.Time) (bool, error) {
	query := `
		UPDATE users
		SET last_reward = $3
		WHERE user_id = $1 AND last_reward = $2
	`
	tag, err := t.tx.Exec(ctx, query, userID, prev, next)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToAdvanceReward, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (t *dropTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *dropTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// rowQuerier is the slice of pgxpool.Pool and pgx.Tx the shared row
// helpers need; pgx exports no common interface covering both.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getDrop(ctx context.Context, q rowQuerier, dropID string) (*domain.ItemDrop, error) {
	query := `
		SELECT drop_id, owner_id, item_id, pattern, consumed, created_at
		FROM drops
		WHERE drop_id = $1
	`
	var (
		drop    domain.ItemDrop
		pattern int
	)
	err := q.QueryRow(ctx, query, dropID).Scan(
		&drop.ID, &drop.OwnerID, &drop.ItemID, &pattern, &drop.Consumed, &drop.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDrop, err)
	}
	drop.Pattern = uint16(pattern)
	return &drop, nil
}

func insertDrop(ctx context.Context, q rowQuerier, drop *domain.ItemDrop) error {
	query := `
		INSERT INTO drops (owner_id, item_id, pattern)
		VALUES ($1, $2, $3)
		RETURNING drop_id, created_at
	`
	err := q.QueryRow(ctx, query, drop.OwnerID, drop.ItemID, int(drop.Pattern)).
		Scan(&drop.ID, &drop.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertDrop, err)
	}
	return nil
}
