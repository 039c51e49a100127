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

// TradeRepository implements the trade repository for PostgreSQL
type TradeRepository struct {
	*DropRepository
	db *pgxpool.Pool
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(db *pgxpool.Pool) *TradeRepository {
	return &TradeRepository{
		DropRepository: NewDropRepository(db),
		db:             db,
	}
}

// InsertTradeRequest persists a proposal. No locks are taken on the
// referenced drops.
func (r *TradeRepository) InsertTradeRequest(ctx context.Context, trade *domain.TradeRequest) error {
	query := `
		INSERT INTO trade_requests (sender_id, sender_items, receiver_id, receiver_items, note)
		VALUES ($1, $2::uuid[], $3, $4::uuid[], $5)
		RETURNING trade_id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		trade.SenderID, trade.SenderItems, trade.ReceiverID, trade.ReceiverItems, trade.Note,
	).Scan(&trade.ID, &trade.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertTrade, err)
	}
	return nil
}

// GetTradeRequest fetches a pending proposal. Returns nil without error
// when no row exists (already settled, declined, or never proposed).
func (r *TradeRepository) GetTradeRequest(ctx context.Context, tradeID string) (*domain.TradeRequest, error) {
	query := `
		SELECT trade_id, sender_id, sender_items, receiver_id, receiver_items, note, created_at
		FROM trade_requests
		WHERE trade_id = $1
	`
	trade, err := scanTrade(r.db.QueryRow(ctx, query, tradeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTrade, err)
	}
	return trade, nil
}

// DeleteTradeRequest removes a proposal row (decline path).
func (r *TradeRepository) DeleteTradeRequest(ctx context.Context, tradeID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM trade_requests WHERE trade_id = $1`, tradeID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteTrade, err)
	}
	return nil
}

// ListTradeRequestsForUser returns every pending proposal the user is a
// party to, oldest first.
func (r *TradeRepository) ListTradeRequestsForUser(ctx context.Context, userID string) ([]domain.TradeRequest, error) {
	query := `
		SELECT trade_id, sender_id, sender_items, receiver_id, receiver_items, note, created_at
		FROM trade_requests
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at, trade_id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTrades, err)
	}
	defer rows.Close()

	var trades []domain.TradeRequest
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTrades, err)
		}
		trades = append(trades, *trade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTrades, err)
	}
	return trades, nil
}

// BeginTradeTx starts a settlement transaction.
func (r *TradeRepository) BeginTradeTx(ctx context.Context) (repository.TradeTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &tradeTx{tx: tx}, nil
}

type tradeTx struct {
	tx pgx.Tx
}

// UnequipEverywhere clears the drop from every slot of every user. Each
// update is predicated on the slot actually holding the drop, so the call
// is idempotent and a no-op for unequipped drops.
func (t *tradeTx) UnequipEverywhere(ctx context.Context, dropID string) error {
	statements := []string{
		`UPDATE users SET avatar_drop = NULL WHERE avatar_drop = $1`,
		`UPDATE users SET background_drop = NULL WHERE background_drop = $1`,
		`UPDATE users SET badges = array_remove(badges, $1::uuid) WHERE $1::uuid = ANY(badges)`,
	}
	for _, stmt := range statements {
		if _, err := t.tx.Exec(ctx, stmt, dropID); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUnequipDrop, err)
		}
	}
	return nil
}

// TransferDrop is itself the optimistic ownership check: the predicate
// owner_id = from only matches while the item still belongs to the
// expected party at execution time.
func (t *tradeTx) TransferDrop(ctx context.Context, dropID, from, to string) (bool, error) {
	query := `
		UPDATE drops
		SET owner_id = $3
		WHERE drop_id = $1 AND owner_id = $2
	`
	tag, err := t.tx.Exec(ctx, query, dropID, from, to)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToTransferDrop, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (t *tradeTx) GetDrop(ctx context.Context, dropID string) (*domain.ItemDrop, error) {
	return getDrop(ctx, t.tx, dropID)
}

func (t *tradeTx) DeleteTradeRequest(ctx context.Context, tradeID string) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM trade_requests WHERE trade_id = $1`, tradeID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteTrade, err)
	}
	return nil
}

func (t *tradeTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *tradeTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func scanTrade(row rowScanner) (*domain.TradeRequest, error) {
	var trade domain.TradeRequest
	err := row.Scan(
		&trade.ID, &trade.SenderID, &trade.SenderItems,
		&trade.ReceiverID, &trade.ReceiverItems, &trade.Note, &trade.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if trade.SenderItems == nil {
		trade.SenderItems = []string{}
	}
	if trade.ReceiverItems == nil {
		trade.ReceiverItems = []string{}
	}
	return &trade, nil
}
