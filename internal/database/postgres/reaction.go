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

// ReactionRepository implements the reaction repository for PostgreSQL
type ReactionRepository struct {
	*DropRepository
	*ItemRepository
	db *pgxpool.Pool
}

// NewReactionRepository creates a new ReactionRepository
func NewReactionRepository(db *pgxpool.Pool) *ReactionRepository {
	return &ReactionRepository{
		DropRepository: NewDropRepository(db),
		ItemRepository: NewItemRepository(db),
		db:             db,
	}
}

// GetPost fetches a post's author and reaction list. Returns nil without
// error when no row exists.
func (r *ReactionRepository) GetPost(ctx context.Context, postID string) (*domain.Post, error) {
	query := `
		SELECT post_id, author_id, reactions, created_at
		FROM posts
		WHERE post_id = $1
	`
	var post domain.Post
	err := r.db.QueryRow(ctx, query, postID).Scan(
		&post.ID, &post.AuthorID, &post.Reactions, &post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPost, err)
	}
	if post.Reactions == nil {
		post.Reactions = []string{}
	}
	return &post, nil
}

// BeginReactionTx starts a reaction consumption transaction.
func (r *ReactionRepository) BeginReactionTx(ctx context.Context) (repository.ReactionTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &reactionTx{tx: tx}, nil
}

type reactionTx struct {
	tx pgx.Tx
}

// ConsumeDrop is the double-spend guard: the predicate consumed = FALSE
// lets exactly one concurrent consumption match the row.
func (t *reactionTx) ConsumeDrop(ctx context.Context, dropID string) (bool, error) {
	query := `
		UPDATE drops
		SET consumed = TRUE
		WHERE drop_id = $1 AND consumed = FALSE
	`
	tag, err := t.tx.Exec(ctx, query, dropID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToConsumeDrop, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (t *reactionTx) AppendPostReaction(ctx context.Context, postID, dropID string) error {
	query := `
		UPDATE posts
		SET reactions = array_append(reactions, $2::uuid)
		WHERE post_id = $1
	`
	tag, err := t.tx.Exec(ctx, query, postID, dropID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAppendReact, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAppendReact, domain.ErrPostNotFound)
	}
	return nil
}

// CreditExperience applies the (possibly negative) reaction value,
// clamping the stored total at zero.
func (t *reactionTx) CreditExperience(ctx context.Context, userID string, delta int) error {
	query := `
		UPDATE users
		SET experience = GREATEST(0, experience + $2)
		WHERE user_id = $1
	`
	tag, err := t.tx.Exec(ctx, query, userID, delta)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreditXP, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreditXP, domain.ErrUserNotFound)
	}
	return nil
}

func (t *reactionTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *reactionTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
