package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/curioboard/curio/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user row with empty slots and an epoch
// last_reward, making the account immediately drop-eligible.
func (r *UserRepository) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	query := `
		INSERT INTO users (username)
		VALUES ($1)
		RETURNING user_id, username, experience, last_reward, created_at
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Experience, &user.LastReward, &user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	user.Badges = []string{}
	return &user, nil
}

// GetUserByID fetches a user with their equip slots and reward timestamp.
// Returns nil without error when no row exists.
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, username, experience, last_reward,
		       COALESCE(avatar_drop::text, ''), COALESCE(background_drop::text, ''),
		       badges, created_at
		FROM users
		WHERE user_id = $1
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Username, &user.Experience, &user.LastReward,
		&user.Avatar, &user.Background, &user.Badges, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	if user.Badges == nil {
		user.Badges = []string{}
	}
	return &user, nil
}

// GetInventory lists the user's drops joined with their catalog items,
// marking entries that currently occupy one of the user's equip slots.
func (r *UserRepository) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	query := `
		SELECT d.drop_id, d.owner_id, d.item_id, d.pattern, d.consumed, d.created_at,
		       i.item_id, i.item_name, i.item_description, i.available, i.rarity, i.kind, i.properties,
		       (u.avatar_drop = d.drop_id OR u.background_drop = d.drop_id OR d.drop_id = ANY(u.badges))
		FROM drops d
		JOIN items i ON i.item_id = d.item_id
		JOIN users u ON u.user_id = d.owner_id
		WHERE d.owner_id = $1
		ORDER BY d.created_at, d.drop_id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		var (
			entry    domain.InventoryEntry
			pattern  int
			props    []byte
			equipped *bool
		)
		err := rows.Scan(
			&entry.Drop.ID, &entry.Drop.OwnerID, &entry.Drop.ItemID, &pattern,
			&entry.Drop.Consumed, &entry.Drop.CreatedAt,
			&entry.Item.ID, &entry.Item.Name, &entry.Item.Description,
			&entry.Item.Available, &entry.Item.Rarity, &entry.Item.Kind, &props,
			&equipped,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
		}
		entry.Drop.Pattern = uint16(pattern)
		if err := unmarshalItemProperties(props, &entry.Item); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
		}
		entry.Equipped = equipped != nil && *equipped
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	return entries, nil
}
