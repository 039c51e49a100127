package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/curioboard/curio/internal/domain"
)

// itemProperties is the JSONB shape of the catalog variant payload.
type itemProperties struct {
	Image     string   `json:"image,omitempty"`
	Colors    []string `json:"colors,omitempty"`
	XPValue   int      `json:"xp_value,omitempty"`
	BadgeText string   `json:"badge_text,omitempty"`
}

func marshalItemProperties(item *domain.Item) ([]byte, error) {
	return json.Marshal(itemProperties{
		Image:     item.Image,
		Colors:    item.Colors,
		XPValue:   item.XPValue,
		BadgeText: item.BadgeText,
	})
}

func unmarshalItemProperties(data []byte, item *domain.Item) error {
	if len(data) == 0 {
		return nil
	}
	var props itemProperties
	if err := json.Unmarshal(data, &props); err != nil {
		return err
	}
	item.Image = props.Image
	item.Colors = props.Colors
	item.XPValue = props.XPValue
	item.BadgeText = props.BadgeText
	return nil
}

// ItemRepository implements the catalog repository for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// GetItemByID fetches a catalog item. Returns nil without error when no
// row exists.
func (r *ItemRepository) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	query := `
		SELECT item_id, item_name, item_description, available, rarity, kind, properties
		FROM items
		WHERE item_id = $1
	`
	item, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

// ListAvailableByRarity returns every available catalog item of exactly the
// given rarity tier.
func (r *ItemRepository) ListAvailableByRarity(ctx context.Context, rarity domain.Rarity) ([]domain.Item, error) {
	query := `
		SELECT item_id, item_name, item_description, available, rarity, kind, properties
		FROM items
		WHERE available AND rarity = $1
		ORDER BY item_id
	`
	rows, err := r.db.Query(ctx, query, string(rarity))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	return items, nil
}

// InsertItem creates a catalog item (admin minting path).
func (r *ItemRepository) InsertItem(ctx context.Context, item *domain.Item) error {
	props, err := marshalItemProperties(item)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertItem, err)
	}

	query := `
		INSERT INTO items (item_name, item_description, available, rarity, kind, properties)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING item_id
	`
	err = r.db.QueryRow(ctx, query,
		item.Name, item.Description, item.Available, string(item.Rarity), string(item.Kind), props,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertItem, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var (
		item  domain.Item
		props []byte
	)
	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Available, &item.Rarity, &item.Kind, &props,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalItemProperties(props, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
