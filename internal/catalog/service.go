package catalog

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/curioboard/curio/internal/domain"
	"github.com/curioboard/curio/internal/logger"
	"github.com/curioboard/curio/internal/repository"
)

// Service defines the interface for catalog operations
type Service interface {
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)
	AvailableByRarity(ctx context.Context, rarity domain.Rarity) ([]domain.Item, error)
	CreateItem(ctx context.Context, item *domain.Item) error
}

type service struct {
	repo  repository.Item
	cache *lru.Cache[int, *domain.Item]
	title cases.Caser
}

// NewService creates a new catalog service. Catalog rows are immutable
// once created, so the per-id cache never needs invalidation; rarity
// listings read through so newly minted items show up immediately.
func NewService(repo repository.Item) (Service, error) {
	cache, err := lru.New[int, *domain.Item](ItemCacheSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToInitCache, err)
	}
	return &service{
		repo:  repo,
		cache: cache,
		title: cases.Title(language.English),
	}, nil
}

// GetItem fetches a catalog item, serving repeat lookups from the cache.
// Returns nil without error when the item does not exist.
func (s *service) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	if item, ok := s.cache.Get(itemID); ok {
		return item, nil
	}

	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetItem, err)
	}
	if item == nil {
		return nil, nil
	}

	s.cache.Add(itemID, item)
	return item, nil
}

// AvailableByRarity returns every available item of exactly the given tier.
func (s *service) AvailableByRarity(ctx context.Context, rarity domain.Rarity) ([]domain.Item, error) {
	items, err := s.repo.ListAvailableByRarity(ctx, rarity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListItems, err)
	}
	return items, nil
}

// CreateItem validates and persists a new catalog item (admin path).
// Display names are normalized to title case.
func (s *service) CreateItem(ctx context.Context, item *domain.Item) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	if !item.Rarity.Valid() {
		return fmt.Errorf("%w: unknown rarity %q", domain.ErrInvalidInput, item.Rarity)
	}
	if !item.Kind.Valid() {
		return fmt.Errorf("%w: unknown item kind %q", domain.ErrInvalidInput, item.Kind)
	}

	item.Name = s.title.String(strings.ToLower(item.Name))

	if err := s.repo.InsertItem(ctx, item); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCreateItem, err)
	}

	logger.FromContext(ctx).Info(LogMsgItemCreated,
		"item_id", item.ID, "name", item.Name, "rarity", item.Rarity, "kind", item.Kind)
	return nil
}
