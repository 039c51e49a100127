package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioboard/curio/internal/domain"
)

type fakeItemRepo struct {
	items   map[int]*domain.Item
	nextID  int
	getCall int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[int]*domain.Item), nextID: 1}
}

func (f *fakeItemRepo) GetItemByID(_ context.Context, itemID int) (*domain.Item, error) {
	f.getCall++
	item, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (f *fakeItemRepo) ListAvailableByRarity(_ context.Context, rarity domain.Rarity) ([]domain.Item, error) {
	var out []domain.Item
	for _, item := range f.items {
		if item.Available && item.Rarity == rarity {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) InsertItem(_ context.Context, item *domain.Item) error {
	item.ID = f.nextID
	f.nextID++
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func seedItem(t *testing.T, repo *fakeItemRepo, name string, rarity domain.Rarity, kind domain.ItemKind) *domain.Item {
	t.Helper()
	item := &domain.Item{Name: name, Available: true, Rarity: rarity, Kind: kind}
	require.NoError(t, repo.InsertItem(context.Background(), item))
	return item
}

func TestGetItem_CachesRepeatLookups(t *testing.T) {
	repo := newFakeItemRepo()
	seeded := seedItem(t, repo, "Plastic Spoon", domain.RarityCommon, domain.KindUseless)

	svc, err := NewService(repo)
	require.NoError(t, err)

	first, err := svc.GetItem(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "Plastic Spoon", first.Name)

	second, err := svc.GetItem(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, 1, repo.getCall, "second lookup should be served from cache")
}

func TestGetItem_MissingReturnsNilNil(t *testing.T) {
	svc, err := NewService(newFakeItemRepo())
	require.NoError(t, err)

	item, err := svc.GetItem(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestAvailableByRarity_FiltersExactTier(t *testing.T) {
	repo := newFakeItemRepo()
	seedItem(t, repo, "Common A", domain.RarityCommon, domain.KindUseless)
	seedItem(t, repo, "Common B", domain.RarityCommon, domain.KindAvatar)
	seedItem(t, repo, "Rare A", domain.RarityRare, domain.KindBackground)

	svc, err := NewService(repo)
	require.NoError(t, err)

	common, err := svc.AvailableByRarity(context.Background(), domain.RarityCommon)
	require.NoError(t, err)
	assert.Len(t, common, 2)

	legendary, err := svc.AvailableByRarity(context.Background(), domain.RarityLegendary)
	require.NoError(t, err)
	assert.Empty(t, legendary)
}

func TestCreateItem_NormalizesDisplayName(t *testing.T) {
	repo := newFakeItemRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)

	item := &domain.Item{
		Name:   "  gOLDEN cROWN ",
		Rarity: domain.RarityLegendary,
		Kind:   domain.KindAvatar,
	}
	require.NoError(t, svc.CreateItem(context.Background(), item))
	assert.Equal(t, "Golden Crown", item.Name)
	assert.NotZero(t, item.ID)
}

func TestCreateItem_RejectsInvalidInput(t *testing.T) {
	svc, err := NewService(newFakeItemRepo())
	require.NoError(t, err)

	tests := []struct {
		name string
		item *domain.Item
	}{
		{"empty name", &domain.Item{Name: "  ", Rarity: domain.RarityCommon, Kind: domain.KindUseless}},
		{"unknown rarity", &domain.Item{Name: "Thing", Rarity: "MYTHIC", Kind: domain.KindUseless}},
		{"unknown kind", &domain.Item{Name: "Thing", Rarity: domain.RarityCommon, Kind: "WEAPON"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateItem(context.Background(), tt.item)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
