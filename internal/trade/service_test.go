package trade

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioboard/curio/internal/domain"
	"github.com/curioboard/curio/internal/event"
	"github.com/curioboard/curio/internal/repository"
)

type fakeTradeStore struct {
	users  map[string]*domain.User
	drops  map[string]*domain.ItemDrop
	trades map[string]*domain.TradeRequest
	nextID int
}

func newFakeTradeStore() *fakeTradeStore {
	return &fakeTradeStore{
		users:  make(map[string]*domain.User),
		drops:  make(map[string]*domain.ItemDrop),
		trades: make(map[string]*domain.TradeRequest),
	}
}

func (f *fakeTradeStore) addUser(userID string) *domain.User {
	u := &domain.User{ID: userID, Username: userID}
	f.users[userID] = u
	return u
}

func (f *fakeTradeStore) addDrop(dropID, ownerID string) {
	f.drops[dropID] = &domain.ItemDrop{ID: dropID, OwnerID: ownerID, ItemID: 1}
}

// repository.User

func (f *fakeTradeStore) CreateUser(_ context.Context, username string) (*domain.User, error) {
	return f.addUser(username), nil
}

func (f *fakeTradeStore) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeTradeStore) GetInventory(_ context.Context, _ string) ([]domain.InventoryEntry, error) {
	return nil, nil
}

// repository.Trade

func (f *fakeTradeStore) InsertTradeRequest(_ context.Context, trade *domain.TradeRequest) error {
	f.nextID++
	trade.ID = fmt.Sprintf("trade-%d", f.nextID)
	cp := *trade
	f.trades[trade.ID] = &cp
	return nil
}

func (f *fakeTradeStore) GetTradeRequest(_ context.Context, tradeID string) (*domain.TradeRequest, error) {
	t, ok := f.trades[tradeID]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTradeStore) DeleteTradeRequest(_ context.Context, tradeID string) error {
	delete(f.trades, tradeID)
	return nil
}

func (f *fakeTradeStore) ListTradeRequestsForUser(_ context.Context, userID string) ([]domain.TradeRequest, error) {
	var out []domain.TradeRequest
	for _, t := range f.trades {
		if t.Involves(userID) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTradeStore) GetDropByID(_ context.Context, dropID string) (*domain.ItemDrop, error) {
	d, ok := f.drops[dropID]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeTradeStore) BeginTradeTx(_ context.Context) (repository.TradeTx, error) {
	// Snapshot for rollback so a conflicted settlement leaves no trace.
	tx := &fakeTradeTx{store: f,
		dropSnap:  make(map[string]domain.ItemDrop, len(f.drops)),
		userSnap:  make(map[string]domain.User, len(f.users)),
		tradeSnap: make(map[string]domain.TradeRequest, len(f.trades)),
	}
	for id, d := range f.drops {
		tx.dropSnap[id] = *d
	}
	for id, u := range f.users {
		cp := *u
		cp.Badges = append([]string(nil), u.Badges...)
		tx.userSnap[id] = cp
	}
	for id, t := range f.trades {
		tx.tradeSnap[id] = *t
	}
	return tx, nil
}

type fakeTradeTx struct {
	store     *fakeTradeStore
	dropSnap  map[string]domain.ItemDrop
	userSnap  map[string]domain.User
	tradeSnap map[string]domain.TradeRequest
	done      bool
}

func (t *fakeTradeTx) Commit(_ context.Context) error {
	t.done = true
	return nil
}

func (t *fakeTradeTx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.store.drops = make(map[string]*domain.ItemDrop, len(t.dropSnap))
	for id := range t.dropSnap {
		d := t.dropSnap[id]
		t.store.drops[id] = &d
	}
	t.store.users = make(map[string]*domain.User, len(t.userSnap))
	for id := range t.userSnap {
		u := t.userSnap[id]
		t.store.users[id] = &u
	}
	t.store.trades = make(map[string]*domain.TradeRequest, len(t.tradeSnap))
	for id := range t.tradeSnap {
		tr := t.tradeSnap[id]
		t.store.trades[id] = &tr
	}
	t.done = true
	return nil
}

func (t *fakeTradeTx) UnequipEverywhere(_ context.Context, dropID string) error {
	for _, u := range t.store.users {
		if u.Avatar == dropID {
			u.Avatar = ""
		}
		if u.Background == dropID {
			u.Background = ""
		}
		kept := u.Badges[:0]
		for _, id := range u.Badges {
			if id != dropID {
				kept = append(kept, id)
			}
		}
		u.Badges = kept
	}
	return nil
}

func (t *fakeTradeTx) TransferDrop(_ context.Context, dropID, from, to string) (bool, error) {
	d, ok := t.store.drops[dropID]
	if !ok || d.OwnerID != from {
		return false, nil
	}
	d.OwnerID = to
	return true, nil
}

func (t *fakeTradeTx) GetDrop(_ context.Context, dropID string) (*domain.ItemDrop, error) {
	d, ok := t.store.drops[dropID]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (t *fakeTradeTx) DeleteTradeRequest(_ context.Context, tradeID string) error {
	delete(t.store.trades, tradeID)
	return nil
}

func newTestService(store *fakeTradeStore) Service {
	return NewService(store, store, event.NewMemoryBus())
}

func proposeSwap(t *testing.T, svc Service, store *fakeTradeStore) *domain.TradeRequest {
	t.Helper()
	store.addUser("alice")
	store.addUser("bob")
	store.addDrop("a1", "alice")
	store.addDrop("a2", "alice")
	store.addDrop("b1", "bob")

	trade, err := svc.Propose(context.Background(), &domain.TradeRequest{
		SenderID:      "alice",
		SenderItems:   []string{"a1", "a2"},
		ReceiverID:    "bob",
		ReceiverItems: []string{"b1"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, trade.ID)
	return trade
}

func TestPropose_Validation(t *testing.T) {
	store := newFakeTradeStore()
	store.addUser("alice")
	store.addUser("bob")
	store.addDrop("a1", "alice")
	store.addDrop("b1", "bob")
	svc := newTestService(store)

	tests := []struct {
		name  string
		trade *domain.TradeRequest
		want  error
	}{
		{"self trade", &domain.TradeRequest{SenderID: "alice", ReceiverID: "alice", SenderItems: []string{"a1"}}, domain.ErrInvalidTrade},
		{"empty both sides", &domain.TradeRequest{SenderID: "alice", ReceiverID: "bob"}, domain.ErrInvalidTrade},
		{"duplicate listing", &domain.TradeRequest{SenderID: "alice", ReceiverID: "bob", SenderItems: []string{"a1", "a1"}}, domain.ErrInvalidTrade},
		{"unknown sender", &domain.TradeRequest{SenderID: "ghost", ReceiverID: "bob", SenderItems: []string{"a1"}}, domain.ErrUserNotFound},
		{"unknown drop", &domain.TradeRequest{SenderID: "alice", ReceiverID: "bob", SenderItems: []string{"missing"}}, domain.ErrDropNotFound},
		{"offering someone else's drop", &domain.TradeRequest{SenderID: "alice", ReceiverID: "bob", SenderItems: []string{"b1"}}, domain.ErrNotYourItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Propose(context.Background(), tt.trade)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, store.trades)
}

func TestPropose_OneSidedGiftAllowed(t *testing.T) {
	store := newFakeTradeStore()
	store.addUser("alice")
	store.addUser("bob")
	store.addDrop("a1", "alice")
	svc := newTestService(store)

	trade, err := svc.Propose(context.Background(), &domain.TradeRequest{
		SenderID:    "alice",
		SenderItems: []string{"a1"},
		ReceiverID:  "bob",
	})
	require.NoError(t, err)
	assert.Len(t, store.trades, 1)
	assert.Empty(t, trade.ReceiverItems)
}

func TestAccept_SwapsBothSides(t *testing.T) {
	store := newFakeTradeStore()
	svc := newTestService(store)
	trade := proposeSwap(t, svc, store)

	require.NoError(t, svc.Accept(context.Background(), trade.ID, "bob"))

	assert.Equal(t, "bob", store.drops["a1"].OwnerID)
	assert.Equal(t, "bob", store.drops["a2"].OwnerID)
	assert.Equal(t, "alice", store.drops["b1"].OwnerID)
	assert.Empty(t, store.trades, "settled request should be removed")
}

func TestAccept_TransferredDropsArriveUnequipped(t *testing.T) {
	store := newFakeTradeStore()
	svc := newTestService(store)
	trade := proposeSwap(t, svc, store)
	store.users["alice"].Avatar = "a1"
	store.users["alice"].Badges = []string{"a2"}

	require.NoError(t, svc.Accept(context.Background(), trade.ID, "bob"))

	assert.Empty(t, store.users["alice"].Avatar)
	assert.Empty(t, store.users["alice"].Badges)
}

func TestAccept_Authorization(t *testing.T) {
	store := newFakeTradeStore()
	svc := newTestService(store)
	trade := proposeSwap(t, svc, store)

	t.Run("sender cannot accept", func(t *testing.T) {
		assert.ErrorIs(t, svc.Accept(context.Background(), trade.ID, "alice"), domain.ErrNotYourTrade)
	})
	t.Run("third party cannot accept", func(t *testing.T) {
		assert.ErrorIs(t, svc.Accept(context.Background(), trade.ID, "mallory"), domain.ErrNotYourTrade)
	})
	t.Run("unknown trade", func(t *testing.T) {
		assert.ErrorIs(t, svc.Accept(context.Background(), "missing", "bob"), domain.ErrTradeNotFound)
	})
}

func TestAccept_ConflictAbortsAtomically(t *testing.T) {
	t.Run("drop changed owner since proposal", func(t *testing.T) {
		store := newFakeTradeStore()
		svc := newTestService(store)
		trade := proposeSwap(t, svc, store)

		// a2 leaves alice's possession after the proposal.
		store.drops["a2"].OwnerID = "mallory"

		err := svc.Accept(context.Background(), trade.ID, "bob")
		assert.ErrorIs(t, err, domain.ErrTradeConflict)

		// Nothing moved, including the drops that would have transferred
		// cleanly, and the request stays open.
		assert.Equal(t, "alice", store.drops["a1"].OwnerID)
		assert.Equal(t, "bob", store.drops["b1"].OwnerID)
		assert.Contains(t, store.trades, trade.ID)
	})

	t.Run("drop consumed since proposal", func(t *testing.T) {
		store := newFakeTradeStore()
		svc := newTestService(store)
		trade := proposeSwap(t, svc, store)

		store.drops["b1"].Consumed = true

		err := svc.Accept(context.Background(), trade.ID, "bob")
		assert.ErrorIs(t, err, domain.ErrTradeConflict)
		assert.Equal(t, "alice", store.drops["a1"].OwnerID)
		assert.Contains(t, store.trades, trade.ID)
	})
}

func TestDecline(t *testing.T) {
	t.Run("either party may decline", func(t *testing.T) {
		for _, party := range []string{"alice", "bob"} {
			store := newFakeTradeStore()
			svc := newTestService(store)
			trade := proposeSwap(t, svc, store)

			require.NoError(t, svc.Decline(context.Background(), trade.ID, party))
			assert.Empty(t, store.trades)
			assert.Equal(t, "alice", store.drops["a1"].OwnerID, "declining must not move items")
		}
	})

	t.Run("third party cannot decline", func(t *testing.T) {
		store := newFakeTradeStore()
		svc := newTestService(store)
		trade := proposeSwap(t, svc, store)

		assert.ErrorIs(t, svc.Decline(context.Background(), trade.ID, "mallory"), domain.ErrNotYourTrade)
		assert.Contains(t, store.trades, trade.ID)
	})

	t.Run("unknown trade", func(t *testing.T) {
		svc := newTestService(newFakeTradeStore())
		assert.ErrorIs(t, svc.Decline(context.Background(), "missing", "alice"), domain.ErrTradeNotFound)
	})
}

func TestListForUser(t *testing.T) {
	store := newFakeTradeStore()
	svc := newTestService(store)
	proposeSwap(t, svc, store)

	for _, party := range []string{"alice", "bob"} {
		trades, err := svc.ListForUser(context.Background(), party)
		require.NoError(t, err)
		assert.Len(t, trades, 1)
	}

	trades, err := svc.ListForUser(context.Background(), "mallory")
	require.NoError(t, err)
	assert.Empty(t, trades)
}
