package postgres

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/curioboard/curio/internal/domain"
	"github.com/curioboard/curio/internal/repository"
)

// The reward-window advance must admit exactly one concurrent issuance:
// every attempt inserts its drop and then tries the compare-and-swap on
// last_reward; losers roll the insert back.
func TestDropIssuanceRace_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pool := startTestDB(t)
	ctx := context.Background()
	repo := NewDropRepository(pool)

	user := createTestUser(t, pool, "race_user")
	item := createTestItem(t, pool, "Pebble", domain.RarityCommon, domain.KindUseless)

	prev := user.LastReward
	next := time.Now().UTC().Truncate(time.Microsecond)

	const attempts = 8
	var wins int64
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			tx, err := repo.BeginDropTx(ctx)
			if err != nil {
				t.Errorf("BeginDropTx failed: %v", err)
				return
			}
			defer repository.SafeRollback(ctx, tx)

			drop := &domain.ItemDrop{OwnerID: user.ID, ItemID: item.ID}
			if err := tx.InsertDrop(ctx, drop); err != nil {
				t.Errorf("InsertDrop failed: %v", err)
				return
			}

			moved, err := tx.AdvanceLastReward(ctx, user.ID, prev, next)
			if err != nil {
				t.Errorf("AdvanceLastReward failed: %v", err)
				return
			}
			if !moved {
				return
			}
			if err := tx.Commit(ctx); err != nil {
				t.Errorf("Commit failed: %v", err)
				return
			}
			atomic.AddInt64(&wins, 1)
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("expected exactly 1 winning issuance, got %d", wins)
	}

	var dropCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM drops WHERE owner_id = $1`, user.ID).Scan(&dropCount); err != nil {
		t.Fatalf("failed to count drops: %v", err)
	}
	if dropCount != 1 {
		t.Errorf("expected exactly 1 persisted drop, got %d", dropCount)
	}
}

// A reaction drop is single-use: the consumed flag flip must succeed for
// exactly one of the concurrent consumers.
func TestReactionDoubleConsume_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pool := startTestDB(t)
	ctx := context.Background()
	repo := NewReactionRepository(pool)

	author := createTestUser(t, pool, "race_author")
	reactor := createTestUser(t, pool, "race_reactor")
	item := createTestItem(t, pool, "Confetti", domain.RarityCommon, domain.KindReaction)
	postID := createTestPost(t, pool, author.ID)
	drop := mintTestDrop(t, pool, reactor.ID, item.ID)

	const attempts = 8
	var wins int64
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			tx, err := repo.BeginReactionTx(ctx)
			if err != nil {
				t.Errorf("BeginReactionTx failed: %v", err)
				return
			}
			defer repository.SafeRollback(ctx, tx)

			consumed, err := tx.ConsumeDrop(ctx, drop.ID)
			if err != nil {
				t.Errorf("ConsumeDrop failed: %v", err)
				return
			}
			if !consumed {
				return
			}
			if err := tx.AppendPostReaction(ctx, postID, drop.ID); err != nil {
				t.Errorf("AppendPostReaction failed: %v", err)
				return
			}
			if err := tx.CreditExperience(ctx, author.ID, item.XPValue); err != nil {
				t.Errorf("CreditExperience failed: %v", err)
				return
			}
			if err := tx.Commit(ctx); err != nil {
				t.Errorf("Commit failed: %v", err)
				return
			}
			atomic.AddInt64(&wins, 1)
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("expected exactly 1 successful consumption, got %d", wins)
	}

	post, err := repo.GetPost(ctx, postID)
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if len(post.Reactions) != 1 {
		t.Errorf("expected exactly 1 recorded reaction, got %d", len(post.Reactions))
	}

	got, err := NewUserRepository(pool).GetUserByID(ctx, author.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if got.Experience != item.XPValue {
		t.Errorf("expected experience credited once (%d), got %d", item.XPValue, got.Experience)
	}
}

// Two settlements racing over the same drop: the owner predicate lets only
// the first transfer through.
func TestTradeTransferRace_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pool := startTestDB(t)
	ctx := context.Background()
	repo := NewTradeRepository(pool)

	owner := createTestUser(t, pool, "race_owner")
	rivalA := createTestUser(t, pool, "race_rival_a")
	rivalB := createTestUser(t, pool, "race_rival_b")
	item := createTestItem(t, pool, "Lucky Coin", domain.RarityRare, domain.KindUseless)
	drop := mintTestDrop(t, pool, owner.ID, item.ID)

	var wins int64
	var wg sync.WaitGroup
	for _, to := range []string{rivalA.ID, rivalB.ID} {
		wg.Add(1)
		go func(to string) {
			defer wg.Done()

			tx, err := repo.BeginTradeTx(ctx)
			if err != nil {
				t.Errorf("BeginTradeTx failed: %v", err)
				return
			}
			defer repository.SafeRollback(ctx, tx)

			moved, err := tx.TransferDrop(ctx, drop.ID, owner.ID, to)
			if err != nil {
				t.Errorf("TransferDrop failed: %v", err)
				return
			}
			if !moved {
				return
			}
			if err := tx.Commit(ctx); err != nil {
				t.Errorf("Commit failed: %v", err)
				return
			}
			atomic.AddInt64(&wins, 1)
		}(to)
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("expected exactly 1 winning transfer, got %d", wins)
	}

	got, err := repo.GetDropByID(ctx, drop.ID)
	if err != nil {
		t.Fatalf("GetDropByID failed: %v", err)
	}
	if got.OwnerID == owner.ID {
		t.Error("expected the drop to have moved")
	}
}
