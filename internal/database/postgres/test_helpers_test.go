package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/curioboard/curio/internal/database"
	"github.com/curioboard/curio/internal/domain"
)

// startTestDB spins up a disposable Postgres container, applies the
// embedded migrations, and returns a connected pool. The container and
// pool are torn down via t.Cleanup.
func startTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()

	var pgContainer *tcpostgres.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = tcpostgres.Run(ctx,
			"postgres:15-alpine",
			tcpostgres.WithDatabase("testdb"),
			tcpostgres.WithUsername("testuser"),
			tcpostgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	if pgContainer == nil {
		t.Skip("Skipping integration test: no container")
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	if err := database.Migrate(ctx, connStr); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	pool, err := database.NewPool(connStr,
		database.DefaultMaxConnections, database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func createTestUser(t *testing.T, pool *pgxpool.Pool, username string) *domain.User {
	t.Helper()

	user, err := NewUserRepository(pool).CreateUser(context.Background(), username)
	if err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func createTestItem(t *testing.T, pool *pgxpool.Pool, name string, rarity domain.Rarity, kind domain.ItemKind) *domain.Item {
	t.Helper()

	item := &domain.Item{
		Name:      name,
		Available: true,
		Rarity:    rarity,
		Kind:      kind,
	}
	if kind == domain.KindReaction {
		item.XPValue = 5
	}
	if err := NewItemRepository(pool).InsertItem(context.Background(), item); err != nil {
		t.Fatalf("failed to insert item %s: %v", name, err)
	}
	return item
}

func mintTestDrop(t *testing.T, pool *pgxpool.Pool, ownerID string, itemID int) *domain.ItemDrop {
	t.Helper()

	drop := &domain.ItemDrop{OwnerID: ownerID, ItemID: itemID}
	if err := NewDropRepository(pool).MintDrop(context.Background(), drop); err != nil {
		t.Fatalf("failed to mint drop: %v", err)
	}
	return drop
}

func createTestPost(t *testing.T, pool *pgxpool.Pool, authorID string) string {
	t.Helper()

	var postID string
	err := pool.QueryRow(context.Background(),
		`INSERT INTO posts (author_id) VALUES ($1) RETURNING post_id`, authorID).Scan(&postID)
	if err != nil {
		t.Fatalf("failed to create post: %v", err)
	}
	return postID
}
