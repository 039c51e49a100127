package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/curioboard/curio/internal/catalog"
	"github.com/curioboard/curio/internal/config"
	"github.com/curioboard/curio/internal/database"
	"github.com/curioboard/curio/internal/database/postgres"
	"github.com/curioboard/curio/internal/drop"
	"github.com/curioboard/curio/internal/equip"
	"github.com/curioboard/curio/internal/event"
	"github.com/curioboard/curio/internal/rarity"
	"github.com/curioboard/curio/internal/reaction"
	"github.com/curioboard/curio/internal/server"
	"github.com/curioboard/curio/internal/trade"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	ctx := context.Background()

	if err := database.Migrate(ctx, cfg.GetDBConnString()); err != nil {
		slog.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxConnIdleTime,
		database.DefaultMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	dropRepo := postgres.NewDropRepository(pool)
	tradeRepo := postgres.NewTradeRepository(pool)
	equipRepo := postgres.NewEquipRepository(pool)
	reactionRepo := postgres.NewReactionRepository(pool)

	eventBus := event.NewMemoryBus()

	catalogSvc, err := catalog.NewService(itemRepo)
	if err != nil {
		slog.Error("Failed to initialize catalog", "error", err)
		os.Exit(1)
	}

	dropSvc := drop.NewService(userRepo, dropRepo, catalogSvc, rarity.NewSource(), eventBus, drop.Config{
		MinPeriod: cfg.MinDropPeriod,
		MaxPeriod: cfg.MaxDropPeriod,
		Chance:    cfg.DropChance,
	})
	equipSvc := equip.NewService(equipRepo)
	tradeSvc := trade.NewService(tradeRepo, userRepo, eventBus)
	reactionSvc := reaction.NewService(reactionRepo, eventBus)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, server.Services{
		Users:    userRepo,
		Catalog:  catalogSvc,
		Drops:    dropSvc,
		Equip:    equipSvc,
		Trades:   tradeSvc,
		Reaction: reactionSvc,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
