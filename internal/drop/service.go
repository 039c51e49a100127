package drop

import (
	"context"
	"fmt"
	"time"

	"github.com/curioboard/curio/internal/catalog"
	"github.com/curioboard/curio/internal/domain"
	"github.com/curioboard/curio/internal/event"
	"github.com/curioboard/curio/internal/logger"
	"github.com/curioboard/curio/internal/metrics"
	"github.com/curioboard/curio/internal/rarity"
	"github.com/curioboard/curio/internal/repository"
)

// Config holds the tunable parameters of the issuance flow.
type Config struct {
	// MinPeriod blocks any attempt made sooner than this after the
	// user's last drop.
	MinPeriod time.Duration
	// MaxPeriod forces a drop on the first attempt made at least this
	// long after the user's last drop.
	MaxPeriod time.Duration
	// Chance is the 1-in-N odds an attempt in the chance window wins
	// the random gate.
	Chance int
}

// Service defines the interface for drop issuance
type Service interface {
	// AttemptDrop runs one eligibility-gated issuance attempt for the user.
	// A nil drop with a nil error means no drop was issued this time
	// (blocked window, lost flip, empty tier, or lost race); that is the
	// common case and not an error.
	AttemptDrop(ctx context.Context, userID string) (*domain.ItemDrop, error)

	// MintDrop grants a specific item to a user outside the eligibility
	// flow (admin path). It does not touch the user's reward window.
	MintDrop(ctx context.Context, userID string, itemID int) (*domain.ItemDrop, error)
}

type service struct {
	users    repository.User
	drops    repository.Drop
	catalog  catalog.Service
	roller   *rarity.Roller
	src      rarity.Source
	eventBus event.Bus
	cfg      Config
	now      func() time.Time
}

// NewService creates a new drop issuance service
func NewService(users repository.User, drops repository.Drop, cat catalog.Service, src rarity.Source, eventBus event.Bus, cfg Config) Service {
	return &service{
		users:    users,
		drops:    drops,
		catalog:  cat,
		roller:   rarity.NewRoller(src),
		src:      src,
		eventBus: eventBus,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *service) AttemptDrop(ctx context.Context, userID string) (*domain.ItemDrop, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	now := s.now().UTC().Truncate(time.Microsecond)

	eligibility := Evaluate(user.LastReward, now, s.cfg.MinPeriod, s.cfg.MaxPeriod)
	switch eligibility {
	case Blocked:
		metrics.DropAttempts.WithLabelValues(metrics.OutcomeBlocked).Inc()
		log.Debug(LogMsgAttemptBlocked, "user_id", userID, "last_reward", user.LastReward)
		return nil, nil
	case Chance:
		if s.src.Intn(s.cfg.Chance) != 0 {
			metrics.DropAttempts.WithLabelValues(metrics.OutcomeLostFlip).Inc()
			log.Debug(LogMsgAttemptLostFlip, "user_id", userID)
			return nil, nil
		}
	case Forced:
		// Random gate skipped; proceed to the roll.
	}

	tier := s.roller.Roll()

	candidates, err := s.catalog.AvailableByRarity(ctx, tier)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListItems, err)
	}
	if len(candidates) == 0 {
		metrics.DropAttempts.WithLabelValues(metrics.OutcomeNoItems).Inc()
		log.Info(LogMsgNoItemsForRarity, "user_id", userID, "rarity", tier)
		return nil, nil
	}
	picked := candidates[s.src.Intn(len(candidates))]

	newDrop := &domain.ItemDrop{
		OwnerID: userID,
		ItemID:  picked.ID,
		Pattern: s.roller.Pattern(),
	}

	tx, err := s.drops.BeginDropTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.InsertDrop(ctx, newDrop); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToInsertDrop, err)
	}

	advanced, err := tx.AdvanceLastReward(ctx, userID, user.LastReward, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToAdvance, err)
	}
	if !advanced {
		// Another attempt advanced the window between our read and this
		// update. The deferred rollback discards the inserted drop.
		metrics.DropAttempts.WithLabelValues(metrics.OutcomeLostRace).Inc()
		log.Info(LogMsgAttemptLostRace, "user_id", userID)
		return nil, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	metrics.DropAttempts.WithLabelValues(metrics.OutcomeIssued).Inc()
	metrics.DropsIssued.WithLabelValues(string(picked.Rarity)).Inc()
	log.Info(LogMsgDropIssued,
		"user_id", userID, "drop_id", newDrop.ID, "item_id", picked.ID,
		"rarity", picked.Rarity, "eligibility", eligibility.String())

	if err := s.eventBus.Publish(ctx, event.NewDropIssuedEvent(userID, newDrop, picked.Rarity, eligibility == Forced)); err != nil {
		log.Error(LogMsgEventPublishFailed, "error", err, "drop_id", newDrop.ID)
	}

	return newDrop, nil
}

func (s *service) MintDrop(ctx context.Context, userID string, itemID int) (*domain.ItemDrop, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetItem, err)
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	newDrop := &domain.ItemDrop{
		OwnerID: userID,
		ItemID:  itemID,
		Pattern: s.roller.Pattern(),
	}
	if err := s.drops.MintDrop(ctx, newDrop); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToMintDrop, err)
	}

	metrics.DropsIssued.WithLabelValues(string(item.Rarity)).Inc()
	logger.FromContext(ctx).Info(LogMsgDropMinted,
		"user_id", userID, "drop_id", newDrop.ID, "item_id", itemID, "rarity", item.Rarity)

	if err := s.eventBus.Publish(ctx, event.NewDropIssuedEvent(userID, newDrop, item.Rarity, false)); err != nil {
		logger.FromContext(ctx).Error(LogMsgEventPublishFailed, "error", err, "drop_id", newDrop.ID)
	}

	return newDrop, nil
}
