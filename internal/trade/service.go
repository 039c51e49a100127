package trade

import (
	"context"
	"fmt"

	"github.com/curioboard/curio/internal/concurrency"
	"github.com/curioboard/curio/internal/domain"
	"github.com/curioboard/curio/internal/event"
	"github.com/curioboard/curio/internal/logger"
	"github.com/curioboard/curio/internal/metrics"
	"github.com/curioboard/curio/internal/repository"
)

// Service defines the interface for trade operations
type Service interface {
	// Propose validates and records a trade request. Either item set may
	// be empty (a one-sided gift) but not both. Ownership is checked at
	// proposal time as a courtesy; the authoritative check happens at
	// settlement.
	Propose(ctx context.Context, trade *domain.TradeRequest) (*domain.TradeRequest, error)

	// Accept settles the trade atomically. Only the receiver may accept.
	// If any listed drop changed owner or was consumed since the
	// proposal, nothing transfers and ErrTradeConflict is returned; the
	// request stays open so the parties can decline or retry.
	Accept(ctx context.Context, tradeID, userID string) error

	// Decline withdraws the trade request. Either party may decline.
	Decline(ctx context.Context, tradeID, userID string) error

	ListForUser(ctx context.Context, userID string) ([]domain.TradeRequest, error)
}

type service struct {
	repo     repository.Trade
	users    repository.User
	eventBus event.Bus
	locks    *concurrency.LockManager
}

// NewService creates a new trade service
func NewService(repo repository.Trade, users repository.User, eventBus event.Bus) Service {
	return &service{repo: repo, users: users, eventBus: eventBus, locks: concurrency.NewLockManager()}
}

func (s *service) Propose(ctx context.Context, trade *domain.TradeRequest) (*domain.TradeRequest, error) {
	if trade.SenderID == trade.ReceiverID {
		return nil, fmt.Errorf("%w: cannot trade with yourself", domain.ErrInvalidTrade)
	}
	if len(trade.SenderItems)+len(trade.ReceiverItems) == 0 {
		return nil, fmt.Errorf("%w: no items offered on either side", domain.ErrInvalidTrade)
	}
	if dup := firstDuplicate(trade.SenderItems, trade.ReceiverItems); dup != "" {
		return nil, fmt.Errorf("%w: drop %s listed more than once", domain.ErrInvalidTrade, dup)
	}

	for _, userID := range []string{trade.SenderID, trade.ReceiverID} {
		user, err := s.users.GetUserByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
		}
		if user == nil {
			return nil, domain.ErrUserNotFound
		}
	}

	if err := s.checkOwnership(ctx, trade.SenderItems, trade.SenderID); err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, trade.ReceiverItems, trade.ReceiverID); err != nil {
		return nil, err
	}

	if err := s.repo.InsertTradeRequest(ctx, trade); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToInsert, err)
	}

	logger.FromContext(ctx).Info(LogMsgTradeProposed,
		"trade_id", trade.ID, "sender_id", trade.SenderID, "receiver_id", trade.ReceiverID,
		"sender_items", len(trade.SenderItems), "receiver_items", len(trade.ReceiverItems))
	s.publish(ctx, event.NewTradeEvent(event.TradeProposed, trade))

	return trade, nil
}

func (s *service) checkOwnership(ctx context.Context, dropIDs []string, ownerID string) error {
	for _, dropID := range dropIDs {
		drop, err := s.repo.GetDropByID(ctx, dropID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToGetDrop, err)
		}
		if drop == nil {
			return fmt.Errorf("%w: drop %s", domain.ErrDropNotFound, dropID)
		}
		if drop.OwnerID != ownerID {
			return fmt.Errorf("%w: drop %s", domain.ErrNotYourItem, dropID)
		}
	}
	return nil
}

func firstDuplicate(a, b []string) string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, id := range a {
		if _, ok := seen[id]; ok {
			return id
		}
		seen[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := seen[id]; ok {
			return id
		}
		seen[id] = struct{}{}
	}
	return ""
}

func (s *service) Accept(ctx context.Context, tradeID, userID string) error {
	log := logger.FromContext(ctx)

	// Serialize concurrent accepts of the same request within this
	// process. The predicated transfers remain the authoritative guard;
	// the lock just avoids burning a settlement attempt on a race we can
	// see coming.
	lock := s.locks.GetLock(tradeID)
	lock.Lock()
	defer lock.Unlock()

	trade, err := s.repo.GetTradeRequest(ctx, tradeID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetTrade, err)
	}
	if trade == nil {
		return domain.ErrTradeNotFound
	}
	if userID != trade.ReceiverID {
		return domain.ErrNotYourTrade
	}

	tx, err := s.repo.BeginTradeTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	conflict, err := s.transferAll(ctx, tx, trade.SenderItems, trade.SenderID, trade.ReceiverID)
	if err != nil {
		return err
	}
	if !conflict {
		conflict, err = s.transferAll(ctx, tx, trade.ReceiverItems, trade.ReceiverID, trade.SenderID)
		if err != nil {
			return err
		}
	}
	if !conflict {
		conflict, err = s.revalidate(ctx, tx, trade)
		if err != nil {
			return err
		}
	}
	if conflict {
		// The deferred rollback undoes any transfers already applied.
		metrics.TradesSettled.WithLabelValues(metrics.OutcomeConflict).Inc()
		log.Info(LogMsgTradeConflict, "trade_id", tradeID)
		s.publish(ctx, event.NewTradeEvent(event.TradeConflicted, trade))
		return domain.ErrTradeConflict
	}

	if err := tx.DeleteTradeRequest(ctx, tradeID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToDelete, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	metrics.TradesSettled.WithLabelValues(metrics.OutcomeAccepted).Inc()
	log.Info(LogMsgTradeSettled,
		"trade_id", tradeID, "sender_id", trade.SenderID, "receiver_id", trade.ReceiverID)
	s.publish(ctx, event.NewTradeEvent(event.TradeSettled, trade))
	return nil
}

// transferAll unequips and transfers each drop. A false predicated update
// means the drop no longer belongs to the expected owner; that is reported
// as a conflict, not an error.
func (s *service) transferAll(ctx context.Context, tx repository.TradeTx, dropIDs []string, from, to string) (conflict bool, err error) {
	for _, dropID := range dropIDs {
		if err := tx.UnequipEverywhere(ctx, dropID); err != nil {
			return false, fmt.Errorf("%s: %w", ErrContextFailedToUnequip, err)
		}
		moved, err := tx.TransferDrop(ctx, dropID, from, to)
		if err != nil {
			return false, fmt.Errorf("%s: %w", ErrContextFailedToTransfer, err)
		}
		if !moved {
			return true, nil
		}
	}
	return false, nil
}

// revalidate re-reads every transferred drop inside the transaction and
// confirms it now belongs to its intended recipient and is unconsumed.
func (s *service) revalidate(ctx context.Context, tx repository.TradeTx, trade *domain.TradeRequest) (conflict bool, err error) {
	expect := make(map[string]string, len(trade.SenderItems)+len(trade.ReceiverItems))
	for _, dropID := range trade.SenderItems {
		expect[dropID] = trade.ReceiverID
	}
	for _, dropID := range trade.ReceiverItems {
		expect[dropID] = trade.SenderID
	}

	for dropID, newOwner := range expect {
		drop, err := tx.GetDrop(ctx, dropID)
		if err != nil {
			return false, fmt.Errorf("%s: %w", ErrContextFailedToRevalidate, err)
		}
		if drop == nil || drop.OwnerID != newOwner || drop.Consumed {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) Decline(ctx context.Context, tradeID, userID string) error {
	trade, err := s.repo.GetTradeRequest(ctx, tradeID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetTrade, err)
	}
	if trade == nil {
		return domain.ErrTradeNotFound
	}
	if !trade.Involves(userID) {
		return domain.ErrNotYourTrade
	}

	if err := s.repo.DeleteTradeRequest(ctx, tradeID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToDelete, err)
	}

	metrics.TradesSettled.WithLabelValues(metrics.OutcomeDeclined).Inc()
	logger.FromContext(ctx).Info(LogMsgTradeDeclined, "trade_id", tradeID, "declined_by", userID)
	s.publish(ctx, event.NewTradeEvent(event.TradeDeclined, trade))
	return nil
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]domain.TradeRequest, error) {
	trades, err := s.repo.ListTradeRequestsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToList, err)
	}
	return trades, nil
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if err := s.eventBus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Error(LogMsgEventPublishFailed, "error", err, "type", e.Type)
	}
}
