package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/curioboard/curio/internal/domain"
	"github.com/curioboard/curio/internal/metrics"
)

// Type represents the type of an event
type Type string

// Common event types
const (
	DropIssued        Type = "drop.issued"
	TradeProposed     Type = "trade.proposed"
	TradeSettled      Type = "trade.settled"
	TradeDeclined     Type = "trade.declined"
	TradeConflicted   Type = "trade.conflicted"
	ReactionConsumed  Type = "reaction.consumed"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads for type safety

// DropIssuedPayloadV1 is the typed payload for drop issuance events
type DropIssuedPayloadV1 struct {
	UserID    string        `json:"user_id"`
	DropID    string        `json:"drop_id"`
	ItemID    int           `json:"item_id"`
	Rarity    domain.Rarity `json:"rarity"`
	Forced    bool          `json:"forced"`
	Timestamp int64         `json:"timestamp"`
}

// TradePayloadV1 is the typed payload for trade lifecycle events
type TradePayloadV1 struct {
	TradeID       string   `json:"trade_id"`
	SenderID      string   `json:"sender_id"`
	ReceiverID    string   `json:"receiver_id"`
	SenderItems   []string `json:"sender_items"`
	ReceiverItems []string `json:"receiver_items"`
	Timestamp     int64    `json:"timestamp"`
}

// ReactionConsumedPayloadV1 is the typed payload for reaction consumption events
type ReactionConsumedPayloadV1 struct {
	DropID    string `json:"drop_id"`
	PostID    string `json:"post_id"`
	ReactorID string `json:"reactor_id"`
	AuthorID  string `json:"author_id"`
	XPValue   int    `json:"xp_value"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewDropIssuedEvent creates a drop issuance event
func NewDropIssuedEvent(userID string, drop *domain.ItemDrop, rarity domain.Rarity, forced bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DropIssued,
		Payload: DropIssuedPayloadV1{
			UserID:    userID,
			DropID:    drop.ID,
			ItemID:    drop.ItemID,
			Rarity:    rarity,
			Forced:    forced,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewTradeEvent creates a trade lifecycle event of the given type
func NewTradeEvent(eventType Type, trade *domain.TradeRequest) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: TradePayloadV1{
			TradeID:       trade.ID,
			SenderID:      trade.SenderID,
			ReceiverID:    trade.ReceiverID,
			SenderItems:   trade.SenderItems,
			ReceiverItems: trade.ReceiverItems,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewReactionConsumedEvent creates a reaction consumption event
func NewReactionConsumedEvent(dropID, postID, reactorID, authorID string, xpValue int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ReactionConsumed,
		Payload: ReactionConsumedPayloadV1{
			DropID:    dropID,
			PostID:    postID,
			ReactorID: reactorID,
			AuthorID:  authorID,
			XPValue:   xpValue,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler processes a published event
type Handler func(ctx context.Context, event Event) error

// Bus is the interface for event publication and subscription
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()

	if !ok {
		return nil
	}

	// Handlers run synchronously; the live-update push channel that
	// subscribes here is expected to hand off quickly.
	var errs []error
	for _, handler := range handlers {
		if err := b.invoke(ctx, handler, event); err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(event.Type)).Inc()
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// invoke shields the publisher from handler panics; a misbehaving
// subscriber must not take the publishing operation down with it.
func (b *MemoryBus) invoke(ctx context.Context, handler Handler, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf(LogMsgHandlerPanicFormat, event.Type, r)
		}
	}()
	return handler(ctx, event)
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
