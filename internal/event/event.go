package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string `json:"version"`
	Type    Type   `json:"type"`
	Payload any    `json:"payload"`
}

// Event types
const (
	CatalogReloaded   Type = "catalog.reloaded"
	CatalogReloadFail Type = "catalog.reload_failed"
	SettingsSaved     Type = "settings.saved"
	CashableUpdated   Type = "cashable.updated"
)

// CatalogReloadedPayloadV1 describes a successful catalogue swap
type CatalogReloadedPayloadV1 struct {
	Version    string `json:"version"`
	StageCount int    `json:"stage_count"`
	Source     string `json:"source"`
	Timestamp  int64  `json:"timestamp"`
}

// CatalogReloadFailedPayloadV1 describes a rejected catalogue change
type CatalogReloadFailedPayloadV1 struct {
	Source    string `json:"source"`
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
}

// SettingsSavedPayloadV1 is published after table settings are written
type SettingsSavedPayloadV1 struct {
	Profile   string `json:"profile"`
	Backend   string `json:"backend"`
	Timestamp int64  `json:"timestamp"`
}

// CashableUpdatedPayloadV1 is published after a cashable quantity is written
type CashableUpdatedPayloadV1 struct {
	Profile   string `json:"profile"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Timestamp int64  `json:"timestamp"`
}

// NewCatalogReloadedEvent creates a catalogue reloaded event
func NewCatalogReloadedEvent(version string, stageCount int, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogReloaded,
		Payload: CatalogReloadedPayloadV1{
			Version:    version,
			StageCount: stageCount,
			Source:     source,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewCatalogReloadFailedEvent creates a catalogue reload failure event
func NewCatalogReloadFailedEvent(source string, err error) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogReloadFail,
		Payload: CatalogReloadFailedPayloadV1{
			Source:    source,
			Error:     err.Error(),
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSettingsSavedEvent creates a settings saved event
func NewSettingsSavedEvent(profile, backend string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SettingsSaved,
		Payload: SettingsSavedPayloadV1{
			Profile:   profile,
			Backend:   backend,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCashableUpdatedEvent creates a cashable quantity event
func NewCashableUpdatedEvent(profile string, price, quantity int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CashableUpdated,
		Payload: CashableUpdatedPayloadV1{
			Profile:   profile,
			Price:     price,
			Quantity:  quantity,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
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

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
