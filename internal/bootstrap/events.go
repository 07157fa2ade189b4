package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ExpTable_Go/internal/event"
	"github.com/osse101/ExpTable_Go/internal/logger"
	"github.com/osse101/ExpTable_Go/internal/metrics"
)

// eventTypes are every event the application publishes
var eventTypes = []event.Type{
	event.CatalogReloaded,
	event.CatalogReloadFail,
	event.SettingsSaved,
	event.CashableUpdated,
}

// InitializeEventSystem creates the in-process event bus
func InitializeEventSystem() *event.MemoryBus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized, "transport", "memory")
	return bus
}

// RegisterEventHandlers subscribes the metrics collector and an event logger.
// The table service is registered separately once the catalogue exists, since
// the initial CatalogReloaded event is published while the store loads.
func RegisterEventHandlers(bus event.Bus) {
	metrics.NewEventMetricsCollector().Register(bus)
	for _, t := range eventTypes {
		bus.Subscribe(t, logEvent)
	}
}

func logEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Debug(LogMsgEventObserved, "type", evt.Type, "version", evt.Version)
	return nil
}
