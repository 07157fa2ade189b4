package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/ExpTable_Go/internal/event"
	"github.com/osse101/ExpTable_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.CatalogReloaded,
		event.CatalogReloadFail,
		event.SettingsSaved,
		event.CashableUpdated,
	} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.CatalogReloaded:
		p, err := event.DecodePayload[event.CatalogReloadedPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return err
		}
		CatalogReloads.WithLabelValues(ResultSuccess).Inc()
		CatalogStages.Set(float64(p.StageCount))
	case event.CatalogReloadFail:
		CatalogReloads.WithLabelValues(ResultFailure).Inc()
	case event.SettingsSaved:
		p, err := event.DecodePayload[event.SettingsSavedPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return err
		}
		SettingsWrites.WithLabelValues(p.Backend).Inc()
	case event.CashableUpdated:
		p, err := event.DecodePayload[event.CashableUpdatedPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return err
		}
		CashableUpdates.WithLabelValues(strconv.Itoa(p.Price)).Inc()
	}

	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
