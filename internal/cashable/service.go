package cashable

import (
	"context"
	"fmt"

	"github.com/osse101/ExpTable_Go/internal/catalog"
	"github.com/osse101/ExpTable_Go/internal/domain"
	"github.com/osse101/ExpTable_Go/internal/event"
	"github.com/osse101/ExpTable_Go/internal/logger"
	"github.com/osse101/ExpTable_Go/internal/settings"
)

// Service persists per-profile quantities and computes summaries against the active catalogue
type Service struct {
	catalog  *catalog.Store
	settings *settings.Service
}

func NewService(store *catalog.Store, settingsSvc *settings.Service) *Service {
	return &Service{catalog: store, settings: settingsSvc}
}

// Summary returns the stored quantities for profile with subtotals and total
func (s *Service) Summary(ctx context.Context, profile string) domain.CashableSummary {
	items := s.catalog.Current().Cashables

	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = settings.CashableKey(item.Price)
	}
	stored := s.settings.LoadInts(ctx, profile, keys)

	qty := make(map[int]int, len(items))
	for _, item := range items {
		qty[item.Price] = stored[settings.CashableKey(item.Price)]
	}
	return Sum(items, qty)
}

// SetQuantity stores the quantity held for the item with the given price
func (s *Service) SetQuantity(ctx context.Context, profile string, price, quantity int) (domain.CashableLine, error) {
	item, err := s.catalog.Current().Cashable(price)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgUnknownPrice, "price", price)
		return domain.CashableLine{}, err
	}
	if quantity < domain.MinCashableQuantity || quantity > domain.MaxCashableQuantity {
		return domain.CashableLine{}, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}

	if err := s.settings.SaveInt(ctx, profile, settings.CashableKey(price), quantity); err != nil {
		return domain.CashableLine{}, err
	}
	logger.FromContext(ctx).Debug(LogMsgQuantitySaved, "profile", profile, "price", price, "quantity", quantity)
	s.settings.Publish(ctx, event.NewCashableUpdatedEvent(profile, price, quantity))

	return domain.CashableLine{Cashable: item, Quantity: quantity, Subtotal: int64(price) * int64(quantity)}, nil
}

// SumQuantities computes a summary without touching storage. Unknown prices are rejected.
func (s *Service) SumQuantities(qty map[int]int) (domain.CashableSummary, error) {
	cat := s.catalog.Current()
	for price := range qty {
		if _, err := cat.Cashable(price); err != nil {
			return domain.CashableSummary{}, err
		}
	}
	return Sum(cat.Cashables, qty), nil
}
