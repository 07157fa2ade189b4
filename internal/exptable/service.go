// Package exptable builds ranked experience tables from the active catalogue.
package exptable

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ExpTable_Go/internal/catalog"
	"github.com/osse101/ExpTable_Go/internal/domain"
	"github.com/osse101/ExpTable_Go/internal/event"
	"github.com/osse101/ExpTable_Go/internal/logger"
	"github.com/osse101/ExpTable_Go/internal/metrics"
	"github.com/osse101/ExpTable_Go/internal/ranking"
	"github.com/osse101/ExpTable_Go/internal/reward"
)

// Builder produces ranked tables. Handlers and the Discord bot depend on this interface.
type Builder interface {
	BuildTable(ctx context.Context, q domain.TableQuery) (*domain.Table, error)
	Catalog() *catalog.Catalog
}

// Config controls the result cache
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

// Service computes, ranks and caches tables
type Service struct {
	store *catalog.Store
	cache *expirable.LRU[string, *domain.Table]
	now   func() time.Time
}

// NewService creates a table service over the catalogue store
func NewService(store *catalog.Store, cfg Config) *Service {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &Service{
		store: store,
		cache: expirable.NewLRU[string, *domain.Table](cfg.CacheSize, nil, cfg.CacheTTL),
		now:   time.Now,
	}
}

// Register purges the cache whenever the catalogue is swapped
func (s *Service) Register(bus event.Bus) {
	bus.Subscribe(event.CatalogReloaded, func(ctx context.Context, evt event.Event) error {
		s.cache.Purge()
		logger.FromContext(ctx).Debug(LogMsgCachePurged)
		return nil
	})
}

// Catalog returns the active catalogue snapshot
func (s *Service) Catalog() *catalog.Catalog {
	return s.store.Current()
}

// BuildTable computes every stage for the selection and ranks it with the settings.
// The returned table is shared with the cache and must not be modified.
func (s *Service) BuildTable(ctx context.Context, q domain.TableQuery) (*domain.Table, error) {
	if !q.Selection.Weekday.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidWeekday, q.Selection.Weekday)
	}
	filter, err := ranking.FilterFromSettings(q.Settings)
	if err != nil {
		return nil, err
	}

	cat := s.store.Current()
	if !cat.HasCeiling(q.Settings.Difficulty) {
		return nil, fmt.Errorf("%w: %q is not offered", domain.ErrInvalidCeiling, q.Settings.Difficulty)
	}
	key := cacheKey(cat.Version, q)
	if t, ok := s.cache.Get(key); ok {
		metrics.TableCacheHits.Inc()
		return t, nil
	}
	metrics.TableCacheMisses.Inc()

	start := time.Now()
	records := reward.ComputeAll(cat.Stages, q.Selection)
	res := ranking.Rank(records, filter)

	table := &domain.Table{
		Query:          q,
		Events:         rows(&res, res.Events),
		Rows:           rows(&res, res.Records),
		HasEventStages: cat.HasEventStages(),
		Ceilings:       cat.Ceilings,
		CatalogVersion: cat.Version,
		GeneratedAt:    s.now(),
	}

	elapsed := time.Since(start)
	metrics.TablesBuilt.Inc()
	metrics.TableBuildDuration.Observe(elapsed.Seconds())
	logger.FromContext(ctx).Debug(LogMsgTableBuilt,
		"version", cat.Version, "rows", len(table.Rows), "events", len(table.Events), "duration", elapsed)

	s.cache.Add(key, table)
	return table, nil
}

func rows(res *ranking.Result, recs []domain.ComputedRecord) []domain.TableRow {
	out := make([]domain.TableRow, 0, len(recs))
	for i := range recs {
		var scale *float64
		if v, ok := res.Scale(&recs[i]); ok {
			scale = &v
		}
		out = append(out, domain.NewTableRow(recs[i], scale))
	}
	return out
}

func cacheKey(version string, q domain.TableQuery) string {
	unit := -1
	if q.Selection.UnitType != nil {
		unit = int(*q.Selection.UnitType)
	}
	sel, set := q.Selection, q.Settings
	return fmt.Sprintf("%s|%d|%d|%t|%t|%t|%s|%t|%t|%t",
		version, sel.Weekday, unit, sel.UseManaBonus, sel.UseDoubleBonus, sel.UseProtectionBonus,
		set.Difficulty, set.IncludeExtraStage, set.OnlyTop20, set.SeparateEventStage)
}
