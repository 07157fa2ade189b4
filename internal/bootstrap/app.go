package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/ExpTable_Go/internal/cashable"
	"github.com/osse101/ExpTable_Go/internal/catalog"
	"github.com/osse101/ExpTable_Go/internal/config"
	"github.com/osse101/ExpTable_Go/internal/event"
	"github.com/osse101/ExpTable_Go/internal/exptable"
	"github.com/osse101/ExpTable_Go/internal/handler"
	"github.com/osse101/ExpTable_Go/internal/render"
	"github.com/osse101/ExpTable_Go/internal/server"
	"github.com/osse101/ExpTable_Go/internal/settings"
)

// App is the wired application: storage, catalogue, services and HTTP server
type App struct {
	Config    *config.Config
	Bus       event.Bus
	Storage   *Storage
	Catalog   *catalog.Store
	Settings  *settings.Service
	Tables    *exptable.Service
	Cashables *cashable.Service
	Server    *server.Server
}

// NewApp opens storage, loads the catalogue and builds the services and router
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	bus := InitializeEventSystem()
	RegisterEventHandlers(bus)

	storage, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := catalog.NewStore(ctx, catalog.Options{Dir: cfg.CatalogDir, IncludeEvents: cfg.IncludeEventStages}, bus)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	renderer, err := render.New()
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRenderer, err)
	}

	settingsSvc := settings.NewService(storage.Repository, bus)
	tables := exptable.NewService(store, exptable.Config{CacheSize: cfg.TableCacheSize, CacheTTL: cfg.TableCacheTTL})
	tables.Register(bus)
	cashables := cashable.NewService(store, settingsSvc)

	chart := render.ChartConfig{Width: cfg.UI.Chart.Width, Height: cfg.UI.Chart.Height}
	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		ImageDir:       cfg.ImageDir,
	}, server.Deps{
		Pool:           storage.Pool,
		Backend:        storage.Repository.Backend(),
		CatalogVersion: func() string { return store.Current().Version },
		Tables:         handler.NewExpTableHandler(tables, settingsSvc, renderer, chart, cfg.UI.Location()),
		Cashables:      handler.NewCashableHandler(cashables, renderer),
	})

	return &App{
		Config:    cfg,
		Bus:       bus,
		Storage:   storage,
		Catalog:   store,
		Settings:  settingsSvc,
		Tables:    tables,
		Cashables: cashables,
		Server:    srv,
	}, nil
}

// StartCatalogWatcher reloads the catalogue on file changes until the returned
// cancel func is called. It returns nil funcs when hot reload is disabled.
func (a *App) StartCatalogWatcher(ctx context.Context) (context.CancelFunc, <-chan error) {
	if !a.Config.CatalogWatch {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		err := a.Catalog.Watch(ctx)
		if err != nil {
			slog.Error(LogMsgCatalogWatchFailed, "error", err)
		}
		done <- err
	}()
	slog.Info(LogMsgCatalogWatchStarted, "dir", a.Config.CatalogDir)
	return cancel, done
}
