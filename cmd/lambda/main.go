//go:build lambda

// Command lambda serves the ranked table from an AWS Lambda function URL,
// using the embedded catalogue and no settings storage.
package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/osse101/ExpTable_Go/internal/cashable"
	"github.com/osse101/ExpTable_Go/internal/catalog"
	"github.com/osse101/ExpTable_Go/internal/config"
	"github.com/osse101/ExpTable_Go/internal/exptable"
	"github.com/osse101/ExpTable_Go/internal/funcurl"
	"github.com/osse101/ExpTable_Go/internal/logger"
	"github.com/osse101/ExpTable_Go/internal/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, logger.LogFormatJSON, cfg.ServiceName+"-lambda", cfg.Version, cfg.Environment, false))

	store, err := catalog.NewStore(context.Background(), catalog.Options{IncludeEvents: cfg.IncludeEventStages}, nil)
	if err != nil {
		slog.Error("Failed to load catalogue", "error", err)
		os.Exit(1)
	}

	tables := exptable.NewService(store, exptable.Config{CacheSize: cfg.TableCacheSize, CacheTTL: cfg.TableCacheTTL})
	cashables := cashable.NewService(store, settings.NewService(settings.NewMemoryRepository(), nil))

	lambda.Start(funcurl.New(tables, cashables, cfg.UI.Location()).Handle)
}
