package main

import (
	"github.com/osse101/ExpTable_Go/internal/config"
	"github.com/osse101/ExpTable_Go/internal/logger"
)

// initLogger installs the structured logger for the bot
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == config.DefaultEnvironment
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName+"-discord",
		cfg.Version,
		cfg.Environment,
		addSource,
	))
}
