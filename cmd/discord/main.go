// Command discord runs the slash-command bot against a running exp table API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/ExpTable_Go/internal/config"
	"github.com/osse101/ExpTable_Go/internal/discord"
)

// Default values for optional configuration
const (
	DefaultHealthPort   = "8082"
	commandSetupTimeout = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	initLogger(cfg)

	if err := config.ValidateDiscordEnv(); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	if cfg.APIKey == "" {
		slog.Warn("API_KEY not set, write requests from the bot will be rejected if the API requires one")
	}
	slog.Info("Configured API URL", "url", cfg.APIURL)

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
		APIURL:  cfg.APIURL,
		APIKey:  cfg.APIKey,
		TopN:    cfg.UI.Discord.TopN,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	healthPort := os.Getenv("DISCORD_HEALTH_PORT")
	if healthPort == "" {
		healthPort = DefaultHealthPort
	}
	httpServer := discord.NewHTTPServer(healthPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	setupCtx, cancel := context.WithTimeout(context.Background(), commandSetupTimeout)
	bot.RegisterDefaultCommands(setupCtx)
	cancel()

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// The bot still works if the commands were registered earlier
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}
