// Package discord is a slash-command front end for the exp-table API.
package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ExpTable_Go/internal/domain"
)

// DefaultTopN is the number of rows /exp shows when Config.TopN is unset
const DefaultTopN = 10

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	AppID    string
	GuildID  string
	TopN     int
	Registry *CommandRegistry
}

// Config holds the bot configuration
type Config struct {
	Token string
	AppID string
	// GuildID registers commands on one guild; empty registers them globally
	GuildID string
	APIURL  string
	APIKey  string
	TopN    int
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	topN := cfg.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	return &Bot{
		Session:  s,
		Client:   NewAPIClient(cfg.APIURL, cfg.APIKey),
		AppID:    cfg.AppID,
		GuildID:  cfg.GuildID,
		TopN:     topN,
		Registry: NewCommandRegistry(),
	}, nil
}

// RegisterDefaultCommands fills the registry with /ping, /exp and /cashable.
// Option choices come from the API; if it is unreachable the commands still
// register with free-text or no options.
func (b *Bot) RegisterDefaultCommands(ctx context.Context) {
	b.Registry.Register(PingCommand())

	ceilings, err := b.Client.GetCeilings(ctx)
	if err != nil {
		slog.Warn(LogMsgCeilingsFallback, "error", err)
	}
	b.Registry.Register(ExpCommand(b.TopN, ceilings))

	var items []domain.Cashable
	if summary, err := b.Client.GetCashables(ctx, ""); err != nil {
		slog.Warn(LogMsgCashablesFallback, "error", err)
	} else {
		for _, l := range summary.Lines {
			items = append(items, l.Cashable)
		}
	}
	b.Registry.Register(CashableCommand(items))
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Warn("Error closing Discord session", "error", err)
	}
}

// Run starts the bot and blocks until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	<-ctx.Done()
	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Client)
	}
}
