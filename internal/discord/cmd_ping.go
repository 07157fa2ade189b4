package discord

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

// pingTimeout bounds the API health probe so the reply stays within Discord's 3s window
const pingTimeout = 2 * time.Second

// PingCommand returns /ping, which also reports whether the exp-table API answers
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check that the bot and the exp-table API are up",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()

		content := MsgPong
		if !client.Healthy(ctx) {
			content = MsgPongAPIDown
		}

		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Content: content},
		}); err != nil {
			slog.Error(LogMsgRespondFailed, "command", cmd.Name, "error", err)
		}
	}

	return cmd, handler
}
