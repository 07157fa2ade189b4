package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ExpTable_Go/internal/cashable"
	"github.com/osse101/ExpTable_Go/internal/domain"
)

// CashableCommand returns the /cashable command. Each item gets an integer option
// named by its price. Without options the user's stored quantities are totalled.
func CashableCommand(items []domain.Cashable) (*discordgo.ApplicationCommand, CommandHandler) {
	minQty := float64(domain.MinCashableQuantity)
	options := make([]*discordgo.ApplicationCommandOption, 0, len(items))
	for _, item := range items {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        strconv.Itoa(item.Price),
			Description: fmt.Sprintf("%s (%s each)", item.Name, cashable.FormatGrouped(int64(item.Price))),
			MinValue:    &minQty,
			MaxValue:    domain.MaxCashableQuantity,
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "cashable",
		Description: "Total the money value of cashable items",
		Options:     options,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		var (
			summary *domain.CashableSummary
			err     error
		)
		if qty := cashableQuantities(i); len(qty) > 0 {
			summary, err = client.SumCashables(ctx, qty)
		} else {
			summary, err = client.GetCashables(ctx, profileFor(i))
		}
		if err != nil {
			respondFriendlyError(s, i, cmd.Name, err)
			return
		}

		sendEmbed(s, i, cashableEmbed(summary))
	}

	return cmd, handler
}

// cashableQuantities reads the price-named options into a quantity map
func cashableQuantities(i *discordgo.InteractionCreate) map[int]int {
	qty := make(map[int]int)
	for name, o := range optionMap(i) {
		price, err := strconv.Atoi(name)
		if err != nil {
			continue
		}
		qty[price] = int(o.IntValue())
	}
	return qty
}

func cashableEmbed(s *domain.CashableSummary) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, l := range s.Lines {
		if l.Quantity == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s × %d = %s\n", l.Name, l.Quantity, cashable.FormatGrouped(l.Subtotal))
	}
	if b.Len() == 0 {
		return createEmbed(TitleCashables, MsgNoQuantities, ColorCashables, "")
	}
	fmt.Fprintf(&b, "\n**Total: %s**", cashable.FormatGrouped(s.Total))
	return createEmbed(TitleCashables, b.String(), ColorCashables, "")
}
