package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ExpTable_Go/internal/cashable"
	"github.com/osse101/ExpTable_Go/internal/domain"
)

// Option names of the /exp command
const (
	OptWeekday    = "weekday"
	OptUnit       = "unit"
	OptDifficulty = "difficulty"
)

const (
	commandTimeout = 15 * time.Second
	// maxChoices is Discord's limit on choices per option
	maxChoices = 25
	// maxEventRows caps the event field so the embed stays readable
	maxEventRows = 5
)

var weekdayNames = [domain.DaysPerWeek]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// ExpCommand returns the /exp command, which shows the topN stages by EXP per cost.
// ceilings become fixed choices for the difficulty option; when empty the option
// accepts free text and the API validates it.
func ExpCommand(topN int, ceilings []domain.CeilingOption) (*discordgo.ApplicationCommand, CommandHandler) {
	weekdayChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, domain.DaysPerWeek)
	for d := domain.Sunday; d <= domain.Saturday; d++ {
		weekdayChoices = append(weekdayChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s (%s)", d.Letter(), weekdayNames[d]),
			Value: int(d),
		})
	}

	unitChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: MsgSouriUnitLabel + " (none)", Value: domain.UnitSelectionSouri},
	}
	for _, u := range domain.UnitTypes {
		unitChoices = append(unitChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s (%s)", u.Letter(), u),
			Value: u.String(),
		})
	}

	var ceilingChoices []*discordgo.ApplicationCommandOptionChoice
	for _, c := range ceilings {
		if len(ceilingChoices) == maxChoices {
			break
		}
		ceilingChoices = append(ceilingChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  c.Label,
			Value: c.Token,
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "exp",
		Description: "Rank stages by EXP per cost",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptWeekday,
				Description: "Weekday for bonus days (default: today)",
				Choices:     weekdayChoices,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptUnit,
				Description: "Unit type you are levelling",
				Choices:     unitChoices,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptDifficulty,
				Description: "Hardest difficulty to include (default: your saved setting)",
				Choices:     ceilingChoices,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		table, err := client.GetTable(ctx, expRequest(i))
		if err != nil {
			respondFriendlyError(s, i, cmd.Name, err)
			return
		}

		sendEmbed(s, i, expEmbed(table, topN))
	}

	return cmd, handler
}

// expRequest turns the command options into a table request
func expRequest(i *discordgo.InteractionCreate) TableRequest {
	req := TableRequest{Profile: profileFor(i)}
	opts := optionMap(i)
	if o, ok := opts[OptWeekday]; ok {
		req.Weekday = strconv.FormatInt(o.IntValue(), 10)
	}
	if o, ok := opts[OptUnit]; ok {
		req.Unit = o.StringValue()
	}
	if o, ok := opts[OptDifficulty]; ok {
		req.Difficulty = o.StringValue()
	}
	return req
}

// expEmbed renders the topN rows, plus the event group when present
func expEmbed(t *TableView, topN int) *discordgo.MessageEmbed {
	unit := MsgSouriUnitLabel
	if t.Query.Selection.UnitType != nil {
		if u, err := domain.ParseUnitType(*t.Query.Selection.UnitType); err == nil {
			unit = u.Letter()
		}
	}
	title := fmt.Sprintf("%s (%s・%s・%s)", TitleExpTable,
		t.Query.Selection.Weekday.Letter(), unit, t.Query.Settings.Difficulty)

	desc := formatRows(t.Rows, topN)
	if desc == "" {
		desc = MsgNoRows
	}
	embed := createEmbed(title, desc, ColorExpTable, FooterExpTable+" "+t.CatalogVersion)

	if len(t.Events) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  TitleEvents,
			Value: formatRows(t.Events, maxEventRows),
		})
	}
	return embed
}

// formatRows renders up to n rows, one per line
func formatRows(rows []RowView, n int) string {
	if n > len(rows) {
		n = len(rows)
	}
	var b strings.Builder
	for idx, r := range rows[:n] {
		var marks string
		if r.BonusDayActive {
			marks += " ☀"
		}
		if r.UnitTypeActive {
			marks += " ⚔"
		}
		fmt.Fprintf(&b, "`%2d` **%s** %s EXP / %d = **%s** (%s)%s\n",
			idx+1, r.Stage.FullName, cashable.FormatGrouped(int64(r.FinalExp)),
			r.Stage.Cost, r.ExpPerCostLabel, r.FinalFactorLabel, marks)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
