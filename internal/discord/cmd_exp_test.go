package discord

import (
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ExpTable_Go/internal/domain"
)

func TestExpCommand_Definition(t *testing.T) {
	ceilings := []domain.CeilingOption{{Token: "All", Label: "All"}, {Token: "H8", Label: "H8"}}
	cmd, _ := ExpCommand(10, ceilings)

	assert.Equal(t, "exp", cmd.Name)
	require.Len(t, cmd.Options, 3)

	weekday := cmd.Options[0]
	assert.Equal(t, discordgo.ApplicationCommandOptionInteger, weekday.Type)
	require.Len(t, weekday.Choices, domain.DaysPerWeek)
	assert.Equal(t, "月 (Monday)", weekday.Choices[1].Name)
	assert.Equal(t, 1, weekday.Choices[1].Value)

	unit := cmd.Options[1]
	require.Len(t, unit.Choices, 5)
	assert.Equal(t, domain.UnitSelectionSouri, unit.Choices[0].Value)
	assert.Equal(t, "heavy", unit.Choices[4].Value)

	require.Len(t, cmd.Options[2].Choices, 2)
	assert.Equal(t, "H8", cmd.Options[2].Choices[1].Value)
}

func TestExpCommand_FreeTextDifficultyWithoutCeilings(t *testing.T) {
	cmd, _ := ExpCommand(10, nil)
	assert.Empty(t, cmd.Options[2].Choices)
}

func TestExpCommand_Handler(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("GET /api/v1/table", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("weekday"))
		assert.Equal(t, "magic", r.URL.Query().Get("unit"))
		assert.Equal(t, "H8", r.URL.Query().Get("difficulty"))
		assert.Equal(t, "discord-u1", r.Header.Get(headerProfileID))
		_, _ = w.Write([]byte(tableJSON))
	})
	cmd, handler := ExpCommand(1, nil)

	handler(ctx.Session, commandInteraction(cmd.Name, "u1",
		intOption(OptWeekday, 1), stringOption(OptUnit, "magic"), stringOption(OptDifficulty, "H8")), ctx.APIClient)

	assert.Len(t, ctx.Callbacks, 1)
	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Title, "月・魔・All")
	assert.Contains(t, embed.Description, "**N 2-1** 8,775 EXP / 12 = **731.25** (x4.06) ☀ ⚔")
	assert.NotContains(t, embed.Description, "N 2-2")
	assert.Equal(t, FooterExpTable+" abc123", embed.Footer.Text)
	assert.Empty(t, embed.Fields)
}

func TestExpCommand_HandlerAPIError(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("GET /api/v1/table", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Unknown difficulty ceiling"}`))
	})
	cmd, handler := ExpCommand(10, nil)

	handler(ctx.Session, commandInteraction(cmd.Name, "u1", stringOption(OptDifficulty, "Z9")), ctx.APIClient)

	assert.Nil(t, ctx.LastEmbed())
	assert.Equal(t, MsgBadInput+"\nUnknown difficulty ceiling", ctx.LastContent())
}

func TestExpEmbed(t *testing.T) {
	souri := &TableView{CatalogVersion: "v1"}
	souri.Query.Settings.Difficulty = "T3"
	souri.Query.Selection.Weekday = domain.Sunday
	souri.Events = []RowView{
		{Stage: StageView{FullName: "天国", Event: "害貨獲得戦挙III"}, FinalExp: 500, ExpPerCostLabel: domain.InfinityLabel, FinalFactorLabel: "x1.00"},
	}

	embed := expEmbed(souri, 10)

	assert.Contains(t, embed.Title, "日・総理・T3")
	assert.Equal(t, MsgNoRows, embed.Description)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, TitleEvents, embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "**天国** 500 EXP / 0 = **Infinity**")
}

func TestFormatRows(t *testing.T) {
	rows := make([]RowView, 12)
	for i := range rows {
		rows[i] = RowView{Stage: StageView{FullName: "N 1-1", Cost: 10}, FinalExp: 1234567, ExpPerCostLabel: "1.00", FinalFactorLabel: "x1.00"}
	}

	out := formatRows(rows, 10)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 10)
	assert.Equal(t, "` 1` **N 1-1** 1,234,567 EXP / 10 = **1.00** (x1.00)", lines[0])
	assert.True(t, strings.HasPrefix(lines[9], "`10`"))

	assert.Empty(t, formatRows(nil, 10))
	assert.Len(t, strings.Split(formatRows(rows[:3], 10), "\n"), 3)
}
