package discord

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ExpTable_Go/internal/domain"
)

var testCashables = []domain.Cashable{
	{Name: "銅貨", Price: 300},
	{Name: "山吹色の菓子", Price: 5000},
	{Name: "金塊", Price: 40000},
}

func TestCashableCommand_Definition(t *testing.T) {
	cmd, _ := CashableCommand(testCashables)

	assert.Equal(t, "cashable", cmd.Name)
	require.Len(t, cmd.Options, 3)
	opt := cmd.Options[1]
	assert.Equal(t, "5000", opt.Name)
	assert.Equal(t, "山吹色の菓子 (5,000 each)", opt.Description)
	require.NotNil(t, opt.MinValue)
	assert.Equal(t, float64(0), *opt.MinValue)
	assert.Equal(t, float64(domain.MaxCashableQuantity), opt.MaxValue)
}

func TestCashableCommand_SumsGivenQuantities(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("POST /api/v1/cashables/sum", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Quantities map[int]int `json:"quantities"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[int]int{300: 2, 40000: 1}, body.Quantities)

		WriteJSON(w, domain.CashableSummary{
			Lines: []domain.CashableLine{
				{Cashable: testCashables[0], Quantity: 2, Subtotal: 600},
				{Cashable: testCashables[1], Quantity: 0, Subtotal: 0},
				{Cashable: testCashables[2], Quantity: 1, Subtotal: 40000},
			},
			Total: 40600,
		})
	})
	cmd, handler := CashableCommand(testCashables)

	handler(ctx.Session, commandInteraction(cmd.Name, "u1", intOption("300", 2), intOption("40000", 1)), ctx.APIClient)

	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Equal(t, TitleCashables, embed.Title)
	assert.Contains(t, embed.Description, "銅貨 × 2 = 600")
	assert.Contains(t, embed.Description, "金塊 × 1 = 40,000")
	assert.NotContains(t, embed.Description, "山吹色の菓子")
	assert.Contains(t, embed.Description, "**Total: 40,600**")
}

func TestCashableCommand_StoredTotalsWithoutOptions(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("GET /api/v1/cashables", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "discord-u2", r.Header.Get(headerProfileID))
		WriteJSON(w, domain.CashableSummary{
			Lines: []domain.CashableLine{{Cashable: testCashables[1], Quantity: 3, Subtotal: 15000}},
			Total: 15000,
		})
	})
	cmd, handler := CashableCommand(testCashables)

	handler(ctx.Session, commandInteraction(cmd.Name, "u2"), ctx.APIClient)

	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Description, "山吹色の菓子 × 3 = 15,000")
}

func TestCashableCommand_NothingStored(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("GET /api/v1/cashables", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, domain.CashableSummary{
			Lines: []domain.CashableLine{{Cashable: testCashables[0]}},
		})
	})
	cmd, handler := CashableCommand(testCashables)

	handler(ctx.Session, commandInteraction(cmd.Name, "u3"), ctx.APIClient)

	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Equal(t, MsgNoQuantities, embed.Description)
}

func TestCashableCommand_UnknownPrice(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("POST /api/v1/cashables/sum", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"No cashable item has that price"}`))
	})
	cmd, handler := CashableCommand(testCashables)

	handler(ctx.Session, commandInteraction(cmd.Name, "u1", intOption("1234", 1)), ctx.APIClient)

	assert.Equal(t, MsgUnknownPrice, ctx.LastContent())
}
