package render

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ExpTable_Go/internal/catalog"
	"github.com/osse101/ExpTable_Go/internal/domain"
	"github.com/osse101/ExpTable_Go/internal/exptable"
)

func ptr[T any](v T) *T { return &v }

func TestStageClass(t *testing.T) {
	tests := []struct {
		stage domain.Stage
		want  string
	}{
		{domain.Stage{Chapter: domain.Chapter1, Difficulty: ptr(domain.DifficultyNormal)}, "stage_name_chapter1_normal"},
		{domain.Stage{Chapter: domain.Chapter1, Difficulty: ptr(domain.DifficultyTwist)}, "stage_name_chapter1_twist"},
		{domain.Stage{Chapter: domain.Chapter2, Difficulty: ptr(domain.DifficultyHard)}, "stage_name_chapter2_hard"},
		{domain.Stage{Chapter: domain.Chapter1, Difficulty: ptr(domain.DifficultyChaos)}, "stage_name_chapter1_chaos"},
		{domain.Stage{Chapter: domain.ChapterEvent}, "stage_name_event"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, StageClass(&tt.stage))
		})
	}
}

func TestCellLabels(t *testing.T) {
	on := domain.TableRow{ComputedRecord: domain.ComputedRecord{ManaActive: true, DoubleActive: true, BonusDayActive: true, UnitTypeActive: true}}
	off := domain.TableRow{}

	assert.Equal(t, "x1.2", ManaCell(on))
	assert.Equal(t, "--", ManaCell(off))
	assert.Equal(t, "x2.0", DoubleCell(on))
	assert.Equal(t, "", DoubleCell(off))
	assert.Equal(t, "x1.3", BonusScaleCell(on))
	assert.Equal(t, "", BonusScaleCell(off))
	assert.Equal(t, " x1.3", UnitScaleCell(on))
	assert.Equal(t, "", UnitScaleCell(off))

	assert.Equal(t, "unit_type_heavy", UnitClass(ptr(domain.UnitHeavy)))
	assert.Equal(t, "", UnitClass(nil))
}

func TestScaleStyle(t *testing.T) {
	assert.Equal(t, "background-color: inherit", string(ScaleStyle(nil)))
	assert.Contains(t, string(ScaleStyle(ptr(1.0))), "rgb(60, 240, 92)")
	assert.Contains(t, string(ScaleStyle(ptr(0.0))), "rgb(255, 255, 255)")
	assert.Empty(t, string(SeparatorStyle(false)))
	assert.Equal(t, "border-bottom: solid 2px #c0c0c0", string(SeparatorStyle(true)))
}

func TestWeekdayOptions(t *testing.T) {
	opts := WeekdayOptions(domain.Tuesday, domain.Friday)

	require.Len(t, opts, 7)
	assert.Equal(t, "日", opts[0].Label)
	assert.Equal(t, "金(今日)", opts[5].Label)
	assert.True(t, opts[5].Today)
	assert.True(t, opts[2].Selected)

	selected := 0
	for _, o := range opts {
		if o.Selected {
			selected++
		}
	}
	assert.Equal(t, 1, selected)
}

func TestUnitOptions(t *testing.T) {
	souri := UnitOptions(nil)
	require.Len(t, souri, 5)
	assert.True(t, souri[0].Selected)
	assert.Equal(t, SouriLabel, souri[0].Label)

	ranged := UnitOptions(ptr(domain.UnitRanged))
	assert.False(t, ranged[0].Selected)
	assert.True(t, ranged[2].Selected)
	assert.Equal(t, "射", ranged[2].Label)
	assert.Equal(t, "unit_type_ranged", ranged[2].Class)
}

func buildTable(t *testing.T, opts catalog.Options, q domain.TableQuery) *domain.Table {
	t.Helper()
	cat, err := catalog.Load(opts)
	require.NoError(t, err)
	table, err := exptable.NewService(catalog.NewStaticStore(cat), exptable.Config{}).BuildTable(context.Background(), q)
	require.NoError(t, err)
	return table
}

func TestRenderer_ExpTable(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	q := domain.TableQuery{
		Selection: domain.DefaultSelection(domain.Monday, ptr(domain.UnitMagic)),
		Settings:  domain.DefaultTableSettings(),
	}
	table := buildTable(t, catalog.Options{}, q)

	var buf bytes.Buffer
	require.NoError(t, r.ExpTable(&buf, NewExpTablePage(table, domain.Monday, "v-test")))
	html := buf.String()

	assert.Contains(t, html, "月(今日)")
	assert.Contains(t, html, "stage_name_chapter1_normal")
	assert.Contains(t, html, table.Rows[0].Stage.FullName)
	assert.Contains(t, html, "rgb(60, 240, 92)")
	assert.Contains(t, html, `active_exp_bonus_unit_type">魔</span> x1.3</td>`)
	assert.Equal(t, domain.TopRowLimit, strings.Count(html, `class="final_exp_per_motivation"`))
	assert.NotContains(t, html, `name="separate_events"`)
	assert.NotContains(t, html, `name="separate_events_offered"`)
	assert.NotContains(t, html, "#DDEEFF")
	assert.Contains(t, html, "v-test")
}

func TestRenderer_ExpTableWithEvents(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	settings := domain.DefaultTableSettings()
	settings.SeparateEventStage = true
	settings.Difficulty = "H8"
	q := domain.TableQuery{Selection: domain.DefaultSelection(domain.Sunday, nil), Settings: settings}
	table := buildTable(t, catalog.Options{IncludeEvents: true}, q)
	require.NotEmpty(t, table.Events)

	var buf bytes.Buffer
	require.NoError(t, r.ExpTable(&buf, NewExpTablePage(table, domain.Wednesday, "")))
	html := buf.String()

	assert.Contains(t, html, `name="separate_events"`)
	assert.Contains(t, html, `name="separate_events_offered"`)
	assert.Contains(t, html, "stage_name_event")
	assert.NotContains(t, html, "</span> x1.3", "no unit focused")
	// every cell of the last event row carries the border
	assert.Equal(t, 13, strings.Count(html, EventSeparatorBorder))
	assert.Contains(t, html, "background-color: #DDEEFF")
}

func TestRenderer_SumCashable(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	summary := domain.CashableSummary{
		Lines: []domain.CashableLine{
			{Cashable: domain.Cashable{Name: "インサイダー", Price: 40000}, Quantity: 30, Subtotal: 1200000},
		},
		Total: 1200000,
	}

	var buf bytes.Buffer
	require.NoError(t, r.SumCashable(&buf, NewCashablePage(summary, "")))
	html := buf.String()

	assert.Contains(t, html, "img/cashable-40000.png")
	assert.Contains(t, html, "40,000")
	assert.Contains(t, html, "1,200,000")
	assert.Contains(t, html, `max="999"`)
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Error(t, r.Execute(&bytes.Buffer{}, "missing.html", nil))
}

func TestChart(t *testing.T) {
	q := domain.TableQuery{
		Selection: domain.DefaultSelection(domain.Saturday, nil),
		Settings:  domain.DefaultTableSettings(),
	}
	table := buildTable(t, catalog.Options{}, q)

	labels, data := ChartPoints(table)
	require.Len(t, labels, len(table.Rows))
	assert.Equal(t, table.Rows[0].Stage.FullName, labels[0])
	require.NotNil(t, data[0].ItemStyle)
	assert.Equal(t, "rgb(60, 240, 92)", data[0].ItemStyle.Color)

	var buf bytes.Buffer
	require.NoError(t, Chart(&buf, table, DefaultChartConfig()))
	assert.Contains(t, buf.String(), "echarts")
	assert.Contains(t, buf.String(), labels[0])
}

func TestChartPoints_SkipsInfinity(t *testing.T) {
	table := &domain.Table{Rows: []domain.TableRow{
		{ComputedRecord: domain.ComputedRecord{Stage: &domain.Stage{FullName: "free"}, ExpPerCost: math.Inf(1)}},
		{ComputedRecord: domain.ComputedRecord{Stage: &domain.Stage{FullName: "N 1-1"}, ExpPerCost: 12.346}},
	}}

	labels, data := ChartPoints(table)
	assert.Equal(t, []string{"N 1-1"}, labels)
	assert.Equal(t, 12.35, data[0].Value)
	assert.Nil(t, data[0].ItemStyle)
}
