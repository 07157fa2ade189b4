package render

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/osse101/ExpTable_Go/internal/domain"
	"github.com/osse101/ExpTable_Go/internal/ranking"
)

// ChartConfig sizes the chart page
type ChartConfig struct {
	Width  string
	Height string
}

// DefaultChartConfig returns the built-in chart size
func DefaultChartConfig() ChartConfig {
	return ChartConfig{Width: DefaultChartWidth, Height: DefaultChartHeight}
}

// ChartPoints returns the bar values for a table. Rows with an infinite ratio are skipped.
func ChartPoints(t *domain.Table) ([]string, []opts.BarData) {
	labels := make([]string, 0, len(t.Rows))
	data := make([]opts.BarData, 0, len(t.Rows))
	for _, r := range t.Rows {
		if math.IsInf(r.ExpPerCost, 0) {
			continue
		}
		bar := opts.BarData{Name: r.Stage.FullName, Value: math.Round(r.ExpPerCost*100) / 100}
		if r.ColorScale != nil {
			bar.ItemStyle = &opts.ItemStyle{Color: ranking.CellColor(*r.ColorScale).CSS()}
		}
		labels = append(labels, r.Stage.FullName)
		data = append(data, bar)
	}
	return labels, data
}

// Chart renders an interactive bar chart of the ranked EXP/M values
func Chart(w io.Writer, t *domain.Table, cfg ChartConfig) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: ChartTitle,
			Width:     cfg.Width,
			Height:    cfg.Height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    ChartTitle,
			Subtitle: fmt.Sprintf("%s / %s", t.Query.Selection.Weekday.Letter(), domain.UnitTypeLetter(t.Query.Selection.UnitType)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: 60},
		}),
	)

	labels, data := ChartPoints(t)
	bar.SetXAxis(labels).
		AddSeries(ChartSeriesName, data).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
