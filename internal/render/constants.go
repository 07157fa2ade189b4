package render

// Page names
const (
	PageExpTable    = "exp_table.html"
	PageSumCashable = "sum_cashable.html"
)

// SouriLabel is the unit selector entry for no unit focus
const SouriLabel = "総理"

// Inline styles
const (
	EventSeparatorBorder = "solid 2px #c0c0c0"
	// DefaultCeilingColor is used when a ceiling option carries no color
	DefaultCeilingColor = "black"
)

// Chart defaults, overridden by the UI config file
const (
	DefaultChartWidth  = "1200px"
	DefaultChartHeight = "520px"
	ChartSeriesName    = "EXP/M"
	ChartTitle         = "経験値効率"
)
