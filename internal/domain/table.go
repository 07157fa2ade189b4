package domain

import "time"

// CeilingAll disables the difficulty ceiling filter
const CeilingAll = "All"

// TopRowLimit is the row cap applied when OnlyTop20 is set
const TopRowLimit = 20

// CeilingOption is one entry of the difficulty ceiling selector
type CeilingOption struct {
	Token string `json:"token"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// TableSettings are the persisted ranking preferences
type TableSettings struct {
	Difficulty         string `json:"difficulty" validate:"required,ceiling"`
	IncludeExtraStage  bool   `json:"include_extra_stage"`
	OnlyTop20          bool   `json:"only_top20"`
	SeparateEventStage bool   `json:"separate_event_stage"`
}

// DefaultTableSettings returns the settings used when nothing has been stored
func DefaultTableSettings() TableSettings {
	return TableSettings{
		Difficulty:         CeilingAll,
		IncludeExtraStage:  true,
		OnlyTop20:          true,
		SeparateEventStage: false,
	}
}

// TableQuery is everything needed to build one ranked table
type TableQuery struct {
	Selection Selection     `json:"selection"`
	Settings  TableSettings `json:"settings"`
}

// TableRow is a ranked record with its display values
type TableRow struct {
	ComputedRecord

	// ExpPerCostValue is nil when the ratio is infinite
	ExpPerCostValue *float64 `json:"exp_per_cost"`
	ExpPerCostLabel string   `json:"exp_per_cost_label"`
	// GoldPerCostValue is nil when the ratio is infinite or unknown
	GoldPerCostValue *float64 `json:"gold_per_cost"`
	GoldPerCostLabel string   `json:"gold_per_cost_label"`
	FinalFactorLabel string   `json:"final_factor_label"`

	// ColorScale is absent for rows below the top-ten threshold
	ColorScale *float64 `json:"color_scale,omitempty"`
}

// Table is the ranked output for one query
type Table struct {
	Query          TableQuery      `json:"query"`
	Events         []TableRow      `json:"events"`
	Rows           []TableRow      `json:"rows"`
	HasEventStages bool            `json:"has_event_stages"`
	Ceilings       []CeilingOption `json:"ceilings"`
	CatalogVersion string          `json:"catalog_version"`
	GeneratedAt    time.Time       `json:"generated_at"`
}
