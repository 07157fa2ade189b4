package domain

import (
	"fmt"
	"math"
)

// Display tokens shared by the HTML, JSON and Discord renderings
const (
	InfinityLabel = "Infinity"
	UnknownLetter = "？"
	NoneLabel     = "--"
)

// FormatRatio renders an EXP/M value with two decimals, or "Infinity"
func FormatRatio(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return InfinityLabel
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatGoldRatio renders a Gold/M value. Non-positive values mean the payout
// is unknown and render as "？".
func FormatGoldRatio(v float64) string {
	if !(v > 0) {
		return UnknownLetter
	}
	return FormatRatio(v)
}

// FormatFactor renders a multiplier such as "x4.06"
func FormatFactor(f float64) string {
	return fmt.Sprintf("x%.2f", f)
}

// BonusDayLetter renders an optional weekday; nil means no bonus day
func BonusDayLetter(d *Weekday) string {
	if d == nil {
		return NoneLabel
	}
	return d.Letter()
}

// UnitTypeLetter renders an optional unit type; nil means no unit bonus
func UnitTypeLetter(u *UnitType) string {
	if u == nil {
		return NoneLabel
	}
	return u.Letter()
}

// finiteOrNil returns a pointer to v when it is finite
func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// NewTableRow builds the display row for a record. scale is nil for rows without
// a color-scale value.
func NewTableRow(rec ComputedRecord, scale *float64) TableRow {
	row := TableRow{
		ComputedRecord:   rec,
		ExpPerCostValue:  finiteOrNil(rec.ExpPerCost),
		ExpPerCostLabel:  FormatRatio(rec.ExpPerCost),
		GoldPerCostLabel: FormatGoldRatio(rec.GoldPerCost),
		FinalFactorLabel: FormatFactor(rec.FinalFactor),
		ColorScale:       scale,
	}
	if rec.GoldPerCostKnown() {
		row.GoldPerCostValue = finiteOrNil(rec.GoldPerCost)
	}
	return row
}
