// Package ranking sorts, filters and color-scales computed stage records.
package ranking

import (
	"math"
	"sort"

	"github.com/osse101/ExpTable_Go/internal/domain"
)

// colorScaleDepth is how many top records receive a color-scale value
const colorScaleDepth = 10

// colorScaleExponent sharpens the contrast near the top of the table
const colorScaleExponent = 1.5

// Filter holds the user's ranking options
type Filter struct {
	Ceiling        Ceiling
	IncludeExtra   bool
	OnlyTop20      bool
	SeparateEvents bool
}

// FilterFromSettings builds a Filter from persisted settings
func FilterFromSettings(s domain.TableSettings) (Filter, error) {
	c, err := ParseCeiling(s.Difficulty)
	if err != nil {
		return Filter{}, err
	}
	return Filter{
		Ceiling:        c,
		IncludeExtra:   s.IncludeExtraStage,
		OnlyTop20:      s.OnlyTop20,
		SeparateEvents: s.SeparateEventStage,
	}, nil
}

// Result is the output of one ranking pass
type Result struct {
	// Events is the separated event group, empty unless Filter.SeparateEvents
	Events []domain.ComputedRecord
	// Records is the main ranked list
	Records []domain.ComputedRecord
	// ColorScale maps record keys to their 0..1 scale value. Records without an
	// entry are below the color threshold.
	ColorScale map[string]float64
}

// Scale looks up the color-scale value for a record
func (r *Result) Scale(rec *domain.ComputedRecord) (float64, bool) {
	v, ok := r.ColorScale[rec.Key()]
	return v, ok
}

// Rank sorts records by EXP per cost and applies the filter. The input slice is not modified.
func Rank(records []domain.ComputedRecord, f Filter) Result {
	sorted := make([]domain.ComputedRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExpPerCost > sorted[j].ExpPerCost
	})

	res := Result{ColorScale: make(map[string]float64)}

	if f.SeparateEvents {
		for _, r := range sorted {
			if r.Stage.IsEvent() {
				res.Events = append(res.Events, r)
			}
		}
	}

	main := make([]domain.ComputedRecord, 0, len(sorted))
	for _, r := range sorted {
		if r.Stage.Cost <= 0 {
			continue
		}
		if !f.IncludeExtra && r.Stage.IsExtra() {
			continue
		}
		if !f.Ceiling.Allows(r.Stage) {
			continue
		}
		main = append(main, r)
	}

	applyColorScale(main, res.ColorScale)

	if f.OnlyTop20 && len(main) > domain.TopRowLimit {
		main = main[:domain.TopRowLimit]
	}
	res.Records = main
	return res
}

// applyColorScale assigns ((r-min)/(max-min))^1.5 to every record at or above the
// ratio of the record ranked min(10, n). Nothing is assigned for an empty list.
func applyColorScale(records []domain.ComputedRecord, out map[string]float64) {
	if len(records) == 0 {
		return
	}
	maxRatio := records[0].ExpPerCost
	minRatio := records[min(colorScaleDepth, len(records))-1].ExpPerCost
	span := maxRatio - minRatio

	for i := range records {
		r := records[i].ExpPerCost
		if r < minRatio {
			continue
		}
		scale := 1.0
		if span > 0 {
			scale = math.Pow((r-minRatio)/span, colorScaleExponent)
		}
		out[records[i].Key()] = scale
	}
}
