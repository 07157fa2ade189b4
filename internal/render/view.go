package render

import (
	"github.com/osse101/ExpTable_Go/internal/domain"
)

// WeekdayOption is one radio button of the weekday selector
type WeekdayOption struct {
	Value    int
	Label    string
	Today    bool
	Selected bool
}

// UnitOption is one radio button of the unit selector
type UnitOption struct {
	Value    string
	Label    string
	Class    string
	Selected bool
}

// ExpTablePage is the data behind the ranker page
type ExpTablePage struct {
	Table    *domain.Table
	Weekdays []WeekdayOption
	Units    []UnitOption
	// CeilingActive is set when the ceiling combo should be highlighted
	CeilingActive bool
	Version       string
}

// RowView carries a table row and the context its cells depend on
type RowView struct {
	domain.TableRow
	Selected  domain.Weekday
	Separator bool
}

func NewRowView(r domain.TableRow, selected domain.Weekday, separator bool) RowView {
	return RowView{TableRow: r, Selected: selected, Separator: separator}
}

// DayActive reports whether a bonus day letter should be highlighted
func (v RowView) DayActive(d domain.Weekday) bool {
	return d == v.Selected
}

// CashablePage is the data behind the calculator page
type CashablePage struct {
	Summary domain.CashableSummary
	Min     int
	Max     int
	Version string
}

// NewExpTablePage prepares the selectors for a table. today marks the "(今日)" label.
func NewExpTablePage(t *domain.Table, today domain.Weekday, version string) ExpTablePage {
	return ExpTablePage{
		Table:         t,
		Weekdays:      WeekdayOptions(t.Query.Selection.Weekday, today),
		Units:         UnitOptions(t.Query.Selection.UnitType),
		CeilingActive: t.Query.Settings.Difficulty != domain.CeilingAll,
		Version:       version,
	}
}

// NewCashablePage wraps a summary for rendering
func NewCashablePage(s domain.CashableSummary, version string) CashablePage {
	return CashablePage{
		Summary: s,
		Min:     domain.MinCashableQuantity,
		Max:     domain.MaxCashableQuantity,
		Version: version,
	}
}

// WeekdayOptions lists Sunday..Saturday with today's label suffixed
func WeekdayOptions(selected, today domain.Weekday) []WeekdayOption {
	out := make([]WeekdayOption, 0, domain.DaysPerWeek)
	for d := domain.Sunday; d <= domain.Saturday; d++ {
		opt := WeekdayOption{Value: int(d), Label: d.Letter(), Selected: d == selected}
		if d == today {
			opt.Today = true
			opt.Label += domain.TodayLabel
		}
		out = append(out, opt)
	}
	return out
}

// UnitOptions lists the prime-minister choice followed by each unit type
func UnitOptions(selected *domain.UnitType) []UnitOption {
	out := []UnitOption{{Value: domain.UnitSelectionSouri, Label: SouriLabel, Selected: selected == nil}}
	for _, u := range domain.UnitTypes {
		u := u
		out = append(out, UnitOption{
			Value:    u.String(),
			Label:    u.Letter(),
			Class:    UnitClass(&u),
			Selected: selected != nil && *selected == u,
		})
	}
	return out
}
