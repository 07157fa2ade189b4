package handler

import (
	"net/url"

	"github.com/osse101/ExpTable_Go/internal/domain"
)

// Query parameter names shared by the page, the chart and the table API
const (
	ParamWeekday        = "weekday"
	ParamUnit           = "unit"
	ParamMana           = "mana"
	ParamDouble         = "double"
	ParamProtection     = "protection"
	ParamDifficulty     = "difficulty"
	ParamIncludeExtra   = "include_extra"
	ParamOnlyTop20      = "only_top20"
	ParamSeparateEvents = "separate_events"
	// ParamSubmitted marks a form submission, where an absent checkbox means unchecked
	ParamSubmitted = "submitted"
	// ParamEventsOffered is sent by forms that showed the separate_events checkbox
	ParamEventsOffered = "separate_events_offered"
)

// TableParams holds the raw selector values for validation
type TableParams struct {
	Weekday    string `validate:"omitempty,weekday"`
	Unit       string `validate:"omitempty,oneof=souri melee ranged magic heavy"`
	Difficulty string `validate:"omitempty,ceiling"`
}

// parseTableQuery merges query parameters over today's defaults and the stored settings.
// changed reports whether any persisted setting was overridden.
func parseTableQuery(q url.Values, stored domain.TableSettings, today domain.Weekday) (domain.TableQuery, bool, error) {
	params := TableParams{
		Weekday:    q.Get(ParamWeekday),
		Unit:       q.Get(ParamUnit),
		Difficulty: q.Get(ParamDifficulty),
	}
	if err := GetValidator().ValidateStruct(params); err != nil {
		return domain.TableQuery{}, false, err
	}

	day := today
	if params.Weekday != "" {
		d, err := domain.ParseWeekday(params.Weekday)
		if err != nil {
			return domain.TableQuery{}, false, err
		}
		day = d
	}
	unit, err := domain.ParseUnitSelection(params.Unit)
	if err != nil {
		return domain.TableQuery{}, false, err
	}

	submitted := q.Has(ParamSubmitted)
	flag := func(name string, def bool) bool {
		if submitted {
			return parseFlag(q.Get(name), q.Has(name), false)
		}
		return parseFlag(q.Get(name), q.Has(name), def)
	}

	sel := domain.DefaultSelection(day, unit)
	sel.UseManaBonus = flag(ParamMana, sel.UseManaBonus)
	sel.UseDoubleBonus = flag(ParamDouble, sel.UseDoubleBonus)
	sel.UseProtectionBonus = flag(ParamProtection, sel.UseProtectionBonus)

	set := stored
	if params.Difficulty != "" {
		set.Difficulty = params.Difficulty
	}
	set.IncludeExtraStage = flag(ParamIncludeExtra, set.IncludeExtraStage)
	set.OnlyTop20 = flag(ParamOnlyTop20, set.OnlyTop20)
	if !submitted || q.Has(ParamEventsOffered) {
		set.SeparateEventStage = flag(ParamSeparateEvents, set.SeparateEventStage)
	}

	return domain.TableQuery{Selection: sel, Settings: set}, set != stored, nil
}
