// Package render turns ranked tables and cashable summaries into HTML pages.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"path"

	"github.com/osse101/ExpTable_Go/internal/cashable"
	"github.com/osse101/ExpTable_Go/internal/domain"
	"github.com/osse101/ExpTable_Go/internal/ranking"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer holds the parsed page templates
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates. Each page gets its own clone of the layout
// so the pages can all define "content".
func New() (*Renderer, error) {
	base, err := template.New("base").Funcs(FuncMap()).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{PageExpTable, PageSumCashable} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout: %w", err)
		}
		if _, err := clone.ParseFS(templateFS, path.Join("templates", name)); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		pages[name] = clone
	}
	return &Renderer{pages: pages}, nil
}

// Execute renders a page through the layout
func (r *Renderer) Execute(w io.Writer, name string, data any) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

// ExpTable renders the ranker page
func (r *Renderer) ExpTable(w io.Writer, page ExpTablePage) error {
	return r.Execute(w, PageExpTable, page)
}

// SumCashable renders the cashable calculator page
func (r *Renderer) SumCashable(w io.Writer, page CashablePage) error {
	return r.Execute(w, PageSumCashable, page)
}

// FuncMap returns the template helpers
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"stageClass":     StageClass,
		"unitClass":      UnitClass,
		"unitLetter":     domain.UnitTypeLetter,
		"bonusDayLetter": domain.BonusDayLetter,
		"manaCell":       ManaCell,
		"doubleCell":     DoubleCell,
		"bonusScaleCell": BonusScaleCell,
		"unitScaleCell":  UnitScaleCell,
		"scaleStyle":     ScaleStyle,
		"grouped":        cashable.FormatGrouped,
		"groupedInt":     func(n int) string { return cashable.FormatGrouped(int64(n)) },
		"isLast":         func(i, n int) bool { return i == n-1 },
		"ceilingColor":   CeilingColor,
		"rowView":        NewRowView,
		"separatorStyle": SeparatorStyle,
	}
}

// StageClass returns the CSS class for a stage name cell
func StageClass(s *domain.Stage) string {
	if s.IsEvent() {
		return "stage_name_event"
	}
	diff := domain.DifficultyNormal
	if s.Difficulty != nil {
		diff = *s.Difficulty
	}
	return "stage_name_" + s.Chapter.String() + "_" + diff.String()
}

// UnitClass returns the CSS class for a unit type marker, empty when nil
func UnitClass(u *domain.UnitType) string {
	if u == nil {
		return ""
	}
	return "unit_type_" + u.String()
}

func ManaCell(r domain.TableRow) string {
	if r.ManaActive {
		return domain.ManaLabel
	}
	return domain.NoneLabel
}

func DoubleCell(r domain.TableRow) string {
	if r.DoubleActive {
		return domain.DoubleLabel
	}
	return ""
}

func BonusScaleCell(r domain.TableRow) string {
	if r.BonusDayActive {
		return domain.BonusDayLabel
	}
	return ""
}

// UnitScaleCell follows the category letter when the focused unit type matches
func UnitScaleCell(r domain.TableRow) string {
	if r.UnitTypeActive {
		return domain.UnitTypeLabel
	}
	return ""
}

// ScaleStyle returns the inline style of an EXP/M cell
func ScaleStyle(scale *float64) template.CSS {
	if scale == nil {
		return "background-color: inherit"
	}
	c := ranking.CellColor(*scale)
	return template.CSS("background-color: " + c.CSS() + "; border-top-width: 1px; border-bottom-width: 1px")
}

// SeparatorStyle returns the border drawn under the last separated event row
func SeparatorStyle(last bool) template.CSS {
	if !last {
		return ""
	}
	return template.CSS("border-bottom: " + EventSeparatorBorder)
}

// CeilingColor returns the option's text color
func CeilingColor(opt domain.CeilingOption) template.CSS {
	if opt.Color == "" {
		return DefaultCeilingColor
	}
	return template.CSS(opt.Color)
}
