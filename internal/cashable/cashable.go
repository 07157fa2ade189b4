// Package cashable totals the money value of cashable items held by a player.
package cashable

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/ExpTable_Go/internal/domain"
)

var printer = message.NewPrinter(language.Japanese)

// Sum multiplies each item's price by its clamped quantity. Items keep their
// catalogue order and missing quantities count as zero.
func Sum(items []domain.Cashable, qty map[int]int) domain.CashableSummary {
	out := domain.CashableSummary{Lines: make([]domain.CashableLine, 0, len(items))}
	for _, item := range items {
		n := domain.ClampQuantity(qty[item.Price])
		sub := int64(item.Price) * int64(n)
		out.Lines = append(out.Lines, domain.CashableLine{Cashable: item, Quantity: n, Subtotal: sub})
		out.Total += sub
	}
	return out
}

// FormatGrouped renders n with thousands separators, e.g. 1234567 -> "1,234,567"
func FormatGrouped(n int64) string {
	return printer.Sprintf("%d", n)
}
