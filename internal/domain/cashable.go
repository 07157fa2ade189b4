package domain

import "strconv"

// Quantity bounds accepted by the cashable calculator
const (
	MinCashableQuantity = 0
	MaxCashableQuantity = 999
)

// Cashable is an in-game item that can be converted to money at a fixed price
type Cashable struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// ImageURL returns the relative path of the item's icon
func (c Cashable) ImageURL() string {
	return "img/cashable-" + strconv.Itoa(c.Price) + ".png"
}

// CashableLine is one row of the calculator
type CashableLine struct {
	Cashable
	Quantity int   `json:"quantity"`
	Subtotal int64 `json:"subtotal"`
}

// CashableSummary is the calculator output
type CashableSummary struct {
	Lines []CashableLine `json:"lines"`
	Total int64          `json:"total"`
}

// ClampQuantity limits a quantity to the accepted range
func ClampQuantity(n int) int {
	if n < MinCashableQuantity {
		return MinCashableQuantity
	}
	if n > MaxCashableQuantity {
		return MaxCashableQuantity
	}
	return n
}
