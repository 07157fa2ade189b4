package ranking

import (
	"fmt"
	"math"
)

// RGB is a cell background color
type RGB struct {
	R, G, B uint8
}

// Hex renders the color as #RRGGBB
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// CSS renders the color as rgb(r, g, b)
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

var (
	colorLow  = [3]float64{255, 255, 255}
	colorHigh = [3]float64{60, 240, 92}
)

// CellColor interpolates from white at scale 0 to green at scale 1
func CellColor(scale float64) RGB {
	scale = math.Max(0, math.Min(1, scale))
	ch := func(i int) uint8 {
		return uint8(math.Round(colorLow[i] + (colorHigh[i]-colorLow[i])*scale))
	}
	return RGB{R: ch(0), G: ch(1), B: ch(2)}
}
