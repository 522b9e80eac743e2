package scatter

import (
	"fmt"
	"image/color"
)

type Color = color.RGBA

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Category10 is the classic ten colour categorical palette.
var Category10 = []Color{
	RGB(0x1f, 0x77, 0xb4),
	RGB(0xff, 0x7f, 0x0e),
	RGB(0x2c, 0xa0, 0x2c),
	RGB(0xd6, 0x27, 0x28),
	RGB(0x94, 0x67, 0xbd),
	RGB(0x8c, 0x56, 0x4b),
	RGB(0xe3, 0x77, 0xc2),
	RGB(0x7f, 0x7f, 0x7f),
	RGB(0xbc, 0xbd, 0x22),
	RGB(0x17, 0xbe, 0xcf),
}

// Ordinal assigns palette colours to category values in the order the
// values are first seen. The palette repeats once it runs out.
type Ordinal struct {
	palette []Color
	index   map[string]int
	domain  []string
}

func NewOrdinal(palette []Color) *Ordinal {
	if len(palette) == 0 {
		palette = Category10
	}
	return &Ordinal{palette: palette, index: map[string]int{}}
}

func (o *Ordinal) Map(category string) Color {
	i, ok := o.index[category]
	if !ok {
		i = len(o.domain)
		o.index[category] = i
		o.domain = append(o.domain, category)
	}
	return o.palette[i%len(o.palette)]
}

// Domain returns the categories seen so far in first-seen order.
func (o *Ordinal) Domain() []string {
	return o.domain
}

// Hex formats c as a CSS colour.
func Hex(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
