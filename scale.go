package scatter

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Linear maps the data interval [D0, D1] onto the pixel interval [R0, R1].
// R0 may be larger than R1, which is how the y axis is flipped.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// NewLinear returns a scale over the extent of values.
func NewLinear(values []float64, r0, r1 float64) Linear {
	d0, d1 := Extent(values)
	return Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Extent returns the smallest and largest finite value. Without any finite
// value both bounds are NaN.
func Extent(values []float64) (min, max float64) {
	min, max = math.NaN(), math.NaN()
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < min || math.IsNaN(min) {
			min = v
		}
		if v > max || math.IsNaN(max) {
			max = v
		}
	}
	return
}

func (s Linear) degenerate() bool {
	return math.IsNaN(s.D0) || math.IsNaN(s.D1) || s.D0 == s.D1
}

// Map returns the pixel position of x. Equal domain bounds put every value
// in the middle of the range; an undefined domain maps everything to NaN.
func (s Linear) Map(x float64) float64 {
	if math.IsNaN(s.D0) || math.IsNaN(s.D1) || math.IsNaN(x) {
		return math.NaN()
	}
	if s.D0 == s.D1 {
		return (s.R0 + s.R1) / 2
	}
	t := scale.Linear{Min: s.D0, Max: s.D1}.Map(x)
	return s.R0 + t*(s.R1-s.R0)
}

// Invert returns the data value at pixel position px.
func (s Linear) Invert(px float64) float64 {
	if s.degenerate() || s.R0 == s.R1 {
		return s.D0
	}
	t := (px - s.R0) / (s.R1 - s.R0)
	return scale.Linear{Min: s.D0, Max: s.D1}.Unmap(t)
}

// Nice extends the domain outward to multiples of a round tick increment
// so that the axis starts and ends on a tick. count is the approximate
// number of ticks the increment is chosen for.
func (s Linear) Nice(count int) Linear {
	if s.degenerate() {
		return s
	}
	start, stop := s.D0, s.D1
	reversed := stop < start
	if reversed {
		start, stop = stop, start
	}
	var prestep float64
loop:
	for i := 0; i < 10; i++ {
		step := tickIncrement(start, stop, float64(count))
		if step == prestep {
			break
		}
		switch {
		case step > 0:
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		case step < 0:
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		default:
			break loop
		}
		prestep = step
	}
	if reversed {
		start, stop = stop, start
	}
	s.D0, s.D1 = start, stop
	return s
}

// Ticks returns about count round values inside the domain, in increasing
// order.
func (s Linear) Ticks(count int) []float64 {
	if math.IsNaN(s.D0) || math.IsNaN(s.D1) || count <= 0 {
		return nil
	}
	start, stop := s.D0, s.D1
	if start == stop {
		return []float64{start}
	}
	if stop < start {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, float64(count))
	if i2 < i1 {
		return nil
	}
	ticks := make([]float64, 0, int(i2-i1)+1)
	for i := i1; i <= i2; i++ {
		if inc < 0 {
			ticks = append(ticks, i / -inc)
		} else {
			ticks = append(ticks, i*inc)
		}
	}
	return ticks
}

// TickStep returns the distance between the ticks Ticks(count) returns.
func (s Linear) TickStep(count int) float64 {
	if s.degenerate() || count <= 0 {
		return 1
	}
	start, stop := s.D0, s.D1
	if stop < start {
		start, stop = stop, start
	}
	_, _, inc := tickSpec(start, stop, float64(count))
	if inc < 0 {
		return -1 / inc
	}
	return inc
}

// Format renders a tick value with as many decimals as the tick step
// needs.
func (s Linear) Format(v float64, count int) string {
	return fmt.Sprintf("%.*f", tickPrecision(s.TickStep(count)), v)
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

func stepFactor(err float64) float64 {
	switch {
	case err >= e10:
		return 10
	case err >= e5:
		return 5
	case err >= e2:
		return 2
	}
	return 1
}

// tickIncrement returns the 1, 2 or 5 times a power of ten step for about
// count ticks between start and stop. Steps below one are returned as the
// negative inverse so they stay exact integers.
func tickIncrement(start, stop, count float64) float64 {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	factor := stepFactor(step / math.Pow(10, power))
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

func tickSpec(start, stop, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	factor := stepFactor(step / math.Pow(10, power))
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return
}

// tickPrecision returns the number of decimals needed to print multiples
// of step.
func tickPrecision(step float64) int {
	prec := 0
	for step < 1 && step > 0 && prec < 15 {
		step *= 10
		prec++
		if math.Abs(step-math.Round(step)) < 1e-9 {
			break
		}
	}
	return prec
}

// Round rounds a pixel position half away from zero. Every renderer uses
// it so markers land on the same pixels.
func Round(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
