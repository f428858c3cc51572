// Package scale maps data values to pixel positions and back.
package scale

import (
	"math"
	"strconv"
)

// Linear maps a continuous numeric domain onto a continuous range.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear returns a linear scale from [d0, d1] to [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Domain returns the input interval.
func (s Linear) Domain() (float64, float64) { return s.d0, s.d1 }

// Range returns the output interval.
func (s Linear) Range() (float64, float64) { return s.r0, s.r1 }

// Map converts a domain value to a range value. A degenerate domain maps
// everything to the middle of the range.
func (s Linear) Map(v float64) float64 {
	if s.d1 == s.d0 {
		return (s.r0 + s.r1) / 2
	}
	t := (v - s.d0) / (s.d1 - s.d0)
	return s.r0 + t*(s.r1-s.r0)
}

// Invert converts a range value back to the domain.
func (s Linear) Invert(r float64) float64 {
	if s.r1 == s.r0 {
		return (s.d0 + s.d1) / 2
	}
	t := (r - s.r0) / (s.r1 - s.r0)
	return s.d0 + t*(s.d1-s.d0)
}

// Ticks returns roughly count evenly spaced, human friendly values inside the
// domain.
func (s Linear) Ticks(count int) []float64 {
	lo, hi := math.Min(s.d0, s.d1), math.Max(s.d0, s.d1)
	step := tickStep(lo, hi, count)
	if step == 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return []float64{lo}
	}

	start := math.Ceil(lo / step)
	stop := math.Floor(hi/step + 1e-9)
	ticks := make([]float64, 0, int(stop-start)+1)
	for i := start; i <= stop; i++ {
		ticks = append(ticks, round(i*step, step))
	}
	return ticks
}

// Format renders a tick value with just enough precision for the tick step.
func (s Linear) Format(v float64, count int) string {
	lo, hi := math.Min(s.d0, s.d1), math.Max(s.d0, s.d1)
	step := tickStep(lo, hi, count)
	prec := 0
	if step > 0 && step < 1 {
		prec = int(math.Ceil(-math.Log10(step)))
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// tickStep picks a step of 1, 2 or 5 times a power of ten so that the domain
// holds about count ticks.
func tickStep(lo, hi float64, count int) float64 {
	if count <= 0 || hi <= lo {
		return 0
	}
	span := hi - lo
	step0 := span / float64(count)
	step1 := math.Pow(10, math.Floor(math.Log10(step0)))
	ratio := step0 / step1

	switch {
	case ratio >= math.Sqrt(50):
		step1 *= 10
	case ratio >= math.Sqrt(10):
		step1 *= 5
	case ratio >= math.Sqrt(2):
		step1 *= 2
	}
	return step1
}

func round(v, step float64) float64 {
	if step >= 1 {
		return math.Round(v)
	}
	p := math.Pow(10, math.Ceil(-math.Log10(step)))
	return math.Round(v*p) / p
}
