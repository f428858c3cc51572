package scale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearMapInvert(t *testing.T) {
	// Value axis: larger values sit higher, i.e. at smaller y.
	s := NewLinear(54.4, 72.4, 420, 0)

	assert.InDelta(t, 420, s.Map(54.4), 1e-9)
	assert.InDelta(t, 0, s.Map(72.4), 1e-9)
	assert.InDelta(t, 210, s.Map(63.4), 1e-9)
	assert.InDelta(t, 63.4, s.Invert(210), 1e-9)
}

func TestLinearDegenerateDomain(t *testing.T) {
	s := NewLinear(5, 5, 0, 100)
	assert.Equal(t, 50.0, s.Map(5))
}

func TestLinearTicks(t *testing.T) {
	s := NewLinear(54.4, 72.4, 420, 0)
	assert.Equal(t, []float64{56, 58, 60, 62, 64, 66, 68, 70, 72}, s.Ticks(10))
	assert.Equal(t, "56", s.Format(56, 10))

	small := NewLinear(0, 1, 0, 100)
	ticks := small.Ticks(5)
	assert.Equal(t, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}, ticks)
	assert.Equal(t, "0.2", small.Format(0.2, 5))
}

func TestTimeMapInvert(t *testing.T) {
	t0 := time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC)
	s := NewTime(t0, t1, 0, 770)

	assert.InDelta(t, 0, s.Map(t0), 1e-9)
	assert.InDelta(t, 770, s.Map(t1), 1e-9)

	mid := s.Invert(385)
	assert.WithinDuration(t, t0.Add(t1.Sub(t0)/2), mid, time.Millisecond)
}

func TestTimeTicksMonthly(t *testing.T) {
	t0 := time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC)
	ticks := NewTime(t0, t1, 0, 770).Ticks(10)

	require.Len(t, ticks, 6)
	labels := make([]string, 0, len(ticks))
	for _, tick := range ticks {
		labels = append(labels, FormatTick(tick))
	}
	assert.Equal(t, []string{"2018", "February", "March", "April", "May", "June"}, labels)
}

func TestTimeTicksDaily(t *testing.T) {
	t0 := time.Date(2018, time.March, 3, 12, 0, 0, 0, time.UTC)
	t1 := time.Date(2018, time.March, 7, 0, 0, 0, 0, time.UTC)
	ticks := NewTime(t0, t1, 0, 100).Ticks(10)

	require.Len(t, ticks, 4)
	assert.Equal(t, "Mar 04", FormatTick(ticks[0]))
	assert.Equal(t, "Mar 07", FormatTick(ticks[3]))
}

func TestOrdinalIsPureInNameOrder(t *testing.T) {
	names := []string{"New York", "San Francisco", "Austin"}
	a := NewOrdinal(nil, names...)
	b := NewOrdinal(nil, names...)

	for _, n := range names {
		assert.Equal(t, a.Color(n), b.Color(n))
	}
	assert.Equal(t, "#1f77b4", a.Color("New York"))
	assert.Equal(t, "#ff7f0e", a.Color("San Francisco"))
	assert.Equal(t, "#2ca02c", a.Color("Austin"))

	// Unknown names extend the domain.
	assert.Equal(t, "#d62728", a.Color("Boston"))
	assert.Equal(t, append(names, "Boston"), a.Domain())
}

func TestOrdinalWraps(t *testing.T) {
	o := NewOrdinal([]string{"red", "blue"}, "a", "b", "c")
	assert.Equal(t, "red", o.Color("c"))
}
