package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junkd0g/linechart/internal/dataset"
	"github.com/junkd0g/linechart/internal/svg"
)

func drawSample(t *testing.T, cfg Config) (*svg.Element, *Chart, func()) {
	t.Helper()
	container := svg.New("div").SetAttr("id", "chart")
	c, teardown := Draw(container, dataset.Sample(), cfg)
	require.NotNil(t, c)
	return container, c, teardown
}

func TestDrawProducesLinesAndLegend(t *testing.T) {
	container, c, _ := drawSample(t, DefaultConfig())

	assert.Len(t, c.Lines, 3)
	assert.Len(t, c.Legend, 3)
	assert.Len(t, c.Overlay.Markers, 3)

	// The tree agrees with the references.
	assert.Len(t, container.Find("line"), 3)
	assert.Len(t, container.Find("legend"), 3)
	assert.Len(t, container.Find("mouse-per-line"), 3)
	assert.Len(t, container.Find("mouse-line"), 1)

	assert.Equal(t, "translate(50,50)", c.Plot.Attr("transform"))
	assert.Equal(t, "Temperature (ºF)", c.YAxis.Children()[len(c.YAxis.Children())-1].Text())

	names := make([]string, 0, len(c.Legend))
	for _, e := range c.Legend {
		names = append(names, e.Text.Text())
	}
	assert.Equal(t, []string{"New York", "San Francisco", "Austin"}, names)
	assert.Equal(t, "750", c.Legend[0].Swatch.Attr("x"))
	assert.Equal(t, "20", c.Legend[1].Swatch.Attr("y"))
	assert.Equal(t, "29", c.Legend[1].Text.Attr("y"))
}

func TestDrawScales(t *testing.T) {
	_, c, _ := drawSample(t, DefaultConfig())

	lo, hi := c.Y.Domain()
	assert.Equal(t, 54.4, lo)
	assert.Equal(t, 72.4, hi)

	t0, t1 := c.X.Domain()
	assert.Equal(t, time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC), t0)
	assert.Equal(t, time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC), t1)

	r0, r1 := c.X.Range()
	assert.Equal(t, 0.0, r0)
	assert.Equal(t, 770.0, r1)

	// First New York sample is at the left edge.
	first := c.Lines[0].Geometry.Points()[0]
	assert.Equal(t, 0.0, first.X)
	assert.InDelta(t, c.Y.Map(63.4), first.Y, 1e-9)
}

func TestColorsAreStableAcrossDraws(t *testing.T) {
	_, a, _ := drawSample(t, DefaultConfig())
	_, b, _ := drawSample(t, DefaultConfig())

	for i := range a.Lines {
		assert.Equal(t, a.Lines[i].Color, b.Lines[i].Color)
		assert.Equal(t, a.Legend[i].Color, a.Lines[i].Color)
		assert.Equal(t, a.Lines[i].Color, a.Lines[i].Path.Style("stroke"))
	}
	assert.Equal(t, "#1f77b4", a.Lines[0].Color)
}

func TestTeardownDetachesSVG(t *testing.T) {
	container, c, teardown := drawSample(t, DefaultConfig())
	require.Len(t, container.Children(), 1)

	teardown()
	assert.Empty(t, container.Children())
	assert.Nil(t, c.Root.Parent())
}

func TestDrawWithoutContainer(t *testing.T) {
	c, teardown := Draw(nil, dataset.Sample(), DefaultConfig())
	assert.Nil(t, c.Root.Parent())
	teardown()
}

func TestPointerOverAndOut(t *testing.T) {
	_, c, _ := drawSample(t, DefaultConfig())
	assert.Equal(t, "0", c.Overlay.Guide.Style("opacity"))

	c.PointerOver()
	assert.True(t, c.Overlay.Visible)
	assert.Equal(t, "1", c.Overlay.Guide.Style("opacity"))
	for _, m := range c.Overlay.Markers {
		assert.Equal(t, "1", m.Circle.Style("opacity"))
		assert.Equal(t, "1", m.Text.Style("opacity"))
	}

	c.PointerOut()
	assert.False(t, c.Overlay.Visible)
	for _, m := range c.Overlay.Markers {
		assert.Equal(t, "0", m.Circle.Style("opacity"))
		assert.Equal(t, "0", m.Text.Style("opacity"))
	}
}

func TestPointerMoveInterpolatesBetweenDates(t *testing.T) {
	feb := time.Date(2018, time.February, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2018, time.March, 1, 0, 0, 0, 0, time.UTC)
	mid := feb.Add(mar.Sub(feb) / 2)

	want := map[string]float64{
		"New York":      (60.8 + 62.1) / 2,
		"San Francisco": (59.2 + 58.9) / 2,
		"Austin":        (70.0 + 61.6) / 2,
	}

	for _, mode := range []TrackingMode{TrackPath, TrackData} {
		t.Run(string(mode), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Tracking = mode
			_, c, _ := drawSample(t, cfg)

			mx := c.XFor(mid)
			readings := c.PointerMove(mx)
			require.Len(t, readings, 3)

			for i, r := range readings {
				assert.InDelta(t, want[r.Series], r.Value, 0.01, r.Series)
				assert.WithinDuration(t, mid, r.Date, time.Second)

				m := c.Overlay.Markers[i]
				assert.Equal(t, r.Label(), m.Text.Text())
				assert.Equal(t, translate(mx, r.Point.Y), m.Group.Attr("transform"))
			}
			assert.Equal(t, "61.45", readings[0].Label())
		})
	}
}

func TestPointerMoveGuide(t *testing.T) {
	_, c, _ := drawSample(t, DefaultConfig())
	c.PointerMove(100)
	assert.Equal(t, "M100,420 100,0", c.Overlay.Guide.Attr("d"))
}

func TestPointerMoveClampsToPlotArea(t *testing.T) {
	_, c, _ := drawSample(t, DefaultConfig())

	left := c.PointerMove(-40)
	assert.InDelta(t, 63.4, left[0].Value, 1e-9)
	assert.InDelta(t, 62.7, left[1].Value, 1e-9)
	assert.InDelta(t, 72.2, left[2].Value, 1e-9)
	assert.Equal(t, "M0,420 0,0", c.Overlay.Guide.Attr("d"))

	right := c.PointerMove(5000)
	assert.InDelta(t, 54.4, right[0].Value, 1e-9)
	assert.InDelta(t, 60.7, right[1].Value, 1e-9)
	assert.InDelta(t, 72.4, right[2].Value, 1e-9)

	assert.Equal(t, 0, left[0].Nearest)
	assert.Equal(t, 5, right[0].Nearest)
}

func TestPathAndDataTrackingAgree(t *testing.T) {
	pathCfg := DefaultConfig()
	dataCfg := DefaultConfig()
	dataCfg.Tracking = TrackData

	_, byPath, _ := drawSample(t, pathCfg)
	_, byData, _ := drawSample(t, dataCfg)

	for mx := 0.0; mx <= 770; mx += 17.5 {
		a := byPath.ReadingsAt(mx)
		b := byData.ReadingsAt(mx)
		for i := range a {
			assert.InDelta(t, b[i].Value, a[i].Value, 0.01, "mx=%v series=%s", mx, a[i].Series)
			assert.LessOrEqual(t, a[i].Iterations, pathCfg.Search.MaxIterations)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Width = 100
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Tracking = "nearest"
	assert.Error(t, cfg.Validate())
}
