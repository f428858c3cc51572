package chart

import (
	"github.com/junkd0g/linechart/internal/geometry"
	"github.com/junkd0g/linechart/internal/scale"
)

const (
	tickSize    = 6
	tickPadding = 3
)

func (c *Chart) drawAxes() {
	width, height := c.cfg.PlotWidth(), c.cfg.PlotHeight()
	f := geometry.FormatCoord

	// Bottom axis: ticks hang below the plot area.
	c.XAxis = c.Plot.Append("g").
		SetAttr("class", "x axis").
		SetAttr("transform", translate(0, height))
	for _, t := range c.X.Ticks(c.cfg.XTicks) {
		tick := c.XAxis.Append("g").
			SetAttr("class", "tick").
			SetAttr("transform", translate(c.X.Map(t), 0))
		tick.Append("line").SetAttr("y2", tickSize).SetAttr("x2", 0)
		tick.Append("text").
			SetAttr("y", tickSize+tickPadding).
			SetAttr("dy", ".71em").
			SetStyle("text-anchor", "middle").
			SetText(scale.FormatTick(t))
	}
	c.XAxis.Append("path").
		SetAttr("class", "domain").
		SetAttr("d", "M0,"+f(tickSize)+"V0H"+f(width)+"V"+f(tickSize))

	// Left axis.
	c.YAxis = c.Plot.Append("g").SetAttr("class", "y axis")
	for _, v := range c.Y.Ticks(c.cfg.YTicks) {
		tick := c.YAxis.Append("g").
			SetAttr("class", "tick").
			SetAttr("transform", translate(0, c.Y.Map(v)))
		tick.Append("line").SetAttr("x2", -tickSize).SetAttr("y2", 0)
		tick.Append("text").
			SetAttr("x", -(tickSize+tickPadding)).
			SetAttr("dy", ".32em").
			SetStyle("text-anchor", "end").
			SetText(c.Y.Format(v, c.cfg.YTicks))
	}
	c.YAxis.Append("path").
		SetAttr("class", "domain").
		SetAttr("d", "M"+f(-tickSize)+",0H0V"+f(height)+"H"+f(-tickSize))
	c.YAxis.Append("text").
		SetAttr("transform", "rotate(-90)").
		SetAttr("y", 6).
		SetAttr("dy", ".71em").
		SetStyle("text-anchor", "end").
		SetText(c.cfg.YLabel)
}
