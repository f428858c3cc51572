// Package geometry models rendered line paths and searches them by pointer position.
package geometry

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Path is a polyline through pixel points, parameterized by length.
type Path struct {
	points []Point
	cum    []float64 // cum[i] is the length from points[0] to points[i]
}

// NewPath builds a polyline through points in order.
func NewPath(points []Point) *Path {
	p := &Path{
		points: append([]Point(nil), points...),
		cum:    make([]float64, len(points)),
	}
	for i := 1; i < len(points); i++ {
		p.cum[i] = p.cum[i-1] + math.Hypot(points[i].X-points[i-1].X, points[i].Y-points[i-1].Y)
	}
	return p
}

// Points returns the vertices of the path.
func (p *Path) Points() []Point {
	return p.points
}

// TotalLength returns the length of the whole polyline.
func (p *Path) TotalLength() float64 {
	if len(p.cum) == 0 {
		return 0
	}
	return p.cum[len(p.cum)-1]
}

// PointAtLength returns the point at distance l along the path. l is clamped
// to [0, TotalLength].
func (p *Path) PointAtLength(l float64) Point {
	switch len(p.points) {
	case 0:
		return Point{}
	case 1:
		return p.points[0]
	}
	if l <= 0 {
		return p.points[0]
	}
	if l >= p.TotalLength() {
		return p.points[len(p.points)-1]
	}

	// First vertex at or past l; the segment ends there.
	i := sort.SearchFloat64s(p.cum, l)
	seg := p.cum[i] - p.cum[i-1]
	if seg == 0 {
		return p.points[i]
	}
	t := (l - p.cum[i-1]) / seg
	a, b := p.points[i-1], p.points[i]
	return Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

// D returns the path as SVG path data.
func (p *Path) D() string {
	var sb strings.Builder
	for i, pt := range p.points {
		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString("L")
		}
		sb.WriteString(FormatCoord(pt.X))
		sb.WriteString(",")
		sb.WriteString(FormatCoord(pt.Y))
	}
	return sb.String()
}

// FormatCoord renders a pixel coordinate with at most three decimals.
func FormatCoord(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
