package geometry

import (
	"math"
	"sort"
)

// DefaultMaxIterations bounds the bisection loop. Halving a bracket 64 times
// exhausts float64 precision for any realistic path length.
const DefaultMaxIterations = 64

// DefaultResolution is the bracket width, in path length units, at which the
// search stops narrowing.
const DefaultResolution = 1e-3

// SearchOptions tunes Bisect.
type SearchOptions struct {
	MaxIterations int
	Resolution    float64
}

// DefaultSearchOptions returns the options used when none are configured.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		MaxIterations: DefaultMaxIterations,
		Resolution:    DefaultResolution,
	}
}

func (o SearchOptions) normalized() SearchOptions {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Resolution <= 0 {
		o.Resolution = DefaultResolution
	}
	return o
}

// Hit is the outcome of a search along a path.
type Hit struct {
	Point      Point
	Length     float64
	Iterations int
	// Exact is set when a sampled point matched the query x exactly.
	Exact bool
	// Capped is set when the iteration cap ended the search.
	Capped bool
}

// Bisect finds the point along p whose x is closest to mx by binary search over
// the path's length. The path's x must grow with length for the result to be
// the nearest point; otherwise the search still ends within MaxIterations.
// Queries at or beyond either end return that end. When both ends of the final
// bracket are equally close, the shorter length wins.
func Bisect(p *Path, mx float64, opts SearchOptions) Hit {
	opts = opts.normalized()

	total := p.TotalLength()
	first, last := p.PointAtLength(0), p.PointAtLength(total)
	if mx <= first.X {
		return Hit{Point: first, Length: 0, Exact: mx == first.X}
	}
	if mx >= last.X {
		return Hit{Point: last, Length: total, Exact: mx == last.X}
	}

	lo, hi := 0.0, total
	hit := Hit{Capped: true}
	for hit.Iterations < opts.MaxIterations {
		hit.Iterations++
		mid := lo + (hi-lo)/2
		pos := p.PointAtLength(mid)

		if pos.X == mx {
			hit.Point, hit.Length, hit.Exact, hit.Capped = pos, mid, true, false
			return hit
		}
		if hi-lo <= opts.Resolution || mid == lo || mid == hi {
			hit.Capped = false
			break
		}
		if pos.X > mx {
			hi = mid
		} else {
			lo = mid
		}
	}

	a, b := p.PointAtLength(lo), p.PointAtLength(hi)
	if math.Abs(b.X-mx) < math.Abs(a.X-mx) {
		hit.Point, hit.Length = b, hi
	} else {
		hit.Point, hit.Length = a, lo
	}
	return hit
}

// Interpolate returns the value at x by linear interpolation over samples
// (xs ascending). Queries outside [xs[0], xs[n-1]] return the boundary value.
func Interpolate(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}

	i := sort.SearchFloat64s(xs, x)
	if xs[i] == x {
		return ys[i]
	}
	x0, x1 := xs[i-1], xs[i]
	t := (x - x0) / (x1 - x0)
	return ys[i-1] + t*(ys[i]-ys[i-1])
}

// NearestIndex returns the index of the sample closest to x (xs ascending).
// Equidistant neighbours resolve to the lower index.
func NearestIndex(xs []float64, x float64) int {
	n := len(xs)
	if n == 0 {
		return -1
	}
	i := sort.SearchFloat64s(xs, x)
	if i == 0 {
		return 0
	}
	if i == n {
		return n - 1
	}
	if x-xs[i-1] <= xs[i]-x {
		return i - 1
	}
	return i
}
