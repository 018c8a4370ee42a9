package sw1dto2d

import (
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
)

// minimum segment length; shorter segments have no defined direction and are merged
const minseg = 1e-9

// Centerline is an arc-length parameterized river axis. Vertices are fixed at
// construction; zero-length segments are merged so every segment has a defined
// direction.
type Centerline struct {
	coords []geom.Coord // deduplicated vertices
	chain  []float64    // cumulative chainage at each vertex
	clamp  bool         // clamp out-of-range queries instead of failing
}

// NewCenterline builds a centerline from ordered vertices. With clamp set,
// queries beyond either end evaluate at the nearest endpoint rather than
// returning an OutOfRangeError.
func NewCenterline(coords []geom.Coord, clamp bool) (*Centerline, error) {
	cs := make([]geom.Coord, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			return nil, fmt.Errorf("sw1dto2d: centerline vertex needs 2 ordinates, has %d", len(c))
		}
		if n := len(cs); n > 0 && dist2(cs[n-1], c) < minseg {
			continue // merge near-duplicate vertex
		}
		cs = append(cs, geom.Coord{c[0], c[1]})
	}
	if len(cs) < 2 {
		return nil, fmt.Errorf("sw1dto2d: centerline needs at least 2 distinct vertices, has %d", len(cs))
	}
	chain := make([]float64, len(cs))
	for i := 1; i < len(cs); i++ {
		chain[i] = chain[i-1] + dist2(cs[i-1], cs[i])
	}
	return &Centerline{coords: cs, chain: chain, clamp: clamp}, nil
}

// NewCenterlineFromLineString builds a centerline from a LineString geometry.
func NewCenterlineFromLineString(ls *geom.LineString, clamp bool) (*Centerline, error) {
	return NewCenterline(ls.Coords(), clamp)
}

// Length returns the total arc length.
func (cl *Centerline) Length() float64 { return cl.chain[len(cl.chain)-1] }

// Coords returns a copy of the (deduplicated) vertices.
func (cl *Centerline) Coords() []geom.Coord {
	out := make([]geom.Coord, len(cl.coords))
	for i, c := range cl.coords {
		out[i] = geom.Coord{c[0], c[1]}
	}
	return out
}

// LineString returns the centerline as a LineString geometry.
func (cl *Centerline) LineString() *geom.LineString {
	flat := make([]float64, 0, 2*len(cl.coords))
	for _, c := range cl.coords {
		flat = append(flat, c[0], c[1])
	}
	return geom.NewLineStringFlat(geom.XY, flat)
}

// PointAt returns the interpolated coordinate at chainage d from the start.
func (cl *Centerline) PointAt(d float64) (geom.Coord, error) {
	if d < 0. || d > cl.Length() {
		if !cl.clamp {
			return nil, &OutOfRangeError{Dist: d, Length: cl.Length()}
		}
	}
	return cl.at(d), nil
}

// TangentAt returns the unit tangent at chainage d, estimated by a symmetric
// finite difference so the direction stays continuous across vertices.
func (cl *Centerline) TangentAt(d float64) (geom.Coord, error) {
	if (d < 0. || d > cl.Length()) && !cl.clamp {
		return nil, &OutOfRangeError{Dist: d, Length: cl.Length()}
	}
	h := cl.Length() * 1e-6
	p0, p1 := cl.at(d-h), cl.at(d+h)
	t := geom.Coord{p1[0] - p0[0], p1[1] - p0[1]}
	n := math.Hypot(t[0], t[1])
	if n == 0. { // degenerate window, fall back to the enclosing segment
		i := cl.segment(d)
		t = geom.Coord{cl.coords[i+1][0] - cl.coords[i][0], cl.coords[i+1][1] - cl.coords[i][1]}
		n = math.Hypot(t[0], t[1])
	}
	return geom.Coord{t[0] / n, t[1] / n}, nil
}

// NormalAt returns the unit normal at chainage d, the tangent rotated 90°
// counter-clockwise (left of the direction of travel).
func (cl *Centerline) NormalAt(d float64) (geom.Coord, error) {
	t, err := cl.TangentAt(d)
	if err != nil {
		return nil, err
	}
	return geom.Coord{-t[1], t[0]}, nil
}

// at evaluates the polyline at chainage d, clamped to [0,Length].
func (cl *Centerline) at(d float64) geom.Coord {
	if d <= 0. {
		return geom.Coord{cl.coords[0][0], cl.coords[0][1]}
	}
	if d >= cl.Length() {
		n := len(cl.coords) - 1
		return geom.Coord{cl.coords[n][0], cl.coords[n][1]}
	}
	i := cl.segment(d)
	f := (d - cl.chain[i]) / (cl.chain[i+1] - cl.chain[i])
	return geom.Coord{
		cl.coords[i][0] + f*(cl.coords[i+1][0]-cl.coords[i][0]),
		cl.coords[i][1] + f*(cl.coords[i+1][1]-cl.coords[i][1]),
	}
}

// segment returns the index of the segment enclosing chainage d.
func (cl *Centerline) segment(d float64) int {
	lo, hi := 0, len(cl.chain)-1
	for hi-lo > 1 {
		m := (lo + hi) / 2
		if cl.chain[m] <= d {
			lo = m
		} else {
			hi = m
		}
	}
	return lo
}

func dist2(a, b geom.Coord) float64 {
	return math.Hypot(b[0]-a[0], b[1]-a[1])
}
