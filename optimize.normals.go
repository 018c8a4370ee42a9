package sw1dto2d

import (
	"math"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/bigxy"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/orientation"
)

// maximum rotation away from the raw perpendicular
const maxRotate = math.Pi / 4.

// nscan coarse candidates bracket the minimum before the Fibonacci refinement
const nscan = 48

// optimizeNormal searches the rotation of cur's normal (within ±maxRotate)
// that keeps its full-width cutline from crossing either neighbour's raw
// cutline while staying as close to perpendicular as possible. It reports the
// rotation in radians and whether a non-crossing rotation was found; the
// search is deterministic, so repeated calls give identical results.
func optimizeNormal(prev, cur, next *XsFrame, hwPrev, hwCur, hwNext float64) (float64, bool) {
	nb := make([][2]geom.Coord, 0, 2)
	p0, p1 := cutEnds(prev.Anchor, prev.Normal, hwPrev)
	nb = append(nb, [2]geom.Coord{p0, p1})
	n0, n1 := cutEnds(next.Anchor, next.Normal, hwNext)
	nb = append(nb, [2]geom.Coord{n0, n1})

	pen := func(theta float64) float64 {
		return crossingPenalty(cur.Anchor, cur.Normal, hwCur, theta, nb)
	}
	if pen(0.) == 0. {
		return 0., true
	}

	f := func(u float64) float64 {
		theta := mmaths.LinearTransform(-maxRotate, maxRotate, u)
		return pen(theta) + 1e-3*math.Abs(theta)/maxRotate // bias toward perpendicular
	}

	// coarse scan; the penalty is only piecewise smooth in theta
	ubest, fbest, kbest := 0.5, f(0.5), nscan/2
	for k := 0; k <= nscan; k++ {
		u := float64(k) / float64(nscan)
		if fu := f(u); fu < fbest {
			ubest, fbest, kbest = u, fu, k
		}
	}

	// Fibonacci refinement within the bracketing interval
	ulo := math.Max(0., float64(kbest-1)/float64(nscan))
	uhi := math.Min(1., float64(kbest+1)/float64(nscan))
	uf, ff := glbopt.Fibonacci(func(v float64) float64 { return f(ulo + v*(uhi-ulo)) })
	if ff < fbest {
		ubest = ulo + uf*(uhi-ulo)
	}

	theta := mmaths.LinearTransform(-maxRotate, maxRotate, ubest)
	return theta, pen(theta) == 0.
}

// crossingPenalty sums, over the neighbouring cutline segments, how deep the
// candidate cutline (normal rotated by theta, half-length hw) penetrates past
// each crossing. Zero means no crossing.
func crossingPenalty(anchor, normal geom.Coord, hw, theta float64, nb [][2]geom.Coord) float64 {
	n := rot(normal, theta)
	a0, a1 := cutEnds(anchor, n, hw)
	pen := 0.
	for _, b := range nb {
		if !segmentsCross(a0, a1, b[0], b[1]) {
			continue
		}
		// parallel overlap has no single crossing point
		if det := (a1[0]-a0[0])*(b[1][1]-b[0][1]) - (a1[1]-a0[1])*(b[1][0]-b[0][0]); math.Abs(det) < 1e-12 {
			pen += hw + 1.
			continue
		}
		x := bigxy.Intersection(a0, a1, b[0], b[1])
		if d := dist2(anchor, x); !math.IsNaN(d) && d <= hw {
			pen += hw - d + 1. // constant term keeps any crossing worse than none
		} else {
			pen += hw + 1.
		}
	}
	return pen
}

// cutEnds returns the two endpoints of a cutline of half-length hl through
// anchor along n: left bank (positive side) first.
func cutEnds(anchor, n geom.Coord, hl float64) (geom.Coord, geom.Coord) {
	return geom.Coord{anchor[0] + hl*n[0], anchor[1] + hl*n[1]},
		geom.Coord{anchor[0] - hl*n[0], anchor[1] - hl*n[1]}
}

// rot rotates v counter-clockwise by theta radians.
func rot(v geom.Coord, theta float64) geom.Coord {
	c, s := math.Cos(theta), math.Sin(theta)
	return geom.Coord{c*v[0] - s*v[1], s*v[0] + c*v[1]}
}

// segmentsCross reports whether segments a0-a1 and b0-b1 intersect,
// collinear overlaps included.
func segmentsCross(a0, a1, b0, b1 geom.Coord) bool {
	o1 := xy.OrientationIndex(a0, a1, b0)
	o2 := xy.OrientationIndex(a0, a1, b1)
	o3 := xy.OrientationIndex(b0, b1, a0)
	o4 := xy.OrientationIndex(b0, b1, a1)
	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == orientation.Collinear && xy.IsPointWithinLineBounds(b0, a0, a1) {
		return true
	}
	if o2 == orientation.Collinear && xy.IsPointWithinLineBounds(b1, a0, a1) {
		return true
	}
	if o3 == orientation.Collinear && xy.IsPointWithinLineBounds(a0, b0, b1) {
		return true
	}
	if o4 == orientation.Collinear && xy.IsPointWithinLineBounds(a1, b0, b1) {
		return true
	}
	return false
}
