package sw1dto2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestSegmentsCross(t *testing.T) {
	require.True(t, segmentsCross(
		geom.Coord{0, -1}, geom.Coord{0, 1},
		geom.Coord{-1, 0}, geom.Coord{1, 0}))
	require.False(t, segmentsCross(
		geom.Coord{0, 0}, geom.Coord{10, 10},
		geom.Coord{0, -10}, geom.Coord{10, 5}))
	// collinear overlap
	require.True(t, segmentsCross(
		geom.Coord{0, 0}, geom.Coord{10, 0},
		geom.Coord{5, 0}, geom.Coord{15, 0}))
	// collinear, disjoint
	require.False(t, segmentsCross(
		geom.Coord{0, 0}, geom.Coord{10, 0},
		geom.Coord{11, 0}, geom.Coord{15, 0}))
	// parallel
	require.False(t, segmentsCross(
		geom.Coord{0, 0}, geom.Coord{10, 0},
		geom.Coord{0, 1}, geom.Coord{10, 1}))
}

// four sections around a right-angle bend; the two interior cutlines cross
// each other at full width unless their normals are rotated
func bentReach(t *testing.T) *SW1Dto2D {
	t.Helper()
	cl, err := NewCenterline([]geom.Coord{{0, 0}, {100, 0}, {100, 100}}, false)
	require.NoError(t, err)
	s, err := New(
		[]float64{10, 80, 120, 150},
		[][]float64{{1, 1, 1, 1}},
		[][]float64{{60, 60, 60, 60}},
		cl)
	require.NoError(t, err)
	return s
}

func cutSegments(t *testing.T, s *SW1Dto2D) [][2]geom.Coord {
	t.Helper()
	lines, err := s.ComputeXsCutlines(0., -1)
	require.NoError(t, err)
	segs := make([][2]geom.Coord, len(lines))
	for i, l := range lines {
		segs[i] = [2]geom.Coord{l.Coord(0), l.Coord(1)}
	}
	return segs
}

func TestRawNormalsCrossOnBend(t *testing.T) {
	s := bentReach(t)
	require.NoError(t, s.ComputeXsParameters(false))
	segs := cutSegments(t, s)
	require.True(t, segmentsCross(segs[1][0], segs[1][1], segs[2][0], segs[2][1]))
}

func TestOptimizedNormalsDoNotCross(t *testing.T) {
	s := bentReach(t)
	require.NoError(t, s.ComputeXsParameters(true))

	for _, f := range s.Frames() {
		require.False(t, f.Flagged)
		require.InDelta(t, 1., math.Hypot(f.Normal[0], f.Normal[1]), 1e-9)
	}

	segs := cutSegments(t, s)
	for i := 1; i < len(segs); i++ {
		require.False(t, segmentsCross(segs[i-1][0], segs[i-1][1], segs[i][0], segs[i][1]),
			"cutlines %d and %d cross after optimization", i-1, i)
	}
}

func TestOptimizerBoundedRotation(t *testing.T) {
	s := bentReach(t)
	require.NoError(t, s.ComputeXsParameters(false))
	raw := append([]XsFrame(nil), s.Frames()...)
	require.NoError(t, s.ComputeXsParameters(true))

	for i, f := range s.Frames() {
		dot := f.Normal[0]*raw[i].Normal[0] + f.Normal[1]*raw[i].Normal[1]
		require.GreaterOrEqual(t, dot, math.Cos(maxRotate)-1e-9, "cross-section %d rotated past the bound", i)
	}
}

func TestOptimizerDeterministic(t *testing.T) {
	s := bentReach(t)
	require.NoError(t, s.ComputeXsParameters(true))
	first := append([]XsFrame(nil), s.Frames()...)
	require.NoError(t, s.ComputeXsParameters(true))
	require.Equal(t, first, s.Frames())
}

func TestOptimizerDisabledKeepsPerpendicular(t *testing.T) {
	s := bentReach(t)
	require.NoError(t, s.ComputeXsParameters(false))
	for _, f := range s.Frames() {
		require.InDelta(t, 0., f.Tangent[0]*f.Normal[0]+f.Tangent[1]*f.Normal[1], 1e-9)
	}
}

func TestOptimizerFlagsInfeasible(t *testing.T) {
	// sections packed on a tight arc, every cutline spans the full circle:
	// no rotation within the bound can prevent crossing
	r := 50.
	var coords []geom.Coord
	for a := 0.; a <= 1.2; a += 0.02 {
		coords = append(coords, geom.Coord{r * math.Cos(a), r * math.Sin(a)})
	}
	cl, err := NewCenterline(coords, false)
	require.NoError(t, err)
	s, err := New(
		[]float64{20, 30, 40},
		[][]float64{{1, 1, 1}},
		[][]float64{{220, 220, 220}},
		cl)
	require.NoError(t, err)

	require.NoError(t, s.ComputeXsParameters(true))
	require.True(t, s.Frames()[1].Flagged)
}
