package sw1dto2d

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func straightReach(t *testing.T) *SW1Dto2D {
	t.Helper()
	cl, err := NewCenterline([]geom.Coord{{0, 0}, {1000, 0}}, false)
	require.NoError(t, err)
	s, err := New(
		[]float64{100, 500, 900},
		[][]float64{{1, 2, 1.5}},
		[][]float64{{20, 30, 25}},
		cl)
	require.NoError(t, err)
	return s
}

func TestNewShapeMismatch(t *testing.T) {
	cl, err := NewCenterline([]geom.Coord{{0, 0}, {1000, 0}}, false)
	require.NoError(t, err)

	var sme *ShapeMismatchError
	_, err = New([]float64{100, 500}, [][]float64{{1, 2, 3}}, [][]float64{{20, 30}}, cl)
	require.ErrorAs(t, err, &sme)
	_, err = New([]float64{100, 500}, [][]float64{{1, 2}}, [][]float64{}, cl)
	require.ErrorAs(t, err, &sme)
	_, err = New([]float64{}, [][]float64{{}}, [][]float64{{}}, cl)
	require.ErrorAs(t, err, &sme)
}

func TestNewNonMonotonicXs(t *testing.T) {
	cl, err := NewCenterline([]geom.Coord{{0, 0}, {1000, 0}}, false)
	require.NoError(t, err)

	var iae *InvalidAbscissaError
	_, err = New([]float64{0, 5, 3}, [][]float64{{1, 1, 1}}, [][]float64{{1, 1, 1}}, cl)
	require.ErrorAs(t, err, &iae)
	_, err = New([]float64{0, 5, 5}, [][]float64{{1, 1, 1}}, [][]float64{{1, 1, 1}}, cl)
	require.ErrorAs(t, err, &iae)
}

func TestComputeXsParametersOutOfRangeXs(t *testing.T) {
	cl, err := NewCenterline([]geom.Coord{{0, 0}, {100, 0}}, false)
	require.NoError(t, err)
	s, err := New([]float64{50, 150}, [][]float64{{1, 1}}, [][]float64{{10, 10}}, cl)
	require.NoError(t, err)

	var iae *InvalidAbscissaError
	require.ErrorAs(t, s.ComputeXsParameters(false), &iae)
}

// end-to-end scenario: straight reach, three cross-sections
func TestStraightReach(t *testing.T) {
	s := straightReach(t)
	require.NoError(t, s.ComputeXsParameters(false))

	frames := s.Frames()
	require.Len(t, frames, 3)
	for i, want := range []float64{100, 500, 900} {
		require.InDelta(t, want, frames[i].Anchor[0], 1e-9)
		require.InDelta(t, 0., frames[i].Anchor[1], 1e-9)
		require.False(t, frames[i].Flagged)
	}

	lines, err := s.ComputeXsCutlines(0., -1)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	for i, hw := range []float64{10, 15, 12.5} {
		l, r := lines[i].Coord(0), lines[i].Coord(1)
		// vertical, centered on the anchor
		require.InDelta(t, frames[i].Anchor[0], l[0], 1e-9)
		require.InDelta(t, frames[i].Anchor[0], r[0], 1e-9)
		require.InDelta(t, frames[i].Anchor[1], (l[1]+r[1])/2., 1e-9)
		require.InDelta(t, hw, l[1], 1e-9)  // left bank north
		require.InDelta(t, -hw, r[1], 1e-9) // right bank south
	}

	points, attrs, err := s.ComputeXsPoints(4, 2, 50., 0)
	require.NoError(t, err)
	require.Len(t, points, 24) // 3*(4+2*2)
	require.Len(t, attrs, 24)
}

func TestCutlineLengthCoversWidth(t *testing.T) {
	s := straightReach(t)
	lines, err := s.ComputeXsCutlines(0., -1)
	require.NoError(t, err)
	for i, l := range lines {
		require.GreaterOrEqual(t, dist2(l.Coord(0), l.Coord(1))+1e-9, s.w[0][i])
	}
}
