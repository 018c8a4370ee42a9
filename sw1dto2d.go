// Package sw1dto2d converts 1D shallow-water model results (width and stage
// per cross-section abscissa) to a 2D geographic representation: cutlines
// perpendicular to the river centerline and attributed sample points.
package sw1dto2d

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// SW1Dto2D carries the model results and the centerline, and computes the
// derived cross-section geometry. Derived entities are rebuilt in full on each
// compute call; no call mutates the inputs.
type SW1Dto2D struct {
	xs     []float64   // cross-section abscissas, strictly increasing
	h, w   [][]float64 // stage and width, (profiles, sections)
	wmax   []float64   // per-section maximum width over all profiles
	cl     *Centerline
	frames []XsFrame // set by ComputeXsParameters
}

// New validates the model results against the centerline and returns a
// converter. xs must be strictly increasing; every row of h and w must have
// one value per abscissa.
func New(xs []float64, h, w [][]float64, cl *Centerline) (*SW1Dto2D, error) {
	n := len(xs)
	if n == 0 {
		return nil, &ShapeMismatchError{Msg: "no cross-sections"}
	}
	if len(h) == 0 || len(w) == 0 {
		return nil, &ShapeMismatchError{Msg: "H and W need at least one profile"}
	}
	for p, row := range h {
		if len(row) != n {
			return nil, &ShapeMismatchError{Msg: fmt.Sprintf("H profile %d has %d values for %d cross-sections", p, len(row), n)}
		}
	}
	for p, row := range w {
		if len(row) != n {
			return nil, &ShapeMismatchError{Msg: fmt.Sprintf("W profile %d has %d values for %d cross-sections", p, len(row), n)}
		}
	}
	for i := 1; i < n; i++ {
		if xs[i] <= xs[i-1] {
			return nil, &InvalidAbscissaError{Index: i, Xs: xs[i], Msg: fmt.Sprintf("not increasing (xs[%d]=%g)", i-1, xs[i-1])}
		}
	}

	wmax := make([]float64, n)
	col := make([]float64, len(w))
	for i := 0; i < n; i++ {
		for p := range w {
			col[p] = w[p][i]
		}
		wmax[i] = floats.Max(col)
	}
	return &SW1Dto2D{xs: xs, h: h, w: w, wmax: wmax, cl: cl}, nil
}

// NXs returns the number of cross-sections.
func (s *SW1Dto2D) NXs() int { return len(s.xs) }

// Xs returns the cross-section abscissas.
func (s *SW1Dto2D) Xs() []float64 { return s.xs }

// Centerline returns the river axis the converter was built with.
func (s *SW1Dto2D) Centerline() *Centerline { return s.cl }

// halfWidth returns the cutline half-length for cross-section i: half the
// profile's width when profile >= 0, otherwise half the maximum width over all
// profiles.
func (s *SW1Dto2D) halfWidth(i, profile int) (float64, error) {
	if profile >= len(s.w) {
		return 0., &ShapeMismatchError{Msg: fmt.Sprintf("profile %d of %d", profile, len(s.w))}
	}
	if profile < 0 {
		return s.wmax[i] / 2., nil
	}
	return s.w[profile][i] / 2., nil
}
