package sw1dto2d

import (
	"sync"

	"github.com/twpayne/go-geom"
)

// XsFrame is the local frame of one cross-section on the centerline: its
// anchor point at chainage Xs, the unit tangent and the unit normal
// (left of the direction of travel). The optimizer may rotate Normal away
// from the raw perpendicular; Flagged marks cross-sections whose crossing
// with a neighbour could not be fully resolved.
type XsFrame struct {
	Xs      float64
	Anchor  geom.Coord
	Tangent geom.Coord
	Normal  geom.Coord
	Flagged bool
}

// ComputeXsParameters locates every cross-section on the centerline and
// derives its frame. With optimizeNormals set, interior frames are rotated
// within ±45° to keep adjacent cutlines from crossing; each frame is adjusted
// against a read-only snapshot of the raw frames so the pass is independent
// per cross-section.
func (s *SW1Dto2D) ComputeXsParameters(optimizeNormals bool) error {
	n, l := len(s.xs), s.cl.Length()
	for i, x := range s.xs {
		if x < 0. || x > l {
			return &InvalidAbscissaError{Index: i, Xs: x, Msg: "outside centerline range"}
		}
	}

	frames := make([]XsFrame, n)
	for i, x := range s.xs {
		p, err := s.cl.PointAt(x)
		if err != nil {
			return err
		}
		t, err := s.cl.TangentAt(x)
		if err != nil {
			return err
		}
		frames[i] = XsFrame{Xs: x, Anchor: p, Tangent: t, Normal: geom.Coord{-t[1], t[0]}}
	}

	if optimizeNormals && n > 2 {
		raw := make([]XsFrame, n)
		copy(raw, frames)
		var wg sync.WaitGroup
		wg.Add(n - 2)
		for i := 1; i < n-1; i++ {
			go func(i int) {
				defer wg.Done()
				theta, resolved := optimizeNormal(
					&raw[i-1], &raw[i], &raw[i+1],
					s.wmax[i-1]/2., s.wmax[i]/2., s.wmax[i+1]/2.)
				frames[i].Normal = rot(raw[i].Normal, theta)
				frames[i].Flagged = !resolved
			}(i)
		}
		wg.Wait()
	}

	s.frames = frames
	return nil
}

// Frames returns the computed cross-section frames, or nil before
// ComputeXsParameters has been called.
func (s *SW1Dto2D) Frames() []XsFrame { return s.frames }

// requireFrames lazily computes raw (un-optimized) frames for callers of the
// later pipeline stages.
func (s *SW1Dto2D) requireFrames() error {
	if s.frames != nil {
		return nil
	}
	return s.ComputeXsParameters(false)
}
