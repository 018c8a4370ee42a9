package sw1dto2d

import "github.com/twpayne/go-geom"

// ComputeXsCutlines builds one cutline per cross-section, in cross-section
// order, centered on the frame anchor and oriented along its normal. The
// half-length is half the width of the requested profile, or half the maximum
// width over all profiles when profile < 0, plus extend on each side. The
// first endpoint is on the left bank (positive side of the normal).
func (s *SW1Dto2D) ComputeXsCutlines(extend float64, profile int) ([]*geom.LineString, error) {
	if err := s.requireFrames(); err != nil {
		return nil, err
	}
	lines := make([]*geom.LineString, len(s.frames))
	for i, f := range s.frames {
		hw, err := s.halfWidth(i, profile)
		if err != nil {
			return nil, err
		}
		hl := hw + extend
		if hw <= 0. || hl <= 0. {
			return nil, &DegenerateGeometryError{Index: i, HalfLength: hl}
		}
		l, r := cutEnds(f.Anchor, f.Normal, hl)
		lines[i] = geom.NewLineStringFlat(geom.XY, []float64{l[0], l[1], r[0], r[1]})
	}
	return lines, nil
}
