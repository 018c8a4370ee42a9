package sw1dto2d

import "github.com/twpayne/go-geom"

// ComputeChannelPolygon builds the channel envelope: the polygon enclosed by
// the cutline endpoints, left bank downstream then right bank back upstream.
// Width policy and extend match ComputeXsCutlines.
func (s *SW1Dto2D) ComputeChannelPolygon(extend float64, profile int) (*geom.Polygon, error) {
	lines, err := s.ComputeXsCutlines(extend, profile)
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, &DegenerateGeometryError{Index: 0, HalfLength: 0.}
	}

	ring := make([]geom.Coord, 0, 2*len(lines)+1)
	for _, l := range lines {
		ring = append(ring, l.Coord(0)) // left bank, downstream
	}
	for i := len(lines) - 1; i >= 0; i-- {
		ring = append(ring, lines[i].Coord(1)) // right bank, back upstream
	}
	ring = append(ring, ring[0])

	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring}), nil
}
