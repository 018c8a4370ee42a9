package sw1dto2d

import (
	"fmt"
	"sync"

	"github.com/gosuri/uiprogress"
	"github.com/twpayne/go-geom"
	"gonum.org/v1/gonum/floats"
)

// zone tags carried by sampled points
const (
	LocOverbankLeft  = "overbank_left"
	LocMainChannel   = "main_channel"
	LocOverbankRight = "overbank_right"
)

// PointAttributes is the attribute record of one sampled point. Abs is the
// signed offset from the cutline center, positive left of the direction of
// travel; XsndID is the 0-based index within the owning cross-section,
// traversed left overbank to right overbank.
type PointAttributes struct {
	XsID   int     `json:"xs_id"`
	XsndID int     `json:"xsnd_id"`
	Abs    float64 `json:"abs"`
	Loc    string  `json:"loc"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
}

// ComputeXsPoints samples every cutline into mainChannel points across the
// (maximum-width) main channel and overbanks points on each flanking zone out
// to extend beyond the channel edge; extend must be positive when overbank
// points are requested. It returns parallel point and attribute
// sequences ordered by cross-section then by traversal. With epsg > 0 the
// coordinates are reprojected from WGS84 to the target system. Cross-sections
// are sampled concurrently.
func (s *SW1Dto2D) ComputeXsPoints(mainChannel, overbanks int, extend float64, epsg int) ([]*geom.Point, []PointAttributes, error) {
	if err := s.checkSampling(mainChannel, overbanks, extend); err != nil {
		return nil, nil, err
	}
	if err := s.requireFrames(); err != nil {
		return nil, nil, err
	}

	secs := make([][]PointAttributes, len(s.frames))
	errs := make([]error, len(s.frames))
	var wg sync.WaitGroup
	wg.Add(len(s.frames))
	for i := range s.frames {
		go func(i int) {
			defer wg.Done()
			secs[i], errs[i] = s.xsPoints(i, mainChannel, overbanks, extend)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return s.assemblePoints(secs, epsg)
}

// ComputeXsPointsSerial is the single-pass variant of ComputeXsPoints with a
// per-cross-section progress bar, for interactive runs over long reaches.
func (s *SW1Dto2D) ComputeXsPointsSerial(mainChannel, overbanks int, extend float64, epsg int) ([]*geom.Point, []PointAttributes, error) {
	if err := s.checkSampling(mainChannel, overbanks, extend); err != nil {
		return nil, nil, err
	}
	if err := s.requireFrames(); err != nil {
		return nil, nil, err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(s.frames)).AppendCompleted().PrependElapsed()
	secs := make([][]PointAttributes, len(s.frames))
	for i := range s.frames {
		sec, err := s.xsPoints(i, mainChannel, overbanks, extend)
		if err != nil {
			uiprogress.Stop()
			return nil, nil, err
		}
		secs[i] = sec
		bar.Incr()
	}
	uiprogress.Stop()
	return s.assemblePoints(secs, epsg)
}

func (s *SW1Dto2D) checkSampling(mainChannel, overbanks int, extend float64) error {
	if mainChannel < 2 {
		return fmt.Errorf("sw1dto2d: need at least 2 main-channel points, have %d", mainChannel)
	}
	if overbanks < 0 {
		return fmt.Errorf("sw1dto2d: negative overbank point count %d", overbanks)
	}
	if extend < 0. {
		return fmt.Errorf("sw1dto2d: negative overbank extension %f", extend)
	}
	if overbanks > 0 && extend == 0. {
		return fmt.Errorf("sw1dto2d: overbank points need a positive extension")
	}
	return nil
}

// xsPoints samples cross-section i: overbanks points on the left overbank,
// mainChannel points across the channel, overbanks points on the right, with
// signed offsets decreasing from left bank to right bank.
func (s *SW1Dto2D) xsPoints(i, mainChannel, overbanks int, extend float64) ([]PointAttributes, error) {
	hw, _ := s.halfWidth(i, -1)
	if hw <= 0. {
		return nil, &DegenerateGeometryError{Index: i, HalfLength: hw}
	}
	f := &s.frames[i]

	offs := make([]float64, 0, mainChannel+2*overbanks)
	locs := make([]string, 0, mainChannel+2*overbanks)
	if overbanks > 0 {
		ob := floats.Span(make([]float64, overbanks+1), hw+extend, hw)
		for _, o := range ob[:overbanks] {
			offs = append(offs, o)
			locs = append(locs, LocOverbankLeft)
		}
	}
	for _, o := range floats.Span(make([]float64, mainChannel), hw, -hw) {
		offs = append(offs, o)
		locs = append(locs, LocMainChannel)
	}
	if overbanks > 0 {
		ob := floats.Span(make([]float64, overbanks+1), -hw, -(hw + extend))
		for _, o := range ob[1:] {
			offs = append(offs, o)
			locs = append(locs, LocOverbankRight)
		}
	}

	sec := make([]PointAttributes, len(offs))
	for j, o := range offs {
		sec[j] = PointAttributes{
			XsID:   i,
			XsndID: j,
			Abs:    o,
			Loc:    locs[j],
			X:      f.Anchor[0] + o*f.Normal[0],
			Y:      f.Anchor[1] + o*f.Normal[1],
			Z:      s.h[0][i],
		}
	}
	return sec, nil
}

// assemblePoints flattens the per-section records, reprojects if requested and
// builds the parallel point geometries.
func (s *SW1Dto2D) assemblePoints(secs [][]PointAttributes, epsg int) ([]*geom.Point, []PointAttributes, error) {
	nt := 0
	for _, sec := range secs {
		nt += len(sec)
	}
	attrs := make([]PointAttributes, 0, nt)
	for _, sec := range secs {
		attrs = append(attrs, sec...)
	}

	if epsg > 0 {
		prj, err := NewUTMProjector(epsg)
		if err != nil {
			return nil, nil, err
		}
		cs := make([]geom.Coord, len(attrs))
		for j, a := range attrs {
			cs[j] = geom.Coord{a.X, a.Y}
		}
		if cs, err = prj.Forward(cs); err != nil {
			return nil, nil, err
		}
		for j := range attrs {
			attrs[j].X, attrs[j].Y = cs[j][0], cs[j][1]
		}
	}

	points := make([]*geom.Point, len(attrs))
	for j, a := range attrs {
		points[j] = geom.NewPointFlat(geom.XY, []float64{a.X, a.Y})
	}
	return points, attrs, nil
}
