package sw1dto2d

import (
	"fmt"

	"github.com/im7mortal/UTM"
	"github.com/twpayne/go-geom"
)

// Projector is the narrow transform interface the pipeline projects through;
// Forward maps native (geographic WGS84, lon-lat ordered) coordinates to the
// target system, Inverse maps back.
type Projector interface {
	Forward(coords []geom.Coord) ([]geom.Coord, error)
	Inverse(coords []geom.Coord) ([]geom.Coord, error)
}

// UTMProjector converts WGS84 geographic coordinates to the UTM system
// identified by an EPSG code.
type UTMProjector struct {
	epsg     int
	zone     int
	northern bool
}

// NewUTMProjector resolves a UTM EPSG code (WGS84 zones 32601-32660 north and
// 32701-32760 south, NAD83 zones 26901-26923) to its zone and hemisphere.
func NewUTMProjector(epsg int) (*UTMProjector, error) {
	switch {
	case epsg > 32600 && epsg <= 32660:
		return &UTMProjector{epsg: epsg, zone: epsg - 32600, northern: true}, nil
	case epsg > 32700 && epsg <= 32760:
		return &UTMProjector{epsg: epsg, zone: epsg - 32700, northern: false}, nil
	case epsg > 26900 && epsg <= 26923: // NAD83 northern zones, e.g. 26917 = zone 17N
		return &UTMProjector{epsg: epsg, zone: epsg - 26900, northern: true}, nil
	default:
		return nil, &ProjectionError{EPSG: epsg}
	}
}

// EPSG returns the target code.
func (p *UTMProjector) EPSG() int { return p.epsg }

// Forward projects lon-lat coordinates to easting-northing.
func (p *UTMProjector) Forward(coords []geom.Coord) ([]geom.Coord, error) {
	out := make([]geom.Coord, len(coords))
	for i, c := range coords {
		e, n, zn, _, err := UTM.FromLatLon(c[1], c[0], p.northern)
		if err != nil {
			return nil, &ProjectionError{EPSG: p.epsg, Err: err}
		}
		if zn != p.zone {
			return nil, &ProjectionError{EPSG: p.epsg,
				Err: fmt.Errorf("point (%g,%g) falls in UTM zone %d", c[0], c[1], zn)}
		}
		out[i] = geom.Coord{e, n}
	}
	return out, nil
}

// Inverse projects easting-northing coordinates back to lon-lat.
func (p *UTMProjector) Inverse(coords []geom.Coord) ([]geom.Coord, error) {
	out := make([]geom.Coord, len(coords))
	for i, c := range coords {
		lat, lon, err := UTM.ToLatLon(c[0], c[1], p.zone, "", p.northern)
		if err != nil {
			return nil, &ProjectionError{EPSG: p.epsg, Err: err}
		}
		out[i] = geom.Coord{lon, lat}
	}
	return out, nil
}
