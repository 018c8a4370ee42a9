// Package gio reads the river centerline from GeoJSON and writes the computed
// cross-section geometry (cutlines, channel envelope, attributed points) back
// out as GeoJSON FeatureCollections.
package gio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/maseology/sw1dto2d"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// LoadCenterline reads a LineString from a GeoJSON file holding either a bare
// geometry, a Feature or a FeatureCollection (first feature taken).
func LoadCenterline(fp string) (*geom.LineString, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("gio.LoadCenterline: %v", err)
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(b, &fc); err == nil && len(fc.Features) > 0 {
		if ls, ok := fc.Features[0].Geometry.(*geom.LineString); ok {
			return ls, nil
		}
		return nil, fmt.Errorf("gio.LoadCenterline: %s: first feature is not a LineString", fp)
	}

	var ft geojson.Feature
	if err := json.Unmarshal(b, &ft); err == nil && ft.Geometry != nil {
		if ls, ok := ft.Geometry.(*geom.LineString); ok {
			return ls, nil
		}
		return nil, fmt.Errorf("gio.LoadCenterline: %s: feature is not a LineString", fp)
	}

	var g geom.T
	if err := geojson.Unmarshal(b, &g); err != nil {
		return nil, fmt.Errorf("gio.LoadCenterline: %s: %v", fp, err)
	}
	ls, ok := g.(*geom.LineString)
	if !ok {
		return nil, fmt.Errorf("gio.LoadCenterline: %s holds %T, need LineString", fp, g)
	}
	return ls, nil
}

// WriteCutlines writes one LineString feature per cutline, attributed with its
// cross-section abscissa.
func WriteCutlines(fp string, lines []*geom.LineString, xs []float64) error {
	if len(lines) != len(xs) {
		return fmt.Errorf("gio.WriteCutlines: %d lines for %d abscissas", len(lines), len(xs))
	}
	fc := geojson.FeatureCollection{Features: make([]*geojson.Feature, len(lines))}
	for i, l := range lines {
		fc.Features[i] = &geojson.Feature{
			Geometry:   l,
			Properties: map[string]interface{}{"xs": xs[i]},
		}
	}
	return write(fp, &fc)
}

// WritePolygon writes a single polygon feature, as for the channel envelope.
func WritePolygon(fp string, p *geom.Polygon) error {
	fc := geojson.FeatureCollection{Features: []*geojson.Feature{{
		Geometry:   p,
		Properties: map[string]interface{}{"ID": 0},
	}}}
	return write(fp, &fc)
}

// WritePoints writes the sampled cross-section points with their attribute
// records; points and attrs are the parallel sequences returned by
// ComputeXsPoints.
func WritePoints(fp string, points []*geom.Point, attrs []sw1dto2d.PointAttributes) error {
	if len(points) != len(attrs) {
		return fmt.Errorf("gio.WritePoints: %d points for %d attribute records", len(points), len(attrs))
	}
	fc := geojson.FeatureCollection{Features: make([]*geojson.Feature, len(points))}
	for i, p := range points {
		a := attrs[i]
		fc.Features[i] = &geojson.Feature{
			Geometry: p,
			Properties: map[string]interface{}{
				"xs_id":   a.XsID,
				"xsnd_id": a.XsndID,
				"abs":     a.Abs,
				"loc":     a.Loc,
				"x":       a.X,
				"y":       a.Y,
				"z":       a.Z,
			},
		}
	}
	return write(fp, &fc)
}

func write(fp string, fc *geojson.FeatureCollection) error {
	b, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("gio: marshal %s: %v", fp, err)
	}
	if err := os.WriteFile(fp, b, 0644); err != nil {
		return fmt.Errorf("gio: write %s: %v", fp, err)
	}
	return nil
}
