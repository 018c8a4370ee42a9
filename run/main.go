package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/maseology/mmio"
	"github.com/maseology/sw1dto2d"
	"github.com/maseology/sw1dto2d/gio"
	"github.com/maseology/sw1dto2d/rsl"
)

func main() {
	var (
		clFP     = flag.String("cl", "centerline.geojson", "centerline GeoJSON file")
		rslFP    = flag.String("rsl", "results.csv", "1D model results (xs;W;H)")
		outDir   = flag.String("o", "out", "output directory")
		optimize = flag.Bool("optimize", true, "optimize cross-section normals against crossing")
		extend   = flag.Float64("extend", 0., "cutline extension beyond the channel width")
		ptextend = flag.Float64("ptextend", 100., "overbank extension for point sampling")
		mc       = flag.Int("mc", 100, "points across the main channel")
		ob       = flag.Int("ob", 10, "points per overbank")
		epsg     = flag.Int("epsg", 0, "target EPSG code for point output (0: native)")
		profile  = flag.Int("profile", -1, "profile row for cutline widths (-1: maximum over all)")
	)
	flag.Parse()

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nRun complete")

	// load data
	ls, err := gio.LoadCenterline(*clFP)
	if err != nil {
		log.Fatalf("sw1dto2d: %v", err)
	}
	cl, err := sw1dto2d.NewCenterlineFromLineString(ls, false)
	if err != nil {
		log.Fatalf("sw1dto2d: %v", err)
	}
	xs, w, h, err := rsl.Load(*rslFP)
	if err != nil {
		log.Fatalf("sw1dto2d: %v", err)
	}
	fmt.Printf(" centerline length: %.1f, %d cross-sections, %d profiles\n", cl.Length(), len(xs), len(w))
	tt.Print("load complete")

	s, err := sw1dto2d.New(xs, h, w, cl)
	if err != nil {
		log.Fatalf("sw1dto2d: %v", err)
	}

	// cross-section frames
	if err := s.ComputeXsParameters(*optimize); err != nil {
		log.Fatalf("sw1dto2d: %v", err)
	}
	nflag := 0
	for _, f := range s.Frames() {
		if f.Flagged {
			nflag++
		}
	}
	if nflag > 0 {
		fmt.Printf(" %d cross-section(s) kept an unresolved crossing\n", nflag)
	}
	tt.Print("cross-section parameters complete")

	mmio.MakeDir(*outDir)

	// cutlines and channel envelope
	lines, err := s.ComputeXsCutlines(*extend, *profile)
	if err != nil {
		log.Fatalf("sw1dto2d: %v", err)
	}
	if err := gio.WriteCutlines(*outDir+"/cutlines.geojson", lines, s.Xs()); err != nil {
		log.Fatalf("sw1dto2d: %v", err)
	}
	poly, err := s.ComputeChannelPolygon(*extend, *profile)
	if err != nil {
		log.Fatalf("sw1dto2d: %v", err)
	}
	if err := gio.WritePolygon(*outDir+"/envelope.geojson", poly); err != nil {
		log.Fatalf("sw1dto2d: %v", err)
	}
	tt.Print("cutlines complete")

	// attributed points
	points, attrs, err := s.ComputeXsPointsSerial(*mc, *ob, *ptextend, *epsg)
	if err != nil {
		log.Fatalf("sw1dto2d: %v", err)
	}
	if err := gio.WritePoints(*outDir+"/points.geojson", points, attrs); err != nil {
		log.Fatalf("sw1dto2d: %v", err)
	}
	fmt.Printf(" %s points written\n", mmio.Thousands(int64(len(points))))
}
