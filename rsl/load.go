// Package rsl loads 1D model result tables: per cross-section abscissa (xs),
// water surface width (W) and stage (H), one row block per simulated profile.
package rsl

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/maseology/mmio"
)

// Load reads a semicolon-separated results file with header xs;W;H and rows
// ordered cross-section-major within each profile block. It returns the
// unique abscissas and the (profiles, sections) width and stage matrices.
func Load(fp string) (xs []float64, w, h [][]float64, err error) {
	if _, ok := mmio.FileExists(fp); !ok {
		return nil, nil, nil, fmt.Errorf("rsl.Load: file not found: %s", fp)
	}
	f, err := os.Open(fp)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("rsl.Load: %v", err)
	}
	defer f.Close()

	rdr := csv.NewReader(f)
	rdr.Comma = ';'
	recs, err := rdr.ReadAll()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("rsl.Load: %v", err)
	}
	if len(recs) < 2 {
		return nil, nil, nil, fmt.Errorf("rsl.Load: %s holds no data rows", fp)
	}
	recs = recs[1:] // header

	xa, wa, ha := make([]float64, len(recs)), make([]float64, len(recs)), make([]float64, len(recs))
	for i, r := range recs {
		if len(r) < 3 {
			return nil, nil, nil, fmt.Errorf("rsl.Load: row %d has %d fields, need xs;W;H", i+2, len(r))
		}
		if xa[i], err = strconv.ParseFloat(r[0], 64); err != nil {
			return nil, nil, nil, fmt.Errorf("rsl.Load: row %d xs: %v", i+2, err)
		}
		if wa[i], err = strconv.ParseFloat(r[1], 64); err != nil {
			return nil, nil, nil, fmt.Errorf("rsl.Load: row %d W: %v", i+2, err)
		}
		if ha[i], err = strconv.ParseFloat(r[2], 64); err != nil {
			return nil, nil, nil, fmt.Errorf("rsl.Load: row %d H: %v", i+2, err)
		}
	}

	// section count = rows until the first abscissa repeats
	nxs := len(xa)
	for i := 1; i < len(xa); i++ {
		if xa[i] == xa[0] {
			nxs = i
			break
		}
	}
	if len(xa)%nxs != 0 {
		return nil, nil, nil, fmt.Errorf("rsl.Load: %d rows do not divide into profiles of %d cross-sections", len(xa), nxs)
	}
	np := len(xa) / nxs
	for p := 1; p < np; p++ {
		for i := 0; i < nxs; i++ {
			if xa[p*nxs+i] != xa[i] {
				return nil, nil, nil, fmt.Errorf("rsl.Load: profile %d abscissas differ from profile 0 at row %d", p, p*nxs+i+2)
			}
		}
	}

	xs = xa[:nxs]
	w, h = make([][]float64, np), make([][]float64, np)
	for p := 0; p < np; p++ {
		w[p] = wa[p*nxs : (p+1)*nxs]
		h[p] = ha[p*nxs : (p+1)*nxs]
	}
	return xs, w, h, nil
}
