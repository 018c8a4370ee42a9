package sw1dto2d

import "fmt"

// OutOfRangeError reports a chainage query beyond the centerline extent.
type OutOfRangeError struct {
	Dist, Length float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("sw1dto2d: chainage %g outside centerline range [0,%g]", e.Dist, e.Length)
}

// InvalidAbscissaError reports a cross-section abscissa that is non-increasing
// or falls outside the centerline extent.
type InvalidAbscissaError struct {
	Index int
	Xs    float64
	Msg   string
}

func (e *InvalidAbscissaError) Error() string {
	return fmt.Sprintf("sw1dto2d: invalid abscissa xs[%d]=%g: %s", e.Index, e.Xs, e.Msg)
}

// DegenerateGeometryError reports a cutline with non-positive computed length.
type DegenerateGeometryError struct {
	Index      int
	HalfLength float64
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("sw1dto2d: degenerate cutline at cross-section %d: half-length %g", e.Index, e.HalfLength)
}

// ProjectionError reports an unsupported reprojection target or transform failure.
type ProjectionError struct {
	EPSG int
	Err  error
}

func (e *ProjectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sw1dto2d: projection to EPSG:%d failed: %v", e.EPSG, e.Err)
	}
	return fmt.Sprintf("sw1dto2d: unsupported projection target EPSG:%d", e.EPSG)
}

func (e *ProjectionError) Unwrap() error { return e.Err }

// ShapeMismatchError reports inconsistent xs/W/H array dimensions.
type ShapeMismatchError struct {
	Msg string
}

func (e *ShapeMismatchError) Error() string {
	return "sw1dto2d: shape mismatch: " + e.Msg
}
