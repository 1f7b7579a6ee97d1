package mesh

import "math"

// CleanOption configures Clean.
type CleanOption func(*cleanOptions)

type cleanOptions struct {
	tol float64
}

func defaultCleanOptions() *cleanOptions {
	return &cleanOptions{tol: 1e-8}
}

// WithTolerance sets the distance below which two points are merged
// into one. Zero means points merge only on exactly equal coordinates.
func WithTolerance(tol float64) CleanOption {
	return func(o *cleanOptions) {
		if tol >= 0 {
			o.tol = tol
		}
	}
}

// CrossSectionOption configures CrossSection.
type CrossSectionOption func(*crossSectionOptions)

type crossSectionOptions struct {
	closed bool
}

func defaultCrossSectionOptions() *crossSectionOptions {
	return &crossSectionOptions{closed: true}
}

// WithOpenProfile treats the profile as an open strip: the last profile
// point is not joined back to the first, and no start or end polygon is
// built.
func WithOpenProfile() CrossSectionOption {
	return func(o *crossSectionOptions) {
		o.closed = false
	}
}

// PolylineOption configures MergePolylines.
type PolylineOption func(*polylineOptions)

type polylineOptions struct {
	smoothAngle float64
}

func defaultPolylineOptions() *polylineOptions {
	return &polylineOptions{smoothAngle: 135 * math.Pi / 180}
}

// WithSmoothAngle sets the threshold angle, in radians, between
// successive segments up to which a curve still counts as continuous.
func WithSmoothAngle(rad float64) PolylineOption {
	return func(o *polylineOptions) {
		if rad > 0 && rad <= math.Pi {
			o.smoothAngle = rad
		}
	}
}
