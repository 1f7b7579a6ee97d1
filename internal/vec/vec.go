// Package vec provides fixed-size vector helpers for 3-D coordinate
// math.
package vec

import "math"

// Add returns a + b.
func Add(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns a - b.
func Sub(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale returns v scaled by s.
func Scale(v [3]float64, s float64) [3]float64 {
	return [3]float64{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the dot product of a and b.
func Dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Norm returns the Euclidean length of v.
func Norm(v [3]float64) float64 {
	return math.Sqrt(Dot(v, v))
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b [3]float64) float64 {
	return Norm(Sub(a, b))
}

// Normalize returns v scaled to unit length. The second return value is
// false for the zero vector, which is returned unchanged.
func Normalize(v [3]float64) ([3]float64, bool) {
	n := Norm(v)
	if n == 0 {
		return v, false
	}
	return Scale(v, 1/n), true
}

// Lerp linearly interpolates between a and b: t=0 gives a, t=1 gives b.
func Lerp(a, b [3]float64, t float64) [3]float64 {
	return Add(Scale(a, 1-t), Scale(b, t))
}
