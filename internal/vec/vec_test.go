package vec

import (
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	a := [3]float64{1, 2, 3}
	b := [3]float64{4, -2, 0}

	if got, want := Add(a, b), ([3]float64{5, 0, 3}); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := Sub(a, b), ([3]float64{-3, 4, 3}); got != want {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	if got, want := Scale(a, 2), ([3]float64{2, 4, 6}); got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}
	if got, want := Dot(a, b), 0.0; got != want {
		t.Errorf("Dot = %v, want %v", got, want)
	}
}

func TestNormDist(t *testing.T) {
	if got := Norm([3]float64{3, 4, 0}); got != 5 {
		t.Errorf("Norm = %v, want 5", got)
	}
	if got := Dist([3]float64{1, 1, 1}, [3]float64{1, 1, 4}); got != 3 {
		t.Errorf("Dist = %v, want 3", got)
	}
}

func TestNormalize(t *testing.T) {
	v, ok := Normalize([3]float64{0, 0, 2})
	if !ok {
		t.Fatal("Normalize reported failure for a nonzero vector")
	}
	if want := ([3]float64{0, 0, 1}); v != want {
		t.Errorf("Normalize = %v, want %v", v, want)
	}

	zero, ok := Normalize([3]float64{})
	if ok {
		t.Error("Normalize reported success for the zero vector")
	}
	if zero != ([3]float64{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", zero)
	}
}

func TestLerp(t *testing.T) {
	a := [3]float64{0, 0, 0}
	b := [3]float64{2, 4, 8}

	for _, tc := range []struct {
		alpha float64
		want  [3]float64
	}{
		{0, a},
		{1, b},
		{0.5, [3]float64{1, 2, 4}},
	} {
		got := Lerp(a, b, tc.alpha)
		for c := 0; c < 3; c++ {
			if math.Abs(got[c]-tc.want[c]) > 1e-15 {
				t.Errorf("Lerp(%v) = %v, want %v", tc.alpha, got, tc.want)
				break
			}
		}
	}
}
