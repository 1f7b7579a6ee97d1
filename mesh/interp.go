package mesh

import (
	"fmt"
	"math"
	"sort"

	"github.com/robert-malhotra/go-mesh/internal/vec"
)

// Series is a time-ordered sequence of dataset frames, all sharing the
// same topology and array schema, typically the steps of a transient
// simulation.
type Series struct {
	times  []float64
	frames []*Dataset
}

// Add appends a frame at time t. Times must be strictly increasing.
func (s *Series) Add(t float64, d *Dataset) error {
	if n := len(s.times); n > 0 && t <= s.times[n-1] {
		return fmt.Errorf("time %g is not after %g", t, s.times[n-1])
	}
	s.times = append(s.times, t)
	s.frames = append(s.frames, d)
	return nil
}

// Len returns the number of frames.
func (s *Series) Len() int { return len(s.times) }

// Times returns the frame times. The slice is shared with the series
// and must not be mutated.
func (s *Series) Times() []float64 { return s.times }

// At returns the dataset at time t. If a frame time lies within tol of
// t, that frame is returned directly; otherwise the two bracketing
// frames are linearly interpolated. Times outside the series range fail
// with ErrTimeOutOfRange.
func (s *Series) At(t, tol float64) (*Dataset, error) {
	if len(s.times) == 0 {
		return nil, fmt.Errorf("series has no frames")
	}

	closest := 0
	for i, ft := range s.times {
		if math.Abs(ft-t) < math.Abs(s.times[closest]-t) {
			closest = i
		}
	}
	if math.Abs(s.times[closest]-t) < tol {
		return s.frames[closest], nil
	}

	if t < s.times[0] || t > s.times[len(s.times)-1] {
		return nil, fmt.Errorf("time %g: %w [%g, %g]", t, ErrTimeOutOfRange,
			s.times[0], s.times[len(s.times)-1])
	}

	// First frame time strictly greater than t; t is not an exact hit,
	// so end > 0.
	end := sort.SearchFloat64s(s.times, t)
	if s.times[end] == t {
		return s.frames[end], nil
	}
	start := end - 1
	alpha := (t - s.times[start]) / (s.times[end] - s.times[start])
	return Interpolate(s.frames[start], s.frames[end], alpha)
}

// Interpolate returns a new dataset blended linearly between a and b:
// alpha=0 gives a, alpha=1 gives b. Both datasets must share point and
// cell counts and an identical array schema. Float values and
// coordinates are interpolated; integer values are interpolated and
// rounded; boolean values are taken from the nearer frame.
func Interpolate(a, b *Dataset, alpha float64) (*Dataset, error) {
	if a.NumPoints() != b.NumPoints() || a.NumCells() != b.NumCells() {
		return nil, fmt.Errorf("datasets have different shapes: %d/%d points, %d/%d cells",
			a.NumPoints(), b.NumPoints(), a.NumCells(), b.NumCells())
	}

	points := make([][3]float64, len(a.points))
	for i := range points {
		points[i] = vec.Lerp(a.points[i], b.points[i], alpha)
	}
	cells := make([]Cell, len(a.cells))
	for i, c := range a.cells {
		cells[i] = Cell{Type: c.Type, PointIDs: append([]int(nil), c.PointIDs...)}
	}

	out := NewDataset(points, cells)
	for _, assoc := range []Association{PointData, CellData} {
		for _, arr := range a.set(assoc).arrays {
			other := b.lookup(assoc, arr.name)
			if other == nil {
				return nil, fmt.Errorf("%s array %q missing in second dataset", assoc, arr.name)
			}
			blended, err := lerpArray(arr, other, alpha)
			if err != nil {
				return nil, err
			}
			if err := out.set(assoc).add(blended); err != nil {
				return nil, err
			}
		}
		for _, arr := range b.set(assoc).arrays {
			if a.lookup(assoc, arr.name) == nil {
				return nil, fmt.Errorf("%s array %q missing in first dataset", assoc, arr.name)
			}
		}
	}
	return out, nil
}

func lerpArray(a, b *AttributeArray, alpha float64) (*AttributeArray, error) {
	if a.kind != b.kind || a.width != b.width || a.Len() != b.Len() {
		return nil, fmt.Errorf("array %q: shapes do not match", a.name)
	}
	out := &AttributeArray{name: a.name, width: a.width, kind: a.kind}
	switch a.kind {
	case KindFloat:
		out.floats = make([]float64, len(a.floats))
		for i := range a.floats {
			out.floats[i] = (1-alpha)*a.floats[i] + alpha*b.floats[i]
		}
	case KindInt:
		out.ints = make([]int64, len(a.ints))
		for i := range a.ints {
			v := (1-alpha)*float64(a.ints[i]) + alpha*float64(b.ints[i])
			out.ints[i] = int64(math.Round(v))
		}
	case KindBool:
		src := a.bools
		if alpha >= 0.5 {
			src = b.bools
		}
		out.bools = append([]bool(nil), src...)
	}
	return out, nil
}
