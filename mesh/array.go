package mesh

import "fmt"

// Association says whether an attribute array holds per-point or
// per-cell data. Array names are unique within one association class.
type Association uint8

const (
	PointData Association = iota + 1
	CellData
)

func (a Association) String() string {
	switch a {
	case PointData:
		return "point_data"
	case CellData:
		return "cell_data"
	default:
		return fmt.Sprintf("association(%d)", uint8(a))
	}
}

// AttributeArray is a named per-point or per-cell data array. Each
// element is a tuple of width values; width and kind are fixed for the
// array's lifetime. Exactly one of the backing slices is populated,
// selected by the kind.
type AttributeArray struct {
	name  string
	width int
	kind  Kind

	ints   []int64
	floats []float64
	bools  []bool
}

// NewIntArray creates an integer attribute array. len(values) must be a
// multiple of width.
func NewIntArray(name string, width int, values []int64) (*AttributeArray, error) {
	if err := checkShape(name, width, len(values)); err != nil {
		return nil, err
	}
	return &AttributeArray{name: name, width: width, kind: KindInt, ints: values}, nil
}

// NewFloatArray creates a float attribute array. len(values) must be a
// multiple of width.
func NewFloatArray(name string, width int, values []float64) (*AttributeArray, error) {
	if err := checkShape(name, width, len(values)); err != nil {
		return nil, err
	}
	return &AttributeArray{name: name, width: width, kind: KindFloat, floats: values}, nil
}

// NewBoolArray creates a boolean attribute array. len(values) must be a
// multiple of width.
func NewBoolArray(name string, width int, values []bool) (*AttributeArray, error) {
	if err := checkShape(name, width, len(values)); err != nil {
		return nil, err
	}
	return &AttributeArray{name: name, width: width, kind: KindBool, bools: values}, nil
}

func checkShape(name string, width, n int) error {
	if name == "" {
		return fmt.Errorf("attribute array needs a name")
	}
	if width < 1 {
		return fmt.Errorf("array %q: width must be >= 1, got %d", name, width)
	}
	if n%width != 0 {
		return fmt.Errorf("array %q: %d values do not divide into tuples of width %d", name, n, width)
	}
	return nil
}

// Name returns the array name.
func (a *AttributeArray) Name() string { return a.name }

// Width returns the number of values per tuple.
func (a *AttributeArray) Width() int { return a.width }

// Kind returns the value kind.
func (a *AttributeArray) Kind() Kind { return a.kind }

// Len returns the number of tuples.
func (a *AttributeArray) Len() int {
	switch a.kind {
	case KindInt:
		return len(a.ints) / a.width
	case KindFloat:
		return len(a.floats) / a.width
	case KindBool:
		return len(a.bools) / a.width
	default:
		return 0
	}
}

// Ints returns the backing values of an integer array, nil for other
// kinds. The slice is shared with the array and must not be mutated.
func (a *AttributeArray) Ints() []int64 { return a.ints }

// Floats returns the backing values of a float array, nil for other
// kinds. The slice is shared with the array and must not be mutated.
func (a *AttributeArray) Floats() []float64 { return a.floats }

// Bools returns the backing values of a boolean array, nil for other
// kinds. The slice is shared with the array and must not be mutated.
func (a *AttributeArray) Bools() []bool { return a.bools }

// clone returns a deep copy.
func (a *AttributeArray) clone() *AttributeArray {
	return &AttributeArray{
		name:   a.name,
		width:  a.width,
		kind:   a.kind,
		ints:   append([]int64(nil), a.ints...),
		floats: append([]float64(nil), a.floats...),
		bools:  append([]bool(nil), a.bools...),
	}
}

// convert returns the array with its values widened to kind k. Only the
// identity and the integer-to-float conversions are supported.
func (a *AttributeArray) convert(k Kind) (*AttributeArray, error) {
	if k == a.kind {
		return a, nil
	}
	if a.kind == KindInt && k == KindFloat {
		floats := make([]float64, len(a.ints))
		for i, v := range a.ints {
			floats[i] = float64(v)
		}
		return &AttributeArray{name: a.name, width: a.width, kind: KindFloat, floats: floats}, nil
	}
	return nil, fmt.Errorf("array %q: cannot convert %s to %s", a.name, a.kind, k)
}

// take returns a new array holding the tuples picked by idx, in idx
// order. Indices must be valid tuple indices.
func (a *AttributeArray) take(idx []int) *AttributeArray {
	out := &AttributeArray{name: a.name, width: a.width, kind: a.kind}
	w := a.width
	switch a.kind {
	case KindInt:
		out.ints = make([]int64, 0, len(idx)*w)
		for _, i := range idx {
			out.ints = append(out.ints, a.ints[i*w:(i+1)*w]...)
		}
	case KindFloat:
		out.floats = make([]float64, 0, len(idx)*w)
		for _, i := range idx {
			out.floats = append(out.floats, a.floats[i*w:(i+1)*w]...)
		}
	case KindBool:
		out.bools = make([]bool, 0, len(idx)*w)
		for _, i := range idx {
			out.bools = append(out.bools, a.bools[i*w:(i+1)*w]...)
		}
	}
	return out
}

// compareAt orders two tuples of a width-1 array. Booleans sort false
// before true.
func (a *AttributeArray) compareAt(i, j int) int {
	switch a.kind {
	case KindInt:
		switch {
		case a.ints[i] < a.ints[j]:
			return -1
		case a.ints[i] > a.ints[j]:
			return 1
		}
	case KindFloat:
		switch {
		case a.floats[i] < a.floats[j]:
			return -1
		case a.floats[i] > a.floats[j]:
			return 1
		}
	case KindBool:
		switch {
		case !a.bools[i] && a.bools[j]:
			return -1
		case a.bools[i] && !a.bools[j]:
			return 1
		}
	}
	return 0
}
