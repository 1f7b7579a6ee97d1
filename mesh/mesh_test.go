package mesh

import "testing"

func mustIntArray(t *testing.T, name string, width int, values []int64) *AttributeArray {
	t.Helper()
	a, err := NewIntArray(name, width, values)
	if err != nil {
		t.Fatalf("NewIntArray(%q) failed: %v", name, err)
	}
	return a
}

func mustFloatArray(t *testing.T, name string, width int, values []float64) *AttributeArray {
	t.Helper()
	a, err := NewFloatArray(name, width, values)
	if err != nil {
		t.Fatalf("NewFloatArray(%q) failed: %v", name, err)
	}
	return a
}

func mustBoolArray(t *testing.T, name string, width int, values []bool) *AttributeArray {
	t.Helper()
	a, err := NewBoolArray(name, width, values)
	if err != nil {
		t.Fatalf("NewBoolArray(%q) failed: %v", name, err)
	}
	return a
}

func attachPointArray(t *testing.T, d *Dataset, a *AttributeArray) {
	t.Helper()
	if err := d.AddPointArray(a); err != nil {
		t.Fatalf("AddPointArray(%q) failed: %v", a.Name(), err)
	}
}

func attachCellArray(t *testing.T, d *Dataset, a *AttributeArray) {
	t.Helper()
	if err := d.AddCellArray(a); err != nil {
		t.Fatalf("AddCellArray(%q) failed: %v", a.Name(), err)
	}
}

// lineDataset builds n+1 points along the x axis joined by n line
// cells.
func lineDataset(t *testing.T, n int) *Dataset {
	t.Helper()
	points := make([][3]float64, n+1)
	for i := range points {
		points[i] = [3]float64{float64(i), 0, 0}
	}
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = Cell{Type: CellLine, PointIDs: []int{i, i + 1}}
	}
	return NewDataset(points, cells)
}
