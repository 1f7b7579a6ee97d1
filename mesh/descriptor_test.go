package mesh

import (
	"errors"
	"testing"
)

func TestDescribe(t *testing.T) {
	d := lineDataset(t, 2) // 3 points, 2 cells
	attachPointArray(t, d, mustFloatArray(t, "temperature", 1, []float64{1, 2, 3}))
	attachPointArray(t, d, mustFloatArray(t, "velocity", 3, make([]float64, 9)))
	attachCellArray(t, d, mustIntArray(t, "region", 1, []int64{1, 2}))

	desc, err := Describe(d)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if desc.NumPoints != 3 || desc.NumCells != 2 {
		t.Errorf("counts = %d/%d, want 3/2", desc.NumPoints, desc.NumCells)
	}

	want := []ArrayInfo{
		{PointData, "temperature", 1, KindFloat},
		{PointData, "velocity", 3, KindFloat},
		{CellData, "region", 1, KindInt},
	}
	if len(desc.Arrays) != len(want) {
		t.Fatalf("got %d arrays, want %d", len(desc.Arrays), len(want))
	}
	for i, info := range desc.Arrays {
		if info != want[i] {
			t.Errorf("array %d = %+v, want %+v", i, info, want[i])
		}
	}
}

func TestDescribeMalformedPointArray(t *testing.T) {
	d := lineDataset(t, 2) // 3 points
	attachPointArray(t, d, mustFloatArray(t, "temperature", 1, []float64{1, 2, 3, 4}))

	_, err := Describe(d)
	var malformed *MalformedDatasetError
	if !errors.As(err, &malformed) {
		t.Fatalf("got %v, want *MalformedDatasetError", err)
	}
	if malformed.Assoc != PointData || malformed.Name != "temperature" {
		t.Errorf("error names %s %q, want point_data \"temperature\"", malformed.Assoc, malformed.Name)
	}
	if malformed.Len != 4 || malformed.Want != 3 {
		t.Errorf("error reports %d/%d, want 4/3", malformed.Len, malformed.Want)
	}
}

func TestDescribeMalformedCellArray(t *testing.T) {
	d := lineDataset(t, 2) // 2 cells
	attachCellArray(t, d, mustIntArray(t, "region", 1, []int64{1}))

	_, err := Describe(d)
	var malformed *MalformedDatasetError
	if !errors.As(err, &malformed) {
		t.Fatalf("got %v, want *MalformedDatasetError", err)
	}
	if malformed.Assoc != CellData {
		t.Errorf("error association = %s, want cell_data", malformed.Assoc)
	}
}

func TestDuplicateArrayName(t *testing.T) {
	d := lineDataset(t, 1)
	attachPointArray(t, d, mustFloatArray(t, "temperature", 1, []float64{1, 2}))
	if err := d.AddPointArray(mustIntArray(t, "temperature", 1, []int64{1, 2})); err == nil {
		t.Error("expected error adding a duplicate point array name")
	}
	// The same name on the other association class is fine.
	if err := d.AddCellArray(mustIntArray(t, "temperature", 1, []int64{1})); err != nil {
		t.Errorf("same name on cell data should be allowed, got %v", err)
	}
}
