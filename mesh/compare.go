package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Difference is one structured finding of Diff, naming the dataset
// section it concerns ("points", "cells", "point_data::name",
// "cell_data::name").
type Difference struct {
	Section string
	Message string
}

// Equal reports whether two datasets match: identical topology and
// array shapes, with floating point values compared within the absolute
// tolerance tol.
func Equal(a, b *Dataset, tol float64) bool {
	return len(Diff(a, b, tol)) == 0
}

// Diff compares two datasets and returns every difference found:
// element counts, coordinates, cell types and connectivity, array sets,
// array shapes and values. Float values are compared within the
// absolute tolerance tol; integer and boolean values exactly. Per
// array, only the first differing tuple is reported.
func Diff(a, b *Dataset, tol float64) []Difference {
	var diffs []Difference

	if a.NumPoints() != b.NumPoints() {
		diffs = append(diffs, Difference{"points",
			fmt.Sprintf("point count does not match, got %d and %d", a.NumPoints(), b.NumPoints())})
	} else {
	points:
		for i := range a.points {
			for c := 0; c < 3; c++ {
				if !scalar.EqualWithinAbs(a.points[i][c], b.points[i][c], tol) {
					diffs = append(diffs, Difference{"points",
						fmt.Sprintf("coordinates differ at point %d", i)})
					break points
				}
			}
		}
	}

	if a.NumCells() != b.NumCells() {
		diffs = append(diffs, Difference{"cells",
			fmt.Sprintf("cell count does not match, got %d and %d", a.NumCells(), b.NumCells())})
	} else {
		for i := range a.cells {
			if d, ok := diffCell(a.cells[i], b.cells[i]); !ok {
				diffs = append(diffs, Difference{"cells", fmt.Sprintf("cell %d: %s", i, d)})
				break
			}
		}
	}

	diffs = append(diffs, diffArraySets(PointData, &a.pointData, &b.pointData, tol)...)
	diffs = append(diffs, diffArraySets(CellData, &a.cellData, &b.cellData, tol)...)
	return diffs
}

func diffCell(a, b Cell) (string, bool) {
	if a.Type != b.Type {
		return fmt.Sprintf("type does not match, got %s and %s", a.Type, b.Type), false
	}
	if len(a.PointIDs) != len(b.PointIDs) {
		return fmt.Sprintf("point count does not match, got %d and %d",
			len(a.PointIDs), len(b.PointIDs)), false
	}
	for i := range a.PointIDs {
		if a.PointIDs[i] != b.PointIDs[i] {
			return fmt.Sprintf("connectivity differs at position %d", i), false
		}
	}
	return "", true
}

func diffArraySets(assoc Association, a, b *arraySet, tol float64) []Difference {
	var diffs []Difference
	for _, arr := range a.arrays {
		section := fmt.Sprintf("%s::%s", assoc, arr.name)
		other := b.get(arr.name)
		if other == nil {
			diffs = append(diffs, Difference{section, "missing in second dataset"})
			continue
		}
		diffs = append(diffs, diffArrays(section, arr, other, tol)...)
	}
	for _, arr := range b.arrays {
		if a.get(arr.name) == nil {
			section := fmt.Sprintf("%s::%s", assoc, arr.name)
			diffs = append(diffs, Difference{section, "missing in first dataset"})
		}
	}
	return diffs
}

func diffArrays(section string, a, b *AttributeArray, tol float64) []Difference {
	if a.kind != b.kind {
		return []Difference{{section,
			fmt.Sprintf("kind does not match, got %s and %s", a.kind, b.kind)}}
	}
	if a.width != b.width {
		return []Difference{{section,
			fmt.Sprintf("width does not match, got %d and %d", a.width, b.width)}}
	}
	if a.Len() != b.Len() {
		return []Difference{{section,
			fmt.Sprintf("tuple count does not match, got %d and %d", a.Len(), b.Len())}}
	}
	switch a.kind {
	case KindFloat:
		for i := range a.floats {
			if !scalar.EqualWithinAbs(a.floats[i], b.floats[i], tol) {
				return []Difference{{section,
					fmt.Sprintf("values differ at tuple %d", i/a.width)}}
			}
		}
	case KindInt:
		for i := range a.ints {
			if a.ints[i] != b.ints[i] {
				return []Difference{{section,
					fmt.Sprintf("values differ at tuple %d", i/a.width)}}
			}
		}
	case KindBool:
		for i := range a.bools {
			if a.bools[i] != b.bools[i] {
				return []Difference{{section,
					fmt.Sprintf("values differ at tuple %d", i/a.width)}}
			}
		}
	}
	return nil
}
