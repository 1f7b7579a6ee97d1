package mesh

import (
	"fmt"
	"sort"
)

// Sort returns a copy of the dataset with its points and/or cells
// reordered by the named sort-key arrays. Sorting is stable and
// lexicographic: ties under the first key are broken by the second, and
// so on. Keys must be width-1 arrays of the respective association.
// When points are sorted, the cell connectivity is remapped through the
// inverse permutation so the topology is unchanged.
func Sort(d *Dataset, pointKeys, cellKeys []string) (*Dataset, error) {
	if _, err := Describe(d); err != nil {
		return nil, err
	}
	if len(pointKeys) == 0 && len(cellKeys) == 0 {
		return nil, ErrNothingToSort
	}

	pointPerm, pointInv, err := sortPerm(&d.pointData, PointData, pointKeys, d.NumPoints())
	if err != nil {
		return nil, err
	}
	cellPerm, _, err := sortPerm(&d.cellData, CellData, cellKeys, d.NumCells())
	if err != nil {
		return nil, err
	}

	var points [][3]float64
	if pointPerm != nil {
		points = make([][3]float64, len(d.points))
		for newIdx, oldIdx := range pointPerm {
			points[newIdx] = d.points[oldIdx]
		}
	} else {
		points = append([][3]float64(nil), d.points...)
	}

	cells := make([]Cell, len(d.cells))
	for newIdx := range cells {
		oldIdx := newIdx
		if cellPerm != nil {
			oldIdx = cellPerm[newIdx]
		}
		c := d.cells[oldIdx]
		ids := make([]int, len(c.PointIDs))
		for j, id := range c.PointIDs {
			if pointInv != nil {
				ids[j] = pointInv[id]
			} else {
				ids[j] = id
			}
		}
		cells[newIdx] = Cell{Type: c.Type, PointIDs: ids}
	}

	out := NewDataset(points, cells)
	for _, a := range d.pointData.arrays {
		if err := out.AddPointArray(permuteArray(a, pointPerm)); err != nil {
			return nil, err
		}
	}
	for _, a := range d.cellData.arrays {
		if err := out.AddCellArray(permuteArray(a, cellPerm)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// sortPerm computes the sorting permutation for one association. perm
// maps new position to old index; inverse maps old index to new
// position. Both are nil when no keys are given.
func sortPerm(set *arraySet, assoc Association, keys []string, n int) (perm, inverse []int, err error) {
	if len(keys) == 0 {
		return nil, nil, nil
	}
	keyArrays := make([]*AttributeArray, len(keys))
	for i, k := range keys {
		a := set.get(k)
		if a == nil {
			return nil, nil, fmt.Errorf("%s: no sort key array %q", assoc, k)
		}
		if a.width != 1 {
			return nil, nil, fmt.Errorf("%s: sort key %q must have width 1, got %d", assoc, k, a.width)
		}
		keyArrays[i] = a
	}

	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(x, y int) bool {
		ix, iy := perm[x], perm[y]
		for _, a := range keyArrays {
			if c := a.compareAt(ix, iy); c != 0 {
				return c < 0
			}
		}
		return false
	})

	inverse = make([]int, n)
	for newIdx, oldIdx := range perm {
		inverse[oldIdx] = newIdx
	}
	return perm, inverse, nil
}

func permuteArray(a *AttributeArray, perm []int) *AttributeArray {
	if perm == nil {
		return a.clone()
	}
	return a.take(perm)
}
