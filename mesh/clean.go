package mesh

import (
	"math"

	"github.com/robert-malhotra/go-mesh/internal/vec"
)

// Clean merges points lying within the configured tolerance of each
// other into a single point and remaps the cell connectivity onto the
// merged index space. Point data at merged points is averaged; cell
// data is kept as-is, since only the connectivity changes, not the
// cells themselves. The input is validated and left untouched; the
// result is a new dataset.
func Clean(d *Dataset, opts ...CleanOption) (*Dataset, error) {
	if _, err := Describe(d); err != nil {
		return nil, err
	}
	o := defaultCleanOptions()
	for _, opt := range opts {
		opt(o)
	}

	inverse, first := findClosePoints(d.points, o.tol)
	nUnique := len(first)

	points := make([][3]float64, nUnique)
	for g, i := range first {
		points[g] = d.points[i]
	}
	counts := make([]int, nUnique)
	for _, g := range inverse {
		counts[g]++
	}

	cells := make([]Cell, len(d.cells))
	for i, c := range d.cells {
		ids := make([]int, len(c.PointIDs))
		for j, id := range c.PointIDs {
			ids[j] = inverse[id]
		}
		cells[i] = Cell{Type: c.Type, PointIDs: ids}
	}

	out := NewDataset(points, cells)
	for _, a := range d.pointData.arrays {
		if err := out.AddPointArray(averageArray(a, inverse, counts)); err != nil {
			return nil, err
		}
	}
	for _, a := range d.cellData.arrays {
		if err := out.AddCellArray(a.clone()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// findClosePoints groups points lying within tol of each other. It
// returns for every input point the index of its group, and for every
// group the index of its first input point. Groups are numbered in
// order of first occurrence, so the cleaned point order follows the
// input order.
//
// For tol > 0 points are binned into a uniform grid with cell size tol;
// a point only needs to check the 27 surrounding bins for an existing
// group within reach.
func findClosePoints(points [][3]float64, tol float64) (inverse, first []int) {
	inverse = make([]int, len(points))

	if tol <= 0 {
		seen := make(map[[3]float64]int, len(points))
		for i, p := range points {
			if g, ok := seen[p]; ok {
				inverse[i] = g
				continue
			}
			g := len(first)
			seen[p] = g
			first = append(first, i)
			inverse[i] = g
		}
		return inverse, first
	}

	type bin [3]int64
	bins := make(map[bin][]int) // group ids whose representative falls in the bin
	binOf := func(p [3]float64) bin {
		return bin{
			int64(math.Floor(p[0] / tol)),
			int64(math.Floor(p[1] / tol)),
			int64(math.Floor(p[2] / tol)),
		}
	}
	for i, p := range points {
		b := binOf(p)
		found := -1
	search:
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					nb := bin{b[0] + dx, b[1] + dy, b[2] + dz}
					for _, g := range bins[nb] {
						if vec.Dist(points[first[g]], p) <= tol {
							found = g
							break search
						}
					}
				}
			}
		}
		if found < 0 {
			g := len(first)
			first = append(first, i)
			inverse[i] = g
			bins[b] = append(bins[b], g)
			continue
		}
		inverse[i] = found
	}
	return inverse, first
}

// averageArray reduces a point array onto the merged point groups.
// Numeric tuples are averaged over each group (integers rounded to
// nearest); booleans keep the first duplicate's value, since an average
// has no meaning for them.
func averageArray(a *AttributeArray, inverse, counts []int) *AttributeArray {
	w := a.width
	n := len(counts)

	if a.kind == KindBool {
		vals := make([]bool, n*w)
		seen := make([]bool, n)
		for i := 0; i < a.Len(); i++ {
			g := inverse[i]
			if seen[g] {
				continue
			}
			seen[g] = true
			copy(vals[g*w:(g+1)*w], a.bools[i*w:(i+1)*w])
		}
		return &AttributeArray{name: a.name, width: w, kind: KindBool, bools: vals}
	}

	acc := make([]float64, n*w)
	for i := 0; i < a.Len(); i++ {
		g := inverse[i]
		for c := 0; c < w; c++ {
			if a.kind == KindInt {
				acc[g*w+c] += float64(a.ints[i*w+c])
			} else {
				acc[g*w+c] += a.floats[i*w+c]
			}
		}
	}
	for g := 0; g < n; g++ {
		inv := 1 / float64(counts[g])
		for c := 0; c < w; c++ {
			acc[g*w+c] *= inv
		}
	}
	if a.kind == KindInt {
		ints := make([]int64, n*w)
		for i, v := range acc {
			ints[i] = int64(math.Round(v))
		}
		return &AttributeArray{name: a.name, width: w, kind: KindInt, ints: ints}
	}
	return &AttributeArray{name: a.name, width: w, kind: KindFloat, floats: acc}
}
