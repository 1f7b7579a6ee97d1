package mesh

import (
	"fmt"
	"strings"

	"github.com/robert-malhotra/go-mesh/internal/vec"
)

// baseVectorNames are the per-point frame arrays CrossSection requires:
// the centerline tangent and the two in-plane directions spanning the
// cross-section plane.
var baseVectorNames = [3]string{"base_vector_1", "base_vector_2", "base_vector_3"}

// CrossSection extrudes a 2-D profile along the dataset's line and
// polyline cells. Every point must carry the width-3 float arrays named
// in baseVectorNames; each profile coordinate pair offsets a centerline
// point along base vectors 2 and 3, producing one profile ring per
// centerline point. Consecutive rings are joined by quad cells, and a
// closed profile additionally caps each end of every centerline with a
// polygon. Polygons come first in the output cell order, then the
// quads.
//
// Point data other than the base vectors is replicated to every
// generated ring point, keeping its kind. The base vector arrays and
// all cell data are consumed by the extrusion and do not survive.
func CrossSection(d *Dataset, profile [][2]float64, opts ...CrossSectionOption) (*Dataset, error) {
	if _, err := Describe(d); err != nil {
		return nil, err
	}
	o := defaultCrossSectionOptions()
	for _, opt := range opts {
		opt(o)
	}

	n := len(profile)
	if n < 2 {
		return nil, fmt.Errorf("profile needs at least 2 points, got %d", n)
	}
	if o.closed && n < 3 {
		return nil, fmt.Errorf("a closed profile needs at least 3 points, got %d", n)
	}

	for i, c := range d.cells {
		if c.Type != CellLine && c.Type != CellPolyLine {
			return nil, fmt.Errorf("cell %d: %w, got %s", i, ErrNotLine, c.Type)
		}
		if len(c.PointIDs) < 2 {
			return nil, fmt.Errorf("cell %d: a line cell needs at least 2 points", i)
		}
	}

	var frame [3]*AttributeArray
	for i, name := range baseVectorNames {
		a := d.PointArray(name)
		if a == nil {
			return nil, fmt.Errorf("point array %q is required", name)
		}
		if a.kind != KindFloat || a.width != 3 {
			return nil, fmt.Errorf("point array %q must be a width-3 float array, got width %d %s",
				name, a.width, a.kind)
		}
		frame[i] = a
	}
	baseVector := func(i, id int) [3]float64 {
		v := frame[i].floats[id*3 : id*3+3]
		return [3]float64{v[0], v[1], v[2]}
	}

	totalIDs := 0
	for _, c := range d.cells {
		totalIDs += len(c.PointIDs)
	}
	points := make([][3]float64, 0, totalIDs*n)
	srcIdx := make([]int, 0, totalIDs*n) // centerline tuple feeding each ring point
	var polygons, quads []Cell

	for _, c := range d.cells {
		cellStart := len(points)
		for r, id := range c.PointIDs {
			ringStart := len(points)
			b2, b3 := baseVector(1, id), baseVector(2, id)
			for _, p := range profile {
				offset := vec.Add(vec.Scale(b2, p[0]), vec.Scale(b3, p[1]))
				points = append(points, vec.Add(d.points[id], offset))
				srcIdx = append(srcIdx, id)
			}
			if r == 0 {
				continue
			}
			for ci := 0; ci < n; ci++ {
				if !o.closed && ci == n-1 {
					continue
				}
				next := (ci + 1) % n
				quads = append(quads, Cell{Type: CellQuad, PointIDs: []int{
					ringStart - n + ci,
					ringStart + ci,
					ringStart + next,
					ringStart - n + next,
				}})
			}
		}
		if o.closed {
			// Cap polygons wind opposite ways so both face outward.
			end := len(points) - 1
			front := make([]int, n)
			back := make([]int, n)
			for i := 0; i < n; i++ {
				front[i] = cellStart + n - 1 - i
				back[i] = end - i
			}
			polygons = append(polygons,
				Cell{Type: CellPolygon, PointIDs: front},
				Cell{Type: CellPolygon, PointIDs: back})
		}
	}

	cells := make([]Cell, 0, len(polygons)+len(quads))
	cells = append(cells, polygons...)
	cells = append(cells, quads...)

	out := NewDataset(points, cells)
	for _, a := range d.pointData.arrays {
		if strings.HasPrefix(a.name, "base_vector_") {
			continue
		}
		if err := out.AddPointArray(a.take(srcIdx)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
