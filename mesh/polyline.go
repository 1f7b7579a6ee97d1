package mesh

import (
	"fmt"
	"math"

	"github.com/robert-malhotra/go-mesh/internal/vec"
)

// MergePolylines chains line and polyline cells that represent a
// continuous curve into single polyline cells. Cells connect when they
// share an endpoint and the angle between their tangents at that point
// is smoother than the configured threshold; chains stop where the
// continuation is missing or ambiguous. The output keeps the input's
// points and point data; cell data does not survive, since the cells
// themselves are replaced.
func MergePolylines(d *Dataset, opts ...PolylineOption) (*Dataset, error) {
	if _, err := Describe(d); err != nil {
		return nil, err
	}
	o := defaultPolylineOptions()
	for _, opt := range opts {
		opt(o)
	}

	for i, c := range d.cells {
		if c.Type != CellLine && c.Type != CellPolyLine {
			return nil, fmt.Errorf("cell %d: %w, got %s", i, ErrNotLine, c.Type)
		}
		if len(c.PointIDs) < 2 {
			return nil, fmt.Errorf("cell %d: a line cell needs at least 2 points", i)
		}
	}

	// Cells incident to each point through one of their endpoints.
	incident := make(map[int][]int)
	for ci, c := range d.cells {
		head, tail := c.PointIDs[0], c.PointIDs[len(c.PointIDs)-1]
		incident[head] = append(incident[head], ci)
		if tail != head {
			incident[tail] = append(incident[tail], ci)
		}
	}

	remaining := make([]bool, len(d.cells))
	for i := range remaining {
		remaining[i] = true
	}
	cosLimit := math.Cos(o.smoothAngle)

	var merged []Cell
	for seed := range d.cells {
		if !remaining[seed] {
			continue
		}
		remaining[seed] = false
		chain := append([]int(nil), d.cells[seed].PointIDs...)
		for _, atTail := range []bool{true, false} {
			for {
				next := nextSmoothCell(d, incident, remaining, chain, atTail, cosLimit)
				if next < 0 {
					break
				}
				remaining[next] = false
				chain = appendToChain(chain, d.cells[next].PointIDs, atTail)
			}
		}
		merged = append(merged, Cell{Type: CellPolyLine, PointIDs: chain})
	}

	out := NewDataset(append([][3]float64(nil), d.points...), merged)
	for _, a := range d.pointData.arrays {
		if err := out.AddPointArray(a.clone()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// nextSmoothCell finds the unique smooth continuation of the chain at
// its tail or head endpoint. It returns -1 when there is none, or when
// several candidates qualify and the continuation is ambiguous.
func nextSmoothCell(d *Dataset, incident map[int][]int, remaining []bool, chain []int, atTail bool, cosLimit float64) int {
	var p, prev int
	if atTail {
		p, prev = chain[len(chain)-1], chain[len(chain)-2]
	} else {
		p, prev = chain[0], chain[1]
	}
	// Outward tangent of the chain: direction of travel into the
	// junction point.
	tangent, ok := vec.Normalize(vec.Sub(d.points[p], d.points[prev]))
	if !ok {
		return -1
	}

	found := -1
	for _, ci := range incident[p] {
		if !remaining[ci] {
			continue
		}
		ids := d.cells[ci].PointIDs
		var neighbor int
		switch p {
		case ids[len(ids)-1]:
			neighbor = ids[len(ids)-2]
		case ids[0]:
			neighbor = ids[1]
		default:
			// Connected through an interior point; not a continuation.
			continue
		}
		// Candidate tangent into the junction from its far side. For a
		// smooth continuation the two travel directions oppose, so the
		// dot product must fall below cos(smoothAngle).
		t, ok := vec.Normalize(vec.Sub(d.points[p], d.points[neighbor]))
		if !ok {
			continue
		}
		if vec.Dot(tangent, t) < cosLimit {
			if found >= 0 {
				return -1
			}
			found = ci
		}
	}
	return found
}

// appendToChain splices a cell's point ids onto the chain at its tail
// or head, reversing the cell as needed so the shared endpoint appears
// once.
func appendToChain(chain, ids []int, atTail bool) []int {
	reversed := func(s []int) []int {
		out := make([]int, len(s))
		for i, v := range s {
			out[len(s)-1-i] = v
		}
		return out
	}
	if atTail {
		if ids[0] != chain[len(chain)-1] {
			ids = reversed(ids)
		}
		return append(chain, ids[1:]...)
	}
	if ids[len(ids)-1] != chain[0] {
		ids = reversed(ids)
	}
	out := make([]int, 0, len(ids)-1+len(chain))
	out = append(out, ids[:len(ids)-1]...)
	return append(out, chain...)
}
