package mesh

import "fmt"

// arrayBuilder accumulates one output array across the leaves, in
// traversal order.
type arrayBuilder struct {
	name  string
	width int
	kind  Kind

	ints   []int64
	floats []float64
	bools  []bool
}

func newArrayBuilder(e PlanEntry, tuples int) *arrayBuilder {
	b := &arrayBuilder{name: e.Name, width: e.Width, kind: e.Kind}
	switch e.Kind {
	case KindInt:
		b.ints = make([]int64, 0, tuples*e.Width)
	case KindFloat:
		b.floats = make([]float64, 0, tuples*e.Width)
	case KindBool:
		b.bools = make([]bool, 0, tuples*e.Width)
	}
	return b
}

func (b *arrayBuilder) appendValues(a *AttributeArray) error {
	if a.width != b.width {
		return fmt.Errorf("array %q: width %d does not match plan width %d", a.name, a.width, b.width)
	}
	conv, err := a.convert(b.kind)
	if err != nil {
		return err
	}
	switch b.kind {
	case KindInt:
		b.ints = append(b.ints, conv.ints...)
	case KindFloat:
		b.floats = append(b.floats, conv.floats...)
	case KindBool:
		b.bools = append(b.bools, conv.bools...)
	}
	return nil
}

// appendZeros fills in the kind's zero value for tuples elements.
func (b *arrayBuilder) appendZeros(tuples int) {
	n := tuples * b.width
	switch b.kind {
	case KindInt:
		b.ints = append(b.ints, make([]int64, n)...)
	case KindFloat:
		b.floats = append(b.floats, make([]float64, n)...)
	case KindBool:
		b.bools = append(b.bools, make([]bool, n)...)
	}
}

func (b *arrayBuilder) build() *AttributeArray {
	return &AttributeArray{name: b.name, width: b.width, kind: b.kind,
		ints: b.ints, floats: b.floats, bools: b.bools}
}

// Consolidate merges the leaves into one newly allocated dataset,
// applying the merge plan. Points are concatenated in leaf order and
// each leaf's cell connectivity is offset by the running point count,
// so all indices stay valid in the merged index space. Arrays planned
// include or coerce are concatenated element-wise in the same order;
// fill arrays get the kind's zero value where a leaf lacks them;
// dropped arrays are omitted.
//
// Consolidating zero leaves fails with ErrEmptyInput: callers must be
// able to distinguish "nothing to show" from an empty merged result.
// The inputs are assumed to have passed Describe.
func Consolidate(leaves []Leaf, plan *MergePlan) (*Dataset, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyInput
	}

	totalPoints, totalCells := 0, 0
	for _, l := range leaves {
		totalPoints += l.Dataset.NumPoints()
		totalCells += l.Dataset.NumCells()
	}

	points := make([][3]float64, 0, totalPoints)
	cells := make([]Cell, 0, totalCells)
	offset := 0
	for _, l := range leaves {
		points = append(points, l.Dataset.points...)
		for _, c := range l.Dataset.cells {
			ids := make([]int, len(c.PointIDs))
			for i, id := range c.PointIDs {
				ids[i] = id + offset
			}
			cells = append(cells, Cell{Type: c.Type, PointIDs: ids})
		}
		offset += l.Dataset.NumPoints()
	}
	out := NewDataset(points, cells)

	for _, e := range plan.entries {
		if e.Action == ActionDrop {
			continue
		}
		tuples := totalPoints
		if e.Assoc == CellData {
			tuples = totalCells
		}
		b := newArrayBuilder(e, tuples)
		for _, l := range leaves {
			src := l.Dataset.lookup(e.Assoc, e.Name)
			if src == nil {
				b.appendZeros(l.Dataset.elementCount(e.Assoc))
				continue
			}
			if err := b.appendValues(src); err != nil {
				return nil, fmt.Errorf("consolidating leaf %s: %w", l.Path, err)
			}
		}
		if err := out.set(e.Assoc).add(b.build()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// MergeReport carries the reconciliation diagnostics of a Merge call:
// the unified schema, the per-array decisions with drop reasons, and
// the recorded warnings. The caller decides whether to log or display
// them.
type MergeReport struct {
	Schema *Schema
	Plan   *MergePlan
}

// Merge flattens the hierarchy, validates and describes every leaf,
// reconciles the attribute schemas and consolidates everything into one
// dataset. It is the convenience path through the full pipeline.
func Merge(root Node) (*Dataset, *MergeReport, error) {
	leaves, err := Flatten(root)
	if err != nil {
		return nil, nil, err
	}
	descs := make([]Descriptor, len(leaves))
	for i, l := range leaves {
		d, err := Describe(l.Dataset)
		if err != nil {
			return nil, nil, fmt.Errorf("leaf %s: %w", l.Path, err)
		}
		descs[i] = d
	}
	schema, plan := Reconcile(descs)
	merged, err := Consolidate(leaves, plan)
	if err != nil {
		return nil, nil, err
	}
	return merged, &MergeReport{Schema: schema, Plan: plan}, nil
}
