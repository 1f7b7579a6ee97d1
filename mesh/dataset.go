package mesh

// Cell references the points that make up one element of a dataset's
// topology.
type Cell struct {
	Type     CellType
	PointIDs []int
}

// arraySet keeps attribute arrays in registration order with a name
// index, so schema reconciliation sees a deterministic ordering.
type arraySet struct {
	arrays []*AttributeArray
	index  map[string]int
}

func (s *arraySet) add(a *AttributeArray) error {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[a.name]; ok {
		return &duplicateArrayError{name: a.name}
	}
	s.index[a.name] = len(s.arrays)
	s.arrays = append(s.arrays, a)
	return nil
}

func (s *arraySet) get(name string) *AttributeArray {
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return s.arrays[i]
}

func (s *arraySet) names() []string {
	out := make([]string, len(s.arrays))
	for i, a := range s.arrays {
		out[i] = a.name
	}
	return out
}

type duplicateArrayError struct{ name string }

func (e *duplicateArrayError) Error() string {
	return "duplicate array name " + `"` + e.name + `"`
}

// Dataset is one mesh: point coordinates, cells referencing those
// points, and named attribute arrays on points and cells. Datasets are
// treated as immutable once handed to an operation of this package;
// none of the operations mutate their inputs.
type Dataset struct {
	points    [][3]float64
	cells     []Cell
	pointData arraySet
	cellData  arraySet
}

// NewDataset creates a dataset from point coordinates and cells. The
// caller keeps ownership of the slices and must not mutate them while
// the dataset is in use.
func NewDataset(points [][3]float64, cells []Cell) *Dataset {
	return &Dataset{points: points, cells: cells}
}

func (d *Dataset) node() {}

// NumPoints returns the number of points.
func (d *Dataset) NumPoints() int { return len(d.points) }

// NumCells returns the number of cells.
func (d *Dataset) NumCells() int { return len(d.cells) }

// Points returns the point coordinates. The slice is shared with the
// dataset and must not be mutated.
func (d *Dataset) Points() [][3]float64 { return d.points }

// Point returns the coordinates of point i.
func (d *Dataset) Point(i int) [3]float64 { return d.points[i] }

// Cells returns the cells. The slice is shared with the dataset and
// must not be mutated.
func (d *Dataset) Cells() []Cell { return d.cells }

// Cell returns cell i.
func (d *Dataset) Cell(i int) Cell { return d.cells[i] }

// AddPointArray registers a per-point attribute array. The name must be
// unique among the dataset's point arrays.
func (d *Dataset) AddPointArray(a *AttributeArray) error {
	return d.pointData.add(a)
}

// AddCellArray registers a per-cell attribute array. The name must be
// unique among the dataset's cell arrays.
func (d *Dataset) AddCellArray(a *AttributeArray) error {
	return d.cellData.add(a)
}

// PointArrays returns the point array names in registration order.
func (d *Dataset) PointArrays() []string { return d.pointData.names() }

// CellArrays returns the cell array names in registration order.
func (d *Dataset) CellArrays() []string { return d.cellData.names() }

// PointArray returns the named point array, or nil.
func (d *Dataset) PointArray(name string) *AttributeArray { return d.pointData.get(name) }

// CellArray returns the named cell array, or nil.
func (d *Dataset) CellArray(name string) *AttributeArray { return d.cellData.get(name) }

func (d *Dataset) set(assoc Association) *arraySet {
	if assoc == CellData {
		return &d.cellData
	}
	return &d.pointData
}

func (d *Dataset) lookup(assoc Association, name string) *AttributeArray {
	return d.set(assoc).get(name)
}

// elementCount returns the number of elements an array of the given
// association must cover.
func (d *Dataset) elementCount(assoc Association) int {
	if assoc == CellData {
		return len(d.cells)
	}
	return len(d.points)
}
