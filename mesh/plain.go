package mesh

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2), so the same dataset always serializes to
// identical bytes. BinaryMarshalerNone keeps the encoder from calling
// MarshalBinary on Plain values, which would recurse.
var encMode cbor.EncMode

// decMode is the CBOR decoder; BinaryUnmarshalerNone mirrors the
// encoder setting.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.BinaryMarshaler = cbor.BinaryMarshalerNone
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("mesh: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		BinaryUnmarshaler: cbor.BinaryUnmarshalerNone,
	}.DecMode()
	if err != nil {
		panic("mesh: CBOR decoder initialization failed: " + err.Error())
	}
}

// PlainArray is the toolkit-independent form of an attribute array.
// Kind selects which value slice is populated.
type PlainArray struct {
	Name   string    `cbor:"name"`
	Width  int       `cbor:"width"`
	Kind   string    `cbor:"kind"`
	Ints   []int64   `cbor:"ints,omitempty"`
	Floats []float64 `cbor:"floats,omitempty"`
	Bools  []bool    `cbor:"bools,omitempty"`
}

// PlainCell is the toolkit-independent form of a cell.
type PlainCell struct {
	Type     uint8 `cbor:"type"`
	PointIDs []int `cbor:"point_ids"`
}

// Plain is a dataset expressed in plain numeric slices, with no
// dependency on any toolkit's data model. ToPlain and FromPlain are a
// lossless pair: width, kind and element order survive the round trip.
type Plain struct {
	Points      [][3]float64 `cbor:"points"`
	Cells       []PlainCell  `cbor:"cells"`
	PointArrays []PlainArray `cbor:"point_arrays,omitempty"`
	CellArrays  []PlainArray `cbor:"cell_arrays,omitempty"`
}

// ToPlain converts a dataset to its plain representation. It fails with
// an *UnsupportedKindError if an array's kind has no plain equivalent.
func ToPlain(d *Dataset) (*Plain, error) {
	p := &Plain{
		Points: append([][3]float64(nil), d.points...),
		Cells:  make([]PlainCell, len(d.cells)),
	}
	for i, c := range d.cells {
		p.Cells[i] = PlainCell{
			Type:     uint8(c.Type),
			PointIDs: append([]int(nil), c.PointIDs...),
		}
	}
	var err error
	if p.PointArrays, err = plainArrays(d.pointData.arrays); err != nil {
		return nil, err
	}
	if p.CellArrays, err = plainArrays(d.cellData.arrays); err != nil {
		return nil, err
	}
	return p, nil
}

func plainArrays(arrays []*AttributeArray) ([]PlainArray, error) {
	if len(arrays) == 0 {
		return nil, nil
	}
	out := make([]PlainArray, 0, len(arrays))
	for _, a := range arrays {
		pa := PlainArray{Name: a.name, Width: a.width, Kind: a.kind.String()}
		switch a.kind {
		case KindInt:
			pa.Ints = append([]int64(nil), a.ints...)
		case KindFloat:
			pa.Floats = append([]float64(nil), a.floats...)
		case KindBool:
			pa.Bools = append([]bool(nil), a.bools...)
		default:
			return nil, &UnsupportedKindError{Name: a.name, Kind: a.kind.String()}
		}
		out = append(out, pa)
	}
	return out, nil
}

// FromPlain converts a plain representation back to a dataset. It fails
// with an *UnsupportedKindError if an array declares an unknown kind.
func FromPlain(p *Plain) (*Dataset, error) {
	points := append([][3]float64(nil), p.Points...)
	cells := make([]Cell, len(p.Cells))
	for i, c := range p.Cells {
		cells[i] = Cell{
			Type:     CellType(c.Type),
			PointIDs: append([]int(nil), c.PointIDs...),
		}
	}
	d := NewDataset(points, cells)
	for _, pa := range p.PointArrays {
		a, err := pa.toArray()
		if err != nil {
			return nil, err
		}
		if err := d.AddPointArray(a); err != nil {
			return nil, err
		}
	}
	for _, pa := range p.CellArrays {
		a, err := pa.toArray()
		if err != nil {
			return nil, err
		}
		if err := d.AddCellArray(a); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (pa PlainArray) toArray() (*AttributeArray, error) {
	k, ok := parseKind(pa.Kind)
	if !ok {
		return nil, &UnsupportedKindError{Name: pa.Name, Kind: pa.Kind}
	}
	switch k {
	case KindInt:
		return NewIntArray(pa.Name, pa.Width, append([]int64(nil), pa.Ints...))
	case KindFloat:
		return NewFloatArray(pa.Name, pa.Width, append([]float64(nil), pa.Floats...))
	default:
		return NewBoolArray(pa.Name, pa.Width, append([]bool(nil), pa.Bools...))
	}
}

// MarshalBinary serializes the plain dataset to deterministic CBOR.
func (p *Plain) MarshalBinary() ([]byte, error) {
	return encMode.Marshal(p)
}

// UnmarshalBinary deserializes a plain dataset from CBOR.
func (p *Plain) UnmarshalBinary(data []byte) error {
	return decMode.Unmarshal(data, p)
}

// PlainNode is the serializable form of a hierarchy node: a dataset
// leaf or a collection of children, never both.
type PlainNode struct {
	Dataset  *Plain      `cbor:"dataset,omitempty"`
	Children []PlainNode `cbor:"children,omitempty"`
}

// ToPlainNode converts a hierarchy to its plain form.
func ToPlainNode(root Node) (*PlainNode, error) {
	switch v := root.(type) {
	case *Dataset:
		p, err := ToPlain(v)
		if err != nil {
			return nil, err
		}
		return &PlainNode{Dataset: p}, nil
	case *Collection:
		out := &PlainNode{Children: make([]PlainNode, 0, v.Len())}
		for i := 0; i < v.Len(); i++ {
			child, err := ToPlainNode(v.Entry(i))
			if err != nil {
				return nil, err
			}
			out.Children = append(out.Children, *child)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown node type %T", root)
	}
}

// FromPlainNode converts a plain hierarchy back to datasets and
// collections. A node with a nil Dataset becomes a collection of its
// children; setting both is an error.
func FromPlainNode(p *PlainNode) (Node, error) {
	if p.Dataset != nil {
		if len(p.Children) > 0 {
			return nil, fmt.Errorf("plain node has both a dataset and children")
		}
		return FromPlain(p.Dataset)
	}
	entries := make([]Node, 0, len(p.Children))
	for i := range p.Children {
		child, err := FromPlainNode(&p.Children[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, child)
	}
	return NewCollection(entries...), nil
}

// MarshalBinary serializes the hierarchy to deterministic CBOR.
func (p *PlainNode) MarshalBinary() ([]byte, error) {
	return encMode.Marshal(p)
}

// UnmarshalBinary deserializes a hierarchy from CBOR.
func (p *PlainNode) UnmarshalBinary(data []byte) error {
	return decMode.Unmarshal(data, p)
}
