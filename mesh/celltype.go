package mesh

import "fmt"

// CellType identifies the topology of a cell. The numeric values follow
// the VTK cell type ids so datasets exchanged with VTK-based tooling
// keep their meaning.
type CellType uint8

const (
	CellVertex     CellType = 1
	CellPolyVertex CellType = 2
	CellLine       CellType = 3
	CellPolyLine   CellType = 4
	CellTriangle   CellType = 5
	CellPolygon    CellType = 7
	CellQuad       CellType = 9
	CellTetra      CellType = 10
	CellHexahedron CellType = 12
	CellWedge      CellType = 13
	CellPyramid    CellType = 14
)

func (c CellType) String() string {
	switch c {
	case CellVertex:
		return "vertex"
	case CellPolyVertex:
		return "poly_vertex"
	case CellLine:
		return "line"
	case CellPolyLine:
		return "polyline"
	case CellTriangle:
		return "triangle"
	case CellPolygon:
		return "polygon"
	case CellQuad:
		return "quad"
	case CellTetra:
		return "tetra"
	case CellHexahedron:
		return "hexahedron"
	case CellWedge:
		return "wedge"
	case CellPyramid:
		return "pyramid"
	default:
		return fmt.Sprintf("cell_type(%d)", uint8(c))
	}
}
