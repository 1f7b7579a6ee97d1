package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// framedCenterline builds a straight centerline of n+1 points along the
// x axis, one polyline cell, framed by constant base vectors: tangent
// x, in-plane directions y and z.
func framedCenterline(t *testing.T, n int) *Dataset {
	t.Helper()
	points := make([][3]float64, n+1)
	ids := make([]int, n+1)
	for i := range points {
		points[i] = [3]float64{float64(i), 0, 0}
		ids[i] = i
	}
	d := NewDataset(points, []Cell{{Type: CellPolyLine, PointIDs: ids}})
	frames := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i, name := range baseVectorNames {
		vals := make([]float64, 0, 3*(n+1))
		for range points {
			vals = append(vals, frames[i][0], frames[i][1], frames[i][2])
		}
		attachPointArray(t, d, mustFloatArray(t, name, 3, vals))
	}
	return d
}

func TestCrossSectionClosedProfile(t *testing.T) {
	d := framedCenterline(t, 2)
	profile := [][2]float64{{0, 0}, {1, 0}, {0, 1}}

	out, err := CrossSection(d, profile)
	require.NoError(t, err)

	// One ring of 3 points per centerline point, offset along y and z.
	require.Equal(t, 9, out.NumPoints())
	for r := 0; r < 3; r++ {
		x := float64(r)
		assert.Equal(t, [3]float64{x, 0, 0}, out.Point(3*r))
		assert.Equal(t, [3]float64{x, 1, 0}, out.Point(3*r+1))
		assert.Equal(t, [3]float64{x, 0, 1}, out.Point(3*r+2))
	}

	// Two cap polygons, then one quad per profile segment per ring
	// pair.
	require.Equal(t, 8, out.NumCells())
	assert.Equal(t, Cell{Type: CellPolygon, PointIDs: []int{2, 1, 0}}, out.Cell(0))
	assert.Equal(t, Cell{Type: CellPolygon, PointIDs: []int{8, 7, 6}}, out.Cell(1))
	assert.Equal(t, Cell{Type: CellQuad, PointIDs: []int{0, 3, 4, 1}}, out.Cell(2))
	assert.Equal(t, Cell{Type: CellQuad, PointIDs: []int{1, 4, 5, 2}}, out.Cell(3))
	assert.Equal(t, Cell{Type: CellQuad, PointIDs: []int{2, 5, 3, 0}}, out.Cell(4))
	assert.Equal(t, Cell{Type: CellQuad, PointIDs: []int{3, 6, 7, 4}}, out.Cell(5))
}

func TestCrossSectionOpenProfile(t *testing.T) {
	d := framedCenterline(t, 2)
	profile := [][2]float64{{0, 0}, {1, 0}}

	out, err := CrossSection(d, profile, WithOpenProfile())
	require.NoError(t, err)

	assert.Equal(t, 6, out.NumPoints())
	// An open strip has no caps and no closing segment.
	require.Equal(t, 2, out.NumCells())
	assert.Equal(t, Cell{Type: CellQuad, PointIDs: []int{0, 2, 3, 1}}, out.Cell(0))
	assert.Equal(t, Cell{Type: CellQuad, PointIDs: []int{2, 4, 5, 3}}, out.Cell(1))
}

func TestCrossSectionReplicatesPointData(t *testing.T) {
	d := framedCenterline(t, 2)
	attachPointArray(t, d, mustFloatArray(t, "radius", 1, []float64{1, 2, 3}))
	attachPointArray(t, d, mustIntArray(t, "id", 1, []int64{10, 20, 30}))

	out, err := CrossSection(d, [][2]float64{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)

	// Each centerline tuple repeats once per profile point, keeping its
	// kind; the base vector arrays are consumed.
	assert.Equal(t, []float64{1, 1, 1, 2, 2, 2, 3, 3, 3}, out.PointArray("radius").Floats())
	assert.Equal(t, []int64{10, 10, 10, 20, 20, 20, 30, 30, 30}, out.PointArray("id").Ints())
	assert.Equal(t, []string{"radius", "id"}, out.PointArrays())
}

func TestCrossSectionMultipleCenterlines(t *testing.T) {
	d := NewDataset(
		[][3]float64{{0, 0, 0}, {1, 0, 0}, {5, 0, 0}, {6, 0, 0}},
		[]Cell{
			{Type: CellLine, PointIDs: []int{0, 1}},
			{Type: CellLine, PointIDs: []int{2, 3}},
		},
	)
	frames := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i, name := range baseVectorNames {
		vals := make([]float64, 0, 12)
		for p := 0; p < 4; p++ {
			vals = append(vals, frames[i][0], frames[i][1], frames[i][2])
		}
		attachPointArray(t, d, mustFloatArray(t, name, 3, vals))
	}

	out, err := CrossSection(d, [][2]float64{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)

	assert.Equal(t, 12, out.NumPoints())
	// Caps of both centerlines first, then their quads.
	require.Equal(t, 10, out.NumCells())
	assert.Equal(t, Cell{Type: CellPolygon, PointIDs: []int{2, 1, 0}}, out.Cell(0))
	assert.Equal(t, Cell{Type: CellPolygon, PointIDs: []int{5, 4, 3}}, out.Cell(1))
	assert.Equal(t, Cell{Type: CellPolygon, PointIDs: []int{8, 7, 6}}, out.Cell(2))
	assert.Equal(t, Cell{Type: CellPolygon, PointIDs: []int{11, 10, 9}}, out.Cell(3))
	assert.Equal(t, Cell{Type: CellQuad, PointIDs: []int{0, 3, 4, 1}}, out.Cell(4))
	assert.Equal(t, Cell{Type: CellQuad, PointIDs: []int{6, 9, 10, 7}}, out.Cell(7))
}

func TestCrossSectionMissingBaseVectors(t *testing.T) {
	d := lineDataset(t, 1)

	_, err := CrossSection(d, [][2]float64{{0, 0}, {1, 0}, {0, 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `point array "base_vector_1" is required`)
}

func TestCrossSectionBadBaseVectorShape(t *testing.T) {
	d := lineDataset(t, 1)
	attachPointArray(t, d, mustFloatArray(t, "base_vector_1", 1, []float64{1, 1}))

	_, err := CrossSection(d, [][2]float64{{0, 0}, {1, 0}, {0, 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"base_vector_1" must be a width-3 float array`)
}

func TestCrossSectionNotLine(t *testing.T) {
	d := NewDataset(
		[][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[]Cell{{Type: CellTriangle, PointIDs: []int{0, 1, 2}}},
	)

	_, err := CrossSection(d, [][2]float64{{0, 0}, {1, 0}, {0, 1}})
	assert.ErrorIs(t, err, ErrNotLine)
}

func TestCrossSectionProfileTooSmall(t *testing.T) {
	d := framedCenterline(t, 1)

	_, err := CrossSection(d, [][2]float64{{0, 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 points")

	_, err = CrossSection(d, [][2]float64{{0, 0}, {1, 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed profile needs at least 3 points")
}
