package mesh

// ArrayInfo summarizes the shape of one attribute array.
type ArrayInfo struct {
	Assoc Association
	Name  string
	Width int
	Kind  Kind
}

// Descriptor is a read-only shape summary of one dataset: element
// counts plus the shape of every attribute array, point arrays first,
// each association in registration order.
type Descriptor struct {
	NumPoints int
	NumCells  int
	Arrays    []ArrayInfo
}

// Describe validates a dataset's structure and returns its descriptor.
// It fails with a *MalformedDatasetError if any array's tuple count
// disagrees with its association's element count; downstream
// reconciliation and consolidation assume datasets that passed here.
func Describe(d *Dataset) (Descriptor, error) {
	desc := Descriptor{NumPoints: d.NumPoints(), NumCells: d.NumCells()}
	for _, assoc := range []Association{PointData, CellData} {
		want := d.elementCount(assoc)
		for _, a := range d.set(assoc).arrays {
			if a.Len() != want {
				return Descriptor{}, &MalformedDatasetError{
					Assoc: assoc,
					Name:  a.name,
					Len:   a.Len(),
					Want:  want,
				}
			}
			desc.Arrays = append(desc.Arrays, ArrayInfo{
				Assoc: assoc,
				Name:  a.name,
				Width: a.width,
				Kind:  a.kind,
			})
		}
	}
	return desc, nil
}
