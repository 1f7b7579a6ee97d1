// Package mesh normalizes and merges mesh/grid datasets: it flattens
// nested collections, reconciles attribute schemas across their leaves
// and consolidates geometry and data into a single dataset.
package mesh

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrEmptyInput     = errors.New("no leaf datasets to consolidate")
	ErrMaxDepth       = errors.New("maximum collection depth exceeded")
	ErrStopWalk       = errors.New("walk stopped")
	ErrNotLine        = errors.New("cell is not a line or polyline")
	ErrNothingToSort  = errors.New("no sort keys given")
	ErrTimeOutOfRange = errors.New("time outside series range")
)

// MaxDepth is the maximum nesting depth of collections a traversal will
// follow. Hierarchies are built bottom-up and cannot contain cycles, so
// this is a defensive bound, not a correctness dependency.
const MaxDepth = 100

// MalformedDatasetError reports an attribute array whose length does not
// match the element count of its association.
type MalformedDatasetError struct {
	Assoc Association // association class of the offending array
	Name  string      // array name
	Len   int         // tuples the array actually holds
	Want  int         // element count of the association
}

func (e *MalformedDatasetError) Error() string {
	return fmt.Sprintf("malformed dataset: %s array %q has %d tuples, want %d",
		e.Assoc, e.Name, e.Len, e.Want)
}

// UnsupportedKindError reports an array kind that has no plain-array
// representation.
type UnsupportedKindError struct {
	Name string // array name
	Kind string // kind as written, e.g. "integer" or an unknown label
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("array %q: kind %q has no plain representation", e.Name, e.Kind)
}
