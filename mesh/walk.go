package mesh

import (
	"errors"
	"fmt"
)

// Leaf is a dataset reached at the bottom of a collection traversal,
// paired with its path from the root.
type Leaf struct {
	Path    Path
	Dataset *Dataset
}

// WalkFunc is called for each leaf dataset during traversal.
// Return nil to continue walking, ErrStopWalk to stop without error,
// or any other error to abort.
type WalkFunc func(path Path, d *Dataset) error

// Walk traverses a hierarchy depth-first, preserving entry order at
// every level, and calls fn for each leaf dataset. A *Dataset root is a
// single leaf with the empty path; empty collections contribute no
// leaves. The path passed to fn is freshly allocated and may be kept.
//
// Walking is lazy and single-pass: fn sees each leaf exactly once, in
// the order that later becomes the concatenation order of Consolidate.
func Walk(root Node, fn WalkFunc) error {
	err := walkNode(root, nil, 0, fn)
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	return err
}

func walkNode(n Node, p Path, depth int, fn WalkFunc) error {
	if depth > MaxDepth {
		return ErrMaxDepth
	}
	switch v := n.(type) {
	case *Dataset:
		if v == nil {
			return fmt.Errorf("nil dataset at %s", p)
		}
		return fn(p.clone(), v)
	case *Collection:
		if v == nil {
			return fmt.Errorf("nil collection at %s", p)
		}
		for i := 0; i < v.Len(); i++ {
			entry := v.Entry(i)
			if entry == nil {
				return fmt.Errorf("nil entry at %s", append(p.clone(), i))
			}
			if err := walkNode(entry, append(p, i), depth+1, fn); err != nil {
				return err
			}
		}
		return nil
	case nil:
		return fmt.Errorf("nil root node")
	default:
		return fmt.Errorf("unknown node type %T", n)
	}
}

// Flatten walks the hierarchy and collects all leaves in traversal
// order.
func Flatten(root Node) ([]Leaf, error) {
	var leaves []Leaf
	err := Walk(root, func(p Path, d *Dataset) error {
		leaves = append(leaves, Leaf{Path: p, Dataset: d})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return leaves, nil
}
