// Diagnostic tool for inspecting and consolidating serialized dataset
// hierarchies.
package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/robert-malhotra/go-mesh/mesh"
)

func main() {
	out := flag.StringP("out", "o", "", "write the consolidated dataset to this file (CBOR)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshinfo [--out merged.cbor] <collection.cbor>")
		os.Exit(1)
	}

	filename := flag.Arg(0)
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("ERROR: failed to read file: %v\n", err)
		os.Exit(1)
	}

	var node mesh.PlainNode
	if err := node.UnmarshalBinary(data); err != nil {
		fmt.Printf("ERROR: failed to decode %s: %v\n", filename, err)
		os.Exit(1)
	}
	root, err := mesh.FromPlainNode(&node)
	if err != nil {
		fmt.Printf("ERROR: failed to build hierarchy: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Analyzing %s ===\n\n", filename)
	err = mesh.Walk(root, func(p mesh.Path, d *mesh.Dataset) error {
		fmt.Printf("Dataset %s:\n", p)
		fmt.Printf("  Points: %d  Cells: %d\n", d.NumPoints(), d.NumCells())
		fmt.Printf("  Point arrays: %v\n", d.PointArrays())
		fmt.Printf("  Cell arrays: %v\n", d.CellArrays())
		return nil
	})
	if err != nil {
		fmt.Printf("ERROR: walking hierarchy: %v\n", err)
		os.Exit(1)
	}

	merged, report, err := mesh.Merge(root)
	if err != nil {
		if errors.Is(err, mesh.ErrEmptyInput) {
			fmt.Println("\nNothing to consolidate: the hierarchy has no leaf datasets")
			os.Exit(0)
		}
		fmt.Printf("ERROR: consolidating: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nMerge plan:")
	for _, e := range report.Plan.Entries() {
		switch e.Action {
		case mesh.ActionDrop:
			fmt.Printf("  %-7s %s::%s (%s)\n", e.Action, e.Assoc, e.Name, e.Reason)
		default:
			fmt.Printf("  %-7s %s::%s (width %d, %s)\n", e.Action, e.Assoc, e.Name, e.Width, e.Kind)
		}
	}
	for _, w := range report.Plan.Warnings() {
		fmt.Printf("  warning: %s::%s: %s\n", w.Assoc, w.Name, w.Message)
	}
	fmt.Printf("\nConsolidated: %d points, %d cells\n", merged.NumPoints(), merged.NumCells())

	if *out != "" {
		plain, err := mesh.ToPlain(merged)
		if err != nil {
			fmt.Printf("ERROR: converting result: %v\n", err)
			os.Exit(1)
		}
		b, err := plain.MarshalBinary()
		if err != nil {
			fmt.Printf("ERROR: encoding result: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, b, 0o644); err != nil {
			fmt.Printf("ERROR: writing %s: %v\n", *out, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *out)
	}
}
