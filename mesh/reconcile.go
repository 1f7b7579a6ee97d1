package mesh

import "fmt"

// PlanAction is the per-array merge decision.
type PlanAction uint8

const (
	// ActionInclude concatenates the array as-is; it is present with
	// identical shape in every source.
	ActionInclude PlanAction = iota + 1
	// ActionCoerce widens differing but unifiable kinds to a common
	// kind, then concatenates.
	ActionCoerce
	// ActionFill concatenates real values where the array is present
	// and the kind's zero value where it is absent.
	ActionFill
	// ActionDrop excludes the array from the output.
	ActionDrop
)

func (a PlanAction) String() string {
	switch a {
	case ActionInclude:
		return "include"
	case ActionCoerce:
		return "coerce"
	case ActionFill:
		return "fill"
	case ActionDrop:
		return "drop"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// SchemaEntry records the unified shape of one attribute array across a
// set of descriptors.
type SchemaEntry struct {
	Assoc   Association
	Name    string
	Width   int
	Kind    Kind
	Present int // descriptors the array was observed in
}

// Schema is the attribute shape observed across a set of datasets, in
// first-seen order. It is computed fresh per reconciliation and not
// persisted.
type Schema struct {
	entries []SchemaEntry
}

// Entries returns the schema entries in first-seen order.
func (s *Schema) Entries() []SchemaEntry { return s.entries }

// Len returns the number of entries.
func (s *Schema) Len() int { return len(s.entries) }

// Lookup returns the entry for the given association and name.
func (s *Schema) Lookup(assoc Association, name string) (SchemaEntry, bool) {
	for _, e := range s.entries {
		if e.Assoc == assoc && e.Name == name {
			return e, true
		}
	}
	return SchemaEntry{}, false
}

// PlanEntry is the decision for one attribute array. Width and Kind
// describe the output shape; Reason is set for dropped arrays.
type PlanEntry struct {
	Assoc  Association
	Name   string
	Action PlanAction
	Width  int
	Kind   Kind
	Reason string
}

// Warning is a non-fatal reconciliation diagnostic, recorded instead of
// raised.
type Warning struct {
	Assoc   Association
	Name    string
	Message string
}

// MergePlan is the ordered set of per-array decisions produced by
// Reconcile, plus the warnings recorded along the way.
type MergePlan struct {
	entries  []PlanEntry
	warnings []Warning
}

// Entries returns the plan entries in first-seen order.
func (p *MergePlan) Entries() []PlanEntry { return p.entries }

// Warnings returns the recorded fill/coerce warnings.
func (p *MergePlan) Warnings() []Warning { return p.warnings }

// Dropped returns the entries whose action is drop.
func (p *MergePlan) Dropped() []PlanEntry {
	var out []PlanEntry
	for _, e := range p.entries {
		if e.Action == ActionDrop {
			out = append(out, e)
		}
	}
	return out
}

type observation struct {
	width int
	kind  Kind
}

// Reconcile computes the union attribute schema of the given
// descriptors and the merge plan for every array seen in any of them.
//
// Per (association, name) pair, the decision is:
//   - one observed shape, present everywhere: include
//   - one observed shape, absent somewhere: fill with the kind's zero
//     value, warning recorded
//   - several shapes with equal widths and mutually widenable kinds:
//     coerce to the widest kind
//   - anything else: drop, with a structured reason
//
// Iteration follows first-seen order across the input sequence, so
// repeated calls with the same inputs produce identical ordering.
func Reconcile(descs []Descriptor) (*Schema, *MergePlan) {
	type key struct {
		assoc Association
		name  string
	}
	type state struct {
		assoc    Association
		name     string
		observed []observation // distinct shapes, first-seen order
		present  int
	}

	var order []*state
	index := make(map[key]*state)
	for _, d := range descs {
		for _, info := range d.Arrays {
			k := key{info.Assoc, info.Name}
			st := index[k]
			if st == nil {
				st = &state{assoc: info.Assoc, name: info.Name}
				index[k] = st
				order = append(order, st)
			}
			st.present++
			obs := observation{info.Width, info.Kind}
			seen := false
			for _, o := range st.observed {
				if o == obs {
					seen = true
					break
				}
			}
			if !seen {
				st.observed = append(st.observed, obs)
			}
		}
	}

	schema := &Schema{}
	plan := &MergePlan{}
	for _, st := range order {
		entry := PlanEntry{Assoc: st.assoc, Name: st.name}
		first := st.observed[0]
		switch {
		case len(st.observed) == 1 && st.present == len(descs):
			entry.Action = ActionInclude
			entry.Width, entry.Kind = first.width, first.kind
		case len(st.observed) == 1:
			entry.Action = ActionFill
			entry.Width, entry.Kind = first.width, first.kind
			plan.warnings = append(plan.warnings, Warning{
				Assoc: st.assoc,
				Name:  st.name,
				Message: fmt.Sprintf("missing in %d of %d datasets, filling with %s zero",
					len(descs)-st.present, len(descs), first.kind),
			})
		default:
			kind, reason := unify(st.observed)
			if reason != "" {
				entry.Action = ActionDrop
				entry.Width, entry.Kind = first.width, first.kind
				entry.Reason = reason
				break
			}
			entry.Action = ActionCoerce
			entry.Width, entry.Kind = first.width, kind
			if st.present < len(descs) {
				plan.warnings = append(plan.warnings, Warning{
					Assoc: st.assoc,
					Name:  st.name,
					Message: fmt.Sprintf("missing in %d of %d datasets, filling with %s zero",
						len(descs)-st.present, len(descs), kind),
				})
			}
		}
		plan.entries = append(plan.entries, entry)
		schema.entries = append(schema.entries, SchemaEntry{
			Assoc:   st.assoc,
			Name:    st.name,
			Width:   entry.Width,
			Kind:    entry.Kind,
			Present: st.present,
		})
	}
	return schema, plan
}

// unify reduces the observed shapes to a single kind, or reports why
// that is impossible. Widths are checked before kinds, matching the
// reported reasons.
func unify(obs []observation) (Kind, string) {
	kind := obs[0].kind
	for _, o := range obs[1:] {
		if o.width != obs[0].width {
			return KindInvalid, fmt.Sprintf("width mismatch: %d vs %d", obs[0].width, o.width)
		}
		k, ok := widen(kind, o.kind)
		if !ok {
			return KindInvalid, fmt.Sprintf("kind mismatch: %s vs %s", kind, o.kind)
		}
		kind = k
	}
	return kind, ""
}
