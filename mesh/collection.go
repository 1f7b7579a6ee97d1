package mesh

// Node is one entry of a dataset hierarchy: either a *Dataset leaf or a
// nested *Collection.
type Node interface {
	node()
}

// Collection is an ordered container of datasets and nested
// collections. Collections are built bottom-up from existing nodes, so
// the resulting tree cannot contain cycles.
type Collection struct {
	entries []Node
}

// NewCollection creates a collection over the given entries.
func NewCollection(entries ...Node) *Collection {
	return &Collection{entries: entries}
}

func (c *Collection) node() {}

// Len returns the number of entries.
func (c *Collection) Len() int { return len(c.entries) }

// Entry returns entry i.
func (c *Collection) Entry(i int) Node { return c.entries[i] }

// Append adds entries at the end of the collection.
func (c *Collection) Append(entries ...Node) {
	c.entries = append(c.entries, entries...)
}
