package msgsource

import "iter"

// Entry is a single translated message.
type Entry struct {
	Message string // Translated text
	Comment string // Note for translators; empty means no comment
}

// Catalog maps message IDs to entries. Lookups are by ID; iteration follows
// insertion order, which is also the order entries are written to disk.
//
// A nil *Catalog behaves like an empty catalog for all read methods.
type Catalog struct {
	ids     []string
	entries map[string]Entry
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// Set adds or replaces the entry for id. A replaced entry keeps its position.
func (c *Catalog) Set(id string, e Entry) {
	if c.entries == nil {
		c.entries = make(map[string]Entry)
	}
	if _, ok := c.entries[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.entries[id] = e
}

// Get returns the entry for id.
func (c *Catalog) Get(id string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	e, ok := c.entries[id]
	return e, ok
}

// Message returns the translated text for id.
func (c *Catalog) Message(id string) (string, bool) {
	e, ok := c.Get(id)
	return e.Message, ok
}

// Delete removes id from the catalog and reports whether it was present.
func (c *Catalog) Delete(id string) bool {
	if c == nil {
		return false
	}
	if _, ok := c.entries[id]; !ok {
		return false
	}
	delete(c.entries, id)
	for i, existing := range c.ids {
		if existing == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}

// IDs returns the message IDs in catalog order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, len(c.ids))
	copy(ids, c.ids)
	return ids
}

// All iterates over the entries in catalog order.
func (c *Catalog) All() iter.Seq2[string, Entry] {
	return func(yield func(string, Entry) bool) {
		if c == nil {
			return
		}
		for _, id := range c.ids {
			if !yield(id, c.entries[id]) {
				return
			}
		}
	}
}

// Clone returns a deep copy. Cloning a nil catalog yields an empty one.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{entries: make(map[string]Entry, c.Len())}
	if c == nil {
		return out
	}
	out.ids = make([]string, len(c.ids))
	copy(out.ids, c.ids)
	for id, e := range c.entries {
		out.entries[id] = e
	}
	return out
}

// Equal reports whether both catalogs hold the same entries, ignoring order.
func (c *Catalog) Equal(other *Catalog) bool {
	if c.Len() != other.Len() {
		return false
	}
	for id, e := range c.All() {
		o, ok := other.Get(id)
		if !ok || o != e {
			return false
		}
	}
	return true
}
