package msgsource

// CatalogDiff represents the difference between two versions of a catalog.
type CatalogDiff struct {
	// Added contains IDs present only in the new catalog.
	Added []string

	// Removed contains IDs present only in the old catalog.
	Removed []string

	// Changed contains IDs present in both whose message or comment differs.
	Changed []ChangedEntry

	// Unchanged contains IDs whose entries are identical.
	Unchanged []string
}

// ChangedEntry is a message whose entry differs between two catalogs.
type ChangedEntry struct {
	ID  string
	Old Entry
	New Entry
}

// DiffStats contains summary statistics for a diff.
type DiffStats struct {
	Added     int
	Removed   int
	Changed   int
	Unchanged int
}

// Stats returns summary statistics for the diff.
func (d *CatalogDiff) Stats() DiffStats {
	return DiffStats{
		Added:     len(d.Added),
		Removed:   len(d.Removed),
		Changed:   len(d.Changed),
		Unchanged: len(d.Unchanged),
	}
}

// HasChanges returns true if there are any differences.
func (d *CatalogDiff) HasChanges() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Changed) > 0
}

// DiffCatalogs compares two catalogs. Added, Changed and Unchanged follow
// the order of next; Removed follows the order of prev. Either may be nil.
func DiffCatalogs(prev, next *Catalog) *CatalogDiff {
	result := &CatalogDiff{}

	for id, e := range next.All() {
		old, ok := prev.Get(id)
		switch {
		case !ok:
			result.Added = append(result.Added, id)
		case old != e:
			result.Changed = append(result.Changed, ChangedEntry{ID: id, Old: old, New: e})
		default:
			result.Unchanged = append(result.Unchanged, id)
		}
	}

	for id := range prev.All() {
		if _, ok := next.Get(id); !ok {
			result.Removed = append(result.Removed, id)
		}
	}

	return result
}
