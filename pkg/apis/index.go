package apis

import "sort"

// Index is a name-keyed collection of API entries produced by one extraction
// pass over an immutable source snapshot. Indexes are rebuilt wholesale each
// run and never mutated incrementally.
type Index map[string]*APIEntry

// Names returns all entry names in sorted order, giving every consumer a
// deterministic iteration order.
func (idx Index) Names() []string {
	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the index contains an entry for name.
func (idx Index) Has(name string) bool {
	_, ok := idx[name]
	return ok
}

// Add inserts an entry keyed by its name, replacing any existing entry.
func (idx Index) Add(e *APIEntry) {
	idx[e.Name] = e
}

// Union returns the sorted union of entry names across the given indexes.
func Union(indexes ...Index) []string {
	seen := make(map[string]bool)
	for _, idx := range indexes {
		for name := range idx {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
