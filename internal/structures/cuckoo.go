package structures

import cuckoo "github.com/seiflotfy/cuckoofilter"

// cuckooFilter wraps a cuckoo filter. A full table can drop
// fingerprints on insert, so unlike Bloom filters it can miss entries
// that were added; the resulting lookups count as false negatives.
type cuckooFilter struct {
	f *cuckoo.Filter
}

func newCuckooFilter(capacity int) *cuckooFilter {
	return &cuckooFilter{f: cuckoo.NewFilter(uint(capacity))}
}

func (c *cuckooFilter) Add(username string) {
	c.f.Insert([]byte(username))
}

func (c *cuckooFilter) Contains(username string) bool {
	return c.f.Lookup([]byte(username))
}
