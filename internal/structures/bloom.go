package structures

import bloom "github.com/bits-and-blooms/bloom/v3"

// bloomFilter wraps the classic Bloom filter. Added usernames are
// always found; never-added ones may be reported present at roughly
// the configured rate.
type bloomFilter struct {
	f *bloom.BloomFilter
}

func newBloomFilter(capacity int, fpRate float64) *bloomFilter {
	return &bloomFilter{f: bloom.NewWithEstimates(uint(capacity), fpRate)}
}

func (b *bloomFilter) Add(username string) {
	b.f.AddString(username)
}

func (b *bloomFilter) Contains(username string) bool {
	return b.f.TestString(username)
}
