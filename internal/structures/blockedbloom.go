package structures

import (
	"github.com/cespare/xxhash/v2"
	"github.com/greatroar/blobloom"
)

// blockedBloom wraps a cache-line-blocked Bloom filter. blobloom
// leaves hashing to the caller, so every operation runs one xxhash
// pass over the username first.
type blockedBloom struct {
	f *blobloom.Filter
}

func newBlockedBloom(capacity int, fpRate float64) *blockedBloom {
	return &blockedBloom{f: blobloom.NewOptimized(blobloom.Config{
		Capacity: uint64(capacity),
		FPRate:   fpRate,
	})}
}

func (b *blockedBloom) Add(username string) {
	b.f.Add(xxhash.Sum64String(username))
}

func (b *blockedBloom) Contains(username string) bool {
	return b.f.Has(xxhash.Sum64String(username))
}
