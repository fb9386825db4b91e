package dataset

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// FakePrefix marks synthesized absent usernames. No generation scheme
// can produce it: sequential names start with "user", adjnoun names
// with a vocabulary adjective, and randomish names place their first
// underscore after six characters.
const FakePrefix = "fake_"

const (
	fakeSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz"
	fakeSuffixLen      = 6
)

// GenerateQueries produces q membership queries against set. Each slot
// flips a coin from rng: with probability dupRate it samples an
// existing username (tagged present), otherwise it synthesizes a
// fake_-prefixed username that cannot exist in any login set (tagged
// absent). The realized present fraction is therefore only
// statistically close to dupRate, not exact.
//
// When set is empty the present branch has nothing to sample, so every
// slot falls through to the absent branch.
//
// rng must be an explicitly seeded stream (see NewRNG): identical
// (set, q, dupRate, seed) inputs reproduce the identical query set.
func GenerateQueries(set *LoginSet, q int, dupRate float64, rng *rand.Rand) (*QuerySet, error) {
	return generateQueries(set.Len(), func(i int) string { return set.Usernames[i] }, q, dupRate, rng)
}

// GenerateQueriesStream is GenerateQueries over a lazy login stream.
// Present queries sample by index and derive the username on demand,
// so the login set is never materialized. With the same rng seed it
// draws the same values as GenerateQueries over the equivalent set and
// produces the identical query set.
func GenerateQueriesStream(s *Stream, q int, dupRate float64, rng *rand.Rand) (*QuerySet, error) {
	return generateQueries(s.Len(), s.At, q, dupRate, rng)
}

func generateQueries(n int, at func(int) string, q int, dupRate float64, rng *rand.Rand) (*QuerySet, error) {
	if q < 0 {
		return nil, fmt.Errorf("%w: q must be >= 0, got %d", ErrInvalidParameter, q)
	}
	if dupRate < 0 || dupRate > 1 {
		return nil, fmt.Errorf("%w: dup_rate must be within [0, 1], got %v", ErrInvalidParameter, dupRate)
	}

	queries := make([]Query, q)

	for j := range queries {
		if rng.Float64() < dupRate && n > 0 {
			queries[j] = Query{Username: at(rng.IntN(n)), Present: true}
		} else {
			queries[j] = Query{Username: fakeName(j, rng), Present: false}
		}
	}

	return &QuerySet{Queries: queries, DupRate: dupRate}, nil
}

// fakeName builds an absent username: the reserved prefix, a random
// lowercase suffix, and the slot index to keep fakes distinct across
// slots.
func fakeName(j int, rng *rand.Rand) string {
	var b strings.Builder
	b.Grow(len(FakePrefix) + fakeSuffixLen + 12)
	b.WriteString(FakePrefix)
	for n := 0; n < fakeSuffixLen; n++ {
		b.WriteByte(fakeSuffixAlphabet[rng.IntN(len(fakeSuffixAlphabet))])
	}
	b.WriteByte('_')
	b.WriteString(strconv.Itoa(j))
	return b.String()
}
