package namegen

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

var (
	adjectives = []string{"swift", "silent", "bright", "brave", "clever", "fuzzy", "lucky", "mighty"}
	nouns      = []string{"tiger", "otter", "falcon", "panda", "lynx", "koala", "dragon", "llama"}
)

const (
	randomishAlphabet  = "abcdefghijklmnopqrstuvwxyz0123456789"
	randomishPrefixLen = 6
)

// SequentialName yields user0, user1, user2, ...
func SequentialName(i int) string {
	return "user" + strconv.Itoa(i)
}

// AdjNounName combines a fixed vocabulary with the index, e.g.
// brave_otter_15. The trailing index carries uniqueness; the small
// vocabulary repeats every 64 entries.
func AdjNounName(i int) string {
	adj := adjectives[i%len(adjectives)]
	noun := nouns[(i/len(adjectives))%len(nouns)]

	var b strings.Builder
	b.Grow(len(adj) + len(noun) + 14)
	b.WriteString(adj)
	b.WriteByte('_')
	b.WriteString(noun)
	b.WriteByte('_')
	b.WriteString(strconv.Itoa(i))
	return b.String()
}

// RandomishName yields a six character alphanumeric prefix plus the
// index, e.g. xk29ab_7. The prefix is drawn from a stream seeded by
// seed+i, so it is stable across runs; uniqueness comes from the
// trailing index alone, never from the prefix.
func RandomishName(i int, seed uint64) string {
	rng := indexRNG(seed, i)

	var b strings.Builder
	b.Grow(randomishPrefixLen + 12)
	for n := 0; n < randomishPrefixLen; n++ {
		b.WriteByte(randomishAlphabet[rng.IntN(len(randomishAlphabet))])
	}
	b.WriteByte('_')
	b.WriteString(strconv.Itoa(i))
	return b.String()
}

// MixedName picks one of the three styles per index. The pick is fixed
// by (i, seed), so regenerating the same dataset yields the same names.
func MixedName(i int, seed uint64) string {
	switch indexRNG(seed, i).IntN(3) {
	case 0:
		return SequentialName(i)
	case 1:
		return AdjNounName(i)
	default:
		return RandomishName(i, seed)
	}
}

// indexRNG builds the deterministic stream for a single index. A fresh
// stream per index keeps every name derivable in isolation, which is
// what makes restartable streaming generation possible.
func indexRNG(seed uint64, i int) *rand.Rand {
	return rand.New(rand.NewPCG(seed+uint64(i), 0))
}
