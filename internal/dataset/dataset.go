// Package dataset generates reproducible synthetic login and query sets
// for membership testing. Generation is deterministic: every source of
// randomness is an explicitly seeded stream, never process-wide state,
// so identical parameters reproduce identical datasets byte for byte.
package dataset

import (
	"errors"
	"math/rand/v2"
)

// ErrInvalidParameter is returned for out-of-range generation
// parameters, before any output is produced.
var ErrInvalidParameter = errors.New("invalid parameter")

// LoginSet is an ordered collection of unique usernames produced by a
// single generation run.
type LoginSet struct {
	Usernames []string
	Scheme    string
	Seed      uint64
}

// Len returns the number of usernames in the set.
func (s *LoginSet) Len() int {
	return len(s.Usernames)
}

// Query pairs a username with its ground truth against the login set it
// was generated for.
type Query struct {
	Username string
	Present  bool
}

// QuerySet is an ordered collection of queries with known ground truth.
type QuerySet struct {
	Queries []Query
	DupRate float64
}

// Len returns the number of queries in the set.
func (s *QuerySet) Len() int {
	return len(s.Queries)
}

// NewRNG builds the deterministic random stream used for query
// generation. Callers hold the stream explicitly so reruns with the
// same seed replay the same draws.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}
