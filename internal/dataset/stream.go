package dataset

import (
	"fmt"

	"github.com/filterbench/filterbench/internal/namegen"
)

// Stream yields the usernames of a login set lazily in index order,
// without materializing the slice. At the largest configurations
// (100M+ entries) this keeps memory flat: consumers serialize or load
// names as they are produced, and a Reset replays the identical
// sequence because every name derives only from (index, seed).
type Stream struct {
	scheme string
	seed   uint64
	fn     namegen.Func
	n      int
	next   int
}

// NewStream prepares a lazy username sequence equivalent to
// GenerateLogins(n, scheme, seed) without allocating it.
func NewStream(n int, scheme string, seed uint64) (*Stream, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be >= 0, got %d", ErrInvalidParameter, n)
	}

	fn, err := namegen.Lookup(scheme)
	if err != nil {
		return nil, fmt.Errorf("stream logins: %w", err)
	}

	return &Stream{scheme: scheme, seed: seed, fn: fn, n: n}, nil
}

// Next returns the next username, or false once all n names have been
// yielded.
func (s *Stream) Next() (string, bool) {
	if s.next >= s.n {
		return "", false
	}
	name := s.fn(s.next, s.seed)
	s.next++
	return name, true
}

// At derives the username at index i without moving the cursor. Every
// scheme is a pure function of (index, seed), so random access costs
// the same as sequential iteration.
func (s *Stream) At(i int) string {
	return s.fn(i, s.seed)
}

// Reset rewinds the stream to index zero.
func (s *Stream) Reset() {
	s.next = 0
}

// Len reports the total number of usernames the stream yields.
func (s *Stream) Len() int {
	return s.n
}

// Scheme reports the naming scheme the stream derives names from.
func (s *Stream) Scheme() string {
	return s.scheme
}

// Seed reports the seed the stream derives names from.
func (s *Stream) Seed() uint64 {
	return s.seed
}
