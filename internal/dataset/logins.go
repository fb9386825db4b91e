package dataset

import (
	"fmt"

	"github.com/filterbench/filterbench/internal/namegen"
)

// GenerateLogins produces n usernames under the named scheme, indices 0
// through n-1 in order. The result contains no duplicates: every scheme
// embeds the index in the name. n = 0 yields an empty set.
func GenerateLogins(n int, scheme string, seed uint64) (*LoginSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be >= 0, got %d", ErrInvalidParameter, n)
	}

	fn, err := namegen.Lookup(scheme)
	if err != nil {
		return nil, fmt.Errorf("generate logins: %w", err)
	}

	usernames := make([]string, n)
	for i := range usernames {
		usernames[i] = fn(i, seed)
	}

	return &LoginSet{Usernames: usernames, Scheme: scheme, Seed: seed}, nil
}
