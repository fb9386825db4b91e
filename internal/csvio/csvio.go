// Package csvio serializes login and query sets to their flat tabular
// formats and reads them back. Pure I/O: generation order is preserved
// and no dataset logic lives here.
//
// Login files carry a single username column. Query files carry
// username,is_present where is_present is 1 for queries whose username
// exists in the paired login set and 0 otherwise.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/filterbench/filterbench/internal/dataset"
)

const (
	usernameColumn  = "username"
	isPresentColumn = "is_present"
)

// WriteLogins serializes set to w: a header row, then one row per
// username in generation order.
func WriteLogins(w io.Writer, set *dataset.LoginSet) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{usernameColumn}); err != nil {
		return fmt.Errorf("write login header: %w", err)
	}
	for _, u := range set.Usernames {
		if err := cw.Write([]string{u}); err != nil {
			return fmt.Errorf("write login row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteLoginStream serializes usernames to w as the stream produces
// them, so the full set is never held in memory. Returns the number of
// usernames written.
func WriteLoginStream(w io.Writer, s *dataset.Stream) (int, error) {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{usernameColumn}); err != nil {
		return 0, fmt.Errorf("write login header: %w", err)
	}

	var written int
	for {
		name, ok := s.Next()
		if !ok {
			break
		}
		if err := cw.Write([]string{name}); err != nil {
			return written, fmt.Errorf("write login row: %w", err)
		}
		written++
	}

	cw.Flush()
	return written, cw.Error()
}

// WriteQueries serializes qs to w: a header row, then one
// username,is_present row per query in generation order.
func WriteQueries(w io.Writer, qs *dataset.QuerySet) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{usernameColumn, isPresentColumn}); err != nil {
		return fmt.Errorf("write query header: %w", err)
	}
	for _, q := range qs.Queries {
		if err := cw.Write([]string{q.Username, presentFlag(q.Present)}); err != nil {
			return fmt.Errorf("write query row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func presentFlag(present bool) string {
	if present {
		return "1"
	}
	return "0"
}
