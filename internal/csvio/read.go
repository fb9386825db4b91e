package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/filterbench/filterbench/internal/dataset"
)

// ReadLogins parses a login file back into a LoginSet, preserving row
// order. The generation parameters are not stored in the file, so the
// returned set carries usernames only.
func ReadLogins(r io.Reader) (*dataset.LoginSet, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read login header: %w", err)
	}
	if len(header) != 1 || header[0] != usernameColumn {
		return nil, fmt.Errorf("unexpected login header %v, want [%s]", header, usernameColumn)
	}

	var usernames []string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read login row: %w", err)
		}
		usernames = append(usernames, row[0])
	}

	return &dataset.LoginSet{Usernames: usernames}, nil
}

// ReadQueries parses a query file back into a QuerySet, preserving row
// order.
func ReadQueries(r io.Reader) (*dataset.QuerySet, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read query header: %w", err)
	}
	if len(header) != 2 || header[0] != usernameColumn || header[1] != isPresentColumn {
		return nil, fmt.Errorf("unexpected query header %v, want [%s %s]", header, usernameColumn, isPresentColumn)
	}

	var queries []dataset.Query
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read query row: %w", err)
		}

		var present bool
		switch record[1] {
		case "1":
			present = true
		case "0":
			present = false
		default:
			return nil, fmt.Errorf("query row %d: bad %s value %q", row, isPresentColumn, record[1])
		}
		queries = append(queries, dataset.Query{Username: record[0], Present: present})
	}

	return &dataset.QuerySet{Queries: queries}, nil
}
