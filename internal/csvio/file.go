package csvio

import (
	"fmt"
	"io"
	"os"

	"github.com/filterbench/filterbench/internal/dataset"
)

// WriteLoginsFile creates path and writes the login set into it. On any
// error the partial file is removed: a dataset file either exists
// complete or not at all.
func WriteLoginsFile(path string, set *dataset.LoginSet) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteLogins(w, set)
	})
}

// WriteLoginStreamFile creates path and streams usernames into it,
// removing the partial file on error. Returns the number of usernames
// written.
func WriteLoginStreamFile(path string, s *dataset.Stream) (int, error) {
	var written int
	err := writeFile(path, func(w io.Writer) error {
		var werr error
		written, werr = WriteLoginStream(w, s)
		return werr
	})
	return written, err
}

// WriteQueriesFile creates path and writes the query set into it,
// removing the partial file on error.
func WriteQueriesFile(path string, qs *dataset.QuerySet) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteQueries(w, qs)
	})
}

// ReadLoginsFile opens path and parses it as a login file.
func ReadLoginsFile(path string) (*dataset.LoginSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	set, err := ReadLogins(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// ReadQueriesFile opens path and parses it as a query file.
func ReadQueriesFile(path string) (*dataset.QuerySet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	qs, err := ReadQueries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return qs, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
