package harness

import (
	"context"
	"fmt"
	"time"

	"github.com/filterbench/filterbench/internal/dataset"
	"github.com/filterbench/filterbench/internal/structures"
	"github.com/filterbench/filterbench/pkg/confusion"
)

// StructureAdapter runs a structure from the registry through the
// standard build-then-query evaluation.
type StructureAdapter struct {
	name   string
	kind   structures.Kind
	fpRate float64
}

// NewStructureAdapter prepares an adapter for the named registry
// structure. fpRate sizes the probabilistic structures and is ignored
// by exact ones.
func NewStructureAdapter(name string, fpRate float64) (*StructureAdapter, error) {
	kind, err := structures.KindOf(name)
	if err != nil {
		return nil, err
	}
	return &StructureAdapter{name: name, kind: kind, fpRate: fpRate}, nil
}

func (a *StructureAdapter) Name() string {
	return a.name
}

func (a *StructureAdapter) Kind() structures.Kind {
	return a.kind
}

// Evaluate builds a fresh structure sized for the login set, adds
// every username, then answers every query and counts the answers
// against ground truth. Elapsed covers the build and query passes.
func (a *StructureAdapter) Evaluate(ctx context.Context, set *dataset.LoginSet, qs *dataset.QuerySet) (Outcome, error) {
	m, _, err := structures.New(a.name, structures.Config{Capacity: set.Len(), FPRate: a.fpRate})
	if err != nil {
		return Outcome{}, fmt.Errorf("build %s: %w", a.name, err)
	}

	start := time.Now()

	for _, u := range set.Usernames {
		m.Add(u)
	}

	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	var counts confusion.Matrix
	for _, q := range qs.Queries {
		counts.Record(q.Present, m.Contains(q.Username))
	}

	return Outcome{Counts: counts, Elapsed: time.Since(start)}, nil
}
