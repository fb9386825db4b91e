// Package harness evaluates membership structures against datasets
// with known ground truth and checks that every structure family
// honors the theoretical guarantee its kind declares: exact structures
// answer perfectly, Bloom-style structures never miss a member, and
// approximate structures stay within plausible accounting.
package harness

import (
	"context"
	"time"

	"github.com/filterbench/filterbench/internal/dataset"
	"github.com/filterbench/filterbench/internal/structures"
	"github.com/filterbench/filterbench/pkg/confusion"
)

// Outcome is the confusion accounting of one evaluation plus the time
// the build-and-query pass took.
type Outcome struct {
	Counts  confusion.Matrix
	Elapsed time.Duration
}

// Adapter evaluates one membership structure against a dataset.
// Implementations own nothing beyond the evaluation: the harness
// supplies the dataset and consumes the outcome immediately.
type Adapter interface {
	// Name identifies the structure under evaluation.
	Name() string
	// Kind reports the guarantee family the structure claims.
	Kind() structures.Kind
	// Evaluate loads the login set into the structure, answers every
	// query, and tallies the answers against ground truth.
	Evaluate(ctx context.Context, set *dataset.LoginSet, qs *dataset.QuerySet) (Outcome, error)
}
