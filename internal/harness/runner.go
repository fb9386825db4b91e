package harness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/filterbench/filterbench/internal/dataset"
)

// Runner drives every injected adapter against every configured
// dataset size and checks each outcome against its kind's guarantee.
type Runner struct {
	config   Config
	adapters []Adapter
}

// NewRunner builds a runner over the given adapters.
func NewRunner(cfg Config, adapters []Adapter) *Runner {
	return &Runner{config: cfg, adapters: adapters}
}

// Run generates one dataset per size pair and evaluates every adapter
// against it. A generation error aborts the run: no dataset means no
// combination to judge. Evaluation and invariant failures do not; they
// are recorded per combination so the remaining combinations still
// run.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	rr := &RunResult{Config: r.config}

	for _, pair := range r.config.Sizes {
		set, err := dataset.GenerateLogins(pair.Logins, r.config.Scheme, r.config.Seed)
		if err != nil {
			return nil, fmt.Errorf("generate %d logins: %w", pair.Logins, err)
		}

		qs, err := dataset.GenerateQueries(set, pair.Queries, r.config.DupRate, dataset.NewRNG(r.config.Seed))
		if err != nil {
			return nil, fmt.Errorf("generate %d queries: %w", pair.Queries, err)
		}

		for _, a := range r.adapters {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			rr.Results = append(rr.Results, r.evaluate(ctx, a, set, qs))
		}
	}

	return rr, nil
}

func (r *Runner) evaluate(ctx context.Context, a Adapter, set *dataset.LoginSet, qs *dataset.QuerySet) Result {
	res := Result{
		Structure: a.Name(),
		Kind:      a.Kind(),
		Logins:    set.Len(),
		Queries:   qs.Len(),
	}

	out, err := a.Evaluate(ctx, set, qs)
	if err != nil {
		res.Err = fmt.Errorf("evaluate %s: %w", a.Name(), err)
		slog.Warn("evaluation failed", "structure", a.Name(), "logins", set.Len(), "error", err)
		return res
	}

	res.Outcome = out
	res.Accuracy = out.Counts.Accuracy()
	res.FPRate = out.Counts.FalsePositiveRate()

	if err := CheckOutcome(a.Kind(), out, int64(qs.Len())); err != nil {
		res.Err = err
		slog.Warn("invariant check failed", "structure", a.Name(), "kind", a.Kind(), "logins", set.Len(), "error", err)
	}

	return res
}
