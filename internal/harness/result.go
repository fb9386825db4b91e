package harness

import (
	"fmt"
	"time"

	"github.com/filterbench/filterbench/internal/structures"
)

// SizePair is one dataset configuration: n logins and q queries.
type SizePair struct {
	Logins  int
	Queries int
}

// Config carries the generation parameters and size pairs a run
// evaluates every adapter against.
type Config struct {
	Sizes   []SizePair
	Scheme  string
	Seed    uint64
	DupRate float64
	// FPRate sizes the probabilistic structures under evaluation.
	FPRate float64
}

// Result is the outcome of evaluating one adapter against one dataset
// size, including the verdict of its kind's invariant check.
type Result struct {
	Structure string
	Kind      structures.Kind
	Logins    int
	Queries   int
	Outcome   Outcome
	Accuracy  float64
	FPRate    float64
	// Err carries the evaluation error or the invariant-check failure
	// for this combination; nil means the guarantee held.
	Err error
}

// Passed reports whether this combination upheld its guarantee.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Summary renders the one-line human-readable verdict for this
// combination.
func (r Result) Summary() string {
	status := "ok"
	if r.Err != nil {
		status = r.Err.Error()
	}
	c := r.Outcome.Counts
	return fmt.Sprintf("%s (%s) n=%d q=%d: tp=%d tn=%d fp=%d fn=%d acc=%.4f fpr=%.4f elapsed=%s [%s]",
		r.Structure, r.Kind, r.Logins, r.Queries,
		c.TP, c.TN, c.FP, c.FN, r.Accuracy, r.FPRate,
		r.Outcome.Elapsed.Round(time.Microsecond), status)
}

// RunResult collects every (adapter, size) combination of one run.
type RunResult struct {
	Config  Config
	Results []Result
}

// Failed counts the combinations whose guarantee did not hold.
func (rr *RunResult) Failed() int {
	var failed int
	for _, r := range rr.Results {
		if !r.Passed() {
			failed++
		}
	}
	return failed
}
