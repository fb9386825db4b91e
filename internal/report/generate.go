// Package report renders evaluation runs as console tables and JSON
// documents.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/filterbench/filterbench/internal/harness"
)

// Generate converts a finished run into its renderable report.
func Generate(rr *harness.RunResult) *Report {
	r := &Report{
		Meta: Meta{
			RunID:       uuid.NewString(),
			Timestamp:   time.Now().UTC(),
			Environment: NewEnvironmentInfo(),
		},
		Config: ConfigInfo{
			Scheme:  rr.Config.Scheme,
			Seed:    rr.Config.Seed,
			DupRate: rr.Config.DupRate,
			FPRate:  rr.Config.FPRate,
		},
	}

	for _, res := range rr.Results {
		entry := Entry{
			Structure: res.Structure,
			Kind:      string(res.Kind),
			Logins:    res.Logins,
			Queries:   res.Queries,
			TP:        res.Outcome.Counts.TP,
			TN:        res.Outcome.Counts.TN,
			FP:        res.Outcome.Counts.FP,
			FN:        res.Outcome.Counts.FN,
			Accuracy:  res.Accuracy,
			FPRate:    res.FPRate,
			Elapsed:   res.Outcome.Elapsed,
			Passed:    res.Passed(),
		}
		if res.Err != nil {
			entry.Error = res.Err.Error()
		}
		r.Entries = append(r.Entries, entry)
	}

	return r
}
