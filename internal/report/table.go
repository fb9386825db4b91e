package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Membership Structure Correctness ===\n")
	fmt.Fprintf(tw, "run %s | scheme=%s seed=%d dup_rate=%.2f fp_rate=%.3f\n\n",
		r.Meta.RunID, r.Config.Scheme, r.Config.Seed, r.Config.DupRate, r.Config.FPRate)

	header := []string{"Structure", "Kind", "Logins", "Queries", "TP", "TN", "FP", "FN", "Accuracy", "FP-rate", "Elapsed", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range r.Entries {
		status := "OK"
		if !e.Passed {
			status = "FAIL"
		}
		row := []string{
			e.Structure,
			e.Kind,
			humanize.Comma(int64(e.Logins)),
			humanize.Comma(int64(e.Queries)),
			fmt.Sprintf("%d", e.TP),
			fmt.Sprintf("%d", e.TN),
			fmt.Sprintf("%d", e.FP),
			fmt.Sprintf("%d", e.FN),
			fmt.Sprintf("%.4f", e.Accuracy),
			fmt.Sprintf("%.4f", e.FPRate),
			fmtDuration(e.Elapsed),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)

	for _, e := range r.Entries {
		if e.Error != "" {
			fmt.Fprintf(tw, "FAIL %s n=%s: %s\n", e.Structure, humanize.Comma(int64(e.Logins)), e.Error)
		}
	}

	tw.Flush()
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Microseconds()))
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
