package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filterbench/filterbench/internal/harness"
	"github.com/filterbench/filterbench/internal/structures"
	"github.com/filterbench/filterbench/pkg/confusion"
)

func sampleRun() *harness.RunResult {
	return &harness.RunResult{
		Config: harness.Config{
			Scheme:  "mixed",
			Seed:    42,
			DupRate: 0.5,
			FPRate:  0.01,
		},
		Results: []harness.Result{
			{
				Structure: "hashset",
				Kind:      structures.KindExact,
				Logins:    200,
				Queries:   100,
				Outcome: harness.Outcome{
					Counts:  confusion.Matrix{TP: 50, TN: 50},
					Elapsed: 123 * time.Microsecond,
				},
				Accuracy: 1.0,
			},
			{
				Structure: "bloom",
				Kind:      structures.KindNoFalseNegative,
				Logins:    200,
				Queries:   100,
				Outcome: harness.Outcome{
					Counts:  confusion.Matrix{TP: 50, TN: 48, FP: 2},
					Elapsed: 98 * time.Microsecond,
				},
				Accuracy: 0.98,
				FPRate:   0.04,
				Err:      errors.New("exact guarantee violated: boom"),
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	r := Generate(sampleRun())

	assert.NotEmpty(t, r.Meta.RunID)
	assert.False(t, r.Meta.Timestamp.IsZero())
	assert.Equal(t, "mixed", r.Config.Scheme)

	require.Len(t, r.Entries, 2)

	assert.Equal(t, "hashset", r.Entries[0].Structure)
	assert.True(t, r.Entries[0].Passed)
	assert.Empty(t, r.Entries[0].Error)
	assert.EqualValues(t, 50, r.Entries[0].TP)

	assert.Equal(t, "bloom", r.Entries[1].Structure)
	assert.False(t, r.Entries[1].Passed)
	assert.Contains(t, r.Entries[1].Error, "boom")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(Generate(sampleRun()), &buf)

	out := buf.String()
	assert.Contains(t, out, "hashset")
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "boom")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(Generate(sampleRun()), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed Report
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Len(t, parsed.Entries, 2)
	assert.Equal(t, "probabilistic_no_false_negative", parsed.Entries[1].Kind)
}
