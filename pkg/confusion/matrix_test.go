package confusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{
			name: "empty matrix",
			m:    Matrix{},
			want: 0,
		},
		{
			name: "all correct",
			m:    Matrix{TP: 60, TN: 40},
			want: 1.0,
		},
		{
			name: "all wrong",
			m:    Matrix{FP: 30, FN: 70},
			want: 0,
		},
		{
			name: "mixed",
			m:    Matrix{TP: 50, TN: 25, FP: 15, FN: 10},
			want: 0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.m.Accuracy(), 1e-9)
		})
	}
}

func TestFalsePositiveRate(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{
			name: "no absent queries",
			m:    Matrix{TP: 100},
			want: 0,
		},
		{
			name: "no false positives",
			m:    Matrix{TP: 50, TN: 50},
			want: 0,
		},
		{
			name: "quarter of absents flagged",
			m:    Matrix{TP: 10, TN: 30, FP: 10},
			want: 0.25,
		},
		{
			name: "all absents flagged",
			m:    Matrix{FP: 20},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.m.FalsePositiveRate(), 1e-9)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid accounting", func(t *testing.T) {
		m := Matrix{TP: 40, TN: 35, FP: 15, FN: 10}
		require.NoError(t, m.Validate(100))
	})

	t.Run("sum mismatch", func(t *testing.T) {
		m := Matrix{TP: 40, TN: 35}
		err := m.Validate(100)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sum")
	})

	t.Run("negative count", func(t *testing.T) {
		m := Matrix{TP: -1, TN: 101}
		err := m.Validate(100)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative")
	})
}

func TestRecord(t *testing.T) {
	var m Matrix
	m.Record(true, true)   // TP
	m.Record(true, true)   // TP
	m.Record(false, false) // TN
	m.Record(false, true)  // FP
	m.Record(true, false)  // FN

	assert.Equal(t, Matrix{TP: 2, TN: 1, FP: 1, FN: 1}, m)
	assert.Equal(t, int64(5), m.Total())
}

func TestAdd(t *testing.T) {
	m := Matrix{TP: 1, TN: 2, FP: 3, FN: 4}
	m.Add(Matrix{TP: 10, TN: 20, FP: 30, FN: 40})
	assert.Equal(t, Matrix{TP: 11, TN: 22, FP: 33, FN: 44}, m)
}
