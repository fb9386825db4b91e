// Package confusion provides confusion-matrix accounting for membership
// queries with known ground truth.
package confusion

import "fmt"

// Matrix holds the four outcome counts of a membership evaluation.
// TP: present and reported present. TN: absent and reported absent.
// FP: absent but reported present. FN: present but reported absent.
type Matrix struct {
	TP int64 `json:"tp"`
	TN int64 `json:"tn"`
	FP int64 `json:"fp"`
	FN int64 `json:"fn"`
}

// Total returns the number of queries the matrix accounts for.
func (m Matrix) Total() int64 {
	return m.TP + m.TN + m.FP + m.FN
}

// Accuracy computes the fraction of correctly answered queries.
// Returns 0 for an empty matrix.
func (m Matrix) Accuracy() float64 {
	total := m.Total()
	if total == 0 {
		return 0
	}
	return float64(m.TP+m.TN) / float64(total)
}

// FalsePositiveRate computes FP / (TN + FP), the fraction of absent
// queries answered "present". Returns 0 when no absent queries exist.
func (m Matrix) FalsePositiveRate() float64 {
	negatives := m.TN + m.FP
	if negatives == 0 {
		return 0
	}
	return float64(m.FP) / float64(negatives)
}

// Validate checks that the counts form a plausible accounting of
// total queries: all four non-negative and summing to total.
func (m Matrix) Validate(total int64) error {
	if m.TP < 0 || m.TN < 0 || m.FP < 0 || m.FN < 0 {
		return fmt.Errorf("negative count: tp=%d tn=%d fp=%d fn=%d", m.TP, m.TN, m.FP, m.FN)
	}
	if got := m.Total(); got != total {
		return fmt.Errorf("counts sum to %d, want %d", got, total)
	}
	return nil
}

// Add accumulates another matrix into this one.
func (m *Matrix) Add(other Matrix) {
	m.TP += other.TP
	m.TN += other.TN
	m.FP += other.FP
	m.FN += other.FN
}

// Record counts one query outcome given ground truth and the answer
// a structure gave.
func (m *Matrix) Record(present, reported bool) {
	switch {
	case present && reported:
		m.TP++
	case !present && !reported:
		m.TN++
	case !present && reported:
		m.FP++
	default:
		m.FN++
	}
}
