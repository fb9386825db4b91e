package harness

import (
	"fmt"

	"github.com/filterbench/filterbench/internal/structures"
	"github.com/filterbench/filterbench/pkg/confusion"
)

// exactTolerance absorbs floating-point noise in the accuracy of an
// exact structure, which must otherwise be 1.0 on the nose.
const exactTolerance = 1e-12

// checks maps each guarantee kind to its invariant. One table, one
// lookup; no per-kind branching at the call sites.
var checks = map[structures.Kind]func(confusion.Matrix) error{
	structures.KindExact:           checkExact,
	structures.KindNoFalseNegative: checkNoFalseNegative,
	structures.KindApproximate:     checkApproximate,
}

// CheckOutcome validates out against the guarantee kind declares.
// Counts inconsistent with totalQueries fail as a
// *ContractViolationError for every kind; consistent counts that break
// the kind's guarantee fail as an *InvariantViolationError.
func CheckOutcome(kind structures.Kind, out Outcome, totalQueries int64) error {
	if err := out.Counts.Validate(totalQueries); err != nil {
		return &ContractViolationError{Kind: kind, Counts: out.Counts, Err: err}
	}

	check, ok := checks[kind]
	if !ok {
		return fmt.Errorf("unknown structure kind %q", kind)
	}
	return check(out.Counts)
}

// checkExact requires a perfect answer sheet: no errors in either
// direction and accuracy exactly 1.0.
func checkExact(m confusion.Matrix) error {
	if m.FP != 0 {
		return &InvariantViolationError{Kind: structures.KindExact, Counts: m,
			Reason: fmt.Sprintf("expected zero false positives, got %d", m.FP)}
	}
	if m.FN != 0 {
		return &InvariantViolationError{Kind: structures.KindExact, Counts: m,
			Reason: fmt.Sprintf("expected zero false negatives, got %d", m.FN)}
	}
	if acc := m.Accuracy(); m.Total() > 0 && (acc < 1-exactTolerance || acc > 1+exactTolerance) {
		return &InvariantViolationError{Kind: structures.KindExact, Counts: m,
			Reason: fmt.Sprintf("expected accuracy 1.0, got %v", acc)}
	}
	return nil
}

// checkNoFalseNegative permits false positives but never a missed
// member, and requires the derived false-positive rate to be a valid
// probability.
func checkNoFalseNegative(m confusion.Matrix) error {
	if m.FN != 0 {
		return &InvariantViolationError{Kind: structures.KindNoFalseNegative, Counts: m,
			Reason: fmt.Sprintf("expected zero false negatives, got %d", m.FN)}
	}
	if fpr := m.FalsePositiveRate(); fpr < 0 || fpr > 1 {
		return &InvariantViolationError{Kind: structures.KindNoFalseNegative, Counts: m,
			Reason: fmt.Sprintf("false-positive rate %v outside [0, 1]", fpr)}
	}
	return nil
}

// checkApproximate only rules out impossible accounting; both error
// directions are allowed and no error bound is enforced.
func checkApproximate(m confusion.Matrix) error {
	if acc := m.Accuracy(); acc < 0 || acc > 1 {
		return &InvariantViolationError{Kind: structures.KindApproximate, Counts: m,
			Reason: fmt.Sprintf("accuracy %v outside [0, 1]", acc)}
	}
	return nil
}
