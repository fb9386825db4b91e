package harness

import (
	"fmt"

	"github.com/filterbench/filterbench/internal/structures"
	"github.com/filterbench/filterbench/pkg/confusion"
)

// ContractViolationError reports counts an adapter returned that no
// evaluation could have produced: negative, or not summing to the
// query total. Ratios are never computed over such counts.
type ContractViolationError struct {
	Kind   structures.Kind
	Counts confusion.Matrix
	Err    error
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("adapter contract violated (%s): %v", e.Kind, e.Err)
}

func (e *ContractViolationError) Unwrap() error {
	return e.Err
}

// InvariantViolationError reports an outcome whose counts are
// internally consistent but break the guarantee the structure's kind
// declares, e.g. an exact structure returning false positives.
type InvariantViolationError struct {
	Kind   structures.Kind
	Counts confusion.Matrix
	Reason string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("%s guarantee violated: %s (tp=%d tn=%d fp=%d fn=%d)",
		e.Kind, e.Reason, e.Counts.TP, e.Counts.TN, e.Counts.FP, e.Counts.FN)
}
