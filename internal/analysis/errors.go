package analysis

import "fmt"

// DenominatorError indicates an aggregate whose denominator collapsed for
// the selected rows, such as a mean over zero rows or a variance over a
// single row.
type DenominatorError struct {
	Op   string
	Rows int
}

func (e *DenominatorError) Error() string {
	return fmt.Sprintf("cannot compute %s over %d selected rows", e.Op, e.Rows)
}
