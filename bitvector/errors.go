package bitvector

import (
	"fmt"
	"strconv"
	"strings"
)

// ArityError is returned when a variadic operation receives fewer
// operands than it requires.
type ArityError struct {
	Op       string
	Required int
	Given    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects at least %d operands (given %d)", e.Op, e.Required, e.Given)
}

// LengthMismatchError is returned when the operands of one call do not
// all share a common length. Lengths holds the distinct operand lengths
// in ascending order.
type LengthMismatchError struct {
	Op      string
	Lengths []int
}

func (e *LengthMismatchError) Error() string {
	ls := make([]string, len(e.Lengths))
	for i, l := range e.Lengths {
		ls[i] = strconv.Itoa(l)
	}
	return fmt.Sprintf("%s requires operands of one common length (lengths given: %s)", e.Op, strings.Join(ls, ", "))
}

// InvalidShiftError is returned when a shift amount is less than 1.
type InvalidShiftError struct {
	Shift int
}

func (e *InvalidShiftError) Error() string {
	return fmt.Sprintf("shift must be greater than 0 (given %d)", e.Shift)
}

// InvalidBitError is returned by Validate for an element outside {0, 1}.
type InvalidBitError struct {
	Index int
	Value uint8
}

func (e *InvalidBitError) Error() string {
	return fmt.Sprintf("bit %d holds %d, want 0 or 1", e.Index, e.Value)
}
