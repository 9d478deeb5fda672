package bitvector

import "sort"

// ensureMinArgCount guards variadic operations against too few operands.
// The operation name is passed in explicitly so that error messages stay
// accurate without any call-stack inspection.
func ensureMinArgCount(op string, min int, vs ...BitVector) error {
	if len(vs) < min {
		return &ArityError{Op: op, Required: min, Given: len(vs)}
	}
	return nil
}

// ensureSameLength guards variadic operations against operands of
// differing lengths.
func ensureSameLength(op string, vs ...BitVector) error {
	seen := make(map[int]struct{}, 1)
	for _, v := range vs {
		seen[len(v)] = struct{}{}
	}
	if len(seen) <= 1 {
		return nil
	}
	lengths := make([]int, 0, len(seen))
	for l := range seen {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return &LengthMismatchError{Op: op, Lengths: lengths}
}
