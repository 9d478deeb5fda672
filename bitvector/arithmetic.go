package bitvector

// Add sums two or more equal-length vectors with ripple-carry addition,
// folding pairwise in operand order. The carry out of the most
// significant position is discarded, so the sum wraps modulo 2^L and the
// result keeps the operand length.
func Add(vs ...BitVector) (BitVector, error) {
	if err := ensureMinArgCount("add", 2, vs...); err != nil {
		return nil, err
	}
	if err := ensureSameLength("add", vs...); err != nil {
		return nil, err
	}
	out := make(BitVector, len(vs[0]))
	for _, v := range vs {
		out = addTwo(out, v)
	}
	return out, nil
}

// Sub subtracts every operand after the first from the first. Each
// subtrahend is added as its complement plus one, so the result follows
// two's-complement wraparound at the operand length.
func Sub(vs ...BitVector) (BitVector, error) {
	if err := ensureMinArgCount("sub", 2, vs...); err != nil {
		return nil, err
	}
	if err := ensureSameLength("sub", vs...); err != nil {
		return nil, err
	}
	out := vs[0].Copy()
	for _, v := range vs[1:] {
		out = addTwo(out, negate(v))
	}
	return out, nil
}

// Increment adds one to v at its own length, wrapping on overflow. The
// empty vector is returned unchanged.
func Increment(v BitVector) BitVector {
	return addTwo(v, one(len(v)))
}

// Decrement subtracts one from v at its own length, wrapping below zero.
// The empty vector is returned unchanged.
func Decrement(v BitVector) BitVector {
	return addTwo(v, negate(one(len(v))))
}

// addTwo is the ripple-carry sum of two equal-length vectors, walking
// from the least significant position and carrying leftward.
func addTwo(a, b BitVector) BitVector {
	out := make(BitVector, len(a))
	var carry uint8
	for i := len(a) - 1; i >= 0; i-- {
		total := a[i] + b[i] + carry
		out[i] = total & 1
		carry = total >> 1
	}
	return out
}

// negate returns the additive inverse of v at its own length: the
// bitwise complement plus one.
func negate(v BitVector) BitVector {
	return addTwo(Not(v), one(len(v)))
}
