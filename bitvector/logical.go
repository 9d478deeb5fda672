package bitvector

// And returns the elementwise conjunction of two or more equal-length
// vectors: bit i of the result is 1 iff bit i of every operand is 1.
func And(vs ...BitVector) (BitVector, error) {
	if err := ensureMinArgCount("and", 2, vs...); err != nil {
		return nil, err
	}
	if err := ensureSameLength("and", vs...); err != nil {
		return nil, err
	}
	out := make(BitVector, len(vs[0]))
	for i := range out {
		out[i] = 1
	}
	for _, v := range vs {
		for i, bit := range v {
			out[i] &= bit
		}
	}
	return out, nil
}

// Or returns the elementwise disjunction of two or more equal-length
// vectors: bit i of the result is 1 iff bit i of any operand is 1.
func Or(vs ...BitVector) (BitVector, error) {
	if err := ensureMinArgCount("or", 2, vs...); err != nil {
		return nil, err
	}
	if err := ensureSameLength("or", vs...); err != nil {
		return nil, err
	}
	out := make(BitVector, len(vs[0]))
	for _, v := range vs {
		for i, bit := range v {
			out[i] |= bit
		}
	}
	return out, nil
}

// Xor returns the elementwise parity of two or more equal-length
// vectors: bit i of the result is 1 iff an odd number of operands have
// bit i set. For two operands this is the usual exclusive or.
func Xor(vs ...BitVector) (BitVector, error) {
	if err := ensureMinArgCount("xor", 2, vs...); err != nil {
		return nil, err
	}
	if err := ensureSameLength("xor", vs...); err != nil {
		return nil, err
	}
	out := make(BitVector, len(vs[0]))
	for _, v := range vs {
		for i, bit := range v {
			out[i] ^= bit
		}
	}
	return out, nil
}

// Not returns the bitwise complement of v. Unlike the variadic
// operations it accepts a vector of any length, including the empty one.
func Not(v BitVector) BitVector {
	out := make(BitVector, len(v))
	for i, bit := range v {
		out[i] = bit ^ 1
	}
	return out
}
