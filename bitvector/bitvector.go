// Package bitvector implements logical and arithmetic operations on
// fixed-length, big-endian bit vectors whose bits are stored unpacked,
// one integer per bit.
//
// Index 0 is the most significant bit. Every operation treats its
// operands as immutable values and returns a freshly allocated vector;
// results never grow past the operand length, so arithmetic wraps
// modulo 2^L.
package bitvector

import "strings"

// BitVector is an ordered sequence of bits, most significant first.
// Elements are expected to be 0 or 1; see Validate.
type BitVector []uint8

// New returns an all-zero bit vector of the given length.
func New(length int) BitVector {
	return make(BitVector, length)
}

// Copy returns a new vector with the same bits as v.
func (v BitVector) Copy() BitVector {
	c := make(BitVector, len(v))
	copy(c, v)
	return c
}

// String renders the vector as a binary literal, most significant bit first.
func (v BitVector) String() string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteString("0b")
	for _, bit := range v {
		if bit == 0 {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	}
	return b.String()
}

// Validate reports the first element that is not 0 or 1. The operation
// functions do not call it and accept whatever bytes they are handed;
// callers that cannot trust their inputs should validate up front.
func (v BitVector) Validate() error {
	for i, bit := range v {
		if bit > 1 {
			return &InvalidBitError{Index: i, Value: bit}
		}
	}
	return nil
}

// one returns the length-L encoding of the value 1: all zeros except the
// least significant position. The empty vector encodes nothing but zero.
func one(length int) BitVector {
	v := make(BitVector, length)
	if length > 0 {
		v[length-1] = 1
	}
	return v
}
