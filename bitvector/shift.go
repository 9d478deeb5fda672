package bitvector

// ShiftLeftFill0 shifts v left by the given amount, filling vacated
// low-order positions with 0. Bits shifted past the most significant
// position are discarded; the result keeps the length of v.
func ShiftLeftFill0(shift int, v BitVector) (BitVector, error) {
	return shiftLeft(shift, v, 0)
}

// ShiftLeftFill1 shifts v left by the given amount, filling vacated
// low-order positions with 1.
func ShiftLeftFill1(shift int, v BitVector) (BitVector, error) {
	return shiftLeft(shift, v, 1)
}

// ShiftRightFill0 shifts v right by the given amount, filling vacated
// high-order positions with 0. Bits shifted past the least significant
// position are discarded; the result keeps the length of v.
func ShiftRightFill0(shift int, v BitVector) (BitVector, error) {
	return shiftRight(shift, v, 0)
}

// ShiftRightFill1 shifts v right by the given amount, filling vacated
// high-order positions with 1.
func ShiftRightFill1(shift int, v BitVector) (BitVector, error) {
	return shiftRight(shift, v, 1)
}

func shiftLeft(shift int, v BitVector, fill uint8) (BitVector, error) {
	if shift < 1 {
		return nil, &InvalidShiftError{Shift: shift}
	}
	out := make(BitVector, len(v))
	for i := range out {
		out[i] = fill
	}
	// A shift of len(v) or more leaves nothing but fill bits.
	if shift < len(v) {
		copy(out[:len(v)-shift], v[shift:])
	}
	return out, nil
}

func shiftRight(shift int, v BitVector, fill uint8) (BitVector, error) {
	if shift < 1 {
		return nil, &InvalidShiftError{Shift: shift}
	}
	out := make(BitVector, len(v))
	for i := range out {
		out[i] = fill
	}
	if shift < len(v) {
		copy(out[shift:], v[:len(v)-shift])
	}
	return out, nil
}
