// Package bitval converts between unpacked bit vectors and packed
// representations: binary strings, big-endian bytes, uint64 values and
// go-bitfield bitlists.
package bitval

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"

	"github.com/RabidGuy/bitops/bitvector"
)

// FromString parses a big-endian binary string such as "11000101". A
// leading "0b" prefix is accepted.
func FromString(s string) (bitvector.BitVector, error) {
	s = strings.TrimPrefix(s, "0b")
	v := make(bitvector.BitVector, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			v = append(v, 0)
		case '1':
			v = append(v, 1)
		default:
			return nil, errors.Errorf("bit %d: %q is not a binary digit", i, r)
		}
	}
	return v, nil
}

// ToString formats v as a plain binary string without the 0b prefix.
func ToString(v bitvector.BitVector) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, bit := range v {
		if bit == 0 {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	}
	return b.String()
}

// ToBytes packs v into big-endian bytes. When the vector length is not a
// multiple of 8 the leading byte is zero-padded on its high side.
func ToBytes(v bitvector.BitVector) []byte {
	n := (len(v) + 7) / 8
	out := make([]byte, n)
	for i, bit := range v {
		if bit&1 == 0 {
			continue
		}
		pos := len(v) - 1 - i // weight exponent of bit i
		out[n-1-pos/8] |= 1 << (pos % 8)
	}
	return out
}

// FromBytes unpacks the low `length` bits of the big-endian bytes b.
func FromBytes(b []byte, length int) (bitvector.BitVector, error) {
	if length < 0 {
		return nil, errors.Errorf("negative vector length %d", length)
	}
	if len(b)*8 < length {
		return nil, errors.Errorf("%d bytes cannot hold %d bits", len(b), length)
	}
	v := make(bitvector.BitVector, length)
	for i := range v {
		pos := length - 1 - i
		if b[len(b)-1-pos/8]>>(pos%8)&1 == 1 {
			v[i] = 1
		}
	}
	return v, nil
}

// ToUint64 returns the numeric value of v. Vectors longer than 64 bits
// cannot be represented and return an error.
func ToUint64(v bitvector.BitVector) (uint64, error) {
	if len(v) > 64 {
		return 0, errors.Errorf("%d-bit vector does not fit in a uint64", len(v))
	}
	var x uint64
	for _, bit := range v {
		x = x<<1 | uint64(bit&1)
	}
	return x, nil
}

// FromUint64 encodes x at the given length, truncating modulo 2^length.
// The length must not be negative.
func FromUint64(x uint64, length int) bitvector.BitVector {
	v := make(bitvector.BitVector, length)
	for i := length - 1; i >= 0 && x != 0; i-- {
		v[i] = uint8(x & 1)
		x >>= 1
	}
	return v
}

// ToBitlist re-packs v as a go-bitfield bitlist. Bitlist index i carries
// the bit of weight 2^i, so the numeric value is preserved.
func ToBitlist(v bitvector.BitVector) bitfield.Bitlist {
	bl := bitfield.NewBitlist(uint64(len(v)))
	for i, bit := range v {
		if bit&1 == 1 {
			bl.SetBitAt(uint64(len(v)-1-i), true)
		}
	}
	return bl
}

// FromBitlist unpacks a bitlist back into big-endian unpacked form.
func FromBitlist(bl bitfield.Bitlist) bitvector.BitVector {
	length := int(bl.Len())
	v := make(bitvector.BitVector, length)
	for i := 0; i < length; i++ {
		if bl.BitAt(uint64(i)) {
			v[length-1-i] = 1
		}
	}
	return v
}
