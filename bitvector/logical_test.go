package bitvector_test

import (
	"errors"
	"testing"

	fuzz "github.com/google/gofuzz"

	"github.com/RabidGuy/bitops/bitvector"
	"github.com/RabidGuy/bitops/testing/assert"
	"github.com/RabidGuy/bitops/testing/require"
)

func TestAnd(t *testing.T) {
	tests := []struct {
		name string
		vs   []bitvector.BitVector
		want bitvector.BitVector
	}{
		{
			name: "two operands",
			vs: []bitvector.BitVector{
				{1, 1, 0, 0},
				{1, 0, 1, 0},
			},
			want: bitvector.BitVector{1, 0, 0, 0},
		},
		{
			name: "three operands",
			vs: []bitvector.BitVector{
				{1, 1, 1, 0},
				{1, 1, 0, 0},
				{1, 0, 1, 0},
			},
			want: bitvector.BitVector{1, 0, 0, 0},
		},
		{
			name: "empty operands",
			vs:   []bitvector.BitVector{{}, {}},
			want: bitvector.BitVector{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bitvector.And(tt.vs...)
			require.NoError(t, err)
			assert.DeepEqual(t, tt.want, got)
		})
	}
}

func TestOr(t *testing.T) {
	tests := []struct {
		name string
		vs   []bitvector.BitVector
		want bitvector.BitVector
	}{
		{
			name: "two operands",
			vs: []bitvector.BitVector{
				{1, 1, 0, 0},
				{1, 0, 1, 0},
			},
			want: bitvector.BitVector{1, 1, 1, 0},
		},
		{
			name: "three operands",
			vs: []bitvector.BitVector{
				{0, 0, 0, 1},
				{0, 1, 0, 0},
				{0, 0, 0, 0},
			},
			want: bitvector.BitVector{0, 1, 0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bitvector.Or(tt.vs...)
			require.NoError(t, err)
			assert.DeepEqual(t, tt.want, got)
		})
	}
}

func TestXor(t *testing.T) {
	tests := []struct {
		name string
		vs   []bitvector.BitVector
		want bitvector.BitVector
	}{
		{
			name: "two operands",
			vs: []bitvector.BitVector{
				{1, 1, 0, 0, 0, 1, 0, 1},
				{0, 0, 0, 1, 0, 1, 1, 0},
			},
			want: bitvector.BitVector{1, 1, 0, 1, 0, 0, 1, 1},
		},
		{
			// Parity semantics, not "exactly one": three set bits stay 1.
			name: "three operands parity",
			vs: []bitvector.BitVector{
				{1, 1, 0},
				{1, 0, 1},
				{1, 1, 1},
			},
			want: bitvector.BitVector{1, 0, 0},
		},
		{
			name: "four operands parity",
			vs: []bitvector.BitVector{
				{1}, {1}, {1}, {1},
			},
			want: bitvector.BitVector{0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bitvector.Xor(tt.vs...)
			require.NoError(t, err)
			assert.DeepEqual(t, tt.want, got)
		})
	}
}

func TestNot(t *testing.T) {
	got := bitvector.Not(bitvector.BitVector{1, 1, 0, 0, 0, 1, 0, 1})
	assert.DeepEqual(t, bitvector.BitVector{0, 0, 1, 1, 1, 0, 1, 0}, got)
	assert.DeepEqual(t, bitvector.BitVector{}, bitvector.Not(bitvector.BitVector{}))
}

func TestNotInvolution(t *testing.T) {
	fuzzer := fuzz.NewWithSeed(0)
	for i := 0; i < 1000; i++ {
		a, _ := fuzzPair(fuzzer)
		assert.DeepEqual(t, a, bitvector.Not(bitvector.Not(a)))
	}
}

func TestXorIdentity(t *testing.T) {
	// XOR(a,b) == AND(OR(a,b), NOT(AND(a,b))) for two operands.
	fuzzer := fuzz.NewWithSeed(0)
	for i := 0; i < 1000; i++ {
		a, b := fuzzPair(fuzzer)
		want, err := bitvector.Xor(a, b)
		require.NoError(t, err)
		conj, err := bitvector.And(a, b)
		require.NoError(t, err)
		disj, err := bitvector.Or(a, b)
		require.NoError(t, err)
		got, err := bitvector.And(disj, bitvector.Not(conj))
		require.NoError(t, err)
		assert.DeepEqual(t, want, got)
	}
}

func TestLogicalArity(t *testing.T) {
	ops := map[string]func(...bitvector.BitVector) (bitvector.BitVector, error){
		"and": bitvector.And,
		"or":  bitvector.Or,
		"xor": bitvector.Xor,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			_, err := op(bitvector.BitVector{1, 0})
			require.NotNil(t, err)
			var arityErr *bitvector.ArityError
			require.Equal(t, true, errors.As(err, &arityErr))
			assert.Equal(t, name, arityErr.Op)
			assert.Equal(t, 2, arityErr.Required)
			assert.Equal(t, 1, arityErr.Given)
			assert.ErrorContains(t, "expects at least 2 operands (given 1)", err)

			_, err = op()
			require.NotNil(t, err)
			require.Equal(t, true, errors.As(err, &arityErr))
			assert.Equal(t, 0, arityErr.Given)
		})
	}
}

func TestLogicalLengthMismatch(t *testing.T) {
	_, err := bitvector.Or(
		bitvector.BitVector{1, 0, 1},
		bitvector.BitVector{1},
		bitvector.BitVector{0, 0, 1},
		bitvector.BitVector{0, 1},
	)
	require.NotNil(t, err)
	var lenErr *bitvector.LengthMismatchError
	require.Equal(t, true, errors.As(err, &lenErr))
	assert.Equal(t, "or", lenErr.Op)
	assert.DeepEqual(t, []int{1, 2, 3}, lenErr.Lengths, "distinct lengths must be sorted ascending")
	assert.ErrorContains(t, "lengths given: 1, 2, 3", err)
}
