// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDeterministic(t *testing.T) {
	secret := []byte("Hello Quantum World!")

	first, err := Encode(secret, 4)
	require.NoError(t, err)
	second, err := Encode(secret, 4)
	require.NoError(t, err)

	require.Equal(t, first.Dimension, second.Dimension)
	for i := range first.Coordinates {
		assert.Equal(t, first.Coordinates[i], second.Coordinates[i],
			"coordinate %d differs between runs", i)
	}
}

func TestEncodeUnitNorm(t *testing.T) {
	secrets := [][]byte{
		[]byte("a"),
		[]byte("Hello Quantum World!"),
		make([]byte, 4096),
	}
	for _, secret := range secrets {
		for _, dim := range []int{1, 2, 4, 8, 16, 64} {
			rec, err := Encode(secret, dim)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, Norm(rec.Coordinates), 1e-10)
		}
	}
}

func TestEncodeBoundsFromDimension(t *testing.T) {
	rec, err := Encode([]byte("Hello Quantum World!"), 4)
	require.NoError(t, err)

	assert.Equal(t, 4, rec.Dimension)
	assert.Equal(t, 1.0, rec.EntanglementBound)
	assert.Equal(t, 4.0, rec.CoherenceBound)
	assert.Equal(t, 2, rec.NumQubits())
}

func TestEncodeRoundsUpToPowerOfTwo(t *testing.T) {
	rec, err := Encode([]byte("secret"), 3)
	require.NoError(t, err)
	assert.Equal(t, 4, rec.Dimension)

	rec, err = Encode([]byte("secret"), 5)
	require.NoError(t, err)
	assert.Equal(t, 8, rec.Dimension)
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode(nil, 4)
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = Encode([]byte("x"), 0)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = Encode([]byte("x"), MaxDimension+1)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestEncodeVector(t *testing.T) {
	bell := []complex128{
		complex(1/math.Sqrt2, 0), 0, 0, complex(1/math.Sqrt2, 0),
	}
	rec, err := EncodeVector(bell, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, rec.Dimension)
	assert.InDelta(t, 1.0, Norm(rec.Coordinates), 1e-10)

	// Unnormalized input gets normalized, not rejected.
	rec, err = EncodeVector([]complex128{3, 4}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, real(rec.Coordinates[0]), 1e-10)
	assert.InDelta(t, 0.8, real(rec.Coordinates[1]), 1e-10)
}

func TestEncodeVectorZeroNorm(t *testing.T) {
	_, err := EncodeVector([]complex128{0, 0, 0, 0}, 4)
	assert.ErrorIs(t, err, ErrZeroNormState)

	_, err = EncodeVector(nil, 4)
	assert.ErrorIs(t, err, ErrZeroNormState)
}

// Bounds must be a pure function of the dimension: two records with the same
// dimension but unrelated coordinates disclose bit-identical ceilings.
func TestBoundsPurity(t *testing.T) {
	a, err := Encode([]byte("first secret"), 8)
	require.NoError(t, err)
	b, err := Encode([]byte("a completely different secret"), 8)
	require.NoError(t, err)

	require.NotEqual(t, a.Coordinates, b.Coordinates)
	assert.Equal(t, a.EntanglementBound, b.EntanglementBound)
	assert.Equal(t, a.CoherenceBound, b.CoherenceBound)

	ent, coh := Bounds(8)
	assert.Equal(t, ent, a.EntanglementBound)
	assert.Equal(t, coh, a.CoherenceBound)
}

func TestBoundsValues(t *testing.T) {
	tests := []struct {
		dimension int
		ent       float64
		coh       float64
	}{
		{1, 0, 1},
		{2, 0, 2},
		{4, 1, 4},
		{8, 2, 8},
		{16, 3, 16},
		{1024, 9, 1024},
	}
	for _, tt := range tests {
		ent, coh := Bounds(tt.dimension)
		assert.Equal(t, tt.ent, ent, "entanglement bound for dim %d", tt.dimension)
		assert.Equal(t, tt.coh, coh, "coherence bound for dim %d", tt.dimension)
	}
}

func TestApplyHadamard(t *testing.T) {
	// H|0> = |+>
	out, err := ApplyHadamard([]complex128{1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt2, real(out[0]), 1e-10)
	assert.InDelta(t, 1/math.Sqrt2, real(out[1]), 1e-10)

	// H is an involution: H(H|psi>) = |psi>.
	rec, err := Encode([]byte("involution"), 8)
	require.NoError(t, err)
	once, err := ApplyHadamard(rec.Coordinates)
	require.NoError(t, err)
	twice, err := ApplyHadamard(once)
	require.NoError(t, err)
	for i := range rec.Coordinates {
		assert.InDelta(t, 0, cmplx.Abs(twice[i]-rec.Coordinates[i]), 1e-10)
	}

	// Norm is preserved.
	assert.InDelta(t, 1.0, Norm(once), 1e-10)
}

func TestApplyHadamardRejectsBadLength(t *testing.T) {
	_, err := ApplyHadamard([]complex128{1, 0, 0})
	assert.ErrorIs(t, err, ErrNotPowerOfTwo)

	_, err = ApplyHadamard(nil)
	assert.ErrorIs(t, err, ErrNotPowerOfTwo)
}

func BenchmarkEncode(b *testing.B) {
	secret := []byte("Hello Quantum World!")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(secret, 16); err != nil {
			b.Fatal(err)
		}
	}
}
