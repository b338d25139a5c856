// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

package backend

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydraresearch/qzkp/state"
)

func TestSimulatorSubmit(t *testing.T) {
	rec, err := state.Encode([]byte("Hello Quantum World!"), 4)
	require.NoError(t, err)

	sim := NewSimulator()
	result, err := sim.Submit(context.Background(), rec, BasisZ, 1000)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.JobID, "sim-"))
	assert.Equal(t, "local_simulator", result.Backend)
	assert.Equal(t, 1000, result.Shots)
	assert.Equal(t, 1, result.CircuitDepth)
	assert.NotEmpty(t, result.Counts)

	total := 0
	for outcome, n := range result.Counts {
		assert.Len(t, outcome, rec.NumQubits())
		assert.Positive(t, n)
		total += n
	}
	assert.Equal(t, 1000, total)
}

func TestSimulatorBornRule(t *testing.T) {
	// |00> measures to "00" every time.
	rec, err := state.EncodeVector([]complex128{1, 0, 0, 0}, 4)
	require.NoError(t, err)

	sim := NewSimulator(WithSeed(42))
	result, err := sim.Submit(context.Background(), rec, BasisZ, 500)
	require.NoError(t, err)

	require.Len(t, result.Counts, 1)
	assert.Equal(t, 500, result.Counts["00"])
}

func TestSimulatorXBasis(t *testing.T) {
	// |+> = H|0> measures to "0" deterministically in the X basis.
	rec, err := state.EncodeVector([]complex128{1, 1}, 2)
	require.NoError(t, err)

	sim := NewSimulator(WithSeed(7))
	result, err := sim.Submit(context.Background(), rec, BasisX, 200)
	require.NoError(t, err)

	require.Len(t, result.Counts, 1)
	assert.Equal(t, 200, result.Counts["0"])
	assert.Equal(t, 2, result.CircuitDepth)
}

func TestSimulatorSeedReproducible(t *testing.T) {
	rec, err := state.Encode([]byte("reproducible"), 8)
	require.NoError(t, err)

	a, err := NewSimulator(WithSeed(1234)).Submit(context.Background(), rec, BasisZ, 1000)
	require.NoError(t, err)
	b, err := NewSimulator(WithSeed(1234)).Submit(context.Background(), rec, BasisZ, 1000)
	require.NoError(t, err)

	assert.Equal(t, a.Counts, b.Counts)
}

func TestBitstring(t *testing.T) {
	tests := []struct {
		index     int
		numQubits int
		want      string
	}{
		{0, 0, "0"},
		{0, 1, "0"},
		{1, 1, "1"},
		{0, 2, "00"},
		{2, 2, "10"},
		{3, 2, "11"},
		{5, 4, "0101"},
	}
	for _, tt := range tests {
		if got := bitstring(tt.index, tt.numQubits); got != tt.want {
			t.Errorf("bitstring(%d, %d) = %q, want %q", tt.index, tt.numQubits, got, tt.want)
		}
	}
}

func TestSimulatorErrors(t *testing.T) {
	rec, err := state.Encode([]byte("x"), 4)
	require.NoError(t, err)
	sim := NewSimulator()

	_, err = sim.Submit(context.Background(), nil, BasisZ, 100)
	assert.ErrorIs(t, err, state.ErrZeroNormState)

	_, err = sim.Submit(context.Background(), rec, BasisZ, 0)
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sim.Submit(ctx, rec, BasisZ, 100)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}
