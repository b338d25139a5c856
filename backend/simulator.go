// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

package backend

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/cmplx"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/luxfi/log"

	"github.com/hydraresearch/qzkp/state"
)

// Simulator samples measurement outcomes from the record's amplitudes under
// the Born rule. It is the default backend for development and tests; its
// results are statistically honest, not fabricated.
type Simulator struct {
	name string
	log  log.Logger
	seed func() (int64, error)
}

var _ ExecutionBackend = (*Simulator)(nil)

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithLogger sets the simulator's logger.
func WithLogger(logger log.Logger) SimulatorOption {
	return func(s *Simulator) { s.log = logger }
}

// WithSeed fixes the sampling seed. Tests use this for reproducible counts.
func WithSeed(seed int64) SimulatorOption {
	return func(s *Simulator) {
		s.seed = func() (int64, error) { return seed, nil }
	}
}

// NewSimulator returns a Born-rule sampling backend. Without options it
// draws a fresh seed from crypto/rand per submission.
func NewSimulator(opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		name: "local_simulator",
		log:  log.NewTestLogger(log.InfoLevel),
		seed: cryptoSeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func cryptoSeed() (int64, error) {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

// Submit samples shots outcomes from rec in the requested basis. X-basis
// sampling rotates the state through the full Hadamard transform first.
// Submission fails rather than returning synthetic counts when sampling
// cannot run.
func (s *Simulator) Submit(ctx context.Context, rec *state.Record, basis string, shots int) (*ExecutionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	if rec == nil || len(rec.Coordinates) == 0 {
		return nil, state.ErrZeroNormState
	}
	if shots <= 0 {
		return nil, fmt.Errorf("%w: non-positive shot count", ErrBackendUnavailable)
	}

	vec := rec.Coordinates
	depth := 1 // measurement layer
	if basis == BasisX {
		rotated, err := state.ApplyHadamard(vec)
		if err != nil {
			return nil, err
		}
		vec = rotated
		depth++
	}

	probs := make([]float64, len(vec))
	for i, amp := range vec {
		probs[i] = cmplx.Abs(amp) * cmplx.Abs(amp)
	}

	seed, err := s.seed()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	rng := rand.New(rand.NewSource(seed))

	start := time.Now()
	numQubits := rec.NumQubits()
	counts := make(map[string]int)
	for shot := 0; shot < shots; shot++ {
		r := rng.Float64()
		cum := 0.0
		outcome := len(probs) - 1
		for i, p := range probs {
			cum += p
			if r < cum {
				outcome = i
				break
			}
		}
		counts[bitstring(outcome, numQubits)]++
	}
	elapsed := time.Since(start).Seconds()

	result := &ExecutionResult{
		JobID:         "sim-" + uuid.NewString(),
		Backend:       s.name,
		Counts:        counts,
		ExecutionTime: elapsed,
		CircuitDepth:  depth,
		Shots:         shots,
	}

	s.log.Info("simulated measurement run",
		log.String("job_id", result.JobID),
		log.String("basis", basis),
		log.Int("shots", shots),
		log.Int("unique_outcomes", len(counts)),
	)

	return result, nil
}

// bitstring renders outcome index i as a numQubits-wide binary string. A
// zero-qubit (dimension 1) record measures to the empty-register outcome "0".
func bitstring(i, numQubits int) string {
	if numQubits == 0 {
		return "0"
	}
	return fmt.Sprintf("%0*b", numQubits, i)
}
