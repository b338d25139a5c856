// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import (
	"fmt"
	"math"
	"time"

	"github.com/hydraresearch/qzkp/backend"
	"github.com/hydraresearch/qzkp/commitment"
	"github.com/hydraresearch/qzkp/state"
)

// Assembler builds unsigned proofs from a state record, its commitment and an
// execution result. The digest scheme hashes identifiers; the clock stamps
// assembly time.
type Assembler struct {
	scheme commitment.DigestScheme
	now    func() time.Time
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithAssemblerClock overrides the timestamp source.
func WithAssemblerClock(now func() time.Time) AssemblerOption {
	return func(a *Assembler) { a.now = now }
}

// NewAssembler returns an assembler using the given digest scheme.
func NewAssembler(scheme commitment.DigestScheme, opts ...AssemblerOption) *Assembler {
	a := &Assembler{scheme: scheme, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble builds an unsigned proof. The raw outcome counts are reduced to
// aggregates here and do not survive past this call; the returned proof's
// Signature field is empty until Signer.Sign fills it.
func (a *Assembler) Assemble(
	rec *state.Record,
	com *commitment.Commitment,
	result *backend.ExecutionResult,
	identifier string,
) (*Proof, error) {
	if rec == nil {
		return nil, ErrNilRecord
	}
	if com == nil {
		return nil, ErrNilCommitment
	}
	if result == nil {
		return nil, ErrNilResult
	}
	if identifier == "" {
		return nil, ErrEmptyIdentifier
	}
	if result.JobID == "" {
		return nil, ErrMissingJobID
	}
	if result.Backend == "" {
		return nil, ErrMissingBackend
	}
	if len(result.Counts) == 0 {
		return nil, ErrNoMeasurements
	}

	idDigest, err := a.scheme.Sum([]byte(identifier), com.SecurityLevel)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range result.Counts {
		total += n
	}

	return &Proof{
		QuantumDimensions: rec.Dimension,
		SecurityLevel:     com.SecurityLevel,
		SoundnessError:    fmt.Sprintf("2^-%d", com.SecurityLevel),
		IdentifierHash:    fmt.Sprintf("%x", idDigest),
		CommitmentHash:    com.Hash,
		EntanglementBound: rec.EntanglementBound,
		CoherenceBound:    rec.CoherenceBound,
		ExecutionMetadata: ExecutionMetadata{
			JobID:         result.JobID,
			Backend:       result.Backend,
			ExecutionTime: result.ExecutionTime,
			CircuitDepth:  result.CircuitDepth,
			Shots:         result.Shots,
		},
		MeasurementStatistics: MeasurementStatistics{
			TotalMeasurements: total,
			UniqueOutcomes:    len(result.Counts),
			EntropyBound:      math.Log2(float64(len(result.Counts))),
			DistributionType:  "quantum_measurement",
		},
		SecurityGuarantees: SecurityGuarantees{
			ZeroKnowledge:                true,
			SoundnessBits:                com.SecurityLevel,
			PostQuantumSecure:            a.scheme.IsPQSafe(),
			InformationTheoreticSecurity: true,
			LongTermSecure:               true,
		},
		Timestamp: a.now().UnixNano(),
	}, nil
}
