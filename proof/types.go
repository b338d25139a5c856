// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

// Package proof assembles, signs and verifies bounded-disclosure proofs. A
// proof discloses only dimension-derived bounds and aggregate execution
// statistics; amplitudes, raw outcome counts and commitment seeds never enter
// the serialized form.
package proof

import "errors"

var (
	ErrNoMeasurements  = errors.New("execution produced no measurement counts")
	ErrNilRecord       = errors.New("nil state record")
	ErrNilCommitment   = errors.New("nil commitment")
	ErrNilResult       = errors.New("nil execution result")
	ErrMissingJobID    = errors.New("execution result missing job id")
	ErrMissingBackend  = errors.New("execution result missing backend name")
	ErrEmptyIdentifier = errors.New("identifier must not be empty")
)

// ExecutionMetadata carries provenance of the hardware or simulator run.
// Counts are deliberately absent: only their aggregates survive into the
// proof.
type ExecutionMetadata struct {
	JobID         string  `json:"job_id"`
	Backend       string  `json:"backend"`
	ExecutionTime float64 `json:"execution_time"`
	CircuitDepth  int     `json:"circuit_depth"`
	Shots         int     `json:"shots"`
}

// MeasurementStatistics summarizes an outcome distribution without exposing
// it. EntropyBound is log2(unique outcomes), an upper bound on the Shannon
// entropy of the hidden distribution.
type MeasurementStatistics struct {
	TotalMeasurements int     `json:"total_measurements"`
	UniqueOutcomes    int     `json:"unique_outcomes"`
	EntropyBound      float64 `json:"entropy_bound"`
	DistributionType  string  `json:"distribution_type"`
}

// SecurityGuarantees states the claims a verifier checks against policy.
type SecurityGuarantees struct {
	ZeroKnowledge                bool `json:"zero_knowledge"`
	SoundnessBits                int  `json:"soundness_bits"`
	PostQuantumSecure            bool `json:"post_quantum_secure"`
	InformationTheoreticSecurity bool `json:"information_theoretic_security"`
	LongTermSecure               bool `json:"long_term_secure"`
}

// Proof is the serialized disclosure artifact. Signature covers every other
// field plus the bound commitment.
type Proof struct {
	QuantumDimensions     int                   `json:"quantum_dimensions"`
	SecurityLevel         int                   `json:"security_level"`
	SoundnessError        string                `json:"soundness_error"`
	IdentifierHash        string                `json:"identifier_hash"`
	CommitmentHash        string                `json:"commitment_hash"`
	EntanglementBound     float64               `json:"entanglement_bound"`
	CoherenceBound        float64               `json:"coherence_bound"`
	ExecutionMetadata     ExecutionMetadata     `json:"execution_metadata"`
	MeasurementStatistics MeasurementStatistics `json:"measurement_statistics"`
	SecurityGuarantees    SecurityGuarantees    `json:"security_guarantees"`
	Timestamp             int64                 `json:"timestamp"`
	Signature             string                `json:"signature"`
}

// RejectReason classifies why verification refused a proof. Rejections are
// ordinary outcomes, not errors; the first failed check wins.
type RejectReason uint8

const (
	ReasonNone RejectReason = iota
	ReasonSignatureMismatch
	ReasonDimensionMismatch
	ReasonInvalidBounds
	ReasonMissingExecutionEvidence
	ReasonSecurityLevelMismatch
)

func (r RejectReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonSignatureMismatch:
		return "signature_mismatch"
	case ReasonDimensionMismatch:
		return "dimension_mismatch"
	case ReasonInvalidBounds:
		return "invalid_bounds"
	case ReasonMissingExecutionEvidence:
		return "missing_execution_evidence"
	case ReasonSecurityLevelMismatch:
		return "security_level_mismatch"
	default:
		return "unknown"
	}
}

// Outcome is the verifier's verdict. Accepted proofs carry ReasonNone.
type Outcome struct {
	Accepted bool
	Reason   RejectReason
}
