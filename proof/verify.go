// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import (
	"math"

	"github.com/hydraresearch/qzkp/commitment"
	"github.com/hydraresearch/qzkp/state"
)

// Verifier checks proofs against its policy: an expected dimension and a
// minimum acceptable security level. Checks run in a fixed order and the
// first failure wins, so the reported reason is deterministic for a given
// proof.
type Verifier struct {
	expectedDimension int
	minSecurityLevel  int
	signer            *Signer
}

// NewVerifier returns a verifier for the given policy. The scheme must match
// the one the prover signed with.
func NewVerifier(scheme commitment.DigestScheme, expectedDimension, minSecurityLevel int) *Verifier {
	return &Verifier{
		expectedDimension: expectedDimension,
		minSecurityLevel:  minSecurityLevel,
		signer:            NewSigner(scheme),
	}
}

// Verify runs the check chain. Rejections are values, not errors: a tampered
// or non-conforming proof yields Outcome{false, reason}.
//
// Order: signature, dimension, bounds, execution evidence, security level.
// Signature comes first so nothing downstream ever interprets fields an
// adversary may have rewritten.
func (v *Verifier) Verify(p *Proof, com *commitment.Commitment) Outcome {
	if p == nil || com == nil {
		return Outcome{Accepted: false, Reason: ReasonSignatureMismatch}
	}

	if !v.signer.Check(p, com) {
		return Outcome{Accepted: false, Reason: ReasonSignatureMismatch}
	}

	if p.QuantumDimensions != v.expectedDimension || p.QuantumDimensions != com.Dimension {
		return Outcome{Accepted: false, Reason: ReasonDimensionMismatch}
	}

	wantEnt, wantCoh := state.Bounds(p.QuantumDimensions)
	if !boundsValid(p, wantEnt, wantCoh) {
		return Outcome{Accepted: false, Reason: ReasonInvalidBounds}
	}

	if p.ExecutionMetadata.JobID == "" || p.ExecutionMetadata.Backend == "" {
		return Outcome{Accepted: false, Reason: ReasonMissingExecutionEvidence}
	}

	if p.SecurityLevel < v.minSecurityLevel ||
		p.SecurityLevel != com.SecurityLevel ||
		p.SecurityGuarantees.SoundnessBits != p.SecurityLevel {
		return Outcome{Accepted: false, Reason: ReasonSecurityLevelMismatch}
	}

	return Outcome{Accepted: true, Reason: ReasonNone}
}

// boundsValid requires the disclosed ceilings to be non-negative, finite and
// exactly the values the dimension dictates.
func boundsValid(p *Proof, wantEnt, wantCoh float64) bool {
	for _, b := range []float64{p.EntanglementBound, p.CoherenceBound} {
		if b < 0 || math.IsNaN(b) || math.IsInf(b, 0) {
			return false
		}
	}
	return p.EntanglementBound == wantEnt && p.CoherenceBound == wantCoh
}
