// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

// Package prover runs the full bounded-disclosure pipeline: encode the
// secret, commit, execute a measurement circuit, assemble and sign the
// proof. The prover never returns a partially built proof; any stage failure
// aborts the run.
package prover

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/luxfi/log"

	"github.com/hydraresearch/qzkp/backend"
	"github.com/hydraresearch/qzkp/commitment"
	"github.com/hydraresearch/qzkp/pqsig"
	"github.com/hydraresearch/qzkp/proof"
	"github.com/hydraresearch/qzkp/state"
)

var ErrEmptyIdentifier = errors.New("identifier must not be empty")

// attestationContext domain-separates ML-DSA attestations from any other use
// of the prover's keypair.
const attestationContext = "qzkp-attestation-v1"

// Result is one completed proving run. Attestation and AttestationKey are
// set only when the prover was built with attestation enabled.
type Result struct {
	Proof          *proof.Proof
	Commitment     *commitment.Commitment
	Attestation    []byte
	AttestationKey []byte
}

// Prover binds a backend, a digest scheme and a security policy.
type Prover struct {
	backend       backend.ExecutionBackend
	generator     *commitment.Generator
	assembler     *proof.Assembler
	signer        *proof.Signer
	attestor      *pqsig.Scheme
	scheme        commitment.DigestScheme
	securityLevel int
	dimensions    int
	shots         int
	basis         string
	log           log.Logger
}

// Option configures a Prover.
type Option func(*Prover)

// WithBackend replaces the default local simulator.
func WithBackend(b backend.ExecutionBackend) Option {
	return func(p *Prover) { p.backend = b }
}

// WithScheme replaces the default BLAKE3 digest scheme everywhere the prover
// hashes: commitments, identifier digests and proof signatures.
func WithScheme(s commitment.DigestScheme) Option {
	return func(p *Prover) { p.scheme = s }
}

// WithSecurityLevel sets the claimed security level in bits.
func WithSecurityLevel(level int) Option {
	return func(p *Prover) { p.securityLevel = level }
}

// WithDimensions sets the target state dimension.
func WithDimensions(dim int) Option {
	return func(p *Prover) { p.dimensions = dim }
}

// WithShots sets the measurement shot count per run.
func WithShots(shots int) Option {
	return func(p *Prover) { p.shots = shots }
}

// WithBasis sets the measurement basis.
func WithBasis(basis string) Option {
	return func(p *Prover) { p.basis = basis }
}

// WithProverLogger sets the prover's logger.
func WithProverLogger(logger log.Logger) Option {
	return func(p *Prover) { p.log = logger }
}

// WithAttestation enables ML-DSA-87 attestation over every produced proof.
func WithAttestation(s *pqsig.Scheme) Option {
	return func(p *Prover) { p.attestor = s }
}

// New builds a prover. Defaults: local simulator, BLAKE3 digests, level 128,
// dimension 4, 1000 Z-basis shots, no attestation.
func New(opts ...Option) *Prover {
	p := &Prover{
		scheme:        commitment.DefaultScheme,
		securityLevel: 128,
		dimensions:    4,
		shots:         1000,
		basis:         backend.BasisZ,
		log:           log.NewTestLogger(log.InfoLevel),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.backend == nil {
		p.backend = backend.NewSimulator(backend.WithLogger(p.log))
	}
	p.generator = commitment.NewGenerator(commitment.WithScheme(p.scheme))
	p.assembler = proof.NewAssembler(p.scheme)
	p.signer = proof.NewSigner(p.scheme)
	return p
}

// Prove encodes the secret and runs the pipeline under identifier. The
// secret is consumed here and never retained.
func (p *Prover) Prove(ctx context.Context, secret []byte, identifier string) (*Result, error) {
	rec, err := state.Encode(secret, p.dimensions)
	if err != nil {
		return nil, fmt.Errorf("encode secret: %w", err)
	}
	return p.prove(ctx, rec, identifier)
}

// ProveVector runs the pipeline over a caller-built amplitude vector.
func (p *Prover) ProveVector(ctx context.Context, vec []complex128, identifier string) (*Result, error) {
	rec, err := state.EncodeVector(vec, p.dimensions)
	if err != nil {
		return nil, fmt.Errorf("encode vector: %w", err)
	}
	return p.prove(ctx, rec, identifier)
}

// ProveBatch proves each secret independently under the same identifier.
// The first failure aborts the batch; completed results are discarded so a
// caller never acts on a partial batch.
func (p *Prover) ProveBatch(ctx context.Context, secrets [][]byte, identifier string) ([]*Result, error) {
	results := make([]*Result, 0, len(secrets))
	for i, secret := range secrets {
		res, err := p.Prove(ctx, secret, identifier)
		if err != nil {
			return nil, fmt.Errorf("batch entry %d: %w", i, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (p *Prover) prove(ctx context.Context, rec *state.Record, identifier string) (*Result, error) {
	if identifier == "" {
		return nil, ErrEmptyIdentifier
	}

	com, err := p.generator.Commit(rec, identifier, p.securityLevel)
	if err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	execResult, err := p.backend.Submit(ctx, rec, p.basis, p.shots)
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}

	prf, err := p.assembler.Assemble(rec, com, execResult, identifier)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	if err := p.signer.Sign(prf, com); err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}

	result := &Result{Proof: prf, Commitment: com}
	if p.attestor != nil {
		if err := p.attest(result); err != nil {
			return nil, fmt.Errorf("attest: %w", err)
		}
	}

	p.log.Info("proof generated",
		log.String("job_id", prf.ExecutionMetadata.JobID),
		log.String("backend", prf.ExecutionMetadata.Backend),
		log.Int("dimensions", prf.QuantumDimensions),
		log.Int("security_level", prf.SecurityLevel),
	)

	return result, nil
}

func (p *Prover) attest(res *Result) error {
	msg, err := json.Marshal(res.Proof)
	if err != nil {
		return err
	}
	sig, err := p.attestor.Sign(msg)
	if err != nil {
		return err
	}
	pub, err := p.attestor.PublicKeyBytes()
	if err != nil {
		return err
	}
	res.Attestation = sig
	res.AttestationKey = pub
	return nil
}

// VerifyAttestation checks an attested result against the embedded key.
func VerifyAttestation(res *Result) (bool, error) {
	if res.Attestation == nil || res.AttestationKey == nil {
		return false, errors.New("result carries no attestation")
	}
	msg, err := json.Marshal(res.Proof)
	if err != nil {
		return false, err
	}
	return pqsig.VerifyDetached(res.AttestationKey, msg, res.Attestation, attestationContext)
}

// NewAttestor builds an ML-DSA scheme under the prover attestation context,
// for use with WithAttestation.
func NewAttestor() (*pqsig.Scheme, error) {
	return pqsig.NewScheme(attestationContext)
}
