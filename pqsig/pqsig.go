// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pqsig provides optional ML-DSA-87 attestation over serialized
// proofs. The hash signature inside a proof binds it to its commitment; this
// layer additionally binds it to a prover keypair with a post-quantum
// signature, for deployments that need transferable authorship.
package pqsig

import (
	"errors"
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

var (
	ErrKeyGeneration    = errors.New("ml-dsa key generation failed")
	ErrContextTooLong   = errors.New("signing context exceeds 255 bytes")
	ErrInvalidSignature = errors.New("invalid ml-dsa signature encoding")
)

// SignatureSize is the ML-DSA-87 signature length in bytes.
const SignatureSize = mldsa87.SignatureSize

// Scheme holds a keypair and a domain-separation context. The same context
// must be used on both the signing and verifying side.
type Scheme struct {
	pub  *mldsa87.PublicKey
	priv *mldsa87.PrivateKey
	ctx  []byte
}

// NewScheme generates a fresh ML-DSA-87 keypair bound to the given
// domain-separation context.
func NewScheme(domainCtx string) (*Scheme, error) {
	if len(domainCtx) > 255 {
		return nil, ErrContextTooLong
	}
	pub, priv, err := mldsa87.GenerateKey(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}
	return &Scheme{pub: pub, priv: priv, ctx: []byte(domainCtx)}, nil
}

// Sign produces a detached signature over msg under the scheme's context.
func (s *Scheme) Sign(msg []byte) ([]byte, error) {
	sig := make([]byte, mldsa87.SignatureSize)
	if err := mldsa87.SignTo(s.priv, msg, s.ctx, true, sig); err != nil {
		return nil, err
	}
	return sig, nil
}

// Verify checks a detached signature against the scheme's own public key,
// using the same context Sign embedded.
func (s *Scheme) Verify(msg, sig []byte) bool {
	if len(sig) != mldsa87.SignatureSize {
		return false
	}
	return mldsa87.Verify(s.pub, msg, s.ctx, sig)
}

// PublicKeyBytes returns the encoded public key for distribution to
// verifiers.
func (s *Scheme) PublicKeyBytes() ([]byte, error) {
	return s.pub.MarshalBinary()
}

// VerifyDetached checks a signature against an encoded public key, for
// verifiers that never held the Scheme.
func VerifyDetached(pubBytes, msg, sig []byte, domainCtx string) (bool, error) {
	if len(domainCtx) > 255 {
		return false, ErrContextTooLong
	}
	if len(sig) != mldsa87.SignatureSize {
		return false, ErrInvalidSignature
	}
	var pub mldsa87.PublicKey
	if err := pub.UnmarshalBinary(pubBytes); err != nil {
		return false, fmt.Errorf("decode public key: %w", err)
	}
	return mldsa87.Verify(&pub, msg, []byte(domainCtx), sig), nil
}
