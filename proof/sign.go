// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hydraresearch/qzkp/commitment"
)

// canonicalJSON serializes v with object keys in sorted order. The value is
// marshaled once, decoded into generic maps with UseNumber so 64-bit
// nanosecond timestamps survive without float rounding, and re-marshaled;
// encoding/json emits map keys sorted.
func canonicalJSON(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic interface{}
	if err := dec.Decode(&generic); err != nil {
		return nil, err
	}
	return json.Marshal(generic)
}

// Signer binds proofs to their commitments with a keyless hash signature:
// the digest of the canonical proof (signature field cleared) concatenated
// with the canonical commitment.
type Signer struct {
	scheme commitment.DigestScheme
}

// NewSigner returns a signer using the given digest scheme.
func NewSigner(scheme commitment.DigestScheme) *Signer {
	return &Signer{scheme: scheme}
}

// Sign fills p.Signature in place. Any prior signature value is ignored.
func (s *Signer) Sign(p *Proof, com *commitment.Commitment) error {
	if com == nil {
		return ErrNilCommitment
	}
	sig, err := s.compute(p, com)
	if err != nil {
		return err
	}
	p.Signature = sig
	return nil
}

// Check recomputes the signature and reports whether it matches the one the
// proof carries. A computation failure counts as a mismatch, never a panic.
func (s *Signer) Check(p *Proof, com *commitment.Commitment) bool {
	if com == nil || p.Signature == "" {
		return false
	}
	want, err := s.compute(p, com)
	if err != nil {
		return false
	}
	return want == p.Signature
}

func (s *Signer) compute(p *Proof, com *commitment.Commitment) (string, error) {
	unsigned := *p
	unsigned.Signature = ""

	proofJSON, err := canonicalJSON(&unsigned)
	if err != nil {
		return "", err
	}
	comJSON, err := canonicalJSON(com)
	if err != nil {
		return "", err
	}

	preimage := make([]byte, 0, len(proofJSON)+len(comJSON))
	preimage = append(preimage, proofJSON...)
	preimage = append(preimage, comJSON...)

	digest, err := s.scheme.Sum(preimage, p.SecurityLevel)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", digest), nil
}
