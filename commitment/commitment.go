// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

// Package commitment produces hiding, binding commitments over encoded state
// records. Every commitment mixes a fresh random seed into the digest
// preimage, so committing to the same record twice yields unrelated hashes.
package commitment

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hydraresearch/qzkp/state"
)

// protocolID is the domain separator baked into every commitment preimage.
const protocolID = "qzkp-commitment-v1"

var (
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
	ErrNilRecord          = errors.New("nil state record")
)

// Commitment binds a state record without revealing it. Hash is lowercase
// hex; CreatedAt is nanoseconds since the Unix epoch.
type Commitment struct {
	Hash          string `json:"hash"`
	Dimension     int    `json:"dimension"`
	SecurityLevel int    `json:"security_level"`
	CreatedAt     int64  `json:"created_at"`
}

// Generator builds commitments with a digest scheme and an entropy source.
// The zero value is not usable; construct with NewGenerator.
type Generator struct {
	scheme DigestScheme
	rand   io.Reader
	now    func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithScheme overrides the default BLAKE3 digest scheme.
func WithScheme(scheme DigestScheme) Option {
	return func(g *Generator) { g.scheme = scheme }
}

// WithRand overrides the entropy source. Tests use this to exercise the
// entropy failure path; production always keeps crypto/rand.
func WithRand(r io.Reader) Option {
	return func(g *Generator) { g.rand = r }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator returns a commitment generator backed by crypto/rand and the
// default digest scheme.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		scheme: DefaultScheme,
		rand:   rand.Reader,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Scheme returns the generator's digest scheme.
func (g *Generator) Scheme() DigestScheme { return g.scheme }

// Commit produces a fresh commitment to the record under the given identifier
// and security level. The preimage is
//
//	seed || BE32(dimension) || protocolID || identifier || BE32(level) || BE64(nanos)
//
// where seed is securityLevel/8 bytes of fresh randomness. The seed is
// discarded after hashing; it exists only to make every commitment distinct.
func (g *Generator) Commit(rec *state.Record, identifier string, securityLevel int) (*Commitment, error) {
	if rec == nil {
		return nil, ErrNilRecord
	}
	if err := checkLevel(securityLevel, g.scheme.MaxSecurityLevel()); err != nil {
		return nil, err
	}

	seed := make([]byte, SeedLen(securityLevel))
	if _, err := io.ReadFull(g.rand, seed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	createdAt := g.now().UnixNano()

	preimage := make([]byte, 0, len(seed)+4+len(protocolID)+len(identifier)+4+8)
	preimage = append(preimage, seed...)
	preimage = binary.BigEndian.AppendUint32(preimage, uint32(rec.Dimension))
	preimage = append(preimage, protocolID...)
	preimage = append(preimage, identifier...)
	preimage = binary.BigEndian.AppendUint32(preimage, uint32(securityLevel))
	preimage = binary.BigEndian.AppendUint64(preimage, uint64(createdAt))

	digest, err := g.scheme.Sum(preimage, securityLevel)
	if err != nil {
		return nil, err
	}

	return &Commitment{
		Hash:          fmt.Sprintf("%x", digest),
		Dimension:     rec.Dimension,
		SecurityLevel: securityLevel,
		CreatedAt:     createdAt,
	}, nil
}
