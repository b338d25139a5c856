// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

package commitment

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/poseidon2"
	"github.com/zeebo/blake3"
)

// Security level bounds. Levels are in bits of computational work; 128 and
// 256 are the deployed values, anything in range is accepted.
const (
	MinSecurityLevel = 64
	MaxSecurityLevel = 512
)

var (
	ErrSecurityLevelTooLow  = errors.New("security level below minimum")
	ErrSecurityLevelTooHigh = errors.New("security level exceeds scheme capacity")
	ErrUnknownScheme        = errors.New("unknown digest scheme")
)

// DigestScheme computes the commitment and signature digests. Digest length
// is always a pure function of the security level: 2*level bits, so collision
// resistance matches the declared strength and a 256-bit claim keeps at least
// 256 bits of output.
type DigestScheme interface {
	// Sum digests data at the given security level.
	Sum(data []byte, securityLevel int) ([]byte, error)

	// MaxSecurityLevel returns the highest level the scheme can honor
	// without silently downgrading the disclosed strength.
	MaxSecurityLevel() int

	// Name identifies the scheme in logs and design records.
	Name() string

	// IsPQSafe reports whether the scheme's security argument survives a
	// quantum adversary (hash-based schemes do).
	IsPQSafe() bool
}

// DigestLen returns the digest length in bytes for a security level.
func DigestLen(securityLevel int) int {
	return securityLevel / 4 // 2*level bits
}

// SeedLen returns the commitment seed length in bytes for a security level.
func SeedLen(securityLevel int) int {
	return securityLevel / 8
}

func checkLevel(securityLevel, max int) error {
	if securityLevel < MinSecurityLevel {
		return ErrSecurityLevelTooLow
	}
	if securityLevel > max {
		return ErrSecurityLevelTooHigh
	}
	return nil
}

// Blake3Scheme is the default digest scheme. BLAKE3's XOF output lets the
// digest length track the security level exactly.
type Blake3Scheme struct{}

func NewBlake3Scheme() *Blake3Scheme { return &Blake3Scheme{} }

func (s *Blake3Scheme) Sum(data []byte, securityLevel int) ([]byte, error) {
	if err := checkLevel(securityLevel, s.MaxSecurityLevel()); err != nil {
		return nil, err
	}
	h := blake3.New()
	h.Write(data)
	out := make([]byte, DigestLen(securityLevel))
	h.Digest().Read(out)
	return out, nil
}

func (s *Blake3Scheme) MaxSecurityLevel() int { return MaxSecurityLevel }
func (s *Blake3Scheme) Name() string          { return "blake3-xof" }
func (s *Blake3Scheme) IsPQSafe() bool        { return true }

// Poseidon2Scheme digests through the BN254 Poseidon2 permutation in a
// Merkle-Damgard construction. Its output is fixed at 256 bits, so it caps
// out at 128-bit security claims; deployments that want circuit-friendly
// commitments at level 128 or below can select it.
type Poseidon2Scheme struct{}

func NewPoseidon2Scheme() *Poseidon2Scheme { return &Poseidon2Scheme{} }

func (s *Poseidon2Scheme) Sum(data []byte, securityLevel int) ([]byte, error) {
	if err := checkLevel(securityLevel, s.MaxSecurityLevel()); err != nil {
		return nil, err
	}

	// Pad to 32-byte chunks and feed each through field reduction, the way
	// the precompile hashers do. gnark-crypto reduces oversized elements.
	padded := make([]byte, ((len(data)+31)/32)*32)
	copy(padded, data)

	hasher := poseidon2.NewMerkleDamgardHasher()
	for i := 0; i < len(padded); i += 32 {
		var elem fr.Element
		elem.SetBytes(padded[i : i+32])
		elemBytes := elem.Bytes()
		hasher.Write(elemBytes[:])
	}
	return hasher.Sum(nil), nil
}

func (s *Poseidon2Scheme) MaxSecurityLevel() int { return 128 }
func (s *Poseidon2Scheme) Name() string          { return "poseidon2-bn254" }
func (s *Poseidon2Scheme) IsPQSafe() bool        { return true }

// SchemeType identifies a digest scheme in configuration.
type SchemeType uint8

const (
	SchemeBlake3    SchemeType = 0 // default
	SchemePoseidon2 SchemeType = 1 // circuit-friendly, level <= 128
)

// GetScheme returns a digest scheme by type.
func GetScheme(schemeType SchemeType) (DigestScheme, error) {
	switch schemeType {
	case SchemeBlake3:
		return NewBlake3Scheme(), nil
	case SchemePoseidon2:
		return NewPoseidon2Scheme(), nil
	default:
		return nil, ErrUnknownScheme
	}
}

// DefaultScheme is BLAKE3.
var DefaultScheme DigestScheme = NewBlake3Scheme()
