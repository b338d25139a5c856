// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"crypto/sha256"
	"math"
	"math/cmplx"
)

// Encode maps secret bytes to a unit-norm state record of the power-of-two
// dimension that fits targetDimension.
//
// The mapping is deterministic: the secret is digested with SHA-256 and the
// digest bytes are consumed in pairs, each pair becoming one complex amplitude
// via the affine transform (b-128)/128 into [-1, 1] on both axes. A trailing
// unpaired byte maps to a real amplitude b/255. The amplitude sequence is
// padded with zeros (or truncated) to the target dimension and then
// normalized. Identical (secret, targetDimension) inputs always produce the
// identical vector.
func Encode(secret []byte, targetDimension int) (*Record, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	dim, err := fitDimension(targetDimension)
	if err != nil {
		return nil, err
	}

	digest := sha256.Sum256(secret)

	amplitudes := make([]complex128, 0, dim)
	limit := len(digest)
	if dim*2 < limit {
		limit = dim * 2
	}
	for i := 0; i < limit; i += 2 {
		if i+1 < limit {
			re := (float64(digest[i]) - 128) / 128
			im := (float64(digest[i+1]) - 128) / 128
			amplitudes = append(amplitudes, complex(re, im))
		} else {
			amplitudes = append(amplitudes, complex(float64(digest[i])/255, 0))
		}
	}
	for len(amplitudes) < dim {
		amplitudes = append(amplitudes, 0)
	}
	amplitudes = amplitudes[:dim]

	return newRecord(amplitudes)
}

// EncodeVector accepts an already-built amplitude vector, fits it to the
// power-of-two dimension covering targetDimension and normalizes it.
// Truncation keeps the leading amplitudes; padding appends zeros.
func EncodeVector(vec []complex128, targetDimension int) (*Record, error) {
	if len(vec) == 0 {
		return nil, ErrZeroNormState
	}
	dim, err := fitDimension(targetDimension)
	if err != nil {
		return nil, err
	}

	fitted := make([]complex128, dim)
	copy(fitted, vec)

	return newRecord(fitted)
}

// Bounds returns the disclosure-safe ceilings for a given dimension:
// entanglement max(0, log2(d)-1) and coherence d. Both are functions of the
// dimension alone; amplitudes must never feed into them.
func Bounds(dimension int) (entanglement, coherence float64) {
	entanglement = math.Log2(float64(dimension)) - 1
	if entanglement < 0 {
		entanglement = 0
	}
	return entanglement, float64(dimension)
}

func newRecord(amplitudes []complex128) (*Record, error) {
	normalized, err := normalize(amplitudes)
	if err != nil {
		return nil, err
	}
	ent, coh := Bounds(len(normalized))
	return &Record{
		Coordinates:       normalized,
		Dimension:         len(normalized),
		EntanglementBound: ent,
		CoherenceBound:    coh,
	}, nil
}

func normalize(vec []complex128) ([]complex128, error) {
	var sum float64
	for _, c := range vec {
		sum += real(c)*real(c) + imag(c)*imag(c)
	}
	if sum == 0 {
		return nil, ErrZeroNormState
	}
	norm := math.Sqrt(sum)
	out := make([]complex128, len(vec))
	for i, c := range vec {
		out[i] = c / complex(norm, 0)
	}
	return out, nil
}

// fitDimension rounds the requested dimension up to the next power of two
// and validates the range.
func fitDimension(target int) (int, error) {
	if target < MinDimension || target > MaxDimension {
		return 0, ErrInvalidDimension
	}
	dim := 1
	for dim < target {
		dim <<= 1
	}
	return dim, nil
}

// Norm returns the Euclidean norm of a vector. Exposed for tests and the
// simulator's sanity checks.
func Norm(vec []complex128) float64 {
	var sum float64
	for _, c := range vec {
		sum += cmplx.Abs(c) * cmplx.Abs(c)
	}
	return math.Sqrt(sum)
}
