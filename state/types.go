// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state implements the deterministic mapping of secret material into
// unit-norm quantum state records, and the disclosure-safe bounds derived from
// the record's dimension alone. Nothing in this package ever exposes a
// function of the amplitudes to callers: the only disclosed properties are
// theoretical ceilings computed from the dimension.
package state

import "errors"

// Dimension limits. Dimensions are always powers of two so the record maps
// onto an integral qubit count.
const (
	MinDimension = 1
	MaxDimension = 1024
)

// Errors
var (
	ErrEmptySecret      = errors.New("secret material must not be empty")
	ErrZeroNormState    = errors.New("state vector has zero norm")
	ErrInvalidDimension = errors.New("invalid target dimension")
	ErrNotPowerOfTwo    = errors.New("state vector length must be a power of two")
)

// Record is a derived quantum state representation. It is immutable once
// built and must be discarded after proof assembly; Coordinates never leave
// this process and are never serialized.
type Record struct {
	Coordinates       []complex128
	Dimension         int
	EntanglementBound float64
	CoherenceBound    float64
}

// NumQubits returns the qubit count backing the record's dimension.
func (r *Record) NumQubits() int {
	n := 0
	for d := r.Dimension; d > 1; d >>= 1 {
		n++
	}
	return n
}
