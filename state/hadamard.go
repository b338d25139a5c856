// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import "math"

// ApplyHadamard applies the full n-qubit Hadamard transform H^(x)n to a state
// vector, returning a new vector. The input length must be a power of two.
// The simulator backend uses this for X-basis sampling.
func ApplyHadamard(stateVec []complex128) ([]complex128, error) {
	n := len(stateVec)
	if n == 0 || n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}
	numQubits := 0
	for d := n; d > 1; d >>= 1 {
		numQubits++
	}

	result := make([]complex128, n)
	copy(result, stateVec)

	invSqrt2 := complex(1/math.Sqrt2, 0)

	// Butterfly per qubit: H on qubit q mixes pairs separated by 2^q.
	for q := 0; q < numQubits; q++ {
		stride := 1 << (q + 1)
		half := 1 << q
		for i := 0; i < n; i += stride {
			for j := 0; j < half; j++ {
				a := result[i+j]
				b := result[i+j+half]
				result[i+j] = (a + b) * invSqrt2
				result[i+j+half] = (a - b) * invSqrt2
			}
		}
	}

	return result, nil
}
