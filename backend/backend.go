// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

// Package backend defines the quantum execution surface: a backend takes an
// encoded state record, runs (or simulates) a measurement circuit, and
// returns provenance plus raw outcome counts. Counts exist only inside the
// proving pipeline; a backend that cannot produce real counts must fail,
// never fabricate them.
package backend

import (
	"context"
	"errors"

	"github.com/hydraresearch/qzkp/state"
)

var (
	ErrBackendUnavailable = errors.New("execution backend unavailable")
	ErrExecutionTimeout   = errors.New("execution timed out")
)

// Measurement bases a backend can sample in.
const (
	BasisZ = "z"
	BasisX = "x"
)

// ExecutionResult carries one run's provenance and raw counts. Counts are
// keyed by bitstring outcome and never serialize into proofs; only their
// aggregates do.
type ExecutionResult struct {
	JobID         string         `json:"job_id"`
	Backend       string         `json:"backend"`
	Counts        map[string]int `json:"counts"`
	ExecutionTime float64        `json:"execution_time"`
	CircuitDepth  int            `json:"circuit_depth"`
	Shots         int            `json:"shots"`
}

// ExecutionBackend runs a measurement circuit over a state record.
// Implementations must respect ctx cancellation on anything that blocks.
type ExecutionBackend interface {
	Submit(ctx context.Context, rec *state.Record, basis string, shots int) (*ExecutionResult, error)
}
