// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config loads runtime settings from the environment, with an
// optional .env file for development. The hardware API token is held but
// never logged or serialized.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultSecurityLevel = 128
	DefaultDimensions    = 4
	DefaultShots         = 1000
)

var (
	ErrInvalidSecurityLevel = errors.New("QZKP_SECURITY_LEVEL must be at least 64")
	ErrInvalidDimensions    = errors.New("QZKP_DIMENSIONS must be positive")
	ErrInvalidShots         = errors.New("QZKP_SHOTS must be positive")
)

// Config carries the prover's runtime settings.
type Config struct {
	// HardwareToken authenticates against the quantum hardware API. Empty
	// means simulator-only operation.
	HardwareToken string

	SecurityLevel int
	Dimensions    int
	Shots         int
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in when present; a missing file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HardwareToken: os.Getenv("IQKAPI"),
	}

	var err error
	if cfg.SecurityLevel, err = intEnv("QZKP_SECURITY_LEVEL", DefaultSecurityLevel); err != nil {
		return nil, err
	}
	if cfg.Dimensions, err = intEnv("QZKP_DIMENSIONS", DefaultDimensions); err != nil {
		return nil, err
	}
	if cfg.Shots, err = intEnv("QZKP_SHOTS", DefaultShots); err != nil {
		return nil, err
	}

	if cfg.SecurityLevel < 64 {
		return nil, ErrInvalidSecurityLevel
	}
	if cfg.Dimensions < 1 {
		return nil, ErrInvalidDimensions
	}
	if cfg.Shots < 1 {
		return nil, ErrInvalidShots
	}
	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

// String renders the config for logs with the token redacted.
func (c *Config) String() string {
	token := "unset"
	if c.HardwareToken != "" {
		token = "redacted"
	}
	return fmt.Sprintf("security_level=%d dimensions=%d shots=%d hardware_token=%s",
		c.SecurityLevel, c.Dimensions, c.Shots, token)
}
