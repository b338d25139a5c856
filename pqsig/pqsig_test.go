// Copyright (C) 2025, Hydra Research. All rights reserved.
// See the file LICENSE for licensing terms.

package pqsig

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	s, err := NewScheme("qzkp-attestation-v1")
	require.NoError(t, err)

	msg := []byte("serialized proof bytes")
	sig, err := s.Sign(msg)
	require.NoError(t, err)
	assert.Len(t, sig, SignatureSize)

	assert.True(t, s.Verify(msg, sig))
	assert.False(t, s.Verify([]byte("other message"), sig))

	tampered := append([]byte(nil), sig...)
	tampered[0] ^= 0x01
	assert.False(t, s.Verify(msg, tampered))
}

func TestContextBindsBothSides(t *testing.T) {
	signer, err := NewScheme("ctx-a")
	require.NoError(t, err)

	msg := []byte("payload")
	sig, err := signer.Sign(msg)
	require.NoError(t, err)
	require.True(t, signer.Verify(msg, sig))

	pub, err := signer.PublicKeyBytes()
	require.NoError(t, err)

	ok, err := VerifyDetached(pub, msg, sig, "ctx-a")
	require.NoError(t, err)
	assert.True(t, ok)

	// A verifier under a different context must refuse the signature even
	// with the right key and message.
	ok, err = VerifyDetached(pub, msg, sig, "ctx-b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyDetachedErrors(t *testing.T) {
	s, err := NewScheme("ctx")
	require.NoError(t, err)
	pub, err := s.PublicKeyBytes()
	require.NoError(t, err)

	_, err = VerifyDetached(pub, []byte("m"), []byte("short"), "ctx")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	sig, err := s.Sign([]byte("m"))
	require.NoError(t, err)
	_, err = VerifyDetached([]byte("not a key"), []byte("m"), sig, "ctx")
	assert.Error(t, err)

	_, err = VerifyDetached(pub, []byte("m"), sig, strings.Repeat("x", 256))
	assert.ErrorIs(t, err, ErrContextTooLong)
}

func TestNewSchemeRejectsLongContext(t *testing.T) {
	_, err := NewScheme(strings.Repeat("x", 256))
	assert.ErrorIs(t, err, ErrContextTooLong)
}
