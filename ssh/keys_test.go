// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssh

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveKeysSizesMatchNegotiatedAlgorithms(t *testing.T) {
	k := big.NewInt(123456789)
	h := []byte("exchange-hash-stand-in-20-bytes!!!!")
	sessionID := h

	c2s, s2c, err := DeriveKeys(k, h, sessionID, CipherAlgoAES128CTR, MACAlgoHMACSHA1)
	require.NoError(t, err)

	require.Len(t, c2s.IV, 16)
	require.Len(t, c2s.Cipher.Key, 16)
	require.Len(t, c2s.MAC.Key, 20)
	require.Equal(t, CipherAlgoAES128CTR, c2s.Cipher.Algo)
	require.Equal(t, MACAlgoHMACSHA1, c2s.MAC.Algo)

	require.Len(t, s2c.IV, 16)
	require.Len(t, s2c.Cipher.Key, 16)
	require.Len(t, s2c.MAC.Key, 20)

	// The two directions must not share key material.
	require.NotEqual(t, c2s.IV, s2c.IV)
	require.NotEqual(t, c2s.Cipher.Key, s2c.Cipher.Key)
	require.NotEqual(t, c2s.MAC.Key, s2c.MAC.Key)
}

func TestDeriveKeysLargerCipherNeedsMoreThanOneDigest(t *testing.T) {
	k := big.NewInt(987654321)
	h := []byte("another-stand-in-exchange-hash")
	sessionID := h

	c2s, _, err := DeriveKeys(k, h, sessionID, CipherAlgoAES256CTR, MACAlgoHMACSHA2_512)
	require.NoError(t, err)
	require.Len(t, c2s.Cipher.Key, 32) // exceeds one SHA-1 digest (20 bytes)
	require.Len(t, c2s.MAC.Key, 64)    // exceeds one SHA-1 digest too
}

// TestDeriveKeysMatchesFixedVector pins the RFC 4253 §7.2 key
// expansion recurrence against key material hand-computed with
// Python's hashlib over the same {A..F} construction, for
// cipher=aes128-ctr, mac=hmac-sha1. Length and determinism checks
// alone would not catch, say, a swapped letter or a missing
// sessionID in the first digest; this does.
func TestDeriveKeysMatchesFixedVector(t *testing.T) {
	k := big.NewInt(999999999999)
	h := []byte("exchange-hash-fixture-32-bytes!")
	sessionID := []byte("session-id-fixture-bytes")

	c2s, s2c, err := DeriveKeys(k, h, sessionID, CipherAlgoAES128CTR, MACAlgoHMACSHA1)
	require.NoError(t, err)

	wantIVC2S, err := hex.DecodeString("74d5f6129211170e961697f78c9eae93")
	require.NoError(t, err)
	wantIVS2C, err := hex.DecodeString("e781deef85abcb3f0138ad1ff8ae94f4")
	require.NoError(t, err)
	wantKeyC2S, err := hex.DecodeString("b4c062aebb9695ee034d726226b66ab6")
	require.NoError(t, err)
	wantKeyS2C, err := hex.DecodeString("917f16c2f3ac10ad4fe012ebbea70fdb")
	require.NoError(t, err)
	wantMACC2S, err := hex.DecodeString("31970f867ef494d831052e675486f9f58c3e0899")
	require.NoError(t, err)
	wantMACS2C, err := hex.DecodeString("272dd33042d73aff95e0e7fcd819aa09216d7c1b")
	require.NoError(t, err)

	require.Equal(t, wantIVC2S, c2s.IV)
	require.Equal(t, wantIVS2C, s2c.IV)
	require.Equal(t, wantKeyC2S, c2s.Cipher.Key)
	require.Equal(t, wantKeyS2C, s2c.Cipher.Key)
	require.Equal(t, wantMACC2S, c2s.MAC.Key)
	require.Equal(t, wantMACS2C, s2c.MAC.Key)
}

func TestDeriveKeysIsDeterministic(t *testing.T) {
	k := big.NewInt(42)
	h := []byte("fixed-hash")
	sessionID := []byte("fixed-session-id")

	c2sA, s2cA, err := DeriveKeys(k, h, sessionID, CipherAlgoAES128CTR, MACAlgoHMACSHA1)
	require.NoError(t, err)
	c2sB, s2cB, err := DeriveKeys(k, h, sessionID, CipherAlgoAES128CTR, MACAlgoHMACSHA1)
	require.NoError(t, err)

	require.Equal(t, c2sA, c2sB)
	require.Equal(t, s2cA, s2cB)
}

func TestDeriveKeysRejectsUnknownAlgorithms(t *testing.T) {
	k := big.NewInt(1)
	h := []byte("h")
	sessionID := []byte("s")

	_, _, err := DeriveKeys(k, h, sessionID, "rot13", MACAlgoHMACSHA1)
	require.Error(t, err)

	_, _, err = DeriveKeys(k, h, sessionID, CipherAlgoAES128CTR, "hmac-unicorn")
	require.Error(t, err)
}

func TestSessionIDEstablishesOnce(t *testing.T) {
	var id SessionID
	require.Nil(t, id.Bytes())

	id.Establish([]byte("first-exchange-hash"))
	require.Equal(t, []byte("first-exchange-hash"), id.Bytes())

	id.Establish([]byte("later-rekey-hash"))
	require.Equal(t, []byte("first-exchange-hash"), id.Bytes(), "Establish must not overwrite an already-fixed session id")
}

func TestPlaintextKeysIsNonSerializableSentinel(t *testing.T) {
	require.Equal(t, cipherPlaintext, PlaintextKeys.Cipher.Algo)
	require.Equal(t, cipherPlaintext, PlaintextKeys.MAC.Algo)
	require.Nil(t, PlaintextKeys.IV)
	_, isKnownCipher := cipherModes[PlaintextKeys.Cipher.Algo]
	require.False(t, isKnownCipher)
}
