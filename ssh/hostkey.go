// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssh

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"math/big"

	"github.com/pkg/errors"
)

// RSAPublicKeyBlob renders an RSA public key as the RFC 4253 §6.6
// host-key blob: string("ssh-rsa") || mpint(e) || mpint(n). This is
// This is K_S, and is also the byte sequence base64-encoded for a
// human-readable "ssh-rsa <base64>" authorized_keys-style line.
func RSAPublicKeyBlob(pub *rsa.PublicKey) []byte {
	w := NewWriter(0)
	w.WriteString([]byte(HostKeyAlgoRSA))
	w.WriteMPInt(big.NewInt(int64(pub.E)))
	w.WriteMPInt(pub.N)
	return w.Bytes()
}

// ParseRSAPublicKeyBlob parses the K_S blob format back into an RSA
// public key, rejecting anything whose algorithm name isn't
// "ssh-rsa" or that has trailing bytes.
func ParseRSAPublicKeyBlob(blob []byte) (*rsa.PublicKey, error) {
	r := NewReader(blob)
	algo, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	if string(algo) != HostKeyAlgoRSA {
		return nil, Malformed("unexpected host key algorithm "+string(algo), nil)
	}
	e, err := r.ReadMPInt()
	if err != nil {
		return nil, err
	}
	n, err := r.ReadMPInt()
	if err != nil {
		return nil, err
	}
	if !r.AtEnd() {
		return nil, Malformed("trailing bytes after RSA public key blob", nil)
	}
	return &rsa.PublicKey{N: n, E: int(e.Int64())}, nil
}

// SignatureBlob builds the RFC 4253 §6.6 signature format:
// string(algorithm_name) || string(raw_signature).
func SignatureBlob(algo string, raw []byte) []byte {
	w := NewWriter(0)
	w.WriteString([]byte(algo))
	w.WriteString(raw)
	return w.Bytes()
}

// ParseSignatureBlob is the inverse of SignatureBlob.
func ParseSignatureBlob(blob []byte) (algo string, raw []byte, err error) {
	r := NewReader(blob)
	a, err := r.ReadString()
	if err != nil {
		return "", nil, err
	}
	s, err := r.ReadString()
	if err != nil {
		return "", nil, err
	}
	if !r.AtEnd() {
		return "", nil, Malformed("trailing bytes after signature blob", nil)
	}
	return string(a), s, nil
}

// SignRSA signs message (the exchange hash H) with priv using
// RSASSA-PKCS1-v1_5 over SHA-1, and wraps the result in a
// SignatureBlob tagged "ssh-rsa". rsa.SignPKCS1v15 prepends
// the fixed DER AlgorithmIdentifier prefix for id-sha1 (RFC 3447 §9.2)
// internally given crypto.SHA1, matching the wire contract exactly.
func SignRSA(priv *rsa.PrivateKey, message []byte) ([]byte, error) {
	digest := sha1.Sum(message)
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA1, digest[:])
	if err != nil {
		return nil, errors.Wrap(err, "ssh: rsa signing failed")
	}
	return SignatureBlob(HostKeyAlgoRSA, sig), nil
}

// VerifyHostKeySignature checks that signatureBlob (as received in a
// KexDHReplyMsg) is a valid "ssh-rsa" signature over data (the
// exchange hash H) by the public key in hostKeyBlob, and that the
// signature's declared algorithm matches the negotiated host-key
// algorithm. Verification itself lives here because it is pure
// cryptography, but trusting the resulting key — checking it against
// a known-hosts store or similar — is the caller's decision.
func VerifyHostKeySignature(hostKeyAlgo string, hostKeyBlob, data, signatureBlob []byte) error {
	if hostKeyAlgo != HostKeyAlgoRSA {
		return Malformed("unsupported host key algorithm "+hostKeyAlgo, nil)
	}
	pub, err := ParseRSAPublicKeyBlob(hostKeyBlob)
	if err != nil {
		return Malformed("could not parse host key", err)
	}
	sigAlgo, raw, err := ParseSignatureBlob(signatureBlob)
	if err != nil {
		return Malformed("could not parse signature", err)
	}
	if sigAlgo != hostKeyAlgo {
		return Malformed("unexpected signature type "+sigAlgo, nil)
	}
	digest := sha1.Sum(data)
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA1, digest[:], raw); err != nil {
		return Malformed("host key signature error", err)
	}
	return nil
}
