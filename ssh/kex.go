// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssh

import (
	"crypto/rand"
	"crypto/sha1"
	"math/big"
	"sync"
)

// DHGroup is a multiplicative group suitable for Diffie-Hellman key
// agreement: the modular exponentiation over a named safe prime that
// RFC 4253 §8 requires.
type DHGroup struct {
	g, p *big.Int
}

// diffieHellman computes theirPublic^myPrivate mod p, rejecting a
// public value outside (0, p) per RFC 4253 §8's Note, so a malicious
// peer can't force a degenerate shared secret.
func (group *DHGroup) diffieHellman(theirPublic, myPrivate *big.Int) (*big.Int, error) {
	if theirPublic.Sign() <= 0 || theirPublic.Cmp(group.p) >= 0 {
		return nil, Malformed("Can't compute shared secret", nil)
	}
	return new(big.Int).Exp(theirPublic, myPrivate, group.p), nil
}

// generatePrivate draws a random exponent in [1, p) for use as an
// ephemeral DH private value.
func (group *DHGroup) generatePrivate() (*big.Int, error) {
	x, err := rand.Int(rand.Reader, group.p)
	if err != nil {
		return nil, err
	}
	if x.Sign() == 0 {
		x.SetInt64(1)
	}
	return x, nil
}

// publicValue computes g^x mod p.
func (group *DHGroup) publicValue(x *big.Int) *big.Int {
	return new(big.Int).Exp(group.g, x, group.p)
}

// dhGroup1 is "diffie-hellman-group1-sha1" in RFC 4253, Oakley Group 2
// in RFC 2409.
var (
	dhGroup1     *DHGroup
	dhGroup1Once sync.Once
)

func initDHGroup1() {
	p, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD129024E088A67CC74020BBEA63B139B22514A08798E3404DDEF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7EDEE386BFB5A899FA5AE9F24117C4B1FE649286651ECE65381FFFFFFFFFFFFFFFF", 16)
	dhGroup1 = &DHGroup{g: big.NewInt(2), p: p}
}

// DHGroup1 returns the "diffie-hellman-group1-sha1" parameters,
// initializing them on first use.
func DHGroup1() *DHGroup {
	dhGroup1Once.Do(initDHGroup1)
	return dhGroup1
}

// dhGroup14 is "diffie-hellman-group14-sha1" in RFC 4253, Oakley
// Group 14 in RFC 3526.
var (
	dhGroup14     *DHGroup
	dhGroup14Once sync.Once
)

func initDHGroup14() {
	p, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD129024E088A67CC74020BBEA63B139B22514A08798E3404DDEF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7EDEE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3DC2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F83655D23DCA3AD961C62F356208552BB9ED529077096966D670C354E4ABC9804F1746C08CA18217C32905E462E36CE3BE39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9DE2BCBF6955817183995497CEA956AE515D2261898FA051015728E5A8AACAA68FFFFFFFFFFFFFFFF", 16)
	dhGroup14 = &DHGroup{g: big.NewInt(2), p: p}
}

// DHGroup14 returns the "diffie-hellman-group14-sha1" parameters,
// initializing them on first use.
func DHGroup14() *DHGroup {
	dhGroup14Once.Do(initDHGroup14)
	return dhGroup14
}

// dhGroupForKexAlgo maps a negotiated kex algorithm name to its group
// parameters. Only the two registered groups are known.
func dhGroupForKexAlgo(kexAlgo string) (*DHGroup, bool) {
	switch kexAlgo {
	case KexAlgoDH14SHA1:
		return DHGroup14(), true
	case KexAlgoDH1SHA1:
		return DHGroup1(), true
	default:
		return nil, false
	}
}

// HandshakeMagics holds the four byte-exact blobs the exchange hash
// feeds on: the peer identification strings (without their CR-LF) and
// the peer KEXINIT wire payloads (with their message ID byte). These
// must be retained from version exchange and KEXINIT exchange until
// ExchangeHash is computed.
type HandshakeMagics struct {
	ClientVersion []byte
	ServerVersion []byte
	ClientKexInit []byte
	ServerKexInit []byte
}

// ExchangeHash computes H per RFC 4253 §8:
//
//	H := SHA1(string(V_C) || string(V_S) || string(I_C) || string(I_S)
//	          || string(K_S) || mpint(e) || mpint(f) || mpint(K))
//
// hostKeyBlob is K_S, e and f are the client's and server's DH public
// values, and K is the shared secret.
func ExchangeHash(magics *HandshakeMagics, hostKeyBlob []byte, e, f, k *big.Int) []byte {
	h := sha1.New()
	w := NewWriter(0)
	w.WriteString(magics.ClientVersion)
	w.WriteString(magics.ServerVersion)
	w.WriteString(magics.ClientKexInit)
	w.WriteString(magics.ServerKexInit)
	w.WriteString(hostKeyBlob)
	w.WriteMPInt(e)
	w.WriteMPInt(f)
	w.WriteMPInt(k)
	h.Write(w.Bytes())
	return h.Sum(nil)
}

// KexResult is the outcome of a completed Diffie-Hellman exchange:
// the shared secret K and exchange hash H, plus the host-key material
// the caller must verify before trusting either.
type KexResult struct {
	H         []byte
	K         *big.Int
	HostKey   []byte
	Signature []byte
}

// ClientKexDH drives the client side of RFC 4253 §8 plain
// Diffie-Hellman: generate an ephemeral private exponent, return it
// and the corresponding public value E to send in a KexDHInitMsg. The
// caller supplies the peer's reply to FinishClientKexDH.
func ClientKexDH(group *DHGroup) (x, e *big.Int, err error) {
	x, err = group.generatePrivate()
	if err != nil {
		return nil, nil, err
	}
	return x, group.publicValue(x), nil
}

// FinishClientKexDH completes the client side once the server's
// KexDHReplyMsg has arrived: it computes K = F^x mod p and H, but
// does not verify the host-key signature — that is the caller's job,
// via VerifyHostKeySignature.
func FinishClientKexDH(group *DHGroup, x *big.Int, magics *HandshakeMagics, reply *KexDHReplyMsg) (*KexResult, error) {
	k, err := group.diffieHellman(reply.F, x)
	if err != nil {
		return nil, err
	}
	e := group.publicValue(x)
	h := ExchangeHash(magics, reply.HostKey, e, reply.F, k)
	return &KexResult{H: h, K: k, HostKey: reply.HostKey, Signature: reply.Signature}, nil
}

// ServerKexDH drives the server side: given the client's E (from a
// KexDHInitMsg), generate an ephemeral private/public pair, compute K
// and H, and sign H with the supplied signer to build the
// KexDHReplyMsg the caller should send.
func ServerKexDH(group *DHGroup, magics *HandshakeMagics, hostKeyBlob []byte, clientE *big.Int, sign func([]byte) ([]byte, error)) (*KexDHReplyMsg, *KexResult, error) {
	y, f, err := ClientKexDH(group) // same arithmetic, server's ephemeral pair
	if err != nil {
		return nil, nil, err
	}
	k, err := group.diffieHellman(clientE, y)
	if err != nil {
		return nil, nil, err
	}
	h := ExchangeHash(magics, hostKeyBlob, clientE, f, k)
	sig, err := sign(h)
	if err != nil {
		return nil, nil, err
	}
	reply := &KexDHReplyMsg{HostKey: hostKeyBlob, F: f, Signature: sig}
	return reply, &KexResult{H: h, K: k, HostKey: hostKeyBlob, Signature: sig}, nil
}
