// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssh

import (
	log "github.com/sirupsen/logrus"
)

// Negotiation is one chosen algorithm per negotiable slot. It is
// immutable once produced by Negotiate.
type Negotiation struct {
	KexAlgo           string
	ServerHostKeyAlgo string
	EncC2S            string
	EncS2C            string
	MACC2S            string
	MACS2C            string
	CmpC2S            string
	CmpS2C            string
}

// findCommonKex walks clientAlgos in order and returns the first
// entry that also appears anywhere in serverAlgos — RFC 4253 §7.1's
// "client's preference order wins" rule — restricted to names this
// package has a DH group for (kex.go's dhGroupForKexAlgo); a kex name
// neither side recognizes cannot be selected even if both peers
// happen to offer the same unknown string.
func findCommonKex(clientAlgos, serverAlgos []string) (string, bool) {
	for _, c := range clientAlgos {
		for _, s := range serverAlgos {
			if c == s {
				if _, ok := dhGroupForKexAlgo(c); ok {
					return c, true
				}
			}
		}
	}
	return "", false
}

// findCommonCompression mirrors findCommonKex, restricted to
// CompressionNone, the only compression scheme this package
// implements.
func findCommonCompression(clientAlgos, serverAlgos []string) (string, bool) {
	for _, c := range clientAlgos {
		if c != CompressionNone {
			continue
		}
		for _, s := range serverAlgos {
			if s == CompressionNone {
				return c, true
			}
		}
	}
	return "", false
}

// findCommonCipher mirrors findCommonKex, restricted to names this
// package actually has key/IV geometry for (algorithms.go's
// cipherModes); a name neither side recognizes cannot be selected
// even if both peers happen to offer the same unknown string.
func findCommonCipher(clientAlgos, serverAlgos []string) (string, bool) {
	for _, c := range clientAlgos {
		for _, s := range serverAlgos {
			if c == s {
				if _, ok := cipherModes[c]; ok {
					return c, true
				}
			}
		}
	}
	return "", false
}

// findCommonMAC mirrors findCommonCipher for macModes.
func findCommonMAC(clientAlgos, serverAlgos []string) (string, bool) {
	for _, c := range clientAlgos {
		for _, s := range serverAlgos {
			if c == s {
				if _, ok := macModes[c]; ok {
					return c, true
				}
			}
		}
	}
	return "", false
}

// findCommonHostKey mirrors findCommonCipher for the single
// recognized host-key algorithm.
func findCommonHostKey(clientAlgos, serverAlgos []string) (string, bool) {
	for _, c := range clientAlgos {
		if c != HostKeyAlgoRSA {
			continue
		}
		for _, s := range serverAlgos {
			if s == HostKeyAlgoRSA {
				return c, true
			}
		}
	}
	return "", false
}

// Negotiate intersects client and server's KexInit algorithm lists
// per RFC 4253 §7.1: for each of the eight negotiable
// slots, the first entry of the client's list that also appears in
// the server's list wins. The slots are checked in a fixed order —
// kex, host-key, the four directional cipher/MAC slots, then the two
// compression slots — and negotiation stops at the first slot with no
// common entry, returning a NegotiationFailureError naming that slot
// verbatim so a caller can fold it into an SSH_MSG_DISCONNECT
// description. Languages are never negotiated.
func Negotiate(client, server *KexInit) (*Negotiation, error) {
	n := &Negotiation{}

	var ok bool
	if n.KexAlgo, ok = findCommonKex(client.KexAlgos, server.KexAlgos); !ok {
		return nil, fail("kex algorithm")
	}
	if n.ServerHostKeyAlgo, ok = findCommonHostKey(client.ServerHostKeyAlgos, server.ServerHostKeyAlgos); !ok {
		return nil, fail("server host key algorithm")
	}
	if n.EncC2S, ok = findCommonCipher(client.CiphersClientServer, server.CiphersClientServer); !ok {
		return nil, fail("cipher algorithm client to server")
	}
	if n.EncS2C, ok = findCommonCipher(client.CiphersServerClient, server.CiphersServerClient); !ok {
		return nil, fail("cipher algorithm server to client")
	}
	if n.MACC2S, ok = findCommonMAC(client.MACsClientServer, server.MACsClientServer); !ok {
		return nil, fail("mac algorithm client to server")
	}
	if n.MACS2C, ok = findCommonMAC(client.MACsServerClient, server.MACsServerClient); !ok {
		return nil, fail("mac algorithm server to client")
	}
	if n.CmpC2S, ok = findCommonCompression(client.CompressionClientServer, server.CompressionClientServer); !ok {
		return nil, fail("compression algorithm client to server")
	}
	if n.CmpS2C, ok = findCommonCompression(client.CompressionServerClient, server.CompressionServerClient); !ok {
		return nil, fail("compression algorithm server to client")
	}

	logger.WithFields(log.Fields{
		"kex":     n.KexAlgo,
		"hostkey": n.ServerHostKeyAlgo,
		"enc_c2s": n.EncC2S,
		"enc_s2c": n.EncS2C,
		"mac_c2s": n.MACC2S,
		"mac_s2c": n.MACS2C,
	}).Debug("ssh: negotiated algorithms")

	return n, nil
}

func fail(slot string) error {
	err := NegotiationFailureError{Slot: slot}
	logger.WithField("slot", slot).Debug("ssh: negotiation failed")
	return err
}
