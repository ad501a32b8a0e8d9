// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssh

// These are the string constants used on the wire for every algorithm
// this core recognizes. RFC 4253 §7.1 calls these "name-list" entries.
const (
	KexAlgoDH1SHA1  = "diffie-hellman-group1-sha1"
	KexAlgoDH14SHA1 = "diffie-hellman-group14-sha1"

	HostKeyAlgoRSA = "ssh-rsa"

	CipherAlgoAES128CTR = "aes128-ctr"
	CipherAlgoAES192CTR = "aes192-ctr"
	CipherAlgoAES256CTR = "aes256-ctr"
	CipherAlgoAES128CBC = "aes128-cbc"
	CipherAlgoAES192CBC = "aes192-cbc"
	CipherAlgoAES256CBC = "aes256-cbc"

	MACAlgoHMACMD5      = "hmac-md5"
	MACAlgoHMACMD5_96   = "hmac-md5-96"
	MACAlgoHMACSHA1     = "hmac-sha1"
	MACAlgoHMACSHA1_96  = "hmac-sha1-96"
	MACAlgoHMACSHA2_256 = "hmac-sha2-256"
	MACAlgoHMACSHA2_512 = "hmac-sha2-512"

	CompressionNone = "none"

	// serviceUserAuth and serviceConnection are the two service names
	// defined by RFC 4252/4254 that appear in SERVICE_REQUEST/ACCEPT
	// and in the data signed for publickey authentication.
	serviceUserAuth   = "ssh-userauth"
	serviceConnection = "ssh-connection"
)

// DefaultKexOrder is the preferred-order kex algorithm list this
// package offers when a caller does not supply its own. Group 14 is
// preferred over group 1 because it is the larger, more conservative
// group.
var DefaultKexOrder = []string{KexAlgoDH14SHA1, KexAlgoDH1SHA1}

// DefaultHostKeyOrder is the only host-key algorithm this core
// recognizes. There is no separate "unknown" host-key value: when the
// peer offers nothing but unrecognized names, Negotiate fails on the
// host-key slot.
var DefaultHostKeyOrder = []string{HostKeyAlgoRSA}

// DefaultCipherOrder is the preferred-order cipher list. CTR modes are
// preferred over CBC because CBC mode SSH ciphers are vulnerable to
// the Rogaway/Bellare chosen-plaintext attack that CTR mode avoids.
var DefaultCipherOrder = []string{
	CipherAlgoAES128CTR, CipherAlgoAES192CTR, CipherAlgoAES256CTR,
	CipherAlgoAES128CBC, CipherAlgoAES192CBC, CipherAlgoAES256CBC,
}

// DefaultMACOrder is the preferred-order MAC list, strongest first.
var DefaultMACOrder = []string{
	MACAlgoHMACSHA2_512, MACAlgoHMACSHA2_256,
	MACAlgoHMACSHA1, MACAlgoHMACSHA1_96,
	MACAlgoHMACMD5, MACAlgoHMACMD5_96,
}

// DefaultCompressionOrder is the only compression option this core
// implements.
var DefaultCompressionOrder = []string{CompressionNone}

// cipherInfo describes the key and IV/block geometry of one cipher
// algorithm, keyed by its wire name. A cipher absent from this table is
// one findCommonCipher will never select, even if both peers offer its
// name — only AES-CTR/CBC variants are registered.
type cipherInfo struct {
	keySize   int
	blockSize int // also the IV length for both CTR and CBC
}

var cipherModes = map[string]cipherInfo{
	CipherAlgoAES128CTR: {keySize: 16, blockSize: 16},
	CipherAlgoAES192CTR: {keySize: 24, blockSize: 16},
	CipherAlgoAES256CTR: {keySize: 32, blockSize: 16},
	CipherAlgoAES128CBC: {keySize: 16, blockSize: 16},
	CipherAlgoAES192CBC: {keySize: 24, blockSize: 16},
	CipherAlgoAES256CBC: {keySize: 32, blockSize: 16},
}

// macInfo describes the key and digest geometry of one MAC algorithm.
type macInfo struct {
	keySize  int
	truncate int // 0 means "full digest length", else truncated length
}

var macModes = map[string]macInfo{
	MACAlgoHMACMD5:      {keySize: 16},
	MACAlgoHMACMD5_96:   {keySize: 16, truncate: 12},
	MACAlgoHMACSHA1:     {keySize: 20},
	MACAlgoHMACSHA1_96:  {keySize: 20, truncate: 12},
	MACAlgoHMACSHA2_256: {keySize: 32},
	MACAlgoHMACSHA2_512: {keySize: 64},
}

// CryptoConfig is the configuration surface for the algorithm lists a
// caller offers during negotiation. A nil field falls back to this
// package's default preferred order. Only kex, cipher, and MAC lists
// are caller-tunable; the compression list never varies, since "none"
// is the only variant this package implements.
type CryptoConfig struct {
	// KeyExchanges is the offered kex algorithm list, in preference
	// order. Nil means DefaultKexOrder.
	KeyExchanges []string

	// Ciphers is the offered cipher list, in preference order,
	// applied symmetrically to both directions. Nil means
	// DefaultCipherOrder.
	Ciphers []string

	// MACs is the offered MAC list, in preference order, applied
	// symmetrically to both directions. Nil means DefaultMACOrder.
	MACs []string
}

func (c *CryptoConfig) kexes() []string {
	if c == nil || c.KeyExchanges == nil {
		return DefaultKexOrder
	}
	return c.KeyExchanges
}

func (c *CryptoConfig) ciphers() []string {
	if c == nil || c.Ciphers == nil {
		return DefaultCipherOrder
	}
	return c.Ciphers
}

func (c *CryptoConfig) macs() []string {
	if c == nil || c.MACs == nil {
		return DefaultMACOrder
	}
	return c.MACs
}

// NewKexInit builds the local side's KexInit record from cfg (or this
// package's defaults, if cfg is nil) and a fresh 16-byte CSPRNG cookie.
func NewKexInit(cfg *CryptoConfig) *KexInit {
	kex := cfg.kexes()
	ciphers := cfg.ciphers()
	macs := cfg.macs()

	cookie := [16]byte{}
	w := NewWriter(16)
	w.WriteRandom(16)
	copy(cookie[:], w.Bytes())

	return &KexInit{
		Cookie:                  cookie,
		KexAlgos:                kex,
		ServerHostKeyAlgos:      DefaultHostKeyOrder,
		CiphersClientServer:     ciphers,
		CiphersServerClient:     ciphers,
		MACsClientServer:        macs,
		MACsServerClient:        macs,
		CompressionClientServer: DefaultCompressionOrder,
		CompressionServerClient: DefaultCompressionOrder,
		LanguagesClientServer:   []string{},
		LanguagesServerClient:   []string{},
	}
}
