// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ssh implements the wire-protocol core of SSH version 2
// (RFC 4251, RFC 4252, RFC 4253, RFC 4254): the version banner
// handshake, the binary message codec, key-exchange algorithm
// negotiation, and session key derivation.
//
// This package does not dial, listen, or drive a connection; it has
// no I/O and no goroutines. Callers own the transport, the encrypted
// packet-framing loop, channel multiplexing, user-authentication
// policy, and host-key persistence, and feed decoded payloads in and
// encoded payloads out through the functions here.
package ssh
