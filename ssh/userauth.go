// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssh

// DataSignedForAuth builds the byte sequence a "publickey"
// UserAuthRequestMsg's signature is computed over, per RFC 4252 §7:
//
//	string(sessionID) || byte(SSH_MSG_USERAUTH_REQUEST) ||
//	string(user) || string(service) || string(method) ||
//	boolean(TRUE) || string(algo) || string(pubKey)
//
// Signing and verifying that signature is a user-authentication
// policy decision and stays outside this package; this function only
// fixes the byte format both sides must agree on to interoperate, the
// same way ExchangeHash fixes the kex hash format.
func DataSignedForAuth(sessionID []byte, req *UserAuthRequestMsg, algo, pubKey []byte) []byte {
	w := NewWriter(0)
	w.WriteString(sessionID)
	w.WriteUint8(MsgUserAuthRequest)
	w.WriteString([]byte(req.User))
	w.WriteString([]byte(req.Service))
	w.WriteString([]byte(req.Method))
	w.WriteBool(true)
	w.WriteString(algo)
	w.WriteString(pubKey)
	return w.Bytes()
}
