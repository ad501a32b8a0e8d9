// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fullKexInit(kex, hostKey, cipher, mac []string) *KexInit {
	return &KexInit{
		KexAlgos:                kex,
		ServerHostKeyAlgos:      hostKey,
		CiphersClientServer:     cipher,
		CiphersServerClient:     cipher,
		MACsClientServer:        mac,
		MACsServerClient:        mac,
		CompressionClientServer: DefaultCompressionOrder,
		CompressionServerClient: DefaultCompressionOrder,
	}
}

func TestNegotiatePicksClientPreference(t *testing.T) {
	client := fullKexInit([]string{KexAlgoDH1SHA1, KexAlgoDH14SHA1}, DefaultHostKeyOrder, DefaultCipherOrder, DefaultMACOrder)
	server := fullKexInit([]string{KexAlgoDH14SHA1, KexAlgoDH1SHA1}, DefaultHostKeyOrder, DefaultCipherOrder, DefaultMACOrder)

	n, err := Negotiate(client, server)
	require.NoError(t, err)
	require.Equal(t, KexAlgoDH1SHA1, n.KexAlgo)
}

func TestNegotiateUnrecognizedKexNeverSelected(t *testing.T) {
	client := fullKexInit([]string{"made-up-kex", KexAlgoDH14SHA1}, DefaultHostKeyOrder, DefaultCipherOrder, DefaultMACOrder)
	server := fullKexInit([]string{"made-up-kex", KexAlgoDH14SHA1}, DefaultHostKeyOrder, DefaultCipherOrder, DefaultMACOrder)

	n, err := Negotiate(client, server)
	require.NoError(t, err)
	require.Equal(t, KexAlgoDH14SHA1, n.KexAlgo, "an unrecognized kex name both peers offer must never be selected")
}

func TestNegotiateUnrecognizedCompressionNeverSelected(t *testing.T) {
	client := fullKexInit(DefaultKexOrder, DefaultHostKeyOrder, DefaultCipherOrder, DefaultMACOrder)
	client.CompressionClientServer = []string{"zlib"}
	server := fullKexInit(DefaultKexOrder, DefaultHostKeyOrder, DefaultCipherOrder, DefaultMACOrder)
	server.CompressionClientServer = []string{"zlib"}

	_, err := Negotiate(client, server)
	require.Error(t, err)
	require.Equal(t, "Can't agree on compression algorithm client to server", err.Error())
}

func TestNegotiateDisjointKexFails(t *testing.T) {
	client := fullKexInit([]string{"A"}, DefaultHostKeyOrder, DefaultCipherOrder, DefaultMACOrder)
	server := fullKexInit([]string{"B"}, DefaultHostKeyOrder, DefaultCipherOrder, DefaultMACOrder)

	_, err := Negotiate(client, server)
	require.Error(t, err)
	require.Equal(t, "Can't agree on kex algorithm", err.Error())
}

func TestNegotiateReportsFirstFailingSlot(t *testing.T) {
	client := fullKexInit(DefaultKexOrder, DefaultHostKeyOrder, []string{"bogus-cipher"}, DefaultMACOrder)
	server := fullKexInit(DefaultKexOrder, DefaultHostKeyOrder, []string{"bogus-cipher"}, DefaultMACOrder)

	_, err := Negotiate(client, server)
	require.Error(t, err)
	require.Equal(t, "Can't agree on cipher algorithm client to server", err.Error())
}

func TestNegotiateUnknownHostKeyAlgoFails(t *testing.T) {
	client := fullKexInit(DefaultKexOrder, []string{"ssh-dss"}, DefaultCipherOrder, DefaultMACOrder)
	server := fullKexInit(DefaultKexOrder, []string{"ssh-dss"}, DefaultCipherOrder, DefaultMACOrder)

	_, err := Negotiate(client, server)
	require.Error(t, err)
	require.Equal(t, "Can't agree on server host key algorithm", err.Error())
}

func TestNegotiateFullTuple(t *testing.T) {
	client := NewKexInit(nil)
	server := NewKexInit(nil)

	n, err := Negotiate(client, server)
	require.NoError(t, err)
	require.Equal(t, DefaultKexOrder[0], n.KexAlgo)
	require.Equal(t, HostKeyAlgoRSA, n.ServerHostKeyAlgo)
	require.Equal(t, DefaultCipherOrder[0], n.EncC2S)
	require.Equal(t, DefaultMACOrder[0], n.MACC2S)
	require.Equal(t, CompressionNone, n.CmpC2S)
}
