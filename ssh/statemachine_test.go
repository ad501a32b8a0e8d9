// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransitionServerHandshakeHappyPath(t *testing.T) {
	// The banner precedes binary framing, so no message ID moves the
	// machine out of AwaitingBanner; the caller starts at
	// AwaitingPeerKexInit once ScanVersion has accepted the banner.
	state := AwaitingBanner

	state, err := Transition(state, true, MsgKexInit)
	require.Error(t, err)
	require.Equal(t, AwaitingBanner, state)

	state, err = Transition(AwaitingPeerKexInit, true, MsgKexInit)
	require.NoError(t, err)
	require.Equal(t, AwaitingKexDHInit, state)

	state, err = Transition(state, true, MsgKexDHInit)
	require.NoError(t, err)
	require.Equal(t, AwaitingNewKeys, state)

	state, err = Transition(state, true, MsgNewKeys)
	require.NoError(t, err)
	require.Equal(t, Established, state)
}

func TestTransitionClientHandshakeHappyPath(t *testing.T) {
	state, err := Transition(AwaitingPeerKexInit, false, MsgKexInit)
	require.NoError(t, err)
	require.Equal(t, AwaitingKexDHReply, state)

	state, err = Transition(state, false, MsgKexDHReply)
	require.NoError(t, err)
	require.Equal(t, AwaitingNewKeys, state)

	state, err = Transition(state, false, MsgNewKeys)
	require.NoError(t, err)
	require.Equal(t, Established, state)
}

func TestTransitionRejectsWrongRolesMessage(t *testing.T) {
	// A server never receives KEXDH_REPLY, and a client never receives
	// KEXDH_INIT.
	_, err := Transition(AwaitingKexDHInit, true, MsgKexDHReply)
	require.Error(t, err)
	var protoErr ProtocolError
	require.ErrorAs(t, err, &protoErr)

	_, err = Transition(AwaitingKexDHReply, false, MsgKexDHInit)
	require.Error(t, err)
}

func TestTransitionRejectsUnexpectedMessage(t *testing.T) {
	state, err := Transition(AwaitingBanner, true, MsgDisconnect)
	require.Error(t, err)
	require.Equal(t, AwaitingBanner, state)
	require.Contains(t, err.Error(), "unexpected in state AwaitingBanner")
}

func TestHandshakeStateStringer(t *testing.T) {
	require.Equal(t, "AwaitingBanner", AwaitingBanner.String())
	require.Equal(t, "Established", Established.String())
	require.Equal(t, "Unknown", HandshakeState(99).String())
}
