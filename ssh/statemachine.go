// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssh

// HandshakeState enumerates the states of the handshake state
// machine. Transitions are driven exclusively by decoded messages;
// any message unexpected in the current state is a ProtocolError.
type HandshakeState int

const (
	AwaitingBanner HandshakeState = iota
	AwaitingPeerKexInit
	AwaitingKexDHInit  // server only
	AwaitingKexDHReply // client only
	AwaitingNewKeys
	Established
)

func (s HandshakeState) String() string {
	switch s {
	case AwaitingBanner:
		return "AwaitingBanner"
	case AwaitingPeerKexInit:
		return "AwaitingPeerKexInit"
	case AwaitingKexDHInit:
		return "AwaitingKexDHInit"
	case AwaitingKexDHReply:
		return "AwaitingKexDHReply"
	case AwaitingNewKeys:
		return "AwaitingNewKeys"
	case Established:
		return "Established"
	default:
		return "Unknown"
	}
}

// expectedMessageIDs lists the message IDs a state machine in state
// may legally receive next. isServer distinguishes the two kex-reply
// states, which are mirror images of each other.
func expectedMessageIDs(state HandshakeState, isServer bool) []uint8 {
	switch state {
	case AwaitingPeerKexInit:
		return []uint8{MsgKexInit}
	case AwaitingKexDHInit:
		if isServer {
			return []uint8{MsgKexDHInit}
		}
	case AwaitingKexDHReply:
		if !isServer {
			return []uint8{MsgKexDHReply}
		}
	case AwaitingNewKeys:
		return []uint8{MsgNewKeys}
	}
	return nil
}

// Transition validates that messageID is legal in state for the given
// role, and returns the next state. A message ID not among the
// current state's expected set yields a ProtocolError naming both the
// state and the offending ID. There is no timeout-based or implicit
// advancement. AwaitingBanner and Established expect no message ID,
// so Transition never leaves them; the banner is not a binary message,
// and the caller moves from AwaitingBanner to AwaitingPeerKexInit
// itself once ScanVersion has accepted the peer's banner.
func Transition(state HandshakeState, isServer bool, messageID uint8) (HandshakeState, error) {
	expected := expectedMessageIDs(state, isServer)
	for _, id := range expected {
		if id == messageID {
			return nextState(state, isServer), nil
		}
	}
	return state, ProtocolError{Reason: unexpectedInStateReason(state, messageID)}
}

func nextState(state HandshakeState, isServer bool) HandshakeState {
	switch state {
	case AwaitingPeerKexInit:
		if isServer {
			return AwaitingKexDHInit
		}
		return AwaitingKexDHReply
	case AwaitingKexDHInit, AwaitingKexDHReply:
		return AwaitingNewKeys
	case AwaitingNewKeys:
		return Established
	default:
		return state
	}
}

func unexpectedInStateReason(state HandshakeState, messageID uint8) string {
	return "message type " + itoa(int(messageID)) + " unexpected in state " + state.String()
}

// itoa is a tiny, allocation-light decimal formatter so this file
// doesn't need to import strconv for one call site.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [3]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
