// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssh

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// NeedMoreError describes a well-formed but truncated prefix of the
// input. It is not a protocol violation: the caller should read more
// bytes from the transport and retry the same decode with the extended
// buffer. The framing collaborator, not this package, decides what
// "more bytes" means. No function in this package returns it: Reader
// and Decode report truncated input as a MalformedError, and
// ScanVersion reports an incomplete banner with ok == false.
type NeedMoreError struct {
	// Want, when known, is a lower bound on the number of additional
	// bytes required before the decode can succeed. Zero means unknown.
	Want int
}

func (e NeedMoreError) Error() string {
	if e.Want > 0 {
		return fmt.Sprintf("ssh: need %d more byte(s)", e.Want)
	}
	return "ssh: need more data"
}

// IsNeedMore reports whether err is a NeedMoreError.
func IsNeedMore(err error) bool {
	_, ok := pkgerrors.Cause(err).(NeedMoreError)
	return ok
}

// MalformedError results from a structurally invalid message: a length
// that overruns the buffer, a cap that was exceeded, unexpected trailing
// bytes, a bad version banner, an unrecognized-but-required algorithm
// name, or a DH shared secret the group rejected.
type MalformedError struct {
	Reason string
	cause  error
}

func (e MalformedError) Error() string {
	if e.cause != nil {
		return "ssh: malformed: " + e.Reason + ": " + e.cause.Error()
	}
	return "ssh: malformed: " + e.Reason
}

// Cause implements the github.com/pkg/errors Causer interface so
// pkgerrors.Cause(err) unwraps to the underlying decode failure.
func (e MalformedError) Cause() error { return e.cause }

// Unwrap gives the same access via the standard errors package.
func (e MalformedError) Unwrap() error { return e.cause }

// Malformed constructs a MalformedError, optionally wrapping a cause so
// the original failure is not lost when one decode step fails inside
// another (e.g. a bad KexInit nested inside a bad packet).
func Malformed(reason string, cause error) error {
	return MalformedError{Reason: reason, cause: cause}
}

// ProtocolError results from a validly encoded message that is not
// expected in the connection's current handshake state.
type ProtocolError struct {
	Reason string
}

func (e ProtocolError) Error() string {
	return "ssh: protocol error: " + e.Reason
}

// NegotiationFailureError results from an empty intersection between the
// client's and server's algorithm lists for one negotiation slot.
type NegotiationFailureError struct {
	Slot string
}

func (e NegotiationFailureError) Error() string {
	return fmt.Sprintf("Can't agree on %s", e.Slot)
}

// UnimplementedError is returned for a message ID that this package
// does not decode into a concrete variant: the GLOBAL_REQUEST /
// CHANNEL_* families of RFC 4254 §4-5 that carry request-type-specific
// payloads this package doesn't parse, and any ID outside the message
// table. The caller should reply with
// SSH_MSG_UNIMPLEMENTED carrying the peer's sequence number; see
// NewUnimplemented.
type UnimplementedError struct {
	MessageID uint8
}

func (e UnimplementedError) Error() string {
	return fmt.Sprintf("ssh: unimplemented message type %d", e.MessageID)
}

// UnexpectedMessageError results when the SSH message that we received
// didn't match what we wanted.
type UnexpectedMessageError struct {
	Expected, Got uint8
}

func (e UnexpectedMessageError) Error() string {
	return fmt.Sprintf("ssh: unexpected message type %d (expected %d)", e.Got, e.Expected)
}
