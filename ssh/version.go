// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssh

import (
	"bytes"

	log "github.com/sirupsen/logrus"
)

// maxVersionBufferSize is the hard cap on how much input ScanVersion
// will scan looking for a terminating banner line before giving up.
// It exists only to bound memory use against a peer that never sends
// one; RFC 4253 §4.2 allows a client to send arbitrary pre-banner
// lines, so the cap has to be generous.
const maxVersionBufferSize = 64 * 1024

// clientVersion is a default identification string for this package's
// caller, which sends its banner before it ever sees input through
// ScanVersion. It is unexported; a caller outside the package renders
// its own banner with FormatVersion.
const clientVersion = "SSH-2.0-Go"

// ScanVersion looks for the SSH-2.0 identification banner (RFC 4253
// §4.2) inside buf, an incoming, possibly partial, byte stream.
//
// It returns one of three outcomes:
//   - ok == false, err == nil: no complete banner line has arrived yet
//     and buf is still under the size cap; the caller should read more
//     and retry.
//   - ok == true, err == nil: a valid banner was found; remainder is
//     everything after the terminating '\n' and peerVersion is the
//     third '-'-delimited token (the software version plus comments).
//   - err != nil: the banner (or the buffer as a whole) is malformed.
//
// Lines that don't start with "SSH-" are permitted as pre-banner
// chatter per RFC 4253 §4.2 and are skipped.
func ScanVersion(buf []byte) (remainder []byte, peerVersion string, ok bool, err error) {
	start := 0
	for {
		if start >= maxVersionBufferSize {
			return nil, "", false, Malformed("Buffer is too big", nil)
		}
		idx := bytes.IndexByte(buf[start:], '\n')
		if idx < 0 {
			if len(buf) >= maxVersionBufferSize {
				return nil, "", false, Malformed("Buffer is too big", nil)
			}
			return nil, "", false, nil
		}
		end := start + idx + 1 // position just past '\n'
		line := buf[start:end]
		trimmed := bytes.TrimRight(line, "\r\n")

		if !bytes.HasPrefix(trimmed, []byte("SSH-")) {
			start = end
			continue
		}

		peer, verr := parseBannerLine(trimmed)
		if verr != nil {
			return nil, "", false, verr
		}
		logger.WithFields(log.Fields{
			"peer_version": peer,
		}).Debug("ssh: accepted peer identification banner")
		return buf[end:], peer, true, nil
	}
}

// parseBannerLine validates a single candidate banner line (already
// stripped of its trailing CR/LF) and extracts the peer's software
// version plus comments field.
func parseBannerLine(line []byte) (string, error) {
	if len(line) < 9 {
		return "", Malformed("Bad version line (too short)", nil)
	}
	parts := bytes.SplitN(line, []byte("-"), 3)
	if len(parts) != 3 {
		return "", Malformed("Bad version line (missing '-' separators)", nil)
	}
	protoVersion := string(parts[1])
	if protoVersion != "2.0" {
		return "", Malformed("Bad version "+protoVersion, nil)
	}
	return string(parts[2]), nil
}

// FormatVersion renders software (the softwareversion[-comments]
// field) as a complete CR-LF terminated banner line ready to write to
// the transport.
func FormatVersion(software string) []byte {
	return append([]byte("SSH-2.0-"+software), '\r', '\n')
}
