// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssh

import (
	log "github.com/sirupsen/logrus"
)

// logger is the package-wide diagnostic logger. It defaults to
// logrus's standard logger; callers embedding this package in a
// larger daemon can redirect it with SetLogger without this package
// taking a direct dependency on whatever logging setup the daemon
// uses.
var logger log.FieldLogger = log.StandardLogger()

// SetLogger replaces the package-wide diagnostic logger. Passing nil
// is a no-op.
func SetLogger(l log.FieldLogger) {
	if l != nil {
		logger = l
	}
}
