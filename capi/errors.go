// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capi

import "github.com/cpmech/gobsp"

// the process-wide error channel (§6): every operation clears it on
// success or sets it on failure. A binding reads GetError/GetErrorString
// after each call instead of receiving a Go error value directly.
var (
	lastErrorSet bool
	lastErrorMsg string
)

func clearError() {
	lastErrorSet = false
	lastErrorMsg = ""
}

func setError(err error) {
	lastErrorSet = true
	lastErrorMsg = err.Error()
}

// nullHandleError reports a NullHandle failure for the given operation,
// the kind §7 reserves for "any API call with a null or unknown handle".
func nullHandleError(op string) error {
	return &gobsp.Error{Kind: gobsp.NullHandle, Msg: op + ": unknown or null handle"}
}

// GetError reports whether the last capi call failed (§6).
func GetError() bool { return lastErrorSet }

// GetErrorString returns the message set by the last failing capi call,
// or "" if the last call succeeded (§6).
func GetErrorString() string { return lastErrorMsg }
