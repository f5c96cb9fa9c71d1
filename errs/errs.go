// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs defines the error taxonomy shared by every gobsp package:
// store, knot, basis, assemble, solve, spline, capi and the root gobsp
// builder facade all return *errs.Error so that capi's error channel can
// classify a failure without type-switching on package-local error types.
package errs

import "github.com/cpmech/gosl/io"

// Kind classifies a failure the way the external handle API (capi) needs
// to report it.
type Kind int

// error kinds, per the external-interface error taxonomy
const (
	InvalidArgument Kind = iota
	Precondition
	DimensionMismatch
	SolverFailure
	NullHandle
)

// String returns the human name of a Kind
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case Precondition:
		return "Precondition"
	case DimensionMismatch:
		return "DimensionMismatch"
	case SolverFailure:
		return "SolverFailure"
	case NullHandle:
		return "NullHandle"
	}
	return "Unknown"
}

// Error is the error type returned by every exported gobsp operation
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return io.Sf("%s: %s", e.Kind, e.Msg)
}

// New builds an *Error with a formatted message
func New(kind Kind, msg string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: io.Sf(msg, args...)}
}
