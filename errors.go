// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gobsp

import "github.com/cpmech/gobsp/errs"

// re-exported so callers of the root package never need to import errs
// directly just to compare error kinds.
type (
	// ErrorKind classifies a gobsp failure; see errs.Kind.
	ErrorKind = errs.Kind
	// Error is the concrete error type every gobsp operation returns.
	Error = errs.Error
)

const (
	InvalidArgument   = errs.InvalidArgument
	Precondition      = errs.Precondition
	DimensionMismatch = errs.DimensionMismatch
	SolverFailure     = errs.SolverFailure
	NullHandle        = errs.NullHandle
)
