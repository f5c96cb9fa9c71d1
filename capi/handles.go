// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package capi implements the opaque-handle external-interface contract
// (§6): three handle kinds (Sample store, Builder, Spline) plus a
// process-wide error channel, consumed by a foreign-function binding
// layer that lives outside this repository. No cgo export machinery
// lives here -- only the Go-level semantics a binding would wrap.
package capi

import (
	"github.com/cpmech/gobsp"
	"github.com/cpmech/gobsp/spline"
	"github.com/cpmech/gobsp/store"
)

// Handle is an opaque reference into the handle table, as a binding
// would pass it across an ABI boundary. 0 is never a valid handle.
type Handle int64

const nullHandle Handle = 0

type entryKind int

const (
	kindStore entryKind = iota
	kindBuilder
	kindSpline
)

type entry struct {
	kind    entryKind
	store   *store.Store
	builder *gobsp.Builder
	spline  *spline.Spline
}

// table is the single, process-wide handle registry (§6's "opaque-handle
// API"). Not protected by a mutex, mirroring gosl/mpi's unprotected
// process-wide rank state: the spec's model is single-threaded (§5).
var (
	table  = map[Handle]*entry{}
	nextID Handle = 1
)

func put(e *entry) Handle {
	id := nextID
	nextID++
	table[id] = e
	return id
}

func get(h Handle, kind entryKind) *entry {
	e, ok := table[h]
	if !ok || e.kind != kind {
		return nil
	}
	return e
}

func deleteHandle(h Handle) {
	delete(table, h)
}
