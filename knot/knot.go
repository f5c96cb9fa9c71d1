// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package knot synthesizes per-axis B-spline knot vectors from sample
// abscissae, under one of three policies: AS_SAMPLED, EQUIDISTANT or
// EXPERIMENTAL.
package knot

import (
	"sort"

	"github.com/cpmech/gobsp/errs"
)

// Spacing selects the knot-construction policy
type Spacing int

// knot spacing policies
const (
	AsSampled Spacing = iota
	Equidistant
	Experimental
)

// Bound is a per-axis [lo, hi] override for EQUIDISTANT; NaN in either
// slot means "use the data extent"
type Bound struct {
	Lo, Hi float64
}

// Build produces one knot vector, dispatching on spacing.
//  values       -- raw (possibly repeated, unsorted) sample values along this axis
//  degree       -- B-spline degree p for this axis
//  numBasis     -- requested number of basis functions (0 => derive from samples); EQUIDISTANT only
//  bound        -- [lo,hi] override; NaN slots fall back to data extent; EQUIDISTANT only
//  padding      -- fractional padding applied to [lo,hi]; EQUIDISTANT only
func Build(spacing Spacing, values []float64, degree, numBasis int, bound Bound, padding float64) ([]float64, error) {
	u := sortedUnique(values)
	switch spacing {
	case AsSampled:
		return asSampled(u, degree)
	case Equidistant:
		return equidistant(u, degree, numBasis, bound, padding)
	case Experimental:
		return experimental(u, degree)
	}
	return nil, errs.New(errs.InvalidArgument, "unknown knot spacing code %d", spacing)
}

// sortedUnique dedups and sorts values, the same way store.AxisValues
// does for a store's own samples -- Build also accepts raw (possibly
// unsorted, repeated) input directly, so it repeats that step here.
func sortedUnique(values []float64) []float64 {
	seen := make(map[float64]bool, len(values))
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}
