// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knot

import (
	"math"

	"github.com/cpmech/gobsp/errs"
)

// equidistant builds a clamped knot vector of p+1-repeated endpoints
// around max(n-p-1,0) equidistant interior knots, per §4.1 EQUIDISTANT.
//
// This implements the corrected behavior from the spec's defect note
// (§9): the clamp multiplicity is always p+1 at each end, independent of
// whether the interior is empty, rather than leaning on a linspace call
// to contribute the final +1 of multiplicity.
func equidistant(u []float64, p, numBasis int, bound Bound, padding float64) ([]float64, error) {
	n := numBasis
	if n <= 0 {
		n = len(u)
	}
	if n < p+1 {
		return nil, errs.New(errs.Precondition, "EQUIDISTANT needs numBasisFunctions/unique-values >= %d, got %d", p+1, n)
	}
	lo, hi := bound.Lo, bound.Hi
	if math.IsNaN(lo) {
		lo = u[0]
	}
	if math.IsNaN(hi) {
		hi = u[len(u)-1]
	}
	pad := (hi - lo) * padding
	lo -= pad
	hi += pad

	interior := n - p - 1
	if interior < 0 {
		interior = 0
	}

	knots := make([]float64, 0, n+p+1)
	for i := 0; i < p+1; i++ {
		knots = append(knots, lo)
	}
	if interior > 0 {
		knots = append(knots, interiorPoints(lo, hi, interior)...)
	}
	for i := 0; i < p+1; i++ {
		knots = append(knots, hi)
	}
	return knots, nil
}

// interiorPoints returns n values strictly between lo and hi, evenly
// spaced as if lo and hi were themselves included in an (n+2)-point
// linspace and then dropped -- the endpoint clamps already contribute
// lo/hi at full p+1 multiplicity, so the interior block must not
// duplicate them.
func interiorPoints(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n+1)
	for i := 0; i < n; i++ {
		out[i] = lo + step*float64(i+1)
	}
	return out
}
