// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knot

import (
	"github.com/cpmech/gobsp/errs"
	"github.com/cpmech/gosl/utl"
)

// maxSegments bounds EXPERIMENTAL's interior-knot count regardless of
// numBasisFunctions -- this asymmetry with EQUIDISTANT is intentional
// per the "experimental" label (§9); documented, not fixed.
const maxSegments = 10

// experimental builds a clamped knot vector from bucketed moving averages
// of the sorted unique axis values u, per §4.1 EXPERIMENTAL.
func experimental(u []float64, p int) ([]float64, error) {
	n := len(u)
	if n < p+1 {
		return nil, errs.New(errs.Precondition, "EXPERIMENTAL needs at least %d unique axis values, got %d", p+1, n)
	}

	ni := n - p - 1
	ns := ni + p + 1
	if ns > maxSegments && maxSegments >= p+1 {
		ns = maxSegments
		ni = ns - p - 1
	}
	ni = utl.Imax(ni, 0)

	var w, r int
	if ni > 0 {
		w = n / ni
		r = n - w*ni
	}

	knots := make([]float64, 0, 2*(p+1)+ni)
	for i := 0; i < p+1; i++ {
		knots = append(knots, u[0])
	}
	cursor := 0
	for i := 0; i < ni; i++ {
		size := w
		if i < r {
			size = w + 1
		}
		sum := 0.0
		for j := 0; j < size; j++ {
			sum += u[cursor+j]
		}
		knots = append(knots, sum/float64(size))
		cursor += size
	}
	for i := 0; i < p+1; i++ {
		knots = append(knots, u[n-1])
	}
	return knots, nil
}
