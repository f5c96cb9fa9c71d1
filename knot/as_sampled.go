// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knot

import "github.com/cpmech/gobsp/errs"

// asSampled builds a clamped knot vector by moving-averaging the sorted
// unique axis values u over a window of size p+2, per §4.1 AS_SAMPLED.
func asSampled(u []float64, p int) ([]float64, error) {
	n := len(u)
	if n < p+1 {
		return nil, errs.New(errs.Precondition, "AS_SAMPLED needs at least %d unique axis values, got %d", p+1, n)
	}
	k := p - 1
	w := k + 3 // == p+2
	nInterior := n - k - 2
	if nInterior < 0 {
		nInterior = 0
	}
	knots := make([]float64, 0, n+p+1)
	for i := 0; i < p+1; i++ {
		knots = append(knots, u[0])
	}
	for i := 0; i < nInterior; i++ {
		sum := 0.0
		for j := 0; j < w; j++ {
			sum += u[i+j]
		}
		knots = append(knots, sum/float64(w))
	}
	for i := 0; i < p+1; i++ {
		knots = append(knots, u[n-1])
	}
	return knots, nil
}
