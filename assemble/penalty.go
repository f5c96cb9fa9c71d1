// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assemble

import (
	"github.com/cpmech/gobsp/errs"
	"github.com/cpmech/gosl/la"
)

// BuildPenalty constructs the Kronecker-structured second-order
// finite-difference operator D over the coefficient tensor described by
// nAxis (per-axis basis counts, in the spline's own axis order, i.e.
// the same order coefficients are laid out in -- last axis fastest).
//
// The construction walks the axes in reverse (dims = reverse(nAxis)); for
// each reversed-order axis a, leftProd/rightProd are the products of the
// dims strictly before/after a. One row per interior difference sweeps an
// identity block through the faster-varying axes -- this single loop
// covers both the "first reversed axis" and "later axes" cases of the
// underlying formula, since leftProd==1 on the first reversed axis makes
// them identical.
func BuildPenalty(nAxis []int) (*la.Triplet, error) {
	d := len(nAxis)
	dims := make([]int, d)
	for a := 0; a < d; a++ {
		dims[a] = nAxis[d-1-a]
	}

	N := 1
	for _, n := range nAxis {
		N *= n
	}

	for a := 0; a < d; a++ {
		if dims[a] < 3 {
			return nil, errs.New(errs.Precondition, "PSPLINE needs at least 3 basis functions on every axis, axis has %d", dims[a])
		}
	}

	totalRows := 0
	leftProds := make([]int, d)
	rightProds := make([]int, d)
	for a := 0; a < d; a++ {
		left := 1
		for k := 0; k < a; k++ {
			left *= dims[k]
		}
		right := 1
		for k := a + 1; k < d; k++ {
			right *= dims[k]
		}
		leftProds[a] = left
		rightProds[a] = right
		totalRows += right * left * (dims[a] - 2)
	}

	D := new(la.Triplet)
	D.Init(totalRows, N, totalRows*3)

	row := 0
	for a := 0; a < d; a++ {
		leftProd, rightProd := leftProds[a], rightProds[a]
		for j := 0; j < rightProd; j++ {
			base := j * leftProd * dims[a]
			for l := 0; l < dims[a]-2; l++ {
				for n := 0; n < leftProd; n++ {
					c0 := base + l*leftProd + n
					c1 := c0 + leftProd
					c2 := c0 + 2*leftProd
					D.Put(row, c0, 1)
					D.Put(row, c1, -2)
					D.Put(row, c2, 1)
					row++
				}
			}
		}
	}

	return D, nil
}
