// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assemble builds the sparse linear-algebra objects a fit's
// normal equations are made of: the basis-at-samples matrix B, the
// sample vector y, the diagonal weight matrix W and, for PSPLINE
// smoothing, the Kronecker-structured second-difference penalty D.
// The sparse assembly follows fem/essenbcs.go's Triplet.Init/Put/ToMatrix
// idiom.
package assemble

import (
	"github.com/cpmech/gobsp/basis"
	"github.com/cpmech/gobsp/errs"
	"github.com/cpmech/gobsp/store"
	"github.com/cpmech/gosl/la"
)

// System holds the assembled pieces a Regularized solver consumes.
type System struct {
	B       *la.Triplet // m x N sparse basis-at-samples matrix
	Y       []float64   // length-m sample y-values, same row order as B
	W       *la.Triplet // m x m sparse diagonal weights (identity if unweighted)
	Weights []float64   // W's diagonal, length m (1.0 everywhere if unweighted)
	N       int         // number of coefficients (columns of B)
	M       int         // number of samples (rows of B)
}

// Build assembles B, y and W from axes and samples. weights, if non-empty,
// must have length len(samples) (the caller -- the Builder facade -- is
// responsible for that length check per §4.5; this function trusts it).
func Build(axes []basis.Axis, samples []store.Sample, weights []float64) (*System, error) {
	d := len(axes)
	m := len(samples)

	nAxis := make([]int, d)
	for a := 0; a < d; a++ {
		nAxis[a] = axes[a].NumBasis()
	}
	N := basis.NumCoefficients(nAxis)

	maxNNZperRow := 1
	for a := 0; a < d; a++ {
		maxNNZperRow *= axes[a].Degree + 1
	}

	B := new(la.Triplet)
	B.Init(m, N, m*maxNNZperRow)
	y := make([]float64, m)
	for i, s := range samples {
		if len(s.X) != d {
			return nil, errs.New(errs.DimensionMismatch, "sample %d has %d coordinates, expected %d", i, len(s.X), d)
		}
		row, err := basis.TensorEval(axes, s.X)
		if err != nil {
			return nil, err
		}
		for k, col := range row.Cols {
			B.Put(i, col, row.Vals[k])
		}
		y[i] = s.Y
	}

	diag := make([]float64, m)
	if len(weights) == 0 {
		for i := range diag {
			diag[i] = 1.0
		}
	} else {
		copy(diag, weights)
	}

	W := new(la.Triplet)
	W.Init(m, m, m)
	for i := 0; i < m; i++ {
		W.Put(i, i, diag[i])
	}

	return &System{B: B, Y: y, W: W, Weights: diag, N: N, M: m}, nil
}
