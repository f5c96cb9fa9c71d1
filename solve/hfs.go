// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"github.com/cpmech/gobsp/errs"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// hfsFit assembles the PSPLINE normal equations and, when hfsIters > 0,
// runs that many rounds of Harville-Fellner-Schall fixed-point iteration
// to auto-tune lambda before the final solve (§4.4).
func hfsFit(Bd, Dd [][]float64, y, diag []float64, alpha float64, hfsIters, m, N, d int) ([]float64, float64, error) {
	Bt := transposeDense(Bd)
	WB := rowScale(Bd, diag)
	BtWB := denseMatMul(Bt, WB)
	Wy := vecScale(y, diag)
	BtWy := make([]float64, N)
	la.MatVecMul(BtWy, 1, Bt, Wy)

	Dt := transposeDense(Dd)
	DtD := denseMatMul(Dt, Dd)

	lambda := alpha
	A := addScaled(BtWB, DtD, lambda)

	var c []float64
	for iter := 0; iter < hfsIters; iter++ {
		Ainv := la.MatAlloc(N, N)
		err := la.MatInv(Ainv, A, 1e-12)
		if err != nil {
			io.Pfred("HFS iteration %d: A is singular, stopping with last valid lambda=%v\n", iter, lambda)
			break
		}

		G := denseMatMul(Ainv, BtWB)
		ED := trace(G)

		c = make([]float64, N)
		la.MatVecMul(c, 1, Ainv, BtWy)

		Dc := make([]float64, len(Dd))
		la.MatVecMul(Dc, 1, Dd, c)
		dcNorm := la.VecNorm(Dc)
		tau2 := dcNorm * dcNorm / ED

		Bc := make([]float64, m)
		la.MatVecMul(Bc, 1, Bd, c)
		resid := make([]float64, m)
		copy(resid, y)
		la.VecAdd(resid, -1, Bc)
		residNorm := la.VecNorm(resid)
		sigma2 := residNorm * residNorm / (float64(m) - float64(d) - ED)

		if tau2 == 0 {
			io.Pfred("HFS iteration %d: tau^2 == 0, stopping with last valid lambda=%v\n", iter, lambda)
			break
		}
		lambda = sigma2 / tau2
		A = addScaled(BtWB, DtD, lambda)
		io.Pforan("HFS iteration %d: ED=%v lambda=%v\n", iter, ED, lambda)
	}

	var Asp *la.Triplet
	if len(A) >= sparseThreshold {
		Asp = denseToSparse(A)
	}
	cFinal, err := solveLinearSystem(Asp, A, BtWy)
	if err != nil {
		return nil, 0, errs.New(errs.SolverFailure, "PSPLINE solve failed: %v", err)
	}
	return cFinal, lambda, nil
}

func addScaled(A, B [][]float64, scale float64) [][]float64 {
	rows := len(A)
	cols := len(A[0])
	out := la.MatAlloc(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[i][j] = A[i][j] + scale*B[i][j]
		}
	}
	return out
}
