// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve assembles the normal equations for a fit's smoothing
// mode and solves them, auto-tuning the P-spline smoothing parameter via
// Harville-Fellner-Schall (HFS) fixed-point iteration when requested.
package solve

import (
	"github.com/cpmech/gobsp/assemble"
	"github.com/cpmech/gobsp/errs"
	"github.com/cpmech/gosl/la"
)

// Mode mirrors the Builder's smoothing enum (§6 codes 0,1,2).
type Mode int

const (
	None Mode = iota
	Identity
	PSpline
)

// Result is what a completed solve hands back to the Builder facade.
type Result struct {
	C      []float64 // fitted coefficients, length N
	Lambda float64   // final smoothing parameter (meaningful only for PSpline)
}

// Solve assembles A, b per mode and returns the fitted coefficients.
//   - None: A = B, b = y.
//   - Identity: A = BtB + alpha*I, b = Bt*y.
//   - PSpline: A = BtWB + lambda*DtD, b = Bt*W*y, with lambda auto-tuned
//     by hfsIters rounds of HFS starting from lambda = alpha.
//
// B stays the sparse Triplet assemble.Build produced for every mode until
// a branch actually needs a dense copy: IDENTITY's normal-equation build,
// PSPLINE's HFS matrix inverse, NONE's least-squares fit (m!=N), and the
// m==N interpolation case whenever the sparse solver is not tried
// (fewer than sparseThreshold rows) or fails.
//
// nAxes is the sample dimensionality d, used in HFS's (m-d-ED) denominator.
func Solve(sys *assemble.System, D *la.Triplet, mode Mode, alpha float64, hfsIters, nAxes int) (*Result, error) {
	m, N := sys.M, sys.N

	switch mode {
	case None:
		c, err := solveNone(sys.B, sys.Y, m, N)
		if err != nil {
			return nil, err
		}
		return &Result{C: c, Lambda: alpha}, nil

	case Identity:
		Bd := sys.B.ToMatrix(nil).ToDense()
		Bt := transposeDense(Bd)
		BtB := denseMatMul(Bt, Bd)
		addDiag(BtB, alpha)
		bty := make([]float64, N)
		la.MatVecMul(bty, 1, Bt, sys.Y)
		var Asp *la.Triplet
		if N >= sparseThreshold {
			Asp = denseToSparse(BtB)
		}
		c, err := solveLinearSystem(Asp, BtB, bty)
		if err != nil {
			return nil, err
		}
		return &Result{C: c, Lambda: alpha}, nil

	case PSpline:
		if D == nil {
			return nil, errs.New(errs.InvalidArgument, "PSPLINE smoothing requires a penalty matrix")
		}
		Bd := sys.B.ToMatrix(nil).ToDense()
		Dd := D.ToMatrix(nil).ToDense()
		c, lambda, err := hfsFit(Bd, Dd, sys.Y, sys.Weights, alpha, hfsIters, m, N, nAxes)
		if err != nil {
			return nil, err
		}
		return &Result{C: c, Lambda: lambda}, nil
	}
	return nil, errs.New(errs.InvalidArgument, "unknown smoothing mode %d", mode)
}

// solveNone handles the NONE case: an interpolation (m==N), handed to
// solveLinearSystem as B's own Triplet (sparse LU first when m reaches
// sparseThreshold, otherwise or on failure densified for the dense
// fallback), or a rectangular
// least-squares fit (m!=N), which has no sparse counterpart here and so
// densifies B directly for the generalized inverse.
func solveNone(Bsp *la.Triplet, y []float64, m, N int) ([]float64, error) {
	if m == N {
		return solveLinearSystem(Bsp, nil, y)
	}
	Bd := Bsp.ToMatrix(nil).ToDense()
	Binv := la.MatAlloc(N, m)
	err := la.MatInvG(Binv, Bd, 1e-10)
	if err != nil {
		return nil, errs.New(errs.SolverFailure, "least-squares fit failed: %v", err)
	}
	c := make([]float64, N)
	la.MatVecMul(c, 1, Binv, y)
	return c, nil
}

func addDiag(A [][]float64, v float64) {
	for i := range A {
		A[i][i] += v
	}
}
