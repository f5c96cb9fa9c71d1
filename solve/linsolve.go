// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"github.com/cpmech/gobsp/errs"
	"github.com/cpmech/gosl/la"
)

// sparseThreshold is the row count at or above which a sparse LU attempt
// is made before falling back to the dense solve (§4.4, §9).
const sparseThreshold = 100

// solveLinearSystem solves A*c = b for square A, attempting a sparse LU
// factorization (mirroring fem/s_linimp.go's d.LinSol.InitR/Fact/SolveR
// idiom against the same Triplet gofem's domain.go picks via
// la.GetSolver) when q = rows(A) >= sparseThreshold, falling back to a
// dense generalized inverse on failure or when q is small. Ad may be nil
// -- it is only materialized (from Asp) lazily, the moment a dense solve
// actually becomes necessary, so a caller holding just the sparse Asp
// never pays for ToDense() when the sparse attempt succeeds.
func solveLinearSystem(Asp *la.Triplet, Ad [][]float64, b []float64) ([]float64, error) {
	q := len(b)
	if q >= sparseThreshold && Asp != nil {
		c, err := trySparse(Asp, b)
		if err == nil {
			return c, nil
		}
	}
	if Ad == nil {
		Ad = Asp.ToMatrix(nil).ToDense()
	}
	return solveDenseOnly(Ad, b)
}

func trySparse(Asp *la.Triplet, b []float64) ([]float64, error) {
	solver := la.GetSolver("umfpack")
	defer solver.Clean()
	err := solver.InitR(Asp, false, false, false)
	if err != nil {
		return nil, err
	}
	err = solver.Fact()
	if err != nil {
		return nil, err
	}
	c := make([]float64, len(b))
	err = solver.SolveR(c, b, false)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// solveDenseOnly is the dense fallback: the spec's "dense QR" is realized
// with la.MatInvG, the generalized/pseudo-inverse gofem itself reaches for
// on a possibly ill-conditioned dense system (msolid/princstrainsup.go).
func solveDenseOnly(Ad [][]float64, b []float64) ([]float64, error) {
	n := len(Ad)
	Ainv := la.MatAlloc(n, n)
	err := la.MatInvG(Ainv, Ad, 1e-10)
	if err != nil {
		return nil, errs.New(errs.SolverFailure, "dense solve failed: %v", err)
	}
	c := make([]float64, n)
	la.MatVecMul(c, 1, Ainv, b)
	return c, nil
}

// denseToSparse re-triplets a dense square matrix so the sparse-LU path
// can be exercised even for normal equations that were assembled densely.
func denseToSparse(Ad [][]float64) *la.Triplet {
	n := len(Ad)
	nnz := 0
	for i := range Ad {
		for range Ad[i] {
			nnz++
		}
	}
	T := new(la.Triplet)
	T.Init(n, n, nnz)
	for i := range Ad {
		for j, v := range Ad[i] {
			T.Put(i, j, v)
		}
	}
	return T
}
