// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"github.com/cpmech/gosl/la"
)

// transposeDense returns Aᵀ. gosl's dense-matrix surface (MatMul,
// MatTrMul3, MatInv, MatInvG) has no standalone transpose primitive --
// every teacher use of a transpose builds it into a fused op (MatTrMul3,
// MatTrVecMulAdd) against a matrix that is itself the other operand. Here
// a transpose is needed on its own (to reuse the plain two-matrix
// la.MatMul for BtB/DtD instead of paying for an m x m or rows(D) x rows(D)
// identity just to satisfy MatTrMul3's three-matrix shape), so a direct
// loop stands in.
func transposeDense(A [][]float64) [][]float64 {
	rows := len(A)
	if rows == 0 {
		return nil
	}
	cols := len(A[0])
	At := la.MatAlloc(cols, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			At[j][i] = A[i][j]
		}
	}
	return At
}

// denseMatMul wraps la.MatMul (dest = alpha*a*b) with an allocated
// destination, mirroring shp/algos.go's la.MatMul(o.G, 1, o.DSdR, o.DRdx).
func denseMatMul(a, b [][]float64) [][]float64 {
	rows := len(a)
	cols := len(b[0])
	dest := la.MatAlloc(rows, cols)
	la.MatMul(dest, 1, a, b)
	return dest
}

// rowScale returns A with row i multiplied by diag[i] -- applying a
// diagonal weight matrix without ever materializing it densely.
func rowScale(A [][]float64, diag []float64) [][]float64 {
	rows := len(A)
	scaled := la.MatAlloc(rows, len(A[0]))
	for i := 0; i < rows; i++ {
		for j := range A[i] {
			scaled[i][j] = A[i][j] * diag[i]
		}
	}
	return scaled
}

// vecScale returns v with entry i multiplied by diag[i].
func vecScale(v, diag []float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i] * diag[i]
	}
	return out
}

func trace(A [][]float64) float64 {
	sum := 0.0
	for i := range A {
		sum += A[i][i]
	}
	return sum
}
