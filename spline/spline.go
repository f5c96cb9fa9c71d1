// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spline holds the immutable built result of a fit: per-axis
// knot vectors and degrees, and the flat coefficient vector, together
// with the evaluator the fit is queried through.
package spline

import (
	"github.com/cpmech/gobsp/basis"
	"github.com/cpmech/gobsp/errs"
)

// Spline is immutable after construction. Safe to read concurrently from
// multiple goroutines (§5): every method only reads its fields.
type Spline struct {
	axes []basis.Axis
	c    []float64
}

// New bundles per-axis knot vectors/degrees with a coefficient vector.
// len(c) must equal the product of the per-axis basis counts.
func New(axes []basis.Axis, c []float64) (*Spline, error) {
	nAxis := make([]int, len(axes))
	for i, a := range axes {
		nAxis[i] = a.NumBasis()
	}
	N := basis.NumCoefficients(nAxis)
	if len(c) != N {
		return nil, errs.New(errs.DimensionMismatch, "expected %d coefficients, got %d", N, len(c))
	}
	cc := make([]float64, len(c))
	copy(cc, c)
	return &Spline{axes: axes, c: cc}, nil
}

// NumVariables returns d
func (o *Spline) NumVariables() int { return len(o.axes) }

// NumBasisFunctions returns N and the per-axis basis counts [n0...n_{d-1}]
func (o *Spline) NumBasisFunctions() (N int, nAxis []int) {
	nAxis = make([]int, len(o.axes))
	for i, a := range o.axes {
		nAxis[i] = a.NumBasis()
	}
	N = basis.NumCoefficients(nAxis)
	return
}

// Knots returns axis a's knot vector
func (o *Spline) Knots(axis int) []float64 { return o.axes[axis].Knots }

// Degree returns axis a's degree
func (o *Spline) Degree(axis int) int { return o.axes[axis].Degree }

// EvalBasis returns the sparse length-N basis row at x
func (o *Spline) EvalBasis(x []float64) (basis.Row, error) {
	return basis.TensorEval(o.axes, x)
}

// Eval returns <evalBasis(x), c>. Fails with DimensionMismatch if
// len(x) != d.
func (o *Spline) Eval(x []float64) (float64, error) {
	if len(x) != len(o.axes) {
		return 0, errs.New(errs.DimensionMismatch, "expected %d coordinates, got %d", len(o.axes), len(x))
	}
	row, err := basis.TensorEval(o.axes, x)
	if err != nil {
		return 0, err
	}
	val := 0.0
	for i, col := range row.Cols {
		val += row.Vals[i] * o.c[col]
	}
	return val, nil
}

// Coefficients returns a read-only copy of c
func (o *Spline) Coefficients() []float64 {
	cc := make([]float64, len(o.c))
	copy(cc, o.c)
	return cc
}
