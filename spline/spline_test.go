// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spline

import (
	"testing"

	"github.com/cpmech/gobsp/basis"
	"github.com/cpmech/gosl/chk"
)

func clampedAxis(lo, hi float64, p, interior int) basis.Axis {
	k := make([]float64, 0, 2*(p+1)+interior)
	for i := 0; i < p+1; i++ {
		k = append(k, lo)
	}
	for i := 1; i <= interior; i++ {
		k = append(k, lo+(hi-lo)*float64(i)/float64(interior+1))
	}
	for i := 0; i < p+1; i++ {
		k = append(k, hi)
	}
	return basis.Axis{Knots: k, Degree: p}
}

func TestNewDimensionMismatch(tst *testing.T) {
	chk.PrintTitle("spline.New: coefficient count mismatch")
	axes := []basis.Axis{clampedAxis(0, 1, 1, 0)} // n=2
	_, err := New(axes, []float64{1, 2, 3})
	if err == nil {
		tst.Errorf("expected a DimensionMismatch error")
	}
}

func TestEvalLinearReproduction(tst *testing.T) {
	// S4: a degree-1 spline whose coefficients equal its knot abscissae
	// reproduces a linear function exactly.
	chk.PrintTitle("spline.Eval: degree-1 linear reproduction (S4-like)")
	axes := []basis.Axis{clampedAxis(0, 2, 1, 1)} // knots 0,0,1,2,2 -> n=3
	sp, err := New(axes, []float64{0, 1, 2})
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	for _, x := range []float64{0, 0.3, 1.0, 1.7, 2.0} {
		v, err := sp.Eval([]float64{x})
		if err != nil {
			tst.Errorf("eval failed: %v", err)
			continue
		}
		chk.Scalar(tst, "eval(x)==x", 1e-12, v, x)
	}
}

func TestEvalDimensionMismatch(tst *testing.T) {
	chk.PrintTitle("spline.Eval: wrong-arity query")
	axes := []basis.Axis{clampedAxis(0, 1, 1, 0)}
	sp, err := New(axes, []float64{1, 2})
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	_, err = sp.Eval([]float64{0, 0})
	if err == nil {
		tst.Errorf("expected a DimensionMismatch error")
	}
}

func TestNumBasisFunctions(tst *testing.T) {
	chk.PrintTitle("spline.NumBasisFunctions: tensor product count")
	axes := []basis.Axis{clampedAxis(0, 1, 1, 0), clampedAxis(0, 1, 1, 0)}
	sp, err := New(axes, make([]float64, 4))
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	N, nAxis := sp.NumBasisFunctions()
	chk.Int(tst, "N", N, 4)
	chk.Ints(tst, "nAxis", nAxis, []int{2, 2})
}
