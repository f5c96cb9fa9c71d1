// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gobsp

import (
	"testing"

	"github.com/cpmech/gobsp/internal/testgen"
	"github.com/cpmech/gosl/chk"
)

// S4: a 3x3 grid x_ij=(i,j) for i,j in {0,1,2}, y_ij=i+j, degree=[2,2],
// AS_SAMPLED, NONE. The tensor-product basis reproduces a linear function
// exactly, so eval(0.5,0.5)==1.0 not just at the sample points but also
// strictly between them -- the only invariant in §8 that requires a real
// d=2 fit through the full Builder.Build() pipeline (knot -> assemble ->
// solve -> spline), not just a statically-assembled tensor basis.
func TestBuildS4Grid2D(tst *testing.T) {
	chk.PrintTitle("Builder.Build: 3x3 grid, degree=[2,2], AS_SAMPLED, NONE (S4)")

	s := testgen.Grid2D(0, 3, 3, 0, 2, 0, 2, func(x0, x1 float64) float64 {
		return x0 + x1
	}, 0)

	b, err := New(s)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	if _, err = b.SetDegrees([]int{2, 2}); err != nil {
		tst.Fatalf("SetDegrees failed: %v", err)
	}

	sp, err := b.Build()
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}

	v, err := sp.Eval([]float64{0.5, 0.5})
	if err != nil {
		tst.Fatalf("eval failed: %v", err)
	}
	chk.Scalar(tst, "eval(0.5,0.5)", 1e-9, v, 1.0)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x := []float64{float64(i), float64(j)}
			v, err := sp.Eval(x)
			if err != nil {
				tst.Errorf("eval(%v) failed: %v", x, err)
				continue
			}
			chk.Scalar(tst, "eval(sample)==y", 1e-9, v, float64(i+j))
		}
	}
}

// A noisier d=2 fit through the same pipeline: a PSPLINE-smoothed
// paraboloid bowl, using testgen.QuadraticBowl2D (until now generated but
// never actually fit against).
func TestBuildPSplineQuadraticBowl2D(tst *testing.T) {
	chk.PrintTitle("Builder.Build: PSPLINE fit of a noisy 2-D quadratic bowl")

	s := testgen.QuadraticBowl2D(7, 9, 9, -2, 2, -2, 2, 0.02)

	b, err := New(s)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	if _, err = b.SetDegrees([]int{3, 3}); err != nil {
		tst.Fatalf("SetDegrees failed: %v", err)
	}
	if _, err = b.SetSmoothing(PSpline); err != nil {
		tst.Fatalf("SetSmoothing failed: %v", err)
	}
	if _, err = b.SetAlpha(0.01); err != nil {
		tst.Fatalf("SetAlpha failed: %v", err)
	}

	sp, err := b.Build()
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}

	v, err := sp.Eval([]float64{0, 0})
	if err != nil {
		tst.Fatalf("eval failed: %v", err)
	}
	chk.Scalar(tst, "eval(0,0) near bowl minimum", 0.1, v, 0.0)
}
