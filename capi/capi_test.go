// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capi

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// S1 through the handle-based surface: 5 points, degree 3, AS_SAMPLED,
// NONE smoothing interpolates exactly.
func TestCapiEndToEndInterpolation(tst *testing.T) {
	chk.PrintTitle("capi end-to-end: S1 through handles")

	st := NewStore()
	if GetError() {
		tst.Fatalf("NewStore failed: %s", GetErrorString())
	}

	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0, 1, 4, 9, 16}
	// column-major, cols = d+1 = 2
	data := make([]float64, 0, len(xs)*2)
	data = append(data, xs...)
	data = append(data, ys...)
	AddSamplesColMajor(st, data, len(xs), 2)
	if GetError() {
		tst.Fatalf("AddSamplesColMajor failed: %s", GetErrorString())
	}

	bd := NewBuilder(st)
	if GetError() {
		tst.Fatalf("NewBuilder failed: %s", GetErrorString())
	}

	sp := Build(bd)
	if GetError() {
		tst.Fatalf("Build failed: %s", GetErrorString())
	}

	if NumVariables(sp) != 1 {
		tst.Errorf("expected d=1, got %d", NumVariables(sp))
	}

	for i, x := range xs {
		v := EvalRowMajor(sp, []float64{x})
		if GetError() {
			tst.Errorf("eval failed: %s", GetErrorString())
			continue
		}
		chk.Scalar(tst, "eval(x)==y", 1e-9, v, ys[i])
	}

	DeleteSpline(sp)
	DeleteBuilder(bd)
	DeleteStore(st)
}

func TestCapiNullHandle(tst *testing.T) {
	chk.PrintTitle("capi null-handle error channel")
	bogus := Handle(999999)
	v := EvalRowMajor(bogus, []float64{0})
	if !GetError() {
		tst.Errorf("expected error for unknown handle")
	}
	if v != 0 {
		tst.Errorf("expected zero result on error, got %v", v)
	}
}

func TestCapiAddColumnsQuirk(tst *testing.T) {
	chk.PrintTitle("capi AddSamplesColMajor derives d = cols-1")
	st := NewStore()
	data := []float64{0, 1, 2, 10, 20, 30}
	AddSamplesColMajor(st, data, 3, 2) // d=1, m=3
	if GetError() {
		tst.Fatalf("unexpected error: %s", GetErrorString())
	}
	bd := NewBuilder(st)
	// 3 unique values support at most degree 2 under AS_SAMPLED
	SetDegree(bd, []int{2})
	if NumVariables(Build(bd)) != 1 {
		tst.Errorf("expected d=1 derived from cols-1")
	}
}
