// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assemble

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestPenalty1D(tst *testing.T) {
	chk.PrintTitle("penalty D, 1D second difference")
	D, err := BuildPenalty([]int{5})
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	Dm := D.ToMatrix(nil).ToDense()
	expected := [][]float64{
		{1, -2, 1, 0, 0},
		{0, 1, -2, 1, 0},
		{0, 0, 1, -2, 1},
	}
	chk.Int(tst, "rows", len(Dm), len(expected))
	for i := range expected {
		chk.Array(tst, "row", 1e-15, Dm[i], expected[i])
	}
}

func TestPenaltyTooFewBasis(tst *testing.T) {
	chk.PrintTitle("penalty precondition: fewer than 3 basis functions")
	_, err := BuildPenalty([]int{4, 2})
	if err == nil {
		tst.Errorf("expected a Precondition error")
	}
}

func TestPenalty2DRowCount(tst *testing.T) {
	chk.PrintTitle("penalty 2D total row count")
	D, err := BuildPenalty([]int{3, 4})
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	// axis a=0 (reversed, dims=[4,3]): right=3, left=1, rows=3*1*2=6
	// axis a=1: right=1, left=4, rows=1*4*1=4
	Dm := D.ToMatrix(nil).ToDense()
	chk.Int(tst, "rows", len(Dm), 10)
	chk.Int(tst, "cols", len(Dm[0]), 12)
}
