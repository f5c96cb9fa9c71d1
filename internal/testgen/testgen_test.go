// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testgen

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestGrid1DIsComplete(tst *testing.T) {
	chk.PrintTitle("testgen Grid1D produces a complete grid")
	s := Grid1D(1, 9, 0, 8, func(x float64) float64 { return x * x }, 0)
	chk.Int(tst, "m", s.M(), 9)
	if !s.IsGridComplete() {
		tst.Errorf("expected a complete 1-D grid")
	}
}

func TestGrid2DIsComplete(tst *testing.T) {
	chk.PrintTitle("testgen Grid2D produces a complete grid")
	s := Grid2D(2, 4, 5, 0, 3, 0, 4, func(x0, x1 float64) float64 { return x0 + x1 }, 0)
	chk.Int(tst, "m", s.M(), 20)
	if !s.IsGridComplete() {
		tst.Errorf("expected a complete 2-D grid")
	}
}

func TestNoisySine1DDeterministic(tst *testing.T) {
	chk.PrintTitle("testgen NoisySine1D is deterministic for a fixed seed")
	a := NoisySine1D(7, 20, 0, 10, 0.1)
	b := NoisySine1D(7, 20, 0, 10, 0.1)
	for i, sa := range a.Samples() {
		sb := b.Samples()[i]
		chk.Scalar(tst, "x", 1e-15, sa.X[0], sb.X[0])
		chk.Scalar(tst, "y", 1e-15, sa.Y, sb.Y)
	}
}
