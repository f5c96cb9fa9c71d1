// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assemble

import (
	"testing"

	"github.com/cpmech/gobsp/basis"
	"github.com/cpmech/gobsp/store"
	"github.com/cpmech/gosl/chk"
)

func oneAxis(lo, hi float64, p, interior int) basis.Axis {
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

func TestBuildRowsSumToOne(tst *testing.T) {
	chk.PrintTitle("assemble B: every row partitions unity")
	axes := []basis.Axis{oneAxis(0, 4, 3, 1)}
	s := store.New()
	for _, x := range []float64{0, 1, 2, 3, 4} {
		s.Add([]float64{x}, x*x)
	}
	sys, err := Build(axes, s.Samples(), nil)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	chk.Int(tst, "M", sys.M, 5)
	Bd := sys.B.ToMatrix(nil).ToDense()
	for i, row := range Bd {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		chk.Scalar(tst, "row sum", 1e-12, sum, 1.0)
		_ = i
	}
}

func TestBuildWeightsIdentityByDefault(tst *testing.T) {
	chk.PrintTitle("assemble W: identity when unweighted")
	axes := []basis.Axis{oneAxis(0, 4, 3, 1)}
	s := store.New()
	for _, x := range []float64{0, 1, 2, 3, 4} {
		s.Add([]float64{x}, x)
	}
	sys, err := Build(axes, s.Samples(), nil)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	Wd := sys.W.ToMatrix(nil).ToDense()
	for i := range Wd {
		for j := range Wd[i] {
			expected := 0.0
			if i == j {
				expected = 1.0
			}
			chk.Scalar(tst, "W[i][j]", 1e-15, Wd[i][j], expected)
		}
	}
}

func TestBuildWeightsCustom(tst *testing.T) {
	chk.PrintTitle("assemble W: custom per-sample weights")
	axes := []basis.Axis{oneAxis(0, 4, 3, 1)}
	s := store.New()
	for _, x := range []float64{0, 1, 2, 3, 4} {
		s.Add([]float64{x}, x)
	}
	w := []float64{1, 2, 3, 4, 5}
	sys, err := Build(axes, s.Samples(), w)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	Wd := sys.W.ToMatrix(nil).ToDense()
	for i := range w {
		chk.Scalar(tst, "W[i][i]", 1e-15, Wd[i][i], w[i])
	}
}

func TestBuildDimensionMismatch(tst *testing.T) {
	chk.PrintTitle("assemble: sample/axis dimension mismatch")
	axes := []basis.Axis{oneAxis(0, 4, 3, 1), oneAxis(0, 4, 3, 1)}
	samples := []store.Sample{{X: []float64{1}, Y: 0}}
	_, err := Build(axes, samples, nil)
	if err == nil {
		tst.Errorf("expected a DimensionMismatch error")
	}
}
