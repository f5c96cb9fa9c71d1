// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagnostics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gobsp/basis"
	"github.com/cpmech/gobsp/spline"
	"github.com/cpmech/gobsp/store"
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

func TestPlotFit1DWrongDimension(tst *testing.T) {
	chk.PrintTitle("diagnostics PlotFit1D rejects a 2-D spline")
	axes := []basis.Axis{clampedAxis(0, 1, 1, 0), clampedAxis(0, 1, 1, 0)}
	sp, err := spline.New(axes, make([]float64, 4))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	st := store.New()
	st.Add([]float64{0, 0}, 0)
	dir := tst.TempDir()
	err = PlotFit1D(sp, st, 10, filepath.Join(dir, "fit.png"))
	if err == nil {
		tst.Errorf("expected a DimensionMismatch error")
	}
}

func TestPlotFit1DSaves(tst *testing.T) {
	chk.PrintTitle("diagnostics PlotFit1D renders a 1-D fit")
	axes := []basis.Axis{clampedAxis(0, 4, 1, 3)}
	sp, err := spline.New(axes, []float64{0, 1, 4, 9, 16})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	st := store.New()
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0, 1, 4, 9, 16}
	for i, x := range xs {
		st.Add([]float64{x}, ys[i])
	}
	dir := tst.TempDir()
	out := filepath.Join(dir, "fit.png")
	if err := PlotFit1D(sp, st, 20, out); err != nil {
		tst.Errorf("unexpected error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		tst.Errorf("expected a saved plot file: %v", err)
	}
}
