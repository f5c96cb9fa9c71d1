// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagnostics optionally renders a fitted Spline against the
// samples it was built from, the way out/plotting.go renders FEM field
// output against measured/expected data. Never called from
// Builder.Build() itself -- a caller opts in explicitly.
package diagnostics

import (
	"github.com/cpmech/gobsp/errs"
	"github.com/cpmech/gobsp/spline"
	"github.com/cpmech/gobsp/store"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PlotFit1D plots sp against st's samples on the single axis 0, saving a
// PNG to path. Fails with DimensionMismatch if sp is not 1-D.
func PlotFit1D(sp *spline.Spline, st *store.Store, npts int, path string) error {
	if sp.NumVariables() != 1 {
		return errs.New(errs.DimensionMismatch, "PlotFit1D needs a 1-D spline, got d=%d", sp.NumVariables())
	}
	lo, hi := st.AxisExtent(0)
	xs := make([]float64, npts)
	ys := make([]float64, npts)
	for i := 0; i < npts; i++ {
		t := lo + (hi-lo)*float64(i)/float64(npts-1)
		v, err := sp.Eval([]float64{t})
		if err != nil {
			return err
		}
		xs[i] = t
		ys[i] = v
	}
	sx := make([]float64, st.M())
	sy := make([]float64, st.M())
	for i, s := range st.Samples() {
		sx[i] = s.X[0]
		sy[i] = s.Y
	}

	plt.Plot(xs, ys, io.Sf("'b-', clip_on=0, label='%s'", "fit"))
	plt.Plot(sx, sy, "'ko', clip_on=0, label='samples'")
	plt.Gll("$x$", "$y$", "")
	plt.SaveD("", path)
	return nil
}

// PlotFit2D plots sp as a contour/heatmap over a regular grid spanning
// axes 0 and 1's data extent, saving a PNG to path. Fails with
// DimensionMismatch if sp is not 2-D.
func PlotFit2D(sp *spline.Spline, st *store.Store, npts int, path string) error {
	if sp.NumVariables() != 2 {
		return errs.New(errs.DimensionMismatch, "PlotFit2D needs a 2-D spline, got d=%d", sp.NumVariables())
	}
	lo0, hi0 := st.AxisExtent(0)
	lo1, hi1 := st.AxisExtent(1)
	grid := make([][]float64, npts)
	for i := 0; i < npts; i++ {
		grid[i] = make([]float64, npts)
		x0 := lo0 + (hi0-lo0)*float64(i)/float64(npts-1)
		for j := 0; j < npts; j++ {
			x1 := lo1 + (hi1-lo1)*float64(j)/float64(npts-1)
			v, err := sp.Eval([]float64{x0, x1})
			if err != nil {
				return err
			}
			grid[i][j] = v
		}
	}
	plt.ContourSimple(linspace(lo0, hi0, npts), linspace(lo1, hi1, npts), grid, "colors=['black'], clip_on=0")
	plt.Gll("$x_0$", "$x_1$", "")
	plt.SaveD("", path)
	return nil
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}
