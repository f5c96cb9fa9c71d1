// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testgen generates deterministic synthetic scattered/gridded
// samples for the solver and builder test suites, beyond the literal
// S1-S6 fixtures in the specification. Seeded with gosl/rnd so a test
// run is reproducible.
package testgen

import (
	"math"

	"github.com/cpmech/gobsp/store"
	"github.com/cpmech/gosl/rnd"
)

// Grid1D builds a complete 1-D grid store of n points over [lo,hi] with
// y = f(x), optionally perturbed by additive Gaussian noise of standard
// deviation noiseStd (0 for a noise-free grid).
func Grid1D(seed int, n int, lo, hi float64, f func(x float64) float64, noiseStd float64) *store.Store {
	rnd.Init(seed)
	s := store.New()
	for i := 0; i < n; i++ {
		x := lo + (hi-lo)*float64(i)/float64(n-1)
		y := f(x)
		if noiseStd > 0 {
			y += rnd.Normal(0, noiseStd)
		}
		s.Add([]float64{x}, y)
	}
	return s
}

// Grid2D builds a complete nx*ny grid store over [lo0,hi0]x[lo1,hi1]
// with y = f(x0,x1), optionally perturbed by additive Gaussian noise.
func Grid2D(seed int, nx, ny int, lo0, hi0, lo1, hi1 float64, f func(x0, x1 float64) float64, noiseStd float64) *store.Store {
	rnd.Init(seed)
	s := store.New()
	for i := 0; i < nx; i++ {
		x0 := lo0 + (hi0-lo0)*float64(i)/float64(nx-1)
		for j := 0; j < ny; j++ {
			x1 := lo1 + (hi1-lo1)*float64(j)/float64(ny-1)
			y := f(x0, x1)
			if noiseStd > 0 {
				y += rnd.Normal(0, noiseStd)
			}
			s.Add([]float64{x0, x1}, y)
		}
	}
	return s
}

// NoisySine1D is a standard test surface: sin(2*pi*(x-lo)/(hi-lo)) perturbed
// by additive Gaussian noise -- the "noisy-like" data §8's scenario S3
// hints at, scaled up beyond 5 literal points.
func NoisySine1D(seed, n int, lo, hi, noiseStd float64) *store.Store {
	return Grid1D(seed, n, lo, hi, func(x float64) float64 {
		return math.Sin(2 * math.Pi * (x - lo) / (hi - lo))
	}, noiseStd)
}

// QuadraticBowl2D is a standard test surface: a paraboloid in two
// variables, perturbed by additive Gaussian noise.
func QuadraticBowl2D(seed, nx, ny int, lo0, hi0, lo1, hi1, noiseStd float64) *store.Store {
	return Grid2D(seed, nx, ny, lo0, hi0, lo1, hi1, func(x0, x1 float64) float64 {
		return x0*x0 + x1*x1
	}, noiseStd)
}
