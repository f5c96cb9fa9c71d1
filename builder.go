// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gobsp builds and evaluates tensor-product B-spline regression
// fits over scattered or gridded samples, with an optional P-spline
// smoothness penalty whose weight can be auto-tuned by Harville-Fellner-
// Schall (HFS) iteration.
//
// The pipeline is Store -> Builder.Build() -> Spline: populate a
// store.Store with (x,y) samples, configure a Builder from it, and call
// Build to run knot synthesis, system assembly and the regularized solve
// in one pass.
package gobsp

import (
	"math"

	"github.com/cpmech/gobsp/assemble"
	"github.com/cpmech/gobsp/basis"
	"github.com/cpmech/gobsp/errs"
	"github.com/cpmech/gobsp/knot"
	"github.com/cpmech/gobsp/solve"
	"github.com/cpmech/gobsp/spline"
	"github.com/cpmech/gobsp/store"
	"github.com/cpmech/gosl/la"
)

// KnotSpacing mirrors knot.Spacing at the Builder's public surface.
type KnotSpacing = knot.Spacing

// knot spacing policies (§3, §6 codes 0,1,2)
const (
	AsSampled   = knot.AsSampled
	Equidistant = knot.Equidistant
	Experimental = knot.Experimental
)

// Smoothing mirrors solve.Mode at the Builder's public surface.
type Smoothing = solve.Mode

// smoothing modes (§3, §6 codes 0,1,2)
const (
	NoSmoothing = solve.None
	Identity    = solve.Identity
	PSpline     = solve.PSpline
)

// Bound is a per-axis [lo,hi] override; NaN in a slot means "use the
// data extent". See knot.Bound.
type Bound = knot.Bound

// Builder accumulates fit configuration against a value-captured
// snapshot of a sample store, validates it, and orchestrates knot
// synthesis -> assembly -> solve -> Spline (§4.5). Not thread-safe; a
// Builder, like the Store it snapshots, must not be shared across
// goroutines while being configured.
type Builder struct {
	samples []store.Sample
	d       int
	m       int

	degrees           []int
	numBasisFunctions []int
	knotSpacing       KnotSpacing
	smoothing         Smoothing
	alpha             float64
	padding           float64
	weights           []float64
	bounds            []Bound
	hfsIters          int
	allowScattered    bool
}

// New snapshots s's current samples and returns a Builder with the
// spec's defaults: degree 3 on every axis, numBasisFunctions all-zero
// ("derive from samples"), AS_SAMPLED spacing, no smoothing, alpha=0.1,
// no padding, no weights, no bound overrides, hfsIters=0.
func New(s *store.Store) (*Builder, error) {
	d := s.D()
	if d == 0 {
		return nil, errs.New(errs.Precondition, "sample store is empty")
	}
	samples := make([]store.Sample, len(s.Samples()))
	copy(samples, s.Samples())

	degrees := make([]int, d)
	numBasisFunctions := make([]int, d)
	for a := 0; a < d; a++ {
		degrees[a] = 3
	}
	return &Builder{
		samples:           samples,
		d:                 d,
		m:                 len(samples),
		degrees:           degrees,
		numBasisFunctions: numBasisFunctions,
		knotSpacing:       AsSampled,
		smoothing:         NoSmoothing,
		alpha:             0.1,
		padding:           0,
	}, nil
}

// SetDegrees sets the per-axis polynomial degree, each in [0,5].
func (o *Builder) SetDegrees(degrees []int) (*Builder, error) {
	if len(degrees) != o.d {
		return o, errs.New(errs.InvalidArgument, "degrees has %d entries, expected %d", len(degrees), o.d)
	}
	for _, p := range degrees {
		if p < 0 || p > 5 {
			return o, errs.New(errs.InvalidArgument, "degree %d out of range [0,5]", p)
		}
	}
	o.degrees = append([]int(nil), degrees...)
	return o, nil
}

// SetNumBasisFunctions sets the per-axis basis-function count; 0 on an
// axis means "derive from samples".
func (o *Builder) SetNumBasisFunctions(n []int) (*Builder, error) {
	if len(n) != o.d {
		return o, errs.New(errs.InvalidArgument, "numBasisFunctions has %d entries, expected %d", len(n), o.d)
	}
	o.numBasisFunctions = append([]int(nil), n...)
	return o, nil
}

// SetKnotSpacing sets the knot-construction policy.
func (o *Builder) SetKnotSpacing(spacing KnotSpacing) (*Builder, error) {
	if spacing != AsSampled && spacing != Equidistant && spacing != Experimental {
		return o, errs.New(errs.InvalidArgument, "unknown knot spacing code %d", spacing)
	}
	o.knotSpacing = spacing
	return o, nil
}

// SetSmoothing sets the smoothing mode.
func (o *Builder) SetSmoothing(mode Smoothing) (*Builder, error) {
	if mode != NoSmoothing && mode != Identity && mode != PSpline {
		return o, errs.New(errs.InvalidArgument, "unknown smoothing code %d", mode)
	}
	o.smoothing = mode
	return o, nil
}

// SetAlpha sets the regularization weight (>= 0).
func (o *Builder) SetAlpha(alpha float64) (*Builder, error) {
	if alpha < 0 {
		return o, errs.New(errs.InvalidArgument, "alpha must be >= 0, got %v", alpha)
	}
	o.alpha = alpha
	return o, nil
}

// SetPadding sets the EQUIDISTANT fractional padding (>= 0).
func (o *Builder) SetPadding(padding float64) (*Builder, error) {
	if padding < 0 {
		return o, errs.New(errs.InvalidArgument, "padding must be >= 0, got %v", padding)
	}
	o.padding = padding
	return o, nil
}

// SetWeights sets per-sample weights; must be empty or length m.
func (o *Builder) SetWeights(weights []float64) (*Builder, error) {
	if len(weights) != 0 && len(weights) != o.m {
		return o, errs.New(errs.InvalidArgument, "weights has %d entries, expected 0 or %d", len(weights), o.m)
	}
	o.weights = append([]float64(nil), weights...)
	return o, nil
}

// SetBounds sets per-axis [lo,hi] overrides; must be empty or length d.
func (o *Builder) SetBounds(bounds []Bound) (*Builder, error) {
	if len(bounds) != 0 && len(bounds) != o.d {
		return o, errs.New(errs.InvalidArgument, "bounds has %d entries, expected 0 or %d", len(bounds), o.d)
	}
	o.bounds = append([]Bound(nil), bounds...)
	return o, nil
}

// SetHFSIters sets the number of HFS fixed-point iterations (PSPLINE only).
func (o *Builder) SetHFSIters(n int) (*Builder, error) {
	if n < 0 {
		return o, errs.New(errs.InvalidArgument, "hfsIters must be >= 0, got %d", n)
	}
	o.hfsIters = n
	return o, nil
}

// SetAllowScattered toggles whether build() requires a complete sample
// grid; the underlying source gates this at compile time, this
// implementation exposes it as a Builder field instead (see DESIGN.md).
func (o *Builder) SetAllowScattered(allow bool) *Builder {
	o.allowScattered = allow
	return o
}

// Build runs the full pipeline: knot synthesis (C2), skeletal Spline
// construction, system assembly (C4) and the regularized solve (C5),
// installing the resulting coefficients into the returned Spline (§4.5).
func (o *Builder) Build() (*spline.Spline, error) {
	if !o.allowScattered {
		complete, err := o.isGridComplete()
		if err != nil {
			return nil, err
		}
		if !complete {
			return nil, errs.New(errs.Precondition, "sample grid is incomplete; enable AllowScattered to fit scattered data")
		}
	}

	axes := make([]basis.Axis, o.d)
	for a := 0; a < o.d; a++ {
		values := o.axisValues(a)
		bound := knot.Bound{Lo: math.NaN(), Hi: math.NaN()}
		if len(o.bounds) > 0 {
			bound = o.bounds[a]
		}
		k, err := knot.Build(o.knotSpacing, values, o.degrees[a], o.numBasisFunctions[a], bound, o.padding)
		if err != nil {
			return nil, err
		}
		axes[a] = basis.Axis{Knots: k, Degree: o.degrees[a]}
	}

	sys, err := assemble.Build(axes, o.samples, o.weights)
	if err != nil {
		return nil, err
	}

	var D *la.Triplet
	if o.smoothing == PSpline {
		nAxis := make([]int, o.d)
		for a := 0; a < o.d; a++ {
			nAxis[a] = axes[a].NumBasis()
		}
		Dmat, err := assemble.BuildPenalty(nAxis)
		if err != nil {
			return nil, err
		}
		D = Dmat
	}

	res, err := solve.Solve(sys, D, o.smoothing, o.alpha, o.hfsIters, o.d)
	if err != nil {
		return nil, err
	}

	return spline.New(axes, res.C)
}

func (o *Builder) axisValues(axis int) []float64 {
	vals := make([]float64, len(o.samples))
	for i, s := range o.samples {
		vals[i] = s.X[axis]
	}
	return vals
}

func (o *Builder) isGridComplete() (bool, error) {
	s := store.New()
	for _, sample := range o.samples {
		if err := s.Add(sample.X, sample.Y); err != nil {
			return false, err
		}
	}
	return s.IsGridComplete(), nil
}
