// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capi

import (
	"github.com/cpmech/gobsp"
	"github.com/cpmech/gobsp/spline"
	"github.com/cpmech/gobsp/store"
)

// NewStore creates an empty sample store and returns its handle (§6).
func NewStore() Handle {
	clearError()
	h := put(&entry{kind: kindStore, store: store.New()})
	return h
}

// AddSamplesColMajor inserts m samples of cols-1 coordinates plus one
// y-value each, from a flat, column-major array: all of x0's m values,
// then all of x1's, ..., finally all of y's. Preserves the source
// binding's "AddColumns" convention of deriving the dimensionality as
// cols-1 rather than taking d directly (§9).
func AddSamplesColMajor(h Handle, data []float64, m, cols int) {
	clearError()
	e := get(h, kindStore)
	if e == nil {
		setError(nullHandleError("AddSamplesColMajor"))
		return
	}
	d := cols - 1
	if d < 1 || m < 0 || len(data) != m*cols {
		setError(&gobsp.Error{Kind: gobsp.InvalidArgument, Msg: "AddSamplesColMajor: data has wrong length for m, cols"})
		return
	}
	x := make([]float64, d)
	for i := 0; i < m; i++ {
		for j := 0; j < d; j++ {
			x[j] = data[j*m+i]
		}
		y := data[d*m+i]
		if err := e.store.Add(x, y); err != nil {
			setError(err)
			return
		}
	}
}

// DeleteStore releases a store handle.
func DeleteStore(h Handle) {
	clearError()
	if get(h, kindStore) == nil {
		setError(nullHandleError("DeleteStore"))
		return
	}
	deleteHandle(h)
}

// NewBuilder snapshots storeHandle's current samples into a fresh
// Builder handle (§6).
func NewBuilder(storeHandle Handle) Handle {
	clearError()
	se := get(storeHandle, kindStore)
	if se == nil {
		setError(nullHandleError("NewBuilder"))
		return nullHandle
	}
	b, err := gobsp.New(se.store)
	if err != nil {
		setError(err)
		return nullHandle
	}
	return put(&entry{kind: kindBuilder, builder: b})
}

func builderOf(h Handle, op string) *gobsp.Builder {
	e := get(h, kindBuilder)
	if e == nil {
		setError(nullHandleError(op))
		return nil
	}
	return e.builder
}

// SetDegree sets the per-axis polynomial degree (§6).
func SetDegree(h Handle, degrees []int) {
	clearError()
	b := builderOf(h, "SetDegree")
	if b == nil {
		return
	}
	if _, err := b.SetDegrees(degrees); err != nil {
		setError(err)
	}
}

// SetNumBasisFunctions sets the per-axis requested basis-function count
// (0 means "derive from samples") (§6).
func SetNumBasisFunctions(h Handle, n []int) {
	clearError()
	b := builderOf(h, "SetNumBasisFunctions")
	if b == nil {
		return
	}
	if _, err := b.SetNumBasisFunctions(n); err != nil {
		setError(err)
	}
}

// SetKnotSpacing sets the knot-construction policy; code in
// {0=AS_SAMPLED,1=EQUIDISTANT,2=EXPERIMENTAL} (§6).
func SetKnotSpacing(h Handle, code int) {
	clearError()
	b := builderOf(h, "SetKnotSpacing")
	if b == nil {
		return
	}
	if _, err := b.SetKnotSpacing(gobsp.KnotSpacing(code)); err != nil {
		setError(err)
	}
}

// SetSmoothing sets the smoothing mode; code in
// {0=NONE,1=IDENTITY,2=PSPLINE} (§6).
func SetSmoothing(h Handle, code int) {
	clearError()
	b := builderOf(h, "SetSmoothing")
	if b == nil {
		return
	}
	if _, err := b.SetSmoothing(gobsp.Smoothing(code)); err != nil {
		setError(err)
	}
}

// SetAlpha sets the regularization weight (§6).
func SetAlpha(h Handle, alpha float64) {
	clearError()
	b := builderOf(h, "SetAlpha")
	if b == nil {
		return
	}
	if _, err := b.SetAlpha(alpha); err != nil {
		setError(err)
	}
}

// SetPadding sets the EQUIDISTANT fractional padding (§6).
func SetPadding(h Handle, padding float64) {
	clearError()
	b := builderOf(h, "SetPadding")
	if b == nil {
		return
	}
	if _, err := b.SetPadding(padding); err != nil {
		setError(err)
	}
}

// SetWeights sets per-sample weights; w must be empty or length m (§6).
func SetWeights(h Handle, w []float64) {
	clearError()
	b := builderOf(h, "SetWeights")
	if b == nil {
		return
	}
	if _, err := b.SetWeights(w); err != nil {
		setError(err)
	}
}

// SetBounds sets per-axis [lo,hi] overrides from two parallel slices,
// mirroring §6's set_bounds(lo []float64, hi []float64, n int); NaN in
// either slot of a pair means "use the data extent".
func SetBounds(h Handle, lo, hi []float64) {
	clearError()
	b := builderOf(h, "SetBounds")
	if b == nil {
		return
	}
	if len(lo) != len(hi) {
		setError(&gobsp.Error{Kind: gobsp.InvalidArgument, Msg: "SetBounds: lo and hi have different lengths"})
		return
	}
	bounds := make([]gobsp.Bound, len(lo))
	for i := range lo {
		bounds[i] = gobsp.Bound{Lo: lo[i], Hi: hi[i]}
	}
	if _, err := b.SetBounds(bounds); err != nil {
		setError(err)
	}
}

// SetHFSIters sets the number of HFS fixed-point iterations (§6).
func SetHFSIters(h Handle, n int) {
	clearError()
	b := builderOf(h, "SetHFSIters")
	if b == nil {
		return
	}
	if _, err := b.SetHFSIters(n); err != nil {
		setError(err)
	}
}

// Build runs the fit and returns a handle to the resulting Spline, or
// the null handle on failure (§6).
func Build(h Handle) Handle {
	clearError()
	b := builderOf(h, "Build")
	if b == nil {
		return nullHandle
	}
	sp, err := b.Build()
	if err != nil {
		setError(err)
		return nullHandle
	}
	return put(&entry{kind: kindSpline, spline: sp})
}

// DeleteBuilder releases a builder handle.
func DeleteBuilder(h Handle) {
	clearError()
	if get(h, kindBuilder) == nil {
		setError(nullHandleError("DeleteBuilder"))
		return
	}
	deleteHandle(h)
}

func splineOf(h Handle, op string) *spline.Spline {
	e := get(h, kindSpline)
	if e == nil {
		setError(nullHandleError(op))
		return nil
	}
	return e.spline
}

// NumVariables returns d, or 0 on a null/unknown handle (§6).
func NumVariables(h Handle) int {
	clearError()
	sp := splineOf(h, "NumVariables")
	if sp == nil {
		return 0
	}
	return sp.NumVariables()
}

// NumCoefficients returns N, or 0 on a null/unknown handle (§6).
func NumCoefficients(h Handle) int {
	clearError()
	sp := splineOf(h, "NumCoefficients")
	if sp == nil {
		return 0
	}
	N, _ := sp.NumBasisFunctions()
	return N
}

// GetCoefficients returns a copy of the spline's coefficient vector, or
// nil on a null/unknown handle (§6; caller-freed in a real binding --
// here it is simply a fresh Go slice).
func GetCoefficients(h Handle) []float64 {
	clearError()
	sp := splineOf(h, "GetCoefficients")
	if sp == nil {
		return nil
	}
	return sp.Coefficients()
}

// EvalRowMajor evaluates the spline at x (length-n, row-major, i.e. one
// coordinate per axis), returning the single result value, or 0 on
// failure (§6).
func EvalRowMajor(h Handle, x []float64) float64 {
	clearError()
	sp := splineOf(h, "EvalRowMajor")
	if sp == nil {
		return 0
	}
	v, err := sp.Eval(x)
	if err != nil {
		setError(err)
		return 0
	}
	return v
}

// DeleteSpline releases a spline handle.
func DeleteSpline(h Handle) {
	clearError()
	if get(h, kindSpline) == nil {
		setError(nullHandleError("DeleteSpline"))
		return
	}
	deleteHandle(h)
}
