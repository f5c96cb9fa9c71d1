// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store holds the scattered or gridded (x,y) samples a Builder
// fits against: dimensionality, count, per-axis value lists and
// grid-completeness.
package store

import (
	"sort"

	"github.com/cpmech/gobsp/errs"
)

// Sample is one (x,y) observation; x has the store's fixed dimensionality.
type Sample struct {
	X []float64
	Y float64
}

// Store is an ordered collection of Samples. d is fixed by the first
// insertion. Not safe for concurrent use.
type Store struct {
	samples []Sample
	d       int
}

// New returns an empty sample store
func New() *Store {
	return &Store{}
}

// Add inserts one sample. The first call fixes d = len(x); every later
// call must match it.
func (o *Store) Add(x []float64, y float64) error {
	if o.d == 0 && len(o.samples) == 0 {
		if len(x) == 0 {
			return errs.New(errs.InvalidArgument, "sample x must have at least one dimension")
		}
		o.d = len(x)
	} else if len(x) != o.d {
		return errs.New(errs.DimensionMismatch, "sample has %d coordinates, store is %d-dimensional", len(x), o.d)
	}
	xc := make([]float64, len(x))
	copy(xc, x)
	o.samples = append(o.samples, Sample{X: xc, Y: y})
	return nil
}

// D returns the store's dimensionality (0 if empty)
func (o *Store) D() int { return o.d }

// M returns the number of samples
func (o *Store) M() int { return len(o.samples) }

// Samples returns the samples in insertion order (read-only use expected)
func (o *Store) Samples() []Sample { return o.samples }

// AxisValues returns the sorted, deduplicated values taken by samples
// along the given axis
func (o *Store) AxisValues(axis int) []float64 {
	seen := make(map[float64]bool)
	vals := make([]float64, 0, len(o.samples))
	for _, s := range o.samples {
		v := s.X[axis]
		if !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	sort.Float64s(vals)
	return vals
}

// AxisExtent returns the data min/max along the given axis
func (o *Store) AxisExtent(axis int) (lo, hi float64) {
	vals := o.AxisValues(axis)
	if len(vals) == 0 {
		return 0, 0
	}
	return vals[0], vals[len(vals)-1]
}

// IsGridComplete reports whether the samples form the full Cartesian
// product of their per-axis distinct values, each combination exactly once
func (o *Store) IsGridComplete() bool {
	if len(o.samples) == 0 || o.d == 0 {
		return false
	}
	axisVals := make([][]float64, o.d)
	idxOf := make([]map[float64]int, o.d)
	total := 1
	for a := 0; a < o.d; a++ {
		axisVals[a] = o.AxisValues(a)
		total *= len(axisVals[a])
		m := make(map[float64]int, len(axisVals[a]))
		for i, v := range axisVals[a] {
			m[v] = i
		}
		idxOf[a] = m
	}
	if total != len(o.samples) {
		return false
	}
	strides := make([]int, o.d)
	strides[o.d-1] = 1
	for a := o.d - 2; a >= 0; a-- {
		strides[a] = strides[a+1] * len(axisVals[a+1])
	}
	seen := make(map[int]bool, len(o.samples))
	for _, s := range o.samples {
		key := 0
		for a := 0; a < o.d; a++ {
			idx, ok := idxOf[a][s.X[a]]
			if !ok {
				return false
			}
			key += idx * strides[a]
		}
		if seen[key] {
			return false
		}
		seen[key] = true
	}
	return len(seen) == total
}
