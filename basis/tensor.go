// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basis

import "github.com/cpmech/gobsp/errs"

// Row is a sparse basis row: Cols are the global (flat, tensor-product)
// coefficient indices, Vals the corresponding basis values.
type Row struct {
	Cols []int
	Vals []float64
}

// Strides returns the coefficient-layout strides for the given per-axis
// basis counts, under the lexicographic, last-axis-fastest convention
// (§3): Strides[d-1]=1, Strides[a]=Strides[a+1]*nAxis[a+1].
func Strides(nAxis []int) []int {
	d := len(nAxis)
	strides := make([]int, d)
	if d == 0 {
		return strides
	}
	strides[d-1] = 1
	for a := d - 2; a >= 0; a-- {
		strides[a] = strides[a+1] * nAxis[a+1]
	}
	return strides
}

// NumCoefficients returns N = product(nAxis)
func NumCoefficients(nAxis []int) int {
	n := 1
	for _, ni := range nAxis {
		n *= ni
	}
	return n
}

// TensorEval evaluates the multivariate tensor-product basis at x,
// the Kronecker product (in coefficient-layout order) of each axis's
// sparse univariate basis, with at most product(degree_j+1) non-zeros.
func TensorEval(axes []Axis, x []float64) (Row, error) {
	d := len(axes)
	if len(x) != d {
		return Row{}, errs.New(errs.DimensionMismatch, "expected %d coordinates, got %d", d, len(x))
	}

	localIdx := make([][]int, d)
	localVal := make([][]float64, d)
	nAxis := make([]int, d)
	for a := 0; a < d; a++ {
		idx, val := axes[a].EvalSparse(x[a])
		localIdx[a] = idx
		localVal[a] = val
		nAxis[a] = axes[a].NumBasis()
	}
	strides := Strides(nAxis)

	total := 1
	for a := 0; a < d; a++ {
		total *= len(localIdx[a])
	}
	cols := make([]int, 0, total)
	vals := make([]float64, 0, total)

	counters := make([]int, d)
	for {
		col := 0
		val := 1.0
		for a := 0; a < d; a++ {
			col += localIdx[a][counters[a]] * strides[a]
			val *= localVal[a][counters[a]]
		}
		cols = append(cols, col)
		vals = append(vals, val)

		a := d - 1
		for a >= 0 {
			counters[a]++
			if counters[a] < len(localIdx[a]) {
				break
			}
			counters[a] = 0
			a--
		}
		if a < 0 {
			break
		}
	}
	return Row{Cols: cols, Vals: vals}, nil
}
