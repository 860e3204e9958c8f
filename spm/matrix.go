// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Matrix is a sparse matrix in compressed-row storage whose nonzero structure is
// fixed by a compressed Pattern. Writes outside the pattern are programming errors.
type Matrix struct {
	Pat  *Pattern    // the (compressed) pattern this matrix conforms to
	Vals [][]float64 // [M][len(Pat.Cols[i])] values aligned with Pat.Cols
}

// NewMatrix allocates a zero-initialized matrix conforming to pat
func NewMatrix(pat *Pattern) (o *Matrix) {
	if !pat.compressed {
		chk.Panic("pattern must be compressed before matrix allocation")
	}
	o = new(Matrix)
	o.Pat = pat
	o.Vals = make([][]float64, pat.M)
	for i := 0; i < pat.M; i++ {
		o.Vals[i] = make([]float64, len(pat.Cols[i]))
	}
	return
}

// Nrows returns the number of rows
func (o *Matrix) Nrows() int { return o.Pat.M }

// Ncols returns the number of columns
func (o *Matrix) Ncols() int { return o.Pat.N }

// Add accumulates v into entry (i,j). The entry must belong to the pattern.
func (o *Matrix) Add(i, j int, v float64) {
	k := o.Pat.find(i, j)
	if k < 0 {
		chk.Panic("entry (%d,%d) is outside the sparsity pattern", i, j)
	}
	o.Vals[i][k] += v
}

// Put sets entry (i,j) to v, discarding the previous value. The entry must belong
// to the pattern.
func (o *Matrix) Put(i, j int, v float64) {
	k := o.Pat.find(i, j)
	if k < 0 {
		chk.Panic("entry (%d,%d) is outside the sparsity pattern", i, j)
	}
	o.Vals[i][k] = v
}

// Get returns entry (i,j); entries outside the pattern are zero
func (o *Matrix) Get(i, j int) float64 {
	k := o.Pat.find(i, j)
	if k < 0 {
		return 0.0
	}
	return o.Vals[i][k]
}

// Zero resets all stored entries to zero, keeping the pattern
func (o *Matrix) Zero() {
	for i := range o.Vals {
		la.VecFill(o.Vals[i], 0)
	}
}

// MulVec computes v = A * u
func (o *Matrix) MulVec(v, u []float64) {
	chk.IntAssert(len(v), o.Pat.M)
	chk.IntAssert(len(u), o.Pat.N)
	for i := 0; i < o.Pat.M; i++ {
		s := 0.0
		for k, j := range o.Pat.Cols[i] {
			s += o.Vals[i][k] * u[j]
		}
		v[i] = s
	}
}

// MulVecTr computes v = transpose(A) * u
func (o *Matrix) MulVecTr(v, u []float64) {
	chk.IntAssert(len(v), o.Pat.N)
	chk.IntAssert(len(u), o.Pat.M)
	la.VecFill(v, 0)
	for i := 0; i < o.Pat.M; i++ {
		for k, j := range o.Pat.Cols[i] {
			v[j] += o.Vals[i][k] * u[i]
		}
	}
}

// Diag extracts the diagonal into d. Diagonal entries absent from the pattern are zero.
func (o *Matrix) Diag(d []float64) {
	chk.IntAssert(len(d), o.Pat.M)
	for i := 0; i < o.Pat.M; i++ {
		d[i] = o.Get(i, i)
	}
}

// ZeroRowCol zeroes row i and column i, except the diagonal which is set to diag.
// The column sweep uses the rows listed in row i, which is exact when the pattern
// is symmetric (as produced by FromCells).
func (o *Matrix) ZeroRowCol(i int, diag float64) {
	for k, j := range o.Pat.Cols[i] {
		o.Vals[i][k] = 0.0
		if j != i {
			if kk := o.Pat.find(j, i); kk >= 0 {
				o.Vals[j][kk] = 0.0
			}
		}
	}
	k := o.Pat.find(i, i)
	if k < 0 {
		chk.Panic("diagonal entry (%d,%d) is outside the sparsity pattern", i, i)
	}
	o.Vals[i][k] = diag
}

// ToDense returns a dense copy of this matrix
func (o *Matrix) ToDense() (a [][]float64) {
	a = la.MatAlloc(o.Pat.M, o.Pat.N)
	for i := 0; i < o.Pat.M; i++ {
		for k, j := range o.Pat.Cols[i] {
			a[i][j] = o.Vals[i][k]
		}
	}
	return
}
