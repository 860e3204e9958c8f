// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package spm implements sparsity patterns and sparse matrices in compressed-row format
package spm

import (
	"sort"

	"github.com/cpmech/gomg/dof"
	"github.com/cpmech/gomg/msh"
	"github.com/cpmech/gosl/chk"
)

// Pattern holds the set of (row,col) pairs a matrix is permitted to store.
// A pattern starts mutable, is filled with couplings, and must be compressed
// (made immutable) before a Matrix can be allocated on it.
type Pattern struct {
	M, N       int         // matrix dimensions
	rows       []map[int]struct{}
	Cols       [][]int     // [M][...] sorted column indices per row; set by Compress
	compressed bool
}

// NewPattern returns a new mutable square pattern
func NewPattern(n int) *Pattern {
	return NewPatternRect(n, n)
}

// NewPatternRect returns a new mutable m-by-n pattern
func NewPatternRect(m, n int) (o *Pattern) {
	o = new(Pattern)
	o.M, o.N = m, n
	o.rows = make([]map[int]struct{}, m)
	for i := 0; i < m; i++ {
		o.rows[i] = make(map[int]struct{})
	}
	return
}

// Set records that entry (i,j) may be nonzero. Duplicates are idempotent.
func (o *Pattern) Set(i, j int) {
	if o.compressed {
		chk.Panic("cannot add entry (%d,%d) to compressed pattern", i, j)
	}
	if i < 0 || i >= o.M || j < 0 || j >= o.N {
		chk.Panic("entry (%d,%d) is outside %d-by-%d pattern", i, j, o.M, o.N)
	}
	o.rows[i][j] = struct{}{}
}

// FromCells builds the pattern of a bilinear form over the given cells: for every
// cell, every ordered pair of its local vertices couples the corresponding indices
// of space. The resulting pattern is compressed and ready for matrix allocation.
func FromCells(m *msh.Mesh, space *dof.Space, cells []int) (o *Pattern) {
	o = NewPattern(space.N)
	for _, cid := range cells {
		dofs := space.CellDofs(m, cid)
		for _, I := range dofs {
			for _, J := range dofs {
				o.Set(I, J)
			}
		}
	}
	o.Compress()
	return
}

// Compress finalizes the pattern. No couplings can be added afterwards.
func (o *Pattern) Compress() {
	if o.compressed {
		return
	}
	o.Cols = make([][]int, o.M)
	for i := 0; i < o.M; i++ {
		cols := make([]int, 0, len(o.rows[i]))
		for j := range o.rows[i] {
			cols = append(cols, j)
		}
		sort.Ints(cols)
		o.Cols[i] = cols
	}
	o.rows = nil
	o.compressed = true
}

// Has tells whether entry (i,j) belongs to the (compressed) pattern
func (o *Pattern) Has(i, j int) bool {
	if !o.compressed {
		chk.Panic("pattern must be compressed before queries")
	}
	return o.find(i, j) >= 0
}

// Nnz returns the number of entries in the (compressed) pattern
func (o *Pattern) Nnz() (n int) {
	if !o.compressed {
		chk.Panic("pattern must be compressed before queries")
	}
	for i := 0; i < o.M; i++ {
		n += len(o.Cols[i])
	}
	return
}

// find returns the position of column j within row i, or -1
func (o *Pattern) find(i, j int) int {
	cols := o.Cols[i]
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return k
	}
	return -1
}
