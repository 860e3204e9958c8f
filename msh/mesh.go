// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements the hierarchy of uniformly refined meshes
package msh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// constants
const COORDTOL = 1.0e-10 // tolerance to consider a coordinate on the boundary

// Cell holds one cell of the refinement tree. Cells are kept in an arena within Mesh and
// addressed by Id; Parent and Children are arena indices, not pointers.
type Cell struct {
	Id       int   // index in Mesh.Cells
	Level    int   // refinement level; 0 is the coarsest
	Verts    []int // [2^ndim] vertex ids in canonical local order (see shp natural order)
	Parent   int   // parent cell id; -1 at level 0
	Children []int // children cell ids; empty means the cell is active
}

// Mesh holds the whole refinement hierarchy: all vertices and all cells of all levels.
// Earlier levels are never discarded; refinement only appends.
type Mesh struct {
	Ndim   int         // space dimension: 2 or 3
	Verts  [][]float64 // [nverts][ndim] vertex coordinates
	Cells  []*Cell     // cell arena; all levels
	levels [][]int     // [nlevels][...] cell ids per level
	v2id   map[string]int
}

// NewHyperCube creates a mesh of the unit square (ndim=2) or unit cube (ndim=3)
// with a single level-0 cell
func NewHyperCube(ndim int) (o *Mesh) {
	if ndim != 2 && ndim != 3 {
		chk.Panic("hypercube mesh requires ndim = 2 or 3. ndim = %d is invalid", ndim)
	}
	o = new(Mesh)
	o.Ndim = ndim
	o.v2id = make(map[string]int)
	nv := 1 << uint(ndim)
	verts := make([]int, nv)
	for n := 0; n < nv; n++ {
		x := make([]float64, ndim)
		for i := 0; i < ndim; i++ {
			if natCorner(n, i, ndim) {
				x[i] = 1.0
			}
		}
		verts[n] = o.addVert(x)
	}
	cell := &Cell{Id: 0, Level: 0, Verts: verts, Parent: -1}
	o.Cells = append(o.Cells, cell)
	o.levels = append(o.levels, []int{0})
	return
}

// NumLevels returns the number of refinement levels
func (o *Mesh) NumLevels() int { return len(o.levels) }

// NumCells returns the total number of cells, all levels included
func (o *Mesh) NumCells() int { return len(o.Cells) }

// LevelCells returns the ids of all cells of level l
func (o *Mesh) LevelCells(l int) []int {
	if l < 0 || l >= len(o.levels) {
		chk.Panic("level %d does not exist. nlevels = %d", l, len(o.levels))
	}
	return o.levels[l]
}

// ActiveCells returns the ids of all active cells (cells without children), in ascending order
func (o *Mesh) ActiveCells() (ids []int) {
	for _, c := range o.Cells {
		if len(c.Children) == 0 {
			ids = append(ids, c.Id)
		}
	}
	return
}

// NumActiveCells returns the number of active cells
func (o *Mesh) NumActiveCells() (n int) {
	for _, c := range o.Cells {
		if len(c.Children) == 0 {
			n++
		}
	}
	return
}

// OnBoundary tells whether x lies on the boundary of the unit hypercube
func (o *Mesh) OnBoundary(x []float64) bool {
	for i := 0; i < o.Ndim; i++ {
		if x[i] < COORDTOL || x[i] > 1.0-COORDTOL {
			return true
		}
	}
	return false
}

// addVert returns the id of the vertex with coordinates x, appending a new vertex
// if these coordinates were not seen before. Coordinates produced by uniform
// refinement of the unit hypercube are dyadic and thus exact in float64, so the
// formatted key is a reliable identity.
func (o *Mesh) addVert(x []float64) int {
	key := ""
	for i := 0; i < o.Ndim; i++ {
		key += io.Sf("%.14g:", x[i])
	}
	if id, ok := o.v2id[key]; ok {
		return id
	}
	id := len(o.Verts)
	xx := make([]float64, o.Ndim)
	copy(xx, x)
	o.Verts = append(o.Verts, xx)
	o.v2id[key] = id
	return id
}

// natCorner tells whether local corner n has natural coordinate 1 along direction i,
// following the canonical (counterclockwise qua4 / standard hex8) local order
func natCorner(n, i, ndim int) bool {
	// qua4: (0,0) (1,0) (1,1) (0,1);  hex8: bottom face then top face
	switch i {
	case 0:
		return n%4 == 1 || n%4 == 2
	case 1:
		return n%4 >= 2
	}
	return n >= 4
}
