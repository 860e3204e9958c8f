// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

// RefineGlobal refines every active cell once, adding exactly one new level.
// Each active cell is subdivided into 2^ndim children occupying the dyadic
// sub-boxes of the parent; vertices shared between siblings or neighbours are
// deduplicated so that adjacent cells reference the same vertex ids.
func (o *Mesh) RefineGlobal() {
	newLevel := len(o.levels)
	var ids []int
	nchild := 1 << uint(o.Ndim)
	xi := make([]float64, o.Ndim)
	x := make([]float64, o.Ndim)
	for _, cid := range o.ActiveCells() {
		parent := o.Cells[cid]
		for g := 0; g < nchild; g++ {
			verts := make([]int, nchild)
			for d := 0; d < nchild; d++ {
				for i := 0; i < o.Ndim; i++ {
					xi[i] = 0.0
					if natCorner(g, i, o.Ndim) {
						xi[i] += 0.5
					}
					if natCorner(d, i, o.Ndim) {
						xi[i] += 0.5
					}
				}
				o.interp(x, parent, xi)
				verts[d] = o.addVert(x)
			}
			child := &Cell{
				Id:     len(o.Cells),
				Level:  newLevel,
				Verts:  verts,
				Parent: parent.Id,
			}
			o.Cells = append(o.Cells, child)
			parent.Children = append(parent.Children, child.Id)
			ids = append(ids, child.Id)
		}
	}
	o.levels = append(o.levels, ids)
}

// interp computes x = multilinear interpolation of the corners of cell at
// natural coordinates xi ∈ [0,1]^ndim
func (o *Mesh) interp(x []float64, cell *Cell, xi []float64) {
	for i := 0; i < o.Ndim; i++ {
		x[i] = 0.0
	}
	for n, v := range cell.Verts {
		w := 1.0
		for i := 0; i < o.Ndim; i++ {
			if natCorner(n, i, o.Ndim) {
				w *= xi[i]
			} else {
				w *= 1.0 - xi[i]
			}
		}
		for i := 0; i < o.Ndim; i++ {
			x[i] += w * o.Verts[v][i]
		}
	}
}
