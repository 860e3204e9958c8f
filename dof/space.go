// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dof assigns degree-of-freedom indices over mesh cells
package dof

import (
	"github.com/cpmech/gomg/msh"
	"github.com/cpmech/gosl/chk"
)

// Kind distinguishes the two index namespaces. Indices from different spaces are
// structurally interchangeable integers but semantically incompatible; every Space
// carries its Kind (and Level) so misuse can be caught at the cell-map boundary.
type Kind int

const (
	Active   Kind = iota // indices over active cells only (the global system)
	PerLevel             // indices over all cells of one level (multigrid)
)

// Space holds one contiguous DoF index space: a bijection between the vertices
// touched by a set of cells and the integers 0..N-1
type Space struct {
	Kind     Kind  // which namespace this is
	Level    int   // level number; -1 for Active spaces
	N        int   // total number of indices
	Cells    []int // cell ids covered by this space, in distribution order
	Vert2dof []int // [nverts] vertex id => index; -1 if vertex not in space
	Dof2vert []int // [N] index => vertex id
}

// DistributeActive assigns indices over the active cells of m. Cells are visited in
// ascending id order and unseen vertices receive the next index, so shared vertices
// of adjacent cells map to the same index.
func DistributeActive(m *msh.Mesh) *Space {
	return distribute(m, Active, -1, m.ActiveCells())
}

// DistributeLevel assigns indices over all cells of level l, active or not,
// independently of any other space
func DistributeLevel(m *msh.Mesh, l int) *Space {
	return distribute(m, PerLevel, l, m.LevelCells(l))
}

func distribute(m *msh.Mesh, kind Kind, level int, cells []int) (o *Space) {
	o = new(Space)
	o.Kind = kind
	o.Level = level
	o.Cells = cells
	o.Vert2dof = make([]int, len(m.Verts))
	for i := range o.Vert2dof {
		o.Vert2dof[i] = -1
	}
	for _, cid := range cells {
		for _, v := range m.Cells[cid].Verts {
			if o.Vert2dof[v] < 0 {
				o.Vert2dof[v] = o.N
				o.Dof2vert = append(o.Dof2vert, v)
				o.N++
			}
		}
	}
	return
}

// CellDofs returns the indices of the local vertices of one cell, in canonical local
// order. The cell must belong to this space.
func (o *Space) CellDofs(m *msh.Mesh, cellId int) (dofs []int) {
	cell := m.Cells[cellId]
	switch o.Kind {
	case Active:
		if len(cell.Children) > 0 {
			chk.Panic("cell %d is refined and thus not in the active index space", cellId)
		}
	case PerLevel:
		if cell.Level != o.Level {
			chk.Panic("cell %d is at level %d and thus not in the level-%d index space", cellId, cell.Level, o.Level)
		}
	}
	dofs = make([]int, len(cell.Verts))
	for i, v := range cell.Verts {
		dofs[i] = o.Vert2dof[v]
		if dofs[i] < 0 {
			chk.Panic("vertex %d of cell %d is not covered by this index space", v, cellId)
		}
	}
	return
}

// DofCoords returns the coordinates of the vertex carrying index i
func (o *Space) DofCoords(m *msh.Mesh, i int) []float64 {
	return m.Verts[o.Dof2vert[i]]
}
