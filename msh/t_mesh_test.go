// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_msh01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("msh01. unit square. one cell")

	m := NewHyperCube(2)
	chk.IntAssert(m.Ndim, 2)
	chk.IntAssert(m.NumLevels(), 1)
	chk.IntAssert(m.NumCells(), 1)
	chk.IntAssert(m.NumActiveCells(), 1)
	chk.IntAssert(len(m.Verts), 4)
	chk.Ints(tst, "active cells", m.ActiveCells(), []int{0})
	chk.Ints(tst, "level 0 cells", m.LevelCells(0), []int{0})

	// counterclockwise corners
	chk.Vector(tst, "vert 0", 1e-17, m.Verts[0], []float64{0, 0})
	chk.Vector(tst, "vert 1", 1e-17, m.Verts[1], []float64{1, 0})
	chk.Vector(tst, "vert 2", 1e-17, m.Verts[2], []float64{1, 1})
	chk.Vector(tst, "vert 3", 1e-17, m.Verts[3], []float64{0, 1})

	// whole boundary
	for _, x := range m.Verts {
		if !m.OnBoundary(x) {
			tst.Errorf("vertex %v must be on the boundary", x)
			return
		}
	}
}

func Test_msh02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("msh02. unit square. two refinements")

	m := NewHyperCube(2)
	m.RefineGlobal()
	io.Pforan("verts after 1st refinement = %v\n", len(m.Verts))

	// shared vertices are deduplicated: 9, not 16
	chk.IntAssert(len(m.Verts), 9)
	chk.IntAssert(m.NumLevels(), 2)
	chk.IntAssert(m.NumCells(), 5)
	chk.IntAssert(m.NumActiveCells(), 4)
	chk.Ints(tst, "active cells", m.ActiveCells(), []int{1, 2, 3, 4})
	chk.Ints(tst, "level 1 cells", m.LevelCells(1), []int{1, 2, 3, 4})

	// refinement tree
	chk.Ints(tst, "children of 0", m.Cells[0].Children, []int{1, 2, 3, 4})
	for _, cid := range m.LevelCells(1) {
		chk.IntAssert(m.Cells[cid].Parent, 0)
		chk.IntAssert(m.Cells[cid].Level, 1)
	}

	// children share the center vertex
	chk.Vector(tst, "center", 1e-17, m.Verts[5], []float64{0.5, 0.5})
	chk.IntAssert(m.Cells[1].Verts[2], 5)
	chk.IntAssert(m.Cells[2].Verts[3], 5)
	chk.IntAssert(m.Cells[3].Verts[0], 5)
	chk.IntAssert(m.Cells[4].Verts[1], 5)
	if m.OnBoundary(m.Verts[5]) {
		tst.Errorf("center vertex cannot be on the boundary")
		return
	}

	// second refinement
	m.RefineGlobal()
	chk.IntAssert(len(m.Verts), 25)
	chk.IntAssert(m.NumLevels(), 3)
	chk.IntAssert(m.NumCells(), 21)
	chk.IntAssert(m.NumActiveCells(), 16)
	chk.IntAssert(len(m.LevelCells(2)), 16)

	// level 0 is never refined again: its cell still has 4 children only
	chk.IntAssert(len(m.Cells[0].Children), 4)
}

func Test_msh03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("msh03. unit cube. one refinement")

	m := NewHyperCube(3)
	chk.IntAssert(len(m.Verts), 8)
	chk.IntAssert(m.NumCells(), 1)

	m.RefineGlobal()
	chk.IntAssert(len(m.Verts), 27)
	chk.IntAssert(m.NumLevels(), 2)
	chk.IntAssert(m.NumCells(), 9)
	chk.IntAssert(m.NumActiveCells(), 8)

	// the body center is the single interior vertex
	ninterior := 0
	for _, x := range m.Verts {
		if !m.OnBoundary(x) {
			ninterior++
			chk.Vector(tst, "body center", 1e-17, x, []float64{0.5, 0.5, 0.5})
		}
	}
	chk.IntAssert(ninterior, 1)
}
