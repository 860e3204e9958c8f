// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spm

import (
	"testing"

	"github.com/cpmech/gomg/dof"
	"github.com/cpmech/gomg/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_spm01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("spm01. pattern from cells")

	m := msh.NewHyperCube(2)
	m.RefineGlobal()
	s := dof.DistributeActive(m)
	p := FromCells(m, s, m.ActiveCells())
	io.Pforan("nnz = %v\n", p.Nnz())

	// an entry (a,b) exists iff some cell couples indices a and b
	coupled := make(map[int]map[int]bool)
	for _, cid := range m.ActiveCells() {
		dofs := s.CellDofs(m, cid)
		for _, a := range dofs {
			if coupled[a] == nil {
				coupled[a] = make(map[int]bool)
			}
			for _, b := range dofs {
				coupled[a][b] = true
			}
		}
	}
	nnz := 0
	for a := 0; a < s.N; a++ {
		for b := 0; b < s.N; b++ {
			if p.Has(a, b) != coupled[a][b] {
				tst.Errorf("pattern entry (%d,%d): has=%v coupled=%v", a, b, p.Has(a, b), coupled[a][b])
				return
			}
			if coupled[a][b] {
				nnz++
			}
		}
	}
	chk.IntAssert(p.Nnz(), nnz)

	// symmetric bilinear form => symmetric pattern
	for a := 0; a < s.N; a++ {
		for b := 0; b < s.N; b++ {
			if p.Has(a, b) != p.Has(b, a) {
				tst.Errorf("pattern must be symmetric at (%d,%d)", a, b)
				return
			}
		}
	}

	// the center index couples with everything on this mesh
	chk.IntAssert(len(p.Cols[2]), 9)
}

func Test_spm02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("spm02. matrix operations")

	p := NewPattern(3)
	for _, e := range [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		p.Set(e[0], e[1])
	}
	p.Set(1, 2) // idempotent
	p.Compress()
	chk.IntAssert(p.Nnz(), 7)

	A := NewMatrix(p)
	A.Add(0, 0, 2)
	A.Add(0, 1, -1)
	A.Add(1, 0, -1)
	A.Add(1, 1, 2)
	A.Add(1, 2, -1)
	A.Add(2, 1, -1)
	A.Add(2, 2, 2)
	A.Add(1, 1, 1) // accumulation
	chk.Scalar(tst, "A11", 1e-17, A.Get(1, 1), 3)
	chk.Scalar(tst, "A02 (outside pattern)", 1e-17, A.Get(0, 2), 0)
	chk.Matrix(tst, "dense", 1e-17, A.ToDense(), [][]float64{
		{2, -1, 0},
		{-1, 3, -1},
		{0, -1, 2},
	})

	// matrix-vector products
	u := []float64{1, 2, 3}
	v := make([]float64, 3)
	A.MulVec(v, u)
	chk.Vector(tst, "A*u", 1e-15, v, []float64{0, 2, 4})
	A.MulVecTr(v, u)
	chk.Vector(tst, "At*u", 1e-15, v, []float64{0, 2, 4}) // A is symmetric here

	// diagonal
	d := make([]float64, 3)
	A.Diag(d)
	chk.Vector(tst, "diag", 1e-17, d, []float64{2, 3, 2})

	// symmetric elimination of row/column 1
	A.ZeroRowCol(1, 1)
	chk.Matrix(tst, "after ZeroRowCol", 1e-17, A.ToDense(), [][]float64{
		{2, 0, 0},
		{0, 1, 0},
		{0, 0, 2},
	})

	// zero keeps the pattern
	A.Zero()
	chk.IntAssert(A.Pat.Nnz(), 7)
	chk.Scalar(tst, "A00 after Zero", 1e-17, A.Get(0, 0), 0)
}

func Test_spm03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("spm03. out-of-pattern write is fatal")

	p := NewPattern(2)
	p.Set(0, 0)
	p.Set(1, 1)
	p.Compress()
	A := NewMatrix(p)

	defer func() {
		if recover() == nil {
			tst.Errorf("Add outside the pattern must panic")
		}
	}()
	A.Add(0, 1, 1.0)
}

func Test_spm04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("spm04. rectangular matrix transpose product")

	p := NewPatternRect(3, 2)
	p.Set(0, 0)
	p.Set(1, 0)
	p.Set(1, 1)
	p.Set(2, 1)
	p.Compress()
	P := NewMatrix(p)
	P.Put(0, 0, 1.0)
	P.Put(1, 0, 0.5)
	P.Put(1, 1, 0.5)
	P.Put(2, 1, 1.0)

	uc := []float64{2, 4}
	vf := make([]float64, 3)
	P.MulVec(vf, uc)
	chk.Vector(tst, "P*uc", 1e-15, vf, []float64{2, 3, 4})

	rf := []float64{1, 1, 1}
	rc := make([]float64, 2)
	P.MulVecTr(rc, rf)
	chk.Vector(tst, "Pt*rf", 1e-15, rc, []float64{1.5, 1.5})
}
