// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"math"

	"github.com/cpmech/gomg/dof"
	"github.com/cpmech/gomg/msh"
	"github.com/cpmech/gomg/shp"
	"github.com/cpmech/gomg/spm"
	"github.com/cpmech/gosl/chk"
)

// BuildProlongation returns the interpolation operator P from the index space of
// level l (coarse) to the index space of level l+1 (fine), as a fine.N-by-coarse.N
// sparse matrix. Each fine vertex value is the multilinear interpolation of the
// parent cell's corner values, so the weights are the parent shape functions
// evaluated at the fine vertex's natural coordinates (1, 1/2, 1/4, 1/8 patterns).
// Restriction is the transpose, applied with MulVecTr.
func BuildProlongation(m *msh.Mesh, coarse, fine *dof.Space) *spm.Matrix {
	chk.IntAssert(fine.Level, coarse.Level+1)
	shape := shp.GetByNdim(m.Ndim)
	nat := shape.NatCoords
	S := make([]float64, shape.Nverts)
	r := make([]float64, 3)

	// weights of one (parent, child, child-vertex) triple; the triple fully
	// determines the value, so revisits from neighbouring cells are idempotent
	visit := func(put func(i, j int, v float64)) {
		for _, pid := range coarse.Cells {
			parent := m.Cells[pid]
			pdofs := coarse.CellDofs(m, pid)
			for g, chid := range parent.Children {
				fdofs := fine.CellDofs(m, chid)
				for d := 0; d < shape.Nverts; d++ {
					for i := 0; i < shape.Gndim; i++ {
						r[i] = (nat[i][g] + nat[i][d]) / 2.0
					}
					shape.Func(S, nil, r, false)
					for n := 0; n < shape.Nverts; n++ {
						if math.Abs(S[n]) > 1e-14 {
							put(fdofs[d], pdofs[n], S[n])
						}
					}
				}
			}
		}
	}

	// first pass: pattern; second pass: values
	pat := spm.NewPatternRect(fine.N, coarse.N)
	visit(func(i, j int, v float64) { pat.Set(i, j) })
	pat.Compress()
	P := spm.NewMatrix(pat)
	visit(P.Put)
	return P
}
