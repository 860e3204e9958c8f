// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gomg/dof"
	"github.com/cpmech/gomg/msh"
	"github.com/cpmech/gomg/spm"
	"github.com/cpmech/gosl/la"
)

// Assemble integrates the kernel over cells and accumulates element matrices into A
// and, if rhs is non-nil, element load vectors into rhs. The cell traversal and the
// local-to-global maps are the same ones that built the pattern of A, so every add
// lands inside the pattern.
func (o *Poisson) Assemble(m *msh.Mesh, space *dof.Space, cells []int, A *spm.Matrix, rhs []float64) (err error) {
	K := la.MatAlloc(o.Nverts, o.Nverts)
	F := make([]float64, o.Nverts)
	for _, cid := range cells {
		o.SetCell(m, cid)
		err = o.CalcK(K)
		if err != nil {
			return
		}
		if rhs != nil {
			err = o.CalcF(F)
			if err != nil {
				return
			}
		}
		dofs := space.CellDofs(m, cid)
		for i, I := range dofs {
			for j, J := range dofs {
				A.Add(I, J, K[i][j])
			}
			if rhs != nil {
				rhs[I] += F[i]
			}
		}
	}
	return
}
