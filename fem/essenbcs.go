// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem orchestrates the solution cycles: mesh refinement, system setup,
// assembly, essential boundary conditions and the multigrid-preconditioned solve
package fem

import (
	"github.com/cpmech/gomg/dof"
	"github.com/cpmech/gomg/msh"
	"github.com/cpmech/gomg/spm"
)

// BcMarker selects the boundary portion where essential conditions hold
type BcMarker func(x []float64) bool

// BcFunc computes the prescribed value at a boundary location
type BcFunc func(x []float64) float64

// EssentialBc holds one prescribed value at one index of an index space
type EssentialBc struct {
	Eq  int     // index (equation number) within the space
	Val float64 // prescribed value
}

// EssentialBcs records the definition of essential bcs over one index space,
// in ascending equation order
type EssentialBcs []*EssentialBc

// CollectBcs finds all indices of space whose vertex satisfies marker and records
// the value of fcn there. Indices are visited in ascending order, so the result is
// deterministic.
func CollectBcs(m *msh.Mesh, space *dof.Space, marker BcMarker, fcn BcFunc) (bcs EssentialBcs) {
	for i := 0; i < space.N; i++ {
		x := space.DofCoords(m, i)
		if marker(x) {
			bcs = append(bcs, &EssentialBc{Eq: i, Val: fcn(x)})
		}
	}
	return
}

// Apply eliminates the constrained equations from the linear system A*u = f while
// preserving symmetry:
//  - row and column of each constrained index are zeroed except the diagonal
//  - the diagonal keeps its original value (or 1 if it was zero), so the
//    conditioning of the remaining system is not disturbed
//  - the right-hand side of every coupled row is adjusted by -a[j][eq]*value before
//    the column is cleared, keeping the reduced system equivalent
//  - u[eq] = value and f[eq] = diag*value
// Applying the same bcs twice leaves the system unchanged (the columns are already
// zero the second time). u and f may be nil when only the matrix matters (level
// matrices used for smoothing).
func (o EssentialBcs) Apply(A *spm.Matrix, u, f []float64) {
	for _, bc := range o {
		i := bc.Eq
		diag := A.Get(i, i)
		if diag == 0.0 {
			diag = 1.0
		}

		// clear row i
		for k := range A.Pat.Cols[i] {
			A.Vals[i][k] = 0.0
		}

		// clear column i, moving known contributions to the right-hand side.
		// the pattern is symmetric, so the rows coupled to i are the columns of row i
		for _, j := range A.Pat.Cols[i] {
			if j == i {
				continue
			}
			aji := A.Get(j, i)
			if aji != 0.0 {
				if f != nil {
					f[j] -= aji * bc.Val
				}
				A.Put(j, i, 0.0)
			}
		}

		// constrained equation
		A.Put(i, i, diag)
		if u != nil {
			u[i] = bc.Val
		}
		if f != nil {
			f[i] = diag * bc.Val
		}
	}
}
