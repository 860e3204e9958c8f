// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sol implements the linear solvers: smoothers, the geometric multigrid
// V-cycle preconditioner and the preconditioned conjugate gradient iteration
package sol

import (
	"github.com/cpmech/gomg/spm"
	"github.com/cpmech/gosl/chk"
)

// Smoother applies a fixed number of relaxation sweeps to A*u = b, updating u in place
type Smoother interface {
	Smooth(A *spm.Matrix, u, b []float64)
}

// SSOR is a symmetric successive over-relaxation smoother. Being symmetric, the same
// smoother serves as pre- and post-smoother without breaking the symmetry of the
// V-cycle operator.
type SSOR struct {
	Relax  float64 // relaxation factor ω ∈ (0,2)
	Sweeps int     // number of forward+backward sweeps per visit
}

// Smooth runs Sweeps symmetric sweeps
func (o SSOR) Smooth(A *spm.Matrix, u, b []float64) {
	n := A.Nrows()
	chk.IntAssert(len(u), n)
	chk.IntAssert(len(b), n)
	for s := 0; s < o.Sweeps; s++ {
		for i := 0; i < n; i++ {
			o.relaxRow(A, u, b, i)
		}
		for i := n - 1; i >= 0; i-- {
			o.relaxRow(A, u, b, i)
		}
	}
}

func (o SSOR) relaxRow(A *spm.Matrix, u, b []float64, i int) {
	d := 0.0
	s := b[i]
	for k, j := range A.Pat.Cols[i] {
		if j == i {
			d = A.Vals[i][k]
			continue
		}
		s -= A.Vals[i][k] * u[j]
	}
	if d == 0.0 {
		chk.Panic("zero diagonal at row %d prevents relaxation", i)
	}
	u[i] += o.Relax * (s/d - u[i])
}

// Jacobi is a damped Jacobi smoother
type Jacobi struct {
	Damp   float64 // damping factor; 2/3 is the usual choice
	Sweeps int     // number of sweeps per visit
}

// Smooth runs Sweeps damped Jacobi sweeps
func (o Jacobi) Smooth(A *spm.Matrix, u, b []float64) {
	n := A.Nrows()
	chk.IntAssert(len(u), n)
	chk.IntAssert(len(b), n)
	r := make([]float64, n)
	d := make([]float64, n)
	A.Diag(d)
	for s := 0; s < o.Sweeps; s++ {
		A.MulVec(r, u)
		for i := 0; i < n; i++ {
			if d[i] == 0.0 {
				chk.Panic("zero diagonal at row %d prevents relaxation", i)
			}
			u[i] += o.Damp * (b[i] - r[i]) / d[i]
		}
	}
}
