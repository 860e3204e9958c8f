// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"math"

	"github.com/cpmech/gomg/spm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// PrecondFunc applies a preconditioner: z = M⁻¹ * r. A nil PrecondFunc means identity.
type PrecondFunc func(z, r []float64)

// PCG solves A*x = b for symmetric positive-definite A with the preconditioned
// conjugate gradient method, starting from the initial guess already stored in x.
//  Input:
//   precond -- preconditioner application; may be nil (plain CG)
//   tol     -- stop when norm(b - A*x) ≤ tol
//   maxIt   -- hard cap on iterations
//  Output:
//   iters -- number of iterations used
//   err   -- non-nil if maxIt was reached before the residual norm dropped to tol
func PCG(A *spm.Matrix, b, x []float64, precond PrecondFunc, tol float64, maxIt int) (iters int, err error) {

	// initial residual
	n := A.Nrows()
	chk.IntAssert(len(b), n)
	chk.IntAssert(len(x), n)
	r := make([]float64, n)
	z := make([]float64, n)
	p := make([]float64, n)
	q := make([]float64, n)
	A.MulVec(r, x)
	for i := 0; i < n; i++ {
		r[i] = b[i] - r[i]
	}
	if la.VecNorm(r) <= tol {
		return
	}

	// first search direction
	applyPrecond(precond, z, r)
	copy(p, z)
	rho := la.VecDot(r, z)

	// iterations
	for iters = 1; iters <= maxIt; iters++ {

		// step along p
		A.MulVec(q, p)
		den := la.VecDot(p, q)
		if den <= 0 || math.IsNaN(den) {
			return iters, chk.Err("search direction broke down at iteration %d: p・A・p = %g", iters, den)
		}
		alpha := rho / den
		for i := 0; i < n; i++ {
			x[i] += alpha * p[i]
			r[i] -= alpha * q[i]
		}

		// convergence
		if la.VecNorm(r) <= tol {
			return
		}

		// new search direction
		applyPrecond(precond, z, r)
		rhoNew := la.VecDot(r, z)
		beta := rhoNew / rho
		rho = rhoNew
		for i := 0; i < n; i++ {
			p[i] = z[i] + beta*p[i]
		}
	}
	iters = maxIt
	return iters, chk.Err("CG did not converge after %d iterations. residual norm = %g (tolerance = %g)", maxIt, la.VecNorm(r), tol)
}

func applyPrecond(precond PrecondFunc, z, r []float64) {
	if precond == nil {
		copy(z, r)
		return
	}
	precond(z, r)
}
