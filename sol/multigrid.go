// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"github.com/cpmech/gomg/spm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Multigrid applies one geometric V-cycle over the level matrices as a fixed linear
// operator: z = Apply(r). It is a preconditioner, not a solver; the outer iteration
// (PCG) drives it once per iteration.
type Multigrid struct {

	// input
	As  []*spm.Matrix // [nlevels] level matrices; As[nlevels-1] is the finest
	Ps  []*spm.Matrix // [nlevels-1] prolongation from level l to l+1
	Smo Smoother      // pre- and post-smoother (must be symmetric)

	// coarse solve control
	CoarseTol   float64 // tolerance of the near-exact solve at level 0
	CoarseMaxIt int     // iteration cap of the coarse solve
	CoarseErr   error   // failure of the coarse solve during the last Apply; nil on success

	// workspaces per level
	us [][]float64 // corrections
	bs [][]float64 // right-hand sides (restricted residuals)
	rs [][]float64 // residuals / prolongation scratch
}

// NewMultigrid returns a V-cycle operator over the given level matrices and
// transfer operators
func NewMultigrid(As, Ps []*spm.Matrix, smo Smoother) (o *Multigrid) {
	chk.IntAssert(len(Ps), len(As)-1)
	for l, P := range Ps {
		chk.IntAssert(P.Ncols(), As[l].Nrows())
		chk.IntAssert(P.Nrows(), As[l+1].Nrows())
	}
	o = new(Multigrid)
	o.As = As
	o.Ps = Ps
	o.Smo = smo
	o.CoarseTol = 1e-14
	o.CoarseMaxIt = 4 * As[0].Nrows()
	o.us = make([][]float64, len(As))
	o.bs = make([][]float64, len(As))
	o.rs = make([][]float64, len(As))
	for l, A := range As {
		o.us[l] = make([]float64, A.Nrows())
		o.bs[l] = make([]float64, A.Nrows())
		o.rs[l] = make([]float64, A.Nrows())
	}
	return
}

// Apply runs one V-cycle on residual r, returning the correction z. A coarse solve
// that misses CoarseTol is recorded in CoarseErr; the cycle still returns the
// partial correction, since the outer iteration can recover from a weaker
// preconditioner but not from a missing one.
func (o *Multigrid) Apply(z, r []float64) {
	o.CoarseErr = nil
	top := len(o.As) - 1
	copy(o.bs[top], r)
	o.vcycle(top)
	copy(z, o.us[top])
}

// vcycle solves As[l]*us[l] = bs[l] approximately, recursing to coarser levels
func (o *Multigrid) vcycle(l int) {

	// coarsest level: near-exact solve. the system here is a handful of equations,
	// so a tightly converged CG is as good as a direct solve
	la.VecFill(o.us[l], 0)
	if l == 0 {
		_, err := PCG(o.As[0], o.bs[0], o.us[0], nil, o.CoarseTol, o.CoarseMaxIt)
		if err != nil {
			o.CoarseErr = chk.Err("coarse solve missed its tolerance:\n%v", err)
			if chk.Verbose {
				io.PfRed("warning: %v\n", o.CoarseErr)
			}
		}
		return
	}

	// pre-smooth
	o.Smo.Smooth(o.As[l], o.us[l], o.bs[l])

	// residual after smoothing, restricted to the next coarser level
	A := o.As[l]
	A.MulVec(o.rs[l], o.us[l])
	for i := range o.rs[l] {
		o.rs[l][i] = o.bs[l][i] - o.rs[l][i]
	}
	o.Ps[l-1].MulVecTr(o.bs[l-1], o.rs[l])

	// coarse correction
	o.vcycle(l - 1)

	// prolong and correct
	o.Ps[l-1].MulVec(o.rs[l], o.us[l-1])
	for i := range o.us[l] {
		o.us[l][i] += o.rs[l][i]
	}

	// post-smooth
	o.Smo.Smooth(o.As[l], o.us[l], o.bs[l])
}
