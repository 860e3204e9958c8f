// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gomg/dof"
	"github.com/cpmech/gomg/ele"
	"github.com/cpmech/gomg/msh"
	"github.com/cpmech/gomg/out"
	"github.com/cpmech/gomg/sol"
	"github.com/cpmech/gomg/spm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Options holds the configuration of one run
type Options struct {
	Ndim       int     // space dimension: 2 or 3
	Ncycles    int     // number of refine-assemble-solve cycles
	Tol        float64 // CG convergence tolerance on the residual norm
	MaxIt      int     // CG iteration cap
	Relax      float64 // SSOR smoother relaxation factor
	Sweeps     int     // smoother sweeps per V-cycle visit
	Source     float64 // constant source term
	SaveOutput bool    // write solution-<cycle>.gnuplot files
	OutDir     string  // output directory
	Verbose    bool    // print progress messages
}

// NewOptions returns the reference configuration: 6 cycles in 2D, tolerance 1e-12
// with a cap of 1000 iterations, unit source
func NewOptions() *Options {
	return &Options{
		Ndim:    2,
		Ncycles: 6,
		Tol:     1e-12,
		MaxIt:   1000,
		Relax:   1.2,
		Sweeps:  1,
		Source:  1.0,
		OutDir:  "/tmp/gomg",
		Verbose: true,
	}
}

// Problem solves the Poisson problem with zero essential boundary values on the
// unit hypercube, rebuilding index spaces, patterns and matrices after each
// refinement and solving with multigrid-preconditioned CG
type Problem struct {

	// configuration and mesh
	Opts   *Options     // options
	Msh    *msh.Mesh    // the mesh hierarchy; persists and grows across cycles
	Kernel *ele.Poisson // per-cell assembly kernel shared by all assembly paths

	// global system (rebuilt every cycle)
	Space *dof.Space   // active index space
	A     *spm.Matrix  // global stiffness matrix
	U     []float64    // solution
	F     []float64    // right-hand side
	Bcs   EssentialBcs // boundary conditions of the global system

	// multigrid structures (rebuilt every cycle)
	LevSpaces []*dof.Space  // per-level index spaces
	LevAs     []*spm.Matrix // per-level stiffness matrices
	LevPs     []*spm.Matrix // prolongation operators between consecutive levels
	Mg        *sol.Multigrid

	// results
	Iters int // CG iterations used in the last solve
}

// NewProblem returns a problem over a fresh single-cell hypercube mesh
func NewProblem(opts *Options) (o *Problem) {
	o = new(Problem)
	o.Opts = opts
	o.Msh = msh.NewHyperCube(opts.Ndim)
	o.Kernel = ele.NewPoisson(opts.Ndim)
	o.Kernel.Source = opts.Source
	return
}

// SetupSystem distributes the index spaces and allocates patterns, matrices and
// vectors for the global system and for every level
func (o *Problem) SetupSystem() {

	// global/active space
	o.Space = dof.DistributeActive(o.Msh)
	pat := spm.FromCells(o.Msh, o.Space, o.Msh.ActiveCells())
	o.A = spm.NewMatrix(pat)
	o.U = make([]float64, o.Space.N)
	o.F = make([]float64, o.Space.N)

	// one space and one matrix per level
	nlevels := o.Msh.NumLevels()
	o.LevSpaces = make([]*dof.Space, nlevels)
	o.LevAs = make([]*spm.Matrix, nlevels)
	for l := 0; l < nlevels; l++ {
		o.LevSpaces[l] = dof.DistributeLevel(o.Msh, l)
		lpat := spm.FromCells(o.Msh, o.LevSpaces[l], o.Msh.LevelCells(l))
		o.LevAs[l] = spm.NewMatrix(lpat)
	}

	// transfer operators
	o.LevPs = make([]*spm.Matrix, nlevels-1)
	for l := 0; l < nlevels-1; l++ {
		o.LevPs[l] = sol.BuildProlongation(o.Msh, o.LevSpaces[l], o.LevSpaces[l+1])
	}

	if o.Opts.Verbose {
		io.Pf("   Number of degrees of freedom: %d\n", o.Space.N)
	}
}

// AssembleSystem integrates the global stiffness matrix and load vector and
// eliminates the zero essential boundary values
func (o *Problem) AssembleSystem() (err error) {
	err = o.Kernel.Assemble(o.Msh, o.Space, o.Msh.ActiveCells(), o.A, o.F)
	if err != nil {
		return chk.Err("global assembly failed:\n%v", err)
	}
	o.Bcs = CollectBcs(o.Msh, o.Space, o.Msh.OnBoundary, func(x []float64) float64 { return 0 })
	o.Bcs.Apply(o.A, o.U, o.F)
	return
}

// AssembleMultigrid integrates the stiffness matrix of every level (no load
// vector: the level matrices only participate in preconditioning) and eliminates
// each level's own boundary equations from its matrix
func (o *Problem) AssembleMultigrid() (err error) {
	for l := 0; l < o.Msh.NumLevels(); l++ {
		err = o.Kernel.Assemble(o.Msh, o.LevSpaces[l], o.Msh.LevelCells(l), o.LevAs[l], nil)
		if err != nil {
			return chk.Err("assembly of level %d failed:\n%v", l, err)
		}
		lbcs := CollectBcs(o.Msh, o.LevSpaces[l], o.Msh.OnBoundary, func(x []float64) float64 { return 0 })
		lbcs.Apply(o.LevAs[l], nil, nil)
	}
	o.Mg = sol.NewMultigrid(o.LevAs, o.LevPs, sol.SSOR{Relax: o.Opts.Relax, Sweeps: o.Opts.Sweeps})
	return
}

// Solve runs the multigrid-preconditioned conjugate gradient iteration
func (o *Problem) Solve() (err error) {
	o.Iters, err = sol.PCG(o.A, o.F, o.U, o.Mg.Apply, o.Opts.Tol, o.Opts.MaxIt)
	if err != nil {
		return chk.Err("linear solver failed:\n%v", err)
	}
	if o.Opts.Verbose {
		io.Pf("   %d CG iterations needed to obtain convergence.\n", o.Iters)
	}
	return
}

// OutputResults writes the solution of one cycle
func (o *Problem) OutputResults(cycle int) {
	out.WriteGnuplot(o.Opts.OutDir, io.Sf("solution-%d", cycle), o.Msh, o.Space, o.U)
}

// RunCycle performs one cycle: refine (except at cycle 0), setup, assemble
// globally and per level, and solve
func (o *Problem) RunCycle(cycle int) (err error) {
	if o.Opts.Verbose {
		io.Pf("Cycle %d:\n", cycle)
	}
	if cycle > 0 {
		o.Msh.RefineGlobal()
	}
	if o.Opts.Verbose {
		io.Pf("   Number of active cells: %d\n", o.Msh.NumActiveCells())
		io.Pf("   Total number of cells: %d\n", o.Msh.NumCells())
	}
	o.SetupSystem()
	err = o.AssembleSystem()
	if err != nil {
		return
	}
	err = o.AssembleMultigrid()
	if err != nil {
		return
	}
	err = o.Solve()
	if err != nil {
		return
	}
	if o.Opts.SaveOutput {
		o.OutputResults(cycle)
	}
	return
}

// Run performs all cycles
func (o *Problem) Run() (err error) {
	for cycle := 0; cycle < o.Opts.Ncycles; cycle++ {
		err = o.RunCycle(cycle)
		if err != nil {
			return chk.Err("cycle %d failed:\n%v", cycle, err)
		}
	}
	return
}
