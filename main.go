// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gomg/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	ncycles := io.ArgToInt(0, 6)
	ndim := io.ArgToInt(1, 2)
	saveOut := io.ArgToBool(2, true)
	verbose := io.ArgToBool(3, true)

	// message
	if verbose {
		io.PfWhite("\nGomg -- Geometric Multigrid Finite Element Solver\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"number of cycles", "ncycles", ncycles,
			"space dimension", "ndim", ndim,
			"save output files", "saveOut", saveOut,
			"show messages", "verbose", verbose,
		))
	}

	// run all cycles
	opts := fem.NewOptions()
	opts.Ncycles = ncycles
	opts.Ndim = ndim
	opts.SaveOutput = saveOut
	opts.Verbose = verbose
	problem := fem.NewProblem(opts)
	err := problem.Run()
	if err != nil {
		chk.Panic("simulation failed:\n%v", err)
	}
}
