// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out writes solution files for visualization
package out

import (
	"bytes"

	"github.com/cpmech/gomg/dof"
	"github.com/cpmech/gomg/msh"
	"github.com/cpmech/gosl/io"
)

// WriteGnuplot writes the solution over the active cells in gnuplot block format:
// one block per cell with "x y [z] u" lines, first vertex repeated to close the
// cell outline. The file is named <fnkey>.gnuplot within dirout.
func WriteGnuplot(dirout, fnkey string, m *msh.Mesh, space *dof.Space, u []float64) {
	var buf bytes.Buffer
	for _, cid := range m.ActiveCells() {
		cell := m.Cells[cid]
		dofs := space.CellDofs(m, cid)
		for k := 0; k <= len(cell.Verts); k++ {
			n := k % len(cell.Verts)
			x := m.Verts[cell.Verts[n]]
			for i := 0; i < m.Ndim; i++ {
				io.Ff(&buf, "%23.15e ", x[i])
			}
			io.Ff(&buf, "%23.15e\n", u[dofs[n]])
		}
		io.Ff(&buf, "\n")
	}
	io.WriteFileVD(dirout, fnkey+".gnuplot", &buf)
}
