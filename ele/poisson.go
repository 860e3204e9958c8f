// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the per-cell assembly kernel of the Poisson problem
package ele

import (
	"github.com/cpmech/gomg/msh"
	"github.com/cpmech/gomg/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Poisson integrates the gradient-gradient bilinear form and the constant-source
// linear form over one cell at a time. The same kernel feeds the global system
// and every multigrid level matrix.
type Poisson struct {

	// basic data
	Ndim   int          // space dimension
	Nverts int          // number of vertices per cell
	Shp    *shp.Shape   // shape structure (scratchpad with S, G, J)
	Ips    []shp.Ipoint // integration points
	Source float64      // constant source term

	// scratchpad
	X [][]float64 // [ndim][nverts] coordinates of current cell
}

// NewPoisson returns a new kernel for the given dimension, with the default
// 2-point Gauss rule and unit source
func NewPoisson(ndim int) (o *Poisson) {
	o = new(Poisson)
	o.Ndim = ndim
	o.Shp = shp.GetByNdim(ndim)
	if o.Shp == nil {
		chk.Panic("cannot find shape structure for ndim = %d", ndim)
	}
	o.Nverts = o.Shp.Nverts
	o.Ips = shp.IpsGauss(ndim)
	o.Source = 1.0
	o.X = la.MatAlloc(ndim, o.Nverts)
	return
}

// SetCell loads the coordinates of one cell into the scratchpad
func (o *Poisson) SetCell(m *msh.Mesh, cellId int) {
	cell := m.Cells[cellId]
	chk.IntAssert(len(cell.Verts), o.Nverts)
	for n, v := range cell.Verts {
		for i := 0; i < o.Ndim; i++ {
			o.X[i][n] = m.Verts[v][i]
		}
	}
}

// CalcK computes the element stiffness matrix of the current cell:
//  K[i][j] = sum_ip (G_i . G_j) * J * w
func (o *Poisson) CalcK(K [][]float64) (err error) {
	la.MatFill(K, 0)
	for _, ip := range o.Ips {
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		coef := o.Shp.J * ip[3]
		G := o.Shp.G
		for i := 0; i < o.Nverts; i++ {
			for j := 0; j < o.Nverts; j++ {
				gg := 0.0
				for k := 0; k < o.Ndim; k++ {
					gg += G[i][k] * G[j][k]
				}
				K[i][j] += gg * coef
			}
		}
	}
	return
}

// CalcF computes the element load vector of the current cell:
//  F[i] = sum_ip S_i * source * J * w
func (o *Poisson) CalcF(F []float64) (err error) {
	la.VecFill(F, 0)
	for _, ip := range o.Ips {
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		coef := o.Shp.J * ip[3]
		for i := 0; i < o.Nverts; i++ {
			F[i] += o.Shp.S[i] * o.Source * coef
		}
	}
	return
}
