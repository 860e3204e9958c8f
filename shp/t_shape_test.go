// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// checkShape checks that shape functions evaluate to 1.0 @ their node and 0.0 @ others
func checkShape(tst *testing.T, shape *Shape, tol float64) {
	r := []float64{0, 0, 0}
	errS := 0.0
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}
		shape.Func(shape.S, shape.DSdR, r, false)
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}
	if errS > tol {
		tst.Errorf("%s failed with err = %g", shape.Type, errS)
	}
}

// checkPartitionOfUnity checks sum(S) == 1 and sum(dSdR) == 0 at an interior point
func checkPartitionOfUnity(tst *testing.T, shape *Shape, r []float64, tol float64) {
	shape.Func(shape.S, shape.DSdR, r, true)
	sumS := 0.0
	sumG := make([]float64, shape.Gndim)
	for m := 0; m < shape.Nverts; m++ {
		sumS += shape.S[m]
		for i := 0; i < shape.Gndim; i++ {
			sumG[i] += shape.DSdR[m][i]
		}
	}
	chk.Scalar(tst, io.Sf("%s: sum(S)", shape.Type), tol, sumS, 1.0)
	for i := 0; i < shape.Gndim; i++ {
		chk.Scalar(tst, io.Sf("%s: sum(dSdR[%d])", shape.Type, i), tol, sumG[i], 0.0)
	}
}

func Test_shp01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("shp01. qua4 and hex8 shape functions")

	qua4 := Get("qua4")
	hex8 := Get("hex8")
	if qua4 == nil || hex8 == nil {
		tst.Errorf("factory must provide qua4 and hex8")
		return
	}
	checkShape(tst, qua4, 1e-15)
	checkShape(tst, hex8, 1e-15)
	checkPartitionOfUnity(tst, qua4, []float64{0.25, -0.4, 0}, 1e-15)
	checkPartitionOfUnity(tst, hex8, []float64{0.25, -0.4, 0.7}, 1e-15)
}

func Test_shp02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("shp02. Jacobian and physical gradients. unit square")

	// unit square: x = (r+1)/2, y = (s+1)/2
	x := [][]float64{
		{0, 1, 1, 0},
		{0, 0, 1, 1},
	}
	shape := Get("qua4")
	ips := IpsGauss(2)
	chk.IntAssert(len(ips), 4)

	vol := 0.0
	for _, ip := range ips {
		err := shape.CalcAtIp(x, ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		chk.Scalar(tst, "J", 1e-15, shape.J, 0.25)
		vol += shape.J * ip[3]

		// physical gradients are natural gradients scaled by 2
		for m := 0; m < 4; m++ {
			for i := 0; i < 2; i++ {
				chk.Scalar(tst, io.Sf("G[%d][%d]", m, i), 1e-15, shape.G[m][i], 2.0*shape.DSdR[m][i])
			}
		}
	}
	chk.Scalar(tst, "integrated volume", 1e-15, vol, 1.0)
}

func Test_shp03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("shp03. Jacobian. unit cube")

	x := [][]float64{
		{0, 1, 1, 0, 0, 1, 1, 0},
		{0, 0, 1, 1, 0, 0, 1, 1},
		{0, 0, 0, 0, 1, 1, 1, 1},
	}
	shape := Get("hex8")
	ips := IpsGauss(3)
	chk.IntAssert(len(ips), 8)

	vol := 0.0
	for _, ip := range ips {
		err := shape.CalcAtIp(x, ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		chk.Scalar(tst, "J", 1e-15, shape.J, 0.125)
		vol += shape.J * ip[3]
	}
	chk.Scalar(tst, "integrated volume", 1e-15, vol, 1.0)
}
