// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shape
func init() {

	// natural coordinates, counterclockwise:
	//
	//   3 ------- 2
	//   |    s    |
	//   |    |    |
	//   |    +--r |
	//   |         |
	//   0 ------- 1
	//
	nat := [][]float64{
		{-1, 1, 1, -1},
		{-1, -1, 1, 1},
	}

	s := &Shape{
		Type:      "qua4",
		Gndim:     2,
		Nverts:    4,
		NatCoords: nat,
	}

	s.Func = func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
		for n := 0; n < 4; n++ {
			rn, sn := nat[0][n], nat[1][n]
			S[n] = (1.0 + r[0]*rn) * (1.0 + r[1]*sn) / 4.0
			if derivs {
				dSdR[n][0] = rn * (1.0 + r[1]*sn) / 4.0
				dSdR[n][1] = sn * (1.0 + r[0]*rn) / 4.0
			}
		}
	}

	s.init_scratchpad()
	factory["qua4"] = s
}
