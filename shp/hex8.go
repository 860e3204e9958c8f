// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shape
func init() {

	// natural coordinates: bottom face (t=-1) counterclockwise, then top face (t=+1)
	nat := [][]float64{
		{-1, 1, 1, -1, -1, 1, 1, -1},
		{-1, -1, 1, 1, -1, -1, 1, 1},
		{-1, -1, -1, -1, 1, 1, 1, 1},
	}

	s := &Shape{
		Type:      "hex8",
		Gndim:     3,
		Nverts:    8,
		NatCoords: nat,
	}

	s.Func = func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
		for n := 0; n < 8; n++ {
			rn, sn, tn := nat[0][n], nat[1][n], nat[2][n]
			S[n] = (1.0 + r[0]*rn) * (1.0 + r[1]*sn) * (1.0 + r[2]*tn) / 8.0
			if derivs {
				dSdR[n][0] = rn * (1.0 + r[1]*sn) * (1.0 + r[2]*tn) / 8.0
				dSdR[n][1] = sn * (1.0 + r[0]*rn) * (1.0 + r[2]*tn) / 8.0
				dSdR[n][2] = tn * (1.0 + r[0]*rn) * (1.0 + r[1]*sn) / 8.0
			}
		}
	}

	s.init_scratchpad()
	factory["hex8"] = s
}
