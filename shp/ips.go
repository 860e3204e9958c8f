// Copyright 2016 The Gomg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ipoint holds the natural coordinates and weight of one integration point: [r, s, t, w]
type Ipoint []float64

// IpsGauss returns the 2-point-per-direction Gauss rule for ndim = 2 (2x2) or 3 (2x2x2)
func IpsGauss(ndim int) (ips []Ipoint) {
	a := 1.0 / math.Sqrt(3.0)
	switch ndim {
	case 2:
		ips = []Ipoint{
			{-a, -a, 0, 1},
			{+a, -a, 0, 1},
			{-a, +a, 0, 1},
			{+a, +a, 0, 1},
		}
	case 3:
		for _, t := range []float64{-a, +a} {
			for _, s := range []float64{-a, +a} {
				for _, r := range []float64{-a, +a} {
					ips = append(ips, Ipoint{r, s, t, 1})
				}
			}
		}
	default:
		chk.Panic("Gauss integration points are available for ndim = 2 or 3 only. ndim = %d is invalid", ndim)
	}
	return
}
