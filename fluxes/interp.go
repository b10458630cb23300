// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluxes

// quadco returns the coefficients of the quadratic through three points
//  y(x) = co[0] + z*(co[1] + z*co[2])  with  z = x - x[0]
func quadco(x, y []float64) (co [3]float64) {
	s := 1.0 / (x[2] - x[0])
	x1 := s * (x[1] - x[0])
	y2 := y[2] - y[0]
	x12 := x1 * x1
	c1 := (y[1] - y[0] - x12*y2) / (x1 - x12)
	c2 := y2 - c1
	co[0] = y[0]
	co[1] = s * c1
	co[2] = s * s * c2
	return
}

// quadinterp returns v[0..n-2] corresponding to u[0..n-2] using quadratic interpolation
//  u[j] must lie between x[j] and x[j+1]; each quadratic covers two consecutive intervals
//  Note: len(x) must be at least 3
func quadinterp(x, y, u []float64) (v []float64) {
	n := len(x)
	v = make([]float64, n-1)
	for k := 0; k < n; k += 2 {
		i := k
		if k+3 > n {
			i = n - 3
		}
		co := quadco(x[i:i+3], y[i:i+3])
		for j := k; j < k+2 && j < n-1; j++ {
			z := u[j] - x[i]
			v[j] = co[0] + z*(co[1]+z*co[2])
		}
	}
	return
}
