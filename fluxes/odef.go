// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluxes

// odef computes z and ∂z/∂q for flux q and φ from phi[n1] to phi[n2]
//  z = ∫ dφ / (K - q) is integrated with Simpson's rule on each interval
//  using hpK as the value at the middle of the interval
//  Note: q must be outside the range of K in [n1,n2]
func (o *work) odef(n1, n2 int, q float64) (z, dzdq float64) {
	for k := n1; k < n2; k++ {
		a := 1.0 / (o.K[k] - q)
		b := 1.0 / (o.hpK[k] - q)
		c := 1.0 / (o.K[k+1] - q)
		Δφ := o.phi[k+1] - o.phi[k]
		z += Δφ * (a + 4.0*b + c) / 6.0
		dzdq += Δφ * (a*a + 4.0*b*b + c*c) / 6.0
	}
	return
}
