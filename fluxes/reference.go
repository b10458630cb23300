// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluxes

// reference computes the fluxes aq[j] with phi[j] at the bottom (wet) and phi[0] at the top (dry)
//  The curve is extended into the saturated region until the fluxes become nearly linear in φ.
//  These fluxes are used to select suitable potentials for the flux table.
func (o *work) reference() (aq []float64) {
	nu := o.nu
	aq = make([]float64, 2, nu+o.prms.Nsat)
	aq[0] = o.K[0] // q=K here because dφ/dz=0
	aq[1] = o.ssflux(0, 1, (o.phi[0]-o.phi[1])/o.dz)
	for j := 2; j < nu+o.prms.Nsat; j++ {
		if j >= nu {
			o.extend()
		}

		// approximate q from linear extrapolation
		q1 := aq[j-1] + (o.phi[j]-o.phi[j-1])*(aq[j-1]-aq[j-2])/(o.phi[j-1]-o.phi[j-2])
		aq = append(aq, o.ssflux(0, j, q1))

		// stop when dφ/dq is close enough to the path length
		if j >= nu && -(o.phi[j]-o.phi[j-1])/(aq[j]-aq[j-1]) < (1.0+o.prms.Rerr)*o.dz {
			break
		}
	}
	return
}
