// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluxes

import (
	"github.com/cpmech/swimflux/mdl/soil"
)

// work holds the working buffers of one table construction
//  indices 0..nu-1 are the tabulated states of the soil; indices nu.. are
//  states in the saturated region appended while computing the reference curve
type work struct {

	// input
	sid  int     // soil identifier
	nu   int     // number of tabulated (unsaturated) states
	ks   float64 // saturated conductivity
	he   float64 // air-entry head
	dz   float64 // path length
	prms *Params // parameters

	// states
	h   []float64    // heads
	K   []float64    // conductivities
	phi []float64    // matric flux potentials
	Kco [][3]float64 // coefficients of K(φ); zero in the saturated region
	hpK []float64    // K at the middle of each interval for Simpson's rule

	// statistics
	nit   int       // total number of Newton iterations
	nsol  int       // number of steady-state solutions
	warns []Warning // warnings
}

// newWork copies the curve into working buffers
//  the curve must be valid
func newWork(c *soil.Curve, dz float64, prms *Params) (o *work) {
	nu := c.N()
	nmax := nu + prms.Nsat
	o = &work{
		sid:  c.Sid,
		nu:   nu,
		ks:   c.Ks,
		he:   c.He,
		dz:   dz,
		prms: prms,
		h:    make([]float64, nu, nmax),
		K:    make([]float64, nu, nmax),
		phi:  make([]float64, nu, nmax),
		Kco:  make([][3]float64, nu, nmax),
		hpK:  make([]float64, nu-1),
	}
	copy(o.h, c.H)
	copy(o.K, c.K)
	copy(o.phi, c.Phi)
	copy(o.Kco, c.Kco)

	// K values for Simpson's rule in odef
	for i := 0; i < nu-1; i++ {
		o.hpK[i] = o.kspline(i, 0.5*(o.phi[i+1]-o.phi[i]))
	}
	return
}

// kspline evaluates K within interval i at offset x from phi[i]
func (o *work) kspline(i int, x float64) float64 {
	return o.K[i] + x*(o.Kco[i][0]+x*(o.Kco[i][1]+x*o.Kco[i][2]))
}

// extend appends the saturated state j = len(h)
//  heads increase by dh*(j+1-nu) so that points become sparser away from air-entry
func (o *work) extend() {
	j := len(o.h)
	Δh := o.prms.Dh * float64(j+1-o.nu)
	o.h = append(o.h, o.h[j-1]+Δh)
	o.K = append(o.K, o.ks)
	o.phi = append(o.phi, o.phi[j-1]+o.ks*Δh)
	o.Kco = append(o.Kco, [3]float64{})
}

// saturated tells whether state i is at or beyond air-entry
func (o *work) saturated(i int) bool {
	return i >= o.nu-1
}
