// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluxes

import (
	"math"
)

// breakpoints selects the indices of the potentials of the flux table using the curvature
// of the reference fluxes aq vs φ. Rerr and Cfac determine the spacings.
//  The unsaturated selection starts at the wet end and stops where the curve becomes linear;
//  the dry end is always included. The saturated selection covers nu-1..len(aq)-1.
//  nfu is the number of unsaturated breakpoints (including the air-entry state).
func (o *work) breakpoints(aq []float64) (iphif []int, nfu int) {
	nu, nt := o.nu, len(aq)
	ns := nt - nu

	// unsaturated: walk from the wet end, in reversed order
	k := nonlin(o.phi[:nu], aq[:nu], o.prms.Rerr)
	c := curv(o.phi[:nu], aq[:nu])
	for l, r := 0, len(c)-1; l < r; l, r = l+1, r-1 {
		c[l], c[r] = c[r], c[l]
	}
	pos := indices(c, nu-1-k, o.prms.Cfac) // increasing
	nfu = len(pos)
	iphif = make([]int, nfu, nfu+ns)
	for l, p := range pos {
		iphif[nfu-1-l] = nu - 1 - p
	}

	// saturated
	c = curv(o.phi[nu-1:nt], aq[nu-1:nt])
	for _, p := range indices(c, ns-1, o.prms.Cfac)[1:] {
		iphif = append(iphif, nu-1+p)
	}
	return
}

// curv computes the curvature at the interior points of (x,y)
//  the curvature at point k+1 is its relative deviation from the chord between points k and k+2
func curv(x, y []float64) (c []float64) {
	n := len(x)
	if n < 3 {
		return
	}
	c = make([]float64, n-2)
	for k := 0; k < n-2; k++ {
		s := (y[k+2] - y[k]) / (x[k+2] - x[k])
		yl := y[k] + (x[k+1]-x[k])*s
		c[k] = y[k+1]/yl - 1.0
	}
	return
}

// nonlin returns the first index i where (x,y) deviates from the straight line
// through points 0 and i by more than re; len(x)-1 is returned if there is none
func nonlin(x, y []float64, re float64) int {
	n := len(x)
	for i := 2; i < n; i++ {
		s := (y[i] - y[0]) / (x[i] - x[0])
		are := 0.0
		for k := 1; k < i; k++ {
			are = math.Max(are, math.Abs(y[k]/(y[0]+s*(x[k]-x[0]))-1.0))
		}
		if are > re {
			return i
		}
	}
	return n - 1
}

// indices selects positions 0..n+1 of a curve whose interior curvatures are c[0..n-1]
//  The minimum spacing at position p is fac*max|c|/|c[p-1]| rounded (ties to even).
//  The selection walks from position 0 until reaching iend and always includes n+1.
func indices(c []float64, iend int, fac float64) (isel []int) {
	n := len(c)
	cmax := 0.0
	for _, v := range c {
		cmax = math.Max(cmax, math.Abs(v))
	}
	di := make([]int, n) // min spacings
	for k, v := range c {
		a := math.Abs(v)
		if a == 0 || cmax == 0 {
			di[k] = n + 2 // straight: no need for points
			continue
		}
		d := math.RoundToEven(fac * cmax / a)
		if d > float64(n+2) {
			d = float64(n + 2)
		}
		di[k] = int(d)
	}
	isel = []int{0}
	p := 0
	for p < iend {
		p++
		if p >= n {
			break
		}
		if di[p-1] > 2 && di[p] > 1 {
			p += 2 // don't want points to be any further apart
		} else if di[p-1] > 1 {
			p++
		}
		isel = append(isel, p)
	}
	if isel[len(isel)-1] < n+1 {
		isel = append(isel, n+1)
	}
	return
}
