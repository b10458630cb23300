// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Tabulate computes a curve with n states from hdry to the air-entry head of mdl
//  The heads are equally spaced in log(-h). The spline coefficients are the ones of
//  cubic Hermite polynomials using the derivatives given by the model.
func Tabulate(mdl Model, sid int, hdry float64, n int) (c *Curve, err error) {

	// check
	he := mdl.He()
	if n < 3 {
		return nil, chk.Err("tabulate: number of points must be at least 3; n=%d is invalid", n)
	}
	if hdry >= he {
		return nil, chk.Err("tabulate: dry head must be smaller than the air-entry head. hdry=%g >= he=%g", hdry, he)
	}

	// heads
	X := utl.LinSpace(math.Log10(-hdry), math.Log10(-he), n)
	c = &Curve{
		Sid:   sid,
		H:     make([]float64, n),
		K:     make([]float64, n),
		Phi:   make([]float64, n),
		S:     make([]float64, n),
		Kco:   make([][3]float64, n-1),
		Phico: make([][3]float64, n-1),
		Ks:    mdl.Ks(),
		He:    he,
	}
	for i, x := range X {
		c.H[i] = -math.Pow(10, x)
	}
	c.H[0], c.H[n-1] = hdry, he

	// properties
	for i, h := range c.H {
		c.K[i] = mdl.K(h)
		c.Phi[i] = mdl.Phi(h)
		c.S[i] = mdl.S(h)
	}

	// coefficients
	for i := 0; i < n-1; i++ {
		c.Kco[i] = hermite(c.Phi[i+1]-c.Phi[i], c.K[i+1]-c.K[i], mdl.DKdphi(c.H[i]), mdl.DKdphi(c.H[i+1]))
		c.Phico[i] = hermite(c.H[i+1]-c.H[i], c.Phi[i+1]-c.Phi[i], c.K[i], c.K[i+1])
	}
	err = c.Validate()
	return
}

// hermite returns the coefficients of the cubic y(x) - y(0) = x*(c0 + x*(c1 + x*c2)) on [0,L]
// with increment Δy = y(L) - y(0) and slopes d0 = y'(0) and d1 = y'(L)
func hermite(L, Δy, d0, d1 float64) (co [3]float64) {
	d := Δy / L
	co[0] = d0
	co[1] = (3.0*d - 2.0*d0 - d1) / L
	co[2] = (d0 + d1 - 2.0*d) / L / L
	return
}
