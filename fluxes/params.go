// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluxes

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Params holds the constants controlling the construction of flux tables
type Params struct {
	Rerr    float64 // relative error; controls accuracy of fluxes and spacing of breakpoints
	Cfac    float64 // factor converting curvature into spacing of breakpoints
	Ratio   float64 // tolerance of steady-state solutions is Ratio*Rerr
	Qsmall  float64 // small flux; bracket is collapsed when |q2-q1| < 0.01*Qsmall
	Dh      float64 // head increment for potentials in the saturated region
	Nsat    int     // max number of points in the saturated region
	NmaxIt  int     // max number of Newton iterations in steady-state solutions
	Verbose bool    // print warnings
	ShowR   bool    // show iterations of steady-state solutions
}

// NewParams returns the default parameters
func NewParams() *Params {
	return &Params{
		Rerr:   1e-2,
		Cfac:   1.2,
		Ratio:  0.1,
		Qsmall: 1e-5,
		Dh:     2.0,
		Nsat:   20,
		NmaxIt: 50,
	}
}

// Init sets parameters given by name; parameters not given keep their current values
func (o *Params) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "rerr":
			o.Rerr = p.V
		case "cfac":
			o.Cfac = p.V
		case "ratio":
			o.Ratio = p.V
		case "qsmall":
			o.Qsmall = p.V
		case "dh":
			o.Dh = p.V
		case "nsat":
			o.Nsat = int(p.V)
		case "NmaxIt":
			o.NmaxIt = int(p.V)
		case "verbose":
			o.Verbose = p.V > 0
		case "ShowR":
			o.ShowR = p.V > 0
		default:
			return chk.Err("fluxes: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.check()
}

// GetPrms returns the current values of parameters
func (o Params) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "rerr", V: o.Rerr},
		&dbf.P{N: "cfac", V: o.Cfac},
		&dbf.P{N: "ratio", V: o.Ratio},
		&dbf.P{N: "qsmall", V: o.Qsmall},
		&dbf.P{N: "dh", V: o.Dh},
		&dbf.P{N: "nsat", V: float64(o.Nsat)},
		&dbf.P{N: "NmaxIt", V: float64(o.NmaxIt)},
		&dbf.P{N: "verbose", V: b2f(o.Verbose)},
		&dbf.P{N: "ShowR", V: b2f(o.ShowR)},
	}
}

// check checks parameters
func (o Params) check() error {
	if o.Rerr <= 0 || o.Rerr >= 1 {
		return chk.Err("fluxes: rerr must be in (0,1); rerr=%g is invalid", o.Rerr)
	}
	if o.Cfac <= 0 {
		return chk.Err("fluxes: cfac must be positive; cfac=%g is invalid", o.Cfac)
	}
	if o.Ratio <= 0 || o.Ratio > 1 {
		return chk.Err("fluxes: ratio must be in (0,1]; ratio=%g is invalid", o.Ratio)
	}
	if o.Qsmall <= 0 {
		return chk.Err("fluxes: qsmall must be positive; qsmall=%g is invalid", o.Qsmall)
	}
	if o.Dh <= 0 {
		return chk.Err("fluxes: dh must be positive; dh=%g is invalid", o.Dh)
	}
	if o.Nsat < 1 {
		return chk.Err("fluxes: nsat must be at least 1; nsat=%d is invalid", o.Nsat)
	}
	if o.NmaxIt < 1 {
		return chk.Err("fluxes: NmaxIt must be at least 1; NmaxIt=%d is invalid", o.NmaxIt)
	}
	return nil
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
