// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// BrooksCorey implements Brooks and Corey's model with a power-law conductivity
//  S(h) = (h/he)^(-λ)
//  K(h) = Ks (h/he)^(-η)
//  φ(h) = Ks he (h/he)^(1-η) / (1-η)
//  for h < he; the soil is saturated otherwise
type BrooksCorey struct {

	// parameters
	λ  float64 // slope coefficient of the saturation curve
	η  float64 // exponent of the conductivity curve
	ks float64 // saturated conductivity
	he float64 // air-entry head
}

// add model to factory
func init() {
	allocators["bc"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(prms dbf.Params) (err error) {
	o.η = -1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lam":
			o.λ = p.V
		case "eta":
			o.η = p.V
		case "ks":
			o.ks = p.V
		case "he":
			o.he = p.V
		default:
			return chk.Err("bc: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.η < 0 {
		o.η = 2.0 + 3.0*o.λ
	}
	if o.λ <= 0 {
		return chk.Err("bc: lam must be positive; lam=%g is invalid\n", o.λ)
	}
	if o.η <= 1 {
		return chk.Err("bc: eta must be greater than 1; eta=%g is invalid\n", o.η)
	}
	if o.ks <= 0 {
		return chk.Err("bc: ks must be positive; ks=%g is invalid\n", o.ks)
	}
	if o.he >= 0 {
		return chk.Err("bc: he must be negative; he=%g is invalid\n", o.he)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "lam", V: 0.3},
			&dbf.P{N: "eta", V: 2.9},
			&dbf.P{N: "ks", V: 2.0},
			&dbf.P{N: "he", V: -10.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "lam", V: o.λ},
		&dbf.P{N: "eta", V: o.η},
		&dbf.P{N: "ks", V: o.ks},
		&dbf.P{N: "he", V: o.he},
	}
}

// Ks returns the saturated conductivity
func (o BrooksCorey) Ks() float64 {
	return o.ks
}

// He returns the air-entry head
func (o BrooksCorey) He() float64 {
	return o.he
}

// K computes the conductivity
func (o BrooksCorey) K(h float64) float64 {
	if h >= o.he {
		return o.ks
	}
	return o.ks * math.Pow(h/o.he, -o.η)
}

// S computes the saturation fraction
func (o BrooksCorey) S(h float64) float64 {
	if h >= o.he {
		return 1
	}
	return math.Pow(h/o.he, -o.λ)
}

// Phi computes the matric flux potential
func (o BrooksCorey) Phi(h float64) float64 {
	phie := o.ks * o.he / (1.0 - o.η)
	if h >= o.he {
		return phie + o.ks*(h-o.he)
	}
	return phie * math.Pow(h/o.he, 1.0-o.η)
}

// DKdphi computes ∂K/∂φ = (∂K/∂h) / K
//  at h == he the derivative from the unsaturated side is returned
func (o BrooksCorey) DKdphi(h float64) float64 {
	if h > o.he {
		return 0
	}
	return -o.η / h
}
