// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model implements an analytical hydraulic model used to tabulate curves
//  h is the matric head (negative in unsaturated states)
type Model interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Ks() float64                     // returns the saturated conductivity
	He() float64                     // returns the air-entry head
	K(h float64) float64             // computes the conductivity
	S(h float64) float64             // computes the saturation fraction
	Phi(h float64) float64           // computes the matric flux potential φ = ∫K dh
	DKdphi(h float64) float64        // computes ∂K/∂φ
}

// New returns new hydraulic model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'soil' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
