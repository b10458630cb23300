// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// checkDerivs checks ∂φ/∂h = K and ∂K/∂h = K ∂K/∂φ at unsaturated heads H
func checkDerivs(tst *testing.T, mdl Model, H []float64, tol float64, verbose bool) {
	for _, h := range H {
		if h >= mdl.He() {
			tst.Errorf("checkDerivs: head h=%g must be smaller than he=%g\n", h, mdl.He())
			return
		}
		io.Pforan("\nh=%g, K=%g, φ=%g\n", h, mdl.K(h), mdl.Phi(h))
		chk.DerivScaSca(tst, "∂φ/∂h ", tol, mdl.K(h), h, 1e-3, verbose, func(x float64) float64 {
			return mdl.Phi(x)
		})
		chk.DerivScaSca(tst, "∂K/∂h ", tol, mdl.DKdphi(h)*mdl.K(h), h, 1e-3, verbose, func(x float64) float64 {
			return mdl.K(x)
		})
	}
}
