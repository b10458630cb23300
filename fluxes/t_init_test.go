// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluxes

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/swimflux/mdl/soil"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// bcCurve returns a Brooks-Corey curve with Ks=2, he=-10 and n points from h=-1e10 to h=-10
// such that K(-1e10) ≈ 8.74e-10
func bcCurve(tst *testing.T, sid, n int) *soil.Curve {
	eta := math.Log(2.0/8.740528e-10) / math.Log(-1e10/-10.0)
	mdl := new(soil.BrooksCorey)
	err := mdl.Init(dbf.Params{
		&dbf.P{N: "lam", V: 0.3},
		&dbf.P{N: "eta", V: eta},
		&dbf.P{N: "ks", V: 2.0},
		&dbf.P{N: "he", V: -10.0},
	})
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	c, err := soil.Tabulate(mdl, sid, -1e10, n)
	if err != nil {
		tst.Fatalf("Tabulate failed: %v\n", err)
	}
	return c
}

// extendedWork returns the working buffers after computing the reference curve
func extendedWork(tst *testing.T, dz float64) (o *work, aq []float64) {
	o = newWork(bcCurve(tst, 1, 23), dz, NewParams())
	aq = o.reference()
	return
}
