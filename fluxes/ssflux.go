// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluxes

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// qhuge is the bound for fluxes without physical limit
const qhuge = 1e20

// bounds returns the bounds of the steady flux between states ia (top) and ib (bottom)
// and the default initial guess within them
func (o *work) bounds(ia, ib int) (q1, q2, q0 float64) {
	Ka := o.K[ia]
	switch {
	case ia > ib: // wetter on top: flux larger than Ka
		return Ka, qhuge, 1.1 * Ka
	case o.h[ia] > o.h[ib]-o.dz: // gravity dominates: downward flux smaller than Ka
		return 0, Ka, 0.1 * Ka
	}
	return -qhuge, 0, -0.1 * Ka // upward flux
}

// ssflux computes the steady-state flux between states ia (top) and ib (bottom)
//  qin is the initial guess; if qin is out of bounds (or NaN) it is not clamped to the
//  nearest bound but replaced by the default guess, since the integrand is singular at the bounds
func (o *work) ssflux(ia, ib int, qin float64) float64 {

	// free drainage
	o.nsol++
	if ia == ib {
		return o.K[ia]
	}

	// saturated flow
	ha, hb, Ka, Kb := o.h[ia], o.h[ib], o.K[ia], o.K[ib]
	if o.saturated(ia) && o.saturated(ib) {
		return Ka * ((ha-hb)/o.dz + 1.0)
	}

	// bounds and initial guess
	q1, q2, q := o.bounds(ia, ib)
	if qin >= q1 && qin <= q2 {
		q = qin
	} else {
		o.warn(Warning{Kind: GuessOutOfRange, Ia: ia, Ib: ib, Value: qin, Lo: q1, Hi: q2})
	}

	// integrate from dry to wet up to saturation
	n := o.nu - 1
	var v1, dh float64
	var n1, n2 int
	if ia > ib {
		v1 = -o.dz
		n1, n2 = ib, ia
		if ia > n {
			dh = ha - o.he
			n2 = n
		}
	} else {
		v1 = o.dz
		n1, n2 = ia, ib
		if ib > n {
			dh = hb - o.he
			n2 = n
		}
	}
	sat := ia > n || ib > n
	Ks := math.Max(Ka, Kb)

	// bounded Newton iterations to get q that gives the correct dz
	nw := &newton{
		v1:     v1,
		qscale: Ka,
		uscale: o.dz,
		rerr:   o.prms.Ratio * o.prms.Rerr,
		qtol:   0.01 * o.prms.Qsmall,
		nmaxit: o.prms.NmaxIt,
		q:      q,
		q1:     q1,
		q2:     q2,
		state:  Bracketing,
	}
	if o.prms.ShowR {
		io.Pfyel("%6s%6s%6s%18s%18s%18s%18s  %s\n", "ia", "ib", "it", "q", "q1", "q2", "z", "state")
	}
	for !nw.state.Done() {
		z, dzdq := o.odef(n1, n2, nw.q)
		if sat {
			z += Ks * dh / (Ks - nw.q)
			dzdq += Ks * dh / ((Ks - nw.q) * (Ks - nw.q))
		}
		nw.step(z, dzdq)
		if o.prms.ShowR {
			io.Pfyel("%6d%6d%6d%18.10e%18.10e%18.10e%18.10e  %v\n", ia, ib, nw.it, nw.q, nw.q1, nw.q2, z, nw.state)
		}
	}
	o.nit += nw.it
	if nw.state == MaxIterExceeded {
		o.warn(Warning{Kind: TooManyIterations, Ia: ia, Ib: ib, Iter: nw.it, Value: nw.q, Lo: nw.q1, Hi: nw.q2})
	}
	return nw.q
}
