// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluxes

import (
	"math"
)

// State defines the state of bounded Newton iterations
type State int

const (
	Bracketing      State = iota // bounds are set but no step has been taken
	NewtonStep                   // last step was a Newton step within bounds
	Bisect                       // last Newton step left the bounds and was replaced by bisection
	Converged                    // tolerances are satisfied or the bracket has collapsed
	MaxIterExceeded              // max number of iterations reached without convergence
)

var stateNames = [...]string{"Bracketing", "NewtonStep", "Bisect", "Converged", "MaxIterExceeded"}

// String returns the name of this state
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// Done tells whether iterations have finished
func (s State) Done() bool {
	return s == Converged || s == MaxIterExceeded
}

// newton implements bounded Newton-Raphson iterations with a bisection safeguard
// to find q such that u(q) = v1, where u is monotonic within [q1, q2]
type newton struct {

	// input
	v1     float64 // target value of u
	qscale float64 // flux scale for the tolerance on q
	uscale float64 // scale for the tolerance on u
	rerr   float64 // relative tolerance
	qtol   float64 // the bracket is collapsed when |q2-q1| < qtol
	nmaxit int     // max number of iterations

	// state
	q     float64 // current estimate
	q1    float64 // lower bound
	q2    float64 // upper bound
	it    int     // number of iterations
	state State   // current state
}

// step updates q given u(q) and ∂u/∂q; the bound crossed by the step is tightened
func (o *newton) step(u, dudq float64) State {
	o.it++
	dq := (o.v1 - u) / dudq
	qp := o.q
	o.state = NewtonStep
	switch {
	case math.IsNaN(dq) || math.IsInf(dq, 0):
		o.q = 0.5 * (o.q1 + o.q2)
		o.state = Bisect
	case dq > 0:
		o.q1 = o.q
		o.q += dq
		if o.q >= o.q2 {
			o.q = 0.5 * (o.q1 + o.q2)
			o.state = Bisect
		}
	default:
		o.q2 = o.q
		o.q += dq
		if o.q <= o.q1 {
			o.q = 0.5 * (o.q1 + o.q2)
			o.state = Bisect
		}
	}

	// convergence test; q can be at or near zero
	if math.Abs(o.q-qp) < o.rerr*math.Max(math.Abs(o.q), o.qscale) && math.Abs(u-o.v1) < o.rerr*o.uscale || math.Abs(o.q1-o.q2) < o.qtol {
		o.state = Converged
	} else if o.it >= o.nmaxit {
		o.state = MaxIterExceeded
	}
	return o.state
}
