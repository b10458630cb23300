// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluxes

import (
	"github.com/cpmech/gosl/io"
)

// WarnKind defines the kind of a recoverable problem found while building a table
type WarnKind int

const (
	GuessOutOfRange   WarnKind = iota // initial flux outside the valid bounds; default guess used
	TooManyIterations                 // Newton iterations did not converge; last estimate used
)

// Warning holds information about a recoverable problem
type Warning struct {
	Kind  WarnKind // kind of problem
	Sid   int      // soil identifier
	Ia    int      // index of state at the top of the path
	Ib    int      // index of state at the bottom of the path
	Iter  int      // number of iterations
	Value float64  // offending guess or last estimate
	Lo    float64  // lower bound of flux
	Hi    float64  // upper bound of flux
}

// String returns a description of this warning
func (o Warning) String() string {
	switch o.Kind {
	case GuessOutOfRange:
		return io.Sf("soil %d: ssflux: qin=%g out of range [%g, %g] at ia, ib = %d, %d", o.Sid, o.Value, o.Lo, o.Hi, o.Ia, o.Ib)
	case TooManyIterations:
		return io.Sf("soil %d: ssflux: too many iterations (%d) at ia, ib = %d, %d. q=%g within [%g, %g]", o.Sid, o.Iter, o.Ia, o.Ib, o.Value, o.Lo, o.Hi)
	}
	return io.Sf("soil %d: unknown warning at ia, ib = %d, %d", o.Sid, o.Ia, o.Ib)
}

// warn records a warning and prints it in verbose mode
func (o *work) warn(w Warning) {
	w.Sid = o.sid
	o.warns = append(o.warns, w)
	if o.prms.Verbose {
		io.Pfyel("%v\n", w)
	}
}
