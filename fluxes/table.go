// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluxes computes tables of steady-state water fluxes between two potentials
//  The flux q between matric flux potentials φa (top) and φb (bottom) of a path with length dz
//  satisfies dz = ∫ dφ / (K(φ) - q), integrated from φa to φb. Tables are generated once per
//  soil and path length and later interpolated by the water-balance solver.
package fluxes

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/swimflux/mdl/soil"
)

// End holds information about one end of the path of a flux table
type End struct {
	Sid  int       `json:"sid"`  // soil identifier
	Nfu  int       `json:"nfu"`  // number of unsaturated potentials
	Nft  int       `json:"nft"`  // total number of potentials
	Dz   float64   `json:"dz"`   // path length
	Phif []float64 `json:"phif"` // potentials [Nft]
}

// Stats holds information about the construction of a table
type Stats struct {
	Nit   int       // total number of Newton iterations
	Nsol  int       // number of steady-state solutions
	Nu    int       // number of tabulated states of the soil
	Nt    int       // number of states including the saturated region
	Iphif []int     // indices of breakpoints in the extended curve
	Nphif int       // number of breakpoints
	Warns []Warning // recoverable problems
}

// Table holds the fluxes Q[i][j] for potential Ends[0].Phif[i] at the top and Ends[1].Phif[j] at the bottom
type Table struct {
	Ends  [2]End      // data of both ends
	Q     [][]float64 // fluxes [Nft][Nft]
	Stats Stats       // statistics
}

// Build generates the flux table of a soil for path length dz
//  prms may be nil, in which case the default parameters are used
func Build(c *soil.Curve, dz float64, prms *Params) (t *Table, err error) {

	// check input
	if prms == nil {
		prms = NewParams()
	}
	if err = prms.check(); err != nil {
		return
	}
	if c == nil {
		return nil, chk.Err("fluxes: curve must be given")
	}
	if err = c.Validate(); err != nil {
		return
	}
	if dz <= 0 {
		return nil, chk.Err("fluxes: path length must be positive; dz=%g is invalid", dz)
	}

	// reference curve and breakpoints
	o := newWork(c, dz, prms)
	aq := o.reference()
	iphif, nfu := o.breakpoints(aq)
	m := len(iphif)
	if m < 3 {
		return nil, chk.Err("fluxes: soil %d: at least 3 breakpoints are needed; %d were selected", o.sid, m)
	}

	// fluxes at breakpoints
	phif := make([]float64, m)
	qf := utl.Alloc(m, m)
	for k, i := range iphif {
		phif[k] = o.phi[i]
		qf[0][k] = aq[i]
	}
	o.fill(iphif, qf)

	// refine and assemble
	t = &Table{
		Q: o.refine(iphif, phif, qf),
		Stats: Stats{
			Nit:   o.nit,
			Nsol:  o.nsol,
			Nu:    o.nu,
			Nt:    len(aq),
			Iphif: iphif,
			Nphif: m,
			Warns: o.warns,
		},
	}
	phi5 := interleave(phif, midpoints(phif))
	for ie := 0; ie < 2; ie++ {
		t.Ends[ie] = End{
			Sid:  o.sid,
			Nfu:  2*nfu - 1,
			Nft:  len(phi5),
			Dz:   dz,
			Phif: append([]float64{}, phi5...),
		}
	}
	return
}

// fill computes the fluxes qf[i][j] between breakpoints; row 0 must be given
//  previously computed neighbours are used as initial guesses
func (o *work) fill(iphif []int, qf [][]float64) {
	m := len(iphif)

	// lower end wetter
	for j := 1; j < m; j++ {
		for i := 1; i <= j; i++ {
			q1 := qf[i-1][j]
			if o.h[iphif[j]]-o.dz < o.h[iphif[i]] {
				q1 = 0.0
			}
			qf[i][j] = o.ssflux(iphif[i], iphif[j], q1)
		}
	}

	// upper end wetter
	for i := 1; i < m; i++ {
		for j := i - 1; j >= 0; j-- {
			q1 := qf[i][j+1]
			if j+1 == i {
				q1 += (o.phi[iphif[i]] - o.phi[iphif[j]]) / o.dz
			}
			qf[i][j] = o.ssflux(iphif[i], iphif[j], q1)
		}
	}
}

// refine doubles the resolution of qf by quadratic interpolation at the midpoints of phif
//  and recomputes the diagonal at the midpoints with the conductivity spline
func (o *work) refine(iphif []int, phif []float64, qf [][]float64) (q5 [][]float64) {
	m := len(phif)
	ni := m - 1
	phii := midpoints(phif)

	// qi1: along rows; qi2: along columns; qi3: along columns of qi1
	qi1 := make([][]float64, m)
	for i := 0; i < m; i++ {
		qi1[i] = quadinterp(phif, qf[i], phii)
	}
	qi2 := utl.Alloc(ni, m)
	col := make([]float64, m)
	for j := 0; j < m; j++ {
		for i := 0; i < m; i++ {
			col[i] = qf[i][j]
		}
		for i, v := range quadinterp(phif, col, phii) {
			qi2[i][j] = v
		}
	}
	qi3 := utl.Alloc(ni, ni)
	for j := 0; j < ni; j++ {
		for i := 0; i < m; i++ {
			col[i] = qi1[i][j]
		}
		for i, v := range quadinterp(phif, col, phii) {
			qi3[i][j] = v
		}
	}

	// put all the fluxes together
	n5 := m + ni
	q5 = utl.Alloc(n5, n5)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			q5[2*i][2*j] = qf[i][j]
		}
		for j := 0; j < ni; j++ {
			q5[2*i][2*j+1] = qi1[i][j]
		}
	}
	for i := 0; i < ni; i++ {
		for j := 0; j < m; j++ {
			q5[2*i+1][2*j] = qi2[i][j]
		}
		for j := 0; j < ni; j++ {
			q5[2*i+1][2*j+1] = qi3[i][j]
		}
	}

	// accurate q5[j][j] = K(phii) at the midpoints
	for ip := 0; ip < ni; ip++ {
		ii := iphif[ip+1] - 1
		for o.phi[ii] > phii[ip] { // search down to locate the interval of phii
			ii--
		}
		q5[2*ip+1][2*ip+1] = o.kspline(ii, phii[ip]-o.phi[ii])
	}
	return
}

// midpoints returns the midpoints of consecutive values of x
func midpoints(x []float64) (xm []float64) {
	xm = make([]float64, len(x)-1)
	for i := 0; i < len(x)-1; i++ {
		xm[i] = 0.5 * (x[i] + x[i+1])
	}
	return
}

// interleave returns x[0], xm[0], x[1], xm[1], ..., x[n-1]
func interleave(x, xm []float64) (res []float64) {
	res = make([]float64, 0, len(x)+len(xm))
	for i, v := range x {
		res = append(res, v)
		if i < len(xm) {
			res = append(res, xm[i])
		}
	}
	return
}
