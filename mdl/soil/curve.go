// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package soil implements tabulated hydraulic property curves of soils
//  The curves are ordered from the driest state (index 0) to the air-entry state (index n-1).
//  The conductivity K and the matric flux potential φ are related by dφ/dh = K.
package soil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Curve holds the hydraulic properties of a soil at tabulated states
//  Kco[i] holds the coefficients of K within interval i as a function of the offset x = φ - Phi[i]:
//    K(x) = K[i] + x*(Kco[i][0] + x*(Kco[i][1] + x*Kco[i][2]))
//  Phico[i] holds the same kind of coefficients of φ as a function of the offset x = h - H[i]
type Curve struct {
	Sid   int          `json:"sid"`   // soil identifier
	H     []float64    `json:"h"`     // matric head
	K     []float64    `json:"K"`     // hydraulic conductivity
	Phi   []float64    `json:"phi"`   // matric flux potential
	S     []float64    `json:"S"`     // saturation fraction
	Kco   [][3]float64 `json:"Kco"`   // coefficients of K(φ) for each interval
	Phico [][3]float64 `json:"phico"` // coefficients of φ(h) for each interval
	Ks    float64      `json:"ks"`    // saturated conductivity
	He    float64      `json:"he"`    // air-entry head
}

// N returns the number of tabulated states
func (o Curve) N() int {
	return len(o.H)
}

// Validate checks the structure of the curve
func (o Curve) Validate() error {
	n := len(o.H)
	if n < 3 {
		return chk.Err("soil %d: curve must have at least 3 points; %d is invalid", o.Sid, n)
	}
	if len(o.K) != n || len(o.Phi) != n || len(o.S) != n {
		return chk.Err("soil %d: arrays must have the same length. len(h)=%d, len(K)=%d, len(phi)=%d, len(S)=%d", o.Sid, n, len(o.K), len(o.Phi), len(o.S))
	}
	if len(o.Kco) != n-1 || len(o.Phico) != n-1 {
		return chk.Err("soil %d: coefficients must be given for %d intervals. len(Kco)=%d, len(phico)=%d", o.Sid, n-1, len(o.Kco), len(o.Phico))
	}
	if o.Ks <= 0 {
		return chk.Err("soil %d: saturated conductivity must be positive; ks=%g is invalid", o.Sid, o.Ks)
	}
	for i := 1; i < n; i++ {
		if o.H[i] <= o.H[i-1] {
			return chk.Err("soil %d: heads must be increasing. h[%d]=%g <= h[%d]=%g", o.Sid, i, o.H[i], i-1, o.H[i-1])
		}
		if o.Phi[i] <= o.Phi[i-1] {
			return chk.Err("soil %d: potentials must be increasing. phi[%d]=%g <= phi[%d]=%g", o.Sid, i, o.Phi[i], i-1, o.Phi[i-1])
		}
		if o.K[i] < o.K[i-1] {
			return chk.Err("soil %d: conductivities must not decrease. K[%d]=%g < K[%d]=%g", o.Sid, i, o.K[i], i-1, o.K[i-1])
		}
	}
	if o.K[0] <= 0 {
		return chk.Err("soil %d: conductivity at the dry end must be positive; K[0]=%g is invalid", o.Sid, o.K[0])
	}
	if !near(o.H[n-1], o.He) {
		return chk.Err("soil %d: last head must be the air-entry head. h[%d]=%g != he=%g", o.Sid, n-1, o.H[n-1], o.He)
	}
	if !near(o.K[n-1], o.Ks) {
		return chk.Err("soil %d: last conductivity must be the saturated one. K[%d]=%g != ks=%g", o.Sid, n-1, o.K[n-1], o.Ks)
	}
	return nil
}

// Kofphi computes K(φ) using the spline coefficients
//  For φ beyond the air-entry potential the soil is saturated and Ks is returned
func (o Curve) Kofphi(phi float64) float64 {
	n := len(o.Phi)
	if phi >= o.Phi[n-1] {
		return o.Ks
	}
	i := n - 2
	for i > 0 && o.Phi[i] > phi {
		i--
	}
	x := phi - o.Phi[i]
	return o.K[i] + x*(o.Kco[i][0]+x*(o.Kco[i][1]+x*o.Kco[i][2]))
}

// Phiofh computes φ(h) using the spline coefficients
func (o Curve) Phiofh(h float64) float64 {
	n := len(o.H)
	if h >= o.H[n-1] {
		return o.Phi[n-1] + o.Ks*(h-o.H[n-1])
	}
	i := n - 2
	for i > 0 && o.H[i] > h {
		i--
	}
	x := h - o.H[i]
	return o.Phi[i] + x*(o.Phico[i][0]+x*(o.Phico[i][1]+x*o.Phico[i][2]))
}

// Encode returns the JSON representation of this curve
func (o Curve) Encode() ([]byte, error) {
	return json.MarshalIndent(o, "", "  ")
}

// ReadCurve reads a curve from a JSON file and validates it
func ReadCurve(dir, fn string) (c *Curve, err error) {
	path := filepath.Join(dir, fn)
	if err = checkFile(path); err != nil {
		return nil, err
	}
	b := io.ReadFile(path)
	c = new(Curve)
	err = json.Unmarshal(b, c)
	if err != nil {
		return nil, chk.Err("cannot decode curve in %q:\n%v", fn, err)
	}
	err = c.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// checkFile checks that fn is a regular file, since io.ReadFile panics otherwise
func checkFile(fn string) error {
	fi, err := os.Stat(fn)
	if err != nil {
		return chk.Err("cannot read file %q:\n%v", fn, err)
	}
	if !fi.Mode().IsRegular() {
		return chk.Err("cannot read file %q: not a regular file", fn)
	}
	return nil
}

// near checks whether a and b are equal within a small relative tolerance
func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-10*math.Max(1, math.Abs(b))
}
