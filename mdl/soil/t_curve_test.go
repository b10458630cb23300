// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// testCurve returns the Brooks-Corey curve with Ks=2, he=-10, and 23 points
// between h=-1e10 and h=-10 where K(-1e10) ≈ 8.74e-10
func testCurve(tst *testing.T) *Curve {
	eta := math.Log(2.0/8.740528e-10) / math.Log(-1e10/-10.0)
	mdl := new(BrooksCorey)
	err := mdl.Init(dbf.Params{
		&dbf.P{N: "lam", V: 0.3},
		&dbf.P{N: "eta", V: eta},
		&dbf.P{N: "ks", V: 2.0},
		&dbf.P{N: "he", V: -10.0},
	})
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	c, err := Tabulate(mdl, 1, -1e10, 23)
	if err != nil {
		tst.Fatalf("Tabulate failed: %v\n", err)
	}
	return c
}

func Test_curve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("curve01")

	c := testCurve(tst)
	n := c.N()
	chk.Int(tst, "n", n, 23)
	chk.Float64(tst, "h[0]", 1e-17, c.H[0], -1e10)
	chk.Float64(tst, "h[n-1]", 1e-17, c.H[n-1], -10)
	chk.Float64(tst, "K[0]", 1e-15, c.K[0], 8.740528e-10)
	chk.Float64(tst, "K[n-1]", 1e-17, c.K[n-1], 2.0)
	chk.Float64(tst, "S[n-1]", 1e-17, c.S[n-1], 1.0)

	// splines match the tabulated values at both ends of each interval
	for i := 0; i < n-1; i++ {
		chk.Float64(tst, io.Sf("K(φ[%d])", i), 1e-15, c.Kofphi(c.Phi[i]), c.K[i])
		x := c.Phi[i+1] - c.Phi[i]
		Kend := c.K[i] + x*(c.Kco[i][0]+x*(c.Kco[i][1]+x*c.Kco[i][2]))
		chk.Float64(tst, io.Sf("K(φ[%d]⁻)", i+1), 1e-12*math.Max(1, c.K[i+1]), Kend, c.K[i+1])
		chk.Float64(tst, io.Sf("φ(h[%d])", i), 1e-12*c.Phi[i], c.Phiofh(c.H[i]), c.Phi[i])
	}

	// saturated branch
	chk.Float64(tst, "K(φe+1)", 1e-17, c.Kofphi(c.Phi[n-1]+1), 2.0)
	chk.Float64(tst, "φ(he+3)", 1e-12, c.Phiofh(-7), c.Phi[n-1]+6)
}

func Test_curve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("curve02")

	c := testCurve(tst)
	if err := c.Validate(); err != nil {
		tst.Errorf("Validate failed: %v\n", err)
		return
	}

	// each case corrupts a fresh copy of the curve
	cases := map[string]func(c *Curve){
		"too few":      func(c *Curve) { c.H, c.K, c.Phi, c.S = c.H[:2], c.K[:2], c.Phi[:2], c.S[:2] },
		"lengths":      func(c *Curve) { c.K = c.K[:10] },
		"coefficients": func(c *Curve) { c.Kco = c.Kco[:5] },
		"ks":           func(c *Curve) { c.Ks = 0 },
		"heads":        func(c *Curve) { c.H[3] = c.H[2] },
		"potentials":   func(c *Curve) { c.Phi[4] = c.Phi[3] - 1 },
		"K":            func(c *Curve) { c.K[5] = c.K[4] / 2 },
		"K[0]":         func(c *Curve) { c.K[0] = 0 },
		"he":           func(c *Curve) { c.He = -11 },
		"K[n-1]":       func(c *Curve) { c.K[c.N()-1] = 1.9; c.Ks = 2.1 },
	}
	for key, corrupt := range cases {
		d := testCurve(tst)
		corrupt(d)
		if err := d.Validate(); err == nil {
			tst.Errorf("%s: Validate should have failed\n", key)
		} else {
			io.Pforan("%s: %v\n", key, err)
		}
	}
}

func Test_curve03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("curve03")

	c := testCurve(tst)
	b, err := c.Encode()
	if err != nil {
		tst.Errorf("Encode failed: %v\n", err)
		return
	}
	dir := tst.TempDir()
	err = os.WriteFile(filepath.Join(dir, "soil1.json"), b, 0644)
	if err != nil {
		tst.Errorf("WriteFile failed: %v\n", err)
		return
	}
	d, err := ReadCurve(dir, "soil1.json")
	if err != nil {
		tst.Errorf("ReadCurve failed: %v\n", err)
		return
	}
	chk.Int(tst, "sid", d.Sid, 1)
	chk.Array(tst, "h", 1e-17, d.H, c.H)
	chk.Array(tst, "K", 1e-17, d.K, c.K)
	chk.Array(tst, "phi", 1e-17, d.Phi, c.Phi)
	chk.Float64(tst, "Kco[7][2]", 1e-17, d.Kco[7][2], c.Kco[7][2])

	// invalid file
	bad, _ := json.Marshal(map[string]interface{}{"sid": 2, "h": []float64{-1, -2}})
	os.WriteFile(filepath.Join(dir, "bad.json"), bad, 0644)
	if _, err = ReadCurve(dir, "bad.json"); err == nil {
		tst.Errorf("ReadCurve should have failed\n")
	}
	if _, err = ReadCurve(dir, "missing.json"); err == nil {
		tst.Errorf("ReadCurve should have failed\n")
	}

	// directory instead of file
	os.Mkdir(filepath.Join(dir, "sub.json"), 0755)
	_, err = ReadCurve(dir, "sub.json")
	if err == nil {
		tst.Errorf("ReadCurve should have failed\n")
		return
	}
	io.Pforan("%v\n", err)
}
