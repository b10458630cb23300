// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluxes

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/swimflux/mdl/soil"
)

func Test_table01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table01")

	c := bcCurve(tst, 1, 23)
	t, err := Build(c, 150, nil)
	if err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}
	io.Pforan("stats = %+v\n", t.Stats)

	// breakpoints
	chk.Int(tst, "Nu", t.Stats.Nu, 23)
	chk.Int(tst, "Nt", t.Stats.Nt, 43)
	chk.Int(tst, "Nphif", t.Stats.Nphif, 16)
	chk.Ints(tst, "Iphif", t.Stats.Iphif, []int{0, 19, 21, 22, 25, 28, 30, 31, 32, 33, 34, 35, 36, 38, 40, 42})
	chk.Int(tst, "number of warnings", len(t.Stats.Warns), 0)
	chk.Int(tst, "Nsol", t.Stats.Nsol, (t.Stats.Nt-1)+t.Stats.Nphif*(t.Stats.Nphif-1))
	if t.Stats.Nit < 1 {
		tst.Errorf("number of iterations is incorrect: %d\n", t.Stats.Nit)
	}

	// ends
	for ie, e := range t.Ends {
		chk.Int(tst, io.Sf("sid%d", ie), e.Sid, 1)
		chk.Int(tst, io.Sf("Nfu%d", ie), e.Nfu, 7)
		chk.Int(tst, io.Sf("Nft%d", ie), e.Nft, 31)
		chk.Float64(tst, io.Sf("dz%d", ie), 1e-17, e.Dz, 150)
		chk.Int(tst, io.Sf("len(Phif%d)", ie), len(e.Phif), 31)
		for i := 1; i < e.Nft; i++ {
			if e.Phif[i] <= e.Phif[i-1] {
				tst.Errorf("potentials must be increasing: Phif[%d]=%g <= Phif[%d]=%g\n", i, e.Phif[i], i-1, e.Phif[i-1])
				return
			}
		}
	}
	chk.Array(tst, "Phif", 0, t.Ends[0].Phif, t.Ends[1].Phif)
	chk.Float64(tst, "Phif[0]", 1e-17, t.Ends[0].Phif[0], c.Phi[0])
	chk.Float64(tst, "Phif[Nfu-1]", 1e-17, t.Ends[0].Phif[6], c.Phi[22])

	// the potentials at the ends are not aliased
	t.Ends[0].Phif[0]++
	if t.Ends[1].Phif[0] == t.Ends[0].Phif[0] {
		tst.Errorf("Phif of both ends must not share memory\n")
	}
	t.Ends[0].Phif[0]--

	// fluxes
	N := t.Ends[0].Nft
	chk.Int(tst, "len(Q)", len(t.Q), N)
	for i := 0; i < N; i++ {
		chk.Int(tst, "len(Q[i])", len(t.Q[i]), N)
	}
	chk.Float64(tst, "Q[0][0]", 1e-17, t.Q[0][0], c.K[0])
	chk.Float64(tst, "Q[N-1][N-1]", 1e-17, t.Q[N-1][N-1], c.Ks)
	phi := t.Ends[0].Phif
	for k := 1; k < N; k += 2 {
		chk.Float64(tst, io.Sf("Q[%d][%d]", k, k), 1e-15, t.Q[k][k], c.Kofphi(phi[k]))
	}
	for k := 0; k < N; k += 2 {
		chk.Float64(tst, io.Sf("Q[%d][%d]", k, k), 1e-15, t.Q[k][k], c.Kofphi(phi[k]))
	}

	// fluxes at breakpoints: wetter bottom gives smaller flux; wetter top gives larger flux
	for i := 0; i < N; i += 2 {
		for j := 2; j < N; j += 2 {
			if t.Q[i][j] > t.Q[i][j-2]+1e-12 {
				tst.Errorf("Q[%d][%d]=%g > Q[%d][%d]=%g\n", i, j, t.Q[i][j], i, j-2, t.Q[i][j-2])
				return
			}
		}
	}
	for j := 0; j < N; j += 2 {
		for i := 2; i < N; i += 2 {
			if t.Q[i][j] < t.Q[i-2][j]-1e-12 {
				tst.Errorf("Q[%d][%d]=%g < Q[%d][%d]=%g\n", i, j, t.Q[i][j], i-2, j, t.Q[i-2][j])
				return
			}
		}
	}

	// deterministic
	t2, err := Build(c, 150, nil)
	if err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "Q", 0, t2.Q, t.Q)
	chk.Array(tst, "Phif", 0, t2.Ends[0].Phif, t.Ends[0].Phif)
	chk.Int(tst, "Nit", t2.Stats.Nit, t.Stats.Nit)
}

func Test_table02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table02")

	c := bcCurve(tst, 7, 23)
	for _, dz := range []float64{10, 50, 500} {
		t, err := Build(c, dz, nil)
		if err != nil {
			tst.Errorf("Build failed: %v\n", err)
			return
		}
		io.Pforan("dz = %g: Iphif = %v\n", dz, t.Stats.Iphif)
		e := t.Ends[0]
		chk.Int(tst, "Nft", e.Nft, 2*t.Stats.Nphif-1)
		chk.Int(tst, "Iphif[0]", t.Stats.Iphif[0], 0)
		chk.Int(tst, "Iphif[last]", t.Stats.Iphif[t.Stats.Nphif-1], t.Stats.Nt-1)
		chk.Float64(tst, "Q[0][0]", 1e-17, t.Q[0][0], c.K[0])
		chk.Float64(tst, "Q[N-1][N-1]", 1e-17, t.Q[e.Nft-1][e.Nft-1], c.Ks)
		for _, w := range t.Stats.Warns {
			if w.Kind == TooManyIterations {
				tst.Errorf("dz = %g: %v\n", dz, w)
			}
		}
	}
	t10, _ := Build(c, 10, nil)
	chk.Ints(tst, "Iphif(dz=10)", t10.Stats.Iphif, []int{0, 22, 25, 27, 28, 29, 30, 31, 33, 35, 38})
}

func Test_table03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table03")

	c := bcCurve(tst, 1, 23)

	_, err := Build(c, 0, nil)
	if err == nil {
		tst.Errorf("zero path length should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	_, err = Build(c, -5, nil)
	if err == nil {
		tst.Errorf("negative path length should have failed\n")
		return
	}

	_, err = Build(nil, 150, nil)
	if err == nil {
		tst.Errorf("nil curve should have failed\n")
		return
	}

	bad := *c
	bad.Phi = append([]float64{}, c.Phi...)
	bad.Phi[3] = bad.Phi[2]
	_, err = Build(&bad, 150, nil)
	if err == nil {
		tst.Errorf("invalid curve should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	prms := NewParams()
	prms.Rerr = -1
	_, err = Build(c, 150, prms)
	if err == nil {
		tst.Errorf("invalid parameters should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	// minimum curve
	mdl, _ := soil.New("bc")
	mdl.Init(mdl.GetPrms(true))
	small, err := soil.Tabulate(mdl, 2, -1e4, 3)
	if err != nil {
		tst.Errorf("Tabulate failed: %v\n", err)
		return
	}
	t, err := Build(small, 100, nil)
	if err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}
	io.Pforan("Iphif = %v\n", t.Stats.Iphif)
	chk.Int(tst, "Iphif[nfu-1]", t.Stats.Iphif[(t.Ends[0].Nfu+1)/2-1], 2)
}

func Test_output01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("output01")

	t, err := Build(bcCurve(tst, 1, 23), 150, nil)
	if err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}
	var buf bytes.Buffer
	t.Encode(&buf)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if io.Verbose {
		io.Pf("%s\n", strings.Join(lines[:9], "\n"))
	}

	// 2 ends with 2 header lines and 7 lines of potentials each; 1 header and 31 rows of fluxes
	chk.Int(tst, "number of lines", len(lines), 2*(2+7)+1+31)
	chk.String(tst, lines[0], "# end 1: sid nfu nft dz")
	chk.String(tst, lines[1], "1 7 31 150")
	chk.String(tst, lines[9], "# end 2: sid nfu nft dz")
	chk.String(tst, lines[18], "# fluxes")
	chk.Int(tst, "number of values in row", len(strings.Fields(lines[19])), 31)
	chk.Int(tst, "number of potentials in line", len(strings.Fields(lines[2])), 5)
	chk.Int(tst, "number of potentials in last line", len(strings.Fields(lines[8])), 1)
	chk.String(tst, t.String(), buf.String())
}
