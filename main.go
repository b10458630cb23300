// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/swimflux/fluxes"
	"github.com/cpmech/swimflux/inp"
	"github.com/cpmech/swimflux/store"
	"github.com/dustin/go-humanize"
	"github.com/gosuri/uiprogress"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".run", true)
	verbose := io.ArgToBool(1, true)
	nosave := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nSwimflux -- Steady-state flux tables for SWIM\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"do not save tables", "nosave", nosave,
		))
	}

	// run data
	run, err := inp.ReadRun(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	jobs := run.Jobs()

	// build tables
	var bar *uiprogress.Bar
	if verbose {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(jobs)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return io.Sf("%3d/%d tables", b.Current(), len(jobs))
		})
	}
	start := time.Now()
	tables, err := fluxes.BuildAll(jobs, run.Params, run.Nworkers, func(k int) {
		if bar != nil {
			bar.Incr()
		}
	})
	if verbose {
		uiprogress.Stop()
	}
	if err != nil {
		chk.Panic("%v", err)
	}
	elapsed := time.Since(start)

	// save tables
	var ids []string
	var nbytes uint64
	if !nosave {
		err = os.MkdirAll(filepath.Dir(run.DbFile), 0777)
		if err != nil {
			chk.Panic("cannot create directory for database (%s): %v", run.DbFile, err)
		}
		db, err := store.Open(run.DbFile)
		if err != nil {
			chk.Panic("%v", err)
		}
		defer db.Close()
		ids, err = db.SaveAll(run.Key, tables)
		if err != nil {
			chk.Panic("cannot save tables:\n%v", err)
		}
		if !run.NoText {
			for _, t := range tables {
				var buf bytes.Buffer
				t.Encode(&buf)
				nbytes += uint64(buf.Len())
				io.WriteFileD(run.DirOut, io.Sf("%s-soil%d-dz%g.txt", run.Key, t.Ends[0].Sid, t.Ends[0].Dz), &buf)
			}
		}
	}

	// summary
	if !verbose {
		return
	}
	var nit, nsol, nwarns int
	io.Pf("\n%6s%12s%6s%6s%12s%12s%8s  %s\n", "soil", "dz", "nfu", "nft", "iterations", "solutions", "warns", "id")
	for k, t := range tables {
		e := t.Ends[0]
		id := ""
		if len(ids) > 0 {
			id = ids[k]
		}
		io.Pf("%6d%12g%6d%6d%12s%12s%8d  %s\n", e.Sid, e.Dz, e.Nfu, e.Nft,
			humanize.Comma(int64(t.Stats.Nit)), humanize.Comma(int64(t.Stats.Nsol)), len(t.Stats.Warns), id)
		for _, w := range t.Stats.Warns {
			io.Pfyel("%v\n", w)
		}
		nit += t.Stats.Nit
		nsol += t.Stats.Nsol
		nwarns += len(t.Stats.Warns)
	}
	io.Pf("\n%s tables built in %v with %s iterations and %s solutions; %s warnings\n",
		humanize.Comma(int64(len(tables))), elapsed, humanize.Comma(int64(nit)), humanize.Comma(int64(nsol)), humanize.Comma(int64(nwarns)))
	if !nosave {
		io.Pf("database: %s\n", run.DbFile)
		if !run.NoText {
			io.Pf("text files (%s): %s\n", humanize.Bytes(nbytes), run.DirOut)
		}
	}
}
