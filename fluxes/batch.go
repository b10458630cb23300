// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluxes

import (
	"runtime"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/swimflux/mdl/soil"
)

// Job defines one flux table to be built
type Job struct {
	Curve *soil.Curve // soil properties
	Dz    float64     // path length
}

// BuildAll builds the tables of all jobs with nworkers concurrent builds
//  nworkers < 1 means one worker per CPU. tables[k] corresponds to jobs[k].
//  done is called after each build, possibly concurrently; it may be nil.
func BuildAll(jobs []Job, prms *Params, nworkers int, done func(k int)) (tables []*Table, err error) {
	if nworkers < 1 {
		nworkers = runtime.NumCPU()
	}
	tables = make([]*Table, len(jobs))
	errs := make([]error, len(jobs))
	queue := make(chan int)
	var wg sync.WaitGroup
	wg.Add(nworkers)
	for w := 0; w < nworkers; w++ {
		go func() {
			defer wg.Done()
			for k := range queue {
				tables[k], errs[k] = Build(jobs[k].Curve, jobs[k].Dz, prms)
				if done != nil {
					done(k)
				}
			}
		}()
	}
	for k := range jobs {
		queue <- k
	}
	close(queue)
	wg.Wait()

	// first error in job order
	for k, e := range errs {
		if e != nil {
			sid := -1
			if jobs[k].Curve != nil {
				sid = jobs[k].Curve.Sid
			}
			return nil, chk.Err("job %d (soil %d, dz=%g) failed:\n%v", k, sid, jobs[k].Dz, e)
		}
	}
	return
}
