// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.run) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/swimflux/fluxes"
	"github.com/cpmech/swimflux/mdl/soil"
)

// SoilData holds data of one soil. Either File or Model must be given
type SoilData struct {

	// input
	File  string     `json:"file"`  // curve (.json) file; relative to the directory of the run file
	Model string     `json:"model"` // name of analytical model to be tabulated; e.g. "bc"
	Sid   int        `json:"sid"`   // soil identifier (model only)
	Hdry  float64    `json:"hdry"`  // head at the dry end (model only)
	N     int        `json:"n"`     // number of tabulated states (model only)
	Prms  dbf.Params `json:"prms"`  // model parameters

	// derived
	Curve *soil.Curve `json:"-"` // hydraulic properties
}

// Run holds all data of a run
type Run struct {

	// input
	Desc     string      `json:"desc"`     // description of run
	Soils    []*SoilData `json:"soils"`    // soils
	Dzs      []float64   `json:"dzs"`      // path lengths
	Prms     dbf.Params  `json:"prms"`     // parameters of the flux tables generator
	Nworkers int         `json:"nworkers"` // number of concurrent builds; 0 means one per CPU
	DbFile   string      `json:"db"`       // database file; default is <dirout>/<key>.db
	DirOut   string      `json:"dirout"`   // directory for output; e.g. /tmp/swimflux
	NoText   bool        `json:"notext"`   // do not write text tables

	// derived
	Key    string         `json:"-"` // filename key; e.g. mysoils.run => mysoils
	Dir    string         `json:"-"` // directory of run file
	Params *fluxes.Params `json:"-"` // parameters of the flux tables generator
}

// SetDefault sets default values
func (o *SoilData) SetDefault() {
	o.Hdry = -1e10
	o.N = 23
}

// UnmarshalJSON decodes soil data; missing values are set to the default ones
func (o *SoilData) UnmarshalJSON(b []byte) error {
	type plain SoilData
	var p plain
	(*SoilData)(&p).SetDefault()
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*o = SoilData(p)
	return nil
}

// ReadRun reads all run data from a .run JSON file
func ReadRun(runfilepath string) (o *Run, err error) {

	// read file
	fi, err := os.Stat(runfilepath)
	if err == nil && !fi.Mode().IsRegular() {
		err = chk.Err("not a regular file")
	}
	if err != nil {
		return nil, chk.Err("ReadRun: cannot read run file %q:\n%v", runfilepath, err)
	}
	b := io.ReadFile(runfilepath)

	// decode
	o = new(Run)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadRun: cannot unmarshal run file %q:\n%v", runfilepath, err)
	}

	// input directory and filename key
	o.Dir = os.ExpandEnv(filepath.Dir(runfilepath))
	o.Key = io.FnKey(filepath.Base(runfilepath))

	// output
	if o.DirOut == "" {
		o.DirOut = "/tmp/swimflux/" + o.Key
	}
	if o.DbFile == "" {
		o.DbFile = filepath.Join(o.DirOut, o.Key+".db")
	}

	// parameters
	o.Params = fluxes.NewParams()
	err = o.Params.Init(o.Prms)
	if err != nil {
		return nil, chk.Err("ReadRun: %v", err)
	}

	// path lengths
	if len(o.Dzs) == 0 {
		return nil, chk.Err("ReadRun: at least one path length must be given in %q", runfilepath)
	}
	for i, dz := range o.Dzs {
		if dz <= 0 {
			return nil, chk.Err("ReadRun: path lengths must be positive; dzs[%d]=%g is invalid", i, dz)
		}
	}

	// soils
	if len(o.Soils) == 0 {
		return nil, chk.Err("ReadRun: at least one soil must be given in %q", runfilepath)
	}
	sids := make(map[int]int)
	for i, s := range o.Soils {
		err = s.load(o.Dir)
		if err != nil {
			return nil, chk.Err("ReadRun: soil # %d:\n%v", i, err)
		}
		if k, ok := sids[s.Curve.Sid]; ok {
			return nil, chk.Err("ReadRun: soils # %d and # %d have the same identifier %d", k, i, s.Curve.Sid)
		}
		sids[s.Curve.Sid] = i
	}
	return
}

// Jobs returns one job for each pair (soil, path length)
func (o Run) Jobs() (jobs []fluxes.Job) {
	for _, s := range o.Soils {
		for _, dz := range o.Dzs {
			jobs = append(jobs, fluxes.Job{Curve: s.Curve, Dz: dz})
		}
	}
	return
}

// load reads or tabulates the curve of this soil
func (o *SoilData) load(dir string) (err error) {
	switch {
	case o.File != "" && o.Model != "":
		return chk.Err("file %q and model %q cannot be given at the same time", o.File, o.Model)
	case o.File != "":
		o.Curve, err = soil.ReadCurve(dir, o.File)
		return
	case o.Model != "":
		var mdl soil.Model
		mdl, err = soil.New(o.Model)
		if err != nil {
			return
		}
		err = mdl.Init(o.Prms)
		if err != nil {
			return
		}
		o.Curve, err = soil.Tabulate(mdl, o.Sid, o.Hdry, o.N)
		return
	}
	return chk.Err("either file or model must be given")
}
