// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flex

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mcflugen/gFlex/fdm"
	"github.com/mcflugen/gFlex/inp"
	"github.com/mcflugen/gFlex/mplate"
	"github.com/mcflugen/gFlex/out"
)

// Flexure holds a simulation read from a .flx file
type Flexure struct {
	Sim    *inp.Simulation // simulation data
	Model  *Model          // inputs of the solution
	Result *Result         // results of the last run
}

// NewFlexure reads a simulation and its input tables
//
//	Input:
//	 simfilepath -- simulation (.flx) filename including full path
//	 alias       -- word to be appended to simulation key
func NewFlexure(simfilepath, alias string) (o *Flexure, err error) {
	o = new(Flexure)
	o.Sim, err = inp.ReadSim(simfilepath, alias)
	if err != nil {
		return nil, chk.Err("cannot read simulation:\n%w", err)
	}
	sim := o.Sim
	m := &Model{
		Method:   sim.Method,
		Mat:      mplate.NewMaterialFromSim(sim),
		PlateSol: sim.PlateSol,
		Grid:     fdm.Grid{Nx: sim.Grid.Nx, Ny: sim.Grid.Ny, Dx: sim.Grid.Dx, Dy: sim.Grid.Dy},
		Bcs:      sim.Bcs,
		LinSol:   sim.LinSol,
		Verbose:  sim.Data.Verbose,
		Debug:    sim.Data.Debug,
		Quiet:    sim.Data.Quiet,
	}
	o.Model = m
	if sim.Method == inp.FFT {
		return // reported by Run
	}
	var scalar bool
	if m.Te, m.TeField, scalar, err = sim.ReadTe(); err != nil {
		return nil, err
	}
	if scalar {
		m.TeField = nil
	}
	if sim.Method == inp.SASNG {
		m.X, m.Y, m.P, err = sim.ReadPoints()
		return
	}
	m.Q, err = sim.ReadLoads()
	return
}

// Run solves the model and saves the results in Sim.DirOut
func (o *Flexure) Run() (err error) {
	if o.Model.Verbose {
		io.Pf("%s: method=%v bcs: %v\n", o.Sim.Key, o.Model.Method, o.Model.Bcs)
	}
	o.Result, err = o.Model.Solve()
	if o.Result == nil {
		return
	}
	if err != nil {
		io.PfRed("%v\n", err)
	}

	// scattered
	dir, key := o.Sim.DirOut, o.Sim.Key
	if o.Model.Method == inp.SASNG {
		if e := out.Save(dir, key+"-w.dat", out.PointsTable(o.Model.X, o.Model.Y, o.Result.Wpts)); e != nil {
			return e
		}
		return
	}

	// gridded
	f := &out.Field{V: o.Result.W, Dx: o.Model.Grid.Dx, Dy: o.Model.Grid.Dy}
	if e := out.Save(dir, key+"-w.dat", out.Table(f.V)); e != nil {
		return e
	}
	s := f.GetStats()
	if o.Model.Verbose {
		io.Pforan("deflection: %v\n", s)
	}
	if o.Sim.Data.Plot {
		if e := f.PlotMap(dir, key+"-w.png", "deflection [m]"); e != nil {
			return e
		}
		if e := f.PlotProfile(dir, key+"-profile.png", "deflection through the largest depression", s.IMin, s.JMin); e != nil {
			return e
		}
	}
	return
}
