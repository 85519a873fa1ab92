// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flex computes the flexure of an elastic plate by finite differences or by
// superposition of analytical solutions
package flex

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mcflugen/gFlex/ana"
	"github.com/mcflugen/gFlex/fdm"
	"github.com/mcflugen/gFlex/inp"
	"github.com/mcflugen/gFlex/mplate"
)

// Model holds all inputs of one flexure solution
type Model struct {

	// method and plate
	Method   inp.Method
	Mat      *mplate.Material
	Te       float64     // uniform elastic thickness [m]; used if TeField is nil
	TeField  [][]float64 // elastic thickness per cell [m]; finite differences only
	PlateSol inp.PlateSol

	// gridded problems
	Grid   fdm.Grid
	Q      [][]float64 // load [Pa] (ny×nx)
	Bcs    inp.Bcs
	LinSol inp.LinSolData

	// scattered problems (SAS_NG)
	X, Y, P []float64 // coordinates [m] and point forces [N]

	// messages
	Verbose bool
	Debug   bool
	Quiet   bool
}

// Result holds the deflection and statistics of one solution
type Result struct {
	W         [][]float64   // deflection per cell [m]; gridded methods
	Wpts      []float64     // deflection per point [m]; SAS_NG
	Lambda    float64       // maximum flexural wavelength [m]
	LambdaNx  int           // cells spanned by Lambda along x
	LambdaNy  int           // cells spanned by Lambda along y
	CoeffTime time.Duration // coefficients and assembly
	SolveTime time.Duration // linear solve or superposition
}

// NewModel returns a finite difference model with default material and solver
func NewModel(g fdm.Grid, te float64, q [][]float64) *Model {
	return &Model{
		Method:   inp.FD,
		Mat:      mplate.NewMaterial(),
		Te:       te,
		PlateSol: inp.VWC1994,
		Grid:     g,
		Q:        q,
		LinSol:   inp.LinSolData{Name: "direct", Tol: 1e-8, Restart: 100, MaxIt: 10000},
	}
}

// Solve computes the deflection with the selected method. The model is not modified
func (o *Model) Solve() (res *Result, err error) {
	if o.Method == inp.FFT {
		return nil, chk.Err("%w: the FFT (spectral) method is not implemented", inp.ErrUnsupported)
	}
	mat := o.Mat
	if mat == nil {
		mat = mplate.NewMaterial()
	}
	if err = mat.Check(); err != nil {
		return
	}
	res = new(Result)

	// flexural wavelength
	Dmax := mat.Rigidity(o.Te)
	if o.TeField != nil {
		Dmax = mplate.MaxOf(mat.RigidityField(o.TeField))
	}
	if o.Method != inp.SASNG {
		res.Lambda, res.LambdaNx, res.LambdaNy = mat.MaxFlexuralWavelength(Dmax, o.Grid.Dx, o.Grid.Dy)
		if o.Debug {
			io.Pf("maximum flexural wavelength = %g m (%d cells along x, %d cells along y)\n", res.Lambda, res.LambdaNx, res.LambdaNy)
		}
	}

	switch o.Method {
	case inp.FD:
		err = o.solveFD(mat, res)
	case inp.SAS:
		err = o.solveSAS(mat, res)
	case inp.SASNG:
		err = o.solveSASNG(mat, res)
	default:
		return nil, chk.Err("%w: unknown method %d", inp.ErrConfig, int(o.Method))
	}
	if err != nil && res.W == nil && res.Wpts == nil {
		return nil, err
	}
	if !o.Quiet {
		io.Pf("%v: time to solve = %v\n", o.Method, res.CoeffTime+res.SolveTime)
	}
	return
}

// solveFD runs the finite difference pipeline
func (o *Model) solveFD(mat *mplate.Material, res *Result) (err error) {
	in := &fdm.Input{
		Grid:     o.Grid,
		Mat:      mat,
		Te:       o.Te,
		TeField:  o.TeField,
		PlateSol: o.PlateSol,
		Bcs:      o.Bcs,
		LinSol:   o.LinSol,
		Verbose:  o.Verbose,
		Debug:    o.Debug,
	}
	sys, err := fdm.NewSystem(in)
	if err != nil {
		return
	}
	defer sys.Free()
	res.CoeffTime = sys.CoeffTime
	res.W, err = sys.Solve(o.Q)
	res.SolveTime = sys.SolveTime
	return
}

// solveSAS superposes analytical solutions on the grid
func (o *Model) solveSAS(mat *mplate.Material, res *Result) (err error) {
	if o.TeField != nil {
		return chk.Err("%w: analytical solutions need a uniform elastic thickness", inp.ErrConfig)
	}
	t0 := time.Now()
	sol, err := ana.NewPointLoad(mat, o.Te)
	if err != nil {
		return
	}
	res.W, err = sol.Gridded(o.Q, o.Grid.Dx, o.Grid.Dy)
	res.SolveTime = time.Since(t0)
	return
}

// solveSASNG superposes analytical solutions at scattered points
func (o *Model) solveSASNG(mat *mplate.Material, res *Result) (err error) {
	if o.TeField != nil {
		return chk.Err("%w: analytical solutions need a uniform elastic thickness", inp.ErrConfig)
	}
	t0 := time.Now()
	sol, err := ana.NewPointLoad(mat, o.Te)
	if err != nil {
		return
	}
	res.Wpts, err = sol.Scattered(o.X, o.Y, o.P)
	res.SolveTime = time.Since(t0)
	return
}
