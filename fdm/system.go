// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mcflugen/gFlex/inp"
	"github.com/mcflugen/gFlex/mplate"
)

// Input holds the data needed to build the plate operator
type Input struct {
	Grid     Grid
	Mat      *mplate.Material
	Te       float64     // uniform elastic thickness; used if TeField is nil
	TeField  [][]float64 // elastic thickness per cell
	PlateSol inp.PlateSol
	Bcs      inp.Bcs
	LinSol   inp.LinSolData
	Verbose  bool
	Debug    bool
}

// System holds an assembled plate operator ready to be solved for many loads
type System struct {
	Grid      Grid
	Stencil   *Stencil
	A         *Operator
	Sol       LinSol
	CoeffTime time.Duration // time spent building coefficients and assembling
	SolveTime time.Duration // time spent in the last solve, including factorisation
	verbose   bool
	debug     bool
	prepared  bool
}

// NewSystem builds stencil coefficients, applies the boundary conditions and assembles the operator
func NewSystem(in *Input) (o *System, err error) {

	// check
	if err = in.Grid.Check(); err != nil {
		return
	}
	if err = in.Bcs.Check(); err != nil {
		return
	}
	if in.Mat == nil {
		in.Mat = mplate.NewMaterial()
	}
	if err = in.Mat.Check(); err != nil {
		return
	}

	// coefficients
	o = &System{Grid: in.Grid, verbose: in.Verbose, debug: in.Debug}
	t0 := time.Now()
	if in.TeField == nil {
		if in.Te < 0 {
			return nil, chk.Err("%w: elastic thickness must be non-negative; Te=%g", inp.ErrConfig, in.Te)
		}
		o.Stencil = NewUniformStencil(in.Grid, in.Mat.Rigidity(in.Te), in.Mat.Restoring())
	} else {
		if err = in.Grid.CheckShape("Te", in.TeField); err != nil {
			return nil, err
		}
		D := in.Mat.RigidityField(in.TeField)
		o.Stencil, err = NewVariableStencil(in.Grid, PadRigidity(D, in.Bcs), in.Mat.Nu, in.Mat.Restoring(), in.PlateSol)
		if err != nil {
			return nil, err
		}
	}
	o.Stencil.Debug = in.Debug
	if err = ApplyBcs(o.Stencil, in.Bcs); err != nil {
		return nil, err
	}
	o.A, err = Assemble(o.Stencil, in.Bcs)
	if err != nil {
		return nil, err
	}
	o.CoeffTime = time.Since(t0)
	if o.verbose {
		io.Pf("time to construct coefficient (operator) array: %v\n", o.CoeffTime)
	}
	if o.debug {
		io.Pf("operator: n=%d diagonals=%d extra offsets=%v bcs: %v\n", o.A.N, len(o.A.Offsets), o.A.Extra(), in.Bcs)
	}

	// solver
	o.Sol, err = NewLinSol(in.LinSol, in.Debug)
	return
}

// Solve returns the deflection w = -A⁻¹q of the plate under the load q (ny×nx).
// Positive loads give negative (downward) deflections. When the iterative solver does not
// converge, w holds its best iterate and err is not nil
func (o *System) Solve(q [][]float64) (w [][]float64, err error) {
	if err = o.Grid.CheckShape("load", q); err != nil {
		return
	}
	t0 := time.Now()
	if !o.prepared {
		if err = o.Sol.Init(o.A); err != nil {
			return
		}
		o.prepared = true
	}
	b := Flatten(q)
	x := make([]float64, len(b))
	err = o.Sol.Solve(x, b)
	o.SolveTime = time.Since(t0)
	if o.verbose {
		io.Pf("time to solve: %v\n", o.SolveTime)
	}
	if err != nil {
		if _, ok := o.Sol.(*SolverIterative); !ok {
			return nil, err
		}
	}
	w = Reshape(-1, x, o.Grid.Nx, o.Grid.Ny)
	return
}

// Free releases solver resources
func (o *System) Free() {
	if o.Sol != nil {
		o.Sol.Free()
	}
}
