// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/mcflugen/gFlex/inp"
)

// SolverDirect factorises the operator once with UMFPACK and solves by substitution
type SolverDirect struct {
	lsol  la.SparseSolver
	debug bool
}

// set factory of solvers
func init() {
	linsolallocators["direct"] = func(prm inp.LinSolData, debug bool) LinSol {
		return &SolverDirect{debug: debug}
	}
}

// Init factorises A
func (o *SolverDirect) Init(A *Operator) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%w: factorisation failed: %v", inp.ErrNumerical, r)
		}
	}()
	t0 := time.Now()
	o.lsol = la.NewSparseSolver("umfpack")
	o.lsol.Init(A.Triplet(), nil)
	o.lsol.Fact()
	if o.debug {
		io.Pforan("umfpack: n=%d nnz=%d factorised in %v\n", A.N, A.Nnz(), time.Since(t0))
	}
	return
}

// Solve solves A·x = b
func (o *SolverDirect) Solve(x, b []float64) (err error) {
	if o.lsol == nil {
		return chk.Err("direct solver must be initialised first")
	}
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%w: substitution failed: %v", inp.ErrNumerical, r)
		}
	}()
	o.lsol.Solve(x, b, false)
	return checkFinite(x)
}

// Free releases the factors
func (o *SolverDirect) Free() {
	if o.lsol != nil {
		o.lsol.Free()
		o.lsol = nil
	}
}
