// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/mcflugen/gFlex/inp"
)

// LinSol solves A·x = b for the plate operator
type LinSol interface {
	Init(A *Operator) error     // prepares (e.g. factorises) the operator
	Solve(x, b []float64) error // solves for one right-hand side
	Free()                      // releases resources
}

// linsolallocators holds all available linear solvers
var linsolallocators = make(map[string]func(prm inp.LinSolData, debug bool) LinSol)

// NewLinSol returns a new linear solver by name: "direct" or "iterative"
func NewLinSol(prm inp.LinSolData, debug bool) (LinSol, error) {
	alloc, ok := linsolallocators[prm.Name]
	if !ok {
		return nil, chk.Err("%w: cannot find linear solver named %q", inp.ErrConfig, prm.Name)
	}
	return alloc(prm, debug), nil
}

// checkFinite returns an error if x holds NaN or Inf
func checkFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return chk.Err("%w: solution has non-finite value %v at equation %d", inp.ErrNumerical, v, i)
		}
	}
	return nil
}
