// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/mcflugen/gFlex/mplate"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	te := io.ArgToFloat(0, 35000.0)
	dx := io.ArgToFloat(1, 5000.0)
	dy := io.ArgToFloat(2, dx)
	rhofill := io.ArgToFloat(3, 0.0)

	// plate
	mat := mplate.NewMaterial()
	if err := mat.Init([]*dbf.P{&dbf.P{N: "rhofill", V: rhofill}}); err != nil {
		chk.Panic("%v", err)
	}
	D := mat.Rigidity(te)
	alpha := mat.Alpha(D)
	lambda, nx, ny := mat.MaxFlexuralWavelength(D, dx, dy)

	// results
	io.Pf("elastic thickness     Te = %g m\n", te)
	io.Pf("cell size             dx = %g m\n", dx)
	io.Pf("cell size             dy = %g m\n", dy)
	io.Pf("density contrast    Δρ = %g kg/m³\n", mat.Drho())
	io.Pf("flexural rigidity      D = %g N·m\n", D)
	io.Pf("flexural parameter     α = %g m\n", alpha)
	io.Pf("max wavelength         λ = %g m\n", lambda)
	io.Pforan("cells per wavelength    = %d along x, %d along y\n", nx, ny)
	if h := math.Max(dx, dy); alpha/h < 4 {
		io.PfRed("cells are coarse: α/h = %.2f\n", alpha/h)
	}
}
