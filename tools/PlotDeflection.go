// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mcflugen/gFlex/inp"
	"github.com/mcflugen/gFlex/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	fn, fnkey := io.ArgToFilename(0, "", ".dat", true)
	dx := io.ArgToFloat(1, 1.0)
	dy := io.ArgToFloat(2, dx)

	// deflection
	W, err := inp.ReadTable(fn, 0, 0)
	if err != nil {
		chk.Panic("%v", err)
	}
	if len(W) == 0 {
		chk.Panic("table %q is empty", fn)
	}
	f := &out.Field{V: W, Dx: dx, Dy: dy}
	s := f.GetStats()
	io.Pforan("%s: %v\n", fnkey, s)

	// plots
	dir := filepath.Dir(fn)
	if err = f.PlotMap(dir, fnkey+".png", fnkey); err != nil {
		chk.Panic("%v", err)
	}
	if err = f.PlotProfile(dir, fnkey+"-profile.png", fnkey, s.IMin, s.JMin); err != nil {
		chk.Panic("%v", err)
	}
	io.Pfgreen("plots saved in %s\n", dir)
}
