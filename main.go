// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mcflugen/gFlex/flex"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".flx", true)
	verbose := io.ArgToBool(1, true)
	alias := io.ArgToString(2, "")

	// message
	if verbose {
		io.PfWhite("\ngFlex -- Go lithospheric flexure\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
		io.Pf("filename path : %s\n", fnamepath)
		io.Pf("alias         : %q\n\n", alias)
	}

	// run
	sim, err := flex.NewFlexure(fnamepath, alias)
	if err != nil {
		chk.Panic("%v", err)
	}
	if verbose {
		sim.Model.Verbose = true
	}
	err = sim.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	if verbose {
		io.Pfgreen("results saved in %s\n", sim.Sim.DirOut)
	}
}
