// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flex

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/mcflugen/gFlex/fdm"
	"github.com/mcflugen/gFlex/inp"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_flex01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flex01")

	n := 61
	q := utl.Alloc(n, n)
	q[n/2][n/2] = 1e9
	m := NewModel(fdm.Grid{Nx: n, Ny: n, Dx: 5e3, Dy: 5e3}, 20e3, q)
	m.Quiet = true

	// unsupported method does not touch the model
	m.Method = inp.FFT
	res, err := m.Solve()
	if !errors.Is(err, inp.ErrUnsupported) || res != nil {
		tst.Errorf("FFT must give ErrUnsupported; got %v", err)
	}
	chk.Float64(tst, "Te", 1e-15, m.Te, 20e3)
	if m.Mat == nil || m.Mat.E != 65e9 {
		tst.Errorf("material must not change")
	}

	// finite differences and superposition agree
	m.Method = inp.FD
	fd, err := m.Solve()
	if err != nil {
		tst.Errorf("FD failed:\n%v", err)
		return
	}
	m.Method = inp.SAS
	sas, err := m.Solve()
	if err != nil {
		tst.Errorf("SAS failed:\n%v", err)
		return
	}
	c := n / 2
	io.Pforan("fd = %g  sas = %g  lambda = %g (%d×%d cells)\n", fd.W[c][c], sas.W[c][c], fd.Lambda, fd.LambdaNx, fd.LambdaNy)
	chk.Float64(tst, "peak", 0.05*math.Abs(sas.W[c][c]), fd.W[c][c], sas.W[c][c])
	chk.Float64(tst, "lambda", 1e-9, fd.Lambda, sas.Lambda)
	if fd.LambdaNx < 1 || fd.LambdaNy < 1 {
		tst.Errorf("flexural wavelength must span cells")
	}

	// scattered points at cell centres match the grid
	m.Method = inp.SASNG
	m.X = []float64{float64(c) * 5e3, float64(c+3) * 5e3}
	m.Y = []float64{float64(c) * 5e3, float64(c) * 5e3}
	m.P = []float64{1e9 * 5e3 * 5e3, 0}
	ng, err := m.Solve()
	if err != nil {
		tst.Errorf("SAS_NG failed:\n%v", err)
		return
	}
	chk.Array(tst, "w", 1e-9, ng.Wpts, []float64{sas.W[c][c], sas.W[c][c+3]})
}

func Test_flex02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flex02")

	q := utl.Alloc(8, 8)
	m := NewModel(fdm.Grid{Nx: 8, Ny: 8, Dx: 1e3, Dy: 1e3}, 10e3, q)
	m.Quiet = true
	m.Bcs = inp.Bcs{W: inp.Periodic, E: inp.Dirichlet0}
	if _, err := m.Solve(); !errors.Is(err, inp.ErrConfig) {
		tst.Errorf("unpaired Periodic must give ErrConfig; got %v", err)
	}
	m.Bcs = inp.Bcs{}
	m.Method = inp.SAS
	m.TeField = utl.Alloc(8, 8)
	if _, err := m.Solve(); !errors.Is(err, inp.ErrConfig) {
		tst.Errorf("SAS with variable Te must give ErrConfig; got %v", err)
	}
	m.Method = inp.Method(7)
	if _, err := m.Solve(); !errors.Is(err, inp.ErrConfig) {
		tst.Errorf("unknown method must give ErrConfig; got %v", err)
	}
}

func Test_flex03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flex03")

	// input files
	dir := tst.TempDir()
	dirout := filepath.Join(dir, "results")
	write := func(fn, data string) {
		if err := os.WriteFile(filepath.Join(dir, fn), []byte(data), 0644); err != nil {
			tst.Fatalf("%v", err)
		}
	}
	var loads, te string
	for i := 0; i < 9; i++ {
		for j := 0; j < 10; j++ {
			l, t := "0", "15000"
			if i == 4 && j == 5 {
				l = "1e8"
			}
			if j > 6 {
				t = "20000"
			}
			loads += l + " "
			te += t + " "
		}
		loads += "\n"
		te += "\n"
	}
	write("q.dat", loads)
	write("te.dat", te)
	write("fd.flx", `{
  "data"   : { "desc" : "variable Te", "dirout" : "`+dirout+`", "quiet" : true, "plot" : true },
  "grid"   : { "nx" : 10, "ny" : 9, "dx" : 4000, "dy" : 4000 },
  "bcs"    : { "w" : "0Moment0Shear", "e" : "Mirror", "n" : "Periodic", "s" : "Periodic" },
  "te"     : { "file" : "te.dat" },
  "loads"  : { "file" : "q.dat" }
}`)
	write("pts.dat", "0 0 1e12\n10000 0 0\n0 25000 -5e11\n")
	write("ng.flx", `{
  "data"   : { "dirout" : "`+dirout+`", "quiet" : true },
  "method" : "SAS_NG",
  "te"     : { "value" : 25000 },
  "points" : { "file" : "pts.dat" }
}`)
	write("fft.flx", `{ "method" : "FFT", "grid" : { "nx" : 10, "ny" : 9, "dx" : 4000, "dy" : 4000 } }`)

	// finite differences
	sim, err := NewFlexure(filepath.Join(dir, "fd.flx"), "")
	if err != nil {
		tst.Errorf("NewFlexure failed:\n%v", err)
		return
	}
	if err = sim.Run(); err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	W, err := inp.ReadTable(filepath.Join(dirout, "fd-w.dat"), 9, 10)
	if err != nil {
		tst.Errorf("cannot read deflection:\n%v", err)
		return
	}
	chk.Deep2(tst, "w", 1e-15, W, sim.Result.W)
	if W[4][5] >= 0 {
		tst.Errorf("deflection under the load must be negative; got %g", W[4][5])
	}
	for _, fn := range []string{"fd-w.png", "fd-profile.png"} {
		if _, err = os.Stat(filepath.Join(dirout, fn)); err != nil {
			tst.Errorf("%s not saved: %v", fn, err)
		}
	}

	// scattered
	sim, err = NewFlexure(filepath.Join(dir, "ng.flx"), "")
	if err != nil {
		tst.Errorf("NewFlexure failed:\n%v", err)
		return
	}
	if err = sim.Run(); err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	T, err := inp.ReadTable(filepath.Join(dirout, "ng-w.dat"), 3, 3)
	if err != nil {
		tst.Errorf("cannot read deflection:\n%v", err)
		return
	}
	chk.Float64(tst, "w0", 1e-15, T[0][2], sim.Result.Wpts[0])
	if T[0][2] >= 0 {
		tst.Errorf("deflection under the point load must be negative; got %g", T[0][2])
	}

	// unsupported
	sim, err = NewFlexure(filepath.Join(dir, "fft.flx"), "")
	if err != nil {
		tst.Errorf("NewFlexure failed:\n%v", err)
		return
	}
	if err = sim.Run(); !errors.Is(err, inp.ErrUnsupported) {
		tst.Errorf("FFT must give ErrUnsupported; got %v", err)
	}
}

func Test_flex04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flex04")

	// independent models solved at the same time share no state
	n := 12
	newModel := func(debug bool) *Model {
		q := utl.Alloc(n, n)
		q[3][4], q[8][9] = 1e8, 5e7
		m := NewModel(fdm.Grid{Nx: n, Ny: n, Dx: 2e3, Dy: 2e3}, 8e3, q)
		m.Quiet = true
		m.Debug = debug
		m.Bcs = inp.Bcs{W: inp.Mirror, E: inp.Mirror, N: inp.Mirror, S: inp.ZeroMomShear}
		m.LinSol = inp.LinSolData{Name: "iterative", Tol: 1e-12, Restart: n * n, MaxIt: 10 * n * n}
		return m
	}
	ref, err := newModel(false).Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	var wg sync.WaitGroup
	res := make([]*Result, 4)
	errs := make([]error, 4)
	for k := range res {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			res[k], errs[k] = newModel(k%2 == 0).Solve()
		}(k)
	}
	wg.Wait()
	for k := range res {
		if errs[k] != nil {
			tst.Errorf("concurrent solve %d failed:\n%v", k, errs[k])
			return
		}
		chk.Deep2(tst, io.Sf("w%d", k), 1e-15, res[k].W, ref.W)
	}
}
