// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/mcflugen/gFlex/inp"
	"github.com/mcflugen/gFlex/mplate"
)

func Test_sas01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sas01")

	mat := mplate.NewMaterial()
	sol, err := NewPointLoad(mat, 20e3)
	if err != nil {
		tst.Errorf("NewPointLoad failed:\n%v", err)
		return
	}

	// single loaded cell
	nx, ny := 41, 31
	dx, dy := 5e3, 4e3
	q := utl.Alloc(ny, nx)
	q[15][20] = 1e9
	w, err := sol.Gridded(q, dx, dy)
	if err != nil {
		tst.Errorf("Gridded failed:\n%v", err)
		return
	}
	P := 1e9 * dx * dy
	w0 := -P * sol.Alpha * sol.Alpha / (8 * sol.D)
	io.Pforan("D=%g alpha=%g w0=%g\n", sol.D, sol.Alpha, w0)
	chk.Float64(tst, "w(load)", 1e-12*math.Abs(w0), w[15][20], w0)

	// radial symmetry; y uses dy
	chk.Float64(tst, "w(+x)", 1e-15, w[15][23], w[15][17])
	chk.Float64(tst, "w(+y)", 1e-15, w[18][20], w[12][20])
	chk.Float64(tst, "w(dx)", 1e-12*math.Abs(w0), w[15][21], P*sol.W(dx))
	chk.Float64(tst, "w(dy)", 1e-12*math.Abs(w0), w[16][20], P*sol.W(dy))

	// scattered loads at the cell centres reproduce the gridded result
	var x, y, f []float64
	q[3][7] = -2e8
	w, err = sol.Gridded(q, dx, dy)
	if err != nil {
		tst.Errorf("Gridded failed:\n%v", err)
		return
	}
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			x = append(x, float64(j)*dx)
			y = append(y, float64(i)*dy)
			f = append(f, q[i][j]*dx*dy)
		}
	}
	ws, err := sol.Scattered(x, y, f)
	if err != nil {
		tst.Errorf("Scattered failed:\n%v", err)
		return
	}
	for i := 0; i < ny; i++ {
		chk.Array(tst, io.Sf("row %d", i), 1e-9, ws[i*nx:(i+1)*nx], w[i])
	}
}

func Test_sas02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sas02")

	mat := mplate.NewMaterial()
	if _, err := NewPointLoad(mat, 0); !errors.Is(err, inp.ErrConfig) {
		tst.Errorf("zero Te must give ErrConfig; got %v", err)
	}
	sol, _ := NewPointLoad(mat, 10e3)
	if _, err := sol.Scattered([]float64{0, 1}, []float64{0}, []float64{1, 1}); !errors.Is(err, inp.ErrConfig) {
		tst.Errorf("mismatched lengths must give ErrConfig; got %v", err)
	}
	if _, err := sol.Gridded([][]float64{{1, 2}, {3}}, 1, 1); !errors.Is(err, inp.ErrConfig) {
		tst.Errorf("ragged load must give ErrConfig; got %v", err)
	}

	// two equal point loads: symmetric response
	w, err := sol.Scattered([]float64{0, 10e3, 20e3}, []float64{0, 0, 0}, []float64{1e12, 0, 1e12})
	if err != nil {
		tst.Errorf("Scattered failed:\n%v", err)
		return
	}
	chk.Float64(tst, "w0 = w2", 1e-12, w[0], w[2])
	chk.Float64(tst, "w0", 1e-9, w[0], 1e12*(sol.W(0)+sol.W(20e3)))
	chk.Float64(tst, "w1", 1e-9, w[1], 2e12*sol.W(10e3))
}
