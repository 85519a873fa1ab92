// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mcflugen/gFlex/inp"
)

// assembleUniform builds the operator of a uniform plate
func assembleUniform(tst *testing.T, g Grid, bcs inp.Bcs) (*Stencil, *Operator) {
	s := NewUniformStencil(g, 2.5, 0.1)
	if err := ApplyBcs(s, bcs); err != nil {
		tst.Fatalf("ApplyBcs failed:\n%v", err)
	}
	A, err := Assemble(s, bcs)
	if err != nil {
		tst.Fatalf("Assemble failed:\n%v", err)
	}
	return s, A
}

func Test_operator01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("operator01")

	nx := 7
	chk.Int(tst, "Offset(0,0)", Offset(0, 0, nx), 0)
	chk.Int(tst, "Offset(-1,-1)", Offset(-1, -1, nx), -nx-1)
	chk.Int(tst, "Offset(1,-1)", Offset(1, -1, nx), -nx+1)
	chk.Int(tst, "Offset(0,2)", Offset(0, 2, nx), 2*nx)
	chk.Int(tst, "Offset(-2,0)", Offset(-2, 0, nx), -2)
	chk.Ints(tst, "base", BaseOffsets(nx), []int{-2 * nx, -nx - 1, -nx, -nx + 1, -2, -1, 0, 1, 2, nx - 1, nx, nx + 1, 2 * nx})

	// interior rows reproduce the stencil
	g := Grid{Nx: nx, Ny: 6, Dx: 2, Dy: 3}
	s, A := assembleUniform(tst, g, inp.Bcs{})
	chk.Ints(tst, "offsets", A.Offsets, BaseOffsets(nx))
	chk.Ints(tst, "extra", A.Extra(), nil)
	for i := 2; i < g.Ny-2; i++ {
		for j := 2; j < g.Nx-2; j++ {
			r := g.Idx(i, j)
			for _, p := range Positions {
				chk.Float64(tst, io.Sf("A[%d,%d]", i, j), 0, A.At(r, r+Offset(p.X, p.Y, nx)), s.R(p, i, j))
			}
		}
	}

	// clamped edges drop couplings leaving the grid
	chk.Float64(tst, "A[0,-1]", 0, A.At(nx, nx-1), 0)
	chk.Float64(tst, "A[0,1]", 0, A.At(0, 1), s.R(Pos{1, 0}, 0, 0))
}

func Test_operator02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("operator02")

	nx, ny := 7, 6
	N := nx * ny
	g := Grid{Nx: nx, Ny: ny, Dx: 1, Dy: 1}
	xExtra := []int{-2*nx + 1, -nx + 2, nx - 2, 2*nx - 1}
	yExtra := []int{nx - N - 1, nx - N, nx - N + 1, 2*nx - N, N - 2*nx, N - nx - 1, N - nx, N - nx + 1}
	corners := []int{1 - N, 2*nx - 1 - N, N - 2*nx + 1, N - 1}

	// West/East
	_, A := assembleUniform(tst, g, inp.Bcs{W: inp.Periodic, E: inp.Periodic, N: inp.ZeroMomShear, S: inp.Mirror})
	chk.Ints(tst, "periodic x", A.Extra(), sorted(xExtra))

	// North/South
	_, A = assembleUniform(tst, g, inp.Bcs{W: inp.Dirichlet0, E: inp.ZeroSlopeShear, N: inp.Periodic, S: inp.Periodic})
	chk.Ints(tst, "periodic y", A.Extra(), sorted(yExtra))

	// both
	_, A = assembleUniform(tst, g, inp.Bcs{W: inp.Periodic, E: inp.Periodic, N: inp.Periodic, S: inp.Periodic})
	all := append(append(append([]int{}, xExtra...), yExtra...), corners...)
	chk.Ints(tst, "periodic xy", A.Extra(), sorted(all))

	// wrapped couplings
	chk.Float64(tst, "A[(0,0),(0,nx-1)]", 0, A.At(0, nx-1), A.At(1, 0))
	chk.Float64(tst, "A[(0,0),(ny-1,nx-1)]", 0, A.At(0, N-1), A.At(nx+1, 0))

	// every row holds the full stencil
	for r := 0; r < N; r++ {
		n := 0
		for c := 0; c < N; c++ {
			if A.At(r, c) != 0 {
				n++
			}
		}
		chk.Int(tst, io.Sf("nnz of row %d", r), n, NumPos)
	}
}

func sorted(a []int) []int {
	b := append([]int{}, a...)
	sort.Ints(b)
	return b
}
