// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/mcflugen/gFlex/inp"
)

// Operator holds the banded plate operator as diagonals
//
//	Diags[k][r] = A[r, r+Offsets[k]]
type Operator struct {
	Grid    Grid
	N       int         // number of unknowns
	Offsets []int       // ascending diagonal offsets
	Diags   [][]float64 // [len(Offsets)][N]
	index   map[int]int // offset => k
}

// BaseOffsets returns the diagonals coupling a cell with its 12 stencil neighbours and itself
func BaseOffsets(nx int) (offs []int) {
	offs = make([]int, NumPos)
	for k, p := range Positions {
		offs[k] = Offset(p.X, p.Y, nx)
	}
	sort.Ints(offs)
	return
}

// newOperator allocates the operator with the base diagonals
func newOperator(g Grid) (o *Operator) {
	o = &Operator{Grid: g, N: g.N(), index: make(map[int]int)}
	for _, off := range BaseOffsets(g.Nx) {
		o.diag(off)
	}
	return
}

// diag returns the values of diagonal off, allocating it if needed
func (o *Operator) diag(off int) []float64 {
	if k, ok := o.index[off]; ok {
		return o.Diags[k]
	}
	o.index[off] = len(o.Offsets)
	o.Offsets = append(o.Offsets, off)
	o.Diags = append(o.Diags, make([]float64, o.N))
	return o.Diags[len(o.Diags)-1]
}

// sortDiags orders diagonals by offset
func (o *Operator) sortDiags() {
	k := make([]int, len(o.Offsets))
	for i := range k {
		k[i] = i
	}
	sort.Slice(k, func(a, b int) bool { return o.Offsets[k[a]] < o.Offsets[k[b]] })
	offs := make([]int, len(k))
	diags := make([][]float64, len(k))
	for i, kk := range k {
		offs[i] = o.Offsets[kk]
		diags[i] = o.Diags[kk]
		o.index[offs[i]] = i
	}
	o.Offsets, o.Diags = offs, diags
}

// Assemble maps the active stencil entries onto the diagonals of the operator.
// Neighbours across a periodic edge are wrapped to the opposite side of the grid
func Assemble(s *Stencil, bcs inp.Bcs) (o *Operator, err error) {
	if err = bcs.Check(); err != nil {
		return
	}
	g := s.Grid
	o = newOperator(g)
	px, py := bcs.PeriodicX(), bcs.PeriodicY()
	for k, p := range Positions {
		for i := 0; i < g.Ny; i++ {
			for j := 0; j < g.Nx; j++ {
				if s.Inactive[k][i][j] {
					continue
				}
				ii, jj := i+p.Y, j+p.X
				if px {
					jj = wrap(jj, g.Nx)
				}
				if py {
					ii = wrap(ii, g.Ny)
				}
				if ii < 0 || ii >= g.Ny || jj < 0 || jj >= g.Nx {
					return nil, chk.Err("active entry (%d,%d) of cell (%d,%d) points outside the grid", p.X, p.Y, i, j)
				}
				r := g.Idx(i, j)
				o.diag(g.Idx(ii, jj) - r)[r] += s.C[k][i][j]
			}
		}
	}
	o.sortDiags()
	return
}

// wrap returns a modulo n in [0, n)
func wrap(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

// At returns A[r, c]
func (o *Operator) At(r, c int) float64 {
	if k, ok := o.index[c-r]; ok {
		return o.Diags[k][r]
	}
	return 0
}

// Extra returns the offsets beyond the base diagonals
func (o *Operator) Extra() (offs []int) {
	base := make(map[int]bool)
	for _, off := range BaseOffsets(o.Grid.Nx) {
		base[off] = true
	}
	for _, off := range o.Offsets {
		if !base[off] {
			offs = append(offs, off)
		}
	}
	return
}

// MulVec computes y = A·x
func (o *Operator) MulVec(y, x []float64) {
	for r := range y {
		y[r] = 0
	}
	for k, off := range o.Offsets {
		d := o.Diags[k]
		lo, hi := 0, o.N
		if off < 0 {
			lo = -off
		} else {
			hi = o.N - off
		}
		for r := lo; r < hi; r++ {
			y[r] += d[r] * x[r+off]
		}
	}
}

// Nnz returns the number of nonzero entries
func (o *Operator) Nnz() (nnz int) {
	for _, d := range o.Diags {
		for _, v := range d {
			if v != 0 {
				nnz++
			}
		}
	}
	return
}

// Triplet returns the operator in triplet (coordinate) format
func (o *Operator) Triplet() (t *la.Triplet) {
	t = new(la.Triplet)
	t.Init(o.N, o.N, o.Nnz())
	for k, off := range o.Offsets {
		for r, v := range o.Diags[k] {
			if v != 0 {
				t.Put(r, r+off, v)
			}
		}
	}
	return
}

// Diagonal returns the main diagonal
func (o *Operator) Diagonal() []float64 { return o.Diags[o.index[0]] }
