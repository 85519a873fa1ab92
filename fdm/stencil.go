// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/mcflugen/gFlex/inp"
)

// Pos is a stencil position relative to the centre cell
type Pos struct {
	X, Y int
}

// Positions holds the 13 positions of the biharmonic stencil
var Positions = [NumPos]Pos{
	{0, -2},
	{-1, -1}, {0, -1}, {1, -1},
	{-2, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0},
	{-1, 1}, {0, 1}, {1, 1},
	{0, 2},
}

// NumPos is the number of stencil positions
const NumPos = 13

var slots [5][5]int // (Y+2, X+2) => index in Positions; -1 outside stencil

func init() {
	for a := range slots {
		for b := range slots[a] {
			slots[a][b] = -1
		}
	}
	for k, p := range Positions {
		slots[p.Y+2][p.X+2] = k
	}
}

// slot returns the index of position p
func slot(p Pos) int {
	if p.X < -2 || p.X > 2 || p.Y < -2 || p.Y > 2 || slots[p.Y+2][p.X+2] < 0 {
		chk.Panic("position (%d,%d) is not part of the stencil", p.X, p.Y)
	}
	return slots[p.Y+2][p.X+2]
}

// Stencil holds the per-cell stencil coefficients
//
//	Raw      -- physical coefficients; read by boundary rules, never modified
//	C        -- working coefficients; rewritten by boundary rules and assembled
//	Inactive -- entries pointing outside the domain; zero at assembly
//	Debug    -- print the corner decisions while applying boundary conditions
type Stencil struct {
	Grid     Grid
	Raw      [NumPos][][]float64
	C        [NumPos][][]float64
	Inactive [NumPos][][]bool
	Debug    bool
}

// newStencil allocates a stencil
func newStencil(g Grid) (o *Stencil) {
	o = new(Stencil)
	o.Grid = g
	for k := 0; k < NumPos; k++ {
		o.Raw[k] = utl.Alloc(g.Ny, g.Nx)
		o.C[k] = utl.Alloc(g.Ny, g.Nx)
		o.Inactive[k] = make([][]bool, g.Ny)
		for i := 0; i < g.Ny; i++ {
			o.Inactive[k][i] = make([]bool, g.Nx)
		}
	}
	return
}

// set sets the raw and working coefficient at p of cell (i, j)
func (o *Stencil) set(p Pos, i, j int, v float64) {
	k := slot(p)
	o.Raw[k][i][j] = v
	o.C[k][i][j] = v
}

// R returns the raw coefficient at p of cell (i, j)
func (o *Stencil) R(p Pos, i, j int) float64 { return o.Raw[slot(p)][i][j] }

// W returns the working coefficient at p of cell (i, j)
func (o *Stencil) W(p Pos, i, j int) float64 { return o.C[slot(p)][i][j] }

// Add adds v to the working coefficient at p of cell (i, j)
func (o *Stencil) Add(p Pos, i, j int, v float64) { o.C[slot(p)][i][j] += v }

// deactivate flags the entry at p of cell (i, j) and clears its working value
func (o *Stencil) deactivate(p Pos, i, j int) {
	k := slot(p)
	o.Inactive[k][i][j] = true
	o.C[k][i][j] = 0
}

// NewUniformStencil returns the stencil of a plate with constant rigidity D
//
//	Input:
//	 g         -- grid
//	 D         -- flexural rigidity
//	 restoring -- buoyancy term Δρ·g
func NewUniformStencil(g Grid, D, restoring float64) (o *Stencil) {
	o = newStencil(g)
	dx4, dy4, dx2dy2 := coefDenoms(g)
	for i := 0; i < g.Ny; i++ {
		for j := 0; j < g.Nx; j++ {
			o.set(Pos{-2, 0}, i, j, D/dx4)
			o.set(Pos{2, 0}, i, j, D/dx4)
			o.set(Pos{0, -2}, i, j, D/dy4)
			o.set(Pos{0, 2}, i, j, D/dy4)
			o.set(Pos{-1, -1}, i, j, 2*D/dx2dy2)
			o.set(Pos{-1, 1}, i, j, 2*D/dx2dy2)
			o.set(Pos{1, -1}, i, j, 2*D/dx2dy2)
			o.set(Pos{1, 1}, i, j, 2*D/dx2dy2)
			o.set(Pos{-1, 0}, i, j, -4*D/dx4+-4*D/dx2dy2)
			o.set(Pos{1, 0}, i, j, -4*D/dx4+-4*D/dx2dy2)
			o.set(Pos{0, -1}, i, j, -4*D/dy4+-4*D/dx2dy2)
			o.set(Pos{0, 1}, i, j, -4*D/dy4+-4*D/dx2dy2)
			o.set(Pos{0, 0}, i, j, 6*D/dx4+6*D/dy4+8*D/dx2dy2+restoring)
		}
	}
	return
}

// NewVariableStencil returns the stencil of a plate with variable rigidity
//
//	Input:
//	 g         -- grid
//	 Dp        -- rigidity padded with one ghost cell per side; see PadRigidity
//	 nu        -- Poisson's ratio
//	 restoring -- buoyancy term Δρ·g
//	 sol       -- discretization
func NewVariableStencil(g Grid, Dp [][]float64, nu, restoring float64, sol inp.PlateSol) (o *Stencil, err error) {
	if len(Dp) != g.Ny+2 || len(Dp[0]) != g.Nx+2 {
		return nil, chk.Err("%w: padded rigidity must be (%d,%d); got (%d,%d)", inp.ErrConfig, g.Ny+2, g.Nx+2, len(Dp), len(Dp[0]))
	}
	var cell func(o *Stencil, i, j int, d *rigidityTerms)
	switch sol {
	case inp.VWC1994:
		cell = cellVWC1994
	case inp.LinearTeVar:
		io.Pfyel("LinearTeVariationsOnly has not been verified against analytical solutions; prefer vWC1994\n")
		cell = cellLinearTeVar
	case inp.G2009:
		cell = cellG2009
	default:
		return nil, chk.Err("%w: unknown plate solution %d", inp.ErrConfig, int(sol))
	}
	o = newStencil(g)
	dx4, dy4, dx2dy2 := coefDenoms(g)
	var d rigidityTerms
	d.nu, d.restoring = nu, restoring
	d.dx4, d.dy4, d.dx2dy2 = dx4, dy4, dx2dy2
	for i := 0; i < g.Ny; i++ {
		for j := 0; j < g.Nx; j++ {
			d.load(Dp, i, j)
			cell(o, i, j, &d)
		}
	}
	return
}

// rigidityTerms holds rigidity values around one cell and their centred differences
type rigidityTerms struct {
	nu, restoring         float64
	dx4, dy4, dx2dy2      float64
	D00                   float64
	D10, D_10, D01, D0_1  float64
	Dx, Dy, Dxx, Dyy, Dxy float64
}

// load reads the neighbourhood of cell (i, j) from the padded rigidity
func (o *rigidityTerms) load(Dp [][]float64, i, j int) {
	r, c := i+1, j+1
	o.D00 = Dp[r][c]
	o.D10, o.D_10 = Dp[r][c+1], Dp[r][c-1]
	o.D01, o.D0_1 = Dp[r+1][c], Dp[r-1][c]
	D11, D_11 := Dp[r+1][c+1], Dp[r+1][c-1]
	D1_1, D_1_1 := Dp[r-1][c+1], Dp[r-1][c-1]
	o.Dx = (o.D10 - o.D_10) / 2.0
	o.Dy = (o.D01 - o.D0_1) / 2.0
	o.Dxx = o.D_10 - 2.0*o.D00 + o.D10
	o.Dyy = o.D0_1 - 2.0*o.D00 + o.D01
	o.Dxy = (D_1_1 - D_11 - D1_1 + D11) / 4.0
}

func cellVWC1994(o *Stencil, i, j int, d *rigidityTerms) {
	D0, Dx, Dy, Dxx, Dyy, Dxy, nu := d.D00, d.Dx, d.Dy, d.Dxx, d.Dyy, d.Dxy, d.nu
	dx4, dy4, dx2dy2 := d.dx4, d.dy4, d.dx2dy2
	o.set(Pos{-2, 0}, i, j, (D0-Dx)/dx4)
	o.set(Pos{2, 0}, i, j, (D0+Dx)/dx4)
	o.set(Pos{0, -2}, i, j, (D0-Dy)/dy4)
	o.set(Pos{0, 2}, i, j, (D0+Dy)/dy4)
	o.set(Pos{-1, -1}, i, j, (2*D0-Dx-Dy+Dxy*(1-nu)/2)/dx2dy2)
	o.set(Pos{-1, 1}, i, j, (2*D0-Dx+Dy-Dxy*(1-nu)/2)/dx2dy2)
	o.set(Pos{1, -1}, i, j, (2*D0+Dx-Dy-Dxy*(1-nu)/2)/dx2dy2)
	o.set(Pos{1, 1}, i, j, (2*D0+Dx+Dy+Dxy*(1-nu)/2)/dx2dy2)
	o.set(Pos{-1, 0}, i, j, (-4*D0+2*Dx+Dxx)/dx4+(-4*D0+2*Dx+nu*Dyy)/dx2dy2)
	o.set(Pos{1, 0}, i, j, (-4*D0-2*Dx+Dxx)/dx4+(-4*D0-2*Dx+nu*Dyy)/dx2dy2)
	o.set(Pos{0, -1}, i, j, (-4*D0+2*Dy+Dyy)/dy4+(-4*D0+2*Dy+nu*Dxx)/dx2dy2)
	o.set(Pos{0, 1}, i, j, (-4*D0-2*Dy+Dyy)/dy4+(-4*D0-2*Dy+nu*Dxx)/dx2dy2)
	o.set(Pos{0, 0}, i, j, (6*D0-2*Dxx)/dx4+(6*D0-2*Dyy)/dy4+(8*D0-2*nu*Dxx-2*nu*Dyy)/dx2dy2+d.restoring)
}

func cellLinearTeVar(o *Stencil, i, j int, d *rigidityTerms) {
	D0, Dxx, Dyy := d.D00, d.Dxx, d.Dyy
	dx4, dy4, dx2dy2 := d.dx4, d.dy4, d.dx2dy2
	o.set(Pos{-2, 0}, i, j, D0/dx4)
	o.set(Pos{2, 0}, i, j, D0/dx4)
	o.set(Pos{0, -2}, i, j, D0/dy4)
	o.set(Pos{0, 2}, i, j, D0/dy4)
	o.set(Pos{-1, -1}, i, j, 2*D0/dx2dy2)
	o.set(Pos{-1, 1}, i, j, 2*D0/dx2dy2)
	o.set(Pos{1, -1}, i, j, 2*D0/dx2dy2)
	o.set(Pos{1, 1}, i, j, 2*D0/dx2dy2)
	o.set(Pos{-1, 0}, i, j, (-4*D0+Dxx)/dx4+(-4*D0+Dyy)/dx2dy2)
	o.set(Pos{1, 0}, i, j, (-4*D0+Dxx)/dx4+(-4*D0+Dyy)/dx2dy2)
	o.set(Pos{0, -1}, i, j, (-4*D0+Dyy)/dy4+(-4*D0+Dxx)/dx2dy2)
	o.set(Pos{0, 1}, i, j, (-4*D0+Dyy)/dy4+(-4*D0+Dxx)/dx2dy2)
	o.set(Pos{0, 0}, i, j, (6*D0-2*Dxx)/dx4+(6*D0-2*Dyy)/dy4+(8*D0-2*Dxx-2*Dyy)/dx2dy2+d.restoring)
}

func cellG2009(o *Stencil, i, j int, d *rigidityTerms) {
	D00, D10, D_10, D01, D0_1 := d.D00, d.D10, d.D_10, d.D01, d.D0_1
	dx4, dy4, dx2dy2 := d.dx4, d.dy4, d.dx2dy2
	o.set(Pos{-2, 0}, i, j, D_10/dx4)
	o.set(Pos{2, 0}, i, j, D10/dx4)
	o.set(Pos{0, -2}, i, j, D0_1/dy4)
	o.set(Pos{0, 2}, i, j, D01/dy4)
	o.set(Pos{-1, -1}, i, j, (D_10+D0_1)/dx2dy2)
	o.set(Pos{-1, 1}, i, j, (D_10+D01)/dx2dy2)
	o.set(Pos{1, -1}, i, j, (D10+D0_1)/dx2dy2)
	o.set(Pos{1, 1}, i, j, (D10+D01)/dx2dy2)
	o.set(Pos{-1, 0}, i, j, -2*((D_10+D00)/dx4+(D_10+D00)/dx2dy2))
	o.set(Pos{1, 0}, i, j, -2*((D10+D00)/dx4+(D10+D00)/dx2dy2))
	o.set(Pos{0, -1}, i, j, -2*((D0_1+D00)/dy4+(D0_1+D00)/dx2dy2))
	o.set(Pos{0, 1}, i, j, -2*((D01+D00)/dy4+(D01+D00)/dx2dy2))
	o.set(Pos{0, 0}, i, j, (D10+4*D00+D_10)/dx4+(D01+4*D00+D0_1)/dy4+8*D00/dx2dy2+d.restoring)
}

// coefDenoms returns dx⁴, dy⁴ and dx²dy²
func coefDenoms(g Grid) (dx4, dy4, dx2dy2 float64) {
	dx4 = g.Dx * g.Dx * g.Dx * g.Dx
	dy4 = g.Dy * g.Dy * g.Dy * g.Dy
	dx2dy2 = g.Dx * g.Dx * g.Dy * g.Dy
	return
}
