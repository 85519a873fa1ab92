// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fdm implements the finite difference solution of the plate flexure equation
//
//	∇²(D∇²w) + Δρ·g·w = q
//
// with variable rigidity D on a regular grid
package fdm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/mcflugen/gFlex/inp"
)

// MinCells is the smallest number of cells per direction; boundary rules touch two rings per edge
const MinCells = 4

// Grid holds the lattice geometry. Arrays are shaped (Ny, Nx): row i is y, column j is x
type Grid struct {
	Nx, Ny int     // number of columns and rows
	Dx, Dy float64 // spacing
}

// Check checks the geometry
func (o Grid) Check() error {
	if o.Nx < MinCells || o.Ny < MinCells {
		return chk.Err("%w: finite differences need at least %d cells per direction; nx=%d ny=%d", inp.ErrConfig, MinCells, o.Nx, o.Ny)
	}
	if o.Dx <= 0 || o.Dy <= 0 {
		return chk.Err("%w: grid spacing must be positive; dx=%g dy=%g", inp.ErrConfig, o.Dx, o.Dy)
	}
	return nil
}

// N returns the number of unknowns
func (o Grid) N() int { return o.Nx * o.Ny }

// Idx returns the row-major index of cell (i, j)
func (o Grid) Idx(i, j int) int { return i*o.Nx + j }

// CheckShape checks that a field has the grid shape
func (o Grid) CheckShape(name string, a [][]float64) error {
	if len(a) != o.Ny {
		return chk.Err("%w: %s has %d rows; %d expected", inp.ErrConfig, name, len(a), o.Ny)
	}
	for i, row := range a {
		if len(row) != o.Nx {
			return chk.Err("%w: row %d of %s has %d columns; %d expected", inp.ErrConfig, i, name, len(row), o.Nx)
		}
	}
	return nil
}

// Offset returns the diagonal holding the coupling of a cell with its neighbour (dx, dy)
// in the row-major flattening
func Offset(dx, dy, nx int) int { return dy*nx + dx }

// Flatten returns the row-major copy of a grid field
func Flatten(a [][]float64) (v []float64) {
	for _, row := range a {
		v = append(v, row...)
	}
	return
}

// Reshape returns the grid field of a row-major vector multiplied by alpha
func Reshape(alpha float64, v []float64, nx, ny int) (a [][]float64) {
	a = make([][]float64, ny)
	for i := 0; i < ny; i++ {
		a[i] = make([]float64, nx)
		for j := 0; j < nx; j++ {
			a[i][j] = alpha * v[i*nx+j]
		}
	}
	return
}
