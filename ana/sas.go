// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/mcflugen/gFlex/inp"
	"github.com/mcflugen/gFlex/mplate"
)

// PointLoad implements the deflection of an infinite plate with uniform rigidity under a
// point force P (Hetényi):
//
//	w(r) = P·α²/(2πD)·kei(r/α),   α = (D/(Δρ·g))^¼
//
// w(0) = -P·α²/(8D); positive loads give negative (downward) deflections
type PointLoad struct {
	D     float64 // flexural rigidity
	Alpha float64 // flexural parameter
	Coef  float64 // α²/(2πD)
}

// NewPointLoad returns the point load response of a plate with elastic thickness te
func NewPointLoad(mat *mplate.Material, te float64) (o *PointLoad, err error) {
	if err = mat.Check(); err != nil {
		return
	}
	if te <= 0 {
		return nil, chk.Err("%w: analytical solutions need a positive uniform elastic thickness; Te=%g", inp.ErrConfig, te)
	}
	o = new(PointLoad)
	o.D = mat.Rigidity(te)
	o.Alpha = mat.Alpha(o.D)
	o.Coef = o.Alpha * o.Alpha / (2.0 * math.Pi * o.D)
	return
}

// W returns the deflection at distance r per unit force
func (o *PointLoad) W(r float64) float64 {
	return o.Coef * Kei(r/o.Alpha)
}

// Gridded computes the deflection on a regular grid by superposing the response of each
// loaded cell. q holds pressures (ny×nx); each cell carries the force q·dx·dy
func (o *PointLoad) Gridded(q [][]float64, dx, dy float64) (w [][]float64, err error) {
	ny := len(q)
	if ny == 0 || len(q[0]) == 0 {
		return nil, chk.Err("%w: empty load grid", inp.ErrConfig)
	}
	nx := len(q[0])
	for i, row := range q {
		if len(row) != nx {
			return nil, chk.Err("%w: row %d of load has %d columns; %d expected", inp.ErrConfig, i, len(row), nx)
		}
	}
	if dx <= 0 || dy <= 0 {
		return nil, chk.Err("%w: grid spacing must be positive; dx=%g dy=%g", inp.ErrConfig, dx, dy)
	}

	// kernel centred at [ny, nx]
	K := o.Kernel(nx, ny, dx, dy)

	// superposition
	w = utl.Alloc(ny, nx)
	area := dx * dy
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			if q[j][i] == 0 {
				continue
			}
			f := q[j][i] * area
			for a := 0; a < ny; a++ {
				krow := K[ny-j+a][nx-i : 2*nx-i]
				for b, k := range krow {
					w[a][b] += f * k
				}
			}
		}
	}
	return
}

// Kernel returns the response per unit force on a (2ny+1)×(2nx+1) lattice centred at [ny, nx]
func (o *PointLoad) Kernel(nx, ny int, dx, dy float64) (K [][]float64) {
	K = utl.Alloc(2*ny+1, 2*nx+1)
	for a := range K {
		y := float64(a-ny) * dy
		for b := range K[a] {
			x := float64(b-nx) * dx
			K[a][b] = o.W(math.Hypot(x, y))
		}
	}
	return
}

// Scattered computes the deflection at each point of a scattered set loaded by point forces
// q at the same points: wᵢ = Σₖ qₖ·w(rᵢₖ), including the self term
func (o *PointLoad) Scattered(x, y, q []float64) (w []float64, err error) {
	if len(x) != len(y) || len(x) != len(q) {
		return nil, chk.Err("%w: x, y and q must have the same length; got %d, %d, %d", inp.ErrConfig, len(x), len(y), len(q))
	}
	w = make([]float64, len(x))
	for k, qk := range q {
		if qk == 0 {
			continue
		}
		for i := range x {
			w[i] += qk * o.W(math.Hypot(x[i]-x[k], y[i]-y[k]))
		}
	}
	return
}
