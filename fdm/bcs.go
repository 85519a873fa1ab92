// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/mcflugen/gFlex/inp"
)

// rule moves fac × Raw(src) into the working coefficient at dst
type rule struct {
	dst, src Pos
	fac      float64
}

// edgeRules holds ghost elimination rules written for the West edge. Index 0 is the
// outermost column and index 1 the next one inwards
var edgeRules = map[inp.BcKind][2][]rule{
	inp.ZeroMomShear: {
		{
			{Pos{0, -1}, Pos{-1, -1}, 2},
			{Pos{0, 0}, Pos{-2, 0}, 4},
			{Pos{0, 0}, Pos{-1, 0}, 2},
			{Pos{0, 1}, Pos{-1, 1}, 2},
			{Pos{1, -1}, Pos{-1, -1}, -1},
			{Pos{1, 0}, Pos{-2, 0}, -4},
			{Pos{1, 0}, Pos{-1, 0}, -1},
			{Pos{1, 1}, Pos{-1, 1}, -1},
			{Pos{2, 0}, Pos{-2, 0}, 1},
		},
		{
			{Pos{-1, 0}, Pos{-2, 0}, 2},
			{Pos{1, 0}, Pos{-2, 0}, -2},
			{Pos{2, 0}, Pos{-2, 0}, 1},
		},
	},
	inp.ZeroSlopeShear: {
		{
			{Pos{1, -1}, Pos{-1, -1}, 1},
			{Pos{1, 0}, Pos{-1, 0}, 1},
			{Pos{1, 1}, Pos{-1, 1}, 1},
			{Pos{2, 0}, Pos{-2, 0}, 1},
		},
		{
			{Pos{2, 0}, Pos{-2, 0}, 1},
		},
	},
	inp.Mirror: {
		{
			{Pos{1, -1}, Pos{-1, -1}, 1},
			{Pos{1, 0}, Pos{-1, 0}, 1},
			{Pos{1, 1}, Pos{-1, 1}, 1},
			{Pos{2, 0}, Pos{-2, 0}, 1},
		},
		{
			{Pos{0, 0}, Pos{-2, 0}, 1},
		},
	},
}

// toEdge maps a West-frame position onto edge e
func toEdge(e inp.Edge, p Pos) Pos {
	switch e {
	case inp.East:
		return Pos{-p.X, p.Y}
	case inp.North:
		return Pos{p.Y, p.X}
	case inp.South:
		return Pos{p.Y, -p.X}
	}
	return p
}

// ring returns the cells of the ring r (0 = outermost) of edge e
func ring(g Grid, e inp.Edge, r int) (cells [][2]int) {
	switch e {
	case inp.West, inp.East:
		j := r
		if e == inp.East {
			j = g.Nx - 1 - r
		}
		for i := 0; i < g.Ny; i++ {
			cells = append(cells, [2]int{i, j})
		}
	default:
		i := r
		if e == inp.South {
			i = g.Ny - 1 - r
		}
		for j := 0; j < g.Nx; j++ {
			cells = append(cells, [2]int{i, j})
		}
	}
	return
}

// ApplyBcs rewrites the coefficients near each edge and flags every entry that points
// outside a non-periodic edge as inactive
func ApplyBcs(o *Stencil, bcs inp.Bcs) (err error) {
	if err = bcs.Check(); err != nil {
		return
	}
	if err = o.Grid.Check(); err != nil {
		return
	}

	// edges
	for _, e := range inp.Edges {
		rules, ok := edgeRules[bcs.Get(e)]
		if !ok {
			continue // Dirichlet0 and Periodic
		}
		for r := 0; r < 2; r++ {
			for _, cell := range ring(o.Grid, e, r) {
				i, j := cell[0], cell[1]
				for _, ru := range rules[r] {
					o.Add(toEdge(e, ru.dst), i, j, ru.fac*o.R(toEdge(e, ru.src), i, j))
				}
			}
		}
	}

	// corners
	applyCorners(o, bcs)

	// entries leaving the domain
	px, py := bcs.PeriodicX(), bcs.PeriodicY()
	g := o.Grid
	for i := 0; i < g.Ny; i++ {
		for j := 0; j < g.Nx; j++ {
			for _, p := range Positions {
				ii, jj := i+p.Y, j+p.X
				outx := jj < 0 || jj >= g.Nx
				outy := ii < 0 || ii >= g.Ny
				if (outx && !px) || (outy && !py) {
					o.deactivate(p, i, j)
				}
			}
		}
	}
	return
}

// CheckInactive returns an error if an inactive entry holds a value
func CheckInactive(o *Stencil) error {
	for k, p := range Positions {
		for i := range o.C[k] {
			for j, v := range o.C[k][i] {
				if o.Inactive[k][i][j] && v != 0 {
					return chk.Err("inactive entry (%d,%d) of cell (%d,%d) holds %g", p.X, p.Y, i, j, v)
				}
			}
		}
	}
	return nil
}
