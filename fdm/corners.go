// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"github.com/cpmech/gosl/io"

	"github.com/mcflugen/gFlex/inp"
)

// cornerKind is the extra correction at a cell where two corrected edges meet
type cornerKind int

const (
	noCorner     cornerKind = iota // single edge corrections only
	mirrorCorner                   // diagonal ghost reflects through the corner
	freeCorner                     // diagonal ghost extrapolated through the corner
)

// cornerRule returns the correction for the edge conditions meeting at a corner.
// A periodic edge needs none: the wrap keeps the weights moved by the other edge
func cornerRule(a, b inp.BcKind, debug bool) cornerKind {
	slope := func(k inp.BcKind) bool { return k == inp.ZeroSlopeShear || k == inp.Mirror }
	switch {
	case a == inp.Dirichlet0 || b == inp.Dirichlet0:
		return noCorner
	case a == inp.Periodic || b == inp.Periodic:
		return noCorner
	case slope(a) && slope(b):
		return mirrorCorner
	case a == inp.ZeroMomShear && b == inp.ZeroMomShear:
		return freeCorner
	case a == inp.Mirror || b == inp.Mirror:
		return mirrorCorner
	case a == inp.ZeroSlopeShear || b == inp.ZeroSlopeShear:
		return freeCorner
	}
	if debug {
		io.Pfyel("corner %v×%v: single edge corrections only\n", a, b)
	}
	return noCorner
}

// applyCorners adds the corner corrections using the coefficient of the diagonal
// neighbour (sx, sy) lying outside both edges
func applyCorners(o *Stencil, bcs inp.Bcs) {
	g := o.Grid
	corners := []struct {
		i, j   int
		sx, sy int
		ex, ey inp.Edge
	}{
		{0, 0, -1, -1, inp.West, inp.North},
		{0, g.Nx - 1, 1, -1, inp.East, inp.North},
		{g.Ny - 1, 0, -1, 1, inp.West, inp.South},
		{g.Ny - 1, g.Nx - 1, 1, 1, inp.East, inp.South},
	}
	for _, c := range corners {
		kind := cornerRule(bcs.Get(c.ex), bcs.Get(c.ey), o.Debug)
		if o.Debug {
			io.Pf("corner (%d,%d) %v×%v => %d\n", c.i, c.j, bcs.Get(c.ex), bcs.Get(c.ey), kind)
		}
		ghost := o.R(Pos{c.sx, c.sy}, c.i, c.j)
		inner := Pos{-c.sx, -c.sy}
		switch kind {
		case mirrorCorner:
			o.Add(inner, c.i, c.j, ghost)
		case freeCorner:
			o.Add(Pos{0, 0}, c.i, c.j, 2*ghost)
			o.Add(inner, c.i, c.j, -ghost)
		}
	}
}
