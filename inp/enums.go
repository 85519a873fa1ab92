// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Edge identifies one side of the rectangular domain. Row 0 is North; column 0 is West
type Edge int

// edges
const (
	West Edge = iota
	East
	North
	South
)

// Edges lists all edges in the order boundary conditions are applied
var Edges = []Edge{West, East, North, South}

func (o Edge) String() string {
	switch o {
	case West:
		return "West"
	case East:
		return "East"
	case North:
		return "North"
	case South:
		return "South"
	}
	return "unknown"
}

// Opposite returns the edge across the domain
func (o Edge) Opposite() Edge {
	switch o {
	case West:
		return East
	case East:
		return West
	case North:
		return South
	}
	return North
}

// BcKind is a plate boundary condition
type BcKind int

// boundary conditions
const (
	Dirichlet0     BcKind = iota // zero deflection outside the domain
	ZeroMomShear                 // 0Moment0Shear: free (broken) plate end
	ZeroSlopeShear               // 0Slope0Shear: ghost mirrors the next-inward cell
	Mirror                       // full reflection of deflection and rigidity
	Periodic                     // wraps to the opposite edge
)

var bcNames = map[BcKind]string{
	Dirichlet0:     "Dirichlet0",
	ZeroMomShear:   "0Moment0Shear",
	ZeroSlopeShear: "0Slope0Shear",
	Mirror:         "Mirror",
	Periodic:       "Periodic",
}

func (o BcKind) String() string {
	if s, ok := bcNames[o]; ok {
		return s
	}
	return "unknown"
}

// ParseBc parses a boundary condition label (case insensitive)
func ParseBc(label string) (BcKind, error) {
	for k, s := range bcNames {
		if strings.EqualFold(s, label) {
			return k, nil
		}
	}
	return 0, chk.Err("%w: unknown boundary condition %q", ErrConfig, label)
}

// Method is the solution family
type Method int

// methods
const (
	FD    Method = iota // finite differences
	FFT                 // spectral; not implemented
	SAS                 // superposition of analytical solutions on a grid
	SASNG               // superposition of analytical solutions at scattered points
)

var methodNames = map[Method]string{FD: "FD", FFT: "FFT", SAS: "SAS", SASNG: "SAS_NG"}

func (o Method) String() string {
	if s, ok := methodNames[o]; ok {
		return s
	}
	return "unknown"
}

// ParseMethod parses a method label
func ParseMethod(label string) (Method, error) {
	for k, s := range methodNames {
		if strings.EqualFold(s, label) {
			return k, nil
		}
	}
	return 0, chk.Err("%w: unknown solution method %q", ErrConfig, label)
}

// PlateSol selects the finite difference discretization of the variable rigidity operator
type PlateSol int

// plate solutions
const (
	VWC1994     PlateSol = iota // van Wees and Cloetingh (1994); reference
	LinearTeVar                 // LinearTeVariationsOnly; experimental
	G2009                       // Govers et al. (2009); first order
)

var plateSolNames = map[PlateSol]string{VWC1994: "vWC1994", LinearTeVar: "LinearTeVariationsOnly", G2009: "G2009"}

func (o PlateSol) String() string {
	if s, ok := plateSolNames[o]; ok {
		return s
	}
	return "unknown"
}

// ParsePlateSol parses a plate solution label
func ParsePlateSol(label string) (PlateSol, error) {
	for k, s := range plateSolNames {
		if strings.EqualFold(s, label) {
			return k, nil
		}
	}
	return 0, chk.Err("%w: unknown plate solution %q", ErrConfig, label)
}

// Bcs holds the boundary condition of each edge
type Bcs struct {
	W, E, N, S BcKind
}

// Get returns the condition on edge e
func (o Bcs) Get(e Edge) BcKind {
	switch e {
	case West:
		return o.W
	case East:
		return o.E
	case North:
		return o.N
	}
	return o.S
}

// Check verifies labels and that Periodic edges come in opposing pairs
func (o Bcs) Check() error {
	for _, e := range Edges {
		if _, ok := bcNames[o.Get(e)]; !ok {
			return chk.Err("%w: unknown boundary condition %d on %v edge", ErrConfig, int(o.Get(e)), e)
		}
	}
	if (o.W == Periodic) != (o.E == Periodic) {
		return chk.Err("%w: Periodic on West/East requires both edges periodic (W=%v, E=%v)", ErrConfig, o.W, o.E)
	}
	if (o.N == Periodic) != (o.S == Periodic) {
		return chk.Err("%w: Periodic on North/South requires both edges periodic (N=%v, S=%v)", ErrConfig, o.N, o.S)
	}
	return nil
}

// PeriodicX tells whether the West/East pair wraps
func (o Bcs) PeriodicX() bool { return o.W == Periodic }

// PeriodicY tells whether the North/South pair wraps
func (o Bcs) PeriodicY() bool { return o.N == Periodic }

func (o Bcs) String() string {
	return "W=" + o.W.String() + " E=" + o.E.String() + " N=" + o.N.String() + " S=" + o.S.String()
}
