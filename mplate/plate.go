// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mplate implements the elastic plate and mantle material
package mplate

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/mcflugen/gFlex/inp"
)

// Material holds elastic plate constants and the densities of mantle and infill
type Material struct {
	E       float64 // Young's modulus [Pa]
	Nu      float64 // Poisson's ratio
	RhoM    float64 // mantle density [kg/m³]
	RhoFill float64 // infill density [kg/m³]
	G       float64 // gravitational acceleration [m/s²]
}

// NewMaterial returns a material with default constants
func NewMaterial() *Material {
	return &Material{E: 65e9, Nu: 0.25, RhoM: 3300, RhoFill: 0, G: 9.8}
}

// NewMaterialFromSim returns the material of a simulation
func NewMaterialFromSim(sim *inp.Simulation) *Material {
	m := sim.Material
	return &Material{E: m.E, Nu: m.Nu, RhoM: m.RhoM, RhoFill: m.RhoFill, G: m.G}
}

// Init sets constants from a parameters list. Missing parameters keep their current values
func (o *Material) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "rhom":
			o.RhoM = p.V
		case "rhofill":
			o.RhoFill = p.V
		case "g":
			o.G = p.V
		default:
			return chk.Err("%w: plate parameter named %q is incorrect", inp.ErrConfig, p.N)
		}
	}
	return o.Check()
}

// GetPrms gets the current constants as a parameters list
func (o Material) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: o.E},
		&dbf.P{N: "nu", V: o.Nu},
		&dbf.P{N: "rhom", V: o.RhoM},
		&dbf.P{N: "rhofill", V: o.RhoFill},
		&dbf.P{N: "g", V: o.G},
	}
}

// Check checks constants
func (o *Material) Check() error {
	if o.E <= 0 {
		return chk.Err("%w: Young's modulus must be positive; E=%g", inp.ErrConfig, o.E)
	}
	if o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("%w: Poisson's ratio must be in (-1, 0.5); nu=%g", inp.ErrConfig, o.Nu)
	}
	if o.G <= 0 {
		return chk.Err("%w: gravity must be positive; g=%g", inp.ErrConfig, o.G)
	}
	if o.Drho() <= 0 {
		return chk.Err("%w: mantle density must exceed infill density; rhom=%g rhofill=%g", inp.ErrConfig, o.RhoM, o.RhoFill)
	}
	return nil
}

// Drho returns the density contrast between mantle and infill
func (o *Material) Drho() float64 { return o.RhoM - o.RhoFill }

// Restoring returns the buoyant restoring stiffness Δρ·g [Pa/m]
func (o *Material) Restoring() float64 { return o.Drho() * o.G }

// Rigidity returns the flexural rigidity D = E·Te³/(12(1-ν²))
func (o *Material) Rigidity(te float64) float64 {
	return o.E * te * te * te / (12.0 * (1.0 - o.Nu*o.Nu))
}

// RigidityField computes D for each cell of an elastic thickness field
func (o *Material) RigidityField(te [][]float64) (D [][]float64) {
	D = make([][]float64, len(te))
	for i, row := range te {
		D[i] = make([]float64, len(row))
		for j, t := range row {
			D[i][j] = o.Rigidity(t)
		}
	}
	return
}

// Alpha returns the flexural parameter (D/(Δρ·g))^¼
func (o *Material) Alpha(D float64) float64 {
	return math.Pow(D/o.Restoring(), 0.25)
}

// MaxFlexuralWavelength returns the flexural wavelength 2π·(4D/(Δρ·g))^¼ of the
// stiffest part of the plate and the number of cells it spans along x and y
func (o *Material) MaxFlexuralWavelength(Dmax, dx, dy float64) (lambda float64, nx, ny int) {
	alpha := math.Pow(4.0*Dmax/o.Restoring(), 0.25)
	lambda = 2.0 * math.Pi * alpha
	nx = int(math.Ceil(lambda / dx))
	ny = int(math.Ceil(lambda / dy))
	return
}

// MaxOf returns the largest value of a field
func MaxOf(a [][]float64) (res float64) {
	res = math.Inf(-1)
	for _, row := range a {
		for _, v := range row {
			res = math.Max(res, v)
		}
	}
	return
}
