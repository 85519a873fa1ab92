// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.flx) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gflex
	Verbose bool   `json:"verbose"` // print stage timings
	Debug   bool   `json:"debug"`   // print solver details
	Quiet   bool   `json:"quiet"`   // suppress time-to-solve message
	Plot    bool   `json:"plot"`    // save plots of the deflection
}

// MaterialData holds plate and mantle constants
type MaterialData struct {
	E       float64 `json:"E"`       // Young's modulus [Pa]
	Nu      float64 `json:"nu"`      // Poisson's ratio
	RhoM    float64 `json:"rhom"`    // mantle density [kg/m³]
	RhoFill float64 `json:"rhofill"` // infill density [kg/m³]
	G       float64 `json:"g"`       // gravitational acceleration [m/s²]
}

// GridData holds the lattice geometry
type GridData struct {
	Nx int     `json:"nx"` // number of columns (x)
	Ny int     `json:"ny"` // number of rows (y)
	Dx float64 `json:"dx"` // x spacing [m]
	Dy float64 `json:"dy"` // y spacing [m]
}

// BcsData holds boundary condition labels
type BcsData struct {
	N string `json:"n"` // north: first row
	S string `json:"s"` // south: last row
	E string `json:"e"` // east: last column
	W string `json:"w"` // west: first column
}

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name    string  `json:"name"`    // "direct" or "iterative"
	Tol     float64 `json:"tol"`     // iterative: tolerance on relative residual
	Restart int     `json:"restart"` // iterative: Krylov subspace size before restarting
	MaxIt   int     `json:"maxit"`   // iterative: max number of iterations
}

// FieldData holds either a constant or a table file
type FieldData struct {
	Value float64 `json:"value"` // constant value
	File  string  `json:"file"`  // whitespace separated table with ny rows and nx columns
}

// PointsData holds a table of scattered loads with columns x, y and q
type PointsData struct {
	File string `json:"file"`
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data     Data         `json:"data"`
	Material MaterialData `json:"material"`
	Grid     GridData     `json:"grid"`
	MethodS  string       `json:"method"`   // FD, FFT, SAS or SAS_NG
	PlateS   string       `json:"platesol"` // vWC1994, LinearTeVariationsOnly or G2009
	BcsS     BcsData      `json:"bcs"`
	LinSol   LinSolData   `json:"linsol"`
	Te       FieldData    `json:"te"`     // elastic thickness [m]
	Loads    FieldData    `json:"loads"`  // surface load [Pa]
	Points   PointsData   `json:"points"` // SAS_NG loads [N]

	// derived
	Key      string   // simulation key; e.g. mysim01.flx => mysim01
	DirIn    string   // directory of .flx file
	DirOut   string   // directory to save results
	Method   Method   // parsed method
	PlateSol PlateSol // parsed plate solution
	Bcs      Bcs      // parsed boundary conditions
}

// SetDefault sets default material constants
func (o *MaterialData) SetDefault() {
	o.E = 65e9
	o.Nu = 0.25
	o.RhoM = 3300
	o.RhoFill = 0
	o.G = 9.8
}

// SetDefault sets default linear solver data
func (o *LinSolData) SetDefault() {
	o.Name = "direct"
	o.Tol = 1e-8
	o.Restart = 100
	o.MaxIt = 10000
}

// SetDefault sets default boundary conditions
func (o *BcsData) SetDefault() {
	o.N, o.S, o.E, o.W = "Dirichlet0", "Dirichlet0", "Dirichlet0", "Dirichlet0"
}

// ReadSim reads all simulation data from a .flx JSON file
func ReadSim(simfilepath, alias string) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)
	o.MethodS = "FD"
	o.PlateS = "vWC1994"
	o.Material.SetDefault()
	o.LinSol.SetDefault()
	o.BcsS.SetDefault()

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("%w: cannot read simulation file %q:\n%v", ErrConfig, simfilepath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("%w: cannot unmarshal simulation file %q:\n%v", ErrConfig, simfilepath, err)
	}

	// input directory and filename key
	o.DirIn = os.ExpandEnv(filepath.Dir(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gflex/" + o.Key
	}

	err = o.PostProcess()
	return
}

// PostProcess parses labels and checks values
func (o *Simulation) PostProcess() (err error) {
	if o.Method, err = ParseMethod(o.MethodS); err != nil {
		return
	}
	if o.PlateSol, err = ParsePlateSol(o.PlateS); err != nil {
		return
	}
	labels := []string{o.BcsS.W, o.BcsS.E, o.BcsS.N, o.BcsS.S}
	kinds := make([]BcKind, 4)
	for i, l := range labels {
		if kinds[i], err = ParseBc(l); err != nil {
			return
		}
	}
	o.Bcs = Bcs{W: kinds[0], E: kinds[1], N: kinds[2], S: kinds[3]}
	if err = o.Bcs.Check(); err != nil {
		return
	}
	if o.LinSol.Name != "direct" && o.LinSol.Name != "iterative" {
		return chk.Err("%w: linear solver must be \"direct\" or \"iterative\"; %q is invalid", ErrConfig, o.LinSol.Name)
	}
	if o.Material.RhoM-o.Material.RhoFill <= 0 {
		return chk.Err("%w: mantle density must exceed infill density (rhom=%g, rhofill=%g)", ErrConfig, o.Material.RhoM, o.Material.RhoFill)
	}
	if o.Method == SASNG {
		if o.Points.File == "" {
			return chk.Err("%w: SAS_NG requires a points file", ErrConfig)
		}
		return
	}
	if o.Grid.Nx < 1 || o.Grid.Ny < 1 || o.Grid.Dx <= 0 || o.Grid.Dy <= 0 {
		return chk.Err("%w: invalid grid nx=%d ny=%d dx=%g dy=%g", ErrConfig, o.Grid.Nx, o.Grid.Ny, o.Grid.Dx, o.Grid.Dy)
	}
	return
}

// Path returns fn relative to the directory of the .flx file, unless fn is absolute
func (o *Simulation) Path(fn string) string {
	if filepath.IsAbs(fn) {
		return fn
	}
	return filepath.Join(o.DirIn, fn)
}

// ReadTe returns the elastic thickness; scalar is true when no file is given
func (o *Simulation) ReadTe() (te float64, field [][]float64, scalar bool, err error) {
	if o.Te.File == "" {
		if o.Te.Value < 0 {
			return 0, nil, true, chk.Err("%w: elastic thickness must be non-negative; Te=%g", ErrConfig, o.Te.Value)
		}
		return o.Te.Value, nil, true, nil
	}
	field, err = ReadTable(o.Path(o.Te.File), o.Grid.Ny, o.Grid.Nx)
	return
}

// ReadLoads returns the gridded load field
func (o *Simulation) ReadLoads() (q [][]float64, err error) {
	if o.Loads.File == "" {
		q = make([][]float64, o.Grid.Ny)
		for i := range q {
			q[i] = make([]float64, o.Grid.Nx)
			for j := range q[i] {
				q[i][j] = o.Loads.Value
			}
		}
		return
	}
	return ReadTable(o.Path(o.Loads.File), o.Grid.Ny, o.Grid.Nx)
}

// ReadPoints returns the scattered loads
func (o *Simulation) ReadPoints() (x, y, q []float64, err error) {
	return ReadPoints(o.Path(o.Points.File))
}
