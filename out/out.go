// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling of deflection fields for analyses and plotting
package out

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Field holds a gridded result with its spacing
type Field struct {
	V      [][]float64 // values (ny×nx)
	Dx, Dy float64     // spacing
}

// Stats holds a summary of a field
type Stats struct {
	Min, Max   float64 // extreme values
	IMin, JMin int     // row and column of Min
	IMax, JMax int     // row and column of Max
	Mean       float64 // average value
}

// GetStats computes the summary of a field
func (o *Field) GetStats() (s Stats) {
	s.Min, s.Max = math.Inf(1), math.Inf(-1)
	n := 0
	for i, row := range o.V {
		for j, v := range row {
			if v < s.Min {
				s.Min, s.IMin, s.JMin = v, i, j
			}
			if v > s.Max {
				s.Max, s.IMax, s.JMax = v, i, j
			}
			s.Mean += v
			n++
		}
	}
	if n > 0 {
		s.Mean /= float64(n)
	}
	return
}

func (o Stats) String() string {
	return io.Sf("min = %g at (%d,%d)  max = %g at (%d,%d)  mean = %g", o.Min, o.IMin, o.JMin, o.Max, o.IMax, o.JMax, o.Mean)
}

// AlongX returns the coordinates and values of row i
func (o *Field) AlongX(i int) (x, v []float64) {
	v = append(v, o.V[i]...)
	x = make([]float64, len(v))
	for j := range x {
		x[j] = float64(j) * o.Dx
	}
	return
}

// AlongY returns the coordinates and values of column j
func (o *Field) AlongY(j int) (y, v []float64) {
	y = make([]float64, len(o.V))
	v = make([]float64, len(o.V))
	for i := range o.V {
		y[i] = float64(i) * o.Dy
		v[i] = o.V[i][j]
	}
	return
}

// Table returns the field as a whitespace separated table; one grid row per line
func Table(a [][]float64) *bytes.Buffer {
	var buf bytes.Buffer
	for _, row := range a {
		for j, v := range row {
			if j > 0 {
				io.Ff(&buf, " ")
			}
			io.Ff(&buf, "%.17g", v)
		}
		io.Ff(&buf, "\n")
	}
	return &buf
}

// PointsTable returns scattered values as a table with columns x, y and v
func PointsTable(x, y, v []float64) *bytes.Buffer {
	var buf bytes.Buffer
	io.Ff(&buf, "# x y w\n")
	for i := range x {
		io.Ff(&buf, "%.17g %.17g %.17g\n", x[i], y[i], v[i])
	}
	return &buf
}

// Save writes a buffer to dirout/fn, creating the directory
func Save(dirout, fn string, buf *bytes.Buffer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot save %s/%s: %v", dirout, fn, r)
		}
	}()
	io.WriteFileD(dirout, fn, buf)
	return
}
