// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// grid adapts a Field to plotter.GridXYZ. Row 0 (North) is drawn at the top
type grid struct {
	f *Field
}

func (o grid) Dims() (c, r int)   { return len(o.f.V[0]), len(o.f.V) }
func (o grid) Z(c, r int) float64 { return o.f.V[len(o.f.V)-1-r][c] }
func (o grid) X(c int) float64    { return float64(c) * o.f.Dx }
func (o grid) Y(r int) float64    { return float64(len(o.f.V)-1-r) * o.f.Dy }

// PlotMap saves a colour map of the field
func (o *Field) PlotMap(dirout, fn, title string) error {
	if err := os.MkdirAll(dirout, 0777); err != nil {
		return chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x [m]"
	p.Y.Label.Text = "y [m] (from North edge)"
	h := plotter.NewHeatMap(grid{o}, palette.Heat(32, 1))
	p.Add(h)
	if err := p.Save(8*vg.Inch, 7*vg.Inch, filepath.Join(dirout, fn)); err != nil {
		return chk.Err("cannot save plot %q:\n%v", fn, err)
	}
	return nil
}

// PlotProfile saves the profiles of row i and column j
func (o *Field) PlotProfile(dirout, fn, title string, i, j int) error {
	if err := os.MkdirAll(dirout, 0777); err != nil {
		return chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "distance [m]"
	p.Y.Label.Text = "deflection [m]"
	x, vx := o.AlongX(i)
	y, vy := o.AlongY(j)
	for k, c := range []struct {
		label string
		s, v  []float64
		color color.Color
	}{
		{"along x", x, vx, color.RGBA{R: 200, A: 255}},
		{"along y", y, vy, color.RGBA{B: 200, A: 255}},
	} {
		pts := make(plotter.XYs, len(c.s))
		for n := range c.s {
			pts[n] = plotter.XY{X: c.s[n], Y: c.v[n]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return chk.Err("cannot create line %d:\n%v", k, err)
		}
		line.Color = c.color
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(c.label, line)
	}
	p.Legend.Top = true
	if err := p.Save(10*vg.Inch, 5*vg.Inch, filepath.Join(dirout, fn)); err != nil {
		return chk.Err("cannot save plot %q:\n%v", fn, err)
	}
	return nil
}
