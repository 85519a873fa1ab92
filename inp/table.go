// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// ReadTable reads a whitespace separated table of numbers. Blank lines and lines starting
// with '#' are skipped. If nrow or ncol are positive, the shape is checked
func ReadTable(fn string, nrow, ncol int) (T [][]float64, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("%w: cannot read table %q:\n%v", ErrConfig, fn, err)
	}
	T, err = ParseTable(string(b))
	if err != nil {
		return nil, chk.Err("table %q:\n%w", fn, err)
	}
	if nrow > 0 && len(T) != nrow {
		return nil, chk.Err("%w: table %q has %d rows; %d expected", ErrConfig, fn, len(T), nrow)
	}
	for i, row := range T {
		if ncol > 0 && len(row) != ncol {
			return nil, chk.Err("%w: row %d of table %q has %d columns; %d expected", ErrConfig, i, fn, len(row), ncol)
		}
	}
	return
}

// ParseTable parses rows of numbers
func ParseTable(text string) (T [][]float64, err error) {
	for k, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]float64, len(fields))
		for j, f := range fields {
			row[j], err = strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, chk.Err("%w: line %d: cannot parse %q", ErrConfig, k+1, f)
			}
		}
		T = append(T, row)
	}
	return
}

// ReadPoints reads a table with columns x, y and q
func ReadPoints(fn string) (x, y, q []float64, err error) {
	T, err := ReadTable(fn, 0, 3)
	if err != nil {
		return
	}
	x = make([]float64, len(T))
	y = make([]float64, len(T))
	q = make([]float64, len(T))
	for i, row := range T {
		x[i], y[i], q[i] = row[0], row[1], row[2]
	}
	return
}
