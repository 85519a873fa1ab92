// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_kelvin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kelvin01")

	// Abramowitz and Stegun, table 9.12
	chk.Float64(tst, "ber(0)", 1e-15, Ber(0), 1)
	chk.Float64(tst, "bei(0)", 1e-15, Bei(0), 0)
	chk.Float64(tst, "kei(0)", 1e-15, Kei(0), -math.Pi/4)
	chk.Float64(tst, "ber(1)", 1e-9, Ber(1), 0.9843817812)
	chk.Float64(tst, "bei(1)", 1e-9, Bei(1), 0.2495660400)
	chk.Float64(tst, "ker(1)", 1e-9, Ker(1), 0.2867062087)
	chk.Float64(tst, "kei(1)", 1e-9, Kei(1), -0.4949946365)
	chk.Float64(tst, "ber(2)", 1e-9, Ber(2), 0.7517341827)
	chk.Float64(tst, "bei(2)", 1e-9, Bei(2), 0.9722916273)
	chk.Float64(tst, "ker(2)", 1e-9, Ker(2), -0.0416645140)
	chk.Float64(tst, "kei(2)", 1e-9, Kei(2), -0.2024000680)
	if !math.IsInf(Ker(0), 1) {
		tst.Errorf("ker(0) must be +Inf")
	}
}

func Test_kelvin02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kelvin02")

	// series and asymptotic expansion agree around the switch point
	for _, x := range []float64{10, 11, 12, 13, 14} {
		_, _, ker, kei := kelvinSeries(x)
		k0 := kelvinK0(x)
		io.Pforan("x=%4g  kei: series=%+.15e asymptotic=%+.15e\n", x, kei, imag(k0))
		chk.Float64(tst, io.Sf("ker(%g)", x), 1e-11, ker, real(k0))
		chk.Float64(tst, io.Sf("kei(%g)", x), 1e-11, kei, imag(k0))
	}

	// ber and bei
	for _, x := range []float64{25, 28, 30} {
		ber, bei, _, _ := kelvinSeries(x)
		i0 := bessI0(x)
		chk.Float64(tst, io.Sf("ber(%g)", x), 1e-7*math.Abs(ber), ber, real(i0))
		chk.Float64(tst, io.Sf("bei(%g)", x), 1e-7*math.Abs(bei), bei, imag(i0))

		// I₀(z) = Σ (z²/4)ᵏ/(k!)² with z = x·e^{iπ/4}
		z := complex(x, 0) * cmplx.Exp(complex(0, math.Pi/4))
		sum, term := complex(1, 0), complex(1, 0)
		for k := 1; k < 200; k++ {
			term *= z * z / complex(4*float64(k*k), 0)
			sum += term
		}
		chk.Float64(tst, io.Sf("Re I0(%g)", x), 1e-7*cmplx.Abs(sum), real(i0), real(sum))
		chk.Float64(tst, io.Sf("Im I0(%g)", x), 1e-7*cmplx.Abs(sum), imag(i0), imag(sum))
	}

	prev := Kei(0)
	for x := 0.25; x < 3.9; x += 0.25 {
		k := Kei(x)
		if k <= prev {
			tst.Errorf("kei must increase on (0, 3.9); kei(%g)=%g <= %g", x, k, prev)
		}
		prev = k
	}
	if Kei(5) <= 0 {
		tst.Errorf("kei(5) must be positive (forebulge); got %g", Kei(5))
	}
}
