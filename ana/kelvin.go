// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions of the flexure of a plate with uniform
// rigidity, built by superposing point load responses
package ana

import (
	"math"
	"math/cmplx"
)

// KelvinSeriesMax is the largest argument for which ker and kei are evaluated with power
// series; the asymptotic expansion is used above it
const KelvinSeriesMax = 12.0

// berBeiSeriesMax is the largest argument for which ber and bei are evaluated with power series
const berBeiSeriesMax = 30.0

const eulerGamma = 0.57721566490153286060651209008240243

// Ber returns the Kelvin function ber(x), x ≥ 0
func Ber(x float64) float64 {
	if x > berBeiSeriesMax {
		return real(bessI0(x))
	}
	ber, _, _, _ := kelvinSeries(x)
	return ber
}

// Bei returns the Kelvin function bei(x), x ≥ 0
func Bei(x float64) float64 {
	if x > berBeiSeriesMax {
		return imag(bessI0(x))
	}
	_, bei, _, _ := kelvinSeries(x)
	return bei
}

// Ker returns the Kelvin function ker(x), x > 0. ker(0) = +Inf
func Ker(x float64) float64 {
	if x == 0 {
		return math.Inf(1)
	}
	if x > KelvinSeriesMax {
		return real(kelvinK0(x))
	}
	_, _, ker, _ := kelvinSeries(x)
	return ker
}

// Kei returns the Kelvin function kei(x), x ≥ 0. kei(0) = -π/4
func Kei(x float64) float64 {
	if x == 0 {
		return -math.Pi / 4
	}
	if x > KelvinSeriesMax {
		return imag(kelvinK0(x))
	}
	_, _, _, kei := kelvinSeries(x)
	return kei
}

// kelvinSeries evaluates the ascending series of ber, bei, ker and kei with y = x²/4:
//
//	ber = Σ (-1)ᵏ y²ᵏ/((2k)!)²
//	bei = Σ (-1)ᵏ y²ᵏ⁺¹/((2k+1)!)²
//	ker = -ln(x/2)·ber + (π/4)·bei + Σ (-1)ᵏ ψ(2k+1) y²ᵏ/((2k)!)²
//	kei = -ln(x/2)·bei - (π/4)·ber + Σ (-1)ᵏ ψ(2k+2) y²ᵏ⁺¹/((2k+1)!)²
//
// where ψ(n) = -γ + Σ_{m<n} 1/m
func kelvinSeries(x float64) (ber, bei, ker, kei float64) {
	y := x * x / 4
	term := 1.0        // yⁿ/(n!)²
	psi := -eulerGamma // ψ(n+1)
	var sker, skei float64
	for n := 0; n < 200; n++ {
		if n > 0 {
			term *= y / float64(n*n)
			psi += 1.0 / float64(n)
		}
		sign := 1.0
		if (n/2)%2 == 1 {
			sign = -1.0
		}
		if n%2 == 0 {
			ber += sign * term
			sker += sign * psi * term
		} else {
			bei += sign * term
			skei += sign * psi * term
		}
		if float64(n) > x && term < 1e-18*(math.Abs(ber)+math.Abs(bei)) {
			break
		}
	}
	ln := math.Log(x / 2)
	ker = -ln*ber + math.Pi/4*bei + sker
	kei = -ln*bei - math.Pi/4*ber + skei
	return
}

// kelvinK0 returns ker(x) + i·kei(x) = K₀(x·e^{iπ/4}) by the asymptotic expansion
//
//	K₀(z) ~ √(π/(2z))·e⁻ᶻ·Σ tₖ,  tₖ = tₖ₋₁·(-(2k-1)²)/(8kz)
func kelvinK0(x float64) complex128 {
	z := complex(x, 0) * cmplx.Exp(complex(0, math.Pi/4))
	return cmplx.Sqrt(math.Pi/(2*z)) * cmplx.Exp(-z) * asymSum(z, 1)
}

// bessI0 returns ber(x) + i·bei(x) = I₀(x·e^{iπ/4}) by the asymptotic expansion
//
//	I₀(z) ~ e^z/√(2πz)·Σ uₖ,  uₖ = uₖ₋₁·(2k-1)²/(8kz),  z = x·e^{iπ/4}
func bessI0(x float64) complex128 {
	z := complex(x, 0) * cmplx.Exp(complex(0, math.Pi/4))
	return cmplx.Exp(z) / cmplx.Sqrt(2*math.Pi*z) * asymSum(z, -1)
}

// asymSum sums Σ tₖ with tₖ = tₖ₋₁·(-s·(2k-1)²)/(8kz), stopping at the smallest term
func asymSum(z complex128, s float64) complex128 {
	sum, term := complex(1, 0), complex(1, 0)
	prev := math.Inf(1)
	for k := 1; k < 100; k++ {
		m := float64(2*k - 1)
		term *= complex(-m*m*s, 0) / (complex(8*float64(k), 0) * z)
		if cmplx.Abs(term) >= prev {
			break
		}
		prev = cmplx.Abs(term)
		sum += term
		if prev < 1e-17*cmplx.Abs(sum) {
			break
		}
	}
	return sum
}
