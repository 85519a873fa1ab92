// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/mcflugen/gFlex/inp"
)

// SolverIterative implements restarted GMRES with Jacobi (diagonal) preconditioning.
// Convergence is measured on the preconditioned relative residual
type SolverIterative struct {
	Tol     float64 // tolerance on ‖M⁻¹(b - A·x)‖ / ‖M⁻¹b‖
	Restart int     // Krylov subspace size
	MaxIt   int     // max number of matrix-vector products
	Nit     int     // number of iterations of the last solve
	Res     float64 // relative residual of the returned iterate
	debug   bool
	A       *Operator
	dinv    []float64 // inverse of diagonal
}

// set factory of solvers
func init() {
	linsolallocators["iterative"] = func(prm inp.LinSolData, debug bool) LinSol {
		o := &SolverIterative{Tol: prm.Tol, Restart: prm.Restart, MaxIt: prm.MaxIt, debug: debug}
		if o.Tol <= 0 {
			o.Tol = 1e-8
		}
		if o.Restart < 1 {
			o.Restart = 100
		}
		if o.MaxIt < 1 {
			o.MaxIt = 10000
		}
		return o
	}
}

// Init sets the operator and its preconditioner
func (o *SolverIterative) Init(A *Operator) error {
	o.A = A
	o.dinv = make([]float64, A.N)
	for i, v := range A.Diagonal() {
		if v == 0 {
			return chk.Err("%w: zero diagonal at equation %d", inp.ErrNumerical, i)
		}
		o.dinv[i] = 1.0 / v
	}
	return nil
}

// Free does nothing
func (o *SolverIterative) Free() {}

// precond computes y = M⁻¹·A·x
func (o *SolverIterative) precond(y, x []float64) {
	o.A.MulVec(y, x)
	floats.Mul(y, o.dinv)
}

// Solve solves A·x = b starting from x = 0. If the tolerance is not reached, x holds the
// best iterate found and the error wraps ErrNumerical
func (o *SolverIterative) Solve(x, b []float64) error {
	if o.A == nil {
		return chk.Err("iterative solver must be initialised first")
	}
	n, m := o.A.N, o.Restart
	if m > n {
		m = n
	}

	// preconditioned right-hand side
	pb := make([]float64, n)
	floats.MulTo(pb, b, o.dinv)
	bnorm := floats.Norm(pb, 2)
	for i := range x {
		x[i] = 0
	}
	o.Nit, o.Res = 0, 0
	if bnorm == 0 {
		return nil
	}

	// workspace
	V := make([][]float64, m+1)
	for i := range V {
		V[i] = make([]float64, n)
	}
	H := make([][]float64, m+1)
	for i := range H {
		H[i] = make([]float64, m)
	}
	cs, sn, g := make([]float64, m), make([]float64, m), make([]float64, m+1)
	r, w := make([]float64, n), make([]float64, n)
	best := make([]float64, n)
	bestRes := math.Inf(1)

	for {

		// residual
		o.precond(w, x)
		floats.SubTo(r, pb, w)
		beta := floats.Norm(r, 2)
		res := beta / bnorm
		if res < bestRes {
			bestRes = res
			copy(best, x)
		}
		if o.debug {
			io.Pf("gmres: it=%d res=%g\n", o.Nit, res)
		}
		if res <= o.Tol {
			break
		}
		if o.Nit >= o.MaxIt {
			copy(x, best)
			o.Res = bestRes
			return chk.Err("%w: GMRES did not converge after %d iterations; relative residual = %g", inp.ErrNumerical, o.Nit, bestRes)
		}

		// Arnoldi
		floats.ScaleTo(V[0], 1.0/beta, r)
		for i := range g {
			g[i] = 0
		}
		g[0] = beta
		kk := 0
		stalled := false
		for k := 0; k < m && o.Nit < o.MaxIt; k++ {
			o.precond(w, V[k])
			o.Nit++
			for l := 0; l <= k; l++ {
				H[l][k] = floats.Dot(w, V[l])
				floats.AddScaled(w, -H[l][k], V[l])
			}
			H[k+1][k] = floats.Norm(w, 2)
			breakdown := H[k+1][k] == 0
			if !breakdown {
				floats.ScaleTo(V[k+1], 1.0/H[k+1][k], w)
			}

			// Givens rotations
			for l := 0; l < k; l++ {
				t := cs[l]*H[l][k] + sn[l]*H[l+1][k]
				H[l+1][k] = -sn[l]*H[l][k] + cs[l]*H[l+1][k]
				H[l][k] = t
			}
			den := math.Hypot(H[k][k], H[k+1][k])
			if den == 0 {
				stalled = true // A·V[k] lies in the span of the previous basis vectors
				break
			}
			cs[k], sn[k] = H[k][k]/den, H[k+1][k]/den
			H[k][k] = den
			H[k+1][k] = 0
			g[k+1] = -sn[k] * g[k]
			g[k] = cs[k] * g[k]
			kk = k + 1
			if breakdown || math.Abs(g[k+1])/bnorm <= o.Tol {
				break
			}
		}

		// update x with the least-squares combination of the Krylov basis
		if kk > 0 {
			y, err := solveUpper(H, g, kk)
			if err != nil {
				copy(x, best)
				o.Res = bestRes
				return chk.Err("%w: GMRES least-squares update failed:\n%v", inp.ErrNumerical, err)
			}
			for l := 0; l < kk; l++ {
				floats.AddScaled(x, y.AtVec(l), V[l])
			}
		}
		if stalled {
			o.precond(w, x)
			floats.SubTo(r, pb, w)
			if res := floats.Norm(r, 2) / bnorm; res < bestRes {
				bestRes = res
				copy(best, x)
			}
			if bestRes <= o.Tol {
				break
			}
			copy(x, best)
			o.Res = bestRes
			return chk.Err("%w: GMRES breakdown after %d iterations (singular operator); relative residual = %g", inp.ErrNumerical, o.Nit, bestRes)
		}
	}
	o.Res = bestRes
	copy(x, best)
	return checkFinite(x)
}

// solveUpper solves the k×k upper triangular system H·y = g
func solveUpper(H [][]float64, g []float64, k int) (*mat.VecDense, error) {
	data := make([]float64, k*k)
	for i := 0; i < k; i++ {
		copy(data[i*k+i:i*k+k], H[i][i:k])
	}
	T := mat.NewTriDense(k, mat.Upper, data)
	var y mat.VecDense
	err := y.SolveVec(T, mat.NewVecDense(k, append([]float64(nil), g[:k]...)))
	if _, ok := err.(mat.Condition); ok {
		err = nil // ill-conditioned but solved
	}
	return &y, err
}
