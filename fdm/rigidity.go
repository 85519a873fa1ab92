// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"github.com/cpmech/gosl/utl"

	"github.com/mcflugen/gFlex/inp"
)

// PadRigidity returns D with one ghost cell on each side. Ghost values follow the edge
// condition: Periodic wraps, Mirror reflects, the others extrapolate with zero curvature.
// West/East ghost columns are set first; North/South ghost rows span the full padded width
func PadRigidity(D [][]float64, bcs inp.Bcs) (Dp [][]float64) {
	ny, nx := len(D), len(D[0])
	Dp = utl.Alloc(ny+2, nx+2)
	for i := 0; i < ny; i++ {
		copy(Dp[i+1][1:nx+1], D[i])
	}

	// columns
	last := nx + 1
	for r := 1; r <= ny; r++ {
		switch bcs.W {
		case inp.Periodic:
			Dp[r][0] = Dp[r][nx]
		case inp.Mirror:
			Dp[r][0] = Dp[r][2]
		default:
			Dp[r][0] = 2*Dp[r][1] - Dp[r][2]
		}
		switch bcs.E {
		case inp.Periodic:
			Dp[r][last] = Dp[r][1]
		case inp.Mirror:
			Dp[r][last] = Dp[r][last-2]
		default:
			Dp[r][last] = 2*Dp[r][last-1] - Dp[r][last-2]
		}
	}

	// rows
	last = ny + 1
	for c := 0; c < nx+2; c++ {
		switch bcs.N {
		case inp.Periodic:
			Dp[0][c] = Dp[ny][c]
		case inp.Mirror:
			Dp[0][c] = Dp[2][c]
		default:
			Dp[0][c] = 2*Dp[1][c] - Dp[2][c]
		}
		switch bcs.S {
		case inp.Periodic:
			Dp[last][c] = Dp[1][c]
		case inp.Mirror:
			Dp[last][c] = Dp[last-2][c]
		default:
			Dp[last][c] = 2*Dp[last-1][c] - Dp[last-2][c]
		}
	}
	return
}
