// SPDX-License-Identifier: MIT
// Package gauss_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures shared by unit, property and
//     benchmark tests.
//   • Keep all data finite and well-formed so fixtures never trip the
//     singularity guard unless a test sabotages them on purpose.

package gauss_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/densolve/gauss"
)

// tridiagonalSystem BUILDS the reference system: 2 on the diagonal, 1 on
// the sub/super-diagonals, b = [1, 2, ..., Size].
// Its exact solution is [0, 1, 0, 2, 0, 3, 0, 4, 0, 5].
func tridiagonalSystem() (*gauss.Matrix, *gauss.Vector) {
	var a gauss.Matrix
	var b gauss.Vector
	for i := 0; i < gauss.Size; i++ {
		a[i][i] = 2
		if i > 0 {
			a[i][i-1] = 1
		}
		if i < gauss.Size-1 {
			a[i][i+1] = 1
		}
		b[i] = float64(i + 1)
	}

	return &a, &b
}

// identityMatrix BUILDS the Size×Size identity.
func identityMatrix() *gauss.Matrix {
	var a gauss.Matrix
	for i := 0; i < gauss.Size; i++ {
		a[i][i] = 1
	}

	return &a
}

// sequenceVector BUILDS b = [1, 2, ..., Size].
func sequenceVector() *gauss.Vector {
	var b gauss.Vector
	for i := 0; i < gauss.Size; i++ {
		b[i] = float64(i + 1)
	}

	return &b
}

// dominantSystem BUILDS a pseudo-random strictly diagonally dominant system
// from the given seed. Dominance guarantees non-singularity, so Solve must
// succeed; the fixed seed keeps every run reproducible.
func dominantSystem(seed int64) (*gauss.Matrix, *gauss.Vector) {
	rng := rand.New(rand.NewSource(seed))
	var (
		a      gauss.Matrix
		b      gauss.Vector
		i, j   int
		rowSum float64
	)
	for i = 0; i < gauss.Size; i++ {
		rowSum = 0
		for j = 0; j < gauss.Size; j++ {
			if i == j {
				continue
			}
			a[i][j] = rng.Float64()*2 - 1 // off-diagonal in [-1, 1)
			rowSum += math.Abs(a[i][j])
		}
		// Diagonal strictly exceeds the row's off-diagonal mass.
		a[i][i] = rowSum + 1 + rng.Float64()
		b[i] = rng.Float64()*20 - 10
	}

	return &a, &b
}

// maxResidual computes ‖a·x − b‖∞, the max-norm residual of a candidate
// solution x against the ORIGINAL system (a, b).
func maxResidual(a *gauss.Matrix, x, b *gauss.Vector) float64 {
	ax := a.MulVec(x)
	var worst float64
	for i := 0; i < gauss.Size; i++ {
		if r := math.Abs(ax[i] - b[i]); r > worst {
			worst = r
		}
	}

	return worst
}
