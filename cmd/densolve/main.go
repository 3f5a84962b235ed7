// Command densolve demonstrates the gauss solver on a concrete 10×10
// system: it times the solve, prints the solution vector and its residual,
// then shows how a singular system is rejected. Everything here is
// presentation glue — solver semantics live entirely in the gauss package.
package main

import (
	"math"
	"os"
	"time"

	"github.com/katalvlaran/densolve/gauss"
	"github.com/katalvlaran/densolve/logger"
)

// tridiagonalSystem builds the demo system: 2 on the diagonal, 1 on the
// sub/super-diagonals, b = [1, 2, ..., 10].
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

func main() {
	log := logger.Logger()

	// --- Example 1: solvable tridiagonal system ---
	a, b := tridiagonalSystem()
	origA, origB := a.Clone(), b.Clone()

	start := time.Now()
	err := gauss.Solve(a, b)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Msg("failed to solve tridiagonal system")
		os.Exit(1)
	}

	// Residual against the original system, max norm.
	ax := origA.MulVec(b)
	var residual float64
	for i := 0; i < gauss.Size; i++ {
		if r := math.Abs(ax[i] - origB[i]); r > residual {
			residual = r
		}
	}

	log.Info().Dur("took", elapsed).Msg("matrix solved successfully")
	log.Info().Str("x", gauss.FormatVector(b)).Msg("solution vector")
	log.Info().Float64("residual", residual).Msg("max-norm residual against original system")

	// --- Example 2: singular system (all-zero column) ---
	sa, sb := tridiagonalSystem()
	for i := 0; i < gauss.Size; i++ {
		sa[i][3] = 0
	}
	if err = gauss.Solve(sa, sb); err != nil {
		log.Warn().Err(err).Msg("singular system rejected as expected")
	}
}
