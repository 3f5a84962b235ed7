package gauss_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/densolve/gauss"
)

// TestSolveProperties checks the kernel's contract over randomized systems:
// diagonally dominant inputs (provably non-singular) must solve with a tiny
// residual and deterministically, while rank-deficient inputs must be
// rejected with ErrSingularMatrix.
func TestSolveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("dominant systems solve with small residual", prop.ForAll(
		func(seed int64) bool {
			a, b := dominantSystem(seed)
			origA, origB := a.Clone(), b.Clone()
			if err := gauss.Solve(a, b); err != nil {
				return false
			}
			return maxResidual(origA, b, origB) < residualTolerance
		},
		gen.Int64(),
	))

	properties.Property("solve(copy(A), copy(b)) is bit-identical across calls", prop.ForAll(
		func(seed int64) bool {
			a1, b1 := dominantSystem(seed)
			a2, b2 := dominantSystem(seed)
			if err := gauss.Solve(a1, b1); err != nil {
				return false
			}
			if err := gauss.Solve(a2, b2); err != nil {
				return false
			}
			return *a1 == *a2 && *b1 == *b2
		},
		gen.Int64(),
	))

	properties.Property("a duplicated row is rejected as singular", prop.ForAll(
		func(seed int64) bool {
			a, b := dominantSystem(seed)
			a[7] = a[2] // force rank deficiency
			err := gauss.Solve(a, b)
			return errors.Is(err, gauss.ErrSingularMatrix)
		},
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
