// SPDX-License-Identifier: MIT

// Package gauss: elimination kernel.
// Declares the Solve facade and the staged helpers it delegates to:
// findPivot (selection), swapRows (exchange), eliminateBelow (reduction),
// backSubstitute (recovery). Helpers assume validated, non-nil inputs.
package gauss

import (
	"fmt"
	"math"
)

// PivotTolerance is the absolute magnitude below which a pivot candidate is
// treated as zero and the system reported singular.
//
// The comparison is absolute, not scaled by the matrix norm: uniformly tiny
// well-conditioned systems can be rejected and large ill-conditioned ones
// accepted. Kept as-is because callers may depend on the exact threshold.
const PivotTolerance = 1e-10

// ZeroEntry is the exact value written into eliminated subdiagonal cells,
// rather than relying on floating-point cancellation to produce it.
const ZeroEntry = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const opSolve = "Solve"

// gaussErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As still match the underlying sentinel.
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solve solves A·x = b in place: Gaussian elimination with partial pivoting,
// then back substitution. On success a holds the upper triangular
// row-echelon form and b holds the solution x.
//
// Implementation:
//   - Stage 1: ValidateSystem(a, b) — nil-pointer boundary checks.
//   - Stage 2: For each pivot column p, select the largest-magnitude pivot
//     (findPivot), guard it against PivotTolerance, swap rows if needed
//     (swapRows), and zero the subdiagonal of column p (eliminateBelow).
//   - Stage 3: backSubstitute recovers x from the triangular system into b.
//
// Behavior highlights:
//   - In-place mutation of both arguments; no allocation, no I/O.
//   - On failure a and b are left partially eliminated and not meaningful.
//   - Full-row swaps (including already-zeroed columns) keep the row
//     exchange behavior identical regardless of the pivot column.
//
// Inputs:
//   - a: coefficient matrix, mutated into row-echelon form on success.
//   - b: right-hand side, overwritten with the solution x on success.
//
// Returns:
//   - error: nil when a unique solution was written into b.
//
// Errors:
//   - ErrNilMatrix / ErrNilVector (from ValidateSystem).
//   - ErrSingularMatrix when every remaining candidate in a pivot column
//     has magnitude below PivotTolerance.
//
// Determinism:
//   - Fixed loop orders and first-wins tie-breaking; identical inputs yield
//     bit-identical outputs. No global state; calls on distinct (a, b)
//     pairs are safe concurrently.
//
// Complexity:
//   - Time O(Size³), Space O(1) beyond the caller's buffers.
//
// Notes:
//   - Back substitution divides by the diagonal unguarded: every diagonal
//     entry exceeded PivotTolerance at the moment it was fixed as a pivot,
//     and later magnitude drift is not re-checked.
//
// AI-Hints:
//   - Clone a and b first if you need the original system afterwards
//     (e.g. for a MulVec residual check); Solve retains no references.
//   - Match failures with errors.Is(err, ErrSingularMatrix), not string
//     comparison; the sentinel is wrapped with an operation tag.
func Solve(a *Matrix, b *Vector) error {
	// Stage 1: boundary validation.
	if err := ValidateSystem(a, b); err != nil {
		return gaussErrorf(opSolve, err)
	}

	// Stage 2: forward elimination with partial pivoting.
	var p, pivotRow int
	for p = 0; p < Size; p++ {
		// Select the row with the largest magnitude in column p.
		pivotRow = findPivot(a, p)

		// A near-zero pivot means the matrix is singular or numerically
		// unstable for this column; abort before dividing by it.
		if math.Abs(a[pivotRow][p]) < PivotTolerance {
			return gaussErrorf(opSolve, ErrSingularMatrix)
		}

		// Exchange rows p and pivotRow in both A and b.
		if pivotRow != p {
			swapRows(a, b, p, pivotRow)
		}

		// Zero out column p below the diagonal.
		eliminateBelow(a, b, p)
	}

	// Stage 3: A is now upper triangular; recover x into b.
	backSubstitute(a, b)

	return nil
}

// findPivot returns the index of the row in p..Size-1 with the maximum
// absolute value in column p. Strict > comparison keeps the lowest index
// on ties (scan order preserved).
// Complexity: O(Size - p).
func findPivot(a *Matrix, p int) int {
	best := p
	for i := p + 1; i < Size; i++ {
		if math.Abs(a[i][p]) > math.Abs(a[best][p]) {
			best = i
		}
	}

	return best
}

// swapRows exchanges rows p and q of a, and elements p and q of b.
// The whole row is swapped, including already-zeroed columns left of p.
// Complexity: O(Size).
func swapRows(a *Matrix, b *Vector, p, q int) {
	a[p], a[q] = a[q], a[p] // array rows swap as values
	b[p], b[q] = b[q], b[p]
}

// eliminateBelow subtracts multiples of pivot row p from every row below it
// so that column p becomes zero under the diagonal. The eliminated cell is
// assigned ZeroEntry explicitly to guarantee an exact zero in the echelon
// structure instead of a cancellation residue.
//
// Determinism: fixed i→j order, columns p+1..Size-1 only.
// Complexity: O((Size-p)²).
func eliminateBelow(a *Matrix, b *Vector, p int) {
	var (
		i, j   int     // loop iterators
		factor float64 // per-row elimination multiplier
	)
	for i = p + 1; i < Size; i++ {
		factor = a[i][p] / a[p][p]

		// Update the right-hand side first, then the active sub-block.
		b[i] -= factor * b[p]
		for j = p + 1; j < Size; j++ {
			a[i][j] -= factor * a[p][j]
		}
		a[i][p] = ZeroEntry
	}
}

// backSubstitute solves the upper triangular system in place, from the last
// row upward, writing x into b. The divide by a[i][i] is unguarded: every
// diagonal entry passed the PivotTolerance check when it was chosen.
//
// Determinism: fixed i↓, j↑ order.
// Complexity: O(Size²).
func backSubstitute(a *Matrix, b *Vector) {
	var i, j int
	for i = Size - 1; i >= 0; i-- {
		// Subtract all terms already solved.
		for j = i + 1; j < Size; j++ {
			b[i] -= a[i][j] * b[j]
		}
		// Divide by the diagonal element.
		b[i] /= a[i][i]
	}
}
