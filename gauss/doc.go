// SPDX-License-Identifier: MIT

// Package gauss solves dense linear systems Ax = b of the fixed dimension
// Size (10) using Gaussian elimination with partial pivoting followed by
// back substitution.
//
// Description:
//
//	The dimension is fixed at compile time: Matrix and Vector are plain Go
//	arrays, so shape mismatches are unrepresentable and the kernel runs on
//	contiguous, cache-friendly storage with no allocation. Solve mutates
//	both arguments in place: on success the matrix holds the upper
//	triangular row-echelon form (subdiagonal entries explicitly zeroed)
//	and the vector holds the solution x.
//
// Algorithm Outline:
//  1. For each pivot column p = 0..Size-1:
//     a. scan rows p..Size-1 and pick the first row maximizing |A[i][p]|
//     (strict > comparison keeps the lowest index on ties);
//     b. if |A[pivot][p]| < PivotTolerance, the system is singular or
//     numerically unstable — fail with ErrSingularMatrix;
//     c. swap the full rows p and pivot in both A and b when they differ;
//     d. eliminate: for each row i > p, factor = A[i][p]/A[p][p],
//     b[i] -= factor·b[p], A[i][j] -= factor·A[p][j] for j > p, and
//     A[i][p] is set to an exact zero.
//  2. Back substitution from row Size-1 down to 0 recovers x into b.
//
// Error policy:
//   - Sentinel errors only (ErrSingularMatrix, ErrNilMatrix, ErrNilVector),
//     matched via errors.Is; facades wrap them with an operation tag.
//   - No panics on user-triggered conditions.
//   - After a failure the contents of A and b are not meaningful.
//
// Determinism:
//   - Fixed loop orders, no global or static state, no randomness.
//   - Concurrent Solve calls on distinct (A, b) pairs are safe; callers
//     must serialize access to a shared pair.
//
// Known limitation:
//   - PivotTolerance is an absolute magnitude check, not scaled by the
//     matrix norm. Uniformly tiny but well-conditioned systems can be
//     misclassified as singular, and ill-conditioned systems with large
//     coefficients can slip through. The behavior is kept as-is because
//     callers may depend on the exact threshold.
//
// Complexity:
//
//	Time   = O(Size³)
//	Memory = O(1) beyond the caller-owned buffers
package gauss
