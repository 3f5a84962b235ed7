// SPDX-License-Identifier: MIT
// Package gauss: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the gauss
// package. All routines MUST return these sentinels and tests MUST check them
// via errors.Is. No routine panics on user-triggered error conditions.

package gauss

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "gauss: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrSingularMatrix is returned when a pivot scan finds no row whose
	// magnitude in the pivot column exceeds PivotTolerance. The system has
	// no unique solution (or is numerically indistinguishable from one that
	// doesn't), and the outputs are not meaningful.
	ErrSingularMatrix = errors.New("gauss: singular matrix")

	// ErrNilMatrix indicates that a nil *Matrix was passed into a solver
	// or helper that requires one.
	ErrNilMatrix = errors.New("gauss: nil matrix")

	// ErrNilVector indicates that a nil *Vector was passed into a solver
	// or helper that requires one.
	ErrNilVector = errors.New("gauss: nil vector")
)
