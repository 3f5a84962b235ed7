// SPDX-License-Identifier: MIT
// Package gauss: canonical validation checks.
//
// Purpose:
//  - Provide a single source of truth for boundary validation.
//  - Keep the kernel minimal by delegating nil checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly with an operation tag.
//
// The fixed-size array types make dimension mismatch unrepresentable, so
// unlike a runtime-sized matrix package only nil-pointer checks remain.

package gauss

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateMatrixNotNil ensures the matrix pointer is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateMatrixNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateMatrixNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVectorNotNil ensures the vector pointer is non-nil.
// Returns ErrNilVector if v == nil. Complexity: O(1).
func ValidateVectorNotNil(v *Vector) error {
	if v == nil {
		return validatorErrorf("ValidateVectorNotNil", ErrNilVector)
	}

	return nil
}

// ValidateSystem – Composite: MatrixNotNil → VectorNotNil.
// The only preconditions of Solve: arbitrary real-valued entries are
// accepted, including zero rows and columns.
//
// Errors: ErrNilMatrix, ErrNilVector.
// Complexity: O(1).
func ValidateSystem(a *Matrix, b *Vector) error {
	if err := ValidateMatrixNotNil(a); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateVectorNotNil(b); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}

	return nil
}
