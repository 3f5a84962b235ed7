// SPDX-License-Identifier: MIT

// Package gauss: fixed-dimension domain types.
// This file intentionally contains ONLY the value types shared by the
// solver kernel and its callers. Errors live in errors.go, validation in
// validators.go, and the kernel itself in gauss.go per the package layout
// conventions.
package gauss

import "fmt"

// Size is the fixed dimension shared by Matrix and Vector. The whole
// package is specialized to this value: A is always Size×Size and b always
// has exactly Size elements, enforced by the type system rather than by
// runtime shape checks.
const Size = 10

// Matrix is a dense, row-major Size×Size coefficient matrix.
// It is a plain array value type: assignment copies, and rows are
// contiguous [Size]float64 arrays that can be swapped wholesale.
type Matrix [Size][Size]float64

// Vector is a dense column vector of exactly Size elements.
type Vector [Size]float64

// Clone returns a deep copy of the matrix.
// Complexity: O(Size²).
func (m *Matrix) Clone() *Matrix {
	cp := *m // array assignment copies all elements

	return &cp
}

// Clone returns a deep copy of the vector.
// Complexity: O(Size).
func (v *Vector) Clone() *Vector {
	cp := *v

	return &cp
}

// MulVec computes y = m·x without mutating either operand.
// Used by callers to check residuals of a computed solution against the
// original system; Solve itself never calls it.
//
// Determinism: fixed i→j loop order.
// Complexity: O(Size²), Space O(1) beyond the returned value.
func (m *Matrix) MulVec(x *Vector) Vector {
	var (
		y    Vector  // result accumulator, zero-initialized
		i, j int     // loop iterators
		acc  float64 // per-row dot product
	)
	for i = 0; i < Size; i++ {
		acc = 0
		for j = 0; j < Size; j++ {
			acc += m[i][j] * x[j]
		}
		y[i] = acc
	}

	return y
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(Size²) for string construction.
func (m *Matrix) String() string {
	var s string
	var i, j int
	for i = 0; i < Size; i++ { // iterate over rows
		s += "["                   // open row
		for j = 0; j < Size; j++ { // iterate over columns
			s += fmt.Sprintf("%g", m[i][j])
			if j < Size-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}

// String renders the vector via FormatVector (fixed-width, 4 decimals).
func (v *Vector) String() string {
	return FormatVector(v)
}
