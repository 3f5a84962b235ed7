// SPDX-License-Identifier: MIT

// Package gauss: presentation helpers. Rendering is a caller-side concern;
// the solver kernel itself performs no I/O.
package gauss

import (
	"fmt"
	"strings"
)

// Fixed rendering policy for FormatVector: field width and decimal places.
const (
	formatWidth     = 8
	formatPrecision = 4
)

// FormatVector renders v as a bracketed, comma-separated list with fixed
// decimal precision (4 digits) and fixed field width (8 characters), e.g.
// "[  0.5000,   1.0000]". A nil vector renders as "[]".
// Complexity: O(Size).
func FormatVector(v *Vector) string {
	if v == nil {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < Size; i++ {
		fmt.Fprintf(&sb, "%*.*f", formatWidth, formatPrecision, v[i])
		if i < Size-1 {
			sb.WriteString(", ") // separate values with comma
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
