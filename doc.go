// Package densolve is a small, deterministic solver for dense linear
// systems Ax = b of a fixed dimension (10×10), built around Gaussian
// elimination with partial pivoting and back substitution.
//
// 🚀 What is densolve?
//
//	A focused, cache-friendly library that trades generality for
//	predictable performance on compile-time-sized systems:
//		• Fixed-dimension value types: Matrix (10×10) and Vector (10)
//		• One kernel: in-place elimination + back substitution
//		• Partial pivoting with a documented singularity guard
//		• Explicit sentinel errors, no panics on user input
//
// ✨ Why choose densolve?
//
//   - Deterministic – fixed loop orders, no global state, no randomness
//   - Allocation-free core – the kernel mutates caller-owned buffers only
//   - Pure Go – no cgo, no assembly, no hidden deps in the kernel
//   - Honest failure – a singular system is reported, never "solved"
//
// Everything lives under two subpackages plus a demo command:
//
//	gauss/        — Matrix/Vector types, Solve kernel, vector formatter
//	logger/       — shared zerolog logger for commands and demos
//	cmd/densolve/ — demo driver: example system, timing, failure showcase
//
// Quick sketch of the contract:
//
//	err := gauss.Solve(&a, &b) // a → row-echelon form, b → solution x
//	errors.Is(err, gauss.ErrSingularMatrix) // true when no unique solution
//
// Dive into gauss/doc.go for the algorithm outline, error policy, and the
// known limitation of the absolute pivot tolerance.
//
//	go get github.com/katalvlaran/densolve
package densolve
