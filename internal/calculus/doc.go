// Package calculus implements small numeric approximation routines bound to a
// caller-supplied scalar function.
//
// A FunctionContext pairs a Func with a fixed step size (epsilon) and exposes:
//
//   - Derivative: forward-difference estimate (f(x+h) - f(x)) / h
//   - Integral: Riemann-style sum over a fixed number of sub-intervals
//   - Points: lazy, restartable sequence of (x, f(x)) samples
//
// Sin and Cos are fixed-order Taylor expansions around 0 and need no context.
//
// Invariants:
//   - epsilon > 0, enforced by New
//   - step > 0 for Points and samples >= 1 for Integral, checked before any
//     evaluation of the function
//   - NaN and Inf produced by the caller's function flow through unchanged
//
// Nothing in this package performs I/O or logging; printing results belongs
// to the caller (see internal/cli).
package calculus
