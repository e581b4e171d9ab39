// Copyright 2026 The Tangent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides the dual-gradient number type for forward-mode
// automatic differentiation.
//
// # Overview
//
// A dual.Number pairs a primal float64 with the gradient of that value with
// respect to the independent variables seeded for the enclosing
// differentiation call. Every arithmetic and transcendental operation applies
// the chain rule to both channels at once, so a function written over Number
// computes its own exact derivatives as a side effect of ordinary evaluation,
// with no symbolic manipulation and no finite differences.
//
// # Basic Usage
//
//	import "github.com/tangent-ml/tangent/dual"
//
//	func main() {
//	    // Seed x = 2 as the only independent variable.
//	    x := dual.Active(2, 1, 0)
//
//	    // f(x) = x² + 3x
//	    y := x.Mul(x).Add(x.MulScalar(3))
//
//	    fmt.Println(y.Value()) // 10
//	    fmt.Println(y.Deriv()) // 7  (= 2x + 3 at x = 2)
//	}
//
// # Seeding
//
// Constructors fix the gradient dimension m, the number of independent
// variables of one differentiation call:
//
//	c := dual.Const(3.14, m)      // constant: zero gradient
//	x := dual.Active(2.0, m, i)   // i-th independent variable: unit gradient
//	xs := dual.Seed([]float64{2, 3})  // one active dual per coordinate
//
// All Numbers meeting in an operation must share the same m; mixing
// dimensions panics with mat.ErrShape from the underlying vector layer.
//
// # Numeric Semantics
//
// Out-of-domain inputs (division by zero, Log of a non-positive value, Sqrt
// of a negative) follow IEEE-754: Inf or NaN appears in the primal and
// propagates through the gradient. No operation returns an error.
//
// Numbers are immutable values. Operations allocate fresh gradient vectors
// and never mutate an operand, so Numbers may be shared freely across
// goroutines.
package dual
