// Copyright 2026 The Tangent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import (
	"github.com/tangent-ml/tangent/internal/dual"
)

// Number is an immutable dual-gradient number: a primal value plus the
// gradient of that value with respect to the seeded inputs.
//
// Arithmetic is exposed as methods (Add, Mul, Sin, ...) mirroring the
// chain rule; see the package documentation for the full operator set.
type Number = dual.Number

// Const returns a constant dual: value v with a zero gradient of length dim.
//
// Example:
//
//	pi := dual.Const(math.Pi, 2) // constant in a two-variable call
func Const(v float64, dim int) Number {
	return dual.Const(v, dim)
}

// FromGradient returns a dual with value v and an explicit gradient.
func FromGradient(v float64, grad []float64) Number {
	return dual.FromGradient(v, grad)
}

// Active returns a dual marking v as the index-th of dim independent
// variables.
//
// Example:
//
//	x := dual.Active(2, 2, 0) // x in f(x, y)
//	y := dual.Active(3, 2, 1) // y in f(x, y)
func Active(v float64, dim, index int) Number {
	return dual.Active(v, dim, index)
}

// Seed returns one active dual per element of xs, seeding a multivariate
// call with gradient dimension len(xs).
func Seed(xs []float64) []Number {
	return dual.Seed(xs)
}

// Zero returns the additive identity at dimension dim.
func Zero(dim int) Number {
	return dual.Zero(dim)
}

// One returns the multiplicative identity at dimension dim.
func One(dim int) Number {
	return dual.One(dim)
}

// ScalarAdd returns c + x.
func ScalarAdd(c float64, x Number) Number {
	return dual.ScalarAdd(c, x)
}

// ScalarSub returns c - x.
func ScalarSub(c float64, x Number) Number {
	return dual.ScalarSub(c, x)
}

// ScalarMul returns c * x.
func ScalarMul(c float64, x Number) Number {
	return dual.ScalarMul(c, x)
}

// ScalarDiv returns c / x.
func ScalarDiv(c float64, x Number) Number {
	return dual.ScalarDiv(c, x)
}

// ScalarPow returns c ** x.
func ScalarPow(c float64, x Number) Number {
	return dual.ScalarPow(c, x)
}
