// Copyright 2026 The Tangent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package deriv provides the differentiation operators of the Tangent
// forward-mode AD library: Diff, Grad, Jacobian, JacobianT and their
// value-returning variants.
//
// # Overview
//
// Each operator takes a function written generically over dual.Number and
// returns an ordinary numeric function. Calling that function seeds the
// inputs as active duals, evaluates the user function once, and harvests the
// derivative information the dual arithmetic accumulated along the way:
//
//	f := func(x dual.Number) dual.Number { return x.Sin().Mul(x.Cos()) }
//	df := deriv.Diff(f)
//	df(0) // 1, exactly: d/dx sin(x)cos(x) = cos(2x)
//
// Multivariate:
//
//	f := func(x []dual.Number) dual.Number { return x[0].Mul(x[0]).Mul(x[1]) }
//	deriv.Grad(f)([]float64{2, 3}) // [12, 4]
//
// Vector-valued, with the full Jacobian from one evaluation:
//
//	f := func(x []dual.Number) []dual.Number {
//	    return []dual.Number{x[0].Add(x[1]), x[0].Mul(x[1])}
//	}
//	vals, jac := deriv.JacobianWithValue(f)([]float64{2, 3})
//	// vals = [5, 6], jac = [[1, 1], [3, 2]]
//
// # Cost Model
//
// This is forward-mode AD: one evaluation over dimension-n duals yields all
// partial derivatives with respect to the n inputs, for every output at once.
// Cost grows linearly with the input count and is amortized over outputs,
// the opposite trade-off from reverse mode.
//
// # Correctness Contract
//
// Derivatives are exact (to floating point) provided the user function is
// expressed entirely through the dual operator set, so that every elementary
// operation contributes its chain-rule term. Extracting a primal mid-function
// and re-wrapping it as a constant silently drops that path's derivative.
//
// # Container Variants
//
// GradVec, JacobianMat, and JacobianTMat are the same operators over gonum
// containers: inputs as mat.Vector, results as *mat.VecDense and *mat.Dense.
package deriv
