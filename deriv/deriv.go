// Copyright 2026 The Tangent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package deriv

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tangent-ml/tangent/internal/deriv"
)

// Function kinds accepted by the operators.

// Scalar is a univariate function expressed over dual numbers.
type Scalar = deriv.Scalar

// Field is a multivariate scalar-valued function expressed over dual numbers.
type Field = deriv.Field

// Map is a multivariate vector-valued function expressed over dual numbers.
type Map = deriv.Map

// DiffWithValue returns a function computing f's value and derivative at x.
func DiffWithValue(f Scalar) func(x float64) (float64, float64) {
	return deriv.DiffWithValue(f)
}

// Diff returns a function computing f's derivative at x.
func Diff(f Scalar) func(x float64) float64 {
	return deriv.Diff(f)
}

// GradWithValue returns a function computing f's value and gradient at x.
func GradWithValue(f Field) func(x []float64) (float64, []float64) {
	return deriv.GradWithValue(f)
}

// Grad returns a function computing f's gradient at x.
func Grad(f Field) func(x []float64) []float64 {
	return deriv.Grad(f)
}

// JacobianWithValue returns a function computing f's output values and
// Jacobian at x. Row i holds the gradient of output i.
func JacobianWithValue(f Map) func(x []float64) ([]float64, [][]float64) {
	return deriv.JacobianWithValue(f)
}

// Jacobian returns a function computing f's Jacobian at x.
func Jacobian(f Map) func(x []float64) [][]float64 {
	return deriv.Jacobian(f)
}

// JacobianTWithValue is JacobianWithValue with the Jacobian transposed: rows
// indexed by input, columns by output. Same evaluation, re-laid-out.
func JacobianTWithValue(f Map) func(x []float64) ([]float64, [][]float64) {
	return deriv.JacobianTWithValue(f)
}

// JacobianT returns a function computing f's transposed Jacobian at x.
func JacobianT(f Map) func(x []float64) [][]float64 {
	return deriv.JacobianT(f)
}

// Container variants over gonum vectors and matrices.

// GradVecWithValue is GradWithValue over gonum containers.
func GradVecWithValue(f Field) func(x mat.Vector) (float64, *mat.VecDense) {
	return deriv.GradVecWithValue(f)
}

// GradVec is Grad over gonum containers.
func GradVec(f Field) func(x mat.Vector) *mat.VecDense {
	return deriv.GradVec(f)
}

// JacobianMatWithValue is JacobianWithValue over gonum containers.
func JacobianMatWithValue(f Map) func(x mat.Vector) (*mat.VecDense, *mat.Dense) {
	return deriv.JacobianMatWithValue(f)
}

// JacobianMat is Jacobian over gonum containers.
func JacobianMat(f Map) func(x mat.Vector) *mat.Dense {
	return deriv.JacobianMat(f)
}

// JacobianTMatWithValue is JacobianTWithValue over gonum containers.
func JacobianTMatWithValue(f Map) func(x mat.Vector) (*mat.VecDense, *mat.Dense) {
	return deriv.JacobianTMatWithValue(f)
}

// JacobianTMat is JacobianT over gonum containers.
func JacobianTMat(f Map) func(x mat.Vector) *mat.Dense {
	return deriv.JacobianTMat(f)
}
