// Package deriv implements the differentiation drivers: they seed a user
// function's inputs as active duals, evaluate the function once, and harvest
// the primal outputs together with the gradient or Jacobian.
//
// Every driver is a pure single-pass evaluation with no state between calls,
// so the returned closures are safe for concurrent use on independent inputs.
package deriv

import (
	"github.com/tangent-ml/tangent/internal/dual"
	"github.com/tangent-ml/tangent/internal/parallel"
)

// Scalar is a univariate function expressed over dual numbers.
type Scalar func(dual.Number) dual.Number

// Field is a multivariate scalar-valued function expressed over dual numbers.
type Field func([]dual.Number) dual.Number

// Map is a multivariate vector-valued function expressed over dual numbers.
type Map func([]dual.Number) []dual.Number

// DiffWithValue returns a function computing f's value and derivative at x.
// The input is seeded as the single active variable of a dimension-1 call.
func DiffWithValue(f Scalar) func(x float64) (float64, float64) {
	return func(x float64) (float64, float64) {
		return f(dual.Active(x, 1, 0)).UnpackScalar()
	}
}

// Diff returns a function computing f's derivative at x.
func Diff(f Scalar) func(x float64) float64 {
	df := DiffWithValue(f)
	return func(x float64) float64 {
		_, d := df(x)
		return d
	}
}

// GradWithValue returns a function computing f's value and gradient at x.
// Each coordinate of x is seeded as an active variable, so a single
// evaluation of f yields every partial derivative at once.
func GradWithValue(f Field) func(x []float64) (float64, []float64) {
	return func(x []float64) (float64, []float64) {
		y := f(dual.Seed(x))
		return y.Unpack()
	}
}

// Grad returns a function computing f's gradient at x.
func Grad(f Field) func(x []float64) []float64 {
	gf := GradWithValue(f)
	return func(x []float64) []float64 {
		_, g := gf(x)
		return g
	}
}

// JacobianWithValue returns a function computing f's output values and
// Jacobian at x. Row i of the Jacobian is the gradient of output i; with n
// inputs the whole matrix costs one evaluation of f over dimension-n duals,
// the forward-mode cost model (linear in input count, amortized over outputs).
func JacobianWithValue(f Map) func(x []float64) ([]float64, [][]float64) {
	return func(x []float64) ([]float64, [][]float64) {
		ys := f(dual.Seed(x))
		vals := make([]float64, len(ys))
		jac := make([][]float64, len(ys))
		// The evaluation itself is one pass; only the per-output harvest can
		// run concurrently. Rows are disjoint and duals immutable.
		parallel.For(len(ys), func(i int) {
			vals[i], jac[i] = ys[i].Unpack()
		}, parallel.DefaultConfig())
		return vals, jac
	}
}

// Jacobian returns a function computing f's Jacobian at x.
func Jacobian(f Map) func(x []float64) [][]float64 {
	jf := JacobianWithValue(f)
	return func(x []float64) [][]float64 {
		_, j := jf(x)
		return j
	}
}

// JacobianTWithValue is JacobianWithValue with the Jacobian transposed: rows
// indexed by input, columns by output. It re-lays-out the same evaluation,
// so the entries are bit-identical to the untransposed Jacobian's.
func JacobianTWithValue(f Map) func(x []float64) ([]float64, [][]float64) {
	jf := JacobianWithValue(f)
	return func(x []float64) ([]float64, [][]float64) {
		vals, jac := jf(x)
		return vals, transpose(jac, len(x))
	}
}

// JacobianT returns a function computing f's transposed Jacobian at x.
func JacobianT(f Map) func(x []float64) [][]float64 {
	jf := JacobianTWithValue(f)
	return func(x []float64) [][]float64 {
		_, jt := jf(x)
		return jt
	}
}

// transpose re-lays-out an m×n row-major matrix as n×m. cols is needed
// explicitly because m may be zero.
func transpose(rows [][]float64, cols int) [][]float64 {
	out := make([][]float64, cols)
	for j := range out {
		out[j] = make([]float64, len(rows))
		for i := range rows {
			out[j][i] = rows[i][j]
		}
	}
	return out
}
