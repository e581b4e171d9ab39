// Package dual implements the forward-mode dual number: a primal float64
// paired with the gradient of that value with respect to the seeded inputs.
//
// Every arithmetic operation propagates both channels at once, so evaluating
// a function written over Number yields its value and its exact gradient in a
// single pass. Numbers are immutable: operations allocate a fresh gradient
// vector and never touch an operand's.
package dual

import "gonum.org/v1/gonum/mat"

// Number is an immutable dual-gradient number.
//
// The gradient vector has a fixed length m, the number of independent
// variables seeded for the enclosing differentiation call. All Numbers that
// meet in an arithmetic operation must share the same m; combining mismatched
// dimensions panics with mat.ErrShape from the vector layer.
type Number struct {
	val  float64
	grad *mat.VecDense
}

// Const returns a constant dual: value v with a zero gradient of length dim.
// A constant does not depend on any seeded input.
//
// Const panics with mat.ErrZeroLength if dim is zero; a differentiation call
// needs at least one independent variable.
func Const(v float64, dim int) Number {
	return Number{val: v, grad: mat.NewVecDense(dim, nil)}
}

// FromGradient returns a dual with value v and an explicit gradient.
// The slice is copied; the caller keeps ownership of grad.
func FromGradient(v float64, grad []float64) Number {
	g := make([]float64, len(grad))
	copy(g, grad)
	return Number{val: v, grad: mat.NewVecDense(len(g), g)}
}

// Active returns a dual marking v as the index-th of dim independent
// variables: its gradient is the unit vector with a 1 at index.
//
// Active panics if index is outside [0, dim).
func Active(v float64, dim, index int) Number {
	g := make([]float64, dim)
	g[index] = 1
	return Number{val: v, grad: mat.NewVecDense(dim, g)}
}

// Seed returns one active dual per element of xs, each the independent
// variable for its own position. This is how multivariate calls are seeded:
// the gradient dimension of every returned Number is len(xs).
//
// Seed panics with mat.ErrZeroLength for an empty xs, matching the vector
// layer's rejection of zero-length gradients.
func Seed(xs []float64) []Number {
	if len(xs) == 0 {
		panic(mat.ErrZeroLength)
	}
	ds := make([]Number, len(xs))
	for i, x := range xs {
		ds[i] = Active(x, len(xs), i)
	}
	return ds
}

// Zero returns the additive identity at dimension dim: (0, zero gradient).
func Zero(dim int) Number {
	return Const(0, dim)
}

// One returns the multiplicative identity at dimension dim: (1, zero gradient).
func One(dim int) Number {
	return Const(1, dim)
}

// Value returns the primal value.
func (x Number) Value() float64 {
	return x.val
}

// Deriv returns the first gradient component. For a univariate call seeded
// with Active(x, 1, 0) this is the derivative.
func (x Number) Deriv() float64 {
	return x.grad.AtVec(0)
}

// Gradient returns a copy of the gradient as a plain slice.
func (x Number) Gradient() []float64 {
	g := make([]float64, x.grad.Len())
	for i := range g {
		g[i] = x.grad.AtVec(i)
	}
	return g
}

// GradVec returns a copy of the gradient as a gonum vector.
func (x Number) GradVec() *mat.VecDense {
	return mat.VecDenseCopyOf(x.grad)
}

// Unpack returns the primal value and a copy of the gradient.
func (x Number) Unpack() (float64, []float64) {
	return x.val, x.Gradient()
}

// UnpackScalar returns the primal value and the first gradient component,
// the (value, derivative) pair of a univariate call.
func (x Number) UnpackScalar() (float64, float64) {
	return x.val, x.Deriv()
}

// Dim returns the gradient dimension m.
func (x Number) Dim() int {
	return x.grad.Len()
}
