package dual

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Binary operations over two duals. Each allocates a fresh gradient vector;
// the dimension check is the vector layer's own (mat.ErrShape on mismatch).

// Add returns x + y.
//
// d(x+y) = dx + dy
func (x Number) Add(y Number) Number {
	g := mat.NewVecDense(x.grad.Len(), nil)
	g.AddVec(x.grad, y.grad)
	return Number{val: x.val + y.val, grad: g}
}

// Sub returns x - y.
//
// d(x-y) = dx - dy
func (x Number) Sub(y Number) Number {
	g := mat.NewVecDense(x.grad.Len(), nil)
	g.SubVec(x.grad, y.grad)
	return Number{val: x.val - y.val, grad: g}
}

// Mul returns x * y.
//
// Product rule: d(x*y) = y*dx + x*dy
func (x Number) Mul(y Number) Number {
	g := mat.NewVecDense(x.grad.Len(), nil)
	g.ScaleVec(y.val, x.grad)
	g.AddScaledVec(g, x.val, y.grad)
	return Number{val: x.val * y.val, grad: g}
}

// Div returns x / y.
//
// Quotient rule: d(x/y) = (y*dx - x*dy) / y²
func (x Number) Div(y Number) Number {
	g := mat.NewVecDense(x.grad.Len(), nil)
	g.ScaleVec(y.val, x.grad)
	g.AddScaledVec(g, -x.val, y.grad)
	g.ScaleVec(1/(y.val*y.val), g)
	return Number{val: x.val / y.val, grad: g}
}

// Pow returns x ** y for dual exponents.
//
// d(x^y) = x^y * (y*dx/x + ln(x)*dy)
//
// Out-of-domain bases (x ≤ 0) follow IEEE-754: the ln term goes to NaN/Inf
// and propagates through the gradient.
func (x Number) Pow(y Number) Number {
	p := math.Pow(x.val, y.val)
	g := mat.NewVecDense(x.grad.Len(), nil)
	g.ScaleVec(p*y.val/x.val, x.grad)
	g.AddScaledVec(g, p*math.Log(x.val), y.grad)
	return Number{val: p, grad: g}
}

// Scalar operations. A bare float64 is a constant with an implicit zero
// gradient; the forms below compute the same result directly instead of
// promoting the scalar to Const first.

// AddScalar returns x + c. The gradient is unchanged (copied, not shared).
func (x Number) AddScalar(c float64) Number {
	return Number{val: x.val + c, grad: mat.VecDenseCopyOf(x.grad)}
}

// SubScalar returns x - c.
func (x Number) SubScalar(c float64) Number {
	return Number{val: x.val - c, grad: mat.VecDenseCopyOf(x.grad)}
}

// MulScalar returns x * c.
//
// d(c*x) = c*dx
func (x Number) MulScalar(c float64) Number {
	g := mat.NewVecDense(x.grad.Len(), nil)
	g.ScaleVec(c, x.grad)
	return Number{val: x.val * c, grad: g}
}

// DivScalar returns x / c.
func (x Number) DivScalar(c float64) Number {
	g := mat.NewVecDense(x.grad.Len(), nil)
	g.ScaleVec(1/c, x.grad)
	return Number{val: x.val / c, grad: g}
}

// PowScalar returns x ** c for a constant exponent.
//
// Power rule: d(x^c) = c*x^(c-1)*dx
func (x Number) PowScalar(c float64) Number {
	return x.chain(math.Pow(x.val, c), c*math.Pow(x.val, c-1))
}

// Scalar-on-the-left forms. Addition and multiplication commute, so the
// functions below only exist to keep call sites symmetric; subtraction,
// division, and exponentiation genuinely differ.

// ScalarAdd returns c + x.
func ScalarAdd(c float64, x Number) Number {
	return x.AddScalar(c)
}

// ScalarSub returns c - x.
//
// d(c-x) = -dx
func ScalarSub(c float64, x Number) Number {
	return x.chain(c-x.val, -1)
}

// ScalarMul returns c * x.
func ScalarMul(c float64, x Number) Number {
	return x.MulScalar(c)
}

// ScalarDiv returns c / x.
//
// d(c/x) = -c*dx/x²
func ScalarDiv(c float64, x Number) Number {
	return x.chain(c/x.val, -c/(x.val*x.val))
}

// ScalarPow returns c ** x for a constant base.
//
// d(c^x) = c^x * ln(c) * dx
func ScalarPow(c float64, x Number) Number {
	p := math.Pow(c, x.val)
	return x.chain(p, p*math.Log(c))
}
