package dual

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// chain applies the univariate chain rule: the result has primal val and
// gradient d * dx, where d is the derivative of the outer function at x.
func (x Number) chain(val, d float64) Number {
	g := mat.NewVecDense(x.grad.Len(), nil)
	g.ScaleVec(d, x.grad)
	return Number{val: val, grad: g}
}

// Neg returns -x.
func (x Number) Neg() Number {
	return x.chain(-x.val, -1)
}

// Sqrt returns √x.
//
// d(√x) = dx / (2√x)
func (x Number) Sqrt() Number {
	s := math.Sqrt(x.val)
	return x.chain(s, 1/(2*s))
}

// Exp returns e**x.
//
// d(e^x) = e^x * dx
func (x Number) Exp() Number {
	e := math.Exp(x.val)
	return x.chain(e, e)
}

// Log returns the natural logarithm of x.
//
// d(ln x) = dx / x
func (x Number) Log() Number {
	return x.chain(math.Log(x.val), 1/x.val)
}

// Sin returns sin(x).
func (x Number) Sin() Number {
	return x.chain(math.Sin(x.val), math.Cos(x.val))
}

// Cos returns cos(x).
func (x Number) Cos() Number {
	return x.chain(math.Cos(x.val), -math.Sin(x.val))
}

// Tan returns tan(x).
//
// d(tan x) = dx / cos²x
func (x Number) Tan() Number {
	c := math.Cos(x.val)
	return x.chain(math.Tan(x.val), 1/(c*c))
}

// Sinh returns sinh(x).
func (x Number) Sinh() Number {
	return x.chain(math.Sinh(x.val), math.Cosh(x.val))
}

// Cosh returns cosh(x).
func (x Number) Cosh() Number {
	return x.chain(math.Cosh(x.val), math.Sinh(x.val))
}

// Tanh returns tanh(x).
//
// d(tanh x) = dx / cosh²x
func (x Number) Tanh() Number {
	c := math.Cosh(x.val)
	return x.chain(math.Tanh(x.val), 1/(c*c))
}

// Asin returns asin(x).
//
// d(asin x) = dx / √(1-x²)
func (x Number) Asin() Number {
	return x.chain(math.Asin(x.val), 1/math.Sqrt(1-x.val*x.val))
}

// Acos returns acos(x).
//
// d(acos x) = -dx / √(1-x²)
func (x Number) Acos() Number {
	return x.chain(math.Acos(x.val), -1/math.Sqrt(1-x.val*x.val))
}

// Atan returns atan(x).
//
// d(atan x) = dx / (1+x²)
func (x Number) Atan() Number {
	return x.chain(math.Atan(x.val), 1/(1+x.val*x.val))
}
