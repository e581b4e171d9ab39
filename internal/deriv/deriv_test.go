package deriv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangent-ml/tangent/internal/dual"
)

// centralDiff estimates f'(x) with a central finite difference.
func centralDiff(f func(float64) float64, x float64) float64 {
	const h = 1e-6
	return (f(x+h) - f(x-h)) / (2 * h)
}

// f(x) = sin(x)cos(x) at 0: value 0, derivative 1.
func TestDiffProductRule(t *testing.T) {
	f := func(x dual.Number) dual.Number { return x.Sin().Mul(x.Cos()) }

	v, d := DiffWithValue(f)(0)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 1.0, d)
}

// f(x) = exp(sin(x)) at 0: value 1, derivative 1.
func TestDiffComposition(t *testing.T) {
	f := func(x dual.Number) dual.Number { return x.Sin().Exp() }

	v, d := DiffWithValue(f)(0)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 1.0, d)
}

// Derivatives agree with central differences across a function/point grid.
func TestDiffAgainstFiniteDifferences(t *testing.T) {
	tests := []struct {
		name   string
		dualFn Scalar
		realFn func(float64) float64
		points []float64
	}{
		{
			"polynomial",
			func(x dual.Number) dual.Number {
				// x³ - 2x² + x
				return x.PowScalar(3).Sub(x.Mul(x).MulScalar(2)).Add(x)
			},
			func(x float64) float64 { return x*x*x - 2*x*x + x },
			[]float64{-1, 0.5, 2, 3},
		},
		{
			"gaussian",
			func(x dual.Number) dual.Number { return x.Mul(x).Neg().Exp() },
			func(x float64) float64 { return math.Exp(-x * x) },
			[]float64{-1, 0, 0.5, 2},
		},
		{
			"logistic",
			func(x dual.Number) dual.Number {
				return dual.ScalarDiv(1, x.Neg().Exp().AddScalar(1))
			},
			func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
			[]float64{-2, 0, 1, 3},
		},
		{
			"sinc-ish",
			func(x dual.Number) dual.Number { return x.Sin().Div(x) },
			func(x float64) float64 { return math.Sin(x) / x },
			[]float64{-2, 0.5, 1, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			df := Diff(tt.dualFn)
			for _, p := range tt.points {
				assert.InDelta(t, centralDiff(tt.realFn, p), df(p), 1e-5,
					"derivative at x=%v", p)
			}
		})
	}
}

// Differentiation is linear: (a·f + b·g)' = a·f' + b·g'.
func TestDiffLinearity(t *testing.T) {
	const a, b = 2.5, -1.25
	f := func(x dual.Number) dual.Number { return x.Sin() }
	g := func(x dual.Number) dual.Number { return x.Mul(x) }
	combined := func(x dual.Number) dual.Number {
		return f(x).MulScalar(a).Add(g(x).MulScalar(b))
	}

	for _, p := range []float64{-1, 0, 0.5, 2} {
		want := a*Diff(f)(p) + b*Diff(g)(p)
		assert.InDelta(t, want, Diff(combined)(p), 1e-12, "at x=%v", p)
	}
}

// f(x, y) = x²y at (2, 3): value 12, gradient [12, 4].
func TestGrad(t *testing.T) {
	f := func(x []dual.Number) dual.Number { return x[0].Mul(x[0]).Mul(x[1]) }

	v, g := GradWithValue(f)([]float64{2, 3})
	assert.Equal(t, 12.0, v)
	assert.Equal(t, []float64{12, 4}, g)

	assert.Equal(t, []float64{12, 4}, Grad(f)([]float64{2, 3}))
}

// Every partial agrees with the finite-difference estimate.
func TestGradAgainstFiniteDifferences(t *testing.T) {
	// Rosenbrock: (1-x)² + 100(y-x²)²
	f := func(x []dual.Number) dual.Number {
		a := dual.ScalarSub(1, x[0])
		b := x[1].Sub(x[0].Mul(x[0]))
		return a.Mul(a).Add(b.Mul(b).MulScalar(100))
	}
	ref := func(x []float64) float64 {
		a := 1 - x[0]
		b := x[1] - x[0]*x[0]
		return a*a + 100*b*b
	}

	at := []float64{-0.5, 1.5}
	g := Grad(f)(at)
	require.Len(t, g, 2)

	const h = 1e-6
	for i := range at {
		hi := append([]float64(nil), at...)
		lo := append([]float64(nil), at...)
		hi[i] += h
		lo[i] -= h
		fd := (ref(hi) - ref(lo)) / (2 * h)
		assert.InDelta(t, fd, g[i], 1e-3, "partial %d", i)
	}
}

// f(x, y) = (x+y, xy) at (2, 3): values [5, 6], Jacobian [[1 1] [3 2]].
func TestJacobian(t *testing.T) {
	f := func(x []dual.Number) []dual.Number {
		return []dual.Number{x[0].Add(x[1]), x[0].Mul(x[1])}
	}

	vals, jac := JacobianWithValue(f)([]float64{2, 3})
	assert.Equal(t, []float64{5, 6}, vals)
	assert.Equal(t, [][]float64{{1, 1}, {3, 2}}, jac)

	assert.Equal(t, [][]float64{{1, 1}, {3, 2}}, Jacobian(f)([]float64{2, 3}))
}

// JacobianT is a pure re-layout: bit-identical to transposing Jacobian.
func TestJacobianTransposeExact(t *testing.T) {
	f := func(x []dual.Number) []dual.Number {
		return []dual.Number{
			x[0].Mul(x[1].Sin()),
			x[1].Mul(x[0].Cos()),
			x[0].PowScalar(3).Mul(x[1].PowScalar(-0.5)),
		}
	}
	at := []float64{1.2, 3.4}

	jac := Jacobian(f)(at)
	jt := JacobianT(f)(at)

	require.Len(t, jt, 2)
	for i := range jac {
		for j := range jac[i] {
			assert.Equal(t, jac[i][j], jt[j][i], "entry (%d,%d)", i, j)
		}
	}

	vals, jtv := JacobianTWithValue(f)(at)
	require.Len(t, vals, 3)
	assert.Equal(t, jt, jtv)
}
