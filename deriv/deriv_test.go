// Copyright 2026 The Tangent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package deriv_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/tangent-ml/tangent/deriv"
	"github.com/tangent-ml/tangent/dual"
)

// TestOperatorSurface runs each public operator once end to end.
func TestOperatorSurface(t *testing.T) {
	square := func(x dual.Number) dual.Number { return x.Mul(x) }
	field := func(x []dual.Number) dual.Number { return x[0].Mul(x[1]) }
	vmap := func(x []dual.Number) []dual.Number {
		return []dual.Number{x[0].Add(x[1]), x[0].Mul(x[1])}
	}

	if d := deriv.Diff(square)(3); d != 6 {
		t.Errorf("Diff(x²)(3) = %v, want 6", d)
	}
	if v, d := deriv.DiffWithValue(square)(3); v != 9 || d != 6 {
		t.Errorf("DiffWithValue(x²)(3) = (%v, %v), want (9, 6)", v, d)
	}

	g := deriv.Grad(field)([]float64{2, 3})
	if g[0] != 3 || g[1] != 2 {
		t.Errorf("Grad(xy)(2,3) = %v, want [3 2]", g)
	}

	j := deriv.Jacobian(vmap)([]float64{2, 3})
	jt := deriv.JacobianT(vmap)([]float64{2, 3})
	for i := range j {
		for k := range j[i] {
			if j[i][k] != jt[k][i] {
				t.Errorf("JacobianT[%d][%d] = %v, want %v", k, i, jt[k][i], j[i][k])
			}
		}
	}

	gv := deriv.GradVec(field)(mat.NewVecDense(2, []float64{2, 3}))
	if gv.AtVec(0) != 3 || gv.AtVec(1) != 2 {
		t.Errorf("GradVec(xy)(2,3) = %v, want [3 2]", mat.Formatted(gv))
	}

	jm := deriv.JacobianMat(vmap)(mat.NewVecDense(2, []float64{2, 3}))
	jtm := deriv.JacobianTMat(vmap)(mat.NewVecDense(2, []float64{2, 3}))
	if !mat.Equal(jm.T(), jtm) {
		t.Errorf("JacobianTMat != JacobianMat.T():\n%v\nvs\n%v",
			mat.Formatted(jtm), mat.Formatted(jm.T()))
	}
}

// TestReadmeExample keeps the doc example honest: d/dx sin(x)cos(x) = cos(2x).
func TestReadmeExample(t *testing.T) {
	f := func(x dual.Number) dual.Number { return x.Sin().Mul(x.Cos()) }
	df := deriv.Diff(f)

	for _, x := range []float64{0, 0.3, 1, 2} {
		want := math.Cos(2 * x)
		if got := df(x); math.Abs(got-want) > 1e-12 {
			t.Errorf("df(%v) = %v, want %v", x, got, want)
		}
	}
}
