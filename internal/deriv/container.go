package deriv

import "gonum.org/v1/gonum/mat"

// Container adapters: the array drivers re-expressed over gonum vectors and
// matrices. Inputs are accepted as the mat.Vector interface (so column views
// work too); outputs are concrete *mat.VecDense / *mat.Dense. The numeric
// contract is identical to the array drivers: this layer only converts.

// GradVecWithValue is GradWithValue over gonum containers.
func GradVecWithValue(f Field) func(x mat.Vector) (float64, *mat.VecDense) {
	gf := GradWithValue(f)
	return func(x mat.Vector) (float64, *mat.VecDense) {
		v, g := gf(vecToSlice(x))
		return v, mat.NewVecDense(len(g), g)
	}
}

// GradVec is Grad over gonum containers.
func GradVec(f Field) func(x mat.Vector) *mat.VecDense {
	gf := GradVecWithValue(f)
	return func(x mat.Vector) *mat.VecDense {
		_, g := gf(x)
		return g
	}
}

// JacobianMatWithValue is JacobianWithValue over gonum containers.
func JacobianMatWithValue(f Map) func(x mat.Vector) (*mat.VecDense, *mat.Dense) {
	jf := JacobianWithValue(f)
	return func(x mat.Vector) (*mat.VecDense, *mat.Dense) {
		vals, jac := jf(vecToSlice(x))
		return mat.NewVecDense(len(vals), vals), rowsToDense(jac, x.Len())
	}
}

// JacobianMat is Jacobian over gonum containers.
func JacobianMat(f Map) func(x mat.Vector) *mat.Dense {
	jf := JacobianMatWithValue(f)
	return func(x mat.Vector) *mat.Dense {
		_, j := jf(x)
		return j
	}
}

// JacobianTMatWithValue is JacobianTWithValue over gonum containers.
func JacobianTMatWithValue(f Map) func(x mat.Vector) (*mat.VecDense, *mat.Dense) {
	jf := JacobianTWithValue(f)
	return func(x mat.Vector) (*mat.VecDense, *mat.Dense) {
		vals, jt := jf(vecToSlice(x))
		return mat.NewVecDense(len(vals), vals), rowsToDense(jt, len(vals))
	}
}

// JacobianTMat is JacobianT over gonum containers.
func JacobianTMat(f Map) func(x mat.Vector) *mat.Dense {
	jf := JacobianTMatWithValue(f)
	return func(x mat.Vector) *mat.Dense {
		_, jt := jf(x)
		return jt
	}
}

// vecToSlice copies a gonum vector into a plain slice.
func vecToSlice(v mat.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}

// rowsToDense builds a dense matrix from an ordered sequence of row slices.
func rowsToDense(rows [][]float64, cols int) *mat.Dense {
	m := mat.NewDense(len(rows), cols, nil)
	for i, row := range rows {
		m.SetRow(i, row)
	}
	return m
}
