// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// norms and reductions ////////////////////////////////////////////////////

// MaxAbs returns the largest absolute element value
func (o *Matrix) MaxAbs() (res float64) {
	if len(o.Data) < 1 {
		chk.Panic("MaxAbs needs a matrix with at least one element")
	}
	for _, v := range o.Data {
		if math.Abs(v) > res {
			res = math.Abs(v)
		}
	}
	return
}

// NormOne returns the L1 norm: the maximum absolute column sum
func (o *Matrix) NormOne() (res float64) {
	if len(o.Data) < 1 {
		chk.Panic("NormOne needs a matrix with at least one element")
	}
	for j := 0; j < o.N; j++ {
		sum := 0.0
		for i := 0; i < o.M; i++ {
			sum += math.Abs(o.Data[i*o.N+j])
		}
		if sum > res {
			res = sum
		}
	}
	return
}

// NormInf returns the L∞ norm: the maximum absolute row sum
func (o *Matrix) NormInf() (res float64) {
	if len(o.Data) < 1 {
		chk.Panic("NormInf needs a matrix with at least one element")
	}
	for i := 0; i < o.M; i++ {
		sum := 0.0
		for j := 0; j < o.N; j++ {
			sum += math.Abs(o.Data[i*o.N+j])
		}
		if sum > res {
			res = sum
		}
	}
	return
}

// NormFrob returns the Frobenius norm: √(ΣΣ aij²)
func (o *Matrix) NormFrob() float64 {
	if len(o.Data) < 1 {
		chk.Panic("NormFrob needs a matrix with at least one element")
	}
	return math.Sqrt(DotSelf(len(o.Data), o.Data, 1))
}

// Tr returns the trace of a square matrix
func (o *Matrix) Tr() (res float64) {
	if len(o.Data) < 1 {
		chk.Panic("Tr needs a matrix with at least one element")
	}
	if o.M != o.N {
		chk.Panic("Tr needs a square matrix; got %d×%d", o.M, o.N)
	}
	for i := 0; i < o.M; i++ {
		res += o.Data[i*o.N+i]
	}
	return
}

// ColSums returns the column sums as a 1×n row
func (o *Matrix) ColSums() (res *Matrix) {
	res = NewMatrix(1, o.N)
	for j := 0; j < o.N; j++ {
		for i := 0; i < o.M; i++ {
			res.Data[j] += o.Data[i*o.N+j]
		}
	}
	return
}

// RowSums returns the row sums as an m×1 column
func (o *Matrix) RowSums() (res *Matrix) {
	res = NewMatrix(o.M, 1)
	for i := 0; i < o.M; i++ {
		for j := 0; j < o.N; j++ {
			res.Data[i] += o.Data[i*o.N+j]
		}
	}
	return
}

// unary operations ////////////////////////////////////////////////////////

// MatTranspose computes res = aᵀ. res may alias a.
func MatTranspose(res, a *Matrix) {
	t := NewMatrix(a.N, a.M)
	for i := 0; i < a.M; i++ {
		for j := 0; j < a.N; j++ {
			t.Data[j*t.N+i] = a.Data[i*a.N+j]
		}
	}
	*res = *t
}

// MatNeg computes res = -a. res may alias a.
func MatNeg(res, a *Matrix) {
	t := NewMatrix(a.M, a.N)
	for i := range a.Data {
		t.Data[i] = -a.Data[i]
	}
	*res = *t
}

// scalar-matrix operations ////////////////////////////////////////////////

// MatAddScalar computes res = α + a, element-wise. Each output element is
// the scalar plus the corresponding input element; res may alias a.
func MatAddScalar(res *Matrix, α float64, a *Matrix) {
	t := NewMatrix(a.M, a.N)
	for i := range a.Data {
		t.Data[i] = α + a.Data[i]
	}
	*res = *t
}

// MatScale computes res = α·a, element-wise. res may alias a.
func MatScale(res *Matrix, α float64, a *Matrix) {
	t := NewMatrix(a.M, a.N)
	for i := range a.Data {
		t.Data[i] = α * a.Data[i]
	}
	*res = *t
}

// matrix-matrix additive operations ///////////////////////////////////////

// MatAdd computes res = a + b. res may alias a or b.
func MatAdd(res, a, b *Matrix) {
	if a.M != b.M || a.N != b.N {
		chk.Panic("cannot add %d×%d and %d×%d matrices", a.M, a.N, b.M, b.N)
	}
	t := NewMatrix(a.M, a.N)
	for i := range a.Data {
		t.Data[i] = a.Data[i] + b.Data[i]
	}
	*res = *t
}

// MatSub computes res = a - b. res may alias a or b.
func MatSub(res, a, b *Matrix) {
	if a.M != b.M || a.N != b.N {
		chk.Panic("cannot subtract %d×%d and %d×%d matrices", a.M, a.N, b.M, b.N)
	}
	t := NewMatrix(a.M, a.N)
	for i := range a.Data {
		t.Data[i] = a.Data[i] - b.Data[i]
	}
	*res = *t
}

// products ////////////////////////////////////////////////////////////////

// The four transposition flavours below never materialise a transposed
// copy: each views its operands through the stride arguments of the dot
// primitives, reading rows with unit stride and columns with stride N.

// MatMul computes res = a·b. res may alias a or b.
func MatMul(res, a, b *Matrix) {
	if a.N != b.M {
		chk.Panic("cannot multiply %d×%d by %d×%d matrices", a.M, a.N, b.M, b.N)
	}
	t := NewMatrix(a.M, b.N)
	for i := 0; i < t.M; i++ {
		for j := 0; j < t.N; j++ {
			t.Data[i*t.N+j] = DotUI(a.N, a.Data[i*a.N:], b.Data[j:], b.N)
		}
	}
	*res = *t
}

// MatTrMul computes res = aᵀ·b. res may alias a or b.
func MatTrMul(res, a, b *Matrix) {
	if a.M != b.M {
		chk.Panic("cannot multiply transpose of %d×%d by %d×%d matrices", a.M, a.N, b.M, b.N)
	}
	t := NewMatrix(a.N, b.N)
	for i := 0; i < t.M; i++ {
		for j := 0; j < t.N; j++ {
			t.Data[i*t.N+j] = DotInc(a.M, a.Data[i:], a.N, b.Data[j:], b.N)
		}
	}
	*res = *t
}

// MatMulTr computes res = a·bᵀ. res may alias a or b.
func MatMulTr(res, a, b *Matrix) {
	if a.N != b.N {
		chk.Panic("cannot multiply %d×%d by transpose of %d×%d matrices", a.M, a.N, b.M, b.N)
	}
	t := NewMatrix(a.M, b.M)
	for i := 0; i < t.M; i++ {
		for j := 0; j < t.N; j++ {
			t.Data[i*t.N+j] = Dot(a.N, a.Data[i*a.N:], b.Data[j*b.N:])
		}
	}
	*res = *t
}

// MatTrMulTr computes res = aᵀ·bᵀ. res may alias a or b.
func MatTrMulTr(res, a, b *Matrix) {
	if a.M != b.N {
		chk.Panic("cannot multiply transpose of %d×%d by transpose of %d×%d matrices", a.M, a.N, b.M, b.N)
	}
	t := NewMatrix(a.N, b.M)
	for i := 0; i < t.M; i++ {
		for j := 0; j < t.N; j++ {
			t.Data[i*t.N+j] = DotIU(a.M, a.Data[i:], a.N, b.Data[j*b.N:])
		}
	}
	*res = *t
}

// quadratic forms /////////////////////////////////////////////////////////

// QuadForm returns the scalar aᵀ·B·c where a is m×1, B is m×n and c is n×1
func QuadForm(a, B, c *Matrix) (res float64) {
	if a.N != 1 || c.N != 1 || a.M != B.M || c.M != B.N {
		chk.Panic("cannot compute quadratic form with %d×%d, %d×%d and %d×%d operands", a.M, a.N, B.M, B.N, c.M, c.N)
	}
	for i := 0; i < B.M; i++ {
		res += a.Data[i] * Dot(B.N, B.Data[i*B.N:], c.Data)
	}
	return
}

// QuadFormRow returns the scalar a·B·c where a is 1×m, B is m×n and c is n×1
func QuadFormRow(a, B, c *Matrix) (res float64) {
	if a.M != 1 || c.N != 1 || a.N != B.M || c.M != B.N {
		chk.Panic("cannot compute quadratic form with %d×%d, %d×%d and %d×%d operands", a.M, a.N, B.M, B.N, c.M, c.N)
	}
	for i := 0; i < B.M; i++ {
		res += a.Data[i] * Dot(B.N, B.Data[i*B.N:], c.Data)
	}
	return
}
