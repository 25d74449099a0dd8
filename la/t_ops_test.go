// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_ops01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ops01. scalar and additive operations")

	a := ParseMatrix("1,2;3,4")
	var c Matrix

	MatAddScalar(&c, 10, a)
	chk.Vector(tst, "10+a", 1e-17, c.Data, []float64{11, 12, 13, 14})
	MatScale(&c, -2, a)
	chk.Vector(tst, "-2*a", 1e-17, c.Data, []float64{-2, -4, -6, -8})

	// aliasing: output over input
	b := a.Clone()
	MatAddScalar(b, 1, b)
	chk.Vector(tst, "aliased 1+b", 1e-17, b.Data, []float64{2, 3, 4, 5})
	MatScale(b, 2, b)
	chk.Vector(tst, "aliased 2*b", 1e-17, b.Data, []float64{4, 6, 8, 10})

	d := ParseMatrix("10,20;30,40")
	MatAdd(&c, a, d)
	chk.Vector(tst, "a+d", 1e-17, c.Data, []float64{11, 22, 33, 44})
	MatSub(&c, d, a)
	chk.Vector(tst, "d-a", 1e-17, c.Data, []float64{9, 18, 27, 36})

	e := a.Clone()
	MatAdd(e, e, e)
	chk.Vector(tst, "aliased e+e", 1e-17, e.Data, []float64{2, 4, 6, 8})

	MatNeg(&c, a)
	chk.Vector(tst, "-a", 1e-17, c.Data, []float64{-1, -2, -3, -4})

	// zero-sized operands obey the shape law
	z1, z2 := NewMatrix(0, 0), NewMatrix(0, 0)
	var z Matrix
	MatAdd(&z, z1, z2)
	chk.IntAssert(z.M, 0)
	chk.IntAssert(z.N, 0)
}

func Test_ops02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ops02. transpose and the four product flavours")

	a := ParseMatrix("1,2,3;4,5,6")
	var at, att Matrix
	MatTranspose(&at, a)
	chk.IntAssert(at.M, 3)
	chk.IntAssert(at.N, 2)
	chk.Vector(tst, "aᵀ", 1e-17, at.Data, []float64{1, 4, 2, 5, 3, 6})

	// transpose of transpose is the identity
	MatTranspose(&att, &at)
	chk.Vector(tst, "aᵀᵀ", 1e-17, att.Data, a.Data)

	// aliased transpose
	sq := ParseMatrix("1,2;3,4")
	MatTranspose(sq, sq)
	chk.Vector(tst, "aliased ᵀ", 1e-17, sq.Data, []float64{1, 3, 2, 4})

	b := ParseMatrix("7,8;9,10;11,12")
	var ab Matrix
	MatMul(&ab, a, b)
	chk.Vector(tst, "a·b", 1e-13, ab.Data, []float64{58, 64, 139, 154})

	// the transposed flavours agree with explicit transposes
	var ref, got Matrix
	MatTrMul(&got, &at, b) // (aᵀ)ᵀ·b = a·b
	chk.Vector(tst, "aᵀᵀ·b", 1e-13, got.Data, ab.Data)
	var bt Matrix
	MatTranspose(&bt, b)
	MatMulTr(&got, a, &bt) // a·(bᵀ)ᵀ = a·b
	chk.Vector(tst, "a·bᵀᵀ", 1e-13, got.Data, ab.Data)
	MatTrMulTr(&got, &at, &bt)
	chk.Vector(tst, "aᵀᵀ·bᵀᵀ", 1e-13, got.Data, ab.Data)

	// (a·b)ᵀ = bᵀ·aᵀ
	MatTranspose(&ref, &ab)
	MatTrMulTr(&got, b, a)
	chk.Vector(tst, "(a·b)ᵀ=bᵀ·aᵀ", 1e-13, got.Data, ref.Data)

	// aᵀ·a is symmetric
	var ata Matrix
	MatTrMul(&ata, a, a)
	chk.IntAssert(ata.M, ata.N)
	for i := 0; i < ata.M; i++ {
		for j := 0; j < i; j++ {
			chk.Scalar(tst, "ata symmetry", 1e-14, ata.Get(i, j), ata.Get(j, i))
		}
	}

	// aliasing: product output over an input
	c := ParseMatrix("1,1;2,2")
	MatMul(c, c, c)
	chk.Vector(tst, "aliased c·c", 1e-13, c.Data, []float64{3, 3, 6, 6})
}

func Test_ops03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ops03. quadratic forms")

	a := ParseMatrix("1;2;3")
	B := ParseMatrix("1,2,3;4,5,6;7,8,9")
	c := ParseMatrix("4;5;6")
	chk.Scalar(tst, "aᵀ·B·c", 1e-13, QuadForm(a, B, c), 552)

	ar := ParseMatrix("1,2,3")
	chk.Scalar(tst, "a·B·c", 1e-13, QuadFormRow(ar, B, c), 552)
}
