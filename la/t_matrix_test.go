// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. constructors, access and resize")

	a := NewMatrix(2, 3)
	chk.IntAssert(a.M, 2)
	chk.IntAssert(a.N, 3)
	chk.Vector(tst, "zero data", 1e-17, a.Data, []float64{0, 0, 0, 0, 0, 0})

	a.Set(0, 0, 1)
	a.Set(1, 2, -2)
	chk.Scalar(tst, "a00", 1e-17, a.Get(0, 0), 1)
	chk.Scalar(tst, "a12", 1e-17, a.Get(1, 2), -2)

	b := NewMatrixValue(2, 2, 0.5)
	chk.Vector(tst, "filled", 1e-17, b.Data, []float64{0.5, 0.5, 0.5, 0.5})
	b.Fill(-1)
	chk.Vector(tst, "refilled", 1e-17, b.Data, []float64{-1, -1, -1, -1})

	c := NewMatrixSlice(2, 2, []float64{1, 2, 3, 4})
	chk.Vector(tst, "from slice", 1e-17, c.Data, []float64{1, 2, 3, 4})

	// deep copy
	d := c.Clone()
	d.Set(0, 0, -1)
	chk.Scalar(tst, "clone is deep", 1e-17, c.Get(0, 0), 1)
	var e Matrix
	c.CopyInto(&e)
	e.Set(1, 1, -4)
	chk.Scalar(tst, "copy is deep", 1e-17, c.Get(1, 1), 4)

	// resize to the same shape must still zero-fill
	c.Resize(2, 2)
	chk.Vector(tst, "resize zero-fills", 1e-17, c.Data, []float64{0, 0, 0, 0})
	c.Resize(3, 1)
	chk.IntAssert(c.M, 3)
	chk.IntAssert(c.N, 1)
	chk.IntAssert(len(c.Data), 3)

	// identity
	var eye Matrix
	eye.SetIdentity(3)
	chk.Vector(tst, "identity", 1e-17, eye.Data, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})

	// raw slice access
	f := NewMatrixSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	chk.Scalar(tst, "slice(1,1)[0]", 1e-17, f.Slice(1, 1)[0], 5)
	chk.Scalar(tst, "slice(0,0)[3]", 1e-17, f.Slice(0, 0)[3], 4)
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. textual literals")

	a := ParseMatrix("1,2;3,4")
	chk.IntAssert(a.M, 2)
	chk.IntAssert(a.N, 2)
	chk.Vector(tst, "plain", 1e-17, a.Data, []float64{1, 2, 3, 4})

	// whitespace and scientific notation
	b := ParseMatrix(" 1.5 ,\t2e2 ; -3.25 , 4E-1 ")
	chk.Vector(tst, "spaced", 1e-17, b.Data, []float64{1.5, 200, -3.25, 0.4})

	// ragged rows are right-padded with zeros
	c := ParseMatrix("1;2,3,4;5,6")
	chk.IntAssert(c.M, 3)
	chk.IntAssert(c.N, 3)
	chk.Vector(tst, "ragged", 1e-17, c.Data, []float64{1, 0, 0, 2, 3, 4, 5, 6, 0})

	// empty and unparseable tokens become zero
	d := ParseMatrix("1,,2;--3,4,e")
	chk.Vector(tst, "bad tokens", 1e-17, d.Data, []float64{1, 0, 2, 0, 4, 0})

	// trailing ';' appends a zero row
	e := ParseMatrix("1,2;")
	chk.IntAssert(e.M, 2)
	chk.Vector(tst, "trailing semicolon", 1e-17, e.Data, []float64{1, 2, 0, 0})

	// illegal character is a contract violation
	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("test failed: parsing a literal with an illegal character must panic\n")
		}
	}()
	ParseMatrix("1,2;3,x")
}

func Test_mat03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat03. norms and reductions")

	// scalar-filled norm laws
	for _, shape := range [][]int{{1, 1}, {2, 3}, {5, 2}, {4, 4}} {
		for _, val := range []float64{-2.5, 0, 1, 3} {
			m, n := shape[0], shape[1]
			a := NewMatrixValue(m, n, val)
			chk.Scalar(tst, io.Sf("maxabs %d×%d", m, n), 1e-15, a.MaxAbs(), math.Abs(val))
			chk.Scalar(tst, io.Sf("norm1  %d×%d", m, n), 1e-15, a.NormOne(), float64(m)*math.Abs(val))
			chk.Scalar(tst, io.Sf("normI  %d×%d", m, n), 1e-15, a.NormInf(), float64(n)*math.Abs(val))
			chk.Scalar(tst, io.Sf("normF  %d×%d", m, n), 1e-14, a.NormFrob(), math.Abs(val)*math.Sqrt(float64(m*n)))
		}
	}

	a := ParseMatrix("1,-2,3;-4,5,-6")
	chk.Scalar(tst, "maxabs", 1e-17, a.MaxAbs(), 6)
	chk.Scalar(tst, "norm1", 1e-17, a.NormOne(), 9)
	chk.Scalar(tst, "normI", 1e-17, a.NormInf(), 15)
	chk.Scalar(tst, "normF", 1e-14, a.NormFrob(), math.Sqrt(91))

	b := ParseMatrix("1,2;3,4")
	chk.Scalar(tst, "trace", 1e-17, b.Tr(), 5)

	cs := a.ColSums()
	chk.IntAssert(cs.M, 1)
	chk.Vector(tst, "colsums", 1e-17, cs.Data, []float64{-3, 3, -3})
	rs := a.RowSums()
	chk.IntAssert(rs.N, 1)
	chk.Vector(tst, "rowsums", 1e-17, rs.Data, []float64{2, -5})
}

func Test_mat04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat04. text output")

	a := ParseMatrix("1,2;3,4")
	l := a.String()
	chk.String(tst, l, io.Sf("%13g%13g\n%13g%13g", 1.0, 2.0, 3.0, 4.0))
}

func Test_mat05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat05. tolerance compares")

	if !ApproxEqual(1.0, 1.0+1e-12, 1e-11) {
		tst.Errorf("test failed: scalars should compare equal\n")
	}
	if ApproxEqual(1.0, 1.1, 1e-3) {
		tst.Errorf("test failed: scalars should compare different\n")
	}
	if !RelativeEqual(1000.0, 1000.1, 1e-3) {
		tst.Errorf("test failed: relative compare should pass\n")
	}
	a := ParseMatrix("1,2;3,4")
	b := ParseMatrix("1,2;3,4.0001")
	if !MatApproxEqual(a, b, 1e-3) {
		tst.Errorf("test failed: matrices should compare equal\n")
	}
	if MatApproxEqual(a, b, 1e-6) {
		tst.Errorf("test failed: matrices should compare different\n")
	}
	c := ParseMatrix("1,2,0;3,4,0")
	if MatApproxEqual(a, c, 1e-3) {
		tst.Errorf("test failed: different shapes must not compare equal\n")
	}
}
