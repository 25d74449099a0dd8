// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Matrix implements a dense rectangular block of real numbers stored
// contiguously in row-major order. M and N are either both zero (empty
// matrix) or both positive, and len(Data) == M*N always holds.
type Matrix struct {
	M, N int       // number of rows and columns
	Data []float64 // row-major contiguous values [M*N]
}

// NewMatrix returns a new m×n matrix filled with zeros
func NewMatrix(m, n int) (o *Matrix) {
	o = new(Matrix)
	o.Resize(m, n)
	return
}

// NewMatrixValue returns a new m×n matrix with all elements set to val
func NewMatrixValue(m, n int, val float64) (o *Matrix) {
	o = NewMatrix(m, n)
	for i := range o.Data {
		o.Data[i] = val
	}
	return
}

// NewMatrixSlice returns a new m×n matrix with elements copied from the
// row-major slice vals
func NewMatrixSlice(m, n int, vals []float64) (o *Matrix) {
	if len(vals) != m*n {
		chk.Panic("cannot create %d×%d matrix from slice with %d values", m, n, len(vals))
	}
	o = NewMatrix(m, n)
	copy(o.Data, vals)
	return
}

// ParseMatrix returns a new matrix from a textual literal where rows are
// separated by ';' and columns by ','. Empty or unparseable tokens become
// zero, ragged rows are right-padded with zeros to the longest row, and a
// trailing ';' appends a full zero row. Space and tab are ignored; any
// character outside {-,digits,e,E,.,',',';',space,tab} is illegal.
func ParseMatrix(l string) (o *Matrix) {
	for _, c := range l {
		switch {
		case c >= '0' && c <= '9':
		case c == '-' || c == 'e' || c == 'E' || c == '.' || c == ',' || c == ';' || c == ' ' || c == '\t':
		default:
			chk.Panic("matrix literal has illegal character %q", c)
		}
	}
	segments := strings.Split(l, ";")
	m := len(segments)
	rows := make([][]float64, m)
	n := 0
	for i, seg := range segments {
		tokens := strings.Split(seg, ",")
		rows[i] = make([]float64, len(tokens))
		for j, tok := range tokens {
			val, err := strconv.ParseFloat(strings.Trim(tok, " \t"), 64)
			if err != nil {
				val = 0
			}
			rows[i][j] = val
		}
		if len(tokens) > n {
			n = len(tokens)
		}
	}
	o = NewMatrix(m, n)
	for i := 0; i < m; i++ {
		copy(o.Data[i*n:], rows[i])
	}
	return
}

// Resize sets the shape to m×n, discarding previous contents and filling
// with zeros, even when the shape does not change
func (o *Matrix) Resize(m, n int) {
	if m < 0 || n < 0 {
		chk.Panic("cannot resize matrix to %d×%d: dimensions must be non-negative", m, n)
	}
	if (m == 0) != (n == 0) {
		chk.Panic("cannot resize matrix to %d×%d: dimensions must be both zero or both positive", m, n)
	}
	o.M, o.N = m, n
	o.Data = make([]float64, m*n)
}

// Get returns the value at (i,j)
func (o *Matrix) Get(i, j int) float64 {
	if i < 0 || i >= o.M || j < 0 || j >= o.N {
		chk.Panic("index (%d,%d) is out of range of %d×%d matrix", i, j, o.M, o.N)
	}
	return o.Data[i*o.N+j]
}

// Set assigns val to the element at (i,j)
func (o *Matrix) Set(i, j int, val float64) {
	if i < 0 || i >= o.M || j < 0 || j >= o.N {
		chk.Panic("index (%d,%d) is out of range of %d×%d matrix", i, j, o.M, o.N)
	}
	o.Data[i*o.N+j] = val
}

// Slice returns the raw storage starting at element (i,j); Slice(0,0) is
// the whole buffer. The dot-product layer indexes this with strides.
func (o *Matrix) Slice(i, j int) []float64 {
	if i < 0 || i >= o.M || j < 0 || j >= o.N {
		chk.Panic("index (%d,%d) is out of range of %d×%d matrix", i, j, o.M, o.N)
	}
	return o.Data[i*o.N+j:]
}

// Fill sets all elements to val
func (o *Matrix) Fill(val float64) {
	for i := range o.Data {
		o.Data[i] = val
	}
}

// SetIdentity resizes to n×n and sets the identity
func (o *Matrix) SetIdentity(n int) {
	o.Resize(n, n)
	for i := 0; i < n; i++ {
		o.Data[i*n+i] = 1
	}
}

// Clone returns a deep copy
func (o *Matrix) Clone() (res *Matrix) {
	res = NewMatrix(o.M, o.N)
	copy(res.Data, o.Data)
	return
}

// CopyInto copies the contents of o into res (deep; self-copy is a no-op)
func (o *Matrix) CopyInto(res *Matrix) {
	if res == o {
		return
	}
	res.M, res.N = o.M, o.N
	res.Data = make([]float64, len(o.Data))
	copy(res.Data, o.Data)
}

// String returns a textual representation: one line per row, fixed-width
// fields, no brackets
func (o *Matrix) String() (l string) {
	for i := 0; i < o.M; i++ {
		if i > 0 {
			l += "\n"
		}
		for j := 0; j < o.N; j++ {
			l += io.Sf("%13g", o.Data[i*o.N+j])
		}
	}
	return
}
