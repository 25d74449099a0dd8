// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import "math"

// ApproxEqual tells whether |x-y| ≤ tol
func ApproxEqual(x, y, tol float64) bool {
	return math.Abs(x-y) <= tol
}

// RelativeEqual tells whether |x-y| ≤ tol·|y|
func RelativeEqual(x, y, tol float64) bool {
	return math.Abs(x-y) <= tol*math.Abs(y)
}

// MatApproxEqual tells whether a and b have identical shapes and the
// largest absolute difference between corresponding elements is ≤ tol
func MatApproxEqual(a, b *Matrix, tol float64) bool {
	if a.M != b.M || a.N != b.N {
		return false
	}
	if len(a.Data) == 0 {
		return true
	}
	d := NewMatrix(a.M, a.N)
	MatSub(d, a, b)
	return d.MaxAbs() <= tol
}
