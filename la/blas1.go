// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package la implements a dense linear algebra kernel: row-major matrices,
// norms, the four transposition flavours of matrix products built on strided
// dot products, Cholesky factorisation and solvers based on it
package la

// Dot returns u・v over n unit-stride elements
func Dot(n int, u, v []float64) (res float64) {
	for i := 0; i < n; i++ {
		res += u[i] * v[i]
	}
	return
}

// DotInc returns u・v over n elements with strides incu and incv
func DotInc(n int, u []float64, incu int, v []float64, incv int) (res float64) {
	iu, iv := 0, 0
	for i := 0; i < n; i++ {
		res += u[iu] * v[iv]
		iu += incu
		iv += incv
	}
	return
}

// DotUI returns u・v over n elements with unit stride on u and stride incv on v
func DotUI(n int, u, v []float64, incv int) (res float64) {
	iv := 0
	for i := 0; i < n; i++ {
		res += u[i] * v[iv]
		iv += incv
	}
	return
}

// DotIU returns u・v over n elements with stride incu on u and unit stride on v
func DotIU(n int, u []float64, incu int, v []float64) (res float64) {
	iu := 0
	for i := 0; i < n; i++ {
		res += u[iu] * v[i]
		iu += incu
	}
	return
}

// DotSelf returns u・u over n elements with stride inc
func DotSelf(n int, u []float64, inc int) (res float64) {
	iu := 0
	for i := 0; i < n; i++ {
		res += u[iu] * u[iu]
		iu += inc
	}
	return
}
