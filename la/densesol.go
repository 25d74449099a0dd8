// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Cholesky computes the lower-triangular factor L with positive diagonal
// such that a = L·Lᵀ, for symmetric positive-definite a. Only the lower
// triangle of a is read; the strict upper triangle of L is set to zero.
// Returns false at the first non-positive pivot (a not positive-definite).
func Cholesky(L, a *Matrix) (ok bool) {
	if a.M != a.N {
		chk.Panic("Cholesky needs a square matrix; got %d×%d", a.M, a.N)
	}
	n := a.M
	if L != a {
		L.Resize(n, n)
		for i := 0; i < n; i++ {
			for j := 0; j <= i; j++ {
				L.Data[i*n+j] = a.Data[i*n+j]
			}
		}
	}
	for j := 0; j < n; j++ {
		d := L.Data[j*n+j] - DotSelf(j, L.Data[j*n:], 1)
		if d <= 0 {
			return false
		}
		L.Data[j*n+j] = math.Sqrt(d)
		for i := j + 1; i < n; i++ {
			L.Data[i*n+j] = (L.Data[i*n+j] - Dot(j, L.Data[i*n:], L.Data[j*n:])) / L.Data[j*n+j]
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			L.Data[i*n+j] = 0
		}
	}
	return true
}

// SPDInverse computes ai = a⁻¹ for symmetric positive-definite a, via the
// Cholesky factor and two triangular solves. ai may alias a (in-place).
// Returns false when a is not positive-definite.
func SPDInverse(ai, a *Matrix) (ok bool) {
	if a.M != a.N {
		chk.Panic("SPDInverse needs a square matrix; got %d×%d", a.M, a.N)
	}
	n := a.M
	l := NewMatrix(n, n)
	if !Cholesky(l, a) {
		return false
	}

	// li = L⁻¹ by forward substitution, then ai = L⁻ᵀ·L⁻¹ = liᵀ·li
	li := NewMatrix(n, n)
	for j := 0; j < n; j++ {
		li.Data[j*n+j] = 1.0 / l.Data[j*n+j]
		for i := j + 1; i < n; i++ {
			li.Data[i*n+j] = -DotUI(i-j, l.Data[i*n+j:], li.Data[j*n+j:], n) / l.Data[i*n+i]
		}
	}
	MatTrMul(ai, li, li)
	return true
}

// LeastSquares computes the n×k solution x minimising ‖a·x − b‖F for a of
// shape m×n with m ≥ n and b of shape m×k, through the normal equations
// aᵀa·x = aᵀb factorised by Cholesky. Returns false when aᵀa is not
// positive-definite (a rank-deficient to working precision).
func LeastSquares(x, a, b *Matrix) (ok bool) {
	if a.M < a.N {
		chk.Panic("least-squares needs an overdetermined system; got %d×%d", a.M, a.N)
	}
	if b.M != a.M {
		chk.Panic("least-squares needs matching row counts; got %d×%d and %d×%d", a.M, a.N, b.M, b.N)
	}
	n, k := a.N, b.N
	ata, atb := NewMatrix(n, n), NewMatrix(n, k)
	MatTrMul(ata, a, a)
	MatTrMul(atb, a, b)
	l := NewMatrix(n, n)
	if !Cholesky(l, ata) {
		return false
	}

	// forward substitution: L·y = aᵀb
	t := NewMatrix(n, k)
	for c := 0; c < k; c++ {
		for i := 0; i < n; i++ {
			sum := atb.Data[i*k+c] - DotUI(i, l.Data[i*n:], t.Data[c:], k)
			t.Data[i*k+c] = sum / l.Data[i*n+i]
		}
	}

	// backward substitution: Lᵀ·x = y
	for c := 0; c < k; c++ {
		for i := n - 1; i >= 0; i-- {
			sum := t.Data[i*k+c]
			if i < n-1 {
				sum -= DotInc(n-1-i, l.Data[(i+1)*n+i:], n, t.Data[(i+1)*k+c:], k)
			}
			t.Data[i*k+c] = sum / l.Data[i*n+i]
		}
	}
	*x = *t
	return true
}

// Affine computes y = x·u + 1·μ, i.e. y[i,:] = x[i,:]·u + μ, for x of shape
// m×n, square u of shape n×n and row vector μ of shape 1×n. y may alias x.
func Affine(y, x, u, μ *Matrix) {
	if u.M != x.N || u.N != u.M {
		chk.Panic("affine transformation needs a square %d×%d multiplier; got %d×%d", x.N, x.N, u.M, u.N)
	}
	if μ.M != 1 || μ.N != x.N {
		chk.Panic("affine transformation needs a 1×%d shift; got %d×%d", x.N, μ.M, μ.N)
	}
	t := NewMatrix(x.M, x.N)
	for i := 0; i < x.M; i++ {
		for j := 0; j < x.N; j++ {
			t.Data[i*t.N+j] = DotUI(x.N, x.Data[i*x.N:], u.Data[j:], u.N) + μ.Data[j]
		}
	}
	*y = *t
}
