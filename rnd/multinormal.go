// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rnd

import (
	"github.com/cpmech/gosl/chk"

	"github.com/AEMPhil/Oneka/la"
)

// MultiNormal fills x with m independent rows drawn from the multivariate
// Normal distribution with mean row vector μ (1×n) and covariance Σ (n×n).
// The draw uses the Cholesky factor Σ = L·Lᵀ:
//
//    x = z·Lᵀ + 1·μ      with z an m×n matrix of uncorrelated N(0,1)
//
// Returns false when Σ is not positive-definite.
func MultiNormal(x *la.Matrix, μ, Σ *la.Matrix, m int) (ok bool) {
	if Σ.M != Σ.N {
		chk.Panic("multivariate Normal needs a square covariance; got %d×%d", Σ.M, Σ.N)
	}
	if μ.M != 1 || μ.N != Σ.M {
		chk.Panic("multivariate Normal needs a 1×%d mean row; got %d×%d", Σ.M, μ.M, μ.N)
	}
	if m < 1 {
		chk.Panic("multivariate Normal needs at least one row; got %d", m)
	}
	n := Σ.M
	l := la.NewMatrix(n, n)
	if !la.Cholesky(l, Σ) {
		return false
	}
	u := la.NewMatrix(n, n)
	la.MatTranspose(u, l)
	x.Resize(m, n)
	FillNormal(x)
	la.Affine(x, x, u, μ)
	return true
}
