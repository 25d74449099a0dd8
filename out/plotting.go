// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"sort"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/AEMPhil/Oneka/oneka"
)

// PlotCoeffs draws the empirical distribution of each simulated coefficient
// (sorted realizations against their plotting positions) and saves the
// figure to dirout/fnkey_coeffs.png
func PlotCoeffs(o *oneka.Output, dirout, fnkey string) {
	if o.Nsims < 2 {
		return
	}
	F := utl.LinSpace(0, 1, o.Nsims)
	plt.SetForPng(1.2, 500, 150)
	for j := 0; j < 6; j++ {
		vals := make([]float64, o.Nsims)
		for i := 0; i < o.Nsims; i++ {
			vals[i] = o.Sims.Get(i, j)
		}
		sort.Float64s(vals)
		plt.Subplot(3, 2, j+1)
		plt.Plot(vals, F, "'b-', clip_on=0")
		plt.Gll(io.Sf("$%s$", coeffNames[j]), "$F$", "")
	}
	plt.SaveD(dirout, fnkey+"_coeffs.png")
}
