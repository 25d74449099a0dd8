// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reporting of inference results: text summaries,
// JSON results files and plots of coefficient realizations
package out

import (
	"github.com/cpmech/gosl/io"

	"github.com/AEMPhil/Oneka/oneka"
)

// coeffNames labels the six coefficients of the quadratic field
var coeffNames = []string{"A", "B", "C", "D", "E", "F"}

// Report returns a text summary of one inference run: posterior means with
// marginal standard deviations, the posterior covariance and the number of
// realizations drawn
func Report(o *oneka.Output) (l string) {
	l = io.Sf("Oneka v%s -- %s\n\n", o.Version, o.Timestamp)
	l += "posterior coefficients:\n"
	σ := o.MargStdev()
	for i, name := range coeffNames {
		l += io.Sf("  %s = %13g  (σ = %13g)\n", name, o.Mu[i], σ[i])
	}
	l += "\nposterior covariance:\n"
	l += o.Cov.String()
	l += io.Sf("\n\nrealizations: %d\n", o.Nsims)
	if o.Nsims > 0 {
		n := o.Nsims
		if n > 10 {
			n = 10
		}
		for i := 0; i < n; i++ {
			for j := 0; j < 6; j++ {
				l += io.Sf("%13g", o.Sims.Get(i, j))
			}
			l += "\n"
		}
		if o.Nsims > n {
			l += io.Sf("  ... %d more\n", o.Nsims-n)
		}
	}
	return
}

// PrintReport writes the text summary to standard output
func PrintReport(o *oneka.Output) {
	io.Pf("%s", Report(o))
}
