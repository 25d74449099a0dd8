// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/AEMPhil/Oneka/inp"
	"github.com/AEMPhil/Oneka/oneka"
	"github.com/AEMPhil/Oneka/out"
	"github.com/AEMPhil/Oneka/rnd"
)

func main() {

	// catch errors
	verbose := true
	defer func() {
		if err := recover(); err != nil {
			if verbose {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// input data
	nsims := flag.Int("nsims", -1, "override the number of realizations")
	plot := flag.Bool("plot", false, "plot the coefficient distributions")
	flag.Parse()
	filename := "data.onk"
	if flag.NArg() > 0 {
		filename = flag.Arg(0)
	}

	// message
	io.PfWhite("\nOneka v%s -- Bayesian inference of regional flow coefficients\n\n", oneka.VERSION)

	// read input and seed the generator
	dat := inp.ReadData(filename)
	if *nsims >= 0 {
		dat.Nsims = *nsims
	}
	if dat.Seed < 0 {
		rnd.InitFromClock()
	} else {
		rnd.Init(dat.Seed)
	}

	// run inference
	res, err := oneka.Solve(dat.GetInput())
	if err != nil {
		io.PfRed("inference failed: %v\n", err)
		os.Exit(1)
	}

	// report
	out.PrintReport(res)
	out.Save(dat.DirOut, dat.Key, res)
	io.Pf("\nresults written to %s\n", dat.DirOut)
	if *plot {
		out.PlotCoeffs(res, dat.DirOut, dat.Key)
	}
}
