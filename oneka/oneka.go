// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package oneka implements Bayesian inference of the six coefficients of
// the quadratic discharge-potential model: the weighted regression system
// is assembled from piezometer observations, the posterior mean and
// covariance follow from the normal equations, and equiprobable
// realizations are drawn from the posterior distribution
package oneka

import (
	"math"
	"time"

	"github.com/cpmech/gosl/chk"

	"github.com/AEMPhil/Oneka/ana"
	"github.com/AEMPhil/Oneka/la"
	"github.com/AEMPhil/Oneka/rnd"
)

// VERSION is the engine version reported in the output bundle
const VERSION = "1.0.0"

// Well represents a well with known discharge
type Well struct {
	X, Y float64 // location
	Q    float64 // discharge
}

// Piezometer represents an observation point with a Normally distributed
// head measurement
type Piezometer struct {
	X, Y float64 // location
	E    float64 // expected head
	S    float64 // head standard deviation (> 0)
}

// Input holds everything the engine needs for one inference run
type Input struct {
	K           float64      // hydraulic conductivity (> 0)
	H           float64      // aquifer thickness (> 0)
	Base        float64      // aquifer base elevation
	Wells       []Well       // wells with known discharges
	Piezometers []Piezometer // head observations (at least 6)
	Xo, Yo      float64      // model origin
	Nsims       int          // number of realizations to draw (≥ 0)
}

// Output holds the posterior and the requested realizations
type Output struct {
	Version   string     // engine version
	Timestamp string     // run timestamp
	Mu        []float64  // posterior means of (A,B,C,D,E,F)
	Cov       *la.Matrix // 6×6 posterior covariance
	Nsims     int        // number of realizations drawn
	Sims      *la.Matrix // Nsims×6 simulated coefficient rows
}

// Solve computes the posterior mean and covariance of the six coefficients
// and draws Nsims realizations from the posterior distribution. An error
// is returned when the piezometer set does not determine the coefficients
// (singular system); contract violations on the input bundle panic.
func Solve(in *Input) (out *Output, err error) {

	// contract
	if in.K <= 0 || in.H <= 0 {
		chk.Panic("conductivity and thickness must be positive; got k=%g, H=%g", in.K, in.H)
	}
	if in.Nsims < 0 {
		chk.Panic("number of realizations must be non-negative; got %d", in.Nsims)
	}
	for i, pz := range in.Piezometers {
		if pz.S <= 0 {
			chk.Panic("piezometer %d must have a positive head standard deviation; got %g", i, pz.S)
		}
	}

	// weighted regression system
	A, b := assemble(in)

	// posterior covariance: Σ = (AᵀA)⁻¹
	ata := la.NewMatrix(6, 6)
	la.MatTrMul(ata, A, A)
	cov := la.NewMatrix(6, 6)
	if !la.SPDInverse(cov, ata) {
		return nil, chk.Err("singular system: the piezometer set does not determine the posterior covariance")
	}

	// posterior mean: least-squares solution of A·μ = b
	var μ la.Matrix
	if !la.LeastSquares(&μ, A, b) {
		return nil, chk.Err("singular system: the least-squares solve for the posterior mean failed")
	}

	// realizations from N(μᵀ, Σ)
	sims := new(la.Matrix)
	if in.Nsims > 0 {
		μrow := la.NewMatrix(1, 6)
		la.MatTranspose(μrow, &μ)
		if !rnd.MultiNormal(sims, μrow, cov, in.Nsims) {
			return nil, chk.Err("singular system: the posterior covariance is not positive-definite")
		}
	}

	mu := make([]float64, 6)
	copy(mu, μ.Data)
	out = &Output{
		Version:   VERSION,
		Timestamp: time.Now().Format("2006.01.02 15:04:05"),
		Mu:        mu,
		Cov:       cov,
		Nsims:     in.Nsims,
		Sims:      sims,
	}
	return
}

// assemble builds the design matrix A (P×6) and response b (P×1), each row
// divided by the discharge-potential standard deviation of its piezometer
func assemble(in *Input) (A, b *la.Matrix) {
	np := len(in.Piezometers)
	A = la.NewMatrix(np, 6)
	b = la.NewMatrix(np, 1)
	for p, pz := range in.Piezometers {

		// expected value and standard deviation of the discharge potential
		h := pz.E - in.Base
		var μΦ, σΦ float64
		if h < in.H { // unconfined
			μΦ = 0.5 * in.K * (h*h + pz.S*pz.S)
			σΦ = in.K * h * pz.S
		} else { // confined
			μΦ = in.K * in.H * (h - 0.5*in.H)
			σΦ = in.K * in.H * pz.S
		}

		// combined well potential at this piezometer
		Φw := 0.0
		for _, w := range in.Wells {
			Φw += ana.WellPot(w.Q, w.X, w.Y, pz.X, pz.Y)
		}

		dx, dy := pz.X-in.Xo, pz.Y-in.Yo
		A.Set(p, 0, dx*dx/σΦ)
		A.Set(p, 1, dy*dy/σΦ)
		A.Set(p, 2, dx*dy/σΦ)
		A.Set(p, 3, dx/σΦ)
		A.Set(p, 4, dy/σΦ)
		A.Set(p, 5, 1.0/σΦ)
		b.Set(p, 0, (μΦ-Φw)/σΦ)
	}
	return
}

// MargStdev returns the marginal standard deviations √Σii of the posterior
func (o *Output) MargStdev() (res []float64) {
	res = make([]float64, 6)
	for i := 0; i < 6; i++ {
		res[i] = math.Sqrt(o.Cov.Get(i, i))
	}
	return
}
