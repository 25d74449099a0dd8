// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rnd implements the Gaussian layer: the standard Normal CDF, a
// scalar standard Normal deviate generator (Marsaglia polar method) and a
// multivariate Normal generator built on the Cholesky factor of the
// covariance matrix
package rnd

import (
	"math"
	"math/rand"
	"time"

	"github.com/AEMPhil/Oneka/la"
)

// generator holds the process-wide state of the scalar deviate generator:
// the uniform stream and the one-slot cache with the spare polar-method
// partner. Callers needing reproducibility must not share the stream
// between interleaved consumers.
var generator struct {
	rng    *rand.Rand
	cached bool
	spare  float64
}

// Init initialises the uniform stream with a deterministic seed and clears
// the cached partner, guaranteeing a reproducible sequence of deviates
func Init(seed int) {
	generator.rng = rand.New(rand.NewSource(int64(seed)))
	generator.cached = false
	generator.spare = 0
}

// InitFromClock initialises the uniform stream from the wall clock and
// clears the cached partner
func InitFromClock() {
	generator.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	generator.cached = false
	generator.spare = 0
}

func init() {
	Init(0)
}

// StdNormalCdf returns Φ(x), the cumulative distribution function of the
// standard Normal, with absolute error below 1e-15 for all finite x.
// For |x| ≤ 8 the convergent series
//
//    Φ(x) = 0.5 + φ(x)・Σk x・Πj x²/(2j+1)
//
// is summed until the partial sum becomes a fixed point; beyond 8 the
// value is clamped to 0 or 1.
func StdNormalCdf(x float64) float64 {
	if x > 8 {
		return 1
	}
	if x < -8 {
		return 0
	}
	x2 := x * x
	sum, term := x, x
	for k := 1; ; k++ {
		term *= x2 / float64(2*k+1)
		prev := sum
		sum += term
		if sum == prev {
			break
		}
	}
	return 0.5 + sum*math.Exp(-x2/2.0)/math.Sqrt(2.0*math.Pi)
}

// StdNormal returns one standard Normal deviate using the Marsaglia polar
// method. Each accepted pair of uniforms yields two deviates; the partner
// is cached and consumed by the next call before new uniforms are drawn.
func StdNormal() float64 {
	if generator.cached {
		generator.cached = false
		return generator.spare
	}
	for {
		u := 2.0*generator.rng.Float64() - 1.0
		v := 2.0*generator.rng.Float64() - 1.0
		r := u*u + v*v
		if r >= 1 || r == 0 {
			continue
		}
		p := math.Sqrt(-2.0 * math.Log(r) / r)
		generator.spare = p * u
		generator.cached = true
		return p * v
	}
}

// FillNormal fills a with independent standard Normal deviates
func FillNormal(a *la.Matrix) {
	for i := range a.Data {
		a.Data[i] = StdNormal()
	}
}
