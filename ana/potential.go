// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana provides closed-form solutions for regional groundwater
// flow: the quadratic discharge-potential field, the logarithmic potential
// of discharge-specified wells, and Girinskii's piecewise head-potential
// map for confined and unconfined aquifers
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// QuadField represents the regional quadratic discharge-potential field
//
//	Φ(x,y) = A・dx² + B・dy² + C・dx・dy + D・dx + E・dy + F
//
// with dx = x - Xo and dy = y - Yo measured from the model origin
type QuadField struct {
	A, B, C, D, E, F float64 // coefficients
	Xo, Yo           float64 // model origin
}

// Pot returns the regional discharge potential at (x,y), wells excluded
func (o QuadField) Pot(x, y float64) float64 {
	dx, dy := x-o.Xo, y-o.Yo
	return o.A*dx*dx + o.B*dy*dy + o.C*dx*dy + o.D*dx + o.E*dy + o.F
}

// WellPot returns the discharge potential at (x,y) due to a single well
// with discharge q at (xw,yw):
//
//	Φw = q/(2π)・ln(r) = q/(4π)・ln(r²)
func WellPot(q, xw, yw, x, y float64) float64 {
	dx, dy := x-xw, y-yw
	return q / (4.0 * math.Pi) * math.Log(dx*dx+dy*dy)
}

// Aquifer holds the bulk properties of a homogeneous aquifer
type Aquifer struct {
	K    float64 // hydraulic conductivity
	H    float64 // thickness
	Base float64 // base elevation
}

// PotFromHead returns Girinskii's discharge potential for the head-above-
// base h: ½・k・h² while unconfined (h < H) and k・H・(h − ½H) once confined
func (o Aquifer) PotFromHead(h float64) float64 {
	if h < o.H {
		return 0.5 * o.K * h * h
	}
	return o.K * o.H * (h - 0.5*o.H)
}

// HeadFromPot inverts PotFromHead, returning the head above the base for
// a non-negative discharge potential
func (o Aquifer) HeadFromPot(Φ float64) float64 {
	if Φ < 0 {
		chk.Panic("cannot compute head from negative discharge potential %g", Φ)
	}
	if Φ < 0.5*o.K*o.H*o.H {
		return math.Sqrt(2.0 * Φ / o.K)
	}
	return 0.5*o.H + Φ/(o.K*o.H)
}
