// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.onk) JSON file
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/AEMPhil/Oneka/oneka"
)

// WellData holds one well read from the input file
type WellData struct {
	X float64 `json:"x"` // x-coordinate
	Y float64 `json:"y"` // y-coordinate
	Q float64 `json:"q"` // discharge
}

// PiezData holds one piezometer read from the input file
type PiezData struct {
	X     float64 `json:"x"`     // x-coordinate
	Y     float64 `json:"y"`     // y-coordinate
	Head  float64 `json:"head"`  // expected head
	Stdev float64 `json:"stdev"` // head standard deviation
}

// Data holds the problem definition for one inference run
type Data struct {

	// global information
	Desc   string `json:"desc"`   // description of the run
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/oneka

	// aquifer parameters: "k", "h" and "base"
	Aquifer fun.Prms `json:"aquifer"`

	// model definition
	Xo    float64     `json:"xo"`    // model origin x-coordinate
	Yo    float64     `json:"yo"`    // model origin y-coordinate
	Nsims int         `json:"nsims"` // number of realizations to draw
	Seed  int         `json:"seed"`  // PRNG seed; negative means wall-clock
	Wells []*WellData `json:"wells"`
	Piezs []*PiezData `json:"piezometers"`

	// derived
	Key string `json:"-"` // filename key
}

// ReadData reads and validates an input file
func ReadData(fn string) (o *Data) {
	o = new(Data)
	b, err := io.ReadFile(fn)
	if err != nil {
		chk.Panic("ReadData: cannot read input file %q", fn)
	}
	o.Seed = -1
	err = json.Unmarshal(b, o)
	if err != nil {
		chk.Panic("ReadData: cannot unmarshal input file %q", fn)
	}
	o.Key = io.FnKey(filepath.Base(fn))
	if o.DirOut == "" {
		o.DirOut = "/tmp/oneka/" + o.Key
	}
	o.Validate()
	return
}

// Validate checks the input data, panicking on contract violations
func (o *Data) Validate() {
	k, h, _, hasK, hasH := o.aquiferPrms()
	if !hasK || !hasH {
		chk.Panic("aquifer parameters must include \"k\" and \"h\"")
	}
	if k <= 0 || h <= 0 {
		chk.Panic("conductivity and thickness must be positive; got k=%g, h=%g", k, h)
	}
	if len(o.Piezs) < 6 {
		chk.Panic("at least 6 piezometers are needed to determine 6 coefficients; got %d", len(o.Piezs))
	}
	for i, pz := range o.Piezs {
		if pz.Stdev <= 0 {
			chk.Panic("piezometer %d must have a positive head standard deviation; got %g", i, pz.Stdev)
		}
	}
	if o.Nsims < 0 {
		chk.Panic("nsims must be non-negative; got %d", o.Nsims)
	}
}

// GetInput returns the engine input bundle
func (o *Data) GetInput() (in *oneka.Input) {
	k, h, base, _, _ := o.aquiferPrms()
	in = &oneka.Input{
		K:     k,
		H:     h,
		Base:  base,
		Xo:    o.Xo,
		Yo:    o.Yo,
		Nsims: o.Nsims,
	}
	for _, w := range o.Wells {
		in.Wells = append(in.Wells, oneka.Well{X: w.X, Y: w.Y, Q: w.Q})
	}
	for _, pz := range o.Piezs {
		in.Piezometers = append(in.Piezometers, oneka.Piezometer{X: pz.X, Y: pz.Y, E: pz.Head, S: pz.Stdev})
	}
	return
}

// aquiferPrms extracts the named aquifer parameters
func (o *Data) aquiferPrms() (k, h, base float64, hasK, hasH bool) {
	for _, p := range o.Aquifer {
		switch p.N {
		case "k":
			k, hasK = p.V, true
		case "h":
			h, hasH = p.V, true
		case "base":
			base = p.V
		default:
			chk.Panic("unknown aquifer parameter %q", p.N)
		}
	}
	return
}
