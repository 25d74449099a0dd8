// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/AEMPhil/Oneka/oneka"
)

// Results mirrors the output bundle in a JSON-friendly layout
type Results struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Mu        []float64   `json:"mu"`
	Cov       [][]float64 `json:"cov"`
	Nsims     int         `json:"nsims"`
	Sims      [][]float64 `json:"sims"`
}

// Save writes the inference results to dirout/fnkey.json
func Save(dirout, fnkey string, o *oneka.Output) {
	res := Results{
		Version:   o.Version,
		Timestamp: o.Timestamp,
		Mu:        o.Mu,
		Cov:       tabulate(o.Cov.M, o.Cov.N, o.Cov.Data),
		Nsims:     o.Nsims,
		Sims:      tabulate(o.Sims.M, o.Sims.N, o.Sims.Data),
	}
	b, err := json.MarshalIndent(&res, "", "  ")
	if err != nil {
		chk.Panic("Save: cannot marshal results: %v", err)
	}
	io.WriteFileSD(dirout, fnkey+".json", string(b))
}

// tabulate converts row-major storage into nested rows
func tabulate(m, n int, data []float64) (res [][]float64) {
	res = make([][]float64, m)
	for i := 0; i < m; i++ {
		res[i] = make([]float64, n)
		copy(res[i], data[i*n:(i+1)*n])
	}
	return
}
