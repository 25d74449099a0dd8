// Copyright 2016 The Oneka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01")

	dat := ReadData("data/onk01.onk")
	io.Pforan("%v: %d wells, %d piezometers\n", dat.Key, len(dat.Wells), len(dat.Piezs))

	chk.String(tst, dat.Key, "onk01")
	chk.IntAssert(len(dat.Wells), 1)
	chk.IntAssert(len(dat.Piezs), 8)
	chk.IntAssert(dat.Nsims, 100)
	chk.IntAssert(dat.Seed, 1234)

	in := dat.GetInput()
	chk.Scalar(tst, "k", 1e-17, in.K, 1)
	chk.Scalar(tst, "H", 1e-17, in.H, 50)
	chk.Scalar(tst, "base", 1e-17, in.Base, 0)
	chk.Scalar(tst, "q", 1e-17, in.Wells[0].Q, 30)
	chk.Scalar(tst, "pz0 head", 1e-17, in.Piezometers[0].E, 45.5)
	chk.Scalar(tst, "pz7 stdev", 1e-17, in.Piezometers[7].S, 1)
	chk.IntAssert(in.Nsims, 100)
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. validation failures")

	dat := ReadData("data/onk01.onk")
	dat.Piezs = dat.Piezs[:5]
	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("test failed: validation must reject five piezometers\n")
		}
	}()
	dat.Validate()
}
