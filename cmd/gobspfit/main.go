// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gobspfit drives a fit end to end from the command line: reads
// a CSV sample file, an optional JSON Builder configuration, builds the
// spline and prints its coefficients. A convenience entry point only --
// not part of the core library contract (§6).
package main

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/cpmech/gobsp"
	"github.com/cpmech/gobsp/store"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// input parameters
	samplefile, _ := io.ArgToFilename(0, "", ".csv", true)
	configfile := io.ArgToString(1, "")
	verbose := io.ArgToBool(2, true)

	if verbose {
		io.PfWhite("\ngobspfit -- tensor-product B-spline fitting\n\n")
		io.Pf("\n%v\n", io.ArgsTable(
			"sample CSV file (columns: x0..x{d-1},y)", "samplefile", samplefile,
			"Builder JSON config (optional)", "configfile", configfile,
			"show messages", "verbose", verbose,
		))
	}

	// read samples
	s := readSamples(samplefile)
	if verbose {
		io.Pf("read %d samples, d=%d\n", s.M(), s.D())
	}

	// configure and build
	var b *gobsp.Builder
	var err error
	if configfile != "" {
		b, err = gobsp.LoadBuilderConfigJSON(s, configfile)
	} else {
		b, err = gobsp.New(s)
	}
	if err != nil {
		chk.Panic("cannot configure builder:\n%v", err)
	}

	sp, err := b.Build()
	if err != nil {
		chk.Panic("build failed:\n%v", err)
	}

	// report
	N, nAxis := sp.NumBasisFunctions()
	io.Pf("\nnumVariables = %d\n", sp.NumVariables())
	io.Pf("numBasisFunctions (per axis) = %v\n", nAxis)
	io.Pf("numCoefficients = %d\n", N)
	io.Pf("coefficients:\n%v\n", sp.Coefficients())
}

// readSamples parses a CSV file whose columns are x0,...,x_{d-1},y --
// plain delimited-text parsing is boundary I/O with no pack-library
// equivalent (gosl's own input readers are all .sim/JSON-shaped), so
// the standard library's csv reader is used directly here rather than
// reached around.
func readSamples(path string) *store.Store {
	f, err := os.Open(path)
	if err != nil {
		chk.Panic("cannot open sample file %q: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		chk.Panic("cannot parse sample file %q: %v", path, err)
	}

	s := store.New()
	for _, rec := range records {
		if len(rec) < 2 {
			chk.Panic("sample row needs at least 2 columns (x,y), got %d", len(rec))
		}
		d := len(rec) - 1
		x := make([]float64, d)
		for j := 0; j < d; j++ {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				chk.Panic("cannot parse coordinate %q: %v", rec[j], err)
			}
			x[j] = v
		}
		y, err := strconv.ParseFloat(rec[d], 64)
		if err != nil {
			chk.Panic("cannot parse y value %q: %v", rec[d], err)
		}
		if err := s.Add(x, y); err != nil {
			chk.Panic("cannot add sample: %v", err)
		}
	}
	return s
}
