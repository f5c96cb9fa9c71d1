// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gobsp

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gobsp/errs"
	"github.com/cpmech/gobsp/store"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// config is the JSON-serializable subset of a Builder's pre-build
// configuration, mirroring inp.Simulation's plain-struct JSON shape.
type config struct {
	Degrees           []int     `json:"degrees"`
	NumBasisFunctions []int     `json:"numBasisFunctions"`
	KnotSpacing       int       `json:"knotSpacing"`
	Smoothing         int       `json:"smoothing"`
	Alpha             float64   `json:"alpha"`
	Padding           float64   `json:"padding"`
	Weights           []float64 `json:"weights"`
	Bounds            []Bound   `json:"bounds"`
	HFSIters          int       `json:"hfsIters"`
	AllowScattered    bool      `json:"allowScattered"`
}

func (o *Builder) toConfig() config {
	return config{
		Degrees:           o.degrees,
		NumBasisFunctions: o.numBasisFunctions,
		KnotSpacing:       int(o.knotSpacing),
		Smoothing:         int(o.smoothing),
		Alpha:             o.alpha,
		Padding:           o.padding,
		Weights:           o.weights,
		Bounds:            o.bounds,
		HFSIters:          o.hfsIters,
		AllowScattered:    o.allowScattered,
	}
}

func (o *Builder) applyConfig(c config) error {
	if _, err := o.SetDegrees(c.Degrees); err != nil {
		return err
	}
	if _, err := o.SetNumBasisFunctions(c.NumBasisFunctions); err != nil {
		return err
	}
	if _, err := o.SetKnotSpacing(KnotSpacing(c.KnotSpacing)); err != nil {
		return err
	}
	if _, err := o.SetSmoothing(Smoothing(c.Smoothing)); err != nil {
		return err
	}
	if _, err := o.SetAlpha(c.Alpha); err != nil {
		return err
	}
	if _, err := o.SetPadding(c.Padding); err != nil {
		return err
	}
	if _, err := o.SetWeights(c.Weights); err != nil {
		return err
	}
	if _, err := o.SetBounds(c.Bounds); err != nil {
		return err
	}
	if _, err := o.SetHFSIters(c.HFSIters); err != nil {
		return err
	}
	o.SetAllowScattered(c.AllowScattered)
	return nil
}

// SaveConfigJSON writes this Builder's pre-build configuration (not its
// sample snapshot) to path, the way inp.Simulation.GetInfo marshals its
// own plain-struct shape.
func (o *Builder) SaveConfigJSON(path string) error {
	b, err := json.MarshalIndent(o.toConfig(), "", "  ")
	if err != nil {
		return errs.New(errs.InvalidArgument, "cannot marshal builder config: %v", err)
	}
	buf := bytes.NewBuffer(b)
	io.WriteFile(path, buf)
	return nil
}

// LoadBuilderConfigJSON reads a Builder configuration from path and
// applies it on top of a freshly-snapshotted Builder for s, mirroring
// inp.ReadSim's read-then-unmarshal-then-validate sequence.
func LoadBuilderConfigJSON(s *store.Store, path string) (*Builder, error) {
	b, err := utl.ReadFile(path)
	if err != nil {
		return nil, errs.New(errs.InvalidArgument, "cannot read builder config %q: %v", path, err)
	}
	var c config
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, errs.New(errs.InvalidArgument, "cannot parse builder config %q: %v", path, err)
	}
	o, err := New(s)
	if err != nil {
		return nil, err
	}
	if err := o.applyConfig(c); err != nil {
		return nil, err
	}
	return o, nil
}
