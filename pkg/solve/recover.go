// Copyright The Churchroad Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package solve drives the constraint solver over symbolic slice models, to
// recover unknown slice configurations from observed behaviour and to check
// behavioural equivalence of known configurations.
package solve

import (
	"fmt"

	"github.com/borzacchiello/gosmt"
	log "github.com/sirupsen/logrus"
	"github.com/uwsampl/churchroad/pkg/lattice"
	"github.com/uwsampl/churchroad/pkg/lattice/tt"
	"github.com/uwsampl/churchroad/pkg/util"
)

// Observation records the outputs a slice was seen to produce for one input
// combination, e.g. as probed from configured hardware or simulation.
type Observation struct {
	// General input bits, of which bits 7-4 feed the first lookup table.
	Inputs uint8 `yaml:"inputs"`
	// Fast-carry inputs from adjacent slices.
	FXA bool `yaml:"fxa"`
	FXB bool `yaml:"fxb"`
	// Observed outputs.
	F0   bool `yaml:"f0"`
	F1   bool `yaml:"f1"`
	OFX0 bool `yaml:"ofx0"`
	OFX1 bool `yaml:"ofx1"`
}

// Recovery is the result of recovering a slice configuration from
// observations.
type Recovery struct {
	// A configuration consistent with every observation.
	Config tt.SliceConfig
	// Unique indicates whether Config is the only configuration consistent
	// with the observations.  When false, the observations underconstrain the
	// slice and more probing is required to pin it down.
	Unique bool
}

// Recover determines a slice configuration consistent with the given
// observations, by constraining a fully symbolic slice to reproduce each of
// them and asking the solver for a model.  It fails if no configuration is
// consistent, i.e. the observations cannot have come from a single slice.
func Recover(observations []Observation) (*Recovery, error) {
	if len(observations) == 0 {
		return nil, fmt.Errorf("no observations given")
	}
	//
	builder := gosmt.NewExprBuilder()
	solver := gosmt.NewZ3Solver(builder)
	design := lattice.NewDesignWithBuilder(builder)
	//
	slice, err := lattice.NewSlice(design, util.NewPath("slice"))
	if err != nil {
		return nil, err
	}
	//
	for i, observation := range observations {
		if err := constrain(solver, design, slice, i, observation); err != nil {
			return nil, fmt.Errorf("observation %d: %w", i, err)
		}
	}
	//
	log.Debugf("constrained slice against %d observations", len(observations))
	// Solve the full constraint conjunction, which also establishes the model
	// read below.
	sat, err := solver.Satisfiable()
	if err != nil {
		return nil, err
	}
	if sat != gosmt.RESULT_SAT {
		return nil, fmt.Errorf("no slice configuration is consistent with the observations")
	}
	// Extract one consistent configuration from the model.
	model := solver.Model()
	config := configFromModel(slice, model)
	// Determine whether any other configuration would also do.
	unique, err := isUnique(solver, builder, slice, config)
	if err != nil {
		return nil, err
	}
	//
	return &Recovery{config, unique}, nil
}

// constrain asserts that the symbolic slice reproduces one observation.  The
// general input is declared as a fresh symbol pinned to its observed value,
// rather than substituted as a constant, so that the lookup-table select
// terms remain symbolic and the decode tree keeps its shape across
// observations.
func constrain(solver *gosmt.Solver, design *lattice.Design, slice *lattice.Slice, nth int, observation Observation) error {
	builder := design.Builder()
	//
	inputs, err := design.BitVec(util.NewPath(fmt.Sprintf("obs%d", nth), "in"), lattice.SliceWidth)
	if err != nil {
		return err
	}
	//
	pinned, err := builder.Eq(inputs, builder.BVV(int64(observation.Inputs), lattice.SliceWidth))
	if err != nil {
		return err
	}
	//
	solver.Add(pinned)
	//
	fxa := bitValue(builder, observation.FXA)
	fxb := bitValue(builder, observation.FXB)
	//
	outputs, err := slice.Decode(inputs, fxa, fxb)
	if err != nil {
		return err
	}
	//
	observed := []struct {
		term  *gosmt.BVExprPtr
		value bool
	}{
		{outputs.F0, observation.F0},
		{outputs.F1, observation.F1},
		{outputs.OFX0, observation.OFX0},
		{outputs.OFX1, observation.OFX1},
	}
	//
	for _, o := range observed {
		eq, err := builder.Eq(o.term, bitValue(builder, o.value))
		if err != nil {
			return err
		}
		//
		solver.Add(eq)
	}
	//
	return nil
}

// isUnique checks whether any configuration other than the given one is also
// consistent with the constraints added so far.
func isUnique(solver *gosmt.Solver, builder *gosmt.ExprBuilder, slice *lattice.Slice, config tt.SliceConfig) (bool, error) {
	assigned := []struct {
		term  *gosmt.BVExprPtr
		value *gosmt.BVExprPtr
	}{
		{slice.Lut0().Init(), builder.BVV(int64(config.Lut0), lattice.Lut4Width)},
		{slice.Lut1().Init(), builder.BVV(int64(config.Lut1), lattice.Lut4Width)},
		{slice.PfuMux().SelSym(), bitValue(builder, config.PfuMux)},
		{slice.L6Mux21().SelSym(), bitValue(builder, config.L6Mux21)},
	}
	// Build a term holding iff some configuration symbol differs from the
	// recovered value.
	differs := builder.BoolVal(false)
	//
	for _, a := range assigned {
		eq, err := builder.Eq(a.term, a.value)
		if err != nil {
			return false, err
		}
		//
		ne, err := builder.BoolNot(eq)
		if err != nil {
			return false, err
		}
		//
		if differs, err = builder.BoolOr(differs, ne); err != nil {
			return false, err
		}
	}
	//
	return solver.CheckSat(differs) == gosmt.RESULT_UNSAT, nil
}

// configFromModel reads the four configuration symbols of a slice out of a
// solver model.  Symbols absent from the model are unconstrained, in which
// case zero is as good a value as any.
func configFromModel(slice *lattice.Slice, model map[string]*gosmt.BVConst) tt.SliceConfig {
	return tt.SliceConfig{
		Lut0:    tt.LUT4(modelValue(model, slice.Lut0().Path().Extend("init"))),
		Lut1:    tt.LUT4(modelValue(model, slice.Lut1().Path().Extend("init"))),
		PfuMux:  modelValue(model, slice.PfuMux().Path().Extend("sel")) == 1,
		L6Mux21: modelValue(model, slice.L6Mux21().Path().Extend("sel")) == 1,
	}
}

func modelValue(model map[string]*gosmt.BVConst, path util.Path) uint64 {
	if value, ok := model[path.String()]; ok {
		return value.AsULong()
	}
	//
	return 0
}

// bitValue converts a boolean into the corresponding 1-bit constant.
func bitValue(builder *gosmt.ExprBuilder, value bool) *gosmt.BVExprPtr {
	if value {
		return builder.BVV(1, 1)
	}
	//
	return builder.BVV(0, 1)
}
