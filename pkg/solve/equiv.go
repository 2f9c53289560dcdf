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
package solve

import (
	"fmt"

	"github.com/borzacchiello/gosmt"
	log "github.com/sirupsen/logrus"
	"github.com/uwsampl/churchroad/pkg/lattice"
	"github.com/uwsampl/churchroad/pkg/lattice/tt"
	"github.com/uwsampl/churchroad/pkg/util"
)

// Counterexample is an input combination on which two slice configurations
// disagree, along with the outputs each produces.
type Counterexample struct {
	Inputs uint8
	FXA    bool
	FXB    bool
	// Outputs of the two configurations on this input.
	First  tt.Outputs
	Second tt.Outputs
}

func (p *Counterexample) String() string {
	return fmt.Sprintf("inputs=%08b fxa=%t fxb=%t: (f0=%t f1=%t ofx0=%t ofx1=%t) vs (f0=%t f1=%t ofx0=%t ofx1=%t)",
		p.Inputs, p.FXA, p.FXB,
		p.First.F0, p.First.F1, p.First.OFX0, p.First.OFX1,
		p.Second.F0, p.Second.F1, p.Second.OFX0, p.Second.OFX1)
}

// Equivalent checks whether two slice configurations produce identical
// outputs on every input combination, by asking the solver for an input on
// which they disagree.  If one exists it is returned as a counterexample.
func Equivalent(first, second tt.SliceConfig) (bool, *Counterexample, error) {
	builder := gosmt.NewExprBuilder()
	solver := gosmt.NewZ3Solver(builder)
	design := lattice.NewDesignWithBuilder(builder)
	// Both slices share the same free inputs.
	inputs, err := design.BitVec(util.NewPath("in"), lattice.SliceWidth)
	if err != nil {
		return false, nil, err
	}
	//
	fxa, err := design.BitVec(util.NewPath("fxa"), 1)
	if err != nil {
		return false, nil, err
	}
	//
	fxb, err := design.BitVec(util.NewPath("fxb"), 1)
	if err != nil {
		return false, nil, err
	}
	//
	firstOutputs, err := decodeConfig(design, "first", first, inputs, fxa, fxb)
	if err != nil {
		return false, nil, err
	}
	//
	secondOutputs, err := decodeConfig(design, "second", second, inputs, fxa, fxb)
	if err != nil {
		return false, nil, err
	}
	//
	differs, err := outputsDiffer(builder, firstOutputs, secondOutputs)
	if err != nil {
		return false, nil, err
	}
	//
	if solver.CheckSat(differs) != gosmt.RESULT_SAT {
		return true, nil, nil
	}
	// Disagreement found; reconstruct the witnessing input.
	model := solver.Model()
	//
	counterexample := &Counterexample{
		Inputs: uint8(modelValue(model, util.NewPath("in"))),
		FXA:    modelValue(model, util.NewPath("fxa")) == 1,
		FXB:    modelValue(model, util.NewPath("fxb")) == 1,
	}
	//
	counterexample.First = first.Eval(counterexample.Inputs, counterexample.FXA, counterexample.FXB)
	counterexample.Second = second.Eval(counterexample.Inputs, counterexample.FXA, counterexample.FXB)
	//
	log.Debugf("configurations disagree on %s", counterexample)
	//
	return false, counterexample, nil
}

// decodeConfig instantiates a concretely configured slice and decodes it over
// the given inputs.
func decodeConfig(design *lattice.Design, name string, config tt.SliceConfig,
	inputs, fxa, fxb *gosmt.BVExprPtr) (lattice.Outputs, error) {
	slice := lattice.NewSliceFromConfig(design, util.NewPath(name),
		uint16(config.Lut0), uint16(config.Lut1), config.PfuMux, config.L6Mux21)
	//
	return slice.Decode(inputs, fxa, fxb)
}

// outputsDiffer builds a term holding iff some output of the two slices
// differs.
func outputsDiffer(builder *gosmt.ExprBuilder, first, second lattice.Outputs) (*gosmt.BoolExprPtr, error) {
	pairs := []struct {
		first  *gosmt.BVExprPtr
		second *gosmt.BVExprPtr
	}{
		{first.F0, second.F0},
		{first.F1, second.F1},
		{first.OFX0, second.OFX0},
		{first.OFX1, second.OFX1},
	}
	//
	differs := builder.BoolVal(false)
	//
	for _, pair := range pairs {
		eq, err := builder.Eq(pair.first, pair.second)
		if err != nil {
			return nil, err
		}
		//
		ne, err := builder.BoolNot(eq)
		if err != nil {
			return nil, err
		}
		//
		if differs, err = builder.BoolOr(differs, ne); err != nil {
			return nil, err
		}
	}
	//
	return differs, nil
}
