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
	"strings"
	"testing"

	"github.com/borzacchiello/gosmt"
	"github.com/uwsampl/churchroad/pkg/lattice"
	"github.com/uwsampl/churchroad/pkg/lattice/tt"
	"github.com/uwsampl/churchroad/pkg/util"
)

func Test_Recover_01(t *testing.T) {
	if _, err := Recover(nil); err == nil {
		t.Error("expected error for empty observations")
	}
}

// Recovering from the complete observation table of a known configuration
// yields a behaviourally equivalent configuration, and the complete table
// pins every configuration symbol down.

func Test_Recover_02(t *testing.T) {
	config := tt.SliceConfig{Lut0: 0xcafe, Lut1: 0x0002, PfuMux: true, L6Mux21: false}
	//
	recovery, err := Recover(observe(config))
	if err != nil {
		t.Fatalf("recovery failed: %s", err)
	}
	//
	if !recovery.Config.Equivalent(config) {
		t.Errorf("recovered configuration %+v not equivalent to %+v", recovery.Config, config)
	}
	//
	if !recovery.Unique {
		t.Error("complete observation table should pin the configuration down")
	}
}

// Contradictory observations cannot have come from a single slice.

func Test_Recover_03(t *testing.T) {
	observation := Observation{Inputs: 0b00000000, F0: false}
	contradiction := observation
	contradiction.F0 = true
	//
	if _, err := Recover([]Observation{observation, contradiction}); err == nil {
		t.Error("expected error for contradictory observations")
	}
}

// Solver-based equivalence agrees with the enumerated truth tables: constant
// zero tables hide the PFUMX select line.

func Test_Equivalent_01(t *testing.T) {
	first := tt.SliceConfig{Lut0: 0, Lut1: 0, PfuMux: false, L6Mux21: true}
	second := tt.SliceConfig{Lut0: 0, Lut1: 0, PfuMux: true, L6Mux21: true}
	//
	equivalent, counterexample, err := Equivalent(first, second)
	if err != nil {
		t.Fatalf("equivalence check failed: %s", err)
	}
	//
	if !equivalent {
		t.Errorf("expected equivalence, got counterexample %s", counterexample)
	}
}

func Test_Equivalent_02(t *testing.T) {
	first := tt.SliceConfig{Lut0: 0x0001}
	second := tt.SliceConfig{Lut0: 0x0003}
	//
	equivalent, counterexample, err := Equivalent(first, second)
	if err != nil {
		t.Fatalf("equivalence check failed: %s", err)
	} else if equivalent {
		t.Fatal("expected inequivalence for differing Lut0")
	}
	// The witness must actually distinguish the two configurations.
	firstOutputs := first.Eval(counterexample.Inputs, counterexample.FXA, counterexample.FXB)
	secondOutputs := second.Eval(counterexample.Inputs, counterexample.FXA, counterexample.FXB)
	//
	if firstOutputs == secondOutputs {
		t.Errorf("counterexample %s does not distinguish the configurations", counterexample)
	}
}

// Configuration symbols are read back out of a model by name; symbols absent
// from the model default to zero.

func Test_ConfigFromModel_01(t *testing.T) {
	design := lattice.NewDesign()
	//
	slice, err := lattice.NewSlice(design, util.NewPath("slice"))
	if err != nil {
		t.Fatalf("slice construction failed: %s", err)
	}
	//
	model := map[string]*gosmt.BVConst{
		"slice/lut0/init":   gosmt.MakeBVConst(0xcafe, lattice.Lut4Width),
		"slice/pfumx/sel":   gosmt.MakeBVConst(1, 1),
		"slice/l6mux21/sel": gosmt.MakeBVConst(0, 1),
	}
	//
	config := configFromModel(slice, model)
	//
	expected := tt.SliceConfig{Lut0: 0xcafe, Lut1: 0, PfuMux: true, L6Mux21: false}
	//
	if config != expected {
		t.Errorf("unexpected configuration: %+v", config)
	}
}

func Test_Counterexample_01(t *testing.T) {
	counterexample := &Counterexample{
		Inputs: 0b00010000,
		FXA:    true,
		First:  tt.Outputs{F0: true},
		Second: tt.Outputs{F1: true},
	}
	//
	text := counterexample.String()
	//
	for _, fragment := range []string{"inputs=00010000", "fxa=true", "fxb=false"} {
		if !strings.Contains(text, fragment) {
			t.Errorf("missing %q in %q", fragment, text)
		}
	}
}

// ============================================================================
// Helpers
// ============================================================================

// observe enumerates the complete observation table of a configuration, one
// observation per combination of the general and fast-carry inputs.
func observe(config tt.SliceConfig) []Observation {
	observations := make([]Observation, 0, 1024)
	//
	for i := uint(0); i < 1024; i++ {
		inputs := uint8(i >> 2)
		fxa := i&2 != 0
		fxb := i&1 != 0
		//
		outputs := config.Eval(inputs, fxa, fxb)
		//
		observations = append(observations, Observation{
			Inputs: inputs,
			FXA:    fxa,
			FXB:    fxb,
			F0:     outputs.F0,
			F1:     outputs.F1,
			OFX0:   outputs.OFX0,
			OFX1:   outputs.OFX1,
		})
	}
	//
	return observations
}
