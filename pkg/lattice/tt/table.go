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

// Package tt provides concrete evaluation of slice configurations, as the
// reference counterpart of the symbolic model.  Where the symbolic model
// answers "which configuration behaves like this", these truth tables answer
// "how does this configuration behave", bit for bit.
package tt

import (
	"github.com/bits-and-blooms/bitset"
)

// LUT4 is a concrete lookup-table configuration, one truth-table bit per
// combination of the four select inputs.
type LUT4 uint16

// Bit returns entry idx of the truth table, where idx is formed from the four
// select inputs as (a<<3)|(b<<2)|(c<<1)|d.
func (p LUT4) Bit(idx uint) bool {
	return (p>>(idx&0xf))&1 == 1
}

// Decode computes the table output for the four given select inputs, with a
// the most significant bit of the truth-table index.
func (p LUT4) Decode(a, b, c, d bool) bool {
	var idx uint
	//
	if a {
		idx |= 8
	}
	//
	if b {
		idx |= 4
	}
	//
	if c {
		idx |= 2
	}
	//
	if d {
		idx |= 1
	}
	//
	return p.Bit(idx)
}

// SliceConfig is the concrete configuration of one slice: two truth tables
// and two multiplexer select lines.
type SliceConfig struct {
	// Truth table of the lookup table decoding input bits 7-4.
	Lut0 LUT4 `yaml:"lut0"`
	// Truth table of the lookup table decoding input bits 3-0.
	Lut1 LUT4 `yaml:"lut1"`
	// Select line of the multiplexer producing OFX0.
	PfuMux bool `yaml:"pfumx"`
	// Select line of the multiplexer producing OFX1.
	L6Mux21 bool `yaml:"l6mux21"`
}

// Outputs are the concrete values of the four slice outputs for one input
// combination.
type Outputs struct {
	F0   bool
	F1   bool
	OFX0 bool
	OFX1 bool
}

// Eval computes the four slice outputs for an 8-bit general input and two
// fast-carry inputs.  Input bits 7-4 feed the first lookup table (bit 7 being
// its most significant select) and bits 3-0 the second.
func (p SliceConfig) Eval(inputs uint8, fxa, fxb bool) Outputs {
	var outputs Outputs
	//
	outputs.F0 = p.Lut0.Bit(uint(inputs) >> 4)
	outputs.F1 = p.Lut1.Bit(uint(inputs) & 0xf)
	//
	if p.PfuMux {
		outputs.OFX0 = outputs.F0
	} else {
		outputs.OFX0 = outputs.F1
	}
	//
	if p.L6Mux21 {
		outputs.OFX1 = fxa
	} else {
		outputs.OFX1 = fxb
	}
	//
	return outputs
}

// nCombinations is the number of distinct input combinations of one slice
// (eight general input bits plus two fast-carry bits).
const nCombinations = 1 << 10

// OutputTable enumerates the slice outputs for every input combination,
// packing them into one bitset of four bits per combination (F0, F1, OFX0,
// OFX1 in that order).  Two configurations are behaviourally equivalent iff
// their output tables are equal.
func (p SliceConfig) OutputTable() *bitset.BitSet {
	table := bitset.New(4 * nCombinations)
	//
	for i := uint(0); i < nCombinations; i++ {
		inputs := uint8(i >> 2)
		fxa := i&2 != 0
		fxb := i&1 != 0
		//
		outputs := p.Eval(inputs, fxa, fxb)
		//
		table.SetTo(4*i, outputs.F0)
		table.SetTo(4*i+1, outputs.F1)
		table.SetTo(4*i+2, outputs.OFX0)
		table.SetTo(4*i+3, outputs.OFX1)
	}
	//
	return table
}

// Equivalent checks whether two configurations produce identical outputs for
// every input combination.  Distinct configurations can be equivalent, e.g.
// when both truth tables are constant zero the PfuMux select line has no
// observable effect.
func (p SliceConfig) Equivalent(other SliceConfig) bool {
	return p.OutputTable().Equal(other.OutputTable())
}
