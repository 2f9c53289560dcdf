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
package lattice

import (
	"fmt"

	"github.com/borzacchiello/gosmt"
	"github.com/uwsampl/churchroad/pkg/util"
)

// SliceWidth is the number of general inputs to one slice, i.e. four per
// lookup table.
const SliceWidth = 8

// Slice models the combinational outputs of one logic slice: two lookup
// tables feeding a PFUMX multiplexer, plus an L6MUX21 multiplexer combining
// the fast-carry inputs of adjacent slices.  The slice owns its four
// sub-components, whose paths are derived from its own; it holds no state
// beyond their configurations.
type Slice struct {
	path    util.Path
	design  *Design
	lut0    *LUT4
	lut1    *LUT4
	pfumx   *MUX
	l6mux21 *MUX
}

// Outputs are the four observable combinational outputs of one slice.  All
// four are 1-bit terms.
type Outputs struct {
	// F0 is the output of the first lookup table, decoding input bits 7-4.
	F0 *gosmt.BVExprPtr
	// F1 is the output of the second lookup table, decoding input bits 3-0.
	F1 *gosmt.BVExprPtr
	// OFX0 is the PFUMX output selecting between F0 and F1.
	OFX0 *gosmt.BVExprPtr
	// OFX1 is the L6MUX21 output selecting between the fast-carry inputs.
	OFX1 *gosmt.BVExprPtr
}

// NewSlice constructs a slice whose entire configuration (both truth tables
// and both select lines) consists of free symbols, to be solved for.
func NewSlice(design *Design, path util.Path) (*Slice, error) {
	lut0, err := NewLUT4(design, path.Extend("lut0"))
	if err != nil {
		return nil, err
	}
	//
	lut1, err := NewLUT4(design, path.Extend("lut1"))
	if err != nil {
		return nil, err
	}
	//
	pfumx, err := NewMUX(design, path.Extend("pfumx"))
	if err != nil {
		return nil, err
	}
	//
	l6mux21, err := NewMUX(design, path.Extend("l6mux21"))
	if err != nil {
		return nil, err
	}
	//
	return &Slice{path, design, lut0, lut1, pfumx, l6mux21}, nil
}

// NewSliceFromConfig constructs a slice with a fixed, concrete configuration.
func NewSliceFromConfig(design *Design, path util.Path, lut0, lut1 uint16, pfumx, l6mux21 bool) *Slice {
	return &Slice{
		path:    path,
		design:  design,
		lut0:    NewLUT4FromConfig(design, path.Extend("lut0"), lut0),
		lut1:    NewLUT4FromConfig(design, path.Extend("lut1"), lut1),
		pfumx:   NewMUXFromConfig(design, path.Extend("pfumx"), pfumx),
		l6mux21: NewMUXFromConfig(design, path.Extend("l6mux21"), l6mux21),
	}
}

// Path returns the hierarchical position of this slice.
func (p *Slice) Path() util.Path {
	return p.path
}

// Lut0 returns the lookup table decoding input bits 7-4.
func (p *Slice) Lut0() *LUT4 {
	return p.lut0
}

// Lut1 returns the lookup table decoding input bits 3-0.
func (p *Slice) Lut1() *LUT4 {
	return p.lut1
}

// PfuMux returns the multiplexer producing OFX0.
func (p *Slice) PfuMux() *MUX {
	return p.pfumx
}

// L6Mux21 returns the multiplexer producing OFX1.
func (p *Slice) L6Mux21() *MUX {
	return p.l6mux21
}

// Decode computes the four slice outputs for an 8-bit general input and two
// 1-bit fast-carry inputs.  Input bits 7-4 feed the first lookup table (bit 7
// being its most significant select) and bits 3-0 the second.
func (p *Slice) Decode(inputs, fxa, fxb *gosmt.BVExprPtr) (Outputs, error) {
	var outputs Outputs
	//
	if inputs.Size() != SliceWidth {
		return outputs, fmt.Errorf("slice input must be %d bits wide, got %d", SliceWidth, inputs.Size())
	} else if fxa.Size() != 1 || fxb.Size() != 1 {
		return outputs, fmt.Errorf("fast-carry inputs must be 1 bit wide, got %d and %d", fxa.Size(), fxb.Size())
	}
	//
	builder := p.design.Builder()
	//
	hi, err := ExtractBits(builder, inputs, 7, 4)
	if err != nil {
		return outputs, err
	}
	//
	lo, err := ExtractBits(builder, inputs, 3, 0)
	if err != nil {
		return outputs, err
	}
	//
	if outputs.F0, err = p.lut0.Decode(hi[0], hi[1], hi[2], hi[3]); err != nil {
		return outputs, err
	}
	//
	if outputs.F1, err = p.lut1.Decode(lo[0], lo[1], lo[2], lo[3]); err != nil {
		return outputs, err
	}
	//
	if outputs.OFX0, err = p.pfumx.Select(outputs.F0, outputs.F1); err != nil {
		return outputs, err
	}
	//
	if outputs.OFX1, err = p.l6mux21.Select(fxa, fxb); err != nil {
		return outputs, err
	}
	//
	return outputs, nil
}
