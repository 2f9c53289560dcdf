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
	"github.com/borzacchiello/gosmt"
	"github.com/uwsampl/churchroad/pkg/util"
)

// MUX models one 2-to-1 multiplexer whose select line is fixed at
// construction time, either as a free symbol or as a constant.  As with
// lookup tables, the select line is the configuration being modelled, not a
// runtime input.
type MUX struct {
	path   util.Path
	design *Design
	// Select line as a boolean term.
	sel *gosmt.BoolExprPtr
	// Underlying 1-bit symbol for the select line, or nil when the select
	// line is a constant.
	selSym *gosmt.BVExprPtr
}

// NewMUX constructs a multiplexer whose select line is a free boolean symbol
// named "<path>/sel".
func NewMUX(design *Design, path util.Path) (*MUX, error) {
	selSym, err := design.BitVec(path.Extend("sel"), 1)
	if err != nil {
		return nil, err
	}
	//
	sel, err := design.Builder().Eq(selSym, design.Builder().BVV(1, 1))
	if err != nil {
		return nil, err
	}
	//
	return &MUX{path, design, sel, selSym}, nil
}

// NewMUXFromConfig constructs a multiplexer with a fixed select line.
func NewMUXFromConfig(design *Design, path util.Path, sel bool) *MUX {
	return &MUX{path, design, design.Builder().BoolVal(sel), nil}
}

// Path returns the hierarchical position of this multiplexer.
func (p *MUX) Path() util.Path {
	return p.path
}

// Sel returns this multiplexer's select line as a boolean term.
func (p *MUX) Sel() *gosmt.BoolExprPtr {
	return p.sel
}

// SelSym returns the 1-bit symbol underlying the select line, or nil when
// the select line is a constant.
func (p *MUX) SelSym() *gosmt.BVExprPtr {
	return p.selSym
}

// Select chooses between two equally sized terms: a when the select line
// holds, otherwise b.
func (p *MUX) Select(a, b *gosmt.BVExprPtr) (*gosmt.BVExprPtr, error) {
	return Mux(p.design.Builder(), p.sel, a, b)
}
