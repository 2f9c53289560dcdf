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

// LUT4 models one 4-input lookup table.  Its 16-bit configuration value is
// fixed at construction time, either as a free symbol (when the configuration
// is the unknown being solved for) or as a constant (when checking a known
// bitstream).  The configuration never changes afterwards; each invocation of
// Decode builds a fresh output term over it.
type LUT4 struct {
	path   util.Path
	design *Design
	init   *gosmt.BVExprPtr
}

// NewLUT4 constructs a lookup table whose configuration is a free 16-bit
// symbol named "<path>/init".
func NewLUT4(design *Design, path util.Path) (*LUT4, error) {
	init, err := design.BitVec(path.Extend("init"), Lut4Width)
	if err != nil {
		return nil, err
	}
	//
	return &LUT4{path, design, init}, nil
}

// NewLUT4FromConfig constructs a lookup table with a fixed, concrete
// configuration.
func NewLUT4FromConfig(design *Design, path util.Path, init uint16) *LUT4 {
	return &LUT4{path, design, design.Builder().BVV(int64(init), Lut4Width)}
}

// Path returns the hierarchical position of this lookup table.
func (p *LUT4) Path() util.Path {
	return p.path
}

// Init returns this lookup table's configuration term.
func (p *LUT4) Init() *gosmt.BVExprPtr {
	return p.init
}

// Decode computes the table output for the four given select inputs, with a
// the most significant bit of the truth-table index.
func (p *LUT4) Decode(a, b, c, d *gosmt.BoolExprPtr) (*gosmt.BVExprPtr, error) {
	return Lut4(p.design.Builder(), p.init, a, b, c, d)
}
