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

// Design encapsulates a single solver context in which symbolic primitives
// are instantiated.  It owns the expression builder through which all terms
// are constructed, along with a registry of every named symbol created so
// far.  The registry guarantees that two components can never accidentally
// declare symbols under the same name, which would otherwise silently alias
// two unrelated values in the solver.
type Design struct {
	builder *gosmt.ExprBuilder
	// Maps each declared symbol name to its width in bits.
	symbols map[string]uint
}

// NewDesign constructs an empty design with a fresh expression builder.
func NewDesign() *Design {
	return &Design{
		builder: gosmt.NewExprBuilder(),
		symbols: map[string]uint{},
	}
}

// NewDesignWithBuilder constructs an empty design around an existing
// expression builder.  This is used when the builder is owned by a solver,
// such that constraints over the design can be handed to it directly.
func NewDesignWithBuilder(builder *gosmt.ExprBuilder) *Design {
	return &Design{
		builder: builder,
		symbols: map[string]uint{},
	}
}

// Builder returns the expression builder underlying this design.
func (p *Design) Builder() *gosmt.ExprBuilder {
	return p.builder
}

// BitVec declares a fresh bit-vector symbol of the given width, named after
// the given path.  This fails if a symbol of the same name was already
// declared within this design.
func (p *Design) BitVec(path util.Path, width uint) (*gosmt.BVExprPtr, error) {
	name := path.String()
	//
	if w, ok := p.symbols[name]; ok {
		return nil, fmt.Errorf("symbol %q already declared (width %d)", name, w)
	}
	//
	p.symbols[name] = width
	//
	return p.builder.BVS(name, width), nil
}

// Bool declares a fresh boolean symbol named after the given path.  The
// underlying solver library represents free booleans as 1-bit vectors, hence
// this declares a 1-bit symbol and compares it against one.
func (p *Design) Bool(path util.Path) (*gosmt.BoolExprPtr, error) {
	bv, err := p.BitVec(path, 1)
	if err != nil {
		return nil, err
	}
	//
	return p.builder.Eq(bv, p.builder.BVV(1, 1))
}

// IsDeclared checks whether a symbol of the given name exists within this
// design.
func (p *Design) IsDeclared(name string) bool {
	_, ok := p.symbols[name]
	return ok
}
