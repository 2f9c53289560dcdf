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

// Package lattice provides symbolic models of the combinational primitives
// found in a Lattice FPGA logic slice: 4-input lookup tables (LUT4s), 2-to-1
// multiplexers, and the slice which composes them.  All values are terms over
// an external constraint solver's expression language, such that questions
// about a primitive's configuration (e.g. which LUT truth table is consistent
// with observed behaviour) become satisfiability queries.
package lattice

import (
	"fmt"

	"github.com/borzacchiello/gosmt"
)

// Lut4Width is the width of a LUT4 configuration value, i.e. one truth-table
// bit per combination of the four select inputs.
const Lut4Width = 16

// Lut4 computes the output of a 4-input lookup table with the given 16-bit
// configuration.  The four select inputs are decoded MSB-first: a is the most
// significant bit of the truth-table index and d the least significant.  The
// decode proceeds as a binary tree of conditional selects, halving the table
// at each stage exactly as the hardware does:
//
//	a picks bits 15-8 or 7-0 of init,
//	b picks the upper or lower four bits of that half,
//	c picks the upper or lower pair of that quarter,
//	d picks one bit of that pair.
//
// The result is a 1-bit vector equal to init[(a<<3)|(b<<2)|(c<<1)|d].
func Lut4(builder *gosmt.ExprBuilder, init *gosmt.BVExprPtr, a, b, c, d *gosmt.BoolExprPtr) (*gosmt.BVExprPtr, error) {
	if init.Size() != Lut4Width {
		return nil, fmt.Errorf("lut4 configuration must be %d bits wide, got %d", Lut4Width, init.Size())
	}
	//
	tmp, err := selectHalf(builder, a, init, 15, 8, 7, 0)
	if err == nil {
		tmp, err = selectHalf(builder, b, tmp, 7, 4, 3, 0)
	}
	//
	if err == nil {
		tmp, err = selectHalf(builder, c, tmp, 3, 2, 1, 0)
	}
	//
	if err == nil {
		tmp, err = selectHalf(builder, d, tmp, 1, 1, 0, 0)
	}
	//
	return tmp, err
}

// selectHalf extracts one of two bit ranges of x, based on a boolean guard.
func selectHalf(builder *gosmt.ExprBuilder, guard *gosmt.BoolExprPtr, x *gosmt.BVExprPtr,
	hi1, lo1, hi0, lo0 uint) (*gosmt.BVExprPtr, error) {
	upper, err := builder.Extract(x, hi1, lo1)
	if err != nil {
		return nil, err
	}
	//
	lower, err := builder.Extract(x, hi0, lo0)
	if err != nil {
		return nil, err
	}
	//
	return builder.ITE(guard, upper, lower)
}

// Mux selects between two equally sized terms: a when the selector holds,
// otherwise b.
func Mux(builder *gosmt.ExprBuilder, sel *gosmt.BoolExprPtr, a, b *gosmt.BVExprPtr) (*gosmt.BVExprPtr, error) {
	if a.Size() != b.Size() {
		return nil, fmt.Errorf("mux operands have mismatched widths (%d vs %d)", a.Size(), b.Size())
	}
	//
	return builder.ITE(sel, a, b)
}

// ExtractBits converts the bit range [high,low] of x into booleans, one per
// bit position from high down to low, where each boolean holds iff the
// corresponding bit of x is one.
func ExtractBits(builder *gosmt.ExprBuilder, x *gosmt.BVExprPtr, high, low uint) ([]*gosmt.BoolExprPtr, error) {
	if high < low {
		return nil, fmt.Errorf("invalid bit range [%d,%d]", high, low)
	} else if high >= x.Size() {
		return nil, fmt.Errorf("bit range [%d,%d] exceeds width %d", high, low, x.Size())
	}
	//
	bits := make([]*gosmt.BoolExprPtr, 0, high-low+1)
	//
	for i := int(high); i >= int(low); i-- {
		xi, err := builder.Extract(x, uint(i), uint(i))
		if err != nil {
			return nil, err
		}
		//
		bit, err := builder.Eq(xi, builder.BVV(1, 1))
		if err != nil {
			return nil, err
		}
		//
		bits = append(bits, bit)
	}
	//
	return bits, nil
}
