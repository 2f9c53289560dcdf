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
	"testing"

	"github.com/borzacchiello/gosmt"
)

// Single-bit tables: entry i of table 1<<i is the only one set.

func Test_Lut4_01(t *testing.T) {
	for i := uint(0); i < 16; i++ {
		checkLut4(t, 1<<i)
	}
}

// Degenerate tables.

func Test_Lut4_02(t *testing.T) {
	checkLut4(t, 0x0000)
	checkLut4(t, 0xffff)
}

// The table with only entry one set, i.e. decode holds exactly for
// (a,b,c,d) = (0,0,0,1).

func Test_Lut4_03(t *testing.T) {
	checkLut4(t, 0x0002)
}

// Pseudo-random tables.

func Test_Lut4_04(t *testing.T) {
	seed := uint32(0xdeadbeef)
	//
	for i := 0; i < 256; i++ {
		seed = seed*1664525 + 1013904223
		checkLut4(t, uint16(seed>>16))
	}
}

// Tables must be 16 bits wide.

func Test_Lut4_05(t *testing.T) {
	builder := gosmt.NewExprBuilder()
	f := builder.BoolVal(false)
	//
	if _, err := Lut4(builder, builder.BVV(0, 8), f, f, f, f); err == nil {
		t.Error("expected error for 8-bit table")
	}
}

func Test_Mux_01(t *testing.T) {
	builder := gosmt.NewExprBuilder()
	a := builder.BVS("a", 4)
	b := builder.BVS("b", 4)
	//
	out, err := Mux(builder, builder.BoolVal(true), a, b)
	if err != nil {
		t.Fatalf("mux failed: %s", err)
	} else if out.Id() != a.Id() {
		t.Errorf("mux(1,a,b) is %s, expected a", out)
	}
	//
	out, err = Mux(builder, builder.BoolVal(false), a, b)
	if err != nil {
		t.Fatalf("mux failed: %s", err)
	} else if out.Id() != b.Id() {
		t.Errorf("mux(0,a,b) is %s, expected b", out)
	}
}

// Mux operands must have matching widths.

func Test_Mux_02(t *testing.T) {
	builder := gosmt.NewExprBuilder()
	//
	_, err := Mux(builder, builder.BoolVal(true), builder.BVS("a", 4), builder.BVS("b", 8))
	if err == nil {
		t.Error("expected error for mismatched widths")
	}
}

func Test_ExtractBits_01(t *testing.T) {
	builder := gosmt.NewExprBuilder()
	// 0b10110100
	x := builder.BVV(0xb4, 8)
	//
	bits, err := ExtractBits(builder, x, 7, 4)
	if err != nil {
		t.Fatalf("extract failed: %s", err)
	} else if len(bits) != 4 {
		t.Fatalf("expected 4 bits, got %d", len(bits))
	}
	// MSB first: bits 7,6,5,4 of 0b10110100
	checkBits(t, bits, []bool{true, false, true, true})
}

func Test_ExtractBits_02(t *testing.T) {
	builder := gosmt.NewExprBuilder()
	x := builder.BVV(0xb4, 8)
	//
	bits, err := ExtractBits(builder, x, 3, 0)
	if err != nil {
		t.Fatalf("extract failed: %s", err)
	}
	// MSB first: bits 3,2,1,0 of 0b10110100
	checkBits(t, bits, []bool{false, true, false, false})
}

// Single-bit range.

func Test_ExtractBits_03(t *testing.T) {
	builder := gosmt.NewExprBuilder()
	//
	bits, err := ExtractBits(builder, builder.BVV(0x01, 8), 0, 0)
	if err != nil {
		t.Fatalf("extract failed: %s", err)
	} else if len(bits) != 1 {
		t.Fatalf("expected 1 bit, got %d", len(bits))
	}
	//
	checkBits(t, bits, []bool{true})
}

// Invalid ranges are rejected before any term is built.

func Test_ExtractBits_04(t *testing.T) {
	builder := gosmt.NewExprBuilder()
	x := builder.BVV(0, 8)
	//
	if _, err := ExtractBits(builder, x, 3, 4); err == nil {
		t.Error("expected error for high < low")
	}
	//
	if _, err := ExtractBits(builder, x, 8, 0); err == nil {
		t.Error("expected error for high >= width")
	}
}

// ============================================================================
// Helpers
// ============================================================================

// checkLut4 checks that, for every combination of the four select inputs,
// decoding the given concrete table yields the table entry the inputs index.
func checkLut4(t *testing.T, init uint16) {
	builder := gosmt.NewExprBuilder()
	//
	for idx := uint(0); idx < 16; idx++ {
		out, err := Lut4(builder, builder.BVV(int64(init), Lut4Width),
			builder.BoolVal(idx&8 != 0), builder.BoolVal(idx&4 != 0),
			builder.BoolVal(idx&2 != 0), builder.BoolVal(idx&1 != 0))
		if err != nil {
			t.Fatalf("decode of %04x failed: %s", init, err)
		}
		//
		expected := (init>>idx)&1 == 1
		//
		if actual := constBit(t, out); actual != expected {
			t.Errorf("decode of %04x at index %d gave %t, expected %t", init, idx, actual, expected)
		}
	}
}

// checkBits checks a sequence of boolean terms against expected concrete
// values.
func checkBits(t *testing.T, bits []*gosmt.BoolExprPtr, expected []bool) {
	for i, bit := range bits {
		value, err := bit.GetConst()
		if err != nil {
			t.Fatalf("bit %d is not constant: %s", i, bit)
		}
		//
		if value != expected[i] {
			t.Errorf("bit %d is %t, expected %t", i, value, expected[i])
		}
	}
}

// constBit reads a 1-bit term which must have folded to a constant.
func constBit(t *testing.T, e *gosmt.BVExprPtr) bool {
	value, err := e.GetConst()
	if err != nil {
		t.Fatalf("term is not constant: %s", e)
	}
	//
	return value.AsULong() == 1
}
