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
package verilog

import (
	"strings"
	"testing"

	"github.com/uwsampl/churchroad/pkg/lattice/tt"
)

func Test_Emit_01(t *testing.T) {
	config := tt.SliceConfig{Lut0: 0xcafe, Lut1: 0x0002, PfuMux: true, L6Mux21: false}
	//
	text := Emit("slice_r4c7", config)
	//
	checkContains(t, text, "module slice_r4c7 (")
	checkContains(t, text, "LUT4 #(.INIT(16'hCAFE)) lut0 (.A(in[7]), .B(in[6]), .C(in[5]), .D(in[4]), .Z(f0));")
	checkContains(t, text, "LUT4 #(.INIT(16'h0002)) lut1 (.A(in[3]), .B(in[2]), .C(in[1]), .D(in[0]), .Z(f1));")
	checkContains(t, text, "assign ofx0 = f0;")
	checkContains(t, text, "assign ofx1 = fxb;")
	checkContains(t, text, "endmodule")
}

func Test_Emit_02(t *testing.T) {
	config := tt.SliceConfig{PfuMux: false, L6Mux21: true}
	//
	text := Emit("slice", config)
	//
	checkContains(t, text, "assign ofx0 = f1;")
	checkContains(t, text, "assign ofx1 = fxa;")
}

func checkContains(t *testing.T, text, line string) {
	if !strings.Contains(text, line) {
		t.Errorf("missing %q in:\n%s", line, text)
	}
}
