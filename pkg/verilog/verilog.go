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

// Package verilog renders concrete slice configurations as structural
// Verilog, suitable for resimulation of a recovered configuration against
// the hardware it was probed from.
package verilog

import (
	"fmt"
	"strings"

	"github.com/uwsampl/churchroad/pkg/lattice/tt"
)

// Emit renders one slice configuration as a Verilog module of the given
// name.  The lookup tables become LUT4 instances with INIT parameters; the
// multiplexer select lines are configuration, not signals, so each
// multiplexer folds into an assign of the selected operand.
func Emit(name string, config tt.SliceConfig) string {
	var out strings.Builder
	//
	fmt.Fprintf(&out, "module %s (\n", name)
	out.WriteString("    input [7:0] in,\n")
	out.WriteString("    input fxa,\n")
	out.WriteString("    input fxb,\n")
	out.WriteString("    output f0,\n")
	out.WriteString("    output f1,\n")
	out.WriteString("    output ofx0,\n")
	out.WriteString("    output ofx1\n")
	out.WriteString(");\n")
	//
	fmt.Fprintf(&out, "  LUT4 #(.INIT(16'h%04X)) lut0 (.A(in[7]), .B(in[6]), .C(in[5]), .D(in[4]), .Z(f0));\n",
		uint16(config.Lut0))
	fmt.Fprintf(&out, "  LUT4 #(.INIT(16'h%04X)) lut1 (.A(in[3]), .B(in[2]), .C(in[1]), .D(in[0]), .Z(f1));\n",
		uint16(config.Lut1))
	//
	fmt.Fprintf(&out, "  assign ofx0 = %s;\n", selected(config.PfuMux, "f0", "f1"))
	fmt.Fprintf(&out, "  assign ofx1 = %s;\n", selected(config.L6Mux21, "fxa", "fxb"))
	//
	out.WriteString("endmodule\n")
	//
	return out.String()
}

func selected(sel bool, a, b string) string {
	if sel {
		return a
	}
	//
	return b
}
