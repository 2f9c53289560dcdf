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
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uwsampl/churchroad/pkg/verilog"
)

var verilogCmd = &cobra.Command{
	Use:   "verilog [flags] config_file",
	Short: "Render a slice configuration as structural Verilog.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		config := readConfigFile(args[0])
		module := GetString(cmd, "module")
		output := GetString(cmd, "output")
		//
		text := verilog.Emit(module, config)
		//
		if output == "" {
			fmt.Print(text)
		} else if err := os.WriteFile(output, []byte(text), 0644); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(verilogCmd)
	verilogCmd.Flags().String("module", "slice", "name of the emitted Verilog module")
	verilogCmd.Flags().StringP("output", "o", "", "write Verilog to a file instead of stdout")
}
