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

	"github.com/uwsampl/churchroad/pkg/lattice/tt"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] config_file",
	Short: "Evaluate a slice configuration concretely.",
	Long: `Evaluate a slice configuration over concrete inputs, printing the four
	outputs.  Without --inputs, all 256 general input combinations are printed
	for the given fast-carry inputs.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		config := readConfigFile(args[0])
		fxa := GetFlag(cmd, "fxa")
		fxb := GetFlag(cmd, "fxb")
		inputs := GetInt(cmd, "inputs")
		//
		if inputs >= 0 {
			if inputs > 255 {
				fmt.Printf("inputs out of range: %d\n", inputs)
				os.Exit(1)
			}
			//
			printOutputs(config, uint8(inputs), fxa, fxb)
		} else {
			for i := 0; i < 256; i++ {
				printOutputs(config, uint8(i), fxa, fxb)
			}
		}
	},
}

func printOutputs(config tt.SliceConfig, inputs uint8, fxa, fxb bool) {
	outputs := config.Eval(inputs, fxa, fxb)
	//
	fmt.Printf("in=%08b fxa=%s fxb=%s | f0=%s f1=%s ofx0=%s ofx1=%s\n", inputs,
		bit(fxa), bit(fxb), bit(outputs.F0), bit(outputs.F1), bit(outputs.OFX0), bit(outputs.OFX1))
}

func bit(value bool) string {
	if value {
		return "1"
	}
	//
	return "0"
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Int("inputs", -1, "evaluate a single general input value")
	evalCmd.Flags().Bool("fxa", false, "value of the FXA fast-carry input")
	evalCmd.Flags().Bool("fxb", false, "value of the FXB fast-carry input")
}
