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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/uwsampl/churchroad/pkg/solve"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] config_file config_file",
	Short: "Check two slice configurations for behavioural equivalence.",
	Long: `Check whether two slice configurations produce identical outputs on every
	input combination.  If not, an input on which they disagree is reported.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		first := readConfigFile(args[0])
		second := readConfigFile(args[1])
		//
		equivalent, counterexample, err := solve.Equivalent(first, second)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		if equivalent {
			fmt.Println("equivalent")
		} else {
			fmt.Printf("not equivalent: %s\n", counterexample)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
