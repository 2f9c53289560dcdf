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
	"gopkg.in/yaml.v3"

	"github.com/uwsampl/churchroad/pkg/solve"
)

var recoverCmd = &cobra.Command{
	Use:   "recover [flags] observations_file",
	Short: "Recover a slice configuration from observed behaviour.",
	Long: `Recover a slice configuration (two LUT4 truth tables and two multiplexer
	select lines) consistent with a set of observed input/output samples, given
	as a YAML list of observations.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		observations := readObservationsFile(args[0])
		//
		recovery, err := solve.Recover(observations)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		if !recovery.Unique {
			log.Warn("observations underconstrain the slice; reporting one consistent configuration")
		}
		//
		bytes, err := yaml.Marshal(recovery.Config)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Print(string(bytes))
	},
}

func init() {
	rootCmd.AddCommand(recoverCmd)
}
