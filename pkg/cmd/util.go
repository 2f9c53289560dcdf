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
	"gopkg.in/yaml.v3"

	"github.com/uwsampl/churchroad/pkg/lattice/tt"
	"github.com/uwsampl/churchroad/pkg/solve"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected int, or panic if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// readConfigFile parses a slice configuration from a YAML file.
func readConfigFile(filename string) tt.SliceConfig {
	var config tt.SliceConfig
	//
	bytes, err := os.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, &config)
		if err == nil {
			return config
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return config
}

// readObservationsFile parses a list of slice observations from a YAML file.
func readObservationsFile(filename string) []solve.Observation {
	var observations []solve.Observation
	//
	bytes, err := os.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, &observations)
		if err == nil {
			return observations
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}
