// Copyright Consensys Software Inc.
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

	"github.com/consensys/go-mcrl2/pkg/data"
	"github.com/consensys/go-mcrl2/pkg/lps/comm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var debugCmd = &cobra.Command{
	Use:   "debug [flags] spec_file",
	Short: "print the enumeration of communication alternatives.",
	Long: `Print, for every action summand of the given specification, all alternatives
	 the communication operator can produce together with their guard conditions.
	 Useful for understanding why a composed process looks the way it does.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		spec := ReadSpecFile(args[0])
		//
		rewriter := data.Rewriter(data.NewNormaliser())
		if GetFlag(cmd, "symbolic") {
			rewriter = data.Identity()
		}
		//
		for i := range spec.Process.ActionSummands {
			summand := &spec.Process.ActionSummands[i]
			//
			alternatives, err := comm.Enumerate(summand.MultiAction, spec.Rules, rewriter)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			fmt.Printf("%s:\n", summand.MultiAction)
			//
			for j := uint(0); j < alternatives.Size(); j++ {
				fmt.Printf("  %s under %s\n", alternatives.Actions()[j], alternatives.Conditions()[j])
			}
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.Flags().Bool("symbolic", false, "keep ground equalities symbolic")
}
