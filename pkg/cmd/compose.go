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
	"github.com/consensys/go-mcrl2/pkg/lps/parse"
	"github.com/consensys/go-mcrl2/pkg/process"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var composeCmd = &cobra.Command{
	Use:   "compose [flags] spec_file",
	Short: "apply the communication composition to a linear process.",
	Long: `Apply the communication operator of the given specification to every action
	 summand, optionally fused with the allow or block operator.  The composed
	 process is printed, or written back in the .lin format with --output.`,
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
		// Parse specification
		spec := ReadSpecFile(args[0])
		cfg := buildConfig(cmd, spec)
		// Apply the composition
		stats, err := comm.Compose(cfg, spec.Process)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		if GetFlag(cmd, "stats") {
			fmt.Printf("disallowed summands: %d\n", stats.Disallowed)
			fmt.Printf("blocked summands: %d\n", stats.Blocked)
			fmt.Printf("summands with false condition: %d\n", stats.FalseCondition)
			fmt.Printf("new summands added: %d\n", stats.Added)
		}
		// Write out
		if output := GetString(cmd, "output"); output != "" {
			if err := os.WriteFile(output, []byte(RenderSpec(spec, spec.Process)), 0644); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		} else {
			NewPrinter().Print(spec.Process)
		}
	},
}

// buildConfig assembles the composition configuration from the specification,
// the optional job file and the command-line flags.
func buildConfig(cmd *cobra.Command, spec *parse.Spec) comm.Config {
	cfg := comm.Config{
		Rules:              spec.Rules,
		AllowList:          spec.Allow,
		BlockList:          spec.Block,
		IsAllow:            GetFlag(cmd, "allow"),
		IsBlock:            GetFlag(cmd, "block"),
		NoSumelm:           GetFlag(cmd, "no-sumelm"),
		NoDeltaElimination: GetFlag(cmd, "no-delta-elimination"),
		IgnoreTime:         GetFlag(cmd, "ignore-time"),
		Termination:        terminationAction(GetString(cmd, "termination")),
		Rewriter:           data.NewNormaliser(),
	}
	// Job file settings override the specification
	if filename := GetString(cmd, "job"); filename != "" {
		job := ReadJobFile(filename)
		//
		if len(job.Comm) != 0 {
			cfg.Rules = job.Rules()
		}
		//
		if len(job.Allow) != 0 {
			cfg.AllowList = job.AllowList()
			cfg.IsAllow = true
		}
		//
		if len(job.Block) != 0 {
			cfg.BlockList = job.Block
			cfg.IsBlock = true
		}
		//
		if job.Termination != "" {
			cfg.Termination = terminationAction(job.Termination)
		}
		//
		cfg.NoSumelm = cfg.NoSumelm || job.NoSumelm
		cfg.NoDeltaElimination = cfg.NoDeltaElimination || job.NoDeltaElimination
		cfg.IgnoreTime = cfg.IgnoreTime || job.IgnoreTime
	}
	//
	if cfg.IsAllow && cfg.IsBlock {
		fmt.Println("--allow and --block are mutually exclusive")
		os.Exit(2)
	}
	//
	if (cfg.IsAllow || cfg.IsBlock) && (!cfg.IgnoreTime || cfg.NoDeltaElimination) {
		fmt.Println("inline allow/block requires --ignore-time and delta elimination")
		os.Exit(2)
	}
	//
	return cfg
}

func terminationAction(name string) process.Action {
	if name == "" {
		return process.Action{}
	}
	//
	return process.NewAction(process.NewActionLabel(name, nil))
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(composeCmd)
	composeCmd.Flags().Bool("allow", false, "apply the allow list inline")
	composeCmd.Flags().Bool("block", false, "apply the block list inline")
	composeCmd.Flags().Bool("no-sumelm", false, "disable sum elimination on new summands")
	composeCmd.Flags().Bool("no-delta-elimination", false, "disable merging of deadlock summands")
	composeCmd.Flags().Bool("ignore-time", false, "treat the process as untimed")
	composeCmd.Flags().Bool("stats", false, "report summand statistics")
	composeCmd.Flags().String("termination", "", "name of the termination action")
	composeCmd.Flags().StringP("job", "j", "", "read settings from a YAML job file")
	composeCmd.Flags().StringP("output", "o", "", "write the composed process to a file")
}
