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

	"github.com/consensys/go-mcrl2/pkg/lps/parse"
	"github.com/consensys/go-mcrl2/pkg/process"
	"gopkg.in/yaml.v2"
)

// Job bundles the settings of one composition run, so that a fixed pipeline
// can be replayed without repeating command-line flags.  Settings given in
// the job file override those of the specification.
type Job struct {
	// Comm lists communication rules ("a|b -> c")
	Comm []string `yaml:"comm"`
	// Allow lists permitted multi-action labels ("a|b")
	Allow []string `yaml:"allow"`
	// Block lists forbidden action names
	Block []string `yaml:"block"`
	// Termination names the termination action
	Termination string `yaml:"termination"`
	// NoSumelm disables sum elimination
	NoSumelm bool `yaml:"no-sumelm"`
	// NoDeltaElimination disables deadlock merging
	NoDeltaElimination bool `yaml:"no-delta-elimination"`
	// IgnoreTime marks the process as untimed
	IgnoreTime bool `yaml:"ignore-time"`
}

// ReadJobFile parses a YAML job file.
func ReadJobFile(filename string) *Job {
	var job Job
	//
	bytes, err := os.ReadFile(filename)
	if err == nil {
		if err = yaml.UnmarshalStrict(bytes, &job); err == nil {
			return &job
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// Rules parses the communication rules of this job.
func (j *Job) Rules() []process.CommunicationRule {
	rules := make([]process.CommunicationRule, len(j.Comm))
	//
	for i, text := range j.Comm {
		rule, err := parse.ParseCommRule(text)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		rules[i] = rule
	}
	//
	return rules
}

// AllowList parses the allow list of this job.
func (j *Job) AllowList() []process.NameMultiset {
	list := make([]process.NameMultiset, len(j.Allow))
	//
	for i, text := range j.Allow {
		names, err := parse.ParseNameMultiset(text)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		list[i] = names
	}
	//
	return list
}
