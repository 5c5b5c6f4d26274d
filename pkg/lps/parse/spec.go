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
package parse

import (
	"fmt"
	"strings"

	"github.com/consensys/go-mcrl2/pkg/data"
	"github.com/consensys/go-mcrl2/pkg/lps"
	"github.com/consensys/go-mcrl2/pkg/process"
)

// Spec is the result of parsing a .lin file: the declared sorts and actions,
// the communication function with its optional allow/block lists, and the
// linear process itself.
type Spec struct {
	// Sorts declared in the specification
	Sorts []data.NamedSort
	// Actions declared, by name
	Actions map[string][]data.Sort
	// Communication rules
	Rules []process.CommunicationRule
	// Allow list (empty when absent)
	Allow []process.NameMultiset
	// Block list (empty when absent)
	Block []string
	// Process described by the proc declarations
	Process *lps.LinearProcess
}

// Label returns the declared action label for the given name.
func (s *Spec) Label(name string) (process.ActionLabel, error) {
	sorts, ok := s.Actions[name]
	if !ok {
		return process.ActionLabel{}, fmt.Errorf("undeclared action \"%s\"", name)
	}
	//
	return process.NewActionLabel(name, sorts), nil
}

// ParseCommRule parses a standalone communication rule of the form
// "a|b -> c", as used in job files.
func ParseCommRule(text string) (process.CommunicationRule, error) {
	var empty process.CommunicationRule
	//
	parts := strings.Split(text, "->")
	if len(parts) != 2 {
		return empty, fmt.Errorf("malformed communication rule \"%s\"", text)
	}
	//
	lhs := splitNames(parts[0])
	rhs := strings.TrimSpace(parts[1])
	//
	if len(lhs) < 2 || rhs == "" || strings.ContainsAny(rhs, "| \t") {
		return empty, fmt.Errorf("malformed communication rule \"%s\"", text)
	}
	//
	return process.NewCommunicationRule(lhs, rhs), nil
}

// ParseNameMultiset parses a standalone name multiset of the form "a|b", as
// used in job files.
func ParseNameMultiset(text string) (process.NameMultiset, error) {
	names := splitNames(text)
	//
	if len(names) == 0 {
		return nil, fmt.Errorf("malformed multi-action label \"%s\"", text)
	}
	//
	for _, n := range names {
		if n == "" {
			return nil, fmt.Errorf("malformed multi-action label \"%s\"", text)
		}
	}
	//
	return process.NewNameMultiset(names...), nil
}

func splitNames(text string) []string {
	var names []string
	//
	for _, n := range strings.Split(text, "|") {
		names = append(names, strings.TrimSpace(n))
	}
	//
	return names
}
