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
package lps

import (
	"strings"

	"github.com/consensys/go-mcrl2/pkg/data"
	"github.com/consensys/go-mcrl2/pkg/process"
)

// Assignment gives a process parameter its value in the next state.
type Assignment struct {
	// Variable being assigned
	Variable *data.Variable
	// Value assigned to it
	Value data.Expression
}

// Distribution is a stochastic distribution over the given variables with the
// given density expression.
type Distribution struct {
	// Variables the distribution ranges over
	Variables []*data.Variable
	// Density expression
	Density data.Expression
}

// ActionSummand describes one summand of a linear process: under the given
// condition, and for some value of the summation variables, the multi-action
// occurs (optionally at the given time) and the process moves to the next
// state.
type ActionSummand struct {
	// Summation variables
	SumVars []*data.Variable
	// Condition under which the summand is enabled
	Condition data.Expression
	// Multi-action performed
	MultiAction process.MultiAction
	// Timestamp, or nil when untimed
	Time data.Expression
	// Next-state assignments
	NextState []Assignment
	// Stochastic distribution, or nil when deterministic
	Distribution *Distribution
}

// HasTime determines whether this summand carries a timestamp.
func (s *ActionSummand) HasTime() bool { return s.Time != nil }

func (s *ActionSummand) String() string {
	var builder strings.Builder
	//
	writeSumVars(&builder, s.SumVars)
	//
	builder.WriteString(s.Condition.String())
	builder.WriteString(" -> ")
	builder.WriteString(s.MultiAction.String())
	//
	if s.Time != nil {
		builder.WriteString(" @ ")
		builder.WriteString(s.Time.String())
	}
	//
	builder.WriteString(" . P(")
	//
	for i, a := range s.NextState {
		if i != 0 {
			builder.WriteString(", ")
		}

		builder.WriteString(a.Variable.Name())
		builder.WriteString(" := ")
		builder.WriteString(a.Value.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// DeadlockSummand describes a summand which deadlocks (optionally at a given
// time) under the given condition.
type DeadlockSummand struct {
	// Summation variables
	SumVars []*data.Variable
	// Condition under which the deadlock is possible
	Condition data.Expression
	// Timestamp, or nil when untimed
	Time data.Expression
}

// HasTime determines whether this summand carries a timestamp.
func (s *DeadlockSummand) HasTime() bool { return s.Time != nil }

func (s *DeadlockSummand) String() string {
	var builder strings.Builder
	//
	writeSumVars(&builder, s.SumVars)
	//
	builder.WriteString(s.Condition.String())
	builder.WriteString(" -> delta")
	//
	if s.Time != nil {
		builder.WriteString(" @ ")
		builder.WriteString(s.Time.String())
	}
	//
	return builder.String()
}

// LinearProcess bundles the process parameters with the ordered action and
// deadlock summands.
type LinearProcess struct {
	// Process parameters
	Parameters []*data.Variable
	// Action summands, in order
	ActionSummands []ActionSummand
	// Deadlock summands, in order
	DeadlockSummands []DeadlockSummand
}

func writeSumVars(builder *strings.Builder, vars []*data.Variable) {
	if len(vars) == 0 {
		return
	}
	//
	builder.WriteString("sum ")
	//
	for i, v := range vars {
		if i != 0 {
			builder.WriteString(", ")
		}

		builder.WriteString(v.Name())
		builder.WriteString(": ")
		builder.WriteString(v.Sort().String())
	}
	//
	builder.WriteString(" . ")
}
