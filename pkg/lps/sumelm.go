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
	"github.com/consensys/go-mcrl2/pkg/data"
	"github.com/consensys/go-mcrl2/pkg/process"
)

// Sumelm removes summation variables which the condition fixes via an
// equality.  A summation variable v with a conjunct v == e (or e == v), where
// v does not occur in e, is substituted by e throughout the summand and
// dropped from the summation variables.  This repeats until no candidate
// remains.  Returns whether anything changed; if so, the caller should
// re-rewrite the condition.
func Sumelm(s *ActionSummand) bool {
	changed := false
	//
	for {
		v, e := findSumelmCandidate(s)
		if v == nil {
			break
		}
		//
		substitute(s, data.Substitution{v.Name(): e})
		removeSumVar(s, v)
		//
		changed = true
	}
	//
	return changed
}

// Find a summation variable fixed by some equality conjunct of the
// condition.  The substituted equality is left in place; it rewrites to true
// afterwards.
func findSumelmCandidate(s *ActionSummand) (*data.Variable, data.Expression) {
	for _, conjunct := range conjunctsOf(s.Condition) {
		lhs, rhs, ok := data.IsEquality(conjunct)
		if !ok {
			continue
		}
		//
		if v := eliminable(s, lhs, rhs); v != nil {
			return v, rhs
		}
		//
		if v := eliminable(s, rhs, lhs); v != nil {
			return v, lhs
		}
	}
	//
	return nil, nil
}

// Check whether lhs is a summation variable which rhs can replace.
func eliminable(s *ActionSummand, lhs data.Expression, rhs data.Expression) *data.Variable {
	v, ok := lhs.(*data.Variable)
	if !ok || data.Occurs(v.Name(), rhs) {
		return nil
	}
	//
	for _, sv := range s.SumVars {
		if sv.Name() == v.Name() && sv.Sort().Equals(v.Sort()) {
			return sv
		}
	}
	//
	return nil
}

// conjunctsOf flattens a conjunction tree into its leaves.
func conjunctsOf(e data.Expression) []data.Expression {
	if lhs, rhs, ok := data.IsConjunction(e); ok {
		return append(conjunctsOf(lhs), conjunctsOf(rhs)...)
	}
	//
	return []data.Expression{e}
}

// Apply a substitution across every component of the summand.
func substitute(s *ActionSummand, sub data.Substitution) {
	s.Condition = sub.Apply(s.Condition)
	s.Time = sub.Apply(s.Time)
	// Multi-action arguments
	actions := make(process.MultiAction, len(s.MultiAction))
	//
	for i, a := range s.MultiAction {
		args := make([]data.Expression, len(a.Arguments()))
		for j, arg := range a.Arguments() {
			args[j] = sub.Apply(arg)
		}

		actions[i] = process.NewAction(a.Label(), args...)
	}
	//
	s.MultiAction = actions
	// Next state
	for i := range s.NextState {
		s.NextState[i].Value = sub.Apply(s.NextState[i].Value)
	}
	// Distribution
	if s.Distribution != nil {
		s.Distribution.Density = sub.Apply(s.Distribution.Density)
	}
}

func removeSumVar(s *ActionSummand, v *data.Variable) {
	vars := make([]*data.Variable, 0, len(s.SumVars))
	//
	for _, sv := range s.SumVars {
		if sv != v {
			vars = append(vars, sv)
		}
	}
	//
	s.SumVars = vars
}
