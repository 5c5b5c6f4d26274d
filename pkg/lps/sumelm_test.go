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
	"testing"

	"github.com/consensys/go-mcrl2/pkg/data"
	"github.com/consensys/go-mcrl2/pkg/process"
)

var sortNat = data.NamedSort("Nat")

func Test_Sumelm_1(t *testing.T) {
	// sum y . (y == 1) -> a(y) becomes (1 == 1) -> a(1)
	y := data.NewVariable("y", sortNat)
	one := data.NewFunctionSymbol("1", sortNat)
	//
	summand := ActionSummand{
		SumVars:     []*data.Variable{y},
		Condition:   data.EqualTo(y, one),
		MultiAction: process.MultiAction{natAction("a", y)},
	}
	//
	if !Sumelm(&summand) {
		t.Fatal("expected sumelm to fire")
	}
	//
	if len(summand.SumVars) != 0 {
		t.Errorf("summation variable not removed: %v", summand.SumVars)
	}
	//
	if !summand.MultiAction[0].Arguments()[0].Equals(one) {
		t.Errorf("argument not substituted: %s", summand.MultiAction[0])
	}
	// Residual condition folds to true under the ground rewriter
	cond := data.NewNormaliser().Rewrite(summand.Condition)
	if !data.IsTrue(cond) {
		t.Errorf("residual condition %s", cond)
	}
}

func Test_Sumelm_2(t *testing.T) {
	// sum y . (x == y) -> a(y) . P(x := y) becomes (x == x) -> a(x) . P(x := x)
	x := data.NewVariable("x", sortNat)
	y := data.NewVariable("y", sortNat)
	//
	summand := ActionSummand{
		SumVars:     []*data.Variable{y},
		Condition:   data.EqualTo(x, y),
		MultiAction: process.MultiAction{natAction("a", y)},
		NextState:   []Assignment{{x, y}},
	}
	//
	if !Sumelm(&summand) {
		t.Fatal("expected sumelm to fire")
	}
	//
	if !summand.NextState[0].Value.Equals(x) {
		t.Errorf("next state not substituted: %s", summand.NextState[0].Value)
	}
}

func Test_Sumelm_3(t *testing.T) {
	// No equality on a summation variable; nothing happens
	x := data.NewVariable("x", sortNat)
	y := data.NewVariable("y", sortNat)
	one := data.NewFunctionSymbol("1", sortNat)
	//
	summand := ActionSummand{
		SumVars:     []*data.Variable{y},
		Condition:   data.EqualTo(x, one),
		MultiAction: process.MultiAction{natAction("a", y)},
	}
	//
	if Sumelm(&summand) {
		t.Error("sumelm should not fire")
	}
}

func Test_Sumelm_4(t *testing.T) {
	// y == y fixes nothing (y occurs on both sides)
	y := data.NewVariable("y", sortNat)
	//
	summand := ActionSummand{
		SumVars:     []*data.Variable{y},
		Condition:   data.EqualTo(y, y),
		MultiAction: process.MultiAction{natAction("a", y)},
	}
	//
	if Sumelm(&summand) {
		t.Error("sumelm should not fire")
	}
}

func Test_Sumelm_5(t *testing.T) {
	// Chained elimination: sum y, z . (y == 1) && (z == y) -> a(z)
	y := data.NewVariable("y", sortNat)
	z := data.NewVariable("z", sortNat)
	one := data.NewFunctionSymbol("1", sortNat)
	//
	summand := ActionSummand{
		SumVars:     []*data.Variable{y, z},
		Condition:   data.And(data.EqualTo(y, one), data.EqualTo(z, y)),
		MultiAction: process.MultiAction{natAction("a", z)},
	}
	//
	if !Sumelm(&summand) {
		t.Fatal("expected sumelm to fire")
	}
	//
	if len(summand.SumVars) != 0 {
		t.Errorf("summation variables left: %v", summand.SumVars)
	}
	//
	if !summand.MultiAction[0].Arguments()[0].Equals(one) {
		t.Errorf("argument not substituted through: %s", summand.MultiAction[0])
	}
}

func natAction(name string, arg data.Expression) process.Action {
	label := process.NewActionLabel(name, []data.Sort{sortNat})
	return process.NewAction(label, arg)
}
