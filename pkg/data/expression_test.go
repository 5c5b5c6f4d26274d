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
package data

import (
	"testing"
)

func Test_Application_1(t *testing.T) {
	f := NewFunctionSymbol("f", NewFunctionSort([]Sort{sortNat}, sortNat))
	x := NewVariable("x", sortNat)
	e := NewApplication(f, x)
	//
	if !e.Sort().Equals(sortNat) {
		t.Errorf("application has sort %s", e.Sort())
	}
	//
	if e.String() != "f(x)" {
		t.Errorf("unexpected rendering: %s", e)
	}
}

func Test_Application_2(t *testing.T) {
	// Applying a non-function is a programming error
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	//
	NewApplication(NewVariable("x", sortNat))
}

func Test_Abstraction_1(t *testing.T) {
	x := NewVariable("x", sortNat)
	e := NewAbstraction(FORALL, []*Variable{x}, EqualTo(x, x))
	//
	if !e.Sort().Equals(SortBool) {
		t.Errorf("quantifier has sort %s", e.Sort())
	}
	//
	if e.String() != "forall x: Nat . (x == x)" {
		t.Errorf("unexpected rendering: %s", e)
	}
}

func Test_Abstraction_2(t *testing.T) {
	x := NewVariable("x", sortNat)
	e := NewAbstraction(LAMBDA, []*Variable{x}, x)
	//
	sort, ok := e.Sort().(*FunctionSort)
	if !ok || !sort.Codomain().Equals(sortNat) {
		t.Errorf("lambda has sort %s", e.Sort())
	}
}

func Test_WhereClause_1(t *testing.T) {
	x := NewVariable("x", sortNat)
	one := NewFunctionSymbol("1", sortNat)
	e := NewWhereClause(EqualTo(x, one), []WhereDef{{x, one}})
	//
	if !e.Sort().Equals(SortBool) {
		t.Errorf("where clause has sort %s", e.Sort())
	}
	//
	if e.String() != "(x == 1) whr x = 1 end" {
		t.Errorf("unexpected rendering: %s", e)
	}
	// Definitions bind the body: substituting x leaves it untouched...
	s := Substitution{"x": one}
	if !s.Apply(e).Equals(e) {
		t.Errorf("bound variable substituted: %s", s.Apply(e))
	}
	// ... and x does not occur free
	if Occurs("x", e) {
		t.Error("x should be bound by the where clause")
	}
}

func Test_FunctionSort_1(t *testing.T) {
	s1 := NewFunctionSort([]Sort{sortNat, sortNat}, SortBool)
	s2 := NewFunctionSort([]Sort{sortNat, sortNat}, SortBool)
	s3 := NewFunctionSort([]Sort{sortNat}, SortBool)
	//
	if !s1.Equals(s2) || s1.Equals(s3) || s1.Equals(sortNat) {
		t.Error("function sort equality broken")
	}
	//
	if s1.String() != "Nat # Nat -> Bool" {
		t.Errorf("unexpected rendering: %s", s1)
	}
}
