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
package comm

import (
	"errors"
	"testing"

	"github.com/consensys/go-mcrl2/pkg/data"
	"github.com/consensys/go-mcrl2/pkg/process"
)

var sortNat = data.NamedSort("Nat")

func Test_CanCommunicate_1(t *testing.T) {
	table := NewCommTable(rules(rule("c", "a", "b")))
	//
	label, ok, err := table.CanCommunicate(multi(act("a", num("1")), act("b", num("1"))))
	//
	if err != nil || !ok {
		t.Fatalf("a|b should communicate (err %v)", err)
	}
	//
	if label.Name() != "c" {
		t.Errorf("expected label c, got %s", label.Name())
	}
	// Sorts taken from the first action
	if !data.EqualSorts(label.Sorts(), []data.Sort{sortNat}) {
		t.Errorf("unexpected sorts: %v", label.Sorts())
	}
}

func Test_CanCommunicate_2(t *testing.T) {
	table := NewCommTable(rules(rule("c", "a", "b")))
	// A strict sub-multiset does not communicate
	checkNotCommunicate(t, table, multi(act("a", num("1"))))
	// Nor does a superset
	checkNotCommunicate(t, table, multi(act("a", num("1")), act("a", num("1")), act("b", num("1"))))
	// Nor an unrelated multi-action
	checkNotCommunicate(t, table, multi(act("d", num("1"))))
}

func Test_CanCommunicate_3(t *testing.T) {
	// First matching rule in declared order wins
	table := NewCommTable([]process.CommunicationRule{
		process.NewCommunicationRule([]string{"a", "b"}, "c"),
		process.NewCommunicationRule([]string{"a", "b"}, "d"),
	})
	//
	label, ok, err := table.CanCommunicate(multi(act("a", num("1")), act("b", num("1"))))
	//
	if err != nil || !ok || label.Name() != "c" {
		t.Errorf("expected c, got %s (ok %v, err %v)", label.Name(), ok, err)
	}
}

func Test_CanCommunicate_Tau(t *testing.T) {
	table := NewCommTable(rules(rule("tau", "a", "b")))
	//
	_, _, err := table.CanCommunicate(multi(act("a", num("1")), act("b", num("1"))))
	//
	var unsupported *UnsupportedCommunicationError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedCommunicationError, got %v", err)
	}
}

func Test_MightCommunicate_1(t *testing.T) {
	table := NewCommTable(rules(rule("c", "a", "b")))
	//
	a := act("a", num("1"))
	b := act("b", num("1"))
	d := act("d", num("1"))
	// a can be completed by b from the tail
	checkMight(t, table, multi(a), []process.Action{b}, true)
	// ... even with noise around it
	checkMight(t, table, multi(a), []process.Action{d, b, d}, true)
	// ... but not without b
	checkMight(t, table, multi(a), []process.Action{d}, false)
	checkMight(t, table, multi(a), nil, false)
	// a|b is already complete
	checkMight(t, table, multi(a, b), nil, true)
}

func Test_MightCommunicate_2(t *testing.T) {
	// Completion consumes tail names in order
	table := NewCommTable(rules(rule("d", "a", "b", "c")))
	//
	a := act("a", num("1"))
	b := act("b", num("1"))
	c := act("c", num("1"))
	//
	checkMight(t, table, multi(a), []process.Action{b, c}, true)
	// Order of the remaining lhs must be respected within the tail
	checkMight(t, table, multi(a), []process.Action{c, b}, false)
	checkMight(t, table, multi(a), []process.Action{b}, false)
}

func Test_MightCommunicate_3(t *testing.T) {
	// A dead rule never completes, a live one may
	table := NewCommTable(rules(rule("x", "a", "b"), rule("y", "a", "c")))
	//
	a := act("a", num("1"))
	c := act("c", num("1"))
	//
	checkMight(t, table, multi(a), []process.Action{c}, true)
	checkMight(t, table, multi(a, c), nil, true)
	checkMight(t, table, multi(c), []process.Action{a}, false)
}

func Test_Match_Scratch_Reset(t *testing.T) {
	// Queries are independent; scratch state is reset every time
	table := NewCommTable(rules(rule("c", "a", "b")))
	//
	a := act("a", num("1"))
	b := act("b", num("1"))
	//
	checkNotCommunicate(t, table, multi(act("d", num("1"))))
	//
	if _, ok, _ := table.CanCommunicate(multi(a, b)); !ok {
		t.Error("scratch state leaked between queries")
	}
}

func checkMight(t *testing.T, table *CommTable, m process.MultiAction, tail []process.Action, expected bool) {
	if actual := table.MightCommunicate(m, tail); actual != expected {
		t.Errorf("MightCommunicate(%s, %v) = %v, expected %v", m, tail, actual, expected)
	}
}

func checkNotCommunicate(t *testing.T, table *CommTable, m process.MultiAction) {
	if _, ok, err := table.CanCommunicate(m); ok || err != nil {
		t.Errorf("%s should not communicate (err %v)", m, err)
	}
}

// ===================================================================
// Test helpers shared across this package
// ===================================================================

// rule constructs a communication rule rhs <- lhs names.
func rule(rhs string, lhs ...string) process.CommunicationRule {
	return process.NewCommunicationRule(lhs, rhs)
}

func rules(rs ...process.CommunicationRule) []process.CommunicationRule {
	return rs
}

// act constructs an action over a single Nat argument.
func act(name string, arg data.Expression) process.Action {
	label := process.NewActionLabel(name, []data.Sort{sortNat})
	return process.NewAction(label, arg)
}

// num constructs a Nat literal.
func num(s string) data.Expression {
	return data.NewFunctionSymbol(s, sortNat)
}

// nv constructs a Nat variable.
func nv(name string) *data.Variable {
	return data.NewVariable(name, sortNat)
}

// multi constructs a multi-action by sorted insertion.
func multi(actions ...process.Action) process.MultiAction {
	m := process.MultiAction{}
	for _, a := range actions {
		m = process.Insert(a, m)
	}
	//
	return m
}
