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
	"testing"

	"github.com/consensys/go-mcrl2/pkg/data"
	"github.com/consensys/go-mcrl2/pkg/process"
)

func Test_AddActionCondition_1(t *testing.T) {
	// Move-when-empty: S takes over L's storage
	var (
		s TupleList
		l = TupleList{
			actions:    []process.MultiAction{multi(act("b", num("1")))},
			conditions: []data.Expression{data.True()},
		}
		backing = l.actions
	)
	//
	addActionCondition(act("a", num("2")), data.True(), &l, &s)
	//
	if l.Size() != 0 {
		t.Error("ownership of L should have transferred")
	}
	//
	if s.Size() != 1 || len(s.actions[0]) != 2 {
		t.Fatalf("unexpected result: %s", &s)
	}
	// Storage reused, not copied
	if &backing[0] != &s.actions[0] {
		t.Error("move-when-empty copied the storage")
	}
}

func Test_AddActionCondition_2(t *testing.T) {
	// Appending to a non-empty S
	x := nv("x")
	s := TupleList{
		actions:    []process.MultiAction{multi(act("c", num("1")))},
		conditions: []data.Expression{data.True()},
	}
	l := TupleList{
		actions:    []process.MultiAction{multi(act("b", num("1")))},
		conditions: []data.Expression{data.True()},
	}
	//
	addActionCondition(act("a", num("2")), data.EqualTo(x, num("1")), &l, &s)
	//
	if s.Size() != 2 {
		t.Fatalf("unexpected result: %s", &s)
	}
	// First alternative untouched
	if len(s.actions[0]) != 1 {
		t.Errorf("existing alternative modified: %s", s.actions[0])
	}
	// Second extended with a and strengthened
	if len(s.actions[1]) != 2 || !s.conditions[1].Equals(data.EqualTo(x, num("1"))) {
		t.Errorf("unexpected alternative: (%s, %s)", s.actions[1], s.conditions[1])
	}
}

func Test_AddActionCondition_3(t *testing.T) {
	// The zero action only strengthens conditions
	x := nv("x")
	var s TupleList
	//
	l := TupleList{
		actions:    []process.MultiAction{multi(act("b", num("1")))},
		conditions: []data.Expression{data.True()},
	}
	//
	addActionCondition(process.Action{}, data.EqualTo(x, num("1")), &l, &s)
	//
	if s.Size() != 1 || len(s.actions[0]) != 1 {
		t.Fatalf("unexpected result: %s", &s)
	}
	//
	if !s.conditions[0].Equals(data.EqualTo(x, num("1"))) {
		t.Errorf("condition not strengthened: %s", s.conditions[0])
	}
}

func Test_AddActionCondition_4(t *testing.T) {
	// Condition false is a programming error
	defer func() {
		if recover() == nil {
			t.Error("expected panic on false condition")
		}
	}()
	//
	var s, l TupleList
	//
	addActionCondition(process.Action{}, data.False(), &l, &s)
}

func Test_TupleList_Size_Panic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on inconsistent tuple list")
		}
	}()
	//
	l := TupleList{actions: []process.MultiAction{{}}}
	l.Size()
}
