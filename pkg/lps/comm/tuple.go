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
	"fmt"

	"github.com/consensys/go-mcrl2/pkg/data"
	"github.com/consensys/go-mcrl2/pkg/process"
)

// TupleList pairs multi-actions with the conditions under which they arise.
// Conditions of alternatives with distinct outcomes are disjoint by
// construction of the enumeration, and none of them is literally false.
type TupleList struct {
	actions    []process.MultiAction
	conditions []data.Expression
}

// Size returns the number of alternatives in this list.
func (l *TupleList) Size() uint {
	if len(l.actions) != len(l.conditions) {
		panic("tuple list actions and conditions out of step")
	}
	//
	return uint(len(l.actions))
}

// Actions returns the multi-actions of this list.
func (l *TupleList) Actions() []process.MultiAction { return l.actions }

// Conditions returns the guard conditions of this list.
func (l *TupleList) Conditions() []data.Expression { return l.conditions }

func (l *TupleList) String() string {
	s := "{"
	//
	for i := range l.actions {
		if i != 0 {
			s += ", "
		}

		s += fmt.Sprintf("(%s, %s)", l.actions[i], l.conditions[i])
	}
	//
	return s + "}"
}

// addActionCondition extends S with every alternative of L, inserting
// firstaction (unless it is the zero action) into each multi-action and
// strengthening each condition with the given condition.  firstaction goes
// ahead of any actions with an equal label, so equally labelled actions keep
// their original order.  Ownership of L's
// storage transfers to this function: when S is empty the operation reuses
// L's storage outright rather than copying, and in all cases L is cleared.
func addActionCondition(firstaction process.Action, condition data.Expression, l *TupleList, s *TupleList) {
	if data.IsFalse(condition) {
		panic("cannot add an alternative under condition false")
	}
	//
	insert := func(m process.MultiAction) process.MultiAction {
		i := 0
		for i < len(m) && m[i].Cmp(firstaction) < 0 {
			i++
		}
		//
		nm := make(process.MultiAction, 0, len(m)+1)
		return append(append(append(nm, m[:i]...), firstaction), m[i:]...)
	}
	// When S is empty, perform the operation in place on L and move.
	if s.Size() == 0 {
		if !firstaction.IsEmpty() {
			for i, m := range l.actions {
				l.actions[i] = insert(m)
			}
		}
		//
		for i, x := range l.conditions {
			l.conditions[i] = data.And(x, condition)
		}
		//
		*s, *l = *l, TupleList{}
		//
		return
	}
	//
	if firstaction.IsEmpty() {
		s.actions = append(s.actions, l.actions...)
	} else {
		for _, m := range l.actions {
			s.actions = append(s.actions, insert(m))
		}
	}
	//
	for _, x := range l.conditions {
		s.conditions = append(s.conditions, data.And(x, condition))
	}
	//
	*l = TupleList{}
}
