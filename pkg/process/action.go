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
package process

import (
	"fmt"
	"strings"

	"github.com/consensys/go-mcrl2/pkg/data"
)

// Action pairs an action label with a list of argument expressions whose
// sorts match the label's parameter sorts.
type Action struct {
	label ActionLabel
	args  []data.Expression
}

// NewAction constructs an action from the given label and arguments.  The
// argument sorts must match the label.
func NewAction(label ActionLabel, args ...data.Expression) Action {
	if len(args) != len(label.sorts) {
		panic(fmt.Sprintf("action %s applied to %d arguments", label.name, len(args)))
	}
	//
	for i, arg := range args {
		if !arg.Sort().Equals(label.sorts[i]) {
			panic(fmt.Sprintf("argument %d of action %s has sort %s, expected %s",
				i, label.name, arg.Sort(), label.sorts[i]))
		}
	}
	//
	return Action{label, args}
}

// Label returns the label of this action.
func (a Action) Label() ActionLabel { return a.label }

// Arguments returns the argument expressions of this action.
func (a Action) Arguments() []data.Expression { return a.args }

// Name returns the name of this action's label.
func (a Action) Name() string { return a.label.name }

// IsEmpty determines whether this is the zero action.  The zero action is
// used as the "no action" marker when extending tuple lists.
func (a Action) IsEmpty() bool {
	return a.label.IsEmpty() && a.args == nil
}

// Cmp orders actions by their labels only.  Actions with equal labels compare
// equal regardless of their arguments, hence sorting is stable on argument
// content.
func (a Action) Cmp(other Action) int {
	return a.label.Cmp(other.label)
}

// Equals determines whether two actions are identical, including their
// arguments.
func (a Action) Equals(other Action) bool {
	if !a.label.Equals(other.label) || len(a.args) != len(other.args) {
		return false
	}
	//
	for i := range a.args {
		if !a.args[i].Equals(other.args[i]) {
			return false
		}
	}
	//
	return true
}

// EqualSignatures determines whether two actions have the same label and
// pairwise equal argument sorts.
func EqualSignatures(a Action, b Action) bool {
	if !a.label.Equals(b.label) || len(a.args) != len(b.args) {
		return false
	}
	//
	for i := range a.args {
		if !a.args[i].Sort().Equals(b.args[i].Sort()) {
			return false
		}
	}
	//
	return true
}

func (a Action) String() string {
	if len(a.args) == 0 {
		return a.label.name
	}
	//
	var builder strings.Builder
	//
	builder.WriteString(a.label.name)
	builder.WriteString("(")
	//
	for i, arg := range a.args {
		if i != 0 {
			builder.WriteString(", ")
		}

		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}
