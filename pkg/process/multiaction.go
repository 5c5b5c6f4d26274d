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
	"strings"

	"github.com/consensys/go-mcrl2/pkg/util/collection/array"
)

// MultiAction is a finite multiset of actions occurring simultaneously,
// represented as a sequence kept sorted on action labels.  The empty
// multi-action represents the silent step.  Multi-actions are never mutated
// in place; Insert returns a fresh sequence.
type MultiAction []Action

// Insert the given action into a multi-action at the unique position which
// preserves the canonical label order, returning a new multi-action.  Actions
// with equal labels are placed adjacently.
func Insert(a Action, m MultiAction) MultiAction {
	return MultiAction(array.Insert(a, m))
}

// Reverse returns a new multi-action whose sequence is the reverse of this
// one.
func Reverse(m MultiAction) MultiAction {
	return MultiAction(array.Reverse(m))
}

// Names returns the sequence of action names of this multi-action, in the
// same order.
func Names(m MultiAction) []string {
	names := make([]string, len(m))
	for i, a := range m {
		names[i] = a.label.name
	}
	//
	return names
}

// Equals determines whether two multi-actions are identical as sorted
// sequences, including action arguments.
func (m MultiAction) Equals(other MultiAction) bool {
	if len(m) != len(other) {
		return false
	}
	//
	for i := range m {
		if !m[i].Equals(other[i]) {
			return false
		}
	}
	//
	return true
}

func (m MultiAction) String() string {
	if len(m) == 0 {
		return TauName
	}
	//
	var builder strings.Builder
	//
	for i, a := range m {
		if i != 0 {
			builder.WriteString("|")
		}

		builder.WriteString(a.String())
	}
	//
	return builder.String()
}
