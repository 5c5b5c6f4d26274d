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

	"github.com/consensys/go-mcrl2/pkg/data"
)

// TauName is the reserved name of the silent action.  The silent step itself
// is represented by the empty multi-action; a communication rule whose
// right-hand side is tau is rejected during composition.
const TauName = "tau"

// ActionLabel pairs an action name with the sorts of its parameters.  Labels
// are ordered first by name, then by sort signature; this order determines
// the canonical form of multi-actions.
type ActionLabel struct {
	name  string
	sorts []data.Sort
}

// NewActionLabel constructs an action label with the given name and parameter
// sorts.
func NewActionLabel(name string, sorts []data.Sort) ActionLabel {
	return ActionLabel{name, sorts}
}

// Name returns the name of this label.
func (l ActionLabel) Name() string { return l.name }

// Sorts returns the parameter sorts of this label.
func (l ActionLabel) Sorts() []data.Sort { return l.sorts }

// IsEmpty determines whether this is the zero label.
func (l ActionLabel) IsEmpty() bool {
	return l.name == "" && l.sorts == nil
}

// Cmp provides the total order on action labels.
func (l ActionLabel) Cmp(other ActionLabel) int {
	if c := strings.Compare(l.name, other.name); c != 0 {
		return c
	}
	//
	return data.CompareSorts(l.sorts, other.sorts)
}

// Equals determines whether two labels are identical.
func (l ActionLabel) Equals(other ActionLabel) bool {
	return l.name == other.name && data.EqualSorts(l.sorts, other.sorts)
}

func (l ActionLabel) String() string {
	if len(l.sorts) == 0 {
		return l.name
	}
	//
	var builder strings.Builder
	//
	builder.WriteString(l.name)
	builder.WriteString(": ")
	//
	for i, s := range l.sorts {
		if i != 0 {
			builder.WriteString(" # ")
		}

		builder.WriteString(s.String())
	}
	//
	return builder.String()
}
