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
	"slices"
	"sort"
	"strings"
)

// NameMultiset is a multiset of action names, represented as a sorted
// sequence.
type NameMultiset []string

// NewNameMultiset constructs a name multiset from the given names, sorting
// them into canonical order.
func NewNameMultiset(names ...string) NameMultiset {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	//
	return NameMultiset(sorted)
}

// Compare two name multisets lexicographically.
func (s NameMultiset) Compare(other NameMultiset) int {
	return slices.Compare(s, other)
}

// Equals determines whether two name multisets are identical.
func (s NameMultiset) Equals(other NameMultiset) bool {
	return slices.Equal(s, other)
}

func (s NameMultiset) String() string {
	return strings.Join(s, "|")
}

// CommunicationRule rewrites a multiset of at least two action names into a
// single synchronised name.  The rule fires on a sub-multiset of a
// multi-action whose name sequence equals the left-hand side and whose
// argument lists are pairwise equal.
type CommunicationRule struct {
	lhs NameMultiset
	rhs string
}

// NewCommunicationRule constructs a communication rule, sorting the left-hand
// side into canonical order.
func NewCommunicationRule(lhs []string, rhs string) CommunicationRule {
	if len(lhs) < 2 {
		panic(fmt.Sprintf("communication rule %s -> %s has fewer than two synchronising actions",
			strings.Join(lhs, "|"), rhs))
	}
	//
	return CommunicationRule{NewNameMultiset(lhs...), rhs}
}

// Lhs returns the (sorted) left-hand side of this rule.
func (r CommunicationRule) Lhs() NameMultiset { return r.lhs }

// Rhs returns the right-hand side of this rule.
func (r CommunicationRule) Rhs() string { return r.rhs }

func (r CommunicationRule) String() string {
	return fmt.Sprintf("%s -> %s", r.lhs, r.rhs)
}

// SortCommunications returns a new rule list sorted on left-hand sides (then
// right-hand sides).  The composition pass relies on this order for
// reproducible output.
func SortCommunications(rules []CommunicationRule) []CommunicationRule {
	sorted := slices.Clone(rules)
	//
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].lhs.Compare(sorted[j].lhs); c != 0 {
			return c < 0
		}
		//
		return sorted[i].rhs < sorted[j].rhs
	})
	//
	return sorted
}

// SortNameMultisets returns a new list of name multisets in canonical order,
// as required for allow lists.
func SortNameMultisets(list []NameMultiset) []NameMultiset {
	sorted := slices.Clone(list)
	//
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})
	//
	return sorted
}
