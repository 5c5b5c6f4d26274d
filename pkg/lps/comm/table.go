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

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-mcrl2/pkg/process"
)

// UnsupportedCommunicationError signals a communication rule whose right-hand
// side is silent (tau) or empty.  Such a rule cannot be applied during
// linearisation and halts the pass.
type UnsupportedCommunicationError struct {
	// Rule is the offending communication rule.
	Rule process.CommunicationRule
}

func (e *UnsupportedCommunicationError) Error() string {
	return fmt.Sprintf(
		"cannot linearise a process with a communication operator, containing a communication that results in tau or that has an empty right hand side (%s)",
		e.Rule)
}

// CommTable stores a communication function as two parallel arrays of
// left-hand sides (sorted name multisets) and right-hand sides, together with
// scratch state for the prefix-matching queries.  The scratch state is
// overwritten on every query, hence a table must be owned by a single
// enumeration at a time.  Tables must not be copied.
type CommTable struct {
	// Left-hand sides of the communication rules
	lhs []process.NameMultiset
	// Right-hand sides of the communication rules
	rhs []string
	// Original rules, retained for diagnostics
	rules []process.CommunicationRule
	// Scratch: offset into lhs[i] reached by the current match
	cursor []int
	// Scratch: rules knocked out by the current match
	dead *bitset.BitSet
}

// NewCommTable constructs a communication table from the given rules.  Rule
// order is preserved; CanCommunicate resolves ties in favour of the earliest
// rule.
func NewCommTable(rules []process.CommunicationRule) *CommTable {
	n := len(rules)
	//
	table := &CommTable{
		lhs:    make([]process.NameMultiset, n),
		rhs:    make([]string, n),
		rules:  rules,
		cursor: make([]int, n),
		dead:   bitset.New(uint(n)),
	}
	//
	for i, r := range rules {
		table.lhs[i] = r.Lhs()
		table.rhs[i] = r.Rhs()
	}
	//
	return table
}

// Size returns the number of rules in this table.
func (t *CommTable) Size() uint { return uint(len(t.lhs)) }

func (t *CommTable) reset() {
	for i := range t.cursor {
		t.cursor[i] = 0
	}
	//
	t.dead.ClearAll()
}

// match walks the given name sequence through the rule automaton.  It returns
// true iff the sequence is a prefix of some left-hand side; afterwards, rule
// i is live exactly when the sequence is a prefix of lhs[i], with cursor[i]
// just past the consumed prefix.
func (t *CommTable) match(names []string) bool {
	t.reset()
	//
	for _, name := range names {
		live := false
		//
		for i := range t.lhs {
			if t.dead.Test(uint(i)) {
				continue
			}
			//
			if t.cursor[i] == len(t.lhs[i]) || t.lhs[i][t.cursor[i]] != name {
				t.dead.Set(uint(i))
				continue
			}
			// Possible match; on to the next name
			t.cursor[i]++
			live = true
		}
		//
		if !live {
			return false
		}
	}
	//
	return true
}

// CanCommunicate determines whether the name multiset of m equals the
// left-hand side of some rule, and if so yields the synchronised action
// label: the first such rule's right-hand side, with the sort signature taken
// from the first action of m.  A matching rule whose right-hand side is
// silent or empty is an error.
func (t *CommTable) CanCommunicate(m process.MultiAction) (process.ActionLabel, bool, error) {
	var empty process.ActionLabel
	//
	if !t.match(process.Names(m)) {
		return empty, false, nil
	}
	// Find first rule consumed in full
	for i := range t.lhs {
		if !t.dead.Test(uint(i)) && t.cursor[i] == len(t.lhs[i]) {
			if t.rhs[i] == process.TauName || t.rhs[i] == "" {
				return empty, false, &UnsupportedCommunicationError{t.rules[i]}
			}
			//
			return process.NewActionLabel(t.rhs[i], m[0].Label().Sorts()), true, nil
		}
	}
	//
	return empty, false, nil
}

// MightCommunicate determines whether the names of m form a prefix of some
// rule's left-hand side whose remaining names can all be found, in order, in the
// given tail of uncommitted actions.
func (t *CommTable) MightCommunicate(m process.MultiAction, tail []process.Action) bool {
	if !t.match(process.Names(m)) {
		return false
	}
	// The rest of each live lhs must be matched within tail, preserving
	// tail's relative order.
	for i := range t.lhs {
		if t.dead.Test(uint(i)) {
			continue
		}
		//
		if t.completes(i, tail) {
			return true
		}
	}
	//
	return false
}

// completes determines whether the unconsumed remainder of lhs[i] occurs, in
// order, within tail.
func (t *CommTable) completes(i int, tail []process.Action) bool {
	pi := 0
	//
	for ci := t.cursor[i]; ci < len(t.lhs[i]); ci++ {
		name := t.lhs[i][ci]
		// Scan forward for name
		for pi < len(tail) && tail[pi].Name() != name {
			pi++
		}
		//
		if pi == len(tail) {
			return false
		}
		//
		pi++
	}
	//
	return true
}
