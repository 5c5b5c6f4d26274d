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
	"github.com/consensys/go-mcrl2/pkg/data"
	"github.com/consensys/go-mcrl2/pkg/process"
)

// Enumerate computes all semantically distinct multi-actions the
// communication operator can produce from the given multi-action, together
// with the conditions under which each arises.  No condition is literally
// false, and their disjunction covers every case: for any valuation, some
// alternative fires, and every alternative that fires yields the multi-action
// the communication operator produces on that valuation.  This follows the
// scheme of Muck van Weerdenburg's "Calculation of communication with open
// terms".
func Enumerate(m process.MultiAction, rules []process.CommunicationRule, rw data.Rewriter) (TupleList, error) {
	table := NewCommTable(rules)
	//
	return gamma(m, table, process.MultiAction{}, rw)
}

// gamma enumerates the alternatives for the remaining actions m, where r
// accumulates the actions already committed not to communicate.  Each action
// of m either opens a synchronisation with some of its successors (phi), or
// joins r.  Once m is exhausted, psi(r) guards against the case where two
// actions of r were in fact forced to communicate.
func gamma(m []process.Action, table *CommTable, r process.MultiAction,
	rw data.Rewriter) (TupleList, error) {
	//
	if len(m) == 0 {
		cond := data.True()
		//
		if len(r) != 0 {
			var err error
			if cond, err = psi(r, table, rw); err != nil {
				return TupleList{}, err
			}
		}
		// Alternatives guarded by literal false are never produced.
		if data.IsFalse(cond) {
			return TupleList{}, nil
		}
		//
		return TupleList{
			actions:    []process.MultiAction{{}},
			conditions: []data.Expression{cond},
		}, nil
	}
	//
	firstaction := m[0]
	// All ways firstaction communicates with a subset of its successors
	s, err := phi(process.MultiAction{firstaction}, firstaction.Arguments(),
		process.MultiAction{}, m[1:], r, table, rw)
	//
	if err != nil {
		return TupleList{}, err
	}
	// All ways firstaction does not communicate
	t, err := gamma(m[1:], table, process.Insert(firstaction, r), rw)
	//
	if err != nil {
		return TupleList{}, err
	}
	//
	addActionCondition(firstaction, data.True(), &t, &s)
	//
	return s, nil
}

// phi enumerates how the committed synchronisation prefix m, with common
// argument list d, can be completed by a subset of the remaining actions n.
// Actions in w have been excluded from this synchronisation; r accumulates
// the never-communicating context for the recursive continuation.
func phi(m process.MultiAction, d []data.Expression, w process.MultiAction,
	n []process.Action, r process.MultiAction, table *CommTable,
	rw data.Rewriter) (TupleList, error) {
	//
	if !table.MightCommunicate(m, n) {
		// No lhs can complete m; prune this branch.
		return TupleList{}, nil
	}
	//
	if len(n) == 0 {
		label, ok, err := table.CanCommunicate(m)
		//
		if err != nil || !ok {
			return TupleList{}, err
		}
		// m communicates to label; the excluded actions continue as a fresh
		// enumeration problem.
		t, err := gamma(w, table, r, rw)
		if err != nil {
			return TupleList{}, err
		}
		//
		var result TupleList
		//
		addActionCondition(process.NewAction(label, d...), data.True(), &t, &result)
		//
		return result, nil
	}
	//
	firstaction := n[0]
	// Condition under which firstaction can join the synchronisation
	condition := PairwiseMatch(d, firstaction.Arguments(), rw)
	//
	if data.IsFalse(condition) {
		// Arguments cannot match; firstaction moves to w.
		return phi(m, d, process.Insert(firstaction, w), n[1:], r, table, rw)
	}
	// Branch: firstaction joins the synchronisation
	t, err := phi(process.Insert(firstaction, m), d, w, n[1:], r, table, rw)
	if err != nil {
		return TupleList{}, err
	}
	// Branch: firstaction does not join
	result, err := phi(m, d, process.Insert(firstaction, w), n[1:], r, table, rw)
	if err != nil {
		return TupleList{}, err
	}
	//
	addActionCondition(process.Action{}, condition, &t, &result)
	//
	return result, nil
}

// xi determines whether alpha on its own, or alpha extended by a single
// action of beta, communicates successfully.  Extensions by two or more
// actions of beta are not tried.
func xi(alpha process.MultiAction, beta []process.Action, table *CommTable) (bool, error) {
	if len(beta) == 0 {
		_, ok, err := table.CanCommunicate(alpha)
		return ok, err
	}
	//
	alphaB := process.Insert(beta[0], alpha)
	//
	if _, ok, err := table.CanCommunicate(alphaB); err != nil || ok {
		return ok, err
	}
	//
	return xi(alpha, beta[1:], table)
}

// psi computes the condition asserting that no pair of actions in r is
// forced to communicate: for every pair that could open a synchronisation
// completable from the actions after it, the pair's arguments must not
// match.
func psi(r process.MultiAction, table *CommTable, rw data.Rewriter) (data.Expression, error) {
	rev := process.Reverse(r)
	cond := data.False()
	//
	for i := 0; i < len(rev); i++ {
		for j := i + 1; j < len(rev); j++ {
			actl := process.Insert(rev[i], process.Insert(rev[j], process.MultiAction{}))
			tail := rev[j+1:]
			//
			if !table.MightCommunicate(actl, tail) {
				continue
			}
			//
			ok, err := xi(actl, tail, table)
			if err != nil {
				return nil, err
			}
			//
			if ok {
				cond = data.Or(cond, PairwiseMatch(rev[i].Arguments(), rev[j].Arguments(), rw))
			}
		}
	}
	//
	return data.Not(cond), nil
}
