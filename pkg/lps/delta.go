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
package lps

import (
	"github.com/consensys/go-mcrl2/pkg/data"
)

// InsertTimedDeltaSummand merges the deadlock summand s into the deadlock
// summand list.  Subsumption is decided syntactically: no data evaluation
// takes place.  A summand with a literally false condition is dropped
// outright.  When time is ignored, a single deadlock summand with condition
// true subsumes every other one.
func InsertTimedDeltaSummand(deadlockSummands *[]DeadlockSummand, s DeadlockSummand, ignoreTime bool) {
	if data.IsFalse(s.Condition) {
		return
	}
	//
	if ignoreTime {
		for _, d := range *deadlockSummands {
			if data.IsTrue(d.Condition) {
				// Existing summand already covers s
				return
			}
		}
		//
		if data.IsTrue(s.Condition) {
			// s covers everything present
			*deadlockSummands = []DeadlockSummand{{nil, data.True(), nil}}
			return
		}
	}
	// Drop exact duplicates
	for _, d := range *deadlockSummands {
		if sameDeadlock(d, s) {
			return
		}
	}
	//
	*deadlockSummands = append(*deadlockSummands, s)
}

// Two deadlock summands are the same when their conditions and timestamps
// coincide syntactically.
func sameDeadlock(d DeadlockSummand, s DeadlockSummand) bool {
	if !d.Condition.Equals(s.Condition) {
		return false
	}
	//
	if (d.Time == nil) != (s.Time == nil) {
		return false
	}
	//
	return d.Time == nil || d.Time.Equals(s.Time)
}
