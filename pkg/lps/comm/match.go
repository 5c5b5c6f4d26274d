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
)

// PairwiseMatch computes the condition under which two argument lists are
// pairwise equal.  Lists of different length, or with a sort mismatch at some
// position, cannot match and yield literal false.  Otherwise the result is
// the lazy conjunction of the rewritten equalities, so any equality the
// rewriter resolves to false collapses the whole condition.
func PairwiseMatch(l1 []data.Expression, l2 []data.Expression, rw data.Rewriter) data.Expression {
	if len(l1) != len(l2) {
		return data.False()
	}
	//
	result := data.True()
	//
	for i := range l1 {
		if !l1[i].Sort().Equals(l2[i].Sort()) {
			return data.False()
		}

		result = data.And(result, rw.Rewrite(data.EqualTo(l1[i], l2[i])))
	}
	//
	return result
}
