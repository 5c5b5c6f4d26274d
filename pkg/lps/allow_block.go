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
	"slices"

	"github.com/consensys/go-mcrl2/pkg/process"
)

// Allow determines whether the given multi-action is permitted by the allow
// list.  The empty multi-action (the silent step) is always permitted, as is
// the multi-action consisting of exactly the termination action.
func Allow(allowlist []process.NameMultiset, m process.MultiAction, termination process.Action) bool {
	if len(m) == 0 {
		return true
	}
	//
	if len(m) == 1 && !termination.IsEmpty() && m[0].Name() == termination.Name() {
		return true
	}
	//
	names := process.NewNameMultiset(process.Names(m)...)
	//
	for _, allowed := range allowlist {
		if names.Equals(allowed) {
			return true
		}
	}
	//
	return false
}

// Encap determines whether the given multi-action contains an action whose
// name is blocked.
func Encap(blocked []string, m process.MultiAction) bool {
	for _, a := range m {
		if slices.Contains(blocked, a.Name()) {
			return true
		}
	}
	//
	return false
}
