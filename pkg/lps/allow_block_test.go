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
	"testing"

	"github.com/consensys/go-mcrl2/pkg/data"
	"github.com/consensys/go-mcrl2/pkg/process"
)

func Test_Allow_1(t *testing.T) {
	var (
		allowlist = []process.NameMultiset{process.NewNameMultiset("a", "b")}
		x         = data.NewVariable("x", sortNat)
		ab        = process.MultiAction{natAction("a", x), natAction("b", x)}
		ac        = process.MultiAction{natAction("a", x), natAction("c", x)}
	)
	//
	if !Allow(allowlist, ab, process.Action{}) {
		t.Error("a|b should be allowed")
	}
	//
	if Allow(allowlist, ac, process.Action{}) {
		t.Error("a|c should not be allowed")
	}
}

func Test_Allow_2(t *testing.T) {
	// The silent step is always allowed
	if !Allow(nil, process.MultiAction{}, process.Action{}) {
		t.Error("tau should be allowed")
	}
}

func Test_Allow_3(t *testing.T) {
	// The termination action is always allowed
	term := process.NewAction(process.NewActionLabel("Terminate", nil))
	m := process.MultiAction{term}
	//
	if !Allow(nil, m, term) {
		t.Error("termination action should be allowed")
	}
}

func Test_Encap_1(t *testing.T) {
	x := data.NewVariable("x", sortNat)
	m := process.MultiAction{natAction("a", x), natAction("b", x)}
	//
	if !Encap([]string{"b"}, m) {
		t.Error("b is blocked")
	}
	//
	if Encap([]string{"c"}, m) {
		t.Error("nothing in a|b is blocked")
	}
	//
	if Encap([]string{"a"}, process.MultiAction{}) {
		t.Error("tau contains no blocked action")
	}
}
