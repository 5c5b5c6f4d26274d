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
	"testing"

	"github.com/consensys/go-mcrl2/pkg/data"
)

func Test_PairwiseMatch_1(t *testing.T) {
	// Length mismatch is false
	actual := PairwiseMatch([]data.Expression{num("1")}, nil, data.Identity())
	//
	if !data.IsFalse(actual) {
		t.Errorf("expected false, got %s", actual)
	}
}

func Test_PairwiseMatch_2(t *testing.T) {
	// Sort mismatch is false
	x := data.NewVariable("x", data.SortBool)
	actual := PairwiseMatch([]data.Expression{num("1")}, []data.Expression{x}, data.Identity())
	//
	if !data.IsFalse(actual) {
		t.Errorf("expected false, got %s", actual)
	}
}

func Test_PairwiseMatch_3(t *testing.T) {
	// Empty lists match trivially
	actual := PairwiseMatch(nil, nil, data.Identity())
	//
	if !data.IsTrue(actual) {
		t.Errorf("expected true, got %s", actual)
	}
}

func Test_PairwiseMatch_4(t *testing.T) {
	x, y := nv("x"), nv("y")
	actual := PairwiseMatch([]data.Expression{x}, []data.Expression{y}, data.Identity())
	//
	if !actual.Equals(data.EqualTo(x, y)) {
		t.Errorf("expected x == y, got %s", actual)
	}
}

func Test_PairwiseMatch_5(t *testing.T) {
	// A rewritten false equality collapses the whole conjunction
	x, y := nv("x"), nv("y")
	l1 := []data.Expression{x, num("1")}
	l2 := []data.Expression{y, num("2")}
	//
	actual := PairwiseMatch(l1, l2, data.NewNormaliser())
	//
	if !data.IsFalse(actual) {
		t.Errorf("expected false, got %s", actual)
	}
}

func Test_PairwiseMatch_6(t *testing.T) {
	// Resolved true equalities vanish from the conjunction
	x, y := nv("x"), nv("y")
	l1 := []data.Expression{num("1"), x}
	l2 := []data.Expression{num("1"), y}
	//
	actual := PairwiseMatch(l1, l2, data.NewNormaliser())
	//
	if !actual.Equals(data.EqualTo(x, y)) {
		t.Errorf("expected x == y, got %s", actual)
	}
}
