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
)

func Test_InsertDelta_1(t *testing.T) {
	var summands []DeadlockSummand
	//
	InsertTimedDeltaSummand(&summands, DeadlockSummand{nil, data.False(), nil}, false)
	//
	if len(summands) != 0 {
		t.Error("false deadlock summand inserted")
	}
}

func Test_InsertDelta_2(t *testing.T) {
	x := data.NewVariable("x", data.SortBool)
	summands := []DeadlockSummand{{nil, data.True(), nil}}
	// With time ignored, a true summand subsumes everything
	InsertTimedDeltaSummand(&summands, DeadlockSummand{nil, x, nil}, true)
	//
	if len(summands) != 1 {
		t.Errorf("expected 1 summand, got %d", len(summands))
	}
}

func Test_InsertDelta_3(t *testing.T) {
	x := data.NewVariable("x", data.SortBool)
	summands := []DeadlockSummand{{nil, x, nil}}
	// A true summand replaces weaker ones when time is ignored
	InsertTimedDeltaSummand(&summands, DeadlockSummand{nil, data.True(), nil}, true)
	//
	if len(summands) != 1 || !data.IsTrue(summands[0].Condition) {
		t.Errorf("expected single true summand, got %v", summands)
	}
}

func Test_InsertDelta_4(t *testing.T) {
	x := data.NewVariable("x", data.SortBool)
	summands := []DeadlockSummand{{nil, x, nil}}
	// Exact duplicates are dropped
	InsertTimedDeltaSummand(&summands, DeadlockSummand{nil, x, nil}, false)
	//
	if len(summands) != 1 {
		t.Errorf("duplicate inserted: %v", summands)
	}
}

func Test_InsertDelta_5(t *testing.T) {
	var (
		x        = data.NewVariable("x", data.SortBool)
		y        = data.NewVariable("y", data.SortBool)
		summands = []DeadlockSummand{{nil, x, nil}}
	)
	//
	InsertTimedDeltaSummand(&summands, DeadlockSummand{nil, y, nil}, false)
	//
	if len(summands) != 2 {
		t.Errorf("expected 2 summands, got %v", summands)
	}
}
