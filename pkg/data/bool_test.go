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
package data

import (
	"testing"
)

var sortNat = NamedSort("Nat")

func Test_And_1(t *testing.T) {
	x := NewVariable("x", SortBool)
	checkExpr(t, x, And(True(), x))
	checkExpr(t, x, And(x, True()))
}

func Test_And_2(t *testing.T) {
	x := NewVariable("x", SortBool)
	checkExpr(t, False(), And(False(), x))
	checkExpr(t, False(), And(x, False()))
}

func Test_And_3(t *testing.T) {
	x := NewVariable("x", SortBool)
	y := NewVariable("y", SortBool)
	e := And(x, y)
	//
	if IsTrue(e) || IsFalse(e) {
		t.Errorf("conjunction collapsed: %s", e)
	}
	//
	if e.String() != "(x && y)" {
		t.Errorf("unexpected rendering: %s", e)
	}
}

func Test_Or_1(t *testing.T) {
	x := NewVariable("x", SortBool)
	checkExpr(t, True(), Or(True(), x))
	checkExpr(t, True(), Or(x, True()))
	checkExpr(t, x, Or(False(), x))
	checkExpr(t, x, Or(x, False()))
}

func Test_Not_1(t *testing.T) {
	checkExpr(t, False(), Not(True()))
	checkExpr(t, True(), Not(False()))
}

func Test_Not_2(t *testing.T) {
	x := NewVariable("x", SortBool)
	e := Not(x)
	//
	if e.String() != "!x" {
		t.Errorf("unexpected rendering: %s", e)
	}
}

func Test_EqualTo_1(t *testing.T) {
	x := NewVariable("x", sortNat)
	y := NewVariable("y", sortNat)
	e := EqualTo(x, y)
	//
	l, r, ok := IsEquality(e)
	if !ok || !l.Equals(x) || !r.Equals(y) {
		t.Errorf("equality not recognised: %s", e)
	}
	//
	if !e.Sort().Equals(SortBool) {
		t.Errorf("equality has sort %s", e.Sort())
	}
}

func Test_Expr_Equals_1(t *testing.T) {
	x1 := NewVariable("x", sortNat)
	x2 := NewVariable("x", sortNat)
	x3 := NewVariable("x", SortBool)
	//
	if !x1.Equals(x2) {
		t.Error("identical variables not equal")
	}
	//
	if x1.Equals(x3) {
		t.Error("variables of different sort equal")
	}
}

func checkExpr(t *testing.T, expected Expression, actual Expression) {
	if !expected.Equals(actual) {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}
