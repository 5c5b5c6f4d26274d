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

// SortBool is the sort of the Boolean literals and connectives.
const SortBool = NamedSort("Bool")

const (
	trueName  = "true"
	falseName = "false"
	andName   = "&&"
	orName    = "||"
	notName   = "!"
	eqName    = "=="
)

var (
	trueSymbol  = NewFunctionSymbol(trueName, SortBool)
	falseSymbol = NewFunctionSymbol(falseName, SortBool)
	andSymbol   = NewFunctionSymbol(andName, NewFunctionSort([]Sort{SortBool, SortBool}, SortBool))
	orSymbol    = NewFunctionSymbol(orName, NewFunctionSort([]Sort{SortBool, SortBool}, SortBool))
	notSymbol   = NewFunctionSymbol(notName, NewFunctionSort([]Sort{SortBool}, SortBool))
)

// True returns the canonical Boolean literal true.
func True() Expression { return trueSymbol }

// False returns the canonical Boolean literal false.
func False() Expression { return falseSymbol }

// IsTrue determines whether the given expression is literally true.
func IsTrue(e Expression) bool { return trueSymbol.Equals(e) }

// IsFalse determines whether the given expression is literally false.
func IsFalse(e Expression) bool { return falseSymbol.Equals(e) }

// And constructs the lazy conjunction of two Boolean expressions.  Either
// operand being a Boolean literal collapses the result.
func And(lhs Expression, rhs Expression) Expression {
	switch {
	case IsFalse(lhs) || IsFalse(rhs):
		return falseSymbol
	case IsTrue(lhs):
		return rhs
	case IsTrue(rhs):
		return lhs
	}
	//
	return NewApplication(andSymbol, lhs, rhs)
}

// Or constructs the lazy disjunction of two Boolean expressions.  Either
// operand being a Boolean literal collapses the result.
func Or(lhs Expression, rhs Expression) Expression {
	switch {
	case IsTrue(lhs) || IsTrue(rhs):
		return trueSymbol
	case IsFalse(lhs):
		return rhs
	case IsFalse(rhs):
		return lhs
	}
	//
	return NewApplication(orSymbol, lhs, rhs)
}

// Not constructs the lazy negation of a Boolean expression, collapsing the
// Boolean literals.
func Not(e Expression) Expression {
	switch {
	case IsTrue(e):
		return falseSymbol
	case IsFalse(e):
		return trueSymbol
	}
	//
	return NewApplication(notSymbol, e)
}

// EqualTo constructs the equality of two expressions of the same sort.
func EqualTo(lhs Expression, rhs Expression) Expression {
	sort := lhs.Sort()
	symbol := NewFunctionSymbol(eqName, NewFunctionSort([]Sort{sort, sort}, SortBool))
	//
	return NewApplication(symbol, lhs, rhs)
}

// IsEquality checks whether the given expression is an equality, and if so
// returns its operands.
func IsEquality(e Expression) (Expression, Expression, bool) {
	if app, ok := e.(*Application); ok && len(app.args) == 2 {
		if fn, ok := app.head.(*FunctionSymbol); ok && fn.name == eqName {
			return app.args[0], app.args[1], true
		}
	}
	//
	return nil, nil, false
}

// IsDisjunction checks whether the given expression is a disjunction, and if
// so returns its operands.
func IsDisjunction(e Expression) (Expression, Expression, bool) {
	if app, ok := e.(*Application); ok && len(app.args) == 2 {
		if fn, ok := app.head.(*FunctionSymbol); ok && fn.name == orName {
			return app.args[0], app.args[1], true
		}
	}
	//
	return nil, nil, false
}

// IsNegation checks whether the given expression is a negation, and if so
// returns its operand.
func IsNegation(e Expression) (Expression, bool) {
	if app, ok := e.(*Application); ok && len(app.args) == 1 {
		if fn, ok := app.head.(*FunctionSymbol); ok && fn.name == notName {
			return app.args[0], true
		}
	}
	//
	return nil, false
}

// IsConjunction checks whether the given expression is a conjunction, and if
// so returns its operands.
func IsConjunction(e Expression) (Expression, Expression, bool) {
	if app, ok := e.(*Application); ok && len(app.args) == 2 {
		if fn, ok := app.head.(*FunctionSymbol); ok && fn.name == andName {
			return app.args[0], app.args[1], true
		}
	}
	//
	return nil, nil, false
}
