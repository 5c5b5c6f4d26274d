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

// Rewriter normalises data expressions.  Implementations must be idempotent
// and must produce the canonical literals True() / False() wherever an
// expression reduces to a Boolean literal.
type Rewriter interface {
	// Rewrite the given expression into (some) normal form.
	Rewrite(e Expression) Expression
}

// RewriterFunc adapts a plain function into a Rewriter.
type RewriterFunc func(Expression) Expression

// Rewrite implementation for the Rewriter interface.
func (f RewriterFunc) Rewrite(e Expression) Expression { return f(e) }

// Identity returns the rewriter which leaves every expression untouched.
// Boolean literals are already canonical, hence this is a valid (if weak)
// rewriter.
func Identity() Rewriter {
	return RewriterFunc(func(e Expression) Expression { return e })
}

// Normaliser is a ground rewriter.  It folds the Boolean connectives over
// literals, resolves equalities between structurally identical terms and
// between distinct ground constants, and otherwise leaves expressions alone.
// It performs no arithmetic and no unfolding of user-defined functions.
type Normaliser struct{}

var _ Rewriter = &Normaliser{}

// NewNormaliser constructs a ground rewriter.
func NewNormaliser() *Normaliser { return &Normaliser{} }

// Rewrite the given expression bottom-up.
func (r *Normaliser) Rewrite(e Expression) Expression {
	app, ok := e.(*Application)
	if !ok {
		return e
	}
	// Normalise arguments first
	args := make([]Expression, len(app.args))
	for i, arg := range app.args {
		args[i] = r.Rewrite(arg)
	}
	//
	if fn, ok := app.head.(*FunctionSymbol); ok {
		switch {
		case fn.name == andName && len(args) == 2:
			return And(args[0], args[1])
		case fn.name == orName && len(args) == 2:
			return Or(args[0], args[1])
		case fn.name == notName && len(args) == 1:
			return Not(args[0])
		case fn.name == eqName && len(args) == 2:
			return r.rewriteEquality(args[0], args[1])
		}
	}
	//
	return NewApplication(app.head, args...)
}

// An equality resolves to true when both sides are structurally identical,
// and to false when both sides are distinct ground constants (which denote
// distinct values under the free-constructor reading).
func (r *Normaliser) rewriteEquality(lhs Expression, rhs Expression) Expression {
	if lhs.Equals(rhs) {
		return True()
	}
	//
	if isGroundConstant(lhs) && isGroundConstant(rhs) {
		return False()
	}
	//
	return EqualTo(lhs, rhs)
}

func isGroundConstant(e Expression) bool {
	_, ok := e.(*FunctionSymbol)
	return ok
}
