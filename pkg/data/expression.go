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
	"fmt"
	"strings"
)

// Expression represents a first-order data expression.  Expressions form a
// closed variant over variables, function symbols, applications, abstractions
// and where clauses.  They are immutable trees with structural sharing, hence
// may be freely aliased.
type Expression interface {
	// Sort returns the sort of this expression.
	Sort() Sort
	// Equals determines whether this expression is structurally identical to
	// another.
	Equals(other Expression) bool
	// String returns a human-readable rendering of this expression.
	String() string
}

// ===================================================================
// Variable
// ===================================================================

// Variable represents a sorted data variable.
type Variable struct {
	name string
	sort Sort
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Expression = &Variable{}

// NewVariable constructs a variable with the given name and sort.
func NewVariable(name string, sort Sort) *Variable {
	return &Variable{name, sort}
}

// Name returns the name of this variable.
func (e *Variable) Name() string { return e.name }

// Sort returns the sort of this variable.
func (e *Variable) Sort() Sort { return e.sort }

// Equals determines whether this expression is identical to another.
func (e *Variable) Equals(other Expression) bool {
	o, ok := other.(*Variable)
	return ok && e.name == o.name && e.sort.Equals(o.sort)
}

func (e *Variable) String() string { return e.name }

// ===================================================================
// Function Symbol
// ===================================================================

// FunctionSymbol represents a declared function symbol or constant, such as
// true, 0 or ==.
type FunctionSymbol struct {
	name string
	sort Sort
}

var _ Expression = &FunctionSymbol{}

// NewFunctionSymbol constructs a function symbol with the given name and sort.
func NewFunctionSymbol(name string, sort Sort) *FunctionSymbol {
	return &FunctionSymbol{name, sort}
}

// Name returns the name of this function symbol.
func (e *FunctionSymbol) Name() string { return e.name }

// Sort returns the sort of this function symbol.
func (e *FunctionSymbol) Sort() Sort { return e.sort }

// Equals determines whether this expression is identical to another.
func (e *FunctionSymbol) Equals(other Expression) bool {
	o, ok := other.(*FunctionSymbol)
	return ok && e.name == o.name && e.sort.Equals(o.sort)
}

func (e *FunctionSymbol) String() string { return e.name }

// ===================================================================
// Application
// ===================================================================

// Application represents the application of a head expression of function
// sort to one or more arguments.
type Application struct {
	head Expression
	args []Expression
}

var _ Expression = &Application{}

// NewApplication constructs the application of head to the given arguments.
// The head must have a function sort whose domain matches the arguments.
func NewApplication(head Expression, args ...Expression) *Application {
	if !head.Sort().IsFunctionSort() {
		panic(fmt.Sprintf("cannot apply expression of sort %s", head.Sort()))
	}
	//
	return &Application{head, args}
}

// Head returns the head expression of this application.
func (e *Application) Head() Expression { return e.head }

// Arguments returns the arguments of this application.
func (e *Application) Arguments() []Expression { return e.args }

// Sort of an application is the codomain of its head.
func (e *Application) Sort() Sort {
	return e.head.Sort().(*FunctionSort).Codomain()
}

// Equals determines whether this expression is identical to another.
func (e *Application) Equals(other Expression) bool {
	o, ok := other.(*Application)
	//
	if !ok || len(e.args) != len(o.args) || !e.head.Equals(o.head) {
		return false
	}
	//
	for i := range e.args {
		if !e.args[i].Equals(o.args[i]) {
			return false
		}
	}
	//
	return true
}

func (e *Application) String() string {
	// Render well-known binary operators infix, since guards read much better
	// that way.
	if fn, ok := e.head.(*FunctionSymbol); ok && len(e.args) == 2 {
		switch fn.name {
		case eqName, andName, orName:
			return fmt.Sprintf("(%s %s %s)", e.args[0], fn.name, e.args[1])
		}
	} else if ok && len(e.args) == 1 && fn.name == notName {
		return fmt.Sprintf("!%s", e.args[0])
	}
	//
	var builder strings.Builder
	//
	builder.WriteString(e.head.String())
	builder.WriteString("(")
	//
	for i, arg := range e.args {
		if i != 0 {
			builder.WriteString(", ")
		}

		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// ===================================================================
// Abstraction
// ===================================================================

// Binder distinguishes the three kinds of abstraction.
type Binder uint8

const (
	// LAMBDA abstraction.
	LAMBDA Binder = iota
	// FORALL quantification.
	FORALL
	// EXISTS quantification.
	EXISTS
)

func (b Binder) String() string {
	switch b {
	case LAMBDA:
		return "lambda"
	case FORALL:
		return "forall"
	default:
		return "exists"
	}
}

// Abstraction represents a variable-binding expression (lambda, forall or
// exists).
type Abstraction struct {
	binder    Binder
	variables []*Variable
	body      Expression
}

var _ Expression = &Abstraction{}

// NewAbstraction constructs an abstraction binding the given variables in the
// given body.
func NewAbstraction(binder Binder, variables []*Variable, body Expression) *Abstraction {
	return &Abstraction{binder, variables, body}
}

// Binder returns the binder kind of this abstraction.
func (e *Abstraction) Binder() Binder { return e.binder }

// Variables returns the variables bound by this abstraction.
func (e *Abstraction) Variables() []*Variable { return e.variables }

// Body returns the body of this abstraction.
func (e *Abstraction) Body() Expression { return e.body }

// Sort of a quantifier is Bool; that of a lambda is the corresponding
// function sort.
func (e *Abstraction) Sort() Sort {
	if e.binder != LAMBDA {
		return SortBool
	}
	//
	domain := make([]Sort, len(e.variables))
	for i, v := range e.variables {
		domain[i] = v.Sort()
	}
	//
	return NewFunctionSort(domain, e.body.Sort())
}

// Equals determines whether this expression is identical to another.
func (e *Abstraction) Equals(other Expression) bool {
	o, ok := other.(*Abstraction)
	//
	if !ok || e.binder != o.binder || len(e.variables) != len(o.variables) {
		return false
	}
	//
	for i := range e.variables {
		if !e.variables[i].Equals(o.variables[i]) {
			return false
		}
	}
	//
	return e.body.Equals(o.body)
}

func (e *Abstraction) String() string {
	var builder strings.Builder
	//
	builder.WriteString(e.binder.String())
	builder.WriteString(" ")
	//
	for i, v := range e.variables {
		if i != 0 {
			builder.WriteString(", ")
		}

		builder.WriteString(v.Name())
		builder.WriteString(": ")
		builder.WriteString(v.Sort().String())
	}
	//
	builder.WriteString(" . ")
	builder.WriteString(e.body.String())
	//
	return builder.String()
}

// ===================================================================
// Where Clause
// ===================================================================

// WhereDef is a single definition within a where clause.
type WhereDef struct {
	// Variable being defined
	Variable *Variable
	// Value given to the variable
	Value Expression
}

// WhereClause represents an expression with local definitions, written
// "body whr x = e end".
type WhereClause struct {
	body Expression
	defs []WhereDef
}

var _ Expression = &WhereClause{}

// NewWhereClause constructs a where clause with the given body and
// definitions.
func NewWhereClause(body Expression, defs []WhereDef) *WhereClause {
	return &WhereClause{body, defs}
}

// Body returns the body of this where clause.
func (e *WhereClause) Body() Expression { return e.body }

// Definitions returns the local definitions of this where clause.
func (e *WhereClause) Definitions() []WhereDef { return e.defs }

// Sort of a where clause is that of its body.
func (e *WhereClause) Sort() Sort { return e.body.Sort() }

// Equals determines whether this expression is identical to another.
func (e *WhereClause) Equals(other Expression) bool {
	o, ok := other.(*WhereClause)
	//
	if !ok || len(e.defs) != len(o.defs) || !e.body.Equals(o.body) {
		return false
	}
	//
	for i := range e.defs {
		if !e.defs[i].Variable.Equals(o.defs[i].Variable) || !e.defs[i].Value.Equals(o.defs[i].Value) {
			return false
		}
	}
	//
	return true
}

func (e *WhereClause) String() string {
	var builder strings.Builder
	//
	builder.WriteString(e.body.String())
	builder.WriteString(" whr ")
	//
	for i, d := range e.defs {
		if i != 0 {
			builder.WriteString(", ")
		}

		builder.WriteString(d.Variable.Name())
		builder.WriteString(" = ")
		builder.WriteString(d.Value.String())
	}
	//
	builder.WriteString(" end")
	//
	return builder.String()
}
