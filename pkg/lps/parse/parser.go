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
package parse

import (
	"fmt"
	"unicode"

	"github.com/consensys/go-mcrl2/pkg/data"
	"github.com/consensys/go-mcrl2/pkg/lps"
	"github.com/consensys/go-mcrl2/pkg/process"
)

// ParseSpec parses the textual .lin format.  The format is a sequence of
// semicolon-terminated declarations:
//
//	sort Nat;
//	act  a, b: Nat;
//	var  x: Nat;
//	comm a|b -> c;
//	allow a|b, c;
//	block a;
//	proc sum y: Nat . (x == y) -> a(x)|b(y) @ 0 . P(x := y);
//	proc delta;
//
// Each proc declaration contributes one summand; var declarations introduce
// the process parameters.  Comments run from % to end of line.
func ParseSpec(text string) (*Spec, error) {
	p := newParser(text)
	//
	spec := &Spec{
		Actions: make(map[string][]data.Sort),
		Process: &lps.LinearProcess{},
	}
	//
	for {
		keyword := p.next()
		//
		if keyword == "" {
			break
		}
		//
		var err error
		//
		switch keyword {
		case "sort":
			err = p.parseSortDecl(spec)
		case "act":
			err = p.parseActDecl(spec)
		case "var":
			err = p.parseVarDecl(spec)
		case "comm":
			err = p.parseCommDecl(spec)
		case "allow":
			err = p.parseAllowDecl(spec)
		case "block":
			err = p.parseBlockDecl(spec)
		case "proc":
			err = p.parseProcDecl(spec)
		default:
			err = p.errorf("unknown declaration \"%s\"", keyword)
		}
		//
		if err != nil {
			return nil, err
		}
	}
	//
	return spec, nil
}

// SyntaxError reports a malformed .lin specification, with the line and
// column at which parsing failed.
type SyntaxError struct {
	// Line (1-based) of the failure
	Line int
	// Column (1-based) of the failure
	Column int
	// Message describing the failure
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// parser holds the text being parsed along with the declarations seen so
// far, which scope the expressions that follow them.
type parser struct {
	// Text being parsed
	text []rune
	// Determine current position within text
	index int
	// Variables in scope (parameters, plus summation variables while
	// parsing one summand)
	scope map[string]*data.Variable
	// Sorts declared
	sorts map[string]data.NamedSort
}

func newParser(text string) *parser {
	return &parser{
		text:  []rune(text),
		index: 0,
		scope: make(map[string]*data.Variable),
		sorts: make(map[string]data.NamedSort),
	}
}

// ===================================================================
// Declarations
// ===================================================================

func (p *parser) parseSortDecl(spec *Spec) error {
	for {
		name := p.next()
		if name == "" {
			return p.errorf("expected sort name")
		}
		//
		sort := data.NamedSort(name)
		p.sorts[name] = sort
		spec.Sorts = append(spec.Sorts, sort)
		//
		if p.lookahead() != ',' {
			break
		}

		p.expect(",")
	}
	//
	return p.expect(";")
}

// act a, b: Nat # Nat;  declares actions a and b with two Nat parameters.
// Parameterless actions omit the colon.
func (p *parser) parseActDecl(spec *Spec) error {
	var names []string
	//
	for {
		name := p.next()
		if name == "" {
			return p.errorf("expected action name")
		}
		//
		names = append(names, name)
		//
		if p.lookahead() != ',' {
			break
		}

		p.expect(",")
	}
	//
	var sorts []data.Sort
	//
	if p.lookahead() == ':' {
		p.expect(":")
		//
		var err error
		if sorts, err = p.parseSortList(); err != nil {
			return err
		}
	}
	//
	for _, name := range names {
		spec.Actions[name] = sorts
	}
	//
	return p.expect(";")
}

func (p *parser) parseVarDecl(spec *Spec) error {
	vars, err := p.parseTypedVariables()
	if err != nil {
		return err
	}
	//
	for _, v := range vars {
		p.scope[v.Name()] = v
		spec.Process.Parameters = append(spec.Process.Parameters, v)
	}
	//
	return p.expect(";")
}

func (p *parser) parseCommDecl(spec *Spec) error {
	var lhs []string
	//
	for {
		name := p.next()
		if name == "" {
			return p.errorf("expected action name")
		}
		//
		lhs = append(lhs, name)
		//
		if p.lookahead() != '|' {
			break
		}

		p.expect("|")
	}
	//
	if len(lhs) < 2 {
		return p.errorf("communication requires at least two synchronising actions")
	}
	//
	if err := p.expect("->"); err != nil {
		return err
	}
	//
	rhs := p.next()
	if rhs == "" {
		return p.errorf("expected action name")
	}
	//
	spec.Rules = append(spec.Rules, process.NewCommunicationRule(lhs, rhs))
	//
	return p.expect(";")
}

func (p *parser) parseAllowDecl(spec *Spec) error {
	for {
		var names []string
		//
		for {
			name := p.next()
			if name == "" {
				return p.errorf("expected action name")
			}
			//
			names = append(names, name)
			//
			if p.lookahead() != '|' {
				break
			}

			p.expect("|")
		}
		//
		spec.Allow = append(spec.Allow, process.NewNameMultiset(names...))
		//
		if p.lookahead() != ',' {
			break
		}

		p.expect(",")
	}
	//
	return p.expect(";")
}

func (p *parser) parseBlockDecl(spec *Spec) error {
	for {
		name := p.next()
		if name == "" {
			return p.errorf("expected action name")
		}
		//
		spec.Block = append(spec.Block, name)
		//
		if p.lookahead() != ',' {
			break
		}

		p.expect(",")
	}
	//
	return p.expect(";")
}

// proc [sum vars .] [( cond ) ->] multiaction|delta [@ time] [. P(assigns)];
func (p *parser) parseProcDecl(spec *Spec) error {
	var (
		sumvars []*data.Variable
		cond    data.Expression = data.True()
	)
	// Optional summation
	if p.lookaheadWord() == "sum" {
		p.next()
		//
		vars, err := p.parseTypedVariables()
		if err != nil {
			return err
		}
		//
		sumvars = vars
		// Summation variables scope this summand only, shadowing any
		// parameter of the same name.
		shadowed := make(map[string]*data.Variable)
		//
		for _, v := range vars {
			shadowed[v.Name()] = p.scope[v.Name()]
			p.scope[v.Name()] = v
		}
		//
		defer func() {
			for name, prev := range shadowed {
				if prev == nil {
					delete(p.scope, name)
				} else {
					p.scope[name] = prev
				}
			}
		}()
		//
		if err := p.expect("."); err != nil {
			return err
		}
	}
	// Optional condition
	if p.lookahead() == '(' {
		p.expect("(")
		//
		e, err := p.parseExpression()
		if err != nil {
			return err
		}
		//
		cond = e
		//
		if err := p.expect(")"); err != nil {
			return err
		}
		//
		if err := p.expect("->"); err != nil {
			return err
		}
	}
	// Deadlock or multi-action
	if p.lookaheadWord() == "delta" {
		p.next()
		//
		time, err := p.parseOptionalTime()
		if err != nil {
			return err
		}
		//
		spec.Process.DeadlockSummands = append(spec.Process.DeadlockSummands,
			lps.DeadlockSummand{SumVars: sumvars, Condition: cond, Time: time})
		//
		return p.expect(";")
	}
	//
	multiaction, err := p.parseMultiAction(spec)
	if err != nil {
		return err
	}
	//
	time, err := p.parseOptionalTime()
	if err != nil {
		return err
	}
	//
	nextstate, err := p.parseOptionalNextState()
	if err != nil {
		return err
	}
	//
	spec.Process.ActionSummands = append(spec.Process.ActionSummands, lps.ActionSummand{
		SumVars:     sumvars,
		Condition:   cond,
		MultiAction: multiaction,
		Time:        time,
		NextState:   nextstate,
	})
	//
	return p.expect(";")
}

// ===================================================================
// Process fragments
// ===================================================================

func (p *parser) parseMultiAction(spec *Spec) (process.MultiAction, error) {
	m := process.MultiAction{}
	//
	for {
		name := p.next()
		if name == "" {
			return nil, p.errorf("expected action name")
		}
		//
		label, err := spec.Label(name)
		if err != nil {
			return nil, p.errorf("%s", err)
		}
		//
		var args []data.Expression
		//
		if p.lookahead() == '(' {
			p.expect("(")
			//
			for i := range label.Sorts() {
				if i != 0 {
					if err := p.expect(","); err != nil {
						return nil, err
					}
				}
				//
				arg, err := p.parseTerm(label.Sorts()[i])
				if err != nil {
					return nil, err
				}
				//
				args = append(args, arg)
			}
			//
			if err := p.expect(")"); err != nil {
				return nil, err
			}
		}
		//
		if len(args) != len(label.Sorts()) {
			return nil, p.errorf("action \"%s\" expects %d arguments", name, len(label.Sorts()))
		}
		//
		m = process.Insert(process.NewAction(label, args...), m)
		//
		if p.lookahead() != '|' {
			break
		}

		p.expect("|")
	}
	//
	return m, nil
}

func (p *parser) parseOptionalTime() (data.Expression, error) {
	if p.lookahead() != '@' {
		return nil, nil
	}
	//
	p.expect("@")
	//
	return p.parseTerm(nil)
}

// . P(x := e, ...) gives the next state.
func (p *parser) parseOptionalNextState() ([]lps.Assignment, error) {
	if p.lookahead() != '.' {
		return nil, nil
	}
	//
	p.expect(".")
	//
	if name := p.next(); name == "" {
		return nil, p.errorf("expected process name")
	}
	//
	if err := p.expect("("); err != nil {
		return nil, err
	}
	//
	var assignments []lps.Assignment
	//
	for p.lookahead() != ')' {
		if len(assignments) != 0 {
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
		//
		name := p.next()
		//
		v, ok := p.scope[name]
		if !ok {
			return nil, p.errorf("undeclared variable \"%s\"", name)
		}
		//
		if err := p.expect(":="); err != nil {
			return nil, err
		}
		//
		value, err := p.parseTerm(v.Sort())
		if err != nil {
			return nil, err
		}
		//
		assignments = append(assignments, lps.Assignment{Variable: v, Value: value})
	}
	//
	p.expect(")")
	//
	return assignments, nil
}

// ===================================================================
// Expressions
// ===================================================================

// parseExpression parses a Boolean expression: disjunctions of conjunctions
// of (possibly negated) comparisons.
func (p *parser) parseExpression() (data.Expression, error) {
	lhs, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}
	//
	for p.lookahead() == '|' && p.lookahead2() == '|' {
		p.expect("||")
		//
		rhs, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		//
		lhs = data.Or(lhs, rhs)
	}
	//
	return lhs, nil
}

func (p *parser) parseConjunction() (data.Expression, error) {
	lhs, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	//
	for p.lookahead() == '&' {
		p.expect("&&")
		//
		rhs, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		//
		lhs = data.And(lhs, rhs)
	}
	//
	return lhs, nil
}

func (p *parser) parseComparison() (data.Expression, error) {
	if p.lookahead() == '!' {
		p.expect("!")
		//
		e, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		//
		return data.Not(e), nil
	}
	//
	if p.lookahead() == '(' {
		p.expect("(")
		//
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		//
		return e, p.expect(")")
	}
	//
	lhs, err := p.parseTerm(nil)
	if err != nil {
		return nil, err
	}
	//
	if p.lookahead() != '=' {
		if !lhs.Sort().Equals(data.SortBool) {
			return nil, p.errorf("expected Boolean expression, found sort %s", lhs.Sort())
		}
		//
		return lhs, nil
	}
	//
	if err := p.expect("=="); err != nil {
		return nil, err
	}
	//
	rhs, err := p.parseTerm(lhs.Sort())
	if err != nil {
		return nil, err
	}
	//
	return data.EqualTo(lhs, rhs), nil
}

// parseTerm parses a variable, literal or constant of the given expected
// sort.  A nil expected sort means "infer": variables carry their declared
// sort, numerals default to Nat and the literals true/false to Bool.
func (p *parser) parseTerm(expected data.Sort) (data.Expression, error) {
	name := p.next()
	if name == "" {
		return nil, p.errorf("expected term")
	}
	//
	switch name {
	case "true":
		return data.True(), nil
	case "false":
		return data.False(), nil
	}
	//
	if v, ok := p.scope[name]; ok {
		if expected != nil && !v.Sort().Equals(expected) {
			return nil, p.errorf("variable \"%s\" has sort %s, expected %s", name, v.Sort(), expected)
		}
		//
		return v, nil
	}
	// A literal of the expected sort
	sort := expected
	if sort == nil {
		sort = data.NamedSort("Nat")
	}
	//
	return data.NewFunctionSymbol(name, sort), nil
}

func (p *parser) parseSortList() ([]data.Sort, error) {
	var sorts []data.Sort
	//
	for {
		name := p.next()
		//
		sort, ok := p.sorts[name]
		if !ok {
			return nil, p.errorf("undeclared sort \"%s\"", name)
		}
		//
		sorts = append(sorts, sort)
		//
		if p.lookahead() != '#' {
			break
		}

		p.expect("#")
	}
	//
	return sorts, nil
}

// x: Nat, y: Nat
func (p *parser) parseTypedVariables() ([]*data.Variable, error) {
	var vars []*data.Variable
	//
	for {
		name := p.next()
		if name == "" {
			return nil, p.errorf("expected variable name")
		}
		//
		if err := p.expect(":"); err != nil {
			return nil, err
		}
		//
		sortName := p.next()
		//
		sort, ok := p.sorts[sortName]
		if !ok {
			return nil, p.errorf("undeclared sort \"%s\"", sortName)
		}
		//
		vars = append(vars, data.NewVariable(name, sort))
		//
		if p.lookahead() != ',' {
			break
		}

		p.expect(",")
	}
	//
	return vars, nil
}

// ===================================================================
// Scanning
// ===================================================================

// next consumes and returns the next word (identifier or number), or the
// empty string at end of input or before punctuation.
func (p *parser) next() string {
	p.skipWhitespace()
	//
	start := p.index
	for p.index < len(p.text) && isWordRune(p.text[p.index]) {
		p.index++
	}
	//
	return string(p.text[start:p.index])
}

// lookahead returns the next non-whitespace rune without consuming it, or 0
// at end of input.
func (p *parser) lookahead() rune {
	p.skipWhitespace()
	//
	if p.index >= len(p.text) {
		return 0
	}
	//
	return p.text[p.index]
}

// lookahead2 returns the rune following the lookahead, or 0.
func (p *parser) lookahead2() rune {
	p.skipWhitespace()
	//
	if p.index+1 >= len(p.text) {
		return 0
	}
	//
	return p.text[p.index+1]
}

// lookaheadWord returns the next word without consuming it.
func (p *parser) lookaheadWord() string {
	saved := p.index
	word := p.next()
	p.index = saved
	//
	return word
}

// expect consumes the given punctuation, reporting an error otherwise.
func (p *parser) expect(symbol string) error {
	p.skipWhitespace()
	//
	for _, r := range symbol {
		if p.index >= len(p.text) || p.text[p.index] != r {
			return p.errorf("expected \"%s\"", symbol)
		}

		p.index++
	}
	//
	return nil
}

func (p *parser) skipWhitespace() {
	for p.index < len(p.text) {
		r := p.text[p.index]
		//
		switch {
		case r == '%':
			for p.index < len(p.text) && p.text[p.index] != '\n' {
				p.index++
			}
		case unicode.IsSpace(r):
			p.index++
		default:
			return
		}
	}
}

func (p *parser) errorf(format string, args ...any) error {
	line, column := 1, 1
	//
	for i := 0; i < p.index && i < len(p.text); i++ {
		if p.text[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	//
	return &SyntaxError{line, column, fmt.Sprintf(format, args...)}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\''
}
