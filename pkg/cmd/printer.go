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
package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/consensys/go-mcrl2/pkg/data"
	"github.com/consensys/go-mcrl2/pkg/lps"
	"github.com/consensys/go-mcrl2/pkg/lps/parse"
	"github.com/consensys/go-mcrl2/pkg/util/termio"
)

// Printer encapsulates configuration options for printing linear processes
// in human-readable form.
type Printer struct {
	// Enable ANSI
	ansiEscapes bool
	// Maximum width to print
	maxWidth uint
}

// NewPrinter constructs a default printer.
func NewPrinter() *Printer {
	return &Printer{termio.IsTerminal(), termio.TerminalWidth()}
}

// AnsiEscapes can be used to enable or disable the use of ANSI escape sequences
// (e.g. for showing colour in a terminal, etc)
func (p *Printer) AnsiEscapes(enable bool) *Printer {
	p.ansiEscapes = enable
	return p
}

// Print the given linear process to stdout, one summand per line.
func (p *Printer) Print(proc *lps.LinearProcess) {
	for i := range proc.ActionSummands {
		s := &proc.ActionSummands[i]
		//
		line := fmt.Sprintf("%s -> %s",
			termio.Colourise(s.Condition.String(), termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW), p.ansiEscapes),
			termio.Colourise(s.MultiAction.String(), termio.NewAnsiEscape().FgColour(termio.TERM_CYAN), p.ansiEscapes))
		//
		fmt.Println(p.truncate(line))
	}
	//
	for i := range proc.DeadlockSummands {
		s := &proc.DeadlockSummands[i]
		//
		line := fmt.Sprintf("%s -> %s",
			termio.Colourise(s.Condition.String(), termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW), p.ansiEscapes),
			termio.Colourise("delta", termio.NewAnsiEscape().FgColour(termio.TERM_RED), p.ansiEscapes))
		//
		fmt.Println(p.truncate(line))
	}
}

// Truncate overlong lines to the terminal width.  ANSI escapes are counted
// towards the width, so coloured lines may be truncated slightly early.
func (p *Printer) truncate(line string) string {
	if uint(len(line)) <= p.maxWidth {
		return line
	}
	//
	return line[:p.maxWidth-3] + "..."
}

// RenderSpec renders a composed process back into the .lin format, such that
// the output parses again.
func RenderSpec(spec *parse.Spec, proc *lps.LinearProcess) string {
	var builder strings.Builder
	//
	for _, sort := range spec.Sorts {
		fmt.Fprintf(&builder, "sort %s;\n", sort)
	}
	//
	// Render actions in a stable order
	names := make([]string, 0, len(spec.Actions))
	for name := range spec.Actions {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	for _, name := range names {
		sorts := spec.Actions[name]
		//
		if len(sorts) == 0 {
			fmt.Fprintf(&builder, "act %s;\n", name)
		} else {
			strs := make([]string, len(sorts))
			for i, s := range sorts {
				strs[i] = s.String()
			}

			fmt.Fprintf(&builder, "act %s: %s;\n", name, strings.Join(strs, " # "))
		}
	}
	//
	for _, v := range spec.Process.Parameters {
		fmt.Fprintf(&builder, "var %s: %s;\n", v.Name(), v.Sort())
	}
	//
	for i := range proc.ActionSummands {
		renderSummand(&builder, &proc.ActionSummands[i])
	}
	//
	for i := range proc.DeadlockSummands {
		renderDeadlock(&builder, &proc.DeadlockSummands[i])
	}
	//
	return builder.String()
}

func renderSummand(builder *strings.Builder, s *lps.ActionSummand) {
	builder.WriteString("proc ")
	renderSumVars(builder, s.SumVars)
	//
	fmt.Fprintf(builder, "(%s) -> %s", s.Condition, s.MultiAction)
	//
	if s.Time != nil {
		fmt.Fprintf(builder, " @ %s", s.Time)
	}
	//
	if len(s.NextState) != 0 {
		assignments := make([]string, len(s.NextState))
		for i, a := range s.NextState {
			assignments[i] = fmt.Sprintf("%s := %s", a.Variable.Name(), a.Value)
		}
		//
		fmt.Fprintf(builder, " . P(%s)", strings.Join(assignments, ", "))
	}
	//
	builder.WriteString(";\n")
}

func renderDeadlock(builder *strings.Builder, s *lps.DeadlockSummand) {
	builder.WriteString("proc ")
	renderSumVars(builder, s.SumVars)
	//
	fmt.Fprintf(builder, "(%s) -> delta", s.Condition)
	//
	if s.Time != nil {
		fmt.Fprintf(builder, " @ %s", s.Time)
	}
	//
	builder.WriteString(";\n")
}

func renderSumVars(builder *strings.Builder, vars []*data.Variable) {
	if len(vars) == 0 {
		return
	}
	//
	strs := make([]string, len(vars))
	for i, v := range vars {
		strs[i] = fmt.Sprintf("%s: %s", v.Name(), v.Sort())
	}
	//
	fmt.Fprintf(builder, "sum %s . ", strings.Join(strs, ", "))
}
