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
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-mcrl2/pkg/data"
	"github.com/consensys/go-mcrl2/pkg/lps"
	"github.com/consensys/go-mcrl2/pkg/process"
)

// Config determines how the communication composition is applied.
type Config struct {
	// Rules of the communication function
	Rules []process.CommunicationRule
	// IsAllow requests inline filtering against AllowList
	IsAllow bool
	// IsBlock requests inline filtering against BlockList
	IsBlock bool
	// AllowList of permitted multi-action name multisets
	AllowList []process.NameMultiset
	// BlockList of forbidden action names
	BlockList []string
	// Termination action, exempt from allow filtering
	Termination process.Action
	// NoSumelm disables the sum-elimination step on new summands
	NoSumelm bool
	// NoDeltaElimination disables merging of deadlock summands
	NoDeltaElimination bool
	// IgnoreTime indicates the process is untimed
	IgnoreTime bool
	// Rewriter normalises conditions
	Rewriter data.Rewriter
}

// Stats counts the fate of candidate summands during one composition pass.
// The counters are reported but never influence control flow.
type Stats struct {
	// Disallowed counts alternatives removed by the allow filter
	Disallowed uint
	// Blocked counts alternatives removed by the block filter
	Blocked uint
	// FalseCondition counts alternatives whose condition rewrote to false
	FalseCondition uint
	// Added counts alternatives kept
	Added uint
}

// Compose applies the communication operator, optionally fused with an allow
// or block operator, to every action summand of the given linear process.
// The process is updated in place; input summand order is preserved, and
// within one input summand the alternatives appear in enumeration order.
//
// Unless an inline filter is active, every action summand also contributes a
// shadow deadlock summand: with communication the conditions of summands
// become much more complex, and many of their actions are later replaced by
// delta.  A delta summand with the original, simple condition makes those
// removable again.
func Compose(cfg Config, proc *lps.LinearProcess) (Stats, error) {
	var stats Stats
	//
	if cfg.IsAllow && cfg.IsBlock {
		panic("inline allow and inline block are mutually exclusive")
	}
	//
	inlineAllow := cfg.IsAllow || cfg.IsBlock
	//
	if inlineAllow && (!cfg.IgnoreTime || cfg.NoDeltaElimination) {
		// Inline filtering is only supported for untimed processes, since
		// otherwise generation of delta summands cannot be inlined in any
		// simple way.
		panic("inline allow/block requires ignore-time and delta elimination")
	}
	//
	switch {
	case cfg.IsAllow:
		log.Debugf("calculating the communication operator modulo the allow operator on %d action summands",
			len(proc.ActionSummands))
	case cfg.IsBlock:
		log.Debugf("calculating the communication operator modulo the block operator on %d action summands",
			len(proc.ActionSummands))
	default:
		log.Debugf("calculating the communication operator on %d action summands", len(proc.ActionSummands))
	}
	//
	log.Infof("calculating communication operator using a set of %d communication expressions", len(cfg.Rules))
	// Canonicalise the rules and the allow list; the composition relies on
	// this order.
	rules := process.SortCommunications(cfg.Rules)
	allowlist := cfg.AllowList
	//
	if cfg.IsAllow {
		allowlist = process.SortNameMultisets(allowlist)
	}
	// Shadow deadlock summands accumulate here, after the incoming ones.
	resultingDeadlocks := proc.DeadlockSummands
	proc.DeadlockSummands = nil
	//
	if inlineAllow {
		proc.DeadlockSummands = []lps.DeadlockSummand{{SumVars: nil, Condition: data.True(), Time: nil}}
	}
	// The communication table lives for the whole pass.
	table := NewCommTable(rules)
	//
	var resultingSummands []lps.ActionSummand
	//
	for i := range proc.ActionSummands {
		summand := &proc.ActionSummands[i]
		//
		if !inlineAllow {
			resultingDeadlocks = append(resultingDeadlocks, shadowDeadlock(summand))
		}
		//
		alternatives, err := gamma(summand.MultiAction, table, process.MultiAction{}, cfg.Rewriter)
		if err != nil {
			return stats, err
		}
		//
		log.Infof("calculating communication on multiaction with %d actions results in %d potential summands",
			len(summand.MultiAction), alternatives.Size())
		//
		resultingSummands = composeSummand(cfg, summand, &alternatives, allowlist, resultingSummands, &stats)
	}
	//
	proc.ActionSummands = resultingSummands
	// Re-add the deadlock summands.
	if !inlineAllow && !cfg.NoDeltaElimination {
		for _, d := range resultingDeadlocks {
			lps.InsertTimedDeltaSummand(&proc.DeadlockSummands, d, cfg.IgnoreTime)
		}
	}
	//
	log.Infof("statistics of new summands: disallowed %d, blocked %d, false condition %d, added %d",
		stats.Disallowed, stats.Blocked, stats.FalseCondition, stats.Added)
	log.Debugf("resulting in %d action summands and %d delta summands",
		len(proc.ActionSummands), len(proc.DeadlockSummands))
	//
	return stats, nil
}

// composeSummand turns the alternatives of one input summand into new action
// summands, filtering, rewriting and applying sum elimination as configured.
func composeSummand(cfg Config, summand *lps.ActionSummand, alternatives *TupleList,
	allowlist []process.NameMultiset, result []lps.ActionSummand, stats *Stats) []lps.ActionSummand {
	//
	for i := uint(0); i < alternatives.Size(); i++ {
		multiaction := alternatives.actions[i]
		//
		if cfg.IsAllow && !lps.Allow(allowlist, multiaction, cfg.Termination) {
			stats.Disallowed++
			continue
		}
		//
		if cfg.IsBlock && lps.Encap(cfg.BlockList, multiaction) {
			stats.Blocked++
			continue
		}
		//
		communicationCondition := cfg.Rewriter.Rewrite(alternatives.conditions[i])
		newCondition := cfg.Rewriter.Rewrite(data.And(summand.Condition, communicationCondition))
		//
		newSummand := lps.ActionSummand{
			SumVars:      summand.SumVars,
			Condition:    newCondition,
			MultiAction:  multiaction,
			Time:         summand.Time,
			NextState:    summand.NextState,
			Distribution: summand.Distribution,
		}
		//
		if !cfg.NoSumelm && lps.Sumelm(&newSummand) {
			newSummand.Condition = cfg.Rewriter.Rewrite(newSummand.Condition)
		}
		//
		if data.IsFalse(newSummand.Condition) {
			stats.FalseCondition++
			continue
		}
		//
		result = append(result, newSummand)
		stats.Added++
	}
	//
	return result
}

// shadowDeadlock builds the deadlock summand recalling that a deadlock can
// always happen where the original summand was possible.  Only summation
// variables occurring in the condition or the timestamp are kept.
func shadowDeadlock(summand *lps.ActionSummand) lps.DeadlockSummand {
	var sumvars []*data.Variable
	//
	for _, v := range summand.SumVars {
		if data.Occurs(v.Name(), summand.Condition) || data.Occurs(v.Name(), summand.Time) {
			sumvars = append(sumvars, v)
		}
	}
	//
	return lps.DeadlockSummand{SumVars: sumvars, Condition: summand.Condition, Time: summand.Time}
}
