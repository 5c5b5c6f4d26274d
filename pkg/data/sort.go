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
	"strings"
)

// Sort represents the sort (i.e. type) of a data expression.  Sorts are either
// named sorts, such as Bool or Nat, or function sorts constructed from them.
type Sort interface {
	// IsFunctionSort determines whether this is a function sort.
	IsFunctionSort() bool
	// Equals determines whether this sort is identical to another.
	Equals(other Sort) bool
	// String returns a human-readable rendering of this sort.
	String() string
}

// NamedSort is a sort identified by name alone (e.g. Bool, Nat).
type NamedSort string

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Sort = NamedSort("")

// IsFunctionSort for a named sort is always false.
func (s NamedSort) IsFunctionSort() bool { return false }

// Equals determines whether this sort is identical to another.
func (s NamedSort) Equals(other Sort) bool {
	o, ok := other.(NamedSort)
	return ok && s == o
}

func (s NamedSort) String() string { return string(s) }

// FunctionSort is the sort of a function from zero or more domain sorts to a
// codomain sort.
type FunctionSort struct {
	domain   []Sort
	codomain Sort
}

var _ Sort = &FunctionSort{}

// NewFunctionSort constructs a function sort with the given domain and
// codomain.
func NewFunctionSort(domain []Sort, codomain Sort) *FunctionSort {
	return &FunctionSort{domain, codomain}
}

// Domain returns the domain sorts of this function sort.
func (s *FunctionSort) Domain() []Sort { return s.domain }

// Codomain returns the codomain sort of this function sort.
func (s *FunctionSort) Codomain() Sort { return s.codomain }

// IsFunctionSort for a function sort is always true.
func (s *FunctionSort) IsFunctionSort() bool { return true }

// Equals determines whether this sort is identical to another.
func (s *FunctionSort) Equals(other Sort) bool {
	o, ok := other.(*FunctionSort)
	//
	if !ok || len(s.domain) != len(o.domain) {
		return false
	}
	//
	for i := range s.domain {
		if !s.domain[i].Equals(o.domain[i]) {
			return false
		}
	}
	//
	return s.codomain.Equals(o.codomain)
}

func (s *FunctionSort) String() string {
	var builder strings.Builder
	//
	for i, d := range s.domain {
		if i != 0 {
			builder.WriteString(" # ")
		}

		builder.WriteString(d.String())
	}
	//
	builder.WriteString(" -> ")
	builder.WriteString(s.codomain.String())
	//
	return builder.String()
}

// EqualSorts determines whether two sort lists are identical, element for
// element.
func EqualSorts(lhs []Sort, rhs []Sort) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	//
	for i := range lhs {
		if !lhs[i].Equals(rhs[i]) {
			return false
		}
	}
	//
	return true
}

// CompareSorts provides a total order on sort lists based on their renderings.
// This is used for the canonical ordering of action labels.
func CompareSorts(lhs []Sort, rhs []Sort) int {
	var l, r strings.Builder
	//
	for _, s := range lhs {
		l.WriteString(s.String())
		l.WriteString("#")
	}
	//
	for _, s := range rhs {
		r.WriteString(s.String())
		r.WriteString("#")
	}
	//
	return strings.Compare(l.String(), r.String())
}
