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
package array

// Comparable interface which can be implemented by non-primitive types.
type Comparable[T any] interface {
	// Cmp returns < 0 if this is less than other, or 0 if they are equal, or >
	// 0 if this is greater than other.
	Cmp(other T) int
}

// Insert creates a new slice containing the result of inserting the given item
// at the last position which preserves the (assumed) sorted order of the
// slice under the given comparison.  Items comparing equal to the new item end
// up immediately before it.  The given slice is not modified.
func Insert[T Comparable[T]](item T, slice []T) []T {
	n := len(slice)
	// Find insertion point
	i := 0
	for i < n && slice[i].Cmp(item) <= 0 {
		i++
	}
	// Make space for new slice
	nslice := make([]T, n+1)
	// Copy either side of the insertion point
	copy(nslice, slice[:i])
	nslice[i] = item
	copy(nslice[i+1:], slice[i:])
	// Done
	return nslice
}

// Reverse creates a new slice containing the elements of the given slice in
// reverse order.  The given slice is not modified.
func Reverse[T any](slice []T) []T {
	n := len(slice)
	nslice := make([]T, n)
	//
	for i := range slice {
		nslice[n-1-i] = slice[i]
	}
	//
	return nslice
}
