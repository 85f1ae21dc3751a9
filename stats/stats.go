// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package stats collects statistics about the resizes of a ring.Deque.
package stats

import "math"

// Stats are statistics about the resizes of one or more ring.Deque instances.
type Stats struct {
	// Grows is the number of times a backing store doubled because an insert found it full.
	Grows uint64
	// Shrinks is the number of times a backing store was reallocated to the current length
	// after a removal left it less than a quarter full.
	Shrinks uint64
	// CopiedElements is the total number of elements moved between backing stores.
	CopiedElements uint64
	// PeakCapacity is the largest capacity observed across all resizes.
	PeakCapacity uint64
}

// Resizes returns the total number of reallocations of the backing store.
//
// NOTE: the values of the metrics are undefined in case of overflow.
func (s Stats) Resizes() uint64 {
	return checkedAdd(s.Grows, s.Shrinks)
}

// AverageCopy returns the average number of elements moved per resize.
func (s Stats) AverageCopy() float64 {
	resizes := s.Resizes()
	if resizes == 0 {
		return 0.0
	}
	return float64(s.CopiedElements) / float64(resizes)
}

// Plus returns the sum of s and other. PeakCapacity is the larger of the two.
func (s Stats) Plus(other Stats) Stats {
	return Stats{
		Grows:          checkedAdd(s.Grows, other.Grows),
		Shrinks:        checkedAdd(s.Shrinks, other.Shrinks),
		CopiedElements: checkedAdd(s.CopiedElements, other.CopiedElements),
		PeakCapacity:   max(s.PeakCapacity, other.PeakCapacity),
	}
}

func checkedAdd(a, b uint64) uint64 {
	s := a + b
	if s < a || s < b {
		return math.MaxUint64
	}
	return s
}
