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

package stats

import "sync/atomic"

// Counter is a goroutine-safe Recorder implementation. A single Counter may be
// shared by many ring.Deque instances to aggregate their statistics.
type Counter struct {
	grows          atomic.Uint64
	shrinks        atomic.Uint64
	copiedElements atomic.Uint64
	peakCapacity   atomic.Uint64
}

var (
	_ Recorder   = (*Counter)(nil)
	_ Snapshoter = (*Counter)(nil)
)

// NewCounter constructs a Counter instance with all counts initialized to zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Snapshot returns a snapshot of this recorder's values. Note that this may be an inconsistent view, as it
// may be interleaved with update operations.
func (c *Counter) Snapshot() Stats {
	return Stats{
		Grows:          c.grows.Load(),
		Shrinks:        c.shrinks.Load(),
		CopiedElements: c.copiedElements.Load(),
		PeakCapacity:   c.peakCapacity.Load(),
	}
}

// RecordGrow records a doubling of a backing store.
func (c *Counter) RecordGrow(from, to int) {
	c.grows.Add(1)
	c.observeCapacity(to)
}

// RecordShrink records the reallocation of a sparse backing store.
func (c *Counter) RecordShrink(from, to int) {
	c.shrinks.Add(1)
	c.observeCapacity(from)
}

// RecordCopy records that n elements were moved into a new backing store.
func (c *Counter) RecordCopy(n int) {
	//nolint:gosec // n is a deque length and never negative
	c.copiedElements.Add(uint64(n))
}

func (c *Counter) observeCapacity(capacity int) {
	//nolint:gosec // capacities are positive
	v := uint64(capacity)
	for {
		peak := c.peakCapacity.Load()
		if v <= peak || c.peakCapacity.CompareAndSwap(peak, v) {
			return
		}
	}
}
