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

package ring

// cursor describes a traversal of the backing store: length slots visited
// from start, moving step slots at a time.
type cursor struct {
	start  int
	length int
	step   int
}

// at returns the slot of the i-th visited element in a store of the given capacity.
func (c cursor) at(i, capacity int) int {
	j := (c.start + c.step*i) % capacity
	if j < 0 {
		j += capacity
	}
	return j
}

func (d *Deque[T]) walk(c cursor, yield func(T) bool) {
	for i := 0; i < c.length; i++ {
		capacity := len(d.buf)
		if capacity == 0 {
			return
		}
		if !yield(d.buf[c.at(i, capacity)]) {
			return
		}
	}
}
