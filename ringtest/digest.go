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

package ringtest

import (
	"iter"
	"math/bits"

	"github.com/dolthub/maphash"
	"github.com/dolthub/swiss"
)

// digester computes an order-sensitive fingerprint of a sequence.
type digester struct {
	hasher maphash.Hasher[int]
}

func newDigester() digester {
	return digester{hasher: maphash.NewHasher[int]()}
}

func (d digester) digest(seq iter.Seq[int]) (sum uint64, n int) {
	for v := range seq {
		sum = bits.RotateLeft64(sum, 7) ^ d.hasher.Hash(v)
		n++
	}
	return sum ^ uint64(n), n
}

// tally is the multiset of values every subject is expected to hold.
type tally struct {
	m *swiss.Map[int, int]
}

func newTally() tally {
	return tally{m: swiss.NewMap[int, int](64)}
}

func (t tally) add(v int) {
	c, _ := t.m.Get(v)
	t.m.Put(v, c+1)
}

// remove reports whether v was present.
func (t tally) remove(v int) bool {
	c, ok := t.m.Get(v)
	if !ok {
		return false
	}
	if c == 1 {
		t.m.Delete(v)
		return true
	}
	t.m.Put(v, c-1)
	return true
}

// matches reports whether seq holds exactly the values of the tally.
func (t tally) matches(seq iter.Seq[int]) bool {
	seen := swiss.NewMap[int, int](uint32(t.m.Count()))
	for v := range seq {
		c, _ := seen.Get(v)
		seen.Put(v, c+1)
	}
	if seen.Count() != t.m.Count() {
		return false
	}

	ok := true
	t.m.Iter(func(v, want int) bool {
		got, _ := seen.Get(v)
		if got != want {
			ok = false
		}
		return !ok
	})
	return ok
}
