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

	"github.com/gammazero/deque"

	"github.com/ringlab/ring"
)

// Subject is a double-ended queue under test.
type Subject[T any] interface {
	// Name identifies the subject in reports and errors.
	Name() string
	AddFirst(item T)
	AddLast(item T)
	RemoveFirst() (T, bool)
	RemoveLast() (T, bool)
	Get(i int) (T, bool)
	Len() int
	All() iter.Seq[T]
}

var (
	_ Subject[int] = (*Ring[int])(nil)
	_ Subject[int] = (*Gammazero[int])(nil)
	_ Subject[int] = (*Slice[int])(nil)
)

// Ring adapts a ring.Deque to Subject.
type Ring[T any] struct {
	*ring.Deque[T]
}

// NewRing wraps d. A nil d is replaced by a Deque with default options.
func NewRing[T any](d *ring.Deque[T]) *Ring[T] {
	if d == nil {
		d = ring.Must[T](nil)
	}
	return &Ring[T]{Deque: d}
}

func (r *Ring[T]) Name() string {
	return "ring"
}

// Gammazero adapts github.com/gammazero/deque to Subject. Its pops and
// indexing panic out of range, so the adapter checks bounds first.
type Gammazero[T any] struct {
	q *deque.Deque[T]
}

// NewGammazero returns an empty Gammazero subject.
func NewGammazero[T any]() *Gammazero[T] {
	return &Gammazero[T]{q: deque.New[T]()}
}

func (g *Gammazero[T]) Name() string {
	return "gammazero"
}

func (g *Gammazero[T]) AddFirst(item T) {
	g.q.PushFront(item)
}

func (g *Gammazero[T]) AddLast(item T) {
	g.q.PushBack(item)
}

func (g *Gammazero[T]) RemoveFirst() (T, bool) {
	if g.q.Len() == 0 {
		var zero T
		return zero, false
	}
	return g.q.PopFront(), true
}

func (g *Gammazero[T]) RemoveLast() (T, bool) {
	if g.q.Len() == 0 {
		var zero T
		return zero, false
	}
	return g.q.PopBack(), true
}

func (g *Gammazero[T]) Get(i int) (T, bool) {
	if i < 0 || i >= g.q.Len() {
		var zero T
		return zero, false
	}
	return g.q.At(i), true
}

func (g *Gammazero[T]) Len() int {
	return g.q.Len()
}

func (g *Gammazero[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < g.q.Len(); i++ {
			if !yield(g.q.At(i)) {
				return
			}
		}
	}
}

// Slice is a deliberately naive Subject over a plain slice.
// AddFirst is O(n), which is fine for a model.
type Slice[T any] struct {
	items []T
}

// NewSlice returns an empty Slice subject.
func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{}
}

func (s *Slice[T]) Name() string {
	return "slice"
}

func (s *Slice[T]) AddFirst(item T) {
	var zero T
	s.items = append(s.items, zero)
	copy(s.items[1:], s.items)
	s.items[0] = item
}

func (s *Slice[T]) AddLast(item T) {
	s.items = append(s.items, item)
}

func (s *Slice[T]) RemoveFirst() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	item := s.items[0]
	s.items[0] = zero
	s.items = s.items[1:]
	return item, true
}

func (s *Slice[T]) RemoveLast() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	n := len(s.items) - 1
	item := s.items[n]
	s.items[n] = zero
	s.items = s.items[:n]
	return item, true
}

func (s *Slice[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

func (s *Slice[T]) Len() int {
	return len(s.items)
}

func (s *Slice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}
