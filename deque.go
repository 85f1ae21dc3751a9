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

// Package ring provides Deque, a double-ended queue backed by a growable
// circular buffer.
package ring

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"github.com/ringlab/ring/stats"
)

const (
	defaultCapacity        = 8
	defaultShrinkWatermark = 16

	// MaxCapacity is the largest backing store a Deque may allocate.
	MaxCapacity = 1 << (bits.UintSize - 4)
)

// ErrCapacityOverflow is the panic value of an insert that would grow a Deque past MaxCapacity.
var ErrCapacityOverflow = errors.New("ring: deque capacity overflow")

// Sequence is any finite collection that knows its length and can be traversed front to back.
type Sequence[T any] interface {
	Len() int
	All() iter.Seq[T]
}

var _ Sequence[int] = (*Deque[int])(nil)

// Deque is a double-ended queue backed by a circular buffer.
//
// AddFirst moves the front index forward and AddLast moves the back index
// backward, so the logical order front to back is front, front-1, ..., back
// modulo the capacity. An empty Deque keeps front one slot behind back.
//
// The backing store starts at a power of two and doubles when an insert finds
// it full. After a removal leaves it less than a quarter full, and the Deque
// still holds more elements than the shrink watermark, the store shrinks to
// exactly the current length.
//
// The zero value is an empty Deque ready to use with default options.
// Deque is not safe for concurrent use.
type Deque[T any] struct {
	buf           []T
	front         int
	back          int
	size          int
	watermark     int
	disableShrink bool
	recorder      stats.Recorder
	logger        Logger
}

// New returns an empty Deque configured by o. A nil o uses the defaults.
func New[T any](o *Options) (*Deque[T], error) {
	var opts Options
	if o != nil {
		opts = *o
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.setDefaults()

	d := &Deque[T]{}
	d.init(&opts)
	return d, nil
}

// Must creates a configured Deque instance or
// panics if invalid parameters were specified.
func Must[T any](o *Options) *Deque[T] {
	d, err := New[T](o)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Deque[T]) init(o *Options) {
	capacity := o.getInitialCapacity()
	d.buf = make([]T, capacity)
	d.back = 0
	d.front = capacity - 1
	d.size = 0
	d.watermark = o.getShrinkWatermark()
	d.disableShrink = o.DisableShrink
	d.recorder = o.StatsRecorder
	d.logger = o.Logger
}

func (d *Deque[T]) lazyInit() {
	if d.buf != nil {
		return
	}
	var opts Options
	opts.setDefaults()
	d.init(&opts)
}

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.size
}

// IsEmpty reports whether the Deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.Len() == 0
}

// Cap returns the current capacity of the backing store.
func (d *Deque[T]) Cap() int {
	if d == nil {
		return 0
	}
	return len(d.buf)
}

// AddFirst inserts item at the front of the Deque.
func (d *Deque[T]) AddFirst(item T) {
	d.growIfFull()
	d.front = d.next(d.front)
	d.buf[d.front] = item
	d.size++
}

// AddLast inserts item at the back of the Deque.
func (d *Deque[T]) AddLast(item T) {
	d.growIfFull()
	d.back = d.prev(d.back)
	d.buf[d.back] = item
	d.size++
}

// RemoveFirst removes and returns the front element. If the Deque is empty,
// it returns the zero value and false.
func (d *Deque[T]) RemoveFirst() (T, bool) {
	var zero T
	if d.IsEmpty() {
		return zero, false
	}

	item := d.buf[d.front]
	d.buf[d.front] = zero
	d.front = d.prev(d.front)
	d.size--
	d.shrinkIfSparse()
	return item, true
}

// RemoveLast removes and returns the back element. If the Deque is empty,
// it returns the zero value and false.
func (d *Deque[T]) RemoveLast() (T, bool) {
	var zero T
	if d.IsEmpty() {
		return zero, false
	}

	item := d.buf[d.back]
	d.buf[d.back] = zero
	d.back = d.next(d.back)
	d.size--
	d.shrinkIfSparse()
	return item, true
}

// PeekFirst returns the front element without removing it.
func (d *Deque[T]) PeekFirst() (T, bool) {
	return d.Get(0)
}

// PeekLast returns the back element without removing it.
func (d *Deque[T]) PeekLast() (T, bool) {
	return d.Get(d.Len() - 1)
}

// Get returns the element at logical position i, where 0 is the front.
// It returns false if i is outside [0, Len()).
func (d *Deque[T]) Get(i int) (T, bool) {
	if i < 0 || i >= d.Len() {
		var zero T
		return zero, false
	}
	return d.buf[d.wrap(d.front-i)], true
}

// Clear removes all elements but keeps the current capacity.
func (d *Deque[T]) Clear() {
	if d.buf == nil {
		return
	}
	clear(d.buf)
	d.back = 0
	d.front = len(d.buf) - 1
	d.size = 0
}

// All returns an iterator over the elements from front to back.
// Every call to the returned iterator starts a new traversal.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if d == nil {
			return
		}
		d.walk(cursor{start: d.front, length: d.size, step: -1}, yield)
	}
}

// Backward returns an iterator over the elements from back to front.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if d == nil {
			return
		}
		d.walk(cursor{start: d.back, length: d.size, step: 1}, yield)
	}
}

// Slice returns the elements from front to back in a newly allocated slice.
func (d *Deque[T]) Slice() []T {
	s := make([]T, 0, d.Len())
	for item := range d.All() {
		s = append(s, item)
	}
	return s
}

// EqualFunc reports whether other has the same length as d and
// eq holds for every pair of elements in iteration order.
func (d *Deque[T]) EqualFunc(other Sequence[T], eq func(a, b T) bool) bool {
	if other == nil || d.Len() != other.Len() {
		return false
	}

	i := 0
	for b := range other.All() {
		a, ok := d.Get(i)
		if !ok || !eq(a, b) {
			return false
		}
		i++
	}
	return i == d.Len()
}

// Equal reports whether d and other hold equal elements in the same order.
func Equal[T comparable](d *Deque[T], other Sequence[T]) bool {
	return d.EqualFunc(other, func(a, b T) bool {
		return a == b
	})
}

// EqualAny is like Equal, but accepts any value. Values that are not a
// Sequence of T are never equal to d.
func EqualAny[T comparable](d *Deque[T], other any) bool {
	s, ok := other.(Sequence[T])
	if !ok {
		return false
	}
	return Equal(d, s)
}

// String formats the elements from front to back separated by spaces.
func (d *Deque[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for item := range d.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, item)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Stats returns the resize statistics collected by the configured recorder.
// If the recorder cannot produce snapshots, the zero Stats is returned.
func (d *Deque[T]) Stats() stats.Stats {
	if d == nil {
		return stats.Stats{}
	}
	if s, ok := d.recorder.(stats.Snapshoter); ok {
		return s.Snapshot()
	}
	return stats.Stats{}
}

func (d *Deque[T]) next(i int) int {
	i++
	if i == len(d.buf) {
		return 0
	}
	return i
}

func (d *Deque[T]) prev(i int) int {
	if i == 0 {
		return len(d.buf) - 1
	}
	return i - 1
}

// wrap reduces i, which may be negative but not below -len(d.buf), to a slot index.
func (d *Deque[T]) wrap(i int) int {
	c := len(d.buf)
	return (i%c + c) % c
}

func (d *Deque[T]) growIfFull() {
	d.lazyInit()
	if d.size < len(d.buf) {
		return
	}

	capacity := len(d.buf)
	if capacity > MaxCapacity/2 {
		d.logger.Error(context.Background(), "ring: deque cannot grow", ErrCapacityOverflow)
		panic(ErrCapacityOverflow)
	}
	d.resize(2 * capacity)
	d.recorder.RecordGrow(capacity, len(d.buf))
}

func (d *Deque[T]) shrinkIfSparse() {
	if d.disableShrink || d.size <= d.watermark || d.size*4 >= len(d.buf) {
		return
	}

	capacity := len(d.buf)
	d.resize(max(d.size, 1))
	d.recorder.RecordShrink(capacity, len(d.buf))
}

// resize moves the live elements into a store of the given capacity.
// The copy walks the old store with the old capacity, starting at back,
// so the new store holds the elements back to front in [0, size).
func (d *Deque[T]) resize(capacity int) {
	old := d.buf
	buf := make([]T, capacity)
	if d.back+d.size <= len(old) {
		copy(buf, old[d.back:d.back+d.size])
	} else {
		n := copy(buf, old[d.back:])
		copy(buf[n:], old[:d.size-n])
	}

	d.buf = buf
	d.back = 0
	d.front = d.wrap(d.size - 1)
	d.recorder.RecordCopy(d.size)
}
