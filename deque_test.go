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

import (
	"fmt"
	"testing"
)

func TestEmpty(t *testing.T) {
	t.Parallel()

	q := Must[string](nil)
	if q.Len() != 0 {
		t.Error("q.Len() =", q.Len(), "expect 0")
	}
	if !q.IsEmpty() {
		t.Error("expected q.IsEmpty()")
	}
	if q.Cap() != defaultCapacity {
		t.Error("q.Cap() =", q.Cap(), "expect", defaultCapacity)
	}
	if _, ok := q.RemoveFirst(); ok {
		t.Error("RemoveFirst on empty deque should report absence")
	}
	if _, ok := q.RemoveLast(); ok {
		t.Error("RemoveLast on empty deque should report absence")
	}
	if _, ok := q.Get(0); ok {
		t.Error("Get on empty deque should report absence")
	}
	if q.Len() != 0 {
		t.Error("removals on empty deque changed its length to", q.Len())
	}
}

func TestNil(t *testing.T) {
	t.Parallel()

	var q *Deque[int]
	if q.Len() != 0 {
		t.Error("expected q.Len() == 0")
	}
	if q.Cap() != 0 {
		t.Error("expected q.Cap() == 0")
	}
	if _, ok := q.Get(0); ok {
		t.Error("Get on nil deque should report absence")
	}
	for range q.All() {
		t.Error("nil deque should not yield elements")
	}
	if q.Stats().Resizes() != 0 {
		t.Error("nil deque should not report resizes")
	}
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var q Deque[int]
	if q.Cap() != 0 {
		t.Error("zero value should not allocate before the first insert")
	}
	q.Clear()
	q.AddLast(1)
	q.AddFirst(0)
	if q.Cap() != defaultCapacity {
		t.Error("q.Cap() =", q.Cap(), "expect", defaultCapacity)
	}
	if v, _ := q.Get(0); v != 0 {
		t.Error("wrong value at front of queue")
	}
	if v, _ := q.Get(1); v != 1 {
		t.Error("wrong value at back of queue")
	}
}

func TestFrontBack(t *testing.T) {
	t.Parallel()

	q := Must[string](nil)
	q.AddLast("foo")
	q.AddLast("bar")
	q.AddLast("baz")
	if v, _ := q.PeekFirst(); v != "foo" {
		t.Error("wrong value at front of queue")
	}
	if v, _ := q.PeekLast(); v != "baz" {
		t.Error("wrong value at back of queue")
	}

	if v, _ := q.RemoveFirst(); v != "foo" {
		t.Error("wrong value removed from front of queue")
	}
	if v, _ := q.PeekFirst(); v != "bar" {
		t.Error("wrong value remaining at front of queue")
	}
	if v, _ := q.PeekLast(); v != "baz" {
		t.Error("wrong value remaining at back of queue")
	}

	if v, _ := q.RemoveLast(); v != "baz" {
		t.Error("wrong value removed from back of queue")
	}
	if v, _ := q.PeekFirst(); v != "bar" {
		t.Error("wrong value remaining at front of queue")
	}
	if v, _ := q.PeekLast(); v != "bar" {
		t.Error("wrong value remaining at back of queue")
	}

	q.RemoveLast()
	if _, ok := q.PeekFirst(); ok {
		t.Error("PeekFirst on empty deque should report absence")
	}
	if _, ok := q.PeekLast(); ok {
		t.Error("PeekLast on empty deque should report absence")
	}
}

func TestGrowShrinkBack(t *testing.T) {
	t.Parallel()

	q := Must[int](nil)
	size := 128

	for i := 0; i < size; i++ {
		if q.Len() != i {
			t.Error("q.Len() =", q.Len(), "expected", i)
		}
		q.AddFirst(i)
	}
	bufLen := q.Cap()

	// Remove from back.
	for i := 0; i < size; i++ {
		if q.Len() != size-i {
			t.Error("q.Len() =", q.Len(), "expected", size-i)
		}
		x, ok := q.RemoveLast()
		if !ok || x != i {
			t.Error("q.RemoveLast() =", x, "expected", i)
		}
	}
	if q.Len() != 0 {
		t.Error("q.Len() =", q.Len(), "expected 0")
	}
	if q.Cap() == bufLen {
		t.Error("queue buffer did not shrink")
	}
}

func TestGrowShrinkFront(t *testing.T) {
	t.Parallel()

	q := Must[int](nil)
	size := 128

	for i := 0; i < size; i++ {
		if q.Len() != i {
			t.Error("q.Len() =", q.Len(), "expected", i)
		}
		q.AddLast(i)
	}
	bufLen := q.Cap()

	// Remove from front.
	for i := 0; i < size; i++ {
		if q.Len() != size-i {
			t.Error("q.Len() =", q.Len(), "expected", size-i)
		}
		x, ok := q.RemoveFirst()
		if !ok || x != i {
			t.Error("q.RemoveFirst() =", x, "expected", i)
		}
	}
	if q.Len() != 0 {
		t.Error("q.Len() =", q.Len(), "expected 0")
	}
	if q.Cap() == bufLen {
		t.Error("queue buffer did not shrink")
	}
}

func TestSimple(t *testing.T) {
	t.Parallel()

	q := Must[int](nil)

	for i := 0; i < defaultCapacity; i++ {
		q.AddLast(i)
	}
	if v, _ := q.PeekFirst(); v != 0 {
		t.Fatalf("expected 0 at front, got %d", v)
	}
	if v, _ := q.PeekLast(); v != defaultCapacity-1 {
		t.Fatalf("expected %d at back, got %d", defaultCapacity-1, v)
	}

	for i := 0; i < defaultCapacity; i++ {
		if v, _ := q.PeekFirst(); v != i {
			t.Error("peek", i, "had value", v)
		}
		x, _ := q.RemoveFirst()
		if x != i {
			t.Error("remove", i, "had value", x)
		}
	}

	q.Clear()
	for i := 0; i < defaultCapacity; i++ {
		q.AddFirst(i)
	}
	for i := defaultCapacity - 1; i >= 0; i-- {
		x, _ := q.RemoveFirst()
		if x != i {
			t.Error("remove", i, "had value", x)
		}
	}
}

func TestBufferWrap(t *testing.T) {
	t.Parallel()

	q := Must[int](nil)

	for i := 0; i < defaultCapacity; i++ {
		q.AddLast(i)
	}

	for i := 0; i < 3; i++ {
		q.RemoveFirst()
		q.AddLast(defaultCapacity + i)
	}
	if q.Cap() != defaultCapacity {
		t.Error("wrapping around the buffer should not grow it")
	}

	for i := 0; i < defaultCapacity; i++ {
		if v, _ := q.PeekFirst(); v != i+3 {
			t.Error("peek", i, "had value", v)
		}
		q.RemoveFirst()
	}
}

func TestBufferWrapReverse(t *testing.T) {
	t.Parallel()

	q := Must[int](nil)

	for i := 0; i < defaultCapacity; i++ {
		q.AddFirst(i)
	}
	for i := 0; i < 3; i++ {
		q.RemoveLast()
		q.AddFirst(defaultCapacity + i)
	}

	for i := 0; i < defaultCapacity; i++ {
		if v, _ := q.PeekLast(); v != i+3 {
			t.Error("peek", i, "had value", v)
		}
		q.RemoveLast()
	}
}

func TestLen(t *testing.T) {
	t.Parallel()

	q := Must[int](nil)

	if q.Len() != 0 {
		t.Error("empty queue length not 0")
	}

	for i := 0; i < 1000; i++ {
		q.AddLast(i)
		if q.Len() != i+1 {
			t.Error("adding: queue with", i, "elements has length", q.Len())
		}
	}
	for i := 0; i < 1000; i++ {
		q.RemoveFirst()
		if q.Len() != 1000-i-1 {
			t.Error("removing: queue with", 1000-i-1, "elements has length", q.Len())
		}
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	q := Must[int](nil)

	for i := 0; i < 1000; i++ {
		q.AddLast(i)
	}

	// Front to back.
	for j := 0; j < q.Len(); j++ {
		if v, ok := q.Get(j); !ok || v != j {
			t.Errorf("index %d doesn't contain %d", j, j)
		}
	}

	// Back to front
	for j := 1; j <= q.Len(); j++ {
		if v, ok := q.Get(q.Len() - j); !ok || v != q.Len()-j {
			t.Errorf("index %d doesn't contain %d", q.Len()-j, q.Len()-j)
		}
	}

	for _, i := range []int{-1, -1000, q.Len(), q.Len() + 1} {
		if _, ok := q.Get(i); ok {
			t.Errorf("index %d should be absent", i)
		}
	}
}

func TestGetMixedEnds(t *testing.T) {
	t.Parallel()

	q := Must[int](nil)
	for i := 0; i < 100; i++ {
		q.AddFirst(-i - 1)
		q.AddLast(i)
	}
	// -100 ... -1 0 ... 99
	for j := 0; j < q.Len(); j++ {
		if v, _ := q.Get(j); v != j-100 {
			t.Errorf("index %d contains %d, expected %d", j, v, j-100)
		}
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	q := Must[int](nil)

	for i := 0; i < 100; i++ {
		q.AddLast(i)
	}
	if q.Len() != 100 {
		t.Error("push: queue with 100 elements has length", q.Len())
	}
	capacity := q.Cap()
	q.Clear()
	if q.Len() != 0 {
		t.Error("empty queue length not 0 after clear")
	}
	if q.Cap() != capacity {
		t.Error("queue capacity changed after clear")
	}

	// Check that there are no remaining references after Clear()
	for i := 0; i < len(q.buf); i++ {
		if q.buf[i] != 0 {
			t.Error("queue has non-nil deleted elements after Clear()")
			break
		}
	}

	q.AddFirst(1)
	q.AddLast(2)
	if q.String() != "[1 2]" {
		t.Error("unexpected contents after clear:", q.String())
	}
}

func TestRemoveZeroesSlots(t *testing.T) {
	t.Parallel()

	q := Must[*int](nil)
	for i := 0; i < 6; i++ {
		v := i
		q.AddLast(&v)
	}
	q.RemoveFirst()
	q.RemoveLast()

	held := 0
	for _, p := range q.buf {
		if p != nil {
			held++
		}
	}
	if held != q.Len() {
		t.Errorf("buffer holds %d references, expected %d", held, q.Len())
	}
}

func TestAll(t *testing.T) {
	t.Parallel()

	q := Must[int](nil)
	for i := 0; i < 20; i++ {
		q.AddFirst(i)
	}

	seq := q.All()
	for pass := 0; pass < 2; pass++ {
		expected := 19
		for v := range seq {
			if v != expected {
				t.Fatalf("pass %d: got %d, expected %d", pass, v, expected)
			}
			expected--
		}
		if expected != -1 {
			t.Fatalf("pass %d: traversal stopped early at %d", pass, expected)
		}
	}

	n := 0
	for range q.All() {
		n++
		if n == 5 {
			break
		}
	}
	if q.Len() != 20 {
		t.Error("iteration changed the deque")
	}

	expected := 0
	for v := range q.Backward() {
		if v != expected {
			t.Fatalf("backward: got %d, expected %d", v, expected)
		}
		expected++
	}
	if expected != 20 {
		t.Fatal("backward traversal visited", expected, "elements")
	}
}

func TestSlice(t *testing.T) {
	t.Parallel()

	q := Must[string](nil)
	if s := q.Slice(); s == nil || len(s) != 0 {
		t.Error("expected an empty, non-nil slice")
	}
	q.AddLast("b")
	q.AddFirst("a")
	q.AddLast("c")
	s := q.Slice()
	if fmt.Sprint(s) != "[a b c]" {
		t.Error("unexpected slice", s)
	}
	s[0] = "z"
	if v, _ := q.PeekFirst(); v != "a" {
		t.Error("Slice should not share memory with the deque")
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	q := Must[int](nil)
	if q.String() != "[]" {
		t.Error("unexpected string for empty deque:", q.String())
	}
	q.AddLast(1)
	q.AddLast(2)
	q.AddLast(3)
	if q.String() != "[1 2 3]" {
		t.Error("unexpected string:", q.String())
	}
	if fmt.Sprint(q) != "[1 2 3]" {
		t.Error("Deque should implement fmt.Stringer")
	}
}

func BenchmarkAddFirst(b *testing.B) {
	q := Must[int](nil)
	for i := 0; i < b.N; i++ {
		q.AddFirst(i)
	}
}

func BenchmarkAddLast(b *testing.B) {
	q := Must[int](nil)
	for i := 0; i < b.N; i++ {
		q.AddLast(i)
	}
}

func BenchmarkSerial(b *testing.B) {
	q := Must[int](nil)
	for i := 0; i < b.N; i++ {
		q.AddLast(i)
	}
	for i := 0; i < b.N; i++ {
		q.RemoveFirst()
	}
}

func BenchmarkSerialReverse(b *testing.B) {
	q := Must[int](nil)
	for i := 0; i < b.N; i++ {
		q.AddFirst(i)
	}
	for i := 0; i < b.N; i++ {
		q.RemoveLast()
	}
}

func BenchmarkGet(b *testing.B) {
	q := Must[int](nil)
	for i := 0; i < 1024; i++ {
		q.AddLast(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Get(i & 1023)
	}
}

func BenchmarkYoyo(b *testing.B) {
	q := Must[int](nil)
	for i := 0; i < b.N; i++ {
		for j := 0; j < 65536; j++ {
			q.AddLast(j)
		}
		for j := 0; j < 65536; j++ {
			q.RemoveFirst()
		}
	}
}

func BenchmarkYoyoNoShrink(b *testing.B) {
	q := Must[int](&Options{DisableShrink: true})
	for i := 0; i < b.N; i++ {
		for j := 0; j < 65536; j++ {
			q.AddLast(j)
		}
		for j := 0; j < 65536; j++ {
			q.RemoveFirst()
		}
	}
}
