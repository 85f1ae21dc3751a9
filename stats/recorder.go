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

// Recorder accumulates statistics during the operation of a ring.Deque.
type Recorder interface {
	// RecordGrow records that the backing store grew from one capacity to another.
	RecordGrow(from, to int)
	// RecordShrink records that the backing store shrank from one capacity to another.
	RecordShrink(from, to int)
	// RecordCopy records that n elements were moved into a new backing store.
	RecordCopy(n int)
}

// Snapshoter is a Recorder that can report what it has recorded so far.
type Snapshoter interface {
	Snapshot() Stats
}

// NoopRecorder is a Recorder that discards everything.
type NoopRecorder struct{}

func (np NoopRecorder) RecordGrow(from, to int)   {}
func (np NoopRecorder) RecordShrink(from, to int) {}
func (np NoopRecorder) RecordCopy(n int)          {}
