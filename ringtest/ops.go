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
	"errors"
	"math/rand/v2"
)

// OpKind is an operation applied to every subject by Run.
type OpKind uint8

const (
	OpAddFirst OpKind = iota
	OpAddLast
	OpRemoveFirst
	OpRemoveLast
	OpGet
	// OpCheckpoint is not drawn at random. It marks divergences found while
	// comparing lengths and contents of the subjects.
	OpCheckpoint
)

const numOps = int(OpGet) + 1

var opNames = [...]string{
	OpAddFirst:    "AddFirst",
	OpAddLast:     "AddLast",
	OpRemoveFirst: "RemoveFirst",
	OpRemoveLast:  "RemoveLast",
	OpGet:         "Get",
	OpCheckpoint:  "Checkpoint",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "Unknown"
}

// Weights sets the relative frequency of each randomly drawn operation.
type Weights struct {
	AddFirst    int
	AddLast     int
	RemoveFirst int
	RemoveLast  int
	Get         int
}

// DefaultWeights draws the four end operations uniformly and never calls Get.
var DefaultWeights = Weights{
	AddFirst:    1,
	AddLast:     1,
	RemoveFirst: 1,
	RemoveLast:  1,
}

func (w Weights) values() [numOps]int {
	return [numOps]int{
		OpAddFirst:    w.AddFirst,
		OpAddLast:     w.AddLast,
		OpRemoveFirst: w.RemoveFirst,
		OpRemoveLast:  w.RemoveLast,
		OpGet:         w.Get,
	}
}

func (w Weights) isZero() bool {
	return w == Weights{}
}

func (w Weights) validate() error {
	for _, v := range w.values() {
		if v < 0 {
			return errors.New("ringtest: weights should not be negative")
		}
	}
	if w.AddFirst+w.AddLast == 0 {
		return errors.New("ringtest: at least one add operation should have a positive weight")
	}
	return nil
}

// picker draws operations in proportion to their weights.
type picker struct {
	cumulative [numOps]int
	total      int
}

func newPicker(w Weights) picker {
	var p picker
	for i, v := range w.values() {
		p.total += v
		p.cumulative[i] = p.total
	}
	return p
}

func (p picker) pick(r *rand.Rand) OpKind {
	n := r.IntN(p.total)
	for i, c := range p.cumulative {
		if n < c {
			return OpKind(i)
		}
	}
	return OpGet
}
