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

// Package ringtest provides a differential harness for double-ended queues.
//
// Run applies one long random sequence of operations to several subjects at
// once, typically a ring.Deque and one or more reference implementations, and
// fails at the first operation whose results disagree.
package ringtest

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/ringlab/ring"
)

const (
	defaultOps        = 100_000
	defaultMaxValue   = 100
	defaultCheckEvery = 100
)

// ErrNotEnoughSubjects is returned by Run when fewer than two subjects are given.
var ErrNotEnoughSubjects = errors.New("ringtest: at least two subjects are required")

// Config controls a Run.
type Config struct {
	// Ops is the number of random operations to apply. Defaults to 100000.
	Ops int
	// MaxValue bounds the values inserted: they are drawn from [0, MaxValue). Defaults to 100.
	MaxValue int
	// CheckEvery is the number of operations between checkpoints, where the lengths
	// and contents of all subjects are compared. Defaults to 100.
	CheckEvery int
	// Seed makes the operation sequence reproducible.
	Seed uint64
	// Weights sets the mix of operations. Defaults to DefaultWeights.
	Weights Weights
	// Logger receives divergences. Defaults to ring.NoopLogger.
	Logger ring.Logger
}

func (c *Config) setDefaults() {
	if c.Ops <= 0 {
		c.Ops = defaultOps
	}
	if c.MaxValue <= 0 {
		c.MaxValue = defaultMaxValue
	}
	if c.CheckEvery <= 0 {
		c.CheckEvery = defaultCheckEvery
	}
	if c.Weights.isZero() {
		c.Weights = DefaultWeights
	}
	if c.Logger == nil {
		c.Logger = &ring.NoopLogger{}
	}
}

// Report summarizes a Run.
type Report struct {
	// Ops counts the applied operations by kind.
	Ops [numOps]int
	// Checkpoints is the number of full comparisons performed.
	Checkpoints int
	// EmptyRemovals counts removals attempted on empty subjects.
	EmptyRemovals int
	// MissedGets counts Get calls with an index outside [0, Len()).
	MissedGets int
	// PeakLen is the largest length reached.
	PeakLen int
	// FinalLen is the length after the last operation.
	FinalLen int
}

// Total returns the number of applied operations.
func (r Report) Total() int {
	total := 0
	for _, n := range r.Ops {
		total += n
	}
	return total
}

// Count returns the number of applied operations of the given kind.
func (r Report) Count(k OpKind) int {
	if int(k) >= numOps {
		return 0
	}
	return r.Ops[k]
}

// DivergenceError describes the first disagreement between two subjects.
type DivergenceError struct {
	// Step is the zero-based index of the operation. For checkpoints it is the
	// index of the last operation applied before the comparison, or -1 for the
	// comparison made before the first operation.
	Step      int
	Op        OpKind
	Subject   string
	Reference string
	Got       string
	Want      string
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("ringtest: %s diverged from %s at step %d (%s): got %s, want %s",
		e.Subject, e.Reference, e.Step, e.Op, e.Got, e.Want)
}

type runner struct {
	cfg      Config
	subjects []Subject[int]
	rnd      *rand.Rand
	picker   picker
	tally    tally
	digester digester
	report   Report
}

// Run applies cfg.Ops random operations to every subject. The first subject is
// the reference the others are compared to. Subjects may start non-empty, as
// long as they all hold the same elements. After every operation all results
// must agree; at every checkpoint the lengths, an order-sensitive digest of
// the contents and the multiset of held values must agree as well.
//
// Run returns a *DivergenceError on the first disagreement and ctx.Err() if
// the context is done at a checkpoint.
func Run(ctx context.Context, cfg Config, subjects ...Subject[int]) (Report, error) {
	if len(subjects) < 2 {
		return Report{}, ErrNotEnoughSubjects
	}
	cfg.setDefaults()
	if err := cfg.Weights.validate(); err != nil {
		return Report{}, err
	}

	r := &runner{
		cfg:      cfg,
		subjects: subjects,
		rnd:      rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		picker:   newPicker(cfg.Weights),
		tally:    newTally(),
		digester: newDigester(),
	}
	return r.run(ctx)
}

func (r *runner) run(ctx context.Context) (Report, error) {
	// Subjects may already hold elements, e.g. from an earlier phase.
	for v := range r.subjects[0].All() {
		r.tally.add(v)
	}
	if err := r.checkpoint(ctx, -1); err != nil {
		return r.fail(ctx, err)
	}

	for step := 0; step < r.cfg.Ops; step++ {
		op := r.picker.pick(r.rnd)
		if err := r.apply(step, op); err != nil {
			return r.fail(ctx, err)
		}
		r.report.Ops[op]++
		r.report.PeakLen = max(r.report.PeakLen, r.subjects[0].Len())

		if (step+1)%r.cfg.CheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return r.report, err
			}
			if err := r.checkpoint(ctx, step); err != nil {
				return r.fail(ctx, err)
			}
		}
	}

	if err := r.checkpoint(ctx, r.cfg.Ops-1); err != nil {
		return r.fail(ctx, err)
	}
	r.report.FinalLen = r.subjects[0].Len()
	return r.report, nil
}

func (r *runner) fail(ctx context.Context, err error) (Report, error) {
	r.cfg.Logger.Error(ctx, "ringtest: subjects diverged", err)
	r.report.FinalLen = r.subjects[0].Len()
	return r.report, err
}

func (r *runner) apply(step int, op OpKind) error {
	ref := r.subjects[0]
	switch op {
	case OpAddFirst, OpAddLast:
		v := r.rnd.IntN(r.cfg.MaxValue)
		for _, s := range r.subjects {
			if op == OpAddFirst {
				s.AddFirst(v)
			} else {
				s.AddLast(v)
			}
		}
		r.tally.add(v)
		return nil
	case OpRemoveFirst, OpRemoveLast:
		remove := func(s Subject[int]) (int, bool) {
			if op == OpRemoveFirst {
				return s.RemoveFirst()
			}
			return s.RemoveLast()
		}
		want, wantOK := remove(ref)
		for _, s := range r.subjects[1:] {
			got, ok := remove(s)
			if got != want || ok != wantOK {
				return r.divergence(step, op, s, result(got, ok), result(want, wantOK))
			}
		}
		if !wantOK {
			r.report.EmptyRemovals++
			return nil
		}
		if !r.tally.remove(want) {
			return r.divergence(step, op, ref, result(want, wantOK), "a value that was added")
		}
		return nil
	case OpGet:
		// Probe one slot on each side of the valid range as well.
		i := r.rnd.IntN(ref.Len()+2) - 1
		want, wantOK := ref.Get(i)
		for _, s := range r.subjects[1:] {
			got, ok := s.Get(i)
			if got != want || ok != wantOK {
				return r.divergence(step, op, s, result(got, ok), result(want, wantOK))
			}
		}
		if !wantOK {
			r.report.MissedGets++
		}
		return nil
	default:
		return fmt.Errorf("ringtest: unexpected operation %s", op)
	}
}

func (r *runner) checkpoint(ctx context.Context, step int) error {
	r.report.Checkpoints++

	ref := r.subjects[0]
	wantSum, wantLen := r.digester.digest(ref.All())
	if wantLen != ref.Len() {
		return r.divergence(step, OpCheckpoint, ref, fmt.Sprintf("%d iterated elements", wantLen), fmt.Sprintf("Len() = %d", ref.Len()))
	}
	if !r.tally.matches(ref.All()) {
		return r.divergence(step, OpCheckpoint, ref, "contents", "the values added and not yet removed")
	}

	for _, s := range r.subjects[1:] {
		if s.Len() != wantLen {
			err := r.divergence(step, OpCheckpoint, s, fmt.Sprintf("Len() = %d", s.Len()), fmt.Sprintf("Len() = %d", wantLen))
			r.cfg.Logger.Warn(ctx, "ringtest: length mismatch at checkpoint", err)
			return err
		}
		if sum, _ := r.digester.digest(s.All()); sum != wantSum {
			return r.divergence(step, OpCheckpoint, s, fmt.Sprintf("digest %#x", sum), fmt.Sprintf("digest %#x", wantSum))
		}
	}
	return nil
}

func (r *runner) divergence(step int, op OpKind, s Subject[int], got, want string) error {
	return &DivergenceError{
		Step:      step,
		Op:        op,
		Subject:   s.Name(),
		Reference: r.subjects[0].Name(),
		Got:       got,
		Want:      want,
	}
}

func result(v int, ok bool) string {
	if !ok {
		return "(absent)"
	}
	return fmt.Sprintf("(%d)", v)
}
