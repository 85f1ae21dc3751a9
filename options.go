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
	"errors"
	"fmt"

	"github.com/ringlab/ring/internal/xmath"
	"github.com/ringlab/ring/stats"
)

var (
	// ErrInvalidCapacity is returned by New when the initial capacity is negative or exceeds MaxCapacity.
	ErrInvalidCapacity = errors.New("ring: invalid initial capacity")
	// ErrInvalidWatermark is returned by New when the shrink watermark is negative.
	ErrInvalidWatermark = errors.New("ring: invalid shrink watermark")
)

// Options should be passed to New to construct a Deque.
type Options struct {
	// InitialCapacity specifies the size of the backing store allocated by New.
	// It is rounded up to the next power of two. Defaults to 8.
	InitialCapacity int
	// ShrinkWatermark specifies the length at or below which the Deque never shrinks its
	// backing store, no matter how sparse it gets. Defaults to 16.
	ShrinkWatermark int
	// DisableShrink turns off shrinking entirely. The backing store then only grows.
	DisableShrink bool
	// StatsRecorder accumulates statistics about resizes of the Deque.
	// If it also implements stats.Snapshoter, Deque.Stats returns its snapshots.
	StatsRecorder stats.Recorder
	// Logger specifies the Logger implementation that will be used for logging errors.
	//
	// Defaults to a logger writing to slog.Default().
	Logger Logger
}

func (o *Options) getInitialCapacity() int {
	c := defaultCapacity
	if o.InitialCapacity > 0 {
		c = o.InitialCapacity
	}
	//nolint:gosec // validate guarantees 0 < c <= MaxCapacity
	return int(xmath.RoundUpPowerOf2(uint64(c)))
}

func (o *Options) getShrinkWatermark() int {
	if o.ShrinkWatermark > 0 {
		return o.ShrinkWatermark
	}
	return defaultShrinkWatermark
}

func (o *Options) validate() error {
	if o.InitialCapacity < 0 || o.InitialCapacity > MaxCapacity {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, o.InitialCapacity)
	}
	if o.ShrinkWatermark < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWatermark, o.ShrinkWatermark)
	}
	return nil
}

func (o *Options) setDefaults() {
	if o.StatsRecorder == nil {
		o.StatsRecorder = stats.NoopRecorder{}
	}
	if o.Logger == nil {
		o.Logger = newDefaultLogger()
	}
}
