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

// Package pslog provides a plug-in ring.Logger wrapping slog.Logger for usage in
// a ring.Deque or a ringtest run.
//
// This can be used like so:
//
//		d := ring.Must[int](&ring.Options{
//	         Logger: pslog.New(slog.Default()),
//		     // ...other opts
//		})
package pslog

import (
	"context"
	"log/slog"

	"github.com/ringlab/ring"
)

var _ ring.Logger = (*Logger)(nil)

// Option applies options to the logger.
type Option func(*options)

type options struct {
	attrs []slog.Attr
}

// WithAttrs adds attributes to every record written by the logger.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// Logger that wraps the slog.Logger.
type Logger struct {
	log   *slog.Logger
	attrs []any
}

// New returns a new Logger.
func New(log *slog.Logger, opts ...Option) *Logger {
	if log == nil {
		panic("pslog: log is nil")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	attrs := make([]any, 0, len(o.attrs))
	for _, a := range o.attrs {
		attrs = append(attrs, a)
	}
	return &Logger{
		log:   log,
		attrs: attrs,
	}
}

// Warn is for the ring.Logger interface.
func (l *Logger) Warn(ctx context.Context, msg string, err error) {
	l.log.WarnContext(ctx, msg, append(l.attrs, slog.Any("err", err))...)
}

// Error is for the ring.Logger interface.
func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.log.ErrorContext(ctx, msg, append(l.attrs, slog.Any("err", err))...)
}
