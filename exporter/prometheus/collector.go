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

// Package prometheus exposes ring.Deque resize statistics to Prometheus.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ringlab/ring/stats"
)

// StatsProvider provides deque statistics. *ring.Deque implements it.
type StatsProvider interface {
	Stats() stats.Stats
}

// StatsProviderFunc adapts a function, such as (*stats.Counter).Snapshot, to StatsProvider.
type StatsProviderFunc func() stats.Stats

// Stats calls f.
func (f StatsProviderFunc) Stats() stats.Stats {
	return f()
}

// Collector collects statistics from a deque and exposes them to Prometheus.
type Collector struct {
	provider           StatsProvider
	growsDesc          *prometheus.Desc
	shrinksDesc        *prometheus.Desc
	copiedElementsDesc *prometheus.Desc
	peakCapacityDesc   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a new collector for the given statistics provider.
// Metric names are prefixed with the given namespace and subsystem,
// i.e "{namespace}_{subsystem}_{metric}".
// Supported metrics:
// - grows_total
// - shrinks_total
// - copied_elements_total
// - peak_capacity
func NewCollector(namespace, subsystem string, provider StatsProvider) *Collector {
	return &Collector{
		provider: provider,
		growsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "grows_total"),
			"Number of times a backing store doubled.",
			nil, nil,
		),
		shrinksDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "shrinks_total"),
			"Number of times a sparse backing store was reallocated.",
			nil, nil,
		),
		copiedElementsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "copied_elements_total"),
			"Number of elements moved between backing stores.",
			nil, nil,
		),
		peakCapacityDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "peak_capacity"),
			"Largest capacity observed across resizes.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.growsDesc
	descs <- c.shrinksDesc
	descs <- c.copiedElementsDesc
	descs <- c.peakCapacityDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	s := c.provider.Stats()
	metrics <- prometheus.MustNewConstMetric(
		c.growsDesc, prometheus.CounterValue, float64(s.Grows),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.shrinksDesc, prometheus.CounterValue, float64(s.Shrinks),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.copiedElementsDesc, prometheus.CounterValue, float64(s.CopiedElements),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.peakCapacityDesc, prometheus.GaugeValue, float64(s.PeakCapacity),
	)
}
