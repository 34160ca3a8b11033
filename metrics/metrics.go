// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - call counters and latency for the host
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// call results
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

// Metrics - observability of contract calls
type Metrics struct {
	// calls by function and result
	Calls *prometheus.CounterVec

	// call duration by function
	Duration *prometheus.HistogramVec

	// audit events delivered after commit
	Events prometheus.Counter
}

// New - create and register all metrics with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Calls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "passportd_calls_total",
			Help: "Total contract calls by function and result",
		}, []string{"function", "result"}),

		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "passportd_call_duration_seconds",
			Help:    "Duration of contract calls including commit",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"function"}),

		Events: factory.NewCounter(prometheus.CounterOpts{
			Name: "passportd_events_total",
			Help: "Total audit events emitted by committed calls",
		}),
	}
}

// ObserveCall - record one call outcome
func (m *Metrics) ObserveCall(function string, err error, d time.Duration) {
	if nil == m {
		return
	}
	result := ResultOK
	if nil != err {
		result = ResultFailed
	}
	m.Calls.WithLabelValues(function, result).Inc()
	m.Duration.WithLabelValues(function).Observe(d.Seconds())
}

// AddEvents - record emitted events
func (m *Metrics) AddEvents(n int) {
	if nil == m {
		return
	}
	m.Events.Add(float64(n))
}
