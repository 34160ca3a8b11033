// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/devahan/passportd/metrics"
)

func TestObserveCall(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveCall("mint", nil, time.Millisecond)
	m.ObserveCall("mint", nil, time.Millisecond)
	m.ObserveCall("mint", errors.New("boom"), time.Millisecond)
	m.AddEvents(2)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Calls.WithLabelValues("mint", metrics.ResultOK)), "ok calls")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Calls.WithLabelValues("mint", metrics.ResultFailed)), "failed calls")
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Events), "events")
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveCall("mint", nil, time.Millisecond)
		m.AddEvents(1)
	}, "nil metrics must be a no-op")
}

func TestWrite(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	m.ObserveCall("ownerOf", nil, time.Millisecond)

	buffer := &bytes.Buffer{}
	err := metrics.Write(buffer, registry)
	assert.Nil(t, err, "write error")

	text := buffer.String()
	assert.Contains(t, text, `passportd_calls_total{function="ownerOf",result="ok"} 1`, "missing call counter")
	assert.Contains(t, text, "# TYPE passportd_call_duration_seconds histogram", "missing histogram")
}
