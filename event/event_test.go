// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devahan/passportd/event"
	"github.com/devahan/passportd/fixtures"
	"github.com/devahan/passportd/messagebus"
)

type recordingSink struct {
	lines []string
	err   error
}

func (s *recordingSink) Deliver(ev event.Event) error {
	s.lines = append(s.lines, ev.Line())
	return s.err
}

func TestLine(t *testing.T) {
	items := []struct {
		ev       event.Event
		expected string
	}{
		{
			ev:       event.Event{Name: event.Minted, Fields: []event.Field{event.Uint64("tokenId", 0), event.String("to", "addr1")}},
			expected: "Minted tokenId=0 to=addr1",
		},
		{
			ev:       event.Event{Name: event.ServiceRecordAdded, Fields: []event.Field{event.Uint64("tokenId", 12), event.Uint64("index", 3)}},
			expected: "ServiceRecordAdded tokenId=12 index=3",
		},
		{
			ev:       event.Event{Name: "Bare"},
			expected: "Bare",
		},
		{
			ev:       event.Event{Name: event.Minted, Fields: []event.Field{event.Uint64("tokenId", 1), event.String("to", "a to=b")}},
			expected: `Minted tokenId=1 to="a to=b"`,
		},
		{
			ev:       event.Event{Name: event.Minted, Fields: []event.Field{event.Uint64("tokenId", 2), event.String("to", "line\nbreak")}},
			expected: `Minted tokenId=2 to="line\nbreak"`,
		},
		{
			ev:       event.Event{Name: event.Minted, Fields: []event.Field{event.Uint64("tokenId", 3), event.String("to", `say "hi"`)}},
			expected: `Minted tokenId=3 to="say \"hi\""`,
		},
		{
			ev:       event.Event{Name: event.Minted, Fields: []event.Field{event.Uint64("tokenId", 4), event.String("to", "")}},
			expected: `Minted tokenId=4 to=""`,
		},
		{
			ev:       event.Event{Name: event.Minted, Fields: []event.Field{event.Uint64("tokenId", 5), event.String("to", "ünïcødé")}},
			expected: "Minted tokenId=5 to=ünïcødé",
		},
	}

	for i, item := range items {
		if actual := item.ev.Line(); actual != item.expected {
			t.Errorf("%d: line: %q  expected: %q", i, actual, item.expected)
		}
	}
}

func TestFlushDelivers(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	sink := &recordingSink{}
	e := event.NewEmitter(sink)

	e.Emit(event.Minted, event.Uint64("tokenId", 0), event.String("to", "addr1"))
	e.Emit(event.ServiceRecordAdded, event.Uint64("tokenId", 0), event.Uint64("index", 0))
	assert.Equal(t, 2, e.Pending(), "pending count")
	assert.Equal(t, 0, len(sink.lines), "delivered before flush")

	events := e.Flush()
	assert.Equal(t, 2, len(events), "flushed count")
	assert.Equal(t, []string{"Minted tokenId=0 to=addr1", "ServiceRecordAdded tokenId=0 index=0"}, sink.lines, "delivered lines")
	assert.Equal(t, 0, e.Pending(), "pending after flush")
}

func TestDiscard(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	sink := &recordingSink{}
	e := event.NewEmitter(sink)

	e.Emit(event.Minted, event.Uint64("tokenId", 5))
	e.Discard()
	e.Flush()

	assert.Equal(t, 0, len(sink.lines), "discarded event delivered")
}

func TestSinkErrorIsSwallowed(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	failing := &recordingSink{err: errors.New("indexer offline")}
	working := &recordingSink{}
	e := event.NewEmitter(failing, working)

	e.Emit(event.Minted, event.Uint64("tokenId", 1))
	events := e.Flush()

	assert.Equal(t, 1, len(events), "flushed count")
	assert.Equal(t, []string{"Minted tokenId=1"}, working.lines, "second sink starved")
}

func TestBusSink(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	queue := messagebus.New(1)
	e := event.NewEmitter(event.NewBusSink(queue), event.NewLogSink())

	e.Emit(event.Minted, event.Uint64("tokenId", 0), event.String("to", "addr1"))
	e.Emit(event.Minted, event.Uint64("tokenId", 1), event.String("to", "addr2"))
	e.Flush()

	// queue holds one item, the second is dropped without blocking
	received := <-queue.Chan()
	assert.Equal(t, event.Minted, received.Command, "command")
	assert.Equal(t, []string{"Minted tokenId=0 to=addr1"}, received.Parameters, "parameters")

	select {
	case m := <-queue.Chan():
		t.Errorf("unexpected message: %v", m)
	default:
	}
}
