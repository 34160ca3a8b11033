// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"sync"

	"github.com/bitmark-inc/logger"
)

// Sink - somewhere to deliver committed events
type Sink interface {
	Deliver(Event) error
}

// Recorder - the part of the emitter visible to ledger components
type Recorder interface {
	Emit(name string, fields ...Field)
}

// Emitter - holds the events of the current call until it commits
type Emitter struct {
	sync.Mutex
	log     *logger.L
	pending []Event
	sinks   []Sink
}

// NewEmitter - create an emitter delivering to the given sinks
func NewEmitter(sinks ...Sink) *Emitter {
	return &Emitter{
		log:   logger.New("event"),
		sinks: sinks,
	}
}

// Emit - queue an event for the current call
func (e *Emitter) Emit(name string, fields ...Field) {
	e.Lock()
	defer e.Unlock()
	e.pending = append(e.pending, Event{Name: name, Fields: fields})
}

// Pending - number of queued events
func (e *Emitter) Pending() int {
	e.Lock()
	defer e.Unlock()
	return len(e.pending)
}

// Flush - deliver queued events to all sinks
//
// sink failures are logged, never returned; the state change that
// produced the event has already been committed
func (e *Emitter) Flush() []Event {
	e.Lock()
	events := e.pending
	e.pending = nil
	e.Unlock()

	for _, ev := range events {
		for _, s := range e.sinks {
			if err := s.Deliver(ev); nil != err {
				e.log.Warnf("deliver: %q  error: %s", ev.Line(), err)
			}
		}
	}
	return events
}

// Discard - drop queued events of a failed call
func (e *Emitter) Discard() {
	e.Lock()
	defer e.Unlock()
	e.pending = nil
}
