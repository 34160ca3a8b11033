// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"github.com/bitmark-inc/logger"

	"github.com/devahan/passportd/messagebus"
)

// LogSink - writes each event line to a logger channel
type LogSink struct {
	log *logger.L
}

// NewLogSink - events are logged at info level under the "audit" tag
func NewLogSink() *LogSink {
	return &LogSink{
		log: logger.New("audit"),
	}
}

func (s *LogSink) Deliver(ev Event) error {
	s.log.Info(ev.Line())
	return nil
}

// BusSink - forwards event lines to a message queue for publishing
type BusSink struct {
	queue *messagebus.Queue
}

// NewBusSink - sink feeding the given queue
func NewBusSink(queue *messagebus.Queue) *BusSink {
	return &BusSink{
		queue: queue,
	}
}

func (s *BusSink) Deliver(ev Event) error {
	return s.queue.TrySend(ev.Name, ev.Line())
}
