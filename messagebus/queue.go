// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/devahan/passportd/fault"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - one queued item
type Message struct {
	Command    string
	Parameters []string
}

// Queue - fixed capacity message queue
type Queue struct {
	c chan Message
}

// ErrQueueFull - message dropped because nothing is draining the queue
var ErrQueueFull = fault.ProcessError("message queue full")

// New - create a queue, size <= 0 selects the default
func New(size int) *Queue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue data, blocks while the queue is full
func (queue *Queue) Send(command string, parameters ...string) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// TrySend - queue data without blocking, drops the message if full
func (queue *Queue) TrySend(command string, parameters ...string) error {
	select {
	case queue.c <- Message{Command: command, Parameters: parameters}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}
