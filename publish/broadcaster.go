// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/devahan/passportd/messagebus"
)

const (
	lingerTime = 500 * time.Millisecond
)

type broadcaster struct {
	log    *logger.L
	socket *zmq.Socket
	queue  *messagebus.Queue
}

// bind the PUB socket to every configured address
func (brdc *broadcaster) initialise(log *logger.L, broadcast []string, queue *messagebus.Queue) error {

	brdc.log = log
	brdc.queue = queue

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return err
	}
	socket.SetLinger(lingerTime)

	for i, address := range broadcast {
		if err := socket.Bind(address); nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, address, err)
			socket.Close()
			return err
		}
		log.Infof("bind[%d]: %q", i, address)
	}

	brdc.socket = socket
	return nil
}

func (brdc *broadcaster) close() {
	if nil != brdc.socket {
		brdc.socket.Close()
		brdc.socket = nil
	}
}

// Run - wait for audit events and broadcast them
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := args.(*logger.L)

	log.Info("starting…")

	queue := brdc.queue.Chan()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			log.Debugf("sending: %s  %q", item.Command, item.Parameters)
			if _, err := brdc.socket.SendMessage(frames(item)...); nil != err {
				log.Errorf("send error: %s", err)
			}
		}
	}
	log.Info("shutting down…")
}

// the name frame followed by each parameter
func frames(item messagebus.Message) []interface{} {
	f := make([]interface{}, 0, 1+len(item.Parameters))
	f = append(f, item.Command)
	for _, p := range item.Parameters {
		f = append(f, p)
	}
	return f
}
