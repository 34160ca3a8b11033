// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/devahan/passportd/configuration"
	"github.com/devahan/passportd/contract"
	"github.com/devahan/passportd/event"
	"github.com/devahan/passportd/messagebus"
	"github.com/devahan/passportd/metrics"
	"github.com/devahan/passportd/publish"
	"github.com/devahan/passportd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// events waiting for the broadcaster
const publishQueueSize = 1000

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "caller", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'a'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	caller := ""
	if n := len(options["caller"]); n > 1 {
		exitwithstatus.Message("%s: at most one caller option is allowed, %d were detected", program, n)
	} else if 1 == n {
		caller = options["caller"][0]
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	verbose := len(options["verbose"]) > 0
	if verbose {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	if err := os.MkdirAll(theConfiguration.Database.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: database directory: %q  error: %s", program, theConfiguration.Database.Directory, err)
	}

	// start the data storage
	log.Infof("database: %q", theConfiguration.DatabasePath())
	db, err := storage.Open(theConfiguration.DatabasePath(), storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer db.Close()

	sinks := []event.Sink{event.NewLogSink()}

	// broadcast committed events to any subscribers
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)
	if len(theConfiguration.Publishing.Broadcast) > 0 {
		queue := messagebus.New(publishQueueSize)
		err = publish.Initialise(&theConfiguration.Publishing, queue)
		if nil != err {
			log.Criticalf("publish initialise error: %s", err)
			exitwithstatus.Message("publish initialise error: %s", err)
		}
		defer publish.Finalise()
		sinks = append(sinks, event.NewBusSink(queue))
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	if verbose {
		defer func() {
			if err := metrics.Write(os.Stderr, registry); nil != err {
				log.Errorf("metrics write error: %s", err)
			}
		}()
	}

	if "" != theConfiguration.Metrics.Listen {
		go func() {
			log.Warnf("metrics listener on: %s", theConfiguration.Metrics.Listen)
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
			err := http.ListenAndServe(theConfiguration.Metrics.Listen, mux)
			log.Errorf("metrics listener error: %s", err)
		}()
	}

	c := contract.New(db, event.NewEmitter(sinks...), m)
	err = c.Initialise(theConfiguration.Contract.Name, theConfiguration.Contract.Symbol)
	if nil != err {
		log.Criticalf("contract initialise error: %s", err)
		exitwithstatus.Message("contract initialise error: %s", err)
	}

	if len(arguments) > 0 {
		if err := processCommand(os.Stdout, c, caller, arguments); nil != err {
			log.Errorf("command: %q  error: %s", arguments[0], err)
			exitwithstatus.Message("%s: %s error: %s", program, arguments[0], err)
		}
		return
	}

	// no command: read calls from standard input until EOF or a signal
	done := make(chan error, 1)
	go func() {
		done <- runSession(os.Stdin, os.Stdout, c, caller)
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if verbose {
			fmt.Printf("\nreceived signal: %v\n", sig)
		}
	case err := <-done:
		if nil != err {
			log.Errorf("session error: %s", err)
		}
	}

	// wait for a call in progress, no new calls after this
	c.Lock()
	log.Info("shutting down…")
}
