// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"os"

	"github.com/bitmark-inc/logger"
)

const (
	dir = "testing"
)

// sample owner addresses
const (
	Owner    = "AU12dealerSeoulMotors"
	Customer = "AU1customerKimJiho"
	Stranger = "AU1serviceCentreBusan"
)

// SetupTestLogger - start a file logger in the testing directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - remove the files created by the logger
func TeardownTestLogger() {
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}
