// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devahan/passportd/configuration"
)

func writeConfig(t *testing.T, text string) string {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "passportd.conf")
	err := os.WriteFile(fileName, []byte(text), 0600)
	assert.Nil(t, err, "write configuration")
	return fileName
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeConfig(t, `
local M = {}
M.data_directory = "."
return M
`)
	dir := filepath.Dir(fileName)

	conf, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "Vehicle Passport", conf.Contract.Name, "wrong contract name")
	assert.Equal(t, "VPASS", conf.Contract.Symbol, "wrong contract symbol")
	assert.Equal(t, filepath.Join(dir, "data"), conf.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(dir, "data", "passport.leveldb"), conf.DatabasePath(), "wrong database path")
	assert.Equal(t, filepath.Join(dir, "log"), conf.Logging.Directory, "wrong log directory")
	assert.Equal(t, "", conf.PidFile, "unexpected pid file")
	assert.Equal(t, "", conf.Metrics.Listen, "unexpected metrics listener")
	assert.Equal(t, 0, len(conf.Publishing.Broadcast), "unexpected broadcast")
}

func TestGetConfigurationOverrides(t *testing.T) {
	fileName := writeConfig(t, `
local M = {}
M.data_directory = "."
M.pidfile = "passportd.pid"
M.database = { directory = "db", name = "ledger.leveldb" }
M.contract = { name = "Fleet", symbol = "FLT" }
M.metrics = { listen = "127.0.0.1:9200" }
M.publishing = { broadcast = { "tcp://127.0.0.1:2135" } }
M.logging = { directory = "logs", file = "x.log", size = 4096, count = 2, levels = { main = "debug" } }
return M
`)
	dir := filepath.Dir(fileName)

	conf, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "Fleet", conf.Contract.Name, "wrong contract name")
	assert.Equal(t, "FLT", conf.Contract.Symbol, "wrong contract symbol")
	assert.Equal(t, filepath.Join(dir, "db", "ledger.leveldb"), conf.DatabasePath(), "wrong database path")
	assert.Equal(t, filepath.Join(dir, "passportd.pid"), conf.PidFile, "wrong pid file")
	assert.Equal(t, "127.0.0.1:9200", conf.Metrics.Listen, "wrong metrics listener")
	assert.Equal(t, []string{"tcp://127.0.0.1:2135"}, conf.Publishing.Broadcast, "wrong broadcast")
	assert.Equal(t, filepath.Join(dir, "logs"), conf.Logging.Directory, "wrong log directory")
	assert.Equal(t, "x.log", conf.Logging.File, "wrong log file")
	assert.Equal(t, "debug", conf.Logging.Levels["main"], "wrong log level")
}

func TestGetConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no data directory", "return {}"},
		{"missing data directory", `return { data_directory = "/nonexistent/passportd/dir" }`},
		{"empty symbol", `return { data_directory = ".", contract = { name = "x", symbol = "" } }`},
		{"database name with path", `return { data_directory = ".", database = { name = "a/b" } }`},
		{"not a table", `return 42`},
		{"syntax error", `return {`},
	}

	for _, item := range tests {
		fileName := writeConfig(t, item.text)
		_, err := configuration.GetConfiguration(fileName)
		assert.NotNil(t, err, "expected error for: %s", item.name)
	}
}
