// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/devahan/passportd/args"
	"github.com/devahan/passportd/contract"
	"github.com/devahan/passportd/fault"
)

// setup command handler
//
// commands that do not need the configuration file or the database
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")
		fmt.Printf("  dump [START [COUNT]]                - list tokens with their service records\n\n")
		fmt.Printf("  mint ADDRESS URI                    - create a token, prints its id\n")
		fmt.Printf("  addServiceRecord ID PAYLOAD         - append a record, caller must own ID\n")
		fmt.Printf("  ownerOf ID                          - print owner address\n")
		fmt.Printf("  tokenURI ID                         - print metadata URI\n")
		fmt.Printf("  getServiceRecordCount ID            - print number of records\n")
		fmt.Printf("  getServiceRecordAt ID INDEX         - print one record\n")
		fmt.Printf("  name | symbol | totalSupply         - collection metadata\n\n")
		fmt.Printf("  with no command, calls are read one per line from standard input\n\n")
		fmt.Printf("usage: %s --config-file=FILE [--caller=ADDRESS] [COMMAND [ARG...]]\n", program)

	default:
		return false
	}

	return true
}

// run a dump or a contract call and print its result
func processCommand(w io.Writer, c *contract.Contract, caller string, arguments []string) error {
	if "dump" == arguments[0] {
		return dump(w, c, arguments[1:])
	}

	result, err := execute(c, caller, arguments[0], arguments[1:])
	if nil != err {
		return err
	}
	fmt.Fprintln(w, result)
	return nil
}

// read "FUNCTION ARG..." lines, blank lines and # comments are skipped
//
// a line starting with "@ADDRESS" changes the caller for later lines;
// when the last argument of a function is a string it takes the rest
// of the line, so "addServiceRecord 0 oil change" has payload "oil change"
func runSession(r io.Reader, w io.Writer, c *contract.Contract, caller string) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words := splitLine(scanner.Text())
		if 0 == len(words) || strings.HasPrefix(words[0], "#") {
			continue
		}
		if strings.HasPrefix(words[0], "@") {
			caller = strings.TrimPrefix(words[0], "@")
			continue
		}

		err := processCommand(w, c, caller, words)
		if nil != err {
			fmt.Fprintf(w, "error: %s\n", err)
		}
	}
	return scanner.Err()
}

// split a session line into the function name and its arguments
func splitLine(line string) []string {
	words := strings.Fields(line)
	if 0 == len(words) {
		return words
	}

	kinds, _, ok := contract.Signature(words[0])
	if !ok || 0 == len(kinds) || args.String != kinds[len(kinds)-1] || len(words) <= 1+len(kinds) {
		return words
	}

	// cut the leading fields off the line itself to keep the inner spacing
	// of the final argument
	rest := line
	result := make([]string, 0, 1+len(kinds))
	for i := 0; i < len(kinds); i += 1 {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		n := strings.IndexFunc(rest, unicode.IsSpace)
		result = append(result, rest[:n])
		rest = rest[n:]
	}
	rest = strings.TrimFunc(rest, unicode.IsSpace)
	return append(result, rest)
}

// call one function with text arguments and format the decoded result
func execute(c *contract.Contract, caller string, function string, text []string) (string, error) {
	argumentKinds, resultKinds, ok := contract.Signature(function)
	if !ok {
		return "", fault.ErrUnknownFunction
	}

	packed, err := args.ParseText(argumentKinds, text)
	if nil != err {
		return "", err
	}

	result, err := c.Call(contract.Context{Caller: caller}, function, packed)
	if nil != err {
		return "", err
	}

	values, err := args.Unpack(result, resultKinds...)
	if nil != err {
		return "", err
	}
	if 0 == len(values) {
		return "ok", nil
	}

	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(s, " "), nil
}

func dump(w io.Writer, c *contract.Contract, arguments []string) error {
	start := uint64(0)
	count := 0

	if len(arguments) > 0 {
		n, err := strconv.ParseUint(arguments[0], 10, 64)
		if nil != err {
			return err
		}
		start = n
	}
	if len(arguments) > 1 {
		n, err := strconv.Atoi(arguments[1])
		if nil != err {
			return err
		}
		count = n
	}

	tokens, err := c.Tokens(start, count)
	if nil != err {
		return err
	}
	for _, token := range tokens {
		fmt.Fprintf(w, "%d owner: %q  uri: %q  records: %d\n", token.Id, token.Owner, token.URI, len(token.Payloads))
		for i, payload := range token.Payloads {
			fmt.Fprintf(w, "  %d: %q\n", i, payload)
		}
	}
	return nil
}
