// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Write - all gathered metrics in the text exposition format
func Write(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if nil != err {
		return err
	}

	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); nil != err {
			return err
		}
	}
	return nil
}
