// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluxes

import (
	"bytes"

	"github.com/cpmech/gosl/io"
)

// Encode writes the table in text format
//  for each end: a line with sid, nfu, nft and dz followed by the potentials;
//  then the fluxes, one row of the table per line
func (o Table) Encode(buf *bytes.Buffer) {
	for ie, e := range o.Ends {
		io.Ff(buf, "# end %d: sid nfu nft dz\n", ie+1)
		io.Ff(buf, "%d %d %d %g\n", e.Sid, e.Nfu, e.Nft, e.Dz)
		for i, v := range e.Phif {
			if i > 0 {
				if i%5 == 0 {
					io.Ff(buf, "\n")
				} else {
					io.Ff(buf, " ")
				}
			}
			io.Ff(buf, "%23.15e", v)
		}
		io.Ff(buf, "\n")
	}
	io.Ff(buf, "# fluxes\n")
	for _, row := range o.Q {
		for j, v := range row {
			if j > 0 {
				io.Ff(buf, " ")
			}
			io.Ff(buf, "%23.15e", v)
		}
		io.Ff(buf, "\n")
	}
}

// String returns the table in text format
func (o Table) String() string {
	var buf bytes.Buffer
	o.Encode(&buf)
	return buf.String()
}
