// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfeed

import (
	"github.com/creachadair/jfeed/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped as the
// parser expects to read them, and double quotation marks are added.
func Quote(src []byte) string {
	buf := make([]byte, 1, len(src)+2)
	buf[0] = '"'
	buf = escape.Quote(buf, mem.B(src))
	return string(append(buf, '"'))
}
