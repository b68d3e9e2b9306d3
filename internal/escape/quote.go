// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting of JSON string text.
package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

// Quote appends the escaped form of src to buf and returns the result. The
// double quotation mark, the backslash, and the backspace, formfeed, newline,
// carriage return, and tab control characters are escaped. All other bytes,
// including other control characters, are copied verbatim, since the parser
// that reads them back does not accept \u escapes.
func Quote(buf []byte, src mem.RO) []byte {
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if b < ' ' {
			if e := controlEsc[b]; e != 0 {
				buf = append(buf, '\\', e)
				continue
			}
		} else if b == '\\' || b == '"' {
			buf = append(buf, '\\', b)
			continue
		}
		buf = append(buf, b)
	}
	return buf
}
