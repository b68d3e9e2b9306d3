// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfeed

import (
	"io"
	"os"
)

// ParseReader resets p and parses a complete document from r, reading it in
// chunks of up to len(buf) bytes. If buf is empty, a buffer the size of a
// system memory page is allocated. ParseReader returns nil once the root
// object is closed and, unless trailing data are allowed, the rest of the
// input has been checked. In case of error, the returned error has type
// [*SyntaxError].
//
// Unless trailing data are allowed, ParseReader reads r until io.EOF even
// after the root object closes. For a stream that stays open after the
// document, such as a network connection, call AllowTrailingData(true) so
// that ParseReader returns as soon as the root object is closed.
func (p *Parser) ParseReader(r io.Reader, buf []byte) error {
	p.Reset()
	if r == nil {
		p.failAccess(CantAccessData, nil, "no input reader")
		return p.err
	} else if p.h == nil {
		p.failAccess(CantAccessData, nil, "no handler")
		return p.err
	}
	if len(buf) == 0 {
		buf = make([]byte, os.Getpagesize())
	}
	for {
		nr, err := r.Read(buf)
		if nr > 0 {
			st, cerr := p.Consume(buf[:nr])
			if st == Failed {
				return cerr
			} else if st == Complete && p.trail {
				return nil
			}
		}
		if err == io.EOF {
			if p.Status() == Complete {
				return nil
			}
			p.fail(UnexpectedEndOfInput, "input ended before the root object was closed")
			return p.err
		} else if err != nil {
			p.failAccess(BadRead, err, "read failed")
			return p.err
		}
	}
}
