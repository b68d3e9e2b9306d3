// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfeed

import (
	"fmt"
)

// Status reports the outcome of a call to Consume.
type Status byte

// Constants defining the valid Status values.
const (
	NeedMore Status = iota // the document is not yet complete
	Complete               // the root object has been closed
	Failed                 // parsing stopped with an error
)

var statusStr = [...]string{
	NeedMore: "need more input",
	Complete: "complete",
	Failed:   "failed",
}

func (s Status) String() string {
	if int(s) >= len(statusStr) {
		return "invalid status"
	}
	return statusStr[s]
}

// A Parser is an incremental JSON parser. Input is delivered in chunks of any
// size by calling Consume, and the parser reports the structure of the input
// by calling methods on a Handler. A chunk may end anywhere, including in the
// middle of a string, escape sequence, number, or keyword; the next call to
// Consume resumes where the previous one stopped.
//
// The root of a document must be an object. Names longer than MaxNameLen and
// values longer than MaxValueLen are truncated, and nesting deeper than
// MaxDepth is an error. Exponents and \u escapes are not supported.
//
// A Parser does not allocate while consuming input. It must not be copied
// after first use, and it is not safe for concurrent use.
type Parser struct {
	h     Handler
	state state
	fault Fault
	err   error
	trail bool // allow trailing data after the root object
	trunc bool // some name or value was truncated

	// Current chunk and position.
	src []byte
	pos int
	loc Location // location of src[pos]

	name  accum
	value accum
	stack stack

	nameBuf  [MaxNameLen]byte
	valueBuf [MaxValueLen]byte
}

// NewParser constructs a new Parser that delivers events to h.
func NewParser(h Handler) *Parser {
	p := &Parser{h: h}
	p.Reset()
	return p
}

// AllowTrailingData configures the parser to ignore (true) or reject (false)
// non-whitespace input following the close of the root object. By default
// trailing data is rejected with fault TrailingData.
func (p *Parser) AllowTrailingData(ok bool) { p.trail = ok }

// Reset discards all parsing state, so that p is ready to parse a new
// document. Reset must be called between unrelated documents, including after
// a document completes or fails. The handler and options are retained.
func (p *Parser) Reset() {
	p.state = stNotStarted
	p.fault = NotStarted
	p.err = nil
	p.trunc = false
	p.src, p.pos = nil, 0
	p.loc = start
	p.name = accum{buf: p.nameBuf[:0]}
	p.value = accum{buf: p.valueBuf[:0]}
	p.stack = stack{}
}

// Consume parses the contents of chunk, which must immediately follow the
// input consumed by the previous call since the last Reset. It returns when
// the chunk is exhausted, when the root object is closed, or when an error
// occurs. In case of error, the returned error has type [*SyntaxError], and
// further calls report the same error until Reset.
//
// After the root object is closed, Consume reports Complete. Any further
// input must be whitespace, unless trailing data are allowed.
func (p *Parser) Consume(chunk []byte) (Status, error) {
	if p.fault.Failed() {
		return Failed, p.err
	} else if p.h == nil {
		p.failAccess(CantAccessData, nil, "no handler")
		return Failed, p.err
	}

	p.src, p.pos = chunk, 0
	defer func() { p.src, p.pos = nil, 0 }()

	for p.pos < len(p.src) && !p.fault.Failed() {
		if p.fault == NotStarted {
			p.fault = InProgress
		}
		p.step(p.src[p.pos])
	}
	return p.Status(), p.err
}

// Status reports the current status of p.
func (p *Parser) Status() Status {
	switch {
	case p.fault.Failed():
		return Failed
	case p.state == stFinished:
		return Complete
	default:
		return NeedMore
	}
}

// Fault reports the fault classification of the current document.
func (p *Parser) Fault() Fault { return p.fault }

// Err reports the error that stopped parsing, or nil.
func (p *Parser) Err() error { return p.err }

// Location reports the location of the next byte to be consumed. After an
// error, it is the location of the offending byte.
func (p *Parser) Location() Location { return p.loc }

// Depth reports the number of currently open objects and arrays.
func (p *Parser) Depth() int { return p.stack.depth() }

// Truncated reports whether any name or value of the current document was
// truncated to fit the parser's buffers.
func (p *Parser) Truncated() bool { return p.trunc }

// advance moves past the current byte.
func (p *Parser) advance() {
	p.loc = p.loc.next(p.src[p.pos])
	p.pos++
}

// skipRest discards the remainder of the current chunk.
func (p *Parser) skipRest() {
	for p.pos < len(p.src) {
		p.advance()
	}
}

// fail records a parse fault at the current location and stops parsing.
func (p *Parser) fail(f Fault, msg string, args ...any) {
	p.state = stDone
	p.fault = f
	p.err = &SyntaxError{
		Fault:    f,
		Location: p.loc,
		Message:  fmt.Sprintf(msg, args...),
	}
}

// failAccess records an access fault caused by err, which may be nil.
func (p *Parser) failAccess(f Fault, err error, msg string) {
	p.fail(f, "%s", msg)
	if err != nil {
		serr := p.err.(*SyntaxError)
		serr.Message = fmt.Sprintf("%s: %v", msg, err)
		serr.err = err
	}
}

// check records a HandlerFailed fault if err != nil.
func (p *Parser) check(err error) {
	if err != nil {
		p.failAccess(HandlerFailed, err, "handler")
	}
}

// addName adds the current byte to the name accumulator.
func (p *Parser) addName(b byte) {
	if p.name.add(b) {
		p.truncated(true)
	}
}

// addValue adds the current byte to the value accumulator.
func (p *Parser) addValue(b byte) {
	if p.value.add(b) {
		p.truncated(false)
	}
}

func (p *Parser) truncated(isName bool) {
	p.trunc = true
	if th, ok := p.h.(TruncationHandler); ok {
		th.Truncated(isName, p.loc)
	}
}
