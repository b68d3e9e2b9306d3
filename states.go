// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfeed

import (
	"errors"
	"strconv"
)

// state is the position of the parser in the automaton.
type state byte

const (
	stNotStarted state = iota // awaiting the root "{"

	stBeganObject  // after "{", awaiting a name or "}"
	stBeganArray   // after "[", awaiting a value or "]"
	stName         // inside a quoted name
	stNameEscape   // inside a name, after "\"
	stFinishedName // after a name, awaiting ":"
	stSeparator    // after ":", awaiting a value

	stString       // inside a quoted string value
	stStringEscape // inside a string value, after "\"

	stNumMinus    // after a leading "-"
	stNumZero     // after a leading "0" (or "-0")
	stNumWhole    // reading the digits of the integer part
	stNumPoint    // after the decimal point
	stNumFraction // reading the digits of the fractional part

	stTrue  // matching "true"
	stFalse // matching "false"
	stNull  // matching "null"

	stFinishedValue  // after a value, awaiting "," or a close bracket
	stNeedInObject   // after "," in an object, awaiting a name
	stNeedInArray    // after "," in an array, awaiting a value
	stFinished       // the root object is closed
	stDone           // parsing stopped with an error
)

// Keyword spellings, indexed by state.
var keywords = [...]string{
	stTrue:  "true",
	stFalse: "false",
	stNull:  "null",
}

// Keyword mismatch faults, indexed by state.
var keywordFaults = [...]Fault{
	stTrue:  ExpectedContinuationOfTrue,
	stFalse: ExpectedContinuationOfFalse,
	stNull:  ExpectedContinuationOfNull,
}

// step consumes or examines b, the byte at the current position, and takes
// the one action called for by the current state.
func (p *Parser) step(b byte) {
	switch p.state {
	case stNotStarted:
		p.stepNotStarted(b)
	case stBeganObject:
		p.stepBeganObject(b)
	case stNeedInObject:
		p.stepNeedInObject(b)
	case stName:
		p.stepName(b)
	case stNameEscape, stStringEscape:
		p.stepEscape(b)
	case stFinishedName:
		p.stepFinishedName(b)
	case stSeparator, stBeganArray, stNeedInArray:
		p.stepValue(b)
	case stString:
		p.stepString(b)
	case stNumMinus:
		p.stepNumMinus(b)
	case stNumZero:
		p.stepNumZero(b)
	case stNumWhole:
		p.stepNumWhole(b)
	case stNumPoint:
		p.stepNumPoint(b)
	case stNumFraction:
		p.stepNumFraction(b)
	case stTrue, stFalse, stNull:
		p.stepKeyword(b)
	case stFinishedValue:
		p.stepFinishedValue(b)
	case stFinished:
		p.stepFinished(b)
	default:
		p.fail(ParseUnspecified, "parser is in an invalid state")
	}
}

func (p *Parser) stepNotStarted(b byte) {
	if isSpace(b) {
		p.advance()
	} else if b == '{' {
		p.beginObject()
	} else {
		p.fail(ExpectedBeginObject, "document must begin with the %q of the root object, got %q", '{', b)
	}
}

func (p *Parser) stepBeganObject(b byte) {
	switch {
	case isSpace(b):
		p.advance()
	case b == '"':
		p.beginName()
	case b == '}':
		p.endObject()
	default:
		p.fail(ExpectedString, "expected member name or %q, got %q", '}', b)
	}
}

func (p *Parser) stepNeedInObject(b byte) {
	switch {
	case isSpace(b):
		p.advance()
	case b == '"':
		p.beginName()
	case b == '}':
		p.fail(ExpectedString, "expected member name after %q, got %q", ',', b)
	default:
		p.fail(ExpectedString, "expected member name, got %q", b)
	}
}

func (p *Parser) stepName(b byte) {
	switch b {
	case '"':
		p.state = stFinishedName
	case '\\':
		p.state = stNameEscape
	default:
		p.addName(b)
	}
	p.advance()
}

func (p *Parser) stepFinishedName(b byte) {
	if isSpace(b) {
		p.advance()
	} else if b == ':' {
		p.state = stSeparator
		p.advance()
	} else {
		p.fail(ExpectedNameValueSeparator, "expected %q after member name, got %q", ':', b)
	}
}

// stepValue handles the first significant byte of a value, in an object after
// ":" or in an array.
func (p *Parser) stepValue(b byte) {
	if isSpace(b) {
		p.advance()
		return
	}
	switch b {
	case '"':
		p.value.reset()
		p.state = stString
		p.advance()
	case '-':
		p.beginNumber(b, stNumMinus)
	case '0':
		p.beginNumber(b, stNumZero)
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		p.beginNumber(b, stNumWhole)
	case '.':
		p.fail(PrematureDecimalPoint, "number must begin with a digit, not %q", b)
	case 't':
		p.beginKeyword(b, stTrue)
	case 'f':
		p.beginKeyword(b, stFalse)
	case 'n':
		p.beginKeyword(b, stNull)
	case '{':
		p.beginObject()
	case '[':
		p.beginArray()
	case ']':
		if p.state == stBeganArray {
			p.endArray()
		} else if p.state == stNeedInArray {
			p.fail(ExpectedValue, "expected value after %q, got %q", ',', b)
		} else {
			p.fail(ExpectedValue, "expected value, got %q", b)
		}
	default:
		p.fail(ExpectedValue, "expected value, got %q", b)
	}
}

func (p *Parser) stepString(b byte) {
	switch b {
	case '"':
		p.state = stFinishedValue
		p.check(p.h.StringValue(p.name.bytes(), p.value.bytes()))
	case '\\':
		p.state = stStringEscape
	default:
		p.addValue(b)
	}
	if !p.fault.Failed() {
		p.advance()
	}
}

// stepEscape handles the byte following a "\" in a name or string value.
func (p *Parser) stepEscape(b byte) {
	var dec byte
	switch b {
	case '"', '\\', '/':
		dec = b
	case 'b':
		dec = '\b'
	case 'f':
		dec = '\f'
	case 'n':
		dec = '\n'
	case 'r':
		dec = '\r'
	case 't':
		dec = '\t'
	case 'u':
		p.fail(UnicodeEscapeNotSupported, `\u escape sequences are not supported`)
		return
	default:
		p.fail(InvalidEscapedCharacter, `invalid %q after escape`, b)
		return
	}
	if p.state == stNameEscape {
		p.addName(dec)
		p.state = stName
	} else {
		p.addValue(dec)
		p.state = stString
	}
	p.advance()
}

func (p *Parser) stepNumMinus(b byte) {
	switch {
	case b == '0':
		p.addValue(b)
		p.state = stNumZero
		p.advance()
	case isDigit(b):
		p.addValue(b)
		p.state = stNumWhole
		p.advance()
	default:
		p.fail(ExpectedDigit, "expected digit after %q, got %q", '-', b)
	}
}

func (p *Parser) stepNumZero(b byte) {
	switch {
	case b == '.':
		p.addValue(b)
		p.state = stNumPoint
		p.advance()
	case isEndOfValue(b):
		p.finishInteger()
	case isExponent(b):
		p.fail(ExponentNotSupported, "exponents are not supported")
	default:
		p.fail(ExpectedDecimalOrEndOfNumber, "expected decimal point or end of number after leading zero, got %q", b)
	}
}

func (p *Parser) stepNumWhole(b byte) {
	switch {
	case isDigit(b):
		p.addValue(b)
		p.advance()
	case b == '.':
		p.addValue(b)
		p.state = stNumPoint
		p.advance()
	case isEndOfValue(b):
		p.finishInteger()
	case isExponent(b):
		p.fail(ExponentNotSupported, "exponents are not supported")
	default:
		p.fail(ExpectedDigitOrDecimalOrEndOfNumber, "expected digit, decimal point, or end of number, got %q", b)
	}
}

func (p *Parser) stepNumPoint(b byte) {
	if !isDigit(b) {
		p.fail(UnfinishedFractionalNumber, "expected digit after decimal point, got %q", b)
		return
	}
	p.addValue(b)
	p.state = stNumFraction
	p.advance()
}

func (p *Parser) stepNumFraction(b byte) {
	switch {
	case isDigit(b):
		p.addValue(b)
		p.advance()
	case isEndOfValue(b):
		p.finishFloat()
	case isExponent(b):
		p.fail(ExponentNotSupported, "exponents are not supported")
	default:
		p.fail(ExpectedDigitOrEndOfNumber, "expected digit or end of number, got %q", b)
	}
}

// stepKeyword matches b against the next byte of the pending keyword. The
// value accumulator holds the bytes matched so far.
func (p *Parser) stepKeyword(b byte) {
	want := keywords[p.state]
	if n := p.value.len(); n < len(want) {
		if b != want[n] {
			p.fail(keywordFaults[p.state], "expected %q in %q keyword, got %q", want[n], want, b)
			return
		}
		p.addValue(b)
		p.advance()
		return
	}

	// The keyword is complete; it must be followed by a delimiter, which is
	// left for the finished-value state to handle.
	if !isEndOfValue(b) {
		p.fail(BadValue, "unexpected %q after %q keyword", b, want)
		return
	}
	kw := p.state
	p.state = stFinishedValue
	switch kw {
	case stTrue:
		p.check(p.h.BoolValue(p.name.bytes(), true))
	case stFalse:
		p.check(p.h.BoolValue(p.name.bytes(), false))
	case stNull:
		p.check(p.h.NullValue(p.name.bytes()))
	}
}

func (p *Parser) stepFinishedValue(b byte) {
	switch {
	case isSpace(b):
		p.advance()
	case b == ',':
		p.name.reset()
		p.value.reset()
		if p.stack.inObject() {
			p.state = stNeedInObject
		} else {
			p.state = stNeedInArray
		}
		p.advance()
	case b == '}':
		p.endObject()
	case b == ']':
		p.endArray()
	case p.stack.inObject():
		p.fail(ExpectedValueSeparatorOrEndOfContainer, "expected %q or %q after object member, got %q", ',', '}', b)
	default:
		p.fail(ExpectedValueSeparatorOrEndOfContainer, "expected %q or %q after array element, got %q", ',', ']', b)
	}
}

// stepFinished handles input after the root object is closed.
func (p *Parser) stepFinished(b byte) {
	if isSpace(b) {
		p.advance()
	} else if p.trail {
		p.skipRest()
	} else {
		p.fail(TrailingData, "unexpected %q after end of root object", b)
	}
}

func (p *Parser) beginObject() {
	if !p.stack.push(true) {
		p.fail(TooDeep, "objects and arrays nested more than %d deep", MaxDepth)
		return
	}
	p.state = stBeganObject
	p.check(p.h.BeginObject(p.name.bytes()))
	p.name.reset()
	if !p.fault.Failed() {
		p.advance()
	}
}

func (p *Parser) endObject() {
	if p.stack.inArray() {
		p.fail(ExpectedEndOfArray, "array closed with %q; use %q", '}', ']')
		return
	}
	p.stack.pop()
	if p.stack.depth() == 0 {
		p.state = stFinished
		p.fault = Done
	} else {
		p.state = stFinishedValue
	}
	p.check(p.h.EndObject())
	if !p.fault.Failed() {
		p.advance()
	}
}

func (p *Parser) beginArray() {
	if !p.stack.push(false) {
		p.fail(TooDeep, "objects and arrays nested more than %d deep", MaxDepth)
		return
	}
	p.state = stBeganArray
	p.check(p.h.BeginArray(p.name.bytes()))
	p.name.reset()
	p.value.reset()
	if !p.fault.Failed() {
		p.advance()
	}
}

func (p *Parser) endArray() {
	if p.stack.inObject() {
		p.fail(ExpectedEndOfObject, "object closed with %q; use %q", ']', '}')
		return
	}
	p.stack.pop()
	if p.stack.depth() == 0 {
		p.fail(BadStructure, "root container was an array")
		return
	}
	p.state = stFinishedValue
	p.check(p.h.EndArray())
	if !p.fault.Failed() {
		p.advance()
	}
}

func (p *Parser) beginName() {
	p.name.reset()
	p.state = stName
	p.advance()
}

func (p *Parser) beginNumber(b byte, next state) {
	p.value.reset()
	p.addValue(b)
	p.state = next
	p.advance()
}

func (p *Parser) beginKeyword(b byte, next state) {
	p.value.reset()
	p.addValue(b)
	p.state = next
	p.advance()
}

// finishInteger reports the integer in the value accumulator. The delimiter
// at the current position is left for the finished-value state.
func (p *Parser) finishInteger() {
	p.state = stFinishedValue
	text := p.value.bytes()
	v, err := strconv.ParseInt(string(text), 10, 64)
	if err != nil {
		p.numberError(text, err)
		return
	}
	p.check(p.h.IntegerValue(p.name.bytes(), v))
}

// finishFloat reports the fractional number in the value accumulator.
func (p *Parser) finishFloat() {
	p.state = stFinishedValue
	text := p.value.bytes()
	v, err := strconv.ParseFloat(string(text), 32)
	if err != nil {
		p.numberError(text, err)
		return
	}
	p.check(p.h.FloatValue(p.name.bytes(), float32(v)))
}

func (p *Parser) numberError(text []byte, err error) {
	if errors.Is(err, strconv.ErrRange) {
		p.fail(NumberOutOfRange, "number %s is out of range", text)
	} else {
		p.fail(ParseUnspecified, "invalid number %s: %v", text, err)
	}
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isExponent(b byte) bool { return b == 'e' || b == 'E' }

// isEndOfValue reports whether b may directly follow a number or keyword.
func isEndOfValue(b byte) bool { return isSpace(b) || b == ',' || b == '}' || b == ']' }
