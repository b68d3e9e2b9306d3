// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfeed

import "fmt"

// Fault classifies the outcome of a parsing session. The values are ordered:
// any value at or above ErrUnspecified denotes failure, and any value at or
// above ParseUnspecified denotes malformed input.
type Fault byte

// Constants defining the valid Fault values.
const (
	NotStarted Fault = iota // no input consumed since the last reset
	InProgress              // input consumed, document not yet complete
	Done                    // document complete without error

	// Lowest failure code. Use Fault.Failed rather than enumerating kinds.
	ErrUnspecified

	CantAccessData // no handler or no input source
	BadRead        // the input source reported an error
	HandlerFailed  // a Handler method reported an error

	// Lowest parse failure code. This and above means the input is malformed.
	ParseUnspecified

	ExpectedBeginObject
	ExpectedEndOfObject
	ExpectedEndOfArray
	ExpectedString
	UnicodeEscapeNotSupported
	InvalidEscapedCharacter
	ExpectedNameValueSeparator
	ExpectedValue
	PrematureDecimalPoint
	UnfinishedFractionalNumber
	ExpectedDigit
	ExpectedDecimalOrEndOfNumber
	ExpectedDigitOrDecimalOrEndOfNumber
	ExpectedDigitOrEndOfNumber
	ExpectedContinuationOfTrue
	ExpectedContinuationOfFalse
	ExpectedContinuationOfNull
	BadValue // e.g., "nulll"
	ExpectedValueSeparatorOrEndOfContainer
	BadStructure
	ExponentNotSupported
	TooDeep
	TrailingData
	NumberOutOfRange
	UnexpectedEndOfInput

	// Do not reorder these constants; callers compare them by rank.
)

var faultStr = [...]string{
	NotStarted: "not started",
	InProgress: "in progress",
	Done:       "done",

	ErrUnspecified: "unspecified error",
	CantAccessData: "cannot access data",
	BadRead:        "read failed",
	HandlerFailed:  "handler failed",

	ParseUnspecified:                       "unspecified parse error",
	ExpectedBeginObject:                    "expected begin object",
	ExpectedEndOfObject:                    "expected end of object",
	ExpectedEndOfArray:                     "expected end of array",
	ExpectedString:                         "expected string",
	UnicodeEscapeNotSupported:              "unicode escape not supported",
	InvalidEscapedCharacter:                "invalid escaped character",
	ExpectedNameValueSeparator:             "expected name-value separator",
	ExpectedValue:                          "expected value",
	PrematureDecimalPoint:                  "premature decimal point",
	UnfinishedFractionalNumber:             "unfinished fractional number",
	ExpectedDigit:                          "expected digit",
	ExpectedDecimalOrEndOfNumber:           "expected decimal point or end of number",
	ExpectedDigitOrDecimalOrEndOfNumber:    "expected digit, decimal point or end of number",
	ExpectedDigitOrEndOfNumber:             "expected digit or end of number",
	ExpectedContinuationOfTrue:             `expected continuation of "true"`,
	ExpectedContinuationOfFalse:            `expected continuation of "false"`,
	ExpectedContinuationOfNull:             `expected continuation of "null"`,
	BadValue:                               "bad value",
	ExpectedValueSeparatorOrEndOfContainer: "expected value separator or end of container",
	BadStructure:                           "bad structure",
	ExponentNotSupported:                   "exponent not supported",
	TooDeep:                                "nesting too deep",
	TrailingData:                           "trailing data",
	NumberOutOfRange:                       "number out of range",
	UnexpectedEndOfInput:                   "unexpected end of input",
}

func (f Fault) String() string {
	if int(f) >= len(faultStr) {
		return fmt.Sprintf("fault(%d)", byte(f))
	}
	return faultStr[f]
}

// Error satisfies the error interface, so that a Fault can be the target of
// errors.Is for a *SyntaxError.
func (f Fault) Error() string { return f.String() }

// Failed reports whether f denotes a failed session.
func (f Fault) Failed() bool { return f >= ErrUnspecified }

// Malformed reports whether f denotes a failure caused by the input text.
func (f Fault) Malformed() bool { return f >= ParseUnspecified }

// SyntaxError is the concrete type of errors reported by the parser, both for
// malformed input and for access failures.
type SyntaxError struct {
	Fault    Fault
	Location Location
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// Is reports whether target is the Fault of s.
func (s *SyntaxError) Is(target error) bool {
	f, ok := target.(Fault)
	return ok && f == s.Fault
}
