// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfeed_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/creachadair/jfeed"
)

func TestParseReader(t *testing.T) {
	const input = `{"name":"reader", "vals":[1, 2.5, true, null]}`
	const want = `
BeginObject ""
String "name" "reader"
BeginArray "vals"
Integer "" 1
Float "" 2.5
Bool "" true
Null ""
EndArray
EndObject`

	for _, bufSize := range []int{0, 1, 3, 7, 64, 1024} {
		var rec jfeed.Recorder
		p := jfeed.NewParser(rec.Handler())
		if err := p.ParseReader(strings.NewReader(input), make([]byte, bufSize)); err != nil {
			t.Errorf("ParseReader (buf=%d): unexpected error: %v", bufSize, err)
			continue
		}
		if diff := diffStrings(want, eventLines(rec.Events)); diff != "" {
			t.Errorf("ParseReader (buf=%d): (-want, +got)\n%s", bufSize, diff)
		}
	}

	t.Run("OneByte", func(t *testing.T) {
		var rec jfeed.Recorder
		p := jfeed.NewParser(rec.Handler())
		if err := p.ParseReader(iotest.OneByteReader(strings.NewReader(input)), nil); err != nil {
			t.Fatalf("ParseReader: unexpected error: %v", err)
		}
		if diff := diffStrings(want, eventLines(rec.Events)); diff != "" {
			t.Errorf("ParseReader: (-want, +got)\n%s", diff)
		}
	})

	t.Run("DataErr", func(t *testing.T) {
		var rec jfeed.Recorder
		p := jfeed.NewParser(rec.Handler())
		if err := p.ParseReader(iotest.DataErrReader(strings.NewReader(input)), nil); err != nil {
			t.Fatalf("ParseReader: unexpected error: %v", err)
		}
		if diff := diffStrings(want, eventLines(rec.Events)); diff != "" {
			t.Errorf("ParseReader: (-want, +got)\n%s", diff)
		}
	})
}

func TestParseReaderErrors(t *testing.T) {
	errBad := errors.New("the disk is on fire")
	tests := []struct {
		name  string
		input string
		fault jfeed.Fault
	}{
		{"Empty", "", jfeed.UnexpectedEndOfInput},
		{"Blank", "  \n ", jfeed.UnexpectedEndOfInput},
		{"Unclosed", `{"a":[1,2]`, jfeed.UnexpectedEndOfInput},
		{"MidNumber", `{"a":1`, jfeed.UnexpectedEndOfInput},
		{"MidString", `{"a":"abc`, jfeed.UnexpectedEndOfInput},
		{"Trailing", `{"a":1} x`, jfeed.TrailingData},
		{"Malformed", `{"a":1 "b":2}`, jfeed.ExpectedValueSeparatorOrEndOfContainer},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var rec jfeed.Recorder
			p := jfeed.NewParser(rec.Handler())
			err := p.ParseReader(strings.NewReader(test.input), nil)
			if !errors.Is(err, test.fault) {
				t.Errorf("ParseReader %#q: got %v, want %v", test.input, err, test.fault)
			}
			if p.Status() != jfeed.Failed {
				t.Errorf("Status: got %v, want %v", p.Status(), jfeed.Failed)
			}
		})
	}

	t.Run("EndLocation", func(t *testing.T) {
		var rec jfeed.Recorder
		p := jfeed.NewParser(rec.Handler())
		err := p.ParseReader(strings.NewReader("{\"a\":\n1"), nil)
		var serr *jfeed.SyntaxError
		if !errors.As(err, &serr) {
			t.Fatalf("ParseReader: got %v, want *SyntaxError", err)
		}
		if got := serr.Location.String(); got != "2:2" {
			t.Errorf("Location: got %s, want 2:2", got)
		}
	})

	t.Run("ReadError", func(t *testing.T) {
		var rec jfeed.Recorder
		p := jfeed.NewParser(rec.Handler())
		err := p.ParseReader(iotest.ErrReader(errBad), nil)
		if !errors.Is(err, jfeed.BadRead) {
			t.Errorf("ParseReader: got %v, want %v", err, jfeed.BadRead)
		}
		if !errors.Is(err, errBad) {
			t.Errorf("ParseReader: got %v, want %v", err, errBad)
		}
	})

	t.Run("NilReader", func(t *testing.T) {
		var rec jfeed.Recorder
		err := jfeed.NewParser(rec.Handler()).ParseReader(nil, nil)
		if !errors.Is(err, jfeed.CantAccessData) {
			t.Errorf("ParseReader: got %v, want %v", err, jfeed.CantAccessData)
		}
	})

	t.Run("NilHandler", func(t *testing.T) {
		err := jfeed.NewParser(nil).ParseReader(strings.NewReader(""), nil)
		if !errors.Is(err, jfeed.CantAccessData) {
			t.Errorf("ParseReader: got %v, want %v", err, jfeed.CantAccessData)
		}
	})
}

func TestParseReaderTrailing(t *testing.T) {
	var rec jfeed.Recorder
	p := jfeed.NewParser(rec.Handler())
	p.AllowTrailingData(true)

	// With trailing data allowed, reading stops once the root object closes,
	// so a later read error is not seen.
	r := newErrAfter(`{"ok":true} and more`, errors.New("unreachable"))
	if err := p.ParseReader(r, make([]byte, 4)); err != nil {
		t.Errorf("ParseReader: unexpected error: %v", err)
	}
	if diff := diffStrings("BeginObject \"\"\nBool \"ok\" true\nEndObject", eventLines(rec.Events)); diff != "" {
		t.Errorf("Events: (-want, +got)\n%s", diff)
	}
}

// errAfter is a reader that returns its text, then the given error.
type errAfter struct {
	text string
	err  error
}

func newErrAfter(text string, err error) *errAfter { return &errAfter{text: text, err: err} }

func (e *errAfter) Read(buf []byte) (int, error) {
	if e.text == "" {
		return 0, e.err
	}
	n := copy(buf, e.text)
	e.text = e.text[n:]
	return n, nil
}
