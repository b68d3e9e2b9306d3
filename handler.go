// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfeed

import (
	"fmt"
	"strconv"
)

// A Handler handles events from parsing an input stream. If a method reports
// an error, parsing stops with fault HandlerFailed and that error is wrapped
// in the error returned to the caller.
//
// The name argument is the name of the object member holding the value; it is
// empty for the root object and for the elements of an array. The parser
// ensures that every Begin is matched by one End at the same depth, and that
// values are only reported between a Begin and its End.
//
// The byte slices passed to a Handler method are only valid for the duration
// of that method call. If the method needs to retain them, it must copy them.
type Handler interface {
	// Begin a new object.
	BeginObject(name []byte) error

	// End the most-recently-opened object.
	EndObject() error

	// Begin a new array.
	BeginArray(name []byte) error

	// End the most-recently-opened array.
	EndArray() error

	// Report a string value with its escapes decoded.
	StringValue(name, value []byte) error

	// Report a number with no fractional part.
	IntegerValue(name []byte, value int64) error

	// Report a number with a fractional part.
	FloatValue(name []byte, value float32) error

	// Report a true or false constant.
	BoolValue(name []byte, value bool) error

	// Report a null constant.
	NullValue(name []byte) error
}

// TruncationHandler is an optional interface that a Handler may implement to
// learn about names and values that did not fit in the parser's buffers. If a
// handler does not provide this method, excess bytes are silently dropped.
type TruncationHandler interface {
	// Truncated is called once for each name (isName == true) or value whose
	// length exceeds MaxNameLen or MaxValueLen. The loc is the location of the
	// first byte dropped.
	Truncated(isName bool, loc Location)
}

// EventKind identifies the Handler method an Event corresponds to.
type EventKind byte

// Constants defining the valid EventKind values.
const (
	BeginObject EventKind = iota + 1
	EndObject
	BeginArray
	EndArray
	String
	Integer
	Float
	Bool
	Null
)

var kindStr = [...]string{
	BeginObject: "BeginObject",
	EndObject:   "EndObject",
	BeginArray:  "BeginArray",
	EndArray:    "EndArray",
	String:      "String",
	Integer:     "Integer",
	Float:       "Float",
	Bool:        "Bool",
	Null:        "Null",
}

func (k EventKind) String() string {
	if k == 0 || int(k) >= len(kindStr) {
		return "invalid event"
	}
	return kindStr[k]
}

// An Event is a self-contained record of one Handler call.
// Only the field matching Kind is set among Str, Int, Float, and Bool.
type Event struct {
	Kind  EventKind
	Name  string
	Str   string
	Int   int64
	Float float32
	Bool  bool
}

// String renders e as a single line, for example:
//
//	BeginObject ""
//	Integer "count" 25
func (e Event) String() string {
	switch e.Kind {
	case EndObject, EndArray:
		return e.Kind.String()
	case String:
		return fmt.Sprintf("%v %q %q", e.Kind, e.Name, e.Str)
	case Integer:
		return fmt.Sprintf("%v %q %d", e.Kind, e.Name, e.Int)
	case Float:
		return fmt.Sprintf("%v %q %s", e.Kind, e.Name, strconv.FormatFloat(float64(e.Float), 'g', -1, 32))
	case Bool:
		return fmt.Sprintf("%v %q %v", e.Kind, e.Name, e.Bool)
	default:
		return fmt.Sprintf("%v %q", e.Kind, e.Name)
	}
}

// eventFunc adapts a function receiving events to the Handler interface.
type eventFunc func(Event) error

// HandlerFunc returns a Handler that delivers each parser event to f as an
// Event value.
func HandlerFunc(f func(Event) error) Handler { return eventFunc(f) }

func (f eventFunc) BeginObject(name []byte) error {
	return f(Event{Kind: BeginObject, Name: string(name)})
}

func (f eventFunc) EndObject() error { return f(Event{Kind: EndObject}) }

func (f eventFunc) BeginArray(name []byte) error {
	return f(Event{Kind: BeginArray, Name: string(name)})
}

func (f eventFunc) EndArray() error { return f(Event{Kind: EndArray}) }

func (f eventFunc) StringValue(name, value []byte) error {
	return f(Event{Kind: String, Name: string(name), Str: string(value)})
}

func (f eventFunc) IntegerValue(name []byte, value int64) error {
	return f(Event{Kind: Integer, Name: string(name), Int: value})
}

func (f eventFunc) FloatValue(name []byte, value float32) error {
	return f(Event{Kind: Float, Name: string(name), Float: value})
}

func (f eventFunc) BoolValue(name []byte, value bool) error {
	return f(Event{Kind: Bool, Name: string(name), Bool: value})
}

func (f eventFunc) NullValue(name []byte) error {
	return f(Event{Kind: Null, Name: string(name)})
}

// A Recorder is a Handler that records the events it receives.
// A zero Recorder is ready for use.
type Recorder struct {
	Events []Event
}

// Handler returns a Handler that appends events to r.
func (r *Recorder) Handler() Handler {
	return HandlerFunc(func(e Event) error { r.Events = append(r.Events, e); return nil })
}

// Reset discards the recorded events.
func (r *Recorder) Reset() { r.Events = r.Events[:0] }

// Channel returns a Handler that sends each event to ch. The handler blocks
// while ch is full.
func Channel(ch chan<- Event) Handler {
	return HandlerFunc(func(e Event) error { ch <- e; return nil })
}
