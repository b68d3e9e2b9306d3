// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jfeed implements an incremental, event-driven JSON parser.
//
// # Parsing
//
// The Parser type consumes JSON text delivered in chunks of any size, and
// reports the structure of the input by calling methods on a Handler. A chunk
// may end anywhere, even in the middle of a string, escape sequence, number,
// or keyword; the parser keeps all the state it needs to resume with the next
// chunk. The parser does not allocate while consuming input, so it can be
// driven by any I/O model:
//
//	p := jfeed.NewParser(handler)
//	for chunk := range chunks {
//	   st, err := p.Consume(chunk)
//	   if err != nil {
//	      log.Fatalf("Parse failed: %v", err)
//	   } else if st == jfeed.Complete {
//	      break
//	   }
//	}
//
// To parse a whole document from an io.Reader, call ParseReader:
//
//	if err := p.ParseReader(r, nil); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Call Reset before parsing an unrelated document with the same Parser.
//
// # Limits
//
// The parser accepts a subset of JSON. The root of a document must be an
// object, and objects and arrays may be nested at most MaxDepth deep. Numbers
// may not have exponents, and strings may not contain \u escapes. Names
// longer than MaxNameLen bytes and values longer than MaxValueLen bytes are
// truncated; a Handler that implements TruncationHandler is told when this
// happens.
//
// # Errors
//
// Errors have concrete type *jfeed.SyntaxError, and carry a Fault that
// classifies the failure along with the line and column of the offending
// byte. Faults are ordered, so a Fault f denotes failure if f.Failed(), that
// is, f >= ErrUnspecified. A SyntaxError matches its Fault with errors.Is:
//
//	if errors.Is(err, jfeed.ExponentNotSupported) {
//	   // ...
//	}
//
// Once a Parser reports an error it consumes no further input until Reset.
//
// # Handlers
//
// The Handler interface accepts parser events. The methods of a handler
// correspond to the syntax of JSON values:
//
//	JSON type  | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	array      | BeginArray, EndArray      | [ ... ]
//	string     | StringValue               | "text", with escapes decoded
//	number     | IntegerValue, FloatValue  | 25, -0.5
//	constant   | BoolValue, NullValue      | true, false, null
//
// Each method except EndObject and EndArray is passed the name of the object
// member it belongs to, or an empty name within an array. A Recorder collects
// events as Event values, and HandlerFunc adapts a plain function.
package jfeed
