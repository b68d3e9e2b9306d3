// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package tree defines a generic document tree for JSON values, and a
// jfeed.Handler that constructs trees from parser events.
package tree

import "fmt"

// Kind is the type of a tree node.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota
	ObjectKind
	ArrayKind
	StringKind
	IntegerKind
	FloatKind
	BoolKind
	NullKind
)

var kindStr = [...]string{
	Invalid:     "invalid",
	ObjectKind:  "object",
	ArrayKind:   "array",
	StringKind:  "string",
	IntegerKind: "integer",
	FloatKind:   "float",
	BoolKind:    "bool",
	NullKind:    "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// A Value is a node of a document tree. Every node carries the name of the
// object member it belongs to, which is empty for the root and for the
// elements of an array.
type Value interface {
	Kind() Kind
	Name() string
}

// An Object is a collection of named values.
type Object struct {
	Key     string
	Members []Value
}

func (o *Object) Kind() Kind     { return ObjectKind }
func (o *Object) Name() string   { return o.Key }
func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o.Members)) }

// Find returns the first member of o with the given name, or nil.
func (o *Object) Find(name string) Value {
	if i := o.Index(name); i >= 0 {
		return o.Members[i]
	}
	return nil
}

// Index returns the index of the first member of o with the given name, or -1.
func (o *Object) Index(name string) int {
	for i, m := range o.Members {
		if m.Name() == name {
			return i
		}
	}
	return -1
}

// An Array is a sequence of values.
type Array struct {
	Key    string
	Values []Value
}

func (a *Array) Kind() Kind     { return ArrayKind }
func (a *Array) Name() string   { return a.Key }
func (a *Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a.Values)) }

// A String is a string value, with escapes decoded.
type String struct {
	Key   string
	Value string
}

func (s *String) Kind() Kind   { return StringKind }
func (s *String) Name() string { return s.Key }

// An Integer is a number without a fractional part.
type Integer struct {
	Key   string
	Value int64
}

func (z *Integer) Kind() Kind   { return IntegerKind }
func (z *Integer) Name() string { return z.Key }

// A Float is a number with a fractional part.
type Float struct {
	Key   string
	Value float32
}

func (f *Float) Kind() Kind   { return FloatKind }
func (f *Float) Name() string { return f.Key }

// A Bool is a Boolean constant, true or false.
type Bool struct {
	Key   string
	Value bool
}

func (b *Bool) Kind() Kind   { return BoolKind }
func (b *Bool) Name() string { return b.Key }

// Null represents the null constant.
type Null struct {
	Key string
}

func (n *Null) Kind() Kind   { return NullKind }
func (n *Null) Name() string { return n.Key }

// Children returns the elements of v if it is an object or array, or nil.
func Children(v Value) []Value {
	switch t := v.(type) {
	case *Object:
		return t.Members
	case *Array:
		return t.Values
	default:
		return nil
	}
}
