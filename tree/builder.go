// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"errors"
	"io"

	"github.com/creachadair/jfeed"
)

// Parse parses a single document from r and returns its root object.
func Parse(r io.Reader) (*Object, error) {
	var b Builder
	if err := jfeed.NewParser(&b).ParseReader(r, nil); err != nil {
		return nil, err
	}
	return b.Root()
}

// A Builder implements the jfeed.Handler interface to construct a document
// tree from parser events. A zero Builder is ready for use. A Builder holds
// one document; call Reset before using it for another.
type Builder struct {
	root *Object
	stk  []Value

	// Truncations records the location of each name or value that was
	// truncated by the parser.
	Truncations []jfeed.Location
}

// Root returns the root object of the completed document.
func (b *Builder) Root() (*Object, error) {
	if b.root == nil || len(b.stk) != 0 {
		return nil, errors.New("incomplete document")
	}
	return b.root, nil
}

// Reset discards the document held by b.
func (b *Builder) Reset() {
	b.root = nil
	b.stk = b.stk[:0]
	b.Truncations = b.Truncations[:0]
}

func (b *Builder) top() Value { return b.stk[len(b.stk)-1] }

func (b *Builder) pop() error {
	if len(b.stk) == 0 {
		return errors.New("unbalanced end of container")
	}
	b.stk = b.stk[:len(b.stk)-1]
	return nil
}

func (b *Builder) push(v Value) { b.stk = append(b.stk, v) }

// add attaches v to the innermost open container.
func (b *Builder) add(v Value) error {
	if len(b.stk) == 0 {
		return errors.New("value outside of a container")
	}
	switch t := b.top().(type) {
	case *Object:
		t.Members = append(t.Members, v)
	case *Array:
		t.Values = append(t.Values, v)
	}
	return nil
}

func (b *Builder) BeginObject(name []byte) error {
	obj := &Object{Key: string(name)}
	if len(b.stk) == 0 {
		if b.root != nil {
			return errors.New("multiple root objects")
		}
		b.root = obj
	} else if err := b.add(obj); err != nil {
		return err
	}
	b.push(obj)
	return nil
}

func (b *Builder) EndObject() error { return b.pop() }

func (b *Builder) BeginArray(name []byte) error {
	arr := &Array{Key: string(name)}
	if err := b.add(arr); err != nil {
		return err
	}
	b.push(arr)
	return nil
}

func (b *Builder) EndArray() error { return b.pop() }

func (b *Builder) StringValue(name, value []byte) error {
	return b.add(&String{Key: string(name), Value: string(value)})
}

func (b *Builder) IntegerValue(name []byte, value int64) error {
	return b.add(&Integer{Key: string(name), Value: value})
}

func (b *Builder) FloatValue(name []byte, value float32) error {
	return b.add(&Float{Key: string(name), Value: value})
}

func (b *Builder) BoolValue(name []byte, value bool) error {
	return b.add(&Bool{Key: string(name), Value: value})
}

func (b *Builder) NullValue(name []byte) error {
	return b.add(&Null{Key: string(name)})
}

// Truncated implements the jfeed.TruncationHandler interface.
func (b *Builder) Truncated(isName bool, loc jfeed.Location) {
	b.Truncations = append(b.Truncations, loc)
}
