// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements read-only traversal over a document tree.
package cursor

import (
	"fmt"

	"github.com/creachadair/jfeed/tree"
)

// Path traverses a sequential path into the structure of v where path elements
// are as documented for the Cursor.Down method. This is a convenience wrapper
// for creating a cursor, applying path, and retrieving its value.
func Path[T tree.Value](v tree.Value, path ...any) (T, error) {
	c := New(v).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	got, ok := c.Value().(T)
	if !ok {
		return result, fmt.Errorf("wrong value type %T", c.Value())
	}
	return got, nil
}

// A frame is a position among the children of a container.
type frame struct {
	elts []tree.Value
	pos  int
}

// A Cursor is a pointer that navigates into the structure of a tree.Value.
// The depth of the origin is 0, and each step into a container adds 1.
type Cursor struct {
	org tree.Value
	stk []frame
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin tree.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() tree.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() tree.Value {
	if c.AtOrigin() {
		return c.org
	}
	f := c.stk[len(c.stk)-1]
	return f.elts[f.pos]
}

// Kind reports the kind of the current value.
func (c *Cursor) Kind() tree.Kind { return c.Value().Kind() }

// Name reports the name of the current value.
func (c *Cursor) Name() string { return c.Value().Name() }

// Depth reports the nesting depth of the current value below the origin.
func (c *Cursor) Depth() int { return len(c.stk) }

// Path reports the complete sequence of values from the origin to the current
// location in c.
func (c *Cursor) Path() []tree.Value {
	out := []tree.Value{c.org}
	for _, f := range c.stk {
		out = append(out, f.elts[f.pos])
	}
	return out
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// ToFirstChild moves the cursor to the first element of the current object
// or array, and reports whether it moved. It does not move if the current
// value is not a container, or is empty.
func (c *Cursor) ToFirstChild() bool {
	elts := tree.Children(c.Value())
	if len(elts) == 0 {
		return false
	}
	c.stk = append(c.stk, frame{elts: elts})
	return true
}

// ToNextSibling moves the cursor to the next element of the enclosing object
// or array, and reports whether it moved.
func (c *Cursor) ToNextSibling() bool {
	n := len(c.stk)
	if n == 0 || c.stk[n-1].pos+1 >= len(c.stk[n-1].elts) {
		return false
	}
	c.stk[n-1].pos++
	return true
}

// ReadString returns the text of the current value.
// It panics if the current value is not a string.
func (c *Cursor) ReadString() string { return mustBe[*tree.String](c).Value }

// ReadInt returns the value of the current integer.
// It panics if the current value is not an integer.
func (c *Cursor) ReadInt() int64 { return mustBe[*tree.Integer](c).Value }

// ReadFloat returns the value of the current float.
// It panics if the current value is not a float.
func (c *Cursor) ReadFloat() float32 { return mustBe[*tree.Float](c).Value }

// ReadBool returns the value of the current Boolean constant.
// It panics if the current value is not a Boolean.
func (c *Cursor) ReadBool() bool { return mustBe[*tree.Bool](c).Value }

func mustBe[T tree.Value](c *Cursor) T {
	v, ok := c.Value().(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("cursor: value is %v, not %T", c.Kind(), zero))
	}
	return v
}

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are either strings (denoting object
// member names) or integers (denoting offsets into arrays or objects). If the
// path cannot be completely consumed, traversal stops and an error is
// recorded. Use Err to recover the error. It returns c to permit chaining.
//
// If a path element is a string, the corresponding value must be an object,
// and the string resolves to the first member with that name.
//
// If a path element is an integer, the corresponding value must be an array or
// object, and the integer resolves to an index in the array or object.
// Negative indices count backward from the end (-1 is last, -2 second last).
// An error is reported if the index is out of bounds.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	for _, elt := range path {
		cur := c.Value()
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(*tree.Object)
			if !ok {
				return c.setErrorf("cannot traverse %v with %q", cur.Kind(), t)
			}
			i := obj.Index(t)
			if i < 0 {
				return c.setErrorf("name %q not found", t)
			}
			c.stk = append(c.stk, frame{elts: obj.Members, pos: i})

		case int:
			switch cur.(type) {
			case *tree.Array, *tree.Object:
				elts := tree.Children(cur)
				i, ok := fixArrayBound(len(elts), t)
				if !ok {
					return c.setErrorf("%v index %d out of bounds (n=%d)", cur.Kind(), t, len(elts))
				}
				c.stk = append(c.stk, frame{elts: elts, pos: i})
			default:
				return c.setErrorf("cannot traverse %v with %v", cur.Kind(), elt)
			}

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
