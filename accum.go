// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfeed

// Capacity limits of the parser's scratch storage.
const (
	MaxNameLen  = 28 // longest object member name retained, in bytes
	MaxValueLen = 64 // longest string or number text retained, in bytes
	MaxDepth    = 7  // deepest nesting of objects and arrays
)

// An accum is a fixed-capacity byte buffer. Bytes added beyond its capacity
// are dropped, and the buffer remembers that this happened until reset.
type accum struct {
	buf  []byte
	over bool
}

func (a *accum) reset() { a.buf = a.buf[:0]; a.over = false }

func (a *accum) len() int { return len(a.buf) }

func (a *accum) bytes() []byte { return a.buf }

// add appends b if there is room. It reports true only for the first byte
// dropped since the last reset.
func (a *accum) add(b byte) bool {
	if len(a.buf) < cap(a.buf) {
		a.buf = append(a.buf, b)
		return false
	}
	first := !a.over
	a.over = true
	return first
}

// A stack records the open containers, true for objects and false for
// arrays, innermost last.
type stack struct {
	kind [MaxDepth]bool
	n    int
}

func (s *stack) depth() int { return s.n }

// push opens a container, or reports false if the stack is full.
func (s *stack) push(isObject bool) bool {
	if s.n == len(s.kind) {
		return false
	}
	s.kind[s.n] = isObject
	s.n++
	return true
}

// pop closes the innermost container. It is a no-op on an empty stack.
func (s *stack) pop() {
	if s.n > 0 {
		s.n--
	}
}

// inObject reports whether the innermost open container is an object.
func (s *stack) inObject() bool { return s.n > 0 && s.kind[s.n-1] }

// inArray reports whether the innermost open container is an array.
func (s *stack) inArray() bool { return s.n > 0 && !s.kind[s.n-1] }
