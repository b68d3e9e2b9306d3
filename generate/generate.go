// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package generate renders document trees as JSON text.
//
// The output places each value on its own line, indented by two spaces per
// level of nesting, with the members of an object written as "name": value.
// Strings are escaped so that the text can be read back by a jfeed.Parser.
package generate

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/creachadair/jfeed/internal/escape"
	"github.com/creachadair/jfeed/tree"
	"github.com/creachadair/jfeed/tree/cursor"

	"go4.org/mem"
)

// Write renders the value under c, and everything beneath it, to w. The depth
// of c at the time of the call is rendered without indentation. When Write
// returns, c is at the same position as when it was called.
func Write(w io.Writer, c *cursor.Cursor) error {
	g := &generator{w: bufio.NewWriter(w), base: c.Depth()}
	g.node(c, false)
	g.w.WriteByte('\n')
	return g.w.Flush()
}

// String renders v as a string.
func String(v tree.Value) string {
	var sb strings.Builder
	Write(&sb, cursor.New(v)) // writes to a strings.Builder do not fail
	return sb.String()
}

type generator struct {
	w    *bufio.Writer // retains the first write error, reported by Flush
	base int
	buf  []byte
}

func (g *generator) indent(depth int) {
	for i := 0; i < 2*(depth-g.base); i++ {
		g.w.WriteByte(' ')
	}
}

func (g *generator) quote(s string) {
	g.buf = append(g.buf[:0], '"')
	g.buf = escape.Quote(g.buf, mem.S(s))
	g.buf = append(g.buf, '"')
	g.w.Write(g.buf)
}

// node writes the value under c. If named is true, the value is preceded by
// its name.
func (g *generator) node(c *cursor.Cursor, named bool) {
	g.indent(c.Depth())
	if named {
		g.quote(c.Name())
		g.w.WriteString(": ")
	}
	switch c.Kind() {
	case tree.NullKind:
		g.w.WriteString("null")
	case tree.ObjectKind:
		g.w.WriteString("{\n")
		g.children(c, true)
		g.indent(c.Depth())
		g.w.WriteByte('}')
	case tree.ArrayKind:
		g.w.WriteString("[\n")
		g.children(c, false)
		g.indent(c.Depth())
		g.w.WriteByte(']')
	case tree.BoolKind:
		g.w.WriteString(strconv.FormatBool(c.ReadBool()))
	case tree.IntegerKind:
		g.buf = strconv.AppendInt(g.buf[:0], c.ReadInt(), 10)
		g.w.Write(g.buf)
	case tree.FloatKind:
		g.buf = appendFloat(g.buf[:0], c.ReadFloat())
		g.w.Write(g.buf)
	case tree.StringKind:
		g.quote(c.ReadString())
	}
}

// children writes the elements of the container under c, each followed by
// ",\n" except the last, which is followed by "\n".
func (g *generator) children(c *cursor.Cursor, named bool) {
	if !c.ToFirstChild() {
		return
	}
	defer c.Up()
	for {
		g.node(c, named)
		if !c.ToNextSibling() {
			g.w.WriteByte('\n')
			return
		}
		g.w.WriteString(",\n")
	}
}

// appendFloat appends the shortest decimal form of v that parses back to the
// same float32. The result always has a fractional part, so that it is read
// back as a float and not an integer.
func appendFloat(buf []byte, v float32) []byte {
	start := len(buf)
	buf = strconv.AppendFloat(buf, float64(v), 'f', -1, 32)
	for _, b := range buf[start:] {
		if b == '.' {
			return buf
		}
	}
	return append(buf, '.', '0')
}
