// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import "github.com/tdewolff/parse/v2/buffer"

// Cursor is a small byte scanner built over tdewolff/parse/v2's zero-copy
// lexing buffer. All of the value grammars in this package are expressed
// as methods that advance a Cursor and report ok=false, leaving the
// cursor's position unspecified, on a failed match.
type Cursor struct {
	r   *buffer.Reader
	src []byte
}

// NewCursor returns a Cursor over src.
func NewCursor(src []byte) *Cursor {
	return &Cursor{r: buffer.NewReader(src), src: src}
}

// raw returns the whole original input slice.
func (c *Cursor) raw() []byte { return c.src }

// remainder returns the unconsumed tail of the input.
func (c *Cursor) remainder() []byte {
	if c.Pos() >= len(c.src) {
		return nil
	}
	return c.src[c.Pos():]
}

// remainderUntil returns the unconsumed input up to (not including) the
// first occurrence of delim, or the whole remainder if delim does not
// appear.
func (c *Cursor) remainderUntil(delim byte) []byte {
	rest := c.remainder()
	for i, b := range rest {
		if b == delim {
			return rest[:i]
		}
	}
	return rest
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.r.Pos() }

// Eof reports whether the cursor has consumed the whole input.
func (c *Cursor) Eof() bool { return c.r.Peek(0) == 0 }

// Peek returns the byte at offset ahead of the current position, or 0 past
// the end of input.
func (c *Cursor) Peek(ahead int) byte { return c.r.Peek(ahead) }

// Advance moves the cursor forward by n bytes.
func (c *Cursor) Advance(n int) { c.r.Move(n) }

func isSVGWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// SkipWhitespace consumes zero or more SVG whitespace characters.
func (c *Cursor) SkipWhitespace() {
	for isSVGWhitespace(c.Peek(0)) {
		c.Advance(1)
	}
}

// SkipCommaWhitespace consumes whitespace, then at most one comma, then
// more whitespace -- the separator rule used between numbers in lists.
func (c *Cursor) SkipCommaWhitespace() {
	c.SkipWhitespace()
	if c.Peek(0) == ',' {
		c.Advance(1)
		c.SkipWhitespace()
	}
}

// Consume advances past b if it is the next byte and reports success.
func (c *Cursor) Consume(b byte) bool {
	if c.Peek(0) != b {
		return false
	}
	c.Advance(1)
	return true
}

// ConsumeString advances past s if it is next in the input (case-sensitive)
// and reports success.
func (c *Cursor) ConsumeString(s string) bool {
	for i := 0; i < len(s); i++ {
		if c.Peek(i) != s[i] {
			return false
		}
	}
	c.Advance(len(s))
	return true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
