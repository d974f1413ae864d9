// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xmlscan

import (
	"errors"

	"github.com/tdewolff/parse/v2/buffer"
	"github.com/vglyph/otsvg/internal/tree"
)

// ErrNoRoot is returned when the document has no top-level <svg> element.
var ErrNoRoot = errors.New("xmlscan: no root <svg> element")

// ErrMalformed is returned for any input that doesn't match the grammar
// this scanner accepts.
var ErrMalformed = errors.New("xmlscan: malformed document")

// ErrUnbalancedTags is returned when EOF is reached with open elements
// still unclosed. A closing tag's name is not checked against the
// element it closes (matching the reference parser), but the open/close
// count itself must balance.
var ErrUnbalancedTags = errors.New("xmlscan: unbalanced element stack")

type cursor struct {
	r   *buffer.Reader
	src []byte
}

func newCursor(src []byte) *cursor { return &cursor{r: buffer.NewReader(src), src: src} }

func (c *cursor) pos() int          { return c.r.Pos() }
func (c *cursor) eof() bool         { return c.r.Peek(0) == 0 && c.pos() >= len(c.src) }
func (c *cursor) peek(ahead int) byte { return c.r.Peek(ahead) }
func (c *cursor) advance(n int)     { c.r.Move(n) }

func isWS(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isStartNameChar(b byte) bool {
	return isAlpha(b) || b == '_' || b == ':'
}
func isNameChar(b byte) bool {
	return isStartNameChar(b) || isDigit(b) || b == '-' || b == '.'
}

func (c *cursor) skipWS() {
	for isWS(c.peek(0)) {
		c.advance(1)
	}
}

// consumeString advances past s if it matches at the current position.
func (c *cursor) consumeString(s string) bool {
	for i := 0; i < len(s); i++ {
		if c.peek(i) != s[i] {
			return false
		}
	}
	c.advance(len(s))
	return true
}

// findString scans forward for s, leaving the cursor positioned right
// after it. Returns false (cursor unmoved) if s never appears.
func (c *cursor) findString(s string) bool {
	start := c.pos()
	for !c.eof() {
		if c.consumeString(s) {
			return true
		}
		c.advance(1)
	}
	c.r.Move(start - c.pos())
	return false
}

// scanName consumes a name token ([start-name-char][name-char]*) and
// returns it, or nil if the cursor isn't on a valid name start.
func (c *cursor) scanName() []byte {
	if !isStartNameChar(c.peek(0)) {
		return nil
	}
	start := c.pos()
	c.advance(1)
	for isNameChar(c.peek(0)) {
		c.advance(1)
	}
	return c.src[start:c.pos()]
}

// Parse scans src as the restricted XML subset this renderer supports and
// builds its element tree into doc, which must already be cleared (see
// tree.Document.Clear). Unknown elements are skipped whole, including
// their children; a malformed document leaves doc cleared and returns a
// non-nil error.
func Parse(src []byte, doc *tree.Document) error {
	c := newCursor(src)

	var current *tree.Element
	ignoring := 0
	openDepth := 0

	for !c.eof() {
		for !c.eof() && c.peek(0) != '<' {
			c.advance(1)
		}
		if c.eof() {
			break
		}
		c.advance(1)

		switch {
		case c.peek(0) == '/':
			c.advance(1)
			if c.scanName() == nil {
				return fail(doc, ErrMalformed)
			}
			c.skipWS()
			if c.peek(0) != '>' {
				return fail(doc, ErrMalformed)
			}
			c.advance(1)
			if ignoring > 0 {
				ignoring--
			} else if current != nil && current.Parent != nil {
				current = current.Parent
				openDepth--
			} else if current != nil {
				current = nil
				openDepth--
			}

		case c.peek(0) == '?':
			c.advance(1)
			if !c.consumeString("xml") {
				return fail(doc, ErrMalformed)
			}
			c.skipWS()
			if err := skipAttributes(c); err != nil {
				return fail(doc, err)
			}
			if !c.consumeString("?>") {
				return fail(doc, ErrMalformed)
			}

		case c.peek(0) == '!':
			c.advance(1)
			if err := scanMarkupDecl(c); err != nil {
				return fail(doc, err)
			}

		default:
			name := c.scanName()
			if name == nil {
				return fail(doc, ErrMalformed)
			}

			var elem *tree.Element
			if ignoring > 0 {
				ignoring++
			} else {
				tag := tree.TagFromName(name)
				if tag == tree.TagUnknown {
					ignoring = 1
				} else {
					if doc.Root != nil && current == nil {
						return fail(doc, ErrMalformed)
					}
					elem = doc.Arena.NewElement()
					elem.Tag = tag
					if doc.Root == nil {
						if tag != tree.TagSVG {
							return fail(doc, ErrNoRoot)
						}
						doc.Root = elem
					} else {
						current.AppendChild(elem)
					}
				}
			}

			c.skipWS()
			if err := parseAttributes(c, doc, elem); err != nil {
				return fail(doc, err)
			}

			switch {
			case c.peek(0) == '>':
				if elem != nil {
					current = elem
					openDepth++
				}
				c.advance(1)
			case c.peek(0) == '/':
				c.advance(1)
				if c.peek(0) != '>' {
					return fail(doc, ErrMalformed)
				}
				if ignoring > 0 {
					ignoring--
				}
				c.advance(1)
			default:
				return fail(doc, ErrMalformed)
			}
		}
	}

	if doc.Root == nil {
		return fail(doc, ErrNoRoot)
	}
	if ignoring != 0 {
		return fail(doc, ErrMalformed)
	}
	if openDepth != 0 {
		return fail(doc, ErrUnbalancedTags)
	}
	return nil
}

func fail(doc *tree.Document, err error) error {
	doc.Clear()
	return err
}

// scanMarkupDecl consumes a comment, CDATA section, or DOCTYPE following
// "<!", leaving the cursor past it.
func scanMarkupDecl(c *cursor) error {
	if c.consumeString("--") {
		if !c.findString("-->") {
			return ErrMalformed
		}
		return nil
	}
	if c.consumeString("[CDATA[") {
		if !c.findString("]]>") {
			return ErrMalformed
		}
		return nil
	}
	if c.consumeString("DOCTYPE") {
		for !c.eof() && c.peek(0) != '>' {
			if c.peek(0) == '[' {
				c.advance(1)
				depth := 1
				for !c.eof() && depth > 0 {
					switch c.peek(0) {
					case '[':
						depth++
					case ']':
						depth--
					}
					c.advance(1)
				}
			} else {
				c.advance(1)
			}
		}
		if c.peek(0) != '>' {
			return ErrMalformed
		}
		c.advance(1)
		return nil
	}
	return ErrMalformed
}

// parseAttributes scans name="value" pairs up to (not including) the
// tag's closing '>' or "/>". If elem is non-nil, recognized attributes
// are attached to it; an "id" attribute is instead recorded in the
// document's id index. elem is nil for the <?xml ...?> prolog and for
// elements inside a skipped (unknown) subtree.
func parseAttributes(c *cursor, doc *tree.Document, elem *tree.Element) error {
	for isStartNameChar(c.peek(0)) {
		name := c.scanName()
		id := tree.PropertyFromName(name)

		c.skipWS()
		if c.peek(0) != '=' {
			return ErrMalformed
		}
		c.advance(1)
		c.skipWS()

		quote := c.peek(0)
		if quote != '"' && quote != '\'' {
			return ErrMalformed
		}
		c.advance(1)
		valStart := c.pos()
		for !c.eof() && c.peek(0) != quote {
			c.advance(1)
		}
		if c.peek(0) != quote {
			return ErrMalformed
		}
		value := c.src[valStart:c.pos()]
		c.advance(1)

		if id != tree.PropertyUnknown && elem != nil {
			if id == tree.PropertyIDAttr {
				doc.IDs.Put(value, elem)
			} else {
				prop := doc.Arena.NewProperty()
				prop.ID = id
				prop.Value = value
				elem.AddProperty(prop)
			}
		}

		c.skipWS()
	}
	return nil
}

// skipAttributes consumes attribute syntax without attaching anything,
// used for the <?xml ...?> prolog.
func skipAttributes(c *cursor) error {
	return parseAttributes(c, nil, nil)
}
