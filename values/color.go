// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import "image/color"

// ParseColor scans #rgb, #rrggbb, rgb(r,g,b) (components integer or
// percent), the literal currentColor, or a named color. currentColor is
// reported via the isCurrentColor return so callers can substitute their
// current color; all other forms resolve directly to an RGBA.
func ParseColor(raw []byte) (rgba color.RGBA, isCurrentColor bool, ok bool) {
	c := NewCursor(raw)
	c.SkipWhitespace()

	if c.Peek(0) == '#' {
		c.Advance(1)
		start := c.Pos()
		hexLen := 0
		for isHexDigit(c.Peek(hexLen)) {
			hexLen++
		}
		hex := sliceFrom(raw, start, hexLen)
		switch len(hex) {
		case 3:
			return color.RGBA{
				R: dupNibble(hex[0]), G: dupNibble(hex[1]), B: dupNibble(hex[2]), A: 0xff,
			}, false, true
		case 6:
			return color.RGBA{
				R: hexByte(hex[0], hex[1]), G: hexByte(hex[2], hex[3]), B: hexByte(hex[4], hex[5]), A: 0xff,
			}, false, true
		default:
			return color.RGBA{}, false, false
		}
	}

	if c.ConsumeString("currentColor") {
		return color.RGBA{}, true, true
	}

	if matchFold(raw, "rgb(") {
		return parseRGBFunc(raw)
	}
	if matchFold(raw, "rgba(") {
		return parseRGBFunc(raw)
	}

	if rgba, ok := lookupNamedColor(trimASCII(raw)); ok {
		return rgba, false, true
	}
	return color.RGBA{}, false, false
}

func parseRGBFunc(raw []byte) (color.RGBA, bool, bool) {
	c := NewCursor(raw)
	for c.Peek(0) != '(' && c.Peek(0) != 0 {
		c.Advance(1)
	}
	if c.Peek(0) != '(' {
		return color.RGBA{}, false, false
	}
	c.Advance(1)

	comp := func() (byte, bool) {
		c.SkipCommaWhitespace()
		n, ok := c.ParseNumber()
		if !ok {
			return 0, false
		}
		if c.Peek(0) == '%' {
			c.Advance(1)
			n = n * 255 / 100
		}
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		return byte(n + 0.5), true
	}

	r, ok := comp()
	if !ok {
		return color.RGBA{}, false, false
	}
	g, ok := comp()
	if !ok {
		return color.RGBA{}, false, false
	}
	b, ok := comp()
	if !ok {
		return color.RGBA{}, false, false
	}
	a := byte(255)
	c.SkipCommaWhitespace()
	if c.Peek(0) != ')' {
		af, ok := c.ParseNumber()
		if ok {
			if c.Peek(0) == '%' {
				c.Advance(1)
				af /= 100
			}
			if af < 0 {
				af = 0
			}
			if af > 1 {
				af = 1
			}
			a = byte(af*255 + 0.5)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, false, true
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}

func hexByte(hi, lo byte) byte { return hexVal(hi)<<4 | hexVal(lo) }
func dupNibble(b byte) byte    { v := hexVal(b); return v<<4 | v }

func sliceFrom(raw []byte, start, n int) []byte {
	if start+n > len(raw) {
		n = len(raw) - start
	}
	if n < 0 {
		return nil
	}
	return raw[start : start+n]
}

func matchFold(raw []byte, prefix string) bool {
	trimmed := trimLeadingASCIIWhitespace(raw)
	if len(trimmed) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if toLowerASCII(trimmed[i]) != toLowerASCII(prefix[i]) {
			return false
		}
	}
	return true
}

func trimLeadingASCIIWhitespace(b []byte) []byte {
	i := 0
	for i < len(b) && isSVGWhitespace(b[i]) {
		i++
	}
	return b[i:]
}

func trimASCII(b []byte) []byte {
	b = trimLeadingASCIIWhitespace(b)
	j := len(b)
	for j > 0 && isSVGWhitespace(b[j-1]) {
		j--
	}
	return b[:j]
}
