// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import "github.com/chewxy/math32"

// ParseNumber scans a single SVG number: optional sign, integer part,
// optional fractional part, optional exponent. Per DESIGN.md Open
// Question resolution (a), an 'e'/'E' is only consumed as an exponent
// marker when immediately followed by a digit or a sign -- this is what
// keeps a trailing "em"/"ex" length unit from being swallowed into the
// number.
func (c *Cursor) ParseNumber() (float32, bool) {
	sign := float32(1)
	if b := c.Peek(0); b == '+' || b == '-' {
		if b == '-' {
			sign = -1
		}
		c.Advance(1)
	}

	sawDigits := false
	var mantissa float32
	for isDigit(c.Peek(0)) {
		mantissa = mantissa*10 + float32(c.Peek(0)-'0')
		c.Advance(1)
		sawDigits = true
	}
	if c.Peek(0) == '.' {
		c.Advance(1)
		frac := float32(1)
		for isDigit(c.Peek(0)) {
			frac /= 10
			mantissa += float32(c.Peek(0)-'0') * frac
			c.Advance(1)
			sawDigits = true
		}
	}
	if !sawDigits {
		return 0, false
	}
	value := sign * mantissa

	if b := c.Peek(0); b == 'e' || b == 'E' {
		next := c.Peek(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(c.Peek(2))) {
			c.Advance(1)
			expSign := float32(1)
			if s := c.Peek(0); s == '+' || s == '-' {
				if s == '-' {
					expSign = -1
				}
				c.Advance(1)
			}
			var exp float32
			for isDigit(c.Peek(0)) {
				exp = exp*10 + float32(c.Peek(0)-'0')
				c.Advance(1)
			}
			value *= math32.Pow(10, expSign*exp)
		}
	}
	return value, true
}
