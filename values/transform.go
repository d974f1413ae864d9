// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import (
	"github.com/chewxy/math32"
	"github.com/vglyph/otsvg/geom"
)

// ParseTransformList scans a sequence of
// {matrix|translate|scale|rotate|skewX|skewY}(args) entries separated by
// whitespace/commas. The result M satisfies p' = M1.M2...Mn.p for entries
// M1..Mn in the order they were written, so the last-listed transform
// acts on the point first.
func ParseTransformList(raw []byte) (geom.Matrix2, bool) {
	c := NewCursor(raw)
	c.SkipWhitespace()

	acc := geom.Identity2()
	any := false
	for !c.Eof() {
		m, ok := parseOneTransform(c)
		if !ok {
			break
		}
		acc = m.Mul(acc)
		any = true
		c.SkipCommaWhitespace()
	}
	return acc, any
}

func parseOneTransform(c *Cursor) (geom.Matrix2, bool) {
	kind := ""
	for _, name := range []string{"matrix", "translate", "scale", "rotate", "skewX", "skewY"} {
		if matchFold(c.remainder(), name) {
			kind = name
			break
		}
	}
	if kind == "" {
		return geom.Matrix2{}, false
	}
	c.Advance(len(kind))
	c.SkipWhitespace()
	if !c.Consume('(') {
		return geom.Matrix2{}, false
	}
	args := make([]float32, 0, 6)
	for {
		c.SkipCommaWhitespace()
		if c.Peek(0) == ')' {
			break
		}
		n, ok := c.ParseNumber()
		if !ok {
			return geom.Matrix2{}, false
		}
		args = append(args, n)
		c.SkipCommaWhitespace()
		if c.Peek(0) == ')' {
			break
		}
	}
	if !c.Consume(')') {
		return geom.Matrix2{}, false
	}

	switch kind {
	case "matrix":
		if len(args) != 6 {
			return geom.Matrix2{}, false
		}
		return geom.Matrix2{XX: args[0], YX: args[1], XY: args[2], YY: args[3], X0: args[4], Y0: args[5]}, true
	case "translate":
		switch len(args) {
		case 1:
			return geom.Translate2D(args[0], 0), true
		case 2:
			return geom.Translate2D(args[0], args[1]), true
		}
	case "scale":
		switch len(args) {
		case 1:
			return geom.Scale2D(args[0], args[0]), true
		case 2:
			return geom.Scale2D(args[0], args[1]), true
		}
	case "rotate":
		switch len(args) {
		case 1:
			return geom.Rotate2D(args[0] * math32.Pi / 180), true
		case 3:
			return geom.RotateAbout2D(args[0]*math32.Pi/180, args[1], args[2]), true
		}
	case "skewX":
		if len(args) == 1 {
			return geom.Shear2D(args[0]*math32.Pi/180, 0), true
		}
	case "skewY":
		if len(args) == 1 {
			return geom.Shear2D(0, args[0]*math32.Pi/180), true
		}
	}
	return geom.Matrix2{}, false
}
