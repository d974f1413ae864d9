// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import "github.com/vglyph/otsvg/geom"

// ParsePathData scans an SVG path "d" attribute and appends the resulting
// geometry to path. Unlike the other Parse* functions in this package,
// the destination is supplied by the caller rather than allocated here.
//
// A command letter, once seen, implicitly repeats for any further
// argument groups that follow it without a new letter -- this is part of
// the path grammar, not an error-recovery feature.
func ParsePathData(raw []byte, path *geom.Path) bool {
	c := NewCursor(raw)
	c.SkipWhitespace()

	var cx, cy float32     // current point
	var sx, sy float32     // start of current subpath
	var lastCmd byte       // the command letter last executed, 0 if none
	var lastCX, lastCY float32 // reflection control point for S/s and T/t
	haveCtrl := false

	started := false

	num := func() (float32, bool) {
		c.SkipCommaWhitespace()
		return c.ParseNumber()
	}
	flag := func() (bool, bool) {
		c.SkipCommaWhitespace()
		b := c.Peek(0)
		if b != '0' && b != '1' {
			return false, false
		}
		c.Advance(1)
		return b == '1', true
	}

	for {
		c.SkipWhitespace()
		if c.Eof() {
			break
		}
		b := c.Peek(0)
		isCmd := isAlpha(b)
		if !isCmd && lastCmd == 0 {
			return started // garbage before any command: stop, keep what we have
		}
		cmd := lastCmd
		if isCmd {
			cmd = b
			c.Advance(1)
			// "Z"/"z" never repeats implicitly.
			if cmd == 'Z' || cmd == 'z' {
				lastCmd = 0
			} else {
				lastCmd = cmd
			}
		}

		switch cmd {
		case 'M', 'm':
			x, ok := num()
			if !ok {
				return started
			}
			y, ok := num()
			if !ok {
				return started
			}
			if cmd == 'm' && started {
				x += cx
				y += cy
			}
			path.MoveTo(x, y)
			cx, cy = x, y
			sx, sy = x, y
			started = true
			haveCtrl = false
			// Subsequent bare coordinate pairs after an initial moveto are
			// treated as an implicit lineto, per the path grammar.
			if cmd == 'm' {
				lastCmd = 'l'
			} else {
				lastCmd = 'L'
			}

		case 'L', 'l':
			x, ok := num()
			if !ok {
				return started
			}
			y, ok := num()
			if !ok {
				return started
			}
			if cmd == 'l' {
				x += cx
				y += cy
			}
			path.LineTo(x, y)
			cx, cy = x, y
			haveCtrl = false

		case 'H', 'h':
			x, ok := num()
			if !ok {
				return started
			}
			if cmd == 'h' {
				x += cx
			}
			path.LineTo(x, cy)
			cx = x
			haveCtrl = false

		case 'V', 'v':
			y, ok := num()
			if !ok {
				return started
			}
			if cmd == 'v' {
				y += cy
			}
			path.LineTo(cx, y)
			cy = y
			haveCtrl = false

		case 'C', 'c':
			x1, ok := num()
			if !ok {
				return started
			}
			y1, ok := num()
			if !ok {
				return started
			}
			x2, ok := num()
			if !ok {
				return started
			}
			y2, ok := num()
			if !ok {
				return started
			}
			x, ok := num()
			if !ok {
				return started
			}
			y, ok := num()
			if !ok {
				return started
			}
			if cmd == 'c' {
				x1 += cx
				y1 += cy
				x2 += cx
				y2 += cy
				x += cx
				y += cy
			}
			path.CubicTo(x1, y1, x2, y2, x, y)
			cx, cy = x, y
			lastCX, lastCY = x2, y2
			haveCtrl = true

		case 'S', 's':
			x2, ok := num()
			if !ok {
				return started
			}
			y2, ok := num()
			if !ok {
				return started
			}
			x, ok := num()
			if !ok {
				return started
			}
			y, ok := num()
			if !ok {
				return started
			}
			if cmd == 's' {
				x2 += cx
				y2 += cy
				x += cx
				y += cy
			}
			x1, y1 := cx, cy
			if haveCtrl {
				x1 = 2*cx - lastCX
				y1 = 2*cy - lastCY
			}
			path.CubicTo(x1, y1, x2, y2, x, y)
			cx, cy = x, y
			lastCX, lastCY = x2, y2
			haveCtrl = true

		case 'Q', 'q':
			x1, ok := num()
			if !ok {
				return started
			}
			y1, ok := num()
			if !ok {
				return started
			}
			x, ok := num()
			if !ok {
				return started
			}
			y, ok := num()
			if !ok {
				return started
			}
			if cmd == 'q' {
				x1 += cx
				y1 += cy
				x += cx
				y += cy
			}
			path.QuadTo(x1, y1, x, y)
			cx, cy = x, y
			lastCX, lastCY = x1, y1
			haveCtrl = true

		case 'T', 't':
			x, ok := num()
			if !ok {
				return started
			}
			y, ok := num()
			if !ok {
				return started
			}
			if cmd == 't' {
				x += cx
				y += cy
			}
			x1, y1 := cx, cy
			if haveCtrl {
				x1 = 2*cx - lastCX
				y1 = 2*cy - lastCY
			}
			path.QuadTo(x1, y1, x, y)
			cx, cy = x, y
			lastCX, lastCY = x1, y1
			haveCtrl = true

		case 'A', 'a':
			rx, ok := num()
			if !ok {
				return started
			}
			ry, ok := num()
			if !ok {
				return started
			}
			rot, ok := num()
			if !ok {
				return started
			}
			large, ok := flag()
			if !ok {
				return started
			}
			sweep, ok := flag()
			if !ok {
				return started
			}
			x, ok := num()
			if !ok {
				return started
			}
			y, ok := num()
			if !ok {
				return started
			}
			if cmd == 'a' {
				x += cx
				y += cy
			}
			path.ArcTo(rx, ry, rot, large, sweep, x, y)
			cx, cy = x, y
			haveCtrl = false

		case 'Z', 'z':
			path.Close()
			cx, cy = sx, sy
			haveCtrl = false

		default:
			return started
		}
	}
	return started
}
