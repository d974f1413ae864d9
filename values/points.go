// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import "github.com/vglyph/otsvg/geom"

// ParsePoints scans a <polyline>/<polygon> "points" attribute -- a list of
// x,y pairs -- and appends the resulting subpath to path. close selects
// whether the subpath is closed (polygon) or left open (polyline); the
// caller, not this function, decides that based on the element.
func ParsePoints(raw []byte, path *geom.Path, close bool) bool {
	c := NewCursor(raw)
	c.SkipWhitespace()

	n := 0
	for !c.Eof() {
		c.SkipCommaWhitespace()
		if c.Eof() {
			break
		}
		x, ok := c.ParseNumber()
		if !ok {
			break
		}
		c.SkipCommaWhitespace()
		y, ok := c.ParseNumber()
		if !ok {
			break
		}
		if n == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
		n++
		c.SkipWhitespace()
	}
	if n == 0 {
		return false
	}
	if close {
		path.Close()
	}
	return true
}
