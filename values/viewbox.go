// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import "github.com/vglyph/otsvg/geom"

// ParseViewBox scans a "min-x min-y width height" viewBox attribute value.
// A negative or zero width/height is rejected via the ok return rather
// than a silently-empty Rect; callers then treat the element as having no
// viewBox.
func ParseViewBox(raw []byte) (geom.Rect, bool) {
	c := NewCursor(raw)
	c.SkipWhitespace()

	minX, ok := c.ParseNumber()
	if !ok {
		return geom.Rect{}, false
	}
	c.SkipCommaWhitespace()
	minY, ok := c.ParseNumber()
	if !ok {
		return geom.Rect{}, false
	}
	c.SkipCommaWhitespace()
	w, ok := c.ParseNumber()
	if !ok {
		return geom.Rect{}, false
	}
	c.SkipCommaWhitespace()
	h, ok := c.ParseNumber()
	if !ok {
		return geom.Rect{}, false
	}
	if w <= 0 || h <= 0 {
		return geom.Rect{}, false
	}
	return geom.Rect{X: minX, Y: minY, W: w, H: h}, true
}
