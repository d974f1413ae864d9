// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otsvg

import (
	"github.com/vglyph/otsvg/internal/tree"
	"github.com/vglyph/otsvg/values"
)

// resolveLength reads id set directly on e (resolveLengthInherit walks
// ancestors when asked to), parses it as a length, and resolves it against
// the current viewport (vw, vh) on the given axis. def is used both when
// the attribute is absent and when present but unparseable.
func resolveLength(e *tree.Element, id tree.PropertyID, def values.Length, dpi float32, axis values.PercentAxis, vw, vh float32) float32 {
	return resolveLengthInherit(e, id, def, dpi, axis, vw, vh, false)
}

func resolveLengthInherit(e *tree.Element, id tree.PropertyID, def values.Length, dpi float32, axis values.PercentAxis, vw, vh float32, inherit bool) float32 {
	length := def
	if raw, ok := e.Search(id, inherit); ok {
		if l, ok := values.ParseLengthString(raw); ok {
			length = l
		}
	}
	return length.Resolve(dpi, axis, vw, vh)
}

// resolveOpacity reads id (0..1, defaulting to def), clamping the result
// to [0,1]. Percent forms map 0-100 to 0-1 by dividing the value by 100.
func resolveOpacity(e *tree.Element, id tree.PropertyID, def float32, inherit bool) float32 {
	raw, ok := e.Search(id, inherit)
	if !ok {
		return def
	}
	l, ok := values.ParseLengthString(raw)
	if !ok {
		return def
	}
	v := l.Value
	if l.Unit == values.UnitPercent {
		v = l.Value / 100
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}

// resolveNumber reads id as a bare number (no unit), defaulting to def.
func resolveNumber(e *tree.Element, id tree.PropertyID, def float32, inherit bool) float32 {
	raw, ok := e.Search(id, inherit)
	if !ok {
		return def
	}
	c := values.NewCursor(raw)
	n, ok := c.ParseNumber()
	if !ok {
		return def
	}
	return n
}
