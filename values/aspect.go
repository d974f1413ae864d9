// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import "github.com/vglyph/otsvg/geom"

// Align is the alignment component of a preserveAspectRatio value.
type Align uint8

const (
	AlignNone Align = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

// MeetOrSlice is the scaling component of a preserveAspectRatio value.
type MeetOrSlice uint8

const (
	Meet MeetOrSlice = iota
	Slice
)

// PreserveAspectRatio is the parsed form of a preserveAspectRatio attribute.
type PreserveAspectRatio struct {
	Align Align
	Slice MeetOrSlice
}

var alignKeywords = []struct {
	name  string
	align Align
}{
	{"xMinYMin", AlignXMinYMin},
	{"xMidYMin", AlignXMidYMin},
	{"xMaxYMin", AlignXMaxYMin},
	{"xMinYMid", AlignXMinYMid},
	{"xMidYMid", AlignXMidYMid},
	{"xMaxYMid", AlignXMaxYMid},
	{"xMinYMax", AlignXMinYMax},
	{"xMidYMax", AlignXMidYMax},
	{"xMaxYMax", AlignXMaxYMax},
	{"none", AlignNone},
}

// ParsePreserveAspectRatio scans "[defer] <align> [meet|slice]". The
// optional leading "defer" keyword has no effect here (it only matters for
// <image> referencing another SVG document) and is simply skipped.
func ParsePreserveAspectRatio(raw []byte) (PreserveAspectRatio, bool) {
	c := NewCursor(raw)
	c.SkipWhitespace()
	if c.ConsumeString("defer") {
		c.SkipWhitespace()
	}

	par := PreserveAspectRatio{Align: AlignXMidYMid, Slice: Meet}
	matched := false
	for _, kw := range alignKeywords {
		if c.ConsumeString(kw.name) {
			par.Align = kw.align
			matched = true
			break
		}
	}
	if !matched {
		return PreserveAspectRatio{}, false
	}
	c.SkipWhitespace()
	switch {
	case c.ConsumeString("meet"):
		par.Slice = Meet
	case c.ConsumeString("slice"):
		par.Slice = Slice
	}
	return par, true
}

// PositionMatrix computes the transform mapping viewBox (the source
// coordinate system) into a viewport of size viewportW x viewportH,
// honoring par's alignment and meet-or-slice rule.
func PositionMatrix(par PreserveAspectRatio, viewBox geom.Rect, viewportW, viewportH float32) geom.Matrix2 {
	if viewBox.IsEmpty() || viewportW <= 0 || viewportH <= 0 {
		return geom.Identity2()
	}

	sx := viewportW / viewBox.W
	sy := viewportH / viewBox.H

	if par.Align == AlignNone {
		return geom.Scale2D(sx, sy).Mul(geom.Translate2D(-viewBox.X*sx, -viewBox.Y*sy))
	}

	s := sx
	if (par.Slice == Meet && sy < sx) || (par.Slice == Slice && sy > sx) {
		s = sy
	}

	scaledW := viewBox.W * s
	scaledH := viewBox.H * s
	tx := -viewBox.X * s
	ty := -viewBox.Y * s

	switch par.Align {
	case AlignXMidYMin, AlignXMidYMid, AlignXMidYMax:
		tx += (viewportW - scaledW) / 2
	case AlignXMaxYMin, AlignXMaxYMid, AlignXMaxYMax:
		tx += viewportW - scaledW
	}
	switch par.Align {
	case AlignXMinYMid, AlignXMidYMid, AlignXMaxYMid:
		ty += (viewportH - scaledH) / 2
	case AlignXMinYMax, AlignXMidYMax, AlignXMaxYMax:
		ty += viewportH - scaledH
	}

	return geom.Scale2D(s, s).Mul(geom.Translate2D(tx, ty))
}

// PositionRect maps a rect from viewBox space into viewport space using
// the same positioning rule as PositionMatrix.
func PositionRect(par PreserveAspectRatio, viewBox geom.Rect, viewportW, viewportH float32) geom.Rect {
	m := PositionMatrix(par, viewBox, viewportW, viewportH)
	return m.MulRect(viewBox)
}
