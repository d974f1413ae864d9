// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import "image/color"

// PaintKind is the closed set of paint value forms. Modeled as a tagged
// sum rather than an interface with multiple concrete implementations,
// per SPEC_FULL.md Design Notes (polymorphism).
type PaintKind uint8

const (
	PaintNone PaintKind = iota
	PaintColor
	PaintCurrentColor
	PaintURL
	PaintVar
)

// PaintValue is the parsed form of a fill/stroke/stop-color/solid-color
// attribute.
type PaintValue struct {
	Kind PaintKind

	Color color.RGBA // valid when Kind == PaintColor

	RefID string // valid when Kind == PaintURL: the "#id" target, without '#'

	VarName string // valid when Kind == PaintVar

	// HasFallback/Fallback apply to both PaintURL ("url(#id) color") and
	// PaintVar ("var(--name, color)").
	HasFallback bool
	Fallback    color.RGBA
}

// ParsePaint scans a paint value: none, url(#id) [fallback], var(--name[,
// fallback]), currentColor, or a bare color.
func ParsePaint(raw []byte) (PaintValue, bool) {
	c := NewCursor(raw)
	c.SkipWhitespace()

	if c.ConsumeString("none") {
		return PaintValue{Kind: PaintNone}, true
	}
	if c.ConsumeString("url(") {
		return parseURLPaint(c)
	}
	if c.ConsumeString("var(") {
		return parseVarPaint(c)
	}
	if c.ConsumeString("currentColor") {
		return PaintValue{Kind: PaintCurrentColor}, true
	}

	rest := raw[c.Pos():]
	col, isCurrent, ok := ParseColor(rest)
	if !ok {
		return PaintValue{}, false
	}
	if isCurrent {
		return PaintValue{Kind: PaintCurrentColor}, true
	}
	return PaintValue{Kind: PaintColor, Color: col}, true
}

func parseURLPaint(c *Cursor) (PaintValue, bool) {
	c.SkipWhitespace()
	if !c.Consume('#') {
		return PaintValue{}, false
	}
	idStart := c.Pos()
	idLen := 0
	for b := c.Peek(0); b != ')' && b != 0 && !isSVGWhitespace(b); b = c.Peek(0) {
		idLen++
		c.Advance(1)
	}
	id := string(sliceFrom(c.raw(), idStart, idLen))
	c.SkipWhitespace()
	if !c.Consume(')') {
		return PaintValue{RefID: id, Kind: PaintURL}, true
	}
	pv := PaintValue{Kind: PaintURL, RefID: id}
	c.SkipWhitespace()
	if !c.Eof() {
		rest := c.remainder()
		col, _, ok := ParseColor(rest)
		if ok {
			pv.HasFallback = true
			pv.Fallback = col
		}
	}
	return pv, true
}

func parseVarPaint(c *Cursor) (PaintValue, bool) {
	c.SkipWhitespace()
	if !c.ConsumeString("--") {
		return PaintValue{}, false
	}
	nameStart := c.Pos()
	nameLen := 0
	for b := c.Peek(0); b != ')' && b != ',' && b != 0 && !isSVGWhitespace(b); b = c.Peek(0) {
		nameLen++
		c.Advance(1)
	}
	name := string(sliceFrom(c.raw(), nameStart, nameLen))
	pv := PaintValue{Kind: PaintVar, VarName: name}
	c.SkipCommaWhitespace()
	if c.Peek(0) != ')' && !c.Eof() {
		rest := c.remainderUntil(')')
		col, _, ok := ParseColor(rest)
		if ok {
			pv.HasFallback = true
			pv.Fallback = col
		}
	}
	return pv, true
}
