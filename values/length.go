// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import "github.com/chewxy/math32"

// LengthUnit is the closed set of SVG length unit suffixes.
type LengthUnit uint8

const (
	UnitNumber LengthUnit = iota // no suffix: already in user units
	UnitPercent
	UnitPx
	UnitPt
	UnitPc
	UnitIn
	UnitCm
	UnitMm
	UnitEm
	UnitEx
)

// Length is a parsed SVG length: a number plus its unit.
type Length struct {
	Value float32
	Unit  LengthUnit
}

// PercentAxis selects which viewport dimension a percentage length resolves
// against.
type PercentAxis uint8

const (
	// AxisX resolves percent lengths against the viewport width.
	AxisX PercentAxis = iota
	// AxisY resolves percent lengths against the viewport height.
	AxisY
	// AxisOther resolves percent lengths against the viewport diagonal
	// divided by sqrt(2) (used for radii and other non-axis lengths).
	AxisOther
)

// Resolve converts l to user units given the rendering dpi and a percent
// basis (viewport width/height, used only when l.Unit == UnitPercent).
func (l Length) Resolve(dpi float32, axis PercentAxis, viewportW, viewportH float32) float32 {
	switch l.Unit {
	case UnitPercent:
		switch axis {
		case AxisX:
			return l.Value / 100 * viewportW
		case AxisY:
			return l.Value / 100 * viewportH
		default:
			diag := math32.Hypot(viewportW, viewportH)
			return l.Value / 100 * (diag / sqrt2)
		}
	case UnitPx, UnitNumber:
		return l.Value
	case UnitPt:
		return l.Value * dpi / 72
	case UnitPc:
		return l.Value * dpi / 6
	case UnitIn:
		return l.Value * dpi
	case UnitCm:
		return l.Value * dpi / 2.54
	case UnitMm:
		return l.Value * dpi / 25.4
	case UnitEm, UnitEx:
		// Font-relative units are out of scope (no text/font component);
		// treated as plain user units rather than rejected, so that a
		// stray "1em" on a non-text attribute degrades gracefully.
		return l.Value
	default:
		return l.Value
	}
}

const sqrt2 = 1.4142135623730951

// ParseLength scans a number followed by an optional unit suffix.
func (c *Cursor) ParseLength() (Length, bool) {
	n, ok := c.ParseNumber()
	if !ok {
		return Length{}, false
	}
	unit := UnitNumber
	switch {
	case c.Consume('%'):
		unit = UnitPercent
	case c.ConsumeString("px"):
		unit = UnitPx
	case c.ConsumeString("pt"):
		unit = UnitPt
	case c.ConsumeString("pc"):
		unit = UnitPc
	case c.ConsumeString("in"):
		unit = UnitIn
	case c.ConsumeString("cm"):
		unit = UnitCm
	case c.ConsumeString("mm"):
		unit = UnitMm
	case c.ConsumeString("em"):
		unit = UnitEm
	case c.ConsumeString("ex"):
		unit = UnitEx
	}
	return Length{Value: n, Unit: unit}, true
}

// ParseLengthString is a convenience wrapper for one-shot parses of a raw
// attribute value.
func ParseLengthString(raw []byte) (Length, bool) {
	c := NewCursor(raw)
	c.SkipWhitespace()
	l, ok := c.ParseLength()
	return l, ok
}
