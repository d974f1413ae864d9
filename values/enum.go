// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

// FillRule is the closed set of values for the fill-rule and clip-rule
// properties.
type FillRule uint8

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// ParseFillRule scans "nonzero" or "evenodd".
func ParseFillRule(raw []byte) (FillRule, bool) {
	switch trimFold(raw) {
	case "nonzero":
		return FillRuleNonZero, true
	case "evenodd":
		return FillRuleEvenOdd, true
	}
	return FillRuleNonZero, false
}

// LineCap is the closed set of values for stroke-linecap.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// ParseLineCap scans "butt", "round", or "square".
func ParseLineCap(raw []byte) (LineCap, bool) {
	switch trimFold(raw) {
	case "butt":
		return CapButt, true
	case "round":
		return CapRound, true
	case "square":
		return CapSquare, true
	}
	return CapButt, false
}

// LineJoin is the closed set of values for stroke-linejoin.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// ParseLineJoin scans "miter", "round", or "bevel".
func ParseLineJoin(raw []byte) (LineJoin, bool) {
	switch trimFold(raw) {
	case "miter":
		return JoinMiter, true
	case "round":
		return JoinRound, true
	case "bevel":
		return JoinBevel, true
	}
	return JoinMiter, false
}

// Units is the closed set of values for gradientUnits and clipPathUnits.
type Units uint8

const (
	UnitsObjectBoundingBox Units = iota
	UnitsUserSpaceOnUse
)

// ParseUnits scans "objectBoundingBox" or "userSpaceOnUse".
func ParseUnits(raw []byte) (Units, bool) {
	switch trimFold(raw) {
	case "objectboundingbox":
		return UnitsObjectBoundingBox, true
	case "userspaceonuse":
		return UnitsUserSpaceOnUse, true
	}
	return UnitsObjectBoundingBox, false
}

// SpreadMethod is the closed set of values for a gradient's spreadMethod.
type SpreadMethod uint8

const (
	SpreadPad SpreadMethod = iota
	SpreadReflect
	SpreadRepeat
)

// ParseSpreadMethod scans "pad", "reflect", or "repeat".
func ParseSpreadMethod(raw []byte) (SpreadMethod, bool) {
	switch trimFold(raw) {
	case "pad":
		return SpreadPad, true
	case "reflect":
		return SpreadReflect, true
	case "repeat":
		return SpreadRepeat, true
	}
	return SpreadPad, false
}

// Display is the closed set of values for the display property that this
// renderer distinguishes: every value other than "none" behaves the same
// (an element participates in rendering), so only the none/not-none
// distinction is represented.
type Display uint8

const (
	DisplayInline Display = iota
	DisplayNone
)

// ParseDisplay scans the display property.
func ParseDisplay(raw []byte) (Display, bool) {
	if trimFold(raw) == "none" {
		return DisplayNone, true
	}
	return DisplayInline, true
}

// Visibility is the closed set of values for the visibility property.
type Visibility uint8

const (
	VisibilityVisible Visibility = iota
	VisibilityHidden
)

// ParseVisibility scans "visible", "hidden", or "collapse" (collapse is
// treated the same as hidden, matching every other SVG renderer that
// doesn't implement the table/row-group-only display model collapse was
// designed for).
func ParseVisibility(raw []byte) (Visibility, bool) {
	switch trimFold(raw) {
	case "visible":
		return VisibilityVisible, true
	case "hidden", "collapse":
		return VisibilityHidden, true
	}
	return VisibilityVisible, false
}

func trimFold(raw []byte) string {
	trimmed := trimASCII(raw)
	out := make([]byte, len(trimmed))
	for i, b := range trimmed {
		out[i] = toLowerASCII(b)
	}
	return string(out)
}
