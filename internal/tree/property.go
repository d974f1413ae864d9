// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// PropertyID identifies a presentation attribute or geometric attribute
// recognized on some element. Like Tag, the set is closed: an attribute
// name not in propertyNames is simply dropped by the scanner.
type PropertyID uint8

const (
	PropertyUnknown PropertyID = iota
	PropertyClipPath
	PropertyClipRule
	PropertyClipPathUnits
	PropertyColor
	PropertyCX
	PropertyCY
	PropertyD
	PropertyDisplay
	PropertyFill
	PropertyFillOpacity
	PropertyFillRule
	PropertyFX
	PropertyFY
	PropertyGradientTransform
	PropertyGradientUnits
	PropertyHeight
	PropertyIDAttr
	PropertyOffset
	PropertyOpacity
	PropertyOverflow
	PropertyPoints
	PropertyPreserveAspectRatio
	PropertyR
	PropertyRX
	PropertyRY
	PropertySolidColor
	PropertySolidOpacity
	PropertySpreadMethod
	PropertyStopColor
	PropertyStopOpacity
	PropertyStroke
	PropertyStrokeDasharray
	PropertyStrokeDashoffset
	PropertyStrokeLinecap
	PropertyStrokeLinejoin
	PropertyStrokeMiterlimit
	PropertyStrokeOpacity
	PropertyStrokeWidth
	PropertyTransform
	PropertyViewBox
	PropertyVisibility
	PropertyWidth
	PropertyX
	PropertyX1
	PropertyX2
	PropertyXlinkHref
	PropertyY
	PropertyY1
	PropertyY2
)

var propertyNames = map[string]PropertyID{
	"clip-path":           PropertyClipPath,
	"clip-rule":           PropertyClipRule,
	"clipPathUnits":       PropertyClipPathUnits,
	"color":               PropertyColor,
	"cx":                  PropertyCX,
	"cy":                  PropertyCY,
	"d":                   PropertyD,
	"display":             PropertyDisplay,
	"fill":                PropertyFill,
	"fill-opacity":        PropertyFillOpacity,
	"fill-rule":           PropertyFillRule,
	"fx":                  PropertyFX,
	"fy":                  PropertyFY,
	"gradientTransform":   PropertyGradientTransform,
	"gradientUnits":       PropertyGradientUnits,
	"height":              PropertyHeight,
	"id":                  PropertyIDAttr,
	"offset":              PropertyOffset,
	"opacity":             PropertyOpacity,
	"overflow":            PropertyOverflow,
	"points":              PropertyPoints,
	"preserveAspectRatio": PropertyPreserveAspectRatio,
	"r":                   PropertyR,
	"rx":                  PropertyRX,
	"ry":                  PropertyRY,
	"solid-color":         PropertySolidColor,
	"solid-opacity":       PropertySolidOpacity,
	"spreadMethod":        PropertySpreadMethod,
	"stop-color":          PropertyStopColor,
	"stop-opacity":        PropertyStopOpacity,
	"stroke":              PropertyStroke,
	"stroke-dasharray":    PropertyStrokeDasharray,
	"stroke-dashoffset":   PropertyStrokeDashoffset,
	"stroke-linecap":      PropertyStrokeLinecap,
	"stroke-linejoin":     PropertyStrokeLinejoin,
	"stroke-miterlimit":   PropertyStrokeMiterlimit,
	"stroke-opacity":      PropertyStrokeOpacity,
	"stroke-width":        PropertyStrokeWidth,
	"transform":           PropertyTransform,
	"viewBox":             PropertyViewBox,
	"visibility":          PropertyVisibility,
	"width":               PropertyWidth,
	"x":                   PropertyX,
	"x1":                  PropertyX1,
	"x2":                  PropertyX2,
	"xlink:href":          PropertyXlinkHref,
	"y":                   PropertyY,
	"y1":                  PropertyY1,
	"y2":                  PropertyY2,
}

// PropertyFromName resolves an attribute name to its PropertyID, or
// PropertyUnknown if it isn't one this renderer recognizes.
func PropertyFromName(name []byte) PropertyID {
	if id, ok := propertyNames[string(name)]; ok {
		return id
	}
	return PropertyUnknown
}

// Property is one parsed attribute: its id and the raw text of its value,
// as a slice into the source document. Properties on an element form a
// singly linked, head-inserted list.
type Property struct {
	ID    PropertyID
	Value []byte
	Next  *Property
}
