// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// Tag identifies an element's kind. The set is closed: any element name
// not in tagNames resolves to TagUnknown, and the scanner skips its whole
// subtree rather than adding it to the tree.
type Tag uint8

const (
	TagUnknown Tag = iota
	TagCircle
	TagClipPath
	TagDefs
	TagEllipse
	TagG
	TagLine
	TagLinearGradient
	TagPath
	TagPolygon
	TagPolyline
	TagRadialGradient
	TagRect
	TagSolidColor
	TagStop
	TagSVG
	TagUse
)

var tagNames = map[string]Tag{
	"circle":         TagCircle,
	"clipPath":       TagClipPath,
	"defs":           TagDefs,
	"ellipse":        TagEllipse,
	"g":              TagG,
	"line":           TagLine,
	"linearGradient": TagLinearGradient,
	"path":           TagPath,
	"polygon":        TagPolygon,
	"polyline":       TagPolyline,
	"radialGradient": TagRadialGradient,
	"rect":           TagRect,
	"solidColor":     TagSolidColor,
	"stop":           TagStop,
	"svg":            TagSVG,
	"use":            TagUse,
}

// TagFromName resolves an element name to its Tag, or TagUnknown if the
// name isn't one this renderer understands.
func TagFromName(name []byte) Tag {
	if t, ok := tagNames[string(name)]; ok {
		return t
	}
	return TagUnknown
}
