// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otsvg

import (
	"image/color"

	"github.com/vglyph/otsvg/geom"
	"github.com/vglyph/otsvg/values"
)

// FillRule selects the winding rule used to fill a path. It is the same
// closed set values.ParseFillRule scans from fill-rule/clip-rule, reused
// here rather than redeclared so the renderer and the Canvas boundary
// agree on one set of constants.
type FillRule = values.FillRule

const (
	FillRuleNonZero = values.FillRuleNonZero
	FillRuleEvenOdd = values.FillRuleEvenOdd
)

// BlendMode selects how a pushed compositing group combines with what's
// beneath it.
type BlendMode uint8

const (
	// BlendSrcOver is standard alpha-blended compositing.
	BlendSrcOver BlendMode = iota
	// BlendDstIn multiplies the destination's alpha by the group's alpha
	// -- used to apply a clip-path mask.
	BlendDstIn
)

// GradientKind distinguishes a ResolvedGradient's geometry.
type GradientKind uint8

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

// GradientStop is one color stop of a resolved gradient, in definition
// order with Offset clamped to [0,1] and forced non-decreasing.
type GradientStop struct {
	Offset float32
	Color  color.RGBA
}

// ResolvedGradient is the fully resolved geometry and stop list for a
// linear or radial gradient paint, in the coordinate space selected by
// its gradientUnits (the Matrix already encodes the objectBoundingBox
// mapping when applicable).
type ResolvedGradient struct {
	Kind   GradientKind
	Matrix geom.Matrix2
	Spread values.SpreadMethod
	Stops  []GradientStop

	// Linear-only.
	X1, Y1, X2, Y2 float32

	// Radial-only.
	CX, CY, R, FX, FY float32
}

// PaintKind distinguishes a ResolvedPaint's payload.
type PaintKind uint8

const (
	ResolvedPaintNone PaintKind = iota
	ResolvedPaintSolid
	ResolvedPaintGradient
)

// ResolvedPaint is a fill or stroke paint after every url()/var()/
// currentColor/opacity resolution step has run; Canvas implementations
// never see an unresolved values.PaintValue.
type ResolvedPaint struct {
	Kind     PaintKind
	Color    color.RGBA
	Gradient ResolvedGradient
}

// StrokeData carries every property needed to stroke a path.
type StrokeData struct {
	LineCap      values.LineCap
	LineJoin     values.LineJoin
	Width        float32
	MiterLimit   float32
	DashOffset   float32
	DashArray    []float32
}

// Image is an opaque handle to a decoded raster image, returned from
// Canvas.DecodeImage and passed back to Canvas.DrawImage. UserData is
// private to the Canvas implementation; the renderer never inspects it.
type Image struct {
	UserData any
	Width    int
	Height   int
}

// Canvas is the rendering backend a Document draws onto. It is a
// capability interface: embed NopCanvas to get no-op defaults for
// methods you don't need (for example, a Canvas that only measures
// bounding boxes never needs DecodeImage/DrawImage).
//
// A non-nil error from any method aborts the in-progress Render/Rect
// call; every group already pushed before the failure is still popped on
// the way out, so push/pop stays balanced even on early abort.
type Canvas interface {
	FillPath(path *geom.Path, matrix geom.Matrix2, rule FillRule, paint ResolvedPaint) error
	StrokePath(path *geom.Path, matrix geom.Matrix2, stroke StrokeData, paint ResolvedPaint) error
	PushGroup(opacity float32, blend BlendMode) error
	PopGroup(opacity float32, blend BlendMode) error
	DecodeImage(href []byte) (Image, error)
	DrawImage(img Image, matrix geom.Matrix2, clip geom.Rect, opacity float32) error
}

// NopCanvas implements Canvas with every method a no-op returning a nil
// error (or a zero Image, nil for DecodeImage). Embed it in a Canvas
// implementation that only cares about a subset of the calls.
type NopCanvas struct{}

func (NopCanvas) FillPath(*geom.Path, geom.Matrix2, FillRule, ResolvedPaint) error   { return nil }
func (NopCanvas) StrokePath(*geom.Path, geom.Matrix2, StrokeData, ResolvedPaint) error { return nil }
func (NopCanvas) PushGroup(float32, BlendMode) error                                 { return nil }
func (NopCanvas) PopGroup(float32, BlendMode) error                                  { return nil }
func (NopCanvas) DecodeImage([]byte) (Image, error)                                  { return Image{}, nil }
func (NopCanvas) DrawImage(Image, geom.Matrix2, geom.Rect, float32) error            { return nil }

// PaletteFunc resolves a var(--name) paint reference to a color; ok is
// false on a miss, which falls back to the paint's fallback color if any.
type PaletteFunc func(name string) (color.RGBA, bool)
