// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otsvg

import (
	"context"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vglyph/otsvg/geom"
)

// fillCall and strokeCall record one FillPath/StrokePath invocation with
// enough detail to assert on in tests; pushCall/popCall record a group
// push or pop.
type fillCall struct {
	bbox   geom.Rect
	matrix geom.Matrix2
	rule   FillRule
	paint  ResolvedPaint
}

type groupCall struct {
	opacity float32
	blend   BlendMode
}

// recordingCanvas is a Canvas that appends every call to an ordered trace,
// in the spirit of otfsvg-dump.c's textual trace but kept in memory for
// assertions.
type recordingCanvas struct {
	NopCanvas
	trace   []string
	fills   []fillCall
	strokes []fillCall
	pushes  []groupCall
	pops    []groupCall
}

func (c *recordingCanvas) FillPath(path *geom.Path, matrix geom.Matrix2, rule FillRule, paint ResolvedPaint) error {
	c.trace = append(c.trace, "fill")
	c.fills = append(c.fills, fillCall{bbox: path.BoundingBox(), matrix: matrix, rule: rule, paint: paint})
	return nil
}

func (c *recordingCanvas) StrokePath(path *geom.Path, matrix geom.Matrix2, stroke StrokeData, paint ResolvedPaint) error {
	c.trace = append(c.trace, "stroke")
	c.strokes = append(c.strokes, fillCall{bbox: path.BoundingBox(), matrix: matrix, paint: paint})
	return nil
}

func (c *recordingCanvas) PushGroup(opacity float32, blend BlendMode) error {
	c.trace = append(c.trace, "push")
	c.pushes = append(c.pushes, groupCall{opacity: opacity, blend: blend})
	return nil
}

func (c *recordingCanvas) PopGroup(opacity float32, blend BlendMode) error {
	c.trace = append(c.trace, "pop")
	c.pops = append(c.pops, groupCall{opacity: opacity, blend: blend})
	return nil
}

func colorOf(r, g, b, a byte) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: a} }

// 1. Plain rect.
func TestRenderPlainRect(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(
		`<svg viewBox="0 0 10 10"><rect x="1" y="2" width="3" height="4" fill="#ff0000"/></svg>`)))

	canvas := &recordingCanvas{}
	require.NoError(t, doc.Render(context.Background(), canvas, nil, color.RGBA{}, ""))

	require.Len(t, canvas.fills, 1)
	f := canvas.fills[0]
	assert.Equal(t, geom.Rect{X: 1, Y: 2, W: 3, H: 4}, f.bbox)
	assert.Equal(t, geom.Identity2(), f.matrix)
	assert.Equal(t, FillRuleNonZero, f.rule)
	assert.Equal(t, ResolvedPaintSolid, f.paint.Kind)
	assert.Equal(t, colorOf(0xff, 0, 0, 0xff), f.paint.Color)

	r, err := doc.Rect("")
	require.NoError(t, err)
	assert.Equal(t, geom.Rect{X: 1, Y: 2, W: 3, H: 4}, r)
}

// 2. ViewBox scaling.
func TestRenderViewBoxScaling(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(
		`<svg width="200" height="100" viewBox="0 0 20 10">`+
			`<rect x="0" y="0" width="20" height="10" fill="black"/></svg>`)))

	canvas := &recordingCanvas{}
	require.NoError(t, doc.Render(context.Background(), canvas, nil, color.RGBA{}, ""))

	require.Len(t, canvas.fills, 1)
	f := canvas.fills[0]
	assert.Equal(t, geom.Scale2D(10, 10), f.matrix)
	assert.Equal(t, colorOf(0, 0, 0, 0xff), f.paint.Color)
}

// 3. Gradient inheritance via xlink:href.
func TestRenderGradientInheritance(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(`<svg viewBox="0 0 10 10">
		<defs>
			<linearGradient id="a">
				<stop offset="0" stop-color="red"/>
				<stop offset="1" stop-color="blue"/>
			</linearGradient>
			<linearGradient id="b" xlink:href="#a" x1="0" x2="1"/>
		</defs>
		<rect x="0" y="0" width="10" height="10" fill="url(#b)"/>
	</svg>`)))

	canvas := &recordingCanvas{}
	require.NoError(t, doc.Render(context.Background(), canvas, nil, color.RGBA{}, ""))

	require.Len(t, canvas.fills, 1)
	paint := canvas.fills[0].paint
	require.Equal(t, ResolvedPaintGradient, paint.Kind)
	grad := paint.Gradient
	require.Len(t, grad.Stops, 2)
	assert.Equal(t, colorOf(0xff, 0, 0, 0xff), grad.Stops[0].Color)
	assert.Equal(t, colorOf(0, 0, 0xff, 0xff), grad.Stops[1].Color)
	assert.InDelta(t, float32(0), grad.X1, 1e-4)
	assert.InDelta(t, float32(0), grad.Y1, 1e-4)
	assert.InDelta(t, float32(1), grad.X2, 1e-4)
	assert.InDelta(t, float32(0), grad.Y2, 1e-4)
}

// 4. Clip + opacity grouping.
func TestRenderClipAndOpacityGrouping(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(`<svg viewBox="0 0 10 10">
		<defs>
			<clipPath id="c"><circle cx="5" cy="5" r="4"/></clipPath>
		</defs>
		<g opacity="0.5" clip-path="url(#c)">
			<rect x="0" y="0" width="10" height="10" fill="black"/>
		</g>
	</svg>`)))

	canvas := &recordingCanvas{}
	require.NoError(t, doc.Render(context.Background(), canvas, nil, color.RGBA{}, ""))

	assert.Equal(t, []string{"push", "fill", "push", "fill", "pop", "pop"}, canvas.trace)
	require.Len(t, canvas.pushes, 2)
	require.Len(t, canvas.pops, 2)
	assert.Equal(t, groupCall{opacity: 0.5, blend: BlendSrcOver}, canvas.pushes[0])
	assert.Equal(t, groupCall{opacity: 1, blend: BlendDstIn}, canvas.pushes[1])
	assert.Equal(t, groupCall{opacity: 1, blend: BlendDstIn}, canvas.pops[0])
	assert.Equal(t, groupCall{opacity: 0.5, blend: BlendSrcOver}, canvas.pops[1])

	require.Len(t, canvas.fills, 2)
	assert.Equal(t, geom.Rect{X: 0, Y: 0, W: 10, H: 10}, canvas.fills[0].bbox)
	clipBBox := canvas.fills[1].bbox
	assert.InDelta(t, 1.0, clipBBox.X, 1e-3)
	assert.InDelta(t, 1.0, clipBBox.Y, 1e-3)
}

// 5. Use indirection.
func TestRenderUseIndirection(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(
		`<svg viewBox="0 0 20 20"><defs><rect id="r" x="0" y="0" width="1" height="1"/></defs>`+
			`<use xlink:href="#r" x="5" y="7"/></svg>`)))

	canvas := &recordingCanvas{}
	require.NoError(t, doc.Render(context.Background(), canvas, nil, color.RGBA{}, ""))

	require.Len(t, canvas.fills, 1)
	f := canvas.fills[0]
	assert.Equal(t, geom.Rect{X: 0, Y: 0, W: 1, H: 1}, f.bbox)
	assert.Equal(t, geom.Translate2D(5, 7), f.matrix)
}

// 6. Arc lowering through a <path>.
func TestRenderArcLowering(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(
		`<svg viewBox="0 0 10 10"><path d="M0,0 A10,10 0 0 1 10,10"/></svg>`)))

	canvas := &recordingCanvas{}
	require.NoError(t, doc.Render(context.Background(), canvas, nil, color.RGBA{}, ""))

	require.Len(t, canvas.fills, 1)
	bb := canvas.fills[0].bbox
	assert.GreaterOrEqual(t, bb.X, float32(-0.001))
	assert.GreaterOrEqual(t, bb.Y, float32(-0.001))
	assert.LessOrEqual(t, bb.X+bb.W, float32(10.001))
	assert.LessOrEqual(t, bb.Y+bb.H, float32(10.001))
}

func TestRenderPathWithoutMoveToFails(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(`<svg><path d="L1,1"/></svg>`)))

	canvas := &recordingCanvas{}
	err := doc.Render(context.Background(), canvas, nil, color.RGBA{}, "")
	assert.ErrorIs(t, err, ErrPathMustStartWithMoveTo)
}

func TestPushPopBalancedAcrossNestedClipAndOpacity(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(`<svg viewBox="0 0 10 10">
		<defs><clipPath id="c"><rect x="0" y="0" width="5" height="5"/></clipPath></defs>
		<g opacity="0.3"><g clip-path="url(#c)" opacity="0.7">
			<rect x="0" y="0" width="10" height="10" fill="black"/>
		</g></g>
	</svg>`)))

	canvas := &recordingCanvas{}
	require.NoError(t, doc.Render(context.Background(), canvas, nil, color.RGBA{}, ""))
	assert.Equal(t, len(canvas.pushes), len(canvas.pops))
}

func TestRectBeforeAndAfterRenderMatch(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(
		`<svg viewBox="0 0 10 10"><rect x="1" y="1" width="2" height="2" fill="green"/></svg>`)))

	before, err := doc.Rect("")
	require.NoError(t, err)

	require.NoError(t, doc.Render(context.Background(), &recordingCanvas{}, nil, color.RGBA{}, ""))

	after, err := doc.Rect("")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDisplayNoneSkipsSubtree(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(
		`<svg><g display="none"><rect x="0" y="0" width="5" height="5" fill="red"/></g></svg>`)))

	canvas := &recordingCanvas{}
	require.NoError(t, doc.Render(context.Background(), canvas, nil, color.RGBA{}, ""))
	assert.Empty(t, canvas.fills)
}

func TestVarPaletteLookupShortCircuitsFallback(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(
		`<svg><rect x="0" y="0" width="5" height="5" fill="var(--accent, blue)"/></svg>`)))

	palette := func(name string) (color.RGBA, bool) {
		if name == "accent" {
			return colorOf(0x10, 0x20, 0x30, 0xff), true
		}
		return color.RGBA{}, false
	}

	canvas := &recordingCanvas{}
	require.NoError(t, doc.Render(context.Background(), canvas, palette, color.RGBA{}, ""))
	require.Len(t, canvas.fills, 1)
	assert.Equal(t, colorOf(0x10, 0x20, 0x30, 0xff), canvas.fills[0].paint.Color)
}

func TestCurrentColorUsesRenderArgument(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(
		`<svg><rect x="0" y="0" width="5" height="5" fill="currentColor"/></svg>`)))

	canvas := &recordingCanvas{}
	cc := colorOf(0x11, 0x22, 0x33, 0xff)
	require.NoError(t, doc.Render(context.Background(), canvas, nil, cc, ""))
	require.Len(t, canvas.fills, 1)
	assert.Equal(t, cc, canvas.fills[0].paint.Color)
}

func TestRenderByIDTargetsSubtree(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(
		`<svg><rect id="other" x="0" y="0" width="1" height="1" fill="red"/>`+
			`<rect id="target" x="2" y="2" width="3" height="3" fill="blue"/></svg>`)))

	canvas := &recordingCanvas{}
	require.NoError(t, doc.Render(context.Background(), canvas, nil, color.RGBA{}, "target"))
	require.Len(t, canvas.fills, 1)
	assert.Equal(t, geom.Rect{X: 2, Y: 2, W: 3, H: 3}, canvas.fills[0].bbox)
}

func TestRenderUnknownIDReturnsErrElementNotFound(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(`<svg><rect x="0" y="0" width="1" height="1"/></svg>`)))

	_, err := doc.Rect("missing")
	assert.ErrorIs(t, err, ErrElementNotFound)
}

func TestRenderBeforeLoadReturnsErrNotLoaded(t *testing.T) {
	doc := NewDocument()
	_, err := doc.Rect("")
	assert.ErrorIs(t, err, ErrNotLoaded)
}
