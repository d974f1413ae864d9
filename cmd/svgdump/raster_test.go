// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vglyph/otsvg"
	"github.com/vglyph/otsvg/geom"
	"github.com/vglyph/otsvg/values"
)

func TestRasterCanvasFillPathSolid(t *testing.T) {
	c := newRasterCanvas(image.Rect(0, 0, 10, 10))
	var path geom.Path
	path.MoveTo(2, 2)
	path.LineTo(8, 2)
	path.LineTo(8, 8)
	path.LineTo(2, 8)
	path.Close()

	paint := otsvg.ResolvedPaint{Kind: otsvg.ResolvedPaintSolid, Color: color.RGBA{R: 255, A: 255}}
	require.NoError(t, c.FillPath(&path, geom.Identity2(), otsvg.FillRuleNonZero, paint))

	got := c.Image().RGBAAt(5, 5)
	assert.Equal(t, uint8(255), got.R)
	assert.Equal(t, uint8(255), got.A)

	outside := c.Image().RGBAAt(0, 0)
	assert.Equal(t, uint8(0), outside.A)
}

func TestRasterCanvasPushPopGroupOpacity(t *testing.T) {
	c := newRasterCanvas(image.Rect(0, 0, 4, 4))
	var path geom.Path
	path.MoveTo(0, 0)
	path.LineTo(4, 0)
	path.LineTo(4, 4)
	path.LineTo(0, 4)
	path.Close()

	require.NoError(t, c.PushGroup(0.5, otsvg.BlendSrcOver))
	paint := otsvg.ResolvedPaint{Kind: otsvg.ResolvedPaintSolid, Color: color.RGBA{G: 255, A: 255}}
	require.NoError(t, c.FillPath(&path, geom.Identity2(), otsvg.FillRuleNonZero, paint))
	require.NoError(t, c.PopGroup(0.5, otsvg.BlendSrcOver))

	got := c.Image().RGBAAt(1, 1)
	assert.InDelta(t, 127, int(got.A), 2)
}

func TestRasterCanvasDrawImageComposites(t *testing.T) {
	c := newRasterCanvas(image.Rect(0, 0, 4, 4))
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	img := otsvg.Image{UserData: src, Width: 2, Height: 2}

	require.NoError(t, c.DrawImage(img, geom.Identity2(), geom.Rect{W: 4, H: 4}, 1))

	got := c.Image().RGBAAt(1, 1)
	assert.Equal(t, uint8(255), got.B)
	assert.Equal(t, uint8(255), got.A)
}

func TestRasterCanvasDecodeImageIsNoOp(t *testing.T) {
	c := newRasterCanvas(image.Rect(0, 0, 1, 1))
	img, err := c.DecodeImage([]byte("data:image/png;base64,"))
	require.NoError(t, err)
	assert.Nil(t, img.UserData)
}

func TestGradientImageLinearInterpolation(t *testing.T) {
	grad := otsvg.ResolvedGradient{
		Kind:   otsvg.GradientLinear,
		Matrix: geom.Identity2(),
		X1:     0, Y1: 0, X2: 10, Y2: 0,
		Stops: []otsvg.GradientStop{
			{Offset: 0, Color: color.RGBA{R: 0, A: 255}},
			{Offset: 1, Color: color.RGBA{R: 255, A: 255}},
		},
	}
	img := &gradientImage{grad: grad, bounds: image.Rect(0, 0, 10, 1)}

	start := img.At(0, 0).(color.RGBA)
	end := img.At(10, 0).(color.RGBA)
	mid := img.At(5, 0).(color.RGBA)

	assert.Equal(t, uint8(0), start.R)
	assert.Equal(t, uint8(255), end.R)
	assert.InDelta(t, 127, int(mid.R), 3)
}

func TestApplySpreadReflectAndRepeat(t *testing.T) {
	assert.InDelta(t, 0.3, applySpread(0.3, values.SpreadPad), 0.001)
	assert.InDelta(t, 0.25, applySpread(1.25, values.SpreadRepeat), 0.001)
	assert.InDelta(t, 0.75, applySpread(1.25, values.SpreadReflect), 0.001)
}
