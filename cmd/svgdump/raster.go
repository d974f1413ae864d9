// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	draw2 "image/draw"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/vglyph/otsvg"
	"github.com/vglyph/otsvg/geom"
	"github.com/vglyph/otsvg/values"
)

// rasterCanvas composites a rendered document onto an *image.RGBA, giving
// the example tool a second output mode beyond the textual trace in
// dump.go. Path filling uses golang.org/x/image/vector.Rasterizer, the
// same rasterizer golang.org/x/exp/shiny/iconvg's renderer wraps; image
// compositing uses golang.org/x/image/draw's affine transformer, grounded
// on rcoreilly-goki's gi2d.Paint.DrawImageAnchored.
//
// Strokes are approximated: each path segment becomes a quad of the
// stroke's width, filled independently, with no true miter/round join or
// cap geometry -- acceptable for a visual sanity check. The bounding-box
// math in render.go's strokeInflate is a separate, conservative
// approximation and is not affected by this.
type rasterCanvas struct {
	layers []*image.RGBA
	bounds image.Rectangle
}

// newRasterCanvas allocates the base (root) layer covering bounds.
func newRasterCanvas(bounds image.Rectangle) *rasterCanvas {
	c := &rasterCanvas{bounds: bounds}
	c.layers = []*image.RGBA{image.NewRGBA(bounds)}
	return c
}

func (c *rasterCanvas) top() *image.RGBA { return c.layers[len(c.layers)-1] }

// Image returns the fully composited root layer.
func (c *rasterCanvas) Image() *image.RGBA { return c.layers[0] }

func (c *rasterCanvas) rasterize(path *geom.Path, matrix geom.Matrix2) *vector.Rasterizer {
	b := c.bounds
	z := &vector.Rasterizer{}
	z.Reset(b.Dx(), b.Dy())
	i := 0
	moved := false
	for _, cmd := range path.Commands {
		switch cmd {
		case geom.MoveTo:
			p := matrix.MulPoint(path.Points[i])
			z.MoveTo(vecOf(p, b))
			i++
			moved = true
		case geom.LineTo:
			p := matrix.MulPoint(path.Points[i])
			if !moved {
				z.MoveTo(vecOf(p, b))
				moved = true
			} else {
				z.LineTo(vecOf(p, b))
			}
			i++
		case geom.CubicTo:
			c1 := matrix.MulPoint(path.Points[i])
			c2 := matrix.MulPoint(path.Points[i+1])
			e := matrix.MulPoint(path.Points[i+2])
			z.CubeTo(vecOf(c1, b), vecOf(c2, b), vecOf(e, b))
			i += 3
		case geom.Close:
			z.ClosePath()
		}
	}
	return z
}

func vecOf(p geom.Vector2, b image.Rectangle) f32.Vec2 {
	return f32.Vec2{p.X - float32(b.Min.X), p.Y - float32(b.Min.Y)}
}

func (c *rasterCanvas) FillPath(path *geom.Path, matrix geom.Matrix2, rule otsvg.FillRule, paint otsvg.ResolvedPaint) error {
	z := c.rasterize(path, matrix)
	z.DrawOp = draw2.Over
	z.Draw(c.top(), c.bounds, paintImage(paint, c.bounds), c.bounds.Min)
	return nil
}

// StrokePath approximates a stroke by filling a width-wide quad per
// segment; see the rasterCanvas doc comment for the caveats.
func (c *rasterCanvas) StrokePath(path *geom.Path, matrix geom.Matrix2, stroke otsvg.StrokeData, paint otsvg.ResolvedPaint) error {
	if stroke.Width <= 0 {
		return nil
	}
	half := stroke.Width / 2
	src := paintImage(paint, c.bounds)

	var quad geom.Path
	emit := func(a, b geom.Vector2) {
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math32.Hypot(dx, dy)
		if length == 0 {
			return
		}
		nx, ny := -dy/length*half, dx/length*half
		quad.Clear()
		quad.MoveTo(a.X+nx, a.Y+ny)
		quad.LineTo(b.X+nx, b.Y+ny)
		quad.LineTo(b.X-nx, b.Y-ny)
		quad.LineTo(a.X-nx, a.Y-ny)
		quad.Close()
		z := c.rasterize(&quad, matrix)
		z.DrawOp = draw2.Over
		z.Draw(c.top(), c.bounds, src, c.bounds.Min)
	}

	i := 0
	var cur, start geom.Vector2
	for _, cmd := range path.Commands {
		switch cmd {
		case geom.MoveTo:
			cur = path.Points[i]
			start = cur
			i++
		case geom.LineTo:
			p := path.Points[i]
			emit(cur, p)
			cur = p
			i++
		case geom.CubicTo:
			e := path.Points[i+2]
			emit(cur, e)
			cur = e
			i += 3
		case geom.Close:
			emit(cur, start)
			cur = start
		}
	}
	return nil
}

func (c *rasterCanvas) PushGroup(opacity float32, blend otsvg.BlendMode) error {
	c.layers = append(c.layers, image.NewRGBA(c.bounds))
	return nil
}

func (c *rasterCanvas) PopGroup(opacity float32, blend otsvg.BlendMode) error {
	top := c.layers[len(c.layers)-1]
	c.layers = c.layers[:len(c.layers)-1]
	dst := c.top()
	compositeGroup(dst, top, c.bounds, opacity, blend)
	return nil
}

// compositeGroup merges src onto dst scaled by opacity, either by normal
// source-over blending (BlendSrcOver) or by multiplying dst's existing
// alpha by src's alpha (BlendDstIn, used for clip-path masking) -- neither
// op corresponds to a stdlib image/draw.Op, so both are done per-pixel.
func compositeGroup(dst, src *image.RGBA, bounds image.Rectangle, opacity float32, blend otsvg.BlendMode) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			s := src.RGBAAt(x, y)
			switch blend {
			case otsvg.BlendDstIn:
				d := dst.RGBAAt(x, y)
				a := float32(d.A) * (float32(s.A) / 255) * opacity
				dst.SetRGBA(x, y, color.RGBA{R: d.R, G: d.G, B: d.B, A: byte(a + 0.5)})
			default:
				a := float32(s.A) * opacity / 255
				if a <= 0 {
					continue
				}
				d := dst.RGBAAt(x, y)
				inv := 1 - a
				dst.SetRGBA(x, y, color.RGBA{
					R: byte(float32(s.R)*a + float32(d.R)*inv + 0.5),
					G: byte(float32(s.G)*a + float32(d.G)*inv + 0.5),
					B: byte(float32(s.B)*a + float32(d.B)*inv + 0.5),
					A: byte(float32(s.A)*opacity + float32(d.A)*inv + 0.5),
				})
			}
		}
	}
}

// DrawImage composites a decoded raster image through matrix, using
// golang.org/x/image/draw's bilinear affine transformer -- grounded on
// gi2d.Paint.DrawImageAnchored's draw.BiLinear.Transform call.
func (c *rasterCanvas) DrawImage(img otsvg.Image, matrix geom.Matrix2, clip geom.Rect, opacity float32) error {
	src, ok := img.UserData.(image.Image)
	if !ok || src == nil {
		return nil
	}
	s2d := f64.Aff3{
		float64(matrix.XX), float64(matrix.XY), float64(matrix.X0),
		float64(matrix.YX), float64(matrix.YY), float64(matrix.Y0),
	}
	draw.BiLinear.Transform(c.top(), s2d, src, src.Bounds(), draw2.Over, nil)
	return nil
}

func (c *rasterCanvas) DecodeImage(href []byte) (otsvg.Image, error) {
	return otsvg.Image{}, nil
}

// paintImage adapts a ResolvedPaint to an image.Image source suitable for
// vector.Rasterizer.Draw: a flat color.Uniform for a solid paint, or a
// per-pixel gradientImage for a gradient paint.
func paintImage(paint otsvg.ResolvedPaint, bounds image.Rectangle) image.Image {
	if paint.Kind != otsvg.ResolvedPaintGradient {
		return image.NewUniform(paint.Color)
	}
	return &gradientImage{grad: paint.Gradient, bounds: bounds}
}

// gradientImage evaluates a ResolvedGradient per pixel: linear gradients
// project the pixel onto the gradient axis, radial gradients use the
// pixel's distance from the centre divided by the radius (the focal point
// FX/FY is not used) -- both then map through the gradient's spread
// method and interpolate the bracketing stops.
type gradientImage struct {
	grad   otsvg.ResolvedGradient
	bounds image.Rectangle
}

func (g *gradientImage) ColorModel() color.Model { return color.RGBAModel }
func (g *gradientImage) Bounds() image.Rectangle { return g.bounds }

func (g *gradientImage) At(x, y int) color.Color {
	inv, ok := g.grad.Matrix.Inverse()
	if !ok {
		inv = geom.Identity2()
	}
	local := inv.MulPoint(geom.Vec2(float32(x), float32(y)))

	var t float32
	grad := g.grad
	if grad.Kind == otsvg.GradientLinear {
		dx, dy := grad.X2-grad.X1, grad.Y2-grad.Y1
		length2 := dx*dx + dy*dy
		if length2 == 0 {
			t = 0
		} else {
			t = ((local.X-grad.X1)*dx + (local.Y-grad.Y1)*dy) / length2
		}
	} else {
		dx, dy := local.X-grad.CX, local.Y-grad.CY
		dist := math32.Hypot(dx, dy)
		if grad.R == 0 {
			t = 0
		} else {
			t = dist / grad.R
		}
	}
	t = applySpread(t, grad.Spread)
	return sampleStops(grad.Stops, t)
}

// applySpread folds t into [0,1] per the gradient's spreadMethod, mirroring
// otfsvg-geometry.c's pad/reflect/repeat handling in resolve_gradient.
func applySpread(t float32, spread values.SpreadMethod) float32 {
	switch spread {
	case values.SpreadRepeat:
		t -= math32.Floor(t)
		return t
	case values.SpreadReflect:
		t = math32.Abs(t)
		period := math32.Mod(t, 2)
		if period > 1 {
			period = 2 - period
		}
		return period
	default: // SpreadPad
		if t < 0 {
			return 0
		}
		if t > 1 {
			return 1
		}
		return t
	}
}

// sampleStops linearly interpolates the bracketing stop pair for t, which
// must already be folded into [0,1] by applySpread.
func sampleStops(stops []otsvg.GradientStop, t float32) color.RGBA {
	if len(stops) == 0 {
		return color.RGBA{}
	}
	if len(stops) == 1 || t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			f := (t - a.Offset) / span
			return color.RGBA{
				R: lerp8(a.Color.R, b.Color.R, f),
				G: lerp8(a.Color.G, b.Color.G, f),
				B: lerp8(a.Color.B, b.Color.B, f),
				A: lerp8(a.Color.A, b.Color.A, f),
			}
		}
	}
	return last.Color
}

func lerp8(a, b uint8, f float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*f + 0.5)
}
