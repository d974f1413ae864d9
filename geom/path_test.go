// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadToEndpoints(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.QuadTo(5, 10, 10, 0)
	assert.Equal(t, []Command{MoveTo, CubicTo}, p.Commands)
	// endpoint of the lowered cubic must equal the quad's endpoint
	assert.InDelta(t, float32(10), p.Current().X, 1e-5)
	assert.InDelta(t, float32(0), p.Current().Y, 1e-5)
}

func TestArcToEndpoint(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.ArcTo(10, 10, 0, false, true, 10, 10)
	assert.Equal(t, MoveTo, p.Commands[0])
	for _, c := range p.Commands[1:] {
		assert.Equal(t, CubicTo, c)
	}
	assert.InDelta(t, float32(10), p.Current().X, 1e-3)
	assert.InDelta(t, float32(10), p.Current().Y, 1e-3)

	bb := p.BoundingBox()
	assert.GreaterOrEqual(t, bb.X, float32(-0.001))
	assert.GreaterOrEqual(t, bb.Y, float32(-0.001))
	assert.LessOrEqual(t, bb.X+bb.W, float32(10.001))
	assert.LessOrEqual(t, bb.Y+bb.H, float32(10.001))
}

func TestArcToZeroRadiusIsLine(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.ArcTo(0, 5, 0, false, true, 10, 0)
	assert.Equal(t, []Command{MoveTo, LineTo}, p.Commands)
}

func TestArcToHorizontalEmitsGeometry(t *testing.T) {
	// Regression for DESIGN.md Open Question (b): a pure horizontal arc
	// (dy == 0) must not be silently dropped.
	var p Path
	p.MoveTo(0, 0)
	p.ArcTo(5, 5, 0, false, true, 10, 0)
	assert.Greater(t, len(p.Commands), 1)
	assert.InDelta(t, float32(10), p.Current().X, 1e-3)
	assert.InDelta(t, float32(0), p.Current().Y, 1e-3)
}

func TestAddRect(t *testing.T) {
	var p Path
	p.AddRect(1, 2, 3, 4)
	bb := p.BoundingBox()
	assert.Equal(t, Rect{X: 1, Y: 2, W: 3, H: 4}, bb)
	assert.Equal(t, Close, p.Commands[len(p.Commands)-1])
}

func TestAddRoundRectFallsBackToRect(t *testing.T) {
	var p Path
	p.AddRoundRect(0, 0, 10, 10, 0, 0)
	assert.Equal(t, []Command{MoveTo, LineTo, LineTo, LineTo, Close}, p.Commands)
}

func TestAddRoundRectClampsRadii(t *testing.T) {
	var p Path
	p.AddRoundRect(0, 0, 10, 4, 100, 100)
	bb := p.BoundingBox()
	assert.InDelta(t, float32(10), bb.W, 1e-4)
	assert.InDelta(t, float32(4), bb.H, 1e-4)
}

func TestAddEllipseBoundingBox(t *testing.T) {
	var p Path
	p.AddEllipse(5, 5, 3, 2)
	bb := p.BoundingBox()
	assert.InDelta(t, float32(2), bb.X, 1e-4)
	assert.InDelta(t, float32(3), bb.Y, 1e-4)
	assert.InDelta(t, float32(6), bb.W, 1e-4)
	assert.InDelta(t, float32(4), bb.H, 1e-4)
}

func TestClear(t *testing.T) {
	var p Path
	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	p.Clear()
	assert.True(t, p.Empty())
	assert.Equal(t, 0, len(p.Points))
}

func TestCloseIdempotent(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.Close()
	p.Close()
	count := 0
	for _, c := range p.Commands {
		if c == Close {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
