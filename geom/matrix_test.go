// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestIdentity2(t *testing.T) {
	m := Identity2()
	p := Vec2(3, 4)
	assert.Equal(t, p, m.MulPoint(p))
}

func TestTranslate2D(t *testing.T) {
	m := Translate2D(2, -3)
	assert.Equal(t, Vec2(5, 1), m.MulPoint(Vec2(3, 4)))
}

func TestScale2D(t *testing.T) {
	m := Scale2D(2, 3)
	assert.Equal(t, Vec2(6, 12), m.MulPoint(Vec2(3, 4)))
}

func TestMulOrder(t *testing.T) {
	// m = translate.Mul(scale) applies translate first, then scale: the
	// point is translated to (11,1), then that result is scaled by 2.
	translate := Translate2D(10, 0)
	scale := Scale2D(2, 2)
	m := translate.Mul(scale)
	got := m.MulPoint(Vec2(1, 1))
	assert.InDelta(t, float32(22), got.X, 1e-5)
	assert.InDelta(t, float32(2), got.Y, 1e-5)
}

func TestInverse(t *testing.T) {
	m := Translate2D(4, 5).Mul(Scale2D(2, 3)).Mul(Rotate2D(0.7))
	inv, ok := m.Inverse()
	assert.True(t, ok)

	id := m.Mul(inv)
	assert.InDelta(t, float32(1), id.XX, 1e-4)
	assert.InDelta(t, float32(0), id.YX, 1e-4)
	assert.InDelta(t, float32(0), id.XY, 1e-4)
	assert.InDelta(t, float32(1), id.YY, 1e-4)
	assert.InDelta(t, float32(0), id.X0, 1e-4)
	assert.InDelta(t, float32(0), id.Y0, 1e-4)
}

func TestInverseSingular(t *testing.T) {
	m := Matrix2{}
	_, ok := m.Inverse()
	assert.False(t, ok)
}

func TestMulRect(t *testing.T) {
	m := Scale2D(2, 3)
	r := m.MulRect(Rect{X: 1, Y: 1, W: 2, H: 2})
	assert.Equal(t, Rect{X: 2, Y: 3, W: 4, H: 6}, r)
}

func TestRotateAbout2D(t *testing.T) {
	m := RotateAbout2D(math32.Pi/2, 5, 5)
	got := m.MulPoint(Vec2(5, 5))
	assert.InDelta(t, float32(5), got.X, 1e-4)
	assert.InDelta(t, float32(5), got.Y, 1e-4)
}
