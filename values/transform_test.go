// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vglyph/otsvg/geom"
)

func TestParseTransformTranslate(t *testing.T) {
	m, ok := ParseTransformList([]byte("translate(10, 20)"))
	assert.True(t, ok)
	assert.InDelta(t, float32(10), m.X0, 1e-4)
	assert.InDelta(t, float32(20), m.Y0, 1e-4)
}

func TestParseTransformScaleSingleArg(t *testing.T) {
	m, ok := ParseTransformList([]byte("scale(2)"))
	assert.True(t, ok)
	assert.InDelta(t, float32(2), m.XX, 1e-4)
	assert.InDelta(t, float32(2), m.YY, 1e-4)
}

func TestParseTransformComposesRightToLeft(t *testing.T) {
	// scale, being last-listed, applies first: the origin is fixed by
	// scale(2), then translate(10,0) shifts it to (10, 0).
	m, ok := ParseTransformList([]byte("translate(10,0) scale(2)"))
	assert.True(t, ok)
	p := m.MulPoint(geom.Vec2(0, 0))
	assert.InDelta(t, float32(10), p.X, 1e-3)
}

func TestParseTransformMatrix(t *testing.T) {
	m, ok := ParseTransformList([]byte("matrix(1,0,0,1,5,6)"))
	assert.True(t, ok)
	assert.InDelta(t, float32(5), m.X0, 1e-4)
	assert.InDelta(t, float32(6), m.Y0, 1e-4)
}

func TestParseTransformInvalid(t *testing.T) {
	_, ok := ParseTransformList([]byte("foo(1,2)"))
	assert.False(t, ok)
}
