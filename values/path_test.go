// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vglyph/otsvg/geom"
)

func TestParsePathDataMoveLine(t *testing.T) {
	var p geom.Path
	ok := ParsePathData([]byte("M0 0 L10 0 L10 10 Z"), &p)
	assert.True(t, ok)
	assert.Equal(t, geom.MoveTo, p.Commands[0])
	assert.Equal(t, geom.Close, p.Commands[len(p.Commands)-1])
}

func TestParsePathDataRelative(t *testing.T) {
	var p geom.Path
	ok := ParsePathData([]byte("m10 10 l5 0 l0 5 z"), &p)
	assert.True(t, ok)
	assert.Equal(t, geom.Vec2(10, 10), p.Points[0])
	assert.Equal(t, geom.Vec2(15, 10), p.Points[1])
}

func TestParsePathDataImplicitLineAfterMove(t *testing.T) {
	var p geom.Path
	ok := ParsePathData([]byte("M0 0 10 0 10 10"), &p)
	assert.True(t, ok)
	// one MoveTo followed by two implicit LineTo commands
	assert.Equal(t, []geom.Command{geom.MoveTo, geom.LineTo, geom.LineTo}, p.Commands)
}

func TestParsePathDataSmoothCubicReflectsControl(t *testing.T) {
	var p geom.Path
	ok := ParsePathData([]byte("M0 0 C10 0 20 0 30 0 S50 0 60 0"), &p)
	assert.True(t, ok)
	// first control of S is (20,0) reflected about (30,0)
	assert.Equal(t, geom.Vec2(40, 0), p.Points[4])
	assert.Equal(t, geom.Vec2(60, 0), p.Current())
}

func TestParsePathDataArc(t *testing.T) {
	var p geom.Path
	ok := ParsePathData([]byte("M0 0 A5 5 0 0 1 10 0"), &p)
	assert.True(t, ok)
	assert.InDelta(t, float32(10), p.Current().X, 1e-2)
	assert.InDelta(t, float32(0), p.Current().Y, 1e-2)
}

func TestParsePathDataHorizontalVertical(t *testing.T) {
	var p geom.Path
	ok := ParsePathData([]byte("M0 0 H10 V10"), &p)
	assert.True(t, ok)
	assert.Equal(t, geom.Vec2(10, 10), p.Current())
}

func TestParsePathDataEmpty(t *testing.T) {
	var p geom.Path
	ok := ParsePathData([]byte(""), &p)
	assert.False(t, ok)
}
