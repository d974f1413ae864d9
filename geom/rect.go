// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/chewxy/math32"

// Rect is an axis-aligned rectangle. The zero value is the empty rect and
// is the identity element for Union.
type Rect struct {
	X, Y, W, H float32
}

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Union returns the smallest rect containing both r and o. An empty operand
// is ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	minX := math32.Min(r.X, o.X)
	minY := math32.Min(r.Y, o.Y)
	maxX := math32.Max(r.X+r.W, o.X+o.W)
	maxY := math32.Max(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Intersect returns the overlap of r and o, or the empty Rect if they do
// not overlap.
func (r Rect) Intersect(o Rect) Rect {
	if r.IsEmpty() || o.IsEmpty() {
		return Rect{}
	}
	minX := math32.Max(r.X, o.X)
	minY := math32.Max(r.Y, o.Y)
	maxX := math32.Min(r.X+r.W, o.X+o.W)
	maxY := math32.Min(r.Y+r.H, o.Y+o.H)
	if maxX <= minX || maxY <= minY {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Inflate returns r expanded by d on every side.
func (r Rect) Inflate(d float32) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}
