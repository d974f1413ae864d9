// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/chewxy/math32"

// Matrix2 is a 2x3 affine transform:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
//
// The zero value is not a valid transform; use Identity2.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns the identity transform.
func Identity2() Matrix2 {
	return Matrix2{XX: 1, YY: 1}
}

// Translate2D returns a translation by (x, y).
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{XX: 1, YY: 1, X0: x, Y0: y}
}

// Scale2D returns a scale by (x, y).
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{XX: x, YY: y}
}

// Rotate2D returns a rotation by angle radians around the origin,
// clockwise on screen for positive angle in a y-down device space.
func Rotate2D(angle float32) Matrix2 {
	s, c := math32.Sincos(angle)
	return Matrix2{XX: c, YX: s, XY: -s, YY: c}
}

// RotateAbout2D returns a rotation by angle radians around the pivot (x, y):
// the pivot is moved to the origin, rotated, then moved back, so it applies
// translate(-pivot) first, then rotate, then translate(pivot) last.
func RotateAbout2D(angle, x, y float32) Matrix2 {
	return Translate2D(-x, -y).Mul(Rotate2D(angle)).Mul(Translate2D(x, y))
}

// Shear2D returns a shear transform [[1 tan(y)] [tan(x) 1]] (laid out as
// [XX YX; XY YY]), i.e. x' = x + tan(x)*y and y' = tan(y)*x + y, with x and
// y given in radians (callers parsing degrees, e.g. skewX/skewY, must
// convert before calling).
func Shear2D(x, y float32) Matrix2 {
	return Matrix2{XX: 1, YX: math32.Tan(y), XY: math32.Tan(x), YY: 1}
}

// Mul returns the composition m then o, i.e. for a point p,
// m.Mul(o).MulPoint(p) == o.MulPoint(m.MulPoint(p)).
//
// A transform-list "A B" composes to the matrix p' = A.B.p, so B (the
// last-listed transform) is applied to the point first: accumulate with
// acc = next.Mul(acc), prepending each newly parsed transform, so the
// final acc applies the last-listed transform first and the first-listed
// transform last.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	return Matrix2{
		XX: m.XX*o.XX + m.YX*o.XY,
		YX: m.XX*o.YX + m.YX*o.YY,
		XY: m.XY*o.XX + m.YY*o.XY,
		YY: m.XY*o.YX + m.YY*o.YY,
		X0: m.X0*o.XX + m.Y0*o.XY + o.X0,
		Y0: m.X0*o.YX + m.Y0*o.YY + o.Y0,
	}
}

// MulPoint applies m to the point p.
func (m Matrix2) MulPoint(p Vector2) Vector2 {
	return Vector2{
		X: m.XX*p.X + m.XY*p.Y + m.X0,
		Y: m.YX*p.X + m.YY*p.Y + m.Y0,
	}
}

// Inverse returns the inverse of m and true, or the zero Matrix2 and false
// if m is singular (determinant is zero).
func (m Matrix2) Inverse() (Matrix2, bool) {
	det := m.XX*m.YY - m.YX*m.XY
	if det == 0 {
		return Matrix2{}, false
	}
	inv := 1 / det
	xx := m.YY * inv
	yx := -m.YX * inv
	xy := -m.XY * inv
	yy := m.XX * inv
	return Matrix2{
		XX: xx, YX: yx, XY: xy, YY: yy,
		X0: -(m.X0*xx + m.Y0*xy),
		Y0: -(m.X0*yx + m.Y0*yy),
	}, true
}

// ExtractRot returns the rotation angle (radians) represented by the
// linear part of m, ignoring any scale or shear.
func (m Matrix2) ExtractRot() float32 {
	return math32.Atan2(m.YX, m.XX)
}

// MulRect maps r's four corners through m and returns their axis-aligned
// bounding box.
func (m Matrix2) MulRect(r Rect) Rect {
	if r.IsEmpty() {
		return Rect{}
	}
	corners := [4]Vector2{
		m.MulPoint(Vec2(r.X, r.Y)),
		m.MulPoint(Vec2(r.X+r.W, r.Y)),
		m.MulPoint(Vec2(r.X, r.Y+r.H)),
		m.MulPoint(Vec2(r.X+r.W, r.Y+r.H)),
	}
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		minX = math32.Min(minX, c.X)
		minY = math32.Min(minY, c.Y)
		maxX = math32.Max(maxX, c.X)
		maxY = math32.Max(maxY, c.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
