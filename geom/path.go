// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/chewxy/math32"

// Command identifies one entry of a Path's command stream.
type Command uint8

const (
	// MoveTo starts a new subpath at the following point.
	MoveTo Command = iota
	// LineTo draws a straight segment to the following point.
	LineTo
	// CubicTo draws a cubic Bezier using the following three points
	// (control1, control2, endpoint).
	CubicTo
	// Close closes the current subpath back to its starting point. It
	// consumes no points.
	Close
)

// kappa is the cubic-bezier control-point offset that best approximates a
// quarter circle of unit radius.
const kappa = 0.5522847498307936

// Path is a growable sequence of drawing commands and the points they
// consume. Quads are lowered to cubics at insertion time; so are arcs.
type Path struct {
	Commands []Command
	Points   []Vector2
}

// Empty reports whether the path has no commands.
func (p *Path) Empty() bool { return len(p.Commands) == 0 }

// Clear resets the path to empty, retaining its backing storage.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
	p.Points = p.Points[:0]
}

// Current returns the path's current point (the endpoint of the last
// emitted command), or the zero point if the path is empty.
func (p *Path) Current() Vector2 {
	if len(p.Points) == 0 {
		return Vector2{}
	}
	return p.Points[len(p.Points)-1]
}

// startOfSubpath returns the point of the most recent MoveTo, or the zero
// point if there is none.
func (p *Path) startOfSubpath() Vector2 {
	for i := len(p.Commands) - 1; i >= 0; i-- {
		if p.Commands[i] == MoveTo {
			return p.pointOf(i)
		}
	}
	return Vector2{}
}

// pointOf returns the first point associated with command index i.
func (p *Path) pointOf(cmdIndex int) Vector2 {
	idx := 0
	for i := 0; i < cmdIndex; i++ {
		idx += pointCount(p.Commands[i])
	}
	return p.Points[idx]
}

func pointCount(c Command) int {
	switch c {
	case MoveTo, LineTo:
		return 1
	case CubicTo:
		return 3
	default:
		return 0
	}
}

// MoveToPoint starts a new subpath at p.
func (path *Path) MoveToPoint(p Vector2) {
	path.Commands = append(path.Commands, MoveTo)
	path.Points = append(path.Points, p)
}

// MoveTo starts a new subpath at (x, y).
func (path *Path) MoveTo(x, y float32) { path.MoveToPoint(Vec2(x, y)) }

// LineToPoint appends a straight segment to p.
func (path *Path) LineToPoint(p Vector2) {
	path.Commands = append(path.Commands, LineTo)
	path.Points = append(path.Points, p)
}

// LineTo appends a straight segment to (x, y).
func (path *Path) LineTo(x, y float32) { path.LineToPoint(Vec2(x, y)) }

// CubicToPoints appends a cubic Bezier segment.
func (path *Path) CubicToPoints(c1, c2, end Vector2) {
	path.Commands = append(path.Commands, CubicTo)
	path.Points = append(path.Points, c1, c2, end)
}

// CubicTo appends a cubic Bezier segment.
func (path *Path) CubicTo(x1, y1, x2, y2, x3, y3 float32) {
	path.CubicToPoints(Vec2(x1, y1), Vec2(x2, y2), Vec2(x3, y3))
}

// QuadToPoint appends a quadratic Bezier segment, lowered to an equivalent
// cubic: given the current point p0, a control c and endpoint p1, the cubic
// controls are c1 = p0 + 2/3*(c-p0), c2 = p1 + 2/3*(c-p1).
func (path *Path) QuadToPoint(c, end Vector2) {
	p0 := path.Current()
	c1 := p0.Add(c.Sub(p0).MulScalar(2.0 / 3.0))
	c2 := end.Add(c.Sub(end).MulScalar(2.0 / 3.0))
	path.CubicToPoints(c1, c2, end)
}

// QuadTo appends a quadratic Bezier segment (control, endpoint).
func (path *Path) QuadTo(cx, cy, x, y float32) {
	path.QuadToPoint(Vec2(cx, cy), Vec2(x, y))
}

// Close closes the current subpath.
func (path *Path) Close() {
	if path.Empty() {
		return
	}
	if path.Commands[len(path.Commands)-1] == Close {
		return
	}
	path.Commands = append(path.Commands, Close)
}

// ArcTo appends an elliptical arc using the SVG endpoint-to-center
// parameterization. rx, ry are the ellipse radii, xAxisRotation is in
// degrees, and the arc travels from the path's current point to (x, y).
//
// Unlike the reference otfsvg_path_arc_to, which additionally skips the arc
// whenever dx == 0 or dy == 0 (dropping pure horizontal/vertical arcs),
// this only treats zero radii as degenerate -- see DESIGN.md Open Question
// resolution (b).
func (path *Path) ArcTo(rx, ry, xAxisRotation float32, largeArc, sweep bool, x, y float32) {
	p0 := path.Current()
	p1 := Vec2(x, y)
	if rx == 0 || ry == 0 {
		path.LineToPoint(p1)
		return
	}
	rx = math32.Abs(rx)
	ry = math32.Abs(ry)

	phi := xAxisRotation * (math32.Pi / 180)
	sinPhi, cosPhi := math32.Sincos(phi)

	// Step 1: compute (x1', y1'), the midpoint in the rotated frame.
	dx2 := (p0.X - p1.X) / 2
	dy2 := (p0.Y - p1.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// Step 2: correct out-of-range radii.
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math32.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 3: compute (cx', cy'), the center in the rotated frame.
	rx2, ry2 := rx*rx, ry*ry
	x1p2, y1p2 := x1p*x1p, y1p*y1p
	num := rx2*ry2 - rx2*y1p2 - ry2*x1p2
	den := rx2*y1p2 + ry2*x1p2
	var coef float32
	if den != 0 && num > 0 {
		coef = math32.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * (rx * y1p / ry)
	cyp := coef * -(ry * x1p / rx)

	// Step 4: compute (cx, cy) from (cx', cy').
	cx := cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2

	// Step 5: compute start angle and angle delta.
	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	theta1 := angleBetween(1, 0, ux, uy)
	dtheta := angleBetween(ux, uy, vx, vy)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math32.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math32.Pi
	}

	segments := int(math32.Ceil(math32.Abs(dtheta) / (math32.Pi/2 + 0.001)))
	if segments < 1 {
		segments = 1
	}
	delta := dtheta / float32(segments)
	t := 8.0 / 6.0 * math32.Tan(delta/4)

	theta := theta1
	prevX := ux*rx*cosPhi - uy*ry*sinPhi + cx
	prevY := ux*rx*sinPhi + uy*ry*cosPhi + cy
	prevTanX, prevTanY := -uy, ux

	for i := 0; i < segments; i++ {
		theta += delta
		sinT, cosT := math32.Sincos(theta)

		c1x := prevX + t*(prevTanX*rx*cosPhi-prevTanY*ry*sinPhi)
		c1y := prevY + t*(prevTanX*rx*sinPhi+prevTanY*ry*cosPhi)

		curTanX, curTanY := -sinT, cosT
		endX := cosT*rx*cosPhi - sinT*ry*sinPhi + cx
		endY := cosT*rx*sinPhi + sinT*ry*cosPhi + cy

		c2x := endX - t*(curTanX*rx*cosPhi-curTanY*ry*sinPhi)
		c2y := endY - t*(curTanX*rx*sinPhi+curTanY*ry*cosPhi)

		if i == segments-1 {
			endX, endY = p1.X, p1.Y
		}
		path.CubicTo(c1x, c1y, c2x, c2y, endX, endY)

		prevX, prevY = endX, endY
		prevTanX, prevTanY = curTanX, curTanY
	}
}

func angleBetween(ux, uy, vx, vy float32) float32 {
	sign := float32(1)
	if ux*vy-uy*vx < 0 {
		sign = -1
	}
	dot := ux*vx + uy*vy
	lu := math32.Hypot(ux, uy)
	lv := math32.Hypot(vx, vy)
	cosAngle := dot / (lu * lv)
	if cosAngle > 1 {
		cosAngle = 1
	} else if cosAngle < -1 {
		cosAngle = -1
	}
	return sign * math32.Acos(cosAngle)
}

// AddRect appends a closed rectangular subpath.
func (path *Path) AddRect(x, y, w, h float32) {
	path.MoveTo(x, y)
	path.LineTo(x+w, y)
	path.LineTo(x+w, y+h)
	path.LineTo(x, y+h)
	path.Close()
}

// AddRoundRect appends a closed rounded-rectangle subpath. rx and ry are
// clamped to at most half of w and h respectively; if both are zero the
// result is a plain rectangle.
func (path *Path) AddRoundRect(x, y, w, h, rx, ry float32) {
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	if rx <= 0 || ry <= 0 {
		path.AddRect(x, y, w, h)
		return
	}
	kx, ky := rx*kappa, ry*kappa
	path.MoveTo(x+rx, y)
	path.LineTo(x+w-rx, y)
	path.CubicTo(x+w-rx+kx, y, x+w, y+ry-ky, x+w, y+ry)
	path.LineTo(x+w, y+h-ry)
	path.CubicTo(x+w, y+h-ry+ky, x+w-rx+kx, y+h, x+w-rx, y+h)
	path.LineTo(x+rx, y+h)
	path.CubicTo(x+rx-kx, y+h, x, y+h-ry+ky, x, y+h-ry)
	path.LineTo(x, y+ry)
	path.CubicTo(x, y+ry-ky, x+rx-kx, y, x+rx, y)
	path.Close()
}

// AddEllipse appends a closed elliptical subpath centered at (cx, cy) with
// radii (rx, ry), built from four cubic quarter-arcs.
func (path *Path) AddEllipse(cx, cy, rx, ry float32) {
	kx, ky := rx*kappa, ry*kappa
	path.MoveTo(cx+rx, cy)
	path.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	path.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	path.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	path.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	path.Close()
}

// BoundingBox returns the axis-aligned bounding box of every point in the
// path (control points included, so this is a loose but cheap bound).
func (path *Path) BoundingBox() Rect {
	if len(path.Points) == 0 {
		return Rect{}
	}
	minX, minY := path.Points[0].X, path.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range path.Points[1:] {
		minX = math32.Min(minX, p.X)
		minY = math32.Min(minY, p.Y)
		maxX = math32.Max(maxX, p.X)
		maxY = math32.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Transform returns a copy of path with every point mapped through m.
func (path *Path) Transform(m Matrix2) *Path {
	out := &Path{
		Commands: append([]Command(nil), path.Commands...),
		Points:   make([]Vector2, len(path.Points)),
	}
	for i, p := range path.Points {
		out.Points[i] = m.MulPoint(p)
	}
	return out
}
