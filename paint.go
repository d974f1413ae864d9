// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otsvg

import (
	"image/color"

	"github.com/vglyph/otsvg/geom"
	"github.com/vglyph/otsvg/internal/tree"
	"github.com/vglyph/otsvg/values"
)

// maxGradientChain bounds xlink:href gradient inheritance walks; a chain
// that does not terminate within this many hops (a cycle, for instance)
// stops there and the slots collected so far are used.
const maxGradientChain = 32

// resolvePaint resolves a fill or stroke paint attribute (paintID) and
// its companion opacity attribute (opacityID) into a ResolvedPaint,
// applying frameOpacity (the enclosing element's opacity) on top. ok is
// false when the draw using this paint should be skipped entirely.
func (rc *renderContext) resolvePaint(e *tree.Element, paintID, opacityID tree.PropertyID, def values.PaintValue, frameOpacity float32, bbox geom.Rect, vw, vh float32) (ResolvedPaint, bool) {
	pv := def
	if raw, ok := e.Search(paintID, true); ok {
		if parsed, ok := values.ParsePaint(raw); ok {
			pv = parsed
		}
	}
	scale := frameOpacity * resolveOpacity(e, opacityID, 1, true)

	switch pv.Kind {
	case values.PaintNone:
		return ResolvedPaint{}, false

	case values.PaintColor:
		return ResolvedPaint{Kind: ResolvedPaintSolid, Color: scaleAlpha(pv.Color, scale)}, true

	case values.PaintCurrentColor:
		return ResolvedPaint{Kind: ResolvedPaintSolid, Color: scaleAlpha(rc.currentColor, scale)}, true

	case values.PaintVar:
		if rc.palette != nil {
			if c, ok := rc.palette(pv.VarName); ok {
				return ResolvedPaint{Kind: ResolvedPaintSolid, Color: scaleAlpha(c, scale)}, true
			}
		}
		if pv.HasFallback {
			return ResolvedPaint{Kind: ResolvedPaintSolid, Color: scaleAlpha(pv.Fallback, scale)}, true
		}
		return ResolvedPaint{}, false

	case values.PaintURL:
		if rp, ok := rc.resolveURLPaint(pv.RefID, scale, bbox, vw, vh); ok {
			return rp, true
		}
		if pv.HasFallback {
			return ResolvedPaint{Kind: ResolvedPaintSolid, Color: scaleAlpha(pv.Fallback, scale)}, true
		}
		return ResolvedPaint{}, false
	}
	return ResolvedPaint{}, false
}

func (rc *renderContext) resolveURLPaint(refID string, scale float32, bbox geom.Rect, vw, vh float32) (ResolvedPaint, bool) {
	ref, ok := rc.doc.tree.ElementByID(refID)
	if !ok {
		return ResolvedPaint{}, false
	}
	switch ref.Tag {
	case tree.TagSolidColor:
		raw, ok := ref.Search(tree.PropertySolidColor, true)
		if !ok {
			return ResolvedPaint{}, false
		}
		col, isCurrent, ok := values.ParseColor(raw)
		if !ok {
			return ResolvedPaint{}, false
		}
		if isCurrent {
			col = rc.currentColor
		}
		alpha := scale * resolveOpacity(ref, tree.PropertySolidOpacity, 1, true)
		return ResolvedPaint{Kind: ResolvedPaintSolid, Color: scaleAlpha(col, alpha)}, true

	case tree.TagLinearGradient, tree.TagRadialGradient:
		grad, ok := rc.resolveGradient(ref, bbox, vw, vh)
		if !ok {
			return ResolvedPaint{}, false
		}
		for i := range grad.Stops {
			grad.Stops[i].Color = scaleAlpha(grad.Stops[i].Color, scale)
		}
		return ResolvedPaint{Kind: ResolvedPaintGradient, Gradient: grad}, true
	}
	return ResolvedPaint{}, false
}

func scaleAlpha(c color.RGBA, scale float32) color.RGBA {
	if scale < 0 {
		scale = 0
	}
	if scale > 1 {
		scale = 1
	}
	a := float32(c.A) * scale
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: byte(a + 0.5)}
}

type gradientSlots struct {
	kind GradientKind

	haveStops bool
	stops     []GradientStop

	haveTransform bool
	transform     geom.Matrix2

	haveUnits bool
	units     values.Units

	haveSpread bool
	spread     values.SpreadMethod

	haveX1, haveY1, haveX2, haveY2 bool
	x1, y1, x2, y2                 []byte

	haveCX, haveCY, haveR, haveFX, haveFY bool
	cx, cy, r, fx, fy                     []byte
}

// resolveGradient walks gradElem's xlink:href chain, taking the first
// value found on the chain for each slot, then resolves the final
// geometry against bbox (for objectBoundingBox) or the current viewport
// (for userSpaceOnUse).
func (rc *renderContext) resolveGradient(gradElem *tree.Element, bbox geom.Rect, vw, vh float32) (ResolvedGradient, bool) {
	slots := gradientSlots{}
	if gradElem.Tag == tree.TagRadialGradient {
		slots.kind = GradientRadial
	}

	current := gradElem
	for i := 0; current != nil && i < maxGradientChain; i++ {
		if !slots.haveStops {
			if stops, ok := resolveGradientStops(rc, current); ok {
				slots.stops = stops
				slots.haveStops = true
			}
		}
		if !slots.haveTransform {
			if raw, ok := current.Local(tree.PropertyGradientTransform); ok {
				m, _ := values.ParseTransformList(raw)
				slots.transform = m
				slots.haveTransform = true
			}
		}
		if !slots.haveUnits {
			if raw, ok := current.Local(tree.PropertyGradientUnits); ok {
				u, _ := values.ParseUnits(raw)
				slots.units = u
				slots.haveUnits = true
			}
		}
		if !slots.haveSpread {
			if raw, ok := current.Local(tree.PropertySpreadMethod); ok {
				s, _ := values.ParseSpreadMethod(raw)
				slots.spread = s
				slots.haveSpread = true
			}
		}

		if slots.kind == GradientLinear {
			if !slots.haveX1 {
				if raw, ok := current.Local(tree.PropertyX1); ok {
					slots.x1, slots.haveX1 = raw, true
				}
			}
			if !slots.haveY1 {
				if raw, ok := current.Local(tree.PropertyY1); ok {
					slots.y1, slots.haveY1 = raw, true
				}
			}
			if !slots.haveX2 {
				if raw, ok := current.Local(tree.PropertyX2); ok {
					slots.x2, slots.haveX2 = raw, true
				}
			}
			if !slots.haveY2 {
				if raw, ok := current.Local(tree.PropertyY2); ok {
					slots.y2, slots.haveY2 = raw, true
				}
			}
		} else {
			if !slots.haveCX {
				if raw, ok := current.Local(tree.PropertyCX); ok {
					slots.cx, slots.haveCX = raw, true
				}
			}
			if !slots.haveCY {
				if raw, ok := current.Local(tree.PropertyCY); ok {
					slots.cy, slots.haveCY = raw, true
				}
			}
			if !slots.haveR {
				if raw, ok := current.Local(tree.PropertyR); ok {
					slots.r, slots.haveR = raw, true
				}
			}
			if !slots.haveFX {
				if raw, ok := current.Local(tree.PropertyFX); ok {
					slots.fx, slots.haveFX = raw, true
				}
			}
			if !slots.haveFY {
				if raw, ok := current.Local(tree.PropertyFY); ok {
					slots.fy, slots.haveFY = raw, true
				}
			}
		}

		next, ok := current.Local(tree.PropertyXlinkHref)
		if !ok {
			break
		}
		id := trimHashRef(next)
		target, ok := rc.doc.tree.ElementByID(id)
		if !ok || (target.Tag != tree.TagLinearGradient && target.Tag != tree.TagRadialGradient) {
			break
		}
		current = target
	}

	if !slots.haveStops {
		return ResolvedGradient{}, false
	}

	units := values.UnitsObjectBoundingBox
	if slots.haveUnits {
		units = slots.units
	}

	resolveCoord := func(raw []byte, have bool, def values.Length, axis values.PercentAxis) float32 {
		length := def
		if have {
			if l, ok := values.ParseLengthString(raw); ok {
				length = l
			}
		}
		if units == values.UnitsObjectBoundingBox {
			return length.Resolve(rc.doc.dpi, axis, 1, 1)
		}
		return length.Resolve(rc.doc.dpi, axis, vw, vh)
	}

	grad := ResolvedGradient{Kind: slots.kind, Spread: values.SpreadPad, Stops: append([]GradientStop(nil), slots.stops...)}
	if slots.haveSpread {
		grad.Spread = slots.spread
	}

	transform := geom.Identity2()
	if slots.haveTransform {
		transform = slots.transform
	}
	if units == values.UnitsObjectBoundingBox {
		transform = transform.Mul(geom.Scale2D(bbox.W, bbox.H)).Mul(geom.Translate2D(bbox.X, bbox.Y))
	}
	grad.Matrix = transform

	if slots.kind == GradientLinear {
		grad.X1 = resolveCoord(slots.x1, slots.haveX1, values.Length{Value: 0, Unit: values.UnitPercent}, values.AxisX)
		grad.Y1 = resolveCoord(slots.y1, slots.haveY1, values.Length{Value: 0, Unit: values.UnitNumber}, values.AxisY)
		grad.X2 = resolveCoord(slots.x2, slots.haveX2, values.Length{Value: 100, Unit: values.UnitPercent}, values.AxisX)
		grad.Y2 = resolveCoord(slots.y2, slots.haveY2, values.Length{Value: 0, Unit: values.UnitNumber}, values.AxisY)
	} else {
		grad.CX = resolveCoord(slots.cx, slots.haveCX, values.Length{Value: 50, Unit: values.UnitPercent}, values.AxisX)
		grad.CY = resolveCoord(slots.cy, slots.haveCY, values.Length{Value: 50, Unit: values.UnitPercent}, values.AxisY)
		grad.R = resolveCoord(slots.r, slots.haveR, values.Length{Value: 50, Unit: values.UnitPercent}, values.AxisOther)
		if slots.haveFX {
			grad.FX = resolveCoord(slots.fx, true, values.Length{}, values.AxisX)
		} else {
			grad.FX = grad.CX
		}
		if slots.haveFY {
			grad.FY = resolveCoord(slots.fy, true, values.Length{}, values.AxisY)
		} else {
			grad.FY = grad.CY
		}
	}
	return grad, true
}

// resolveGradientStops returns the resolved stop list from gradElem's
// direct <stop> children, if it has any.
func resolveGradientStops(rc *renderContext, gradElem *tree.Element) ([]GradientStop, bool) {
	var stops []GradientStop
	last := float32(0)
	for child := gradElem.FirstChild; child != nil; child = child.NextSibling {
		if child.Tag != tree.TagStop {
			continue
		}
		offset := resolveOpacity(child, tree.PropertyOffset, 0, false)
		if offset < last {
			offset = last
		}
		last = offset

		col := rc.currentColor
		if raw, ok := child.Search(tree.PropertyStopColor, true); ok {
			if c, isCurrent, ok := values.ParseColor(raw); ok && !isCurrent {
				col = c
			}
		}
		alpha := resolveOpacity(child, tree.PropertyStopOpacity, 1, true)
		col = scaleAlpha(col, alpha)
		stops = append(stops, GradientStop{Offset: offset, Color: col})
	}
	if len(stops) == 0 {
		return nil, false
	}
	return stops, true
}

func trimHashRef(raw []byte) string {
	raw = trimASCIIBytes(raw)
	if len(raw) > 0 && raw[0] == '#' {
		raw = raw[1:]
	}
	return string(raw)
}

func trimASCIIBytes(b []byte) []byte {
	i, j := 0, len(b)
	for i < j && isWSByte(b[i]) {
		i++
	}
	for j > i && isWSByte(b[j-1]) {
		j--
	}
	return b[i:j]
}

func isWSByte(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
