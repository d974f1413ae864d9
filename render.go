// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otsvg

import (
	"context"
	"image/color"

	"github.com/vglyph/otsvg/geom"
	"github.com/vglyph/otsvg/internal/tree"
	"github.com/vglyph/otsvg/values"
)

// Mode selects what a recursive traversal is doing: actually drawing,
// rendering a clip-path mask, or only accumulating a bounding box.
type Mode uint8

const (
	// ModeDisplay issues real Canvas calls.
	ModeDisplay Mode = iota
	// ModeClipping renders a clip-path's content as a BlendDstIn mask;
	// fill/stroke paint is ignored, only coverage matters.
	ModeClipping
	// ModeBounding accumulates a bounding box and issues no Canvas calls.
	ModeBounding
)

// renderContext holds everything constant across one Render or Rect call.
type renderContext struct {
	ctx          context.Context
	doc          *Document
	canvas       Canvas
	palette      PaletteFunc
	currentColor color.RGBA
	mode         Mode

	// blend is the composite mode this frame's own pushed group (if any)
	// uses at both push and pop. It is BlendSrcOver everywhere except
	// for the frame of a clipPath element reached as a clip-path target,
	// where it is BlendDstIn -- so the clip mask's group, once popped,
	// multiplies the alpha of whatever is already drawn in the enclosing
	// group rather than blending over it. The clipPath's own children
	// are drawn into that group with BlendSrcOver.
	blend BlendMode
}

// renderState is one recursion frame. ctm is the full root-to-this-frame
// transform (not just the local one), so every bbox accumulated into it
// lives in one consistent coordinate space and parent frames can union a
// child's bbox directly, with no further transform needed. viewportW/H is
// the percent-length basis in effect for this frame, changed only by a
// nested <svg> with its own viewBox.
type renderState struct {
	ctm                  geom.Matrix2
	opacity              float32
	bbox                 geom.Rect
	viewportW, viewportH float32
}

// renderElement is the unified dispatcher for every element kind, reached
// both from Document.Render/Rect's entry point and from every recursive
// descent (g, use, nested svg, clip-path content). effectiveParent is the
// element whose inherited properties a <use>'d element should see instead
// of its own tree parent; it is nil everywhere except inside a <use>
// expansion. Property lookups still walk the real tree parent chain
// (tree.Element.Search), not effectiveParent -- see DESIGN.md's "use
// inheritance scope" entry for why that's an acceptable simplification
// here.
func (rc *renderContext) renderElement(elem *tree.Element, effectiveParent *tree.Element, parentState *renderState) error {
	if err := rc.ctx.Err(); err != nil {
		return err
	}
	if elem == nil {
		return nil
	}

	if d, ok := elem.Search(tree.PropertyDisplay, false); ok {
		if v, ok := values.ParseDisplay(d); ok && v == values.DisplayNone {
			return nil
		}
	}

	st := &renderState{ctm: parentState.ctm, opacity: 1, viewportW: parentState.viewportW, viewportH: parentState.viewportH}

	if rc.mode == ModeDisplay {
		st.opacity = resolveOpacity(elem, tree.PropertyOpacity, 1, false)
	}

	if raw, ok := elem.Local(tree.PropertyTransform); ok {
		if m, ok := values.ParseTransformList(raw); ok {
			st.ctm = m.Mul(parentState.ctm)
		}
	}

	var clipElem *tree.Element
	if raw, ok := elem.Search(tree.PropertyClipPath, false); ok {
		if pv, ok := values.ParsePaint(raw); ok && pv.Kind == values.PaintURL {
			if ref, ok := rc.doc.tree.ElementByID(pv.RefID); ok && ref.Tag == tree.TagClipPath {
				clipElem = ref
			}
		}
	}

	hasChildren := elem.FirstChild != nil
	pushedGroup := false
	groupOpacity := st.opacity
	if (rc.mode == ModeDisplay || rc.mode == ModeClipping) && rc.canvas != nil {
		if clipElem != nil || rc.blend == BlendDstIn || (st.opacity < 1 && hasChildren) {
			if err := rc.canvas.PushGroup(groupOpacity, rc.blend); err != nil {
				return err
			}
			pushedGroup = true
			st.opacity = 1
		}
	}

	drawOpacity := st.opacity

	var err error
	switch elem.Tag {
	case tree.TagRect:
		err = rc.renderRect(elem, st, drawOpacity)
	case tree.TagCircle:
		err = rc.renderCircle(elem, st, drawOpacity)
	case tree.TagEllipse:
		err = rc.renderEllipse(elem, st, drawOpacity)
	case tree.TagLine:
		err = rc.renderLine(elem, st, drawOpacity)
	case tree.TagPolyline:
		err = rc.renderPoly(elem, st, drawOpacity, false)
	case tree.TagPolygon:
		err = rc.renderPoly(elem, st, drawOpacity, true)
	case tree.TagPath:
		err = rc.renderPath(elem, st, drawOpacity)
	case tree.TagG, tree.TagSVG:
		err = rc.renderGroup(elem, st)
	case tree.TagUse:
		err = rc.renderUse(elem, st)
	case tree.TagClipPath:
		// A clipPath's children are only ever rendered when this element
		// is reached directly as a clip-path target (ModeClipping); if a
		// normal traversal somehow descends into one (it shouldn't, since
		// nothing places a clipPath as a visible child), it stays inert.
		// The children draw into the DstIn group this frame pushed.
		if rc.mode == ModeClipping {
			inner := *rc
			inner.blend = BlendSrcOver
			err = inner.renderGroup(elem, st)
		}
	case tree.TagDefs, tree.TagLinearGradient, tree.TagRadialGradient, tree.TagSolidColor, tree.TagStop:
		// Non-rendering containers: reachable only by id, never drawn or
		// traversed as part of the visible tree.
	default:
		err = rc.renderGroup(elem, st)
	}
	if err != nil {
		if pushedGroup {
			rc.canvas.PopGroup(groupOpacity, rc.blend)
		}
		return err
	}

	if pushedGroup && clipElem != nil {
		clipState := &renderState{ctm: st.ctm, opacity: 1, viewportW: st.viewportW, viewportH: st.viewportH}
		clipRC := &renderContext{
			ctx:          rc.ctx,
			doc:          rc.doc,
			canvas:       rc.canvas,
			palette:      rc.palette,
			currentColor: rc.currentColor,
			mode:         ModeClipping,
			blend:        BlendDstIn,
		}
		if err := clipRC.renderElement(clipElem, nil, clipState); err != nil {
			rc.canvas.PopGroup(groupOpacity, rc.blend)
			return err
		}
	}
	if pushedGroup {
		if err := rc.canvas.PopGroup(groupOpacity, rc.blend); err != nil {
			return err
		}
	}

	parentState.bbox = parentState.bbox.Union(st.bbox)
	return nil
}

func (rc *renderContext) visible(elem *tree.Element) bool {
	if raw, ok := elem.Search(tree.PropertyVisibility, true); ok {
		if v, ok := values.ParseVisibility(raw); ok && v == values.VisibilityHidden {
			return false
		}
	}
	return true
}

// fillAndStroke resolves paint/stroke for elem and, depending on mode,
// either issues Canvas draw calls or folds path's extent into st.bbox.
// path is in elem's own local (pre-transform) coordinate space; st.ctm
// maps that space into the shared root-accumulated space every bbox is
// expressed in.
func (rc *renderContext) fillAndStroke(elem *tree.Element, path *geom.Path, st *renderState, drawOpacity float32) error {
	localBBox := path.BoundingBox()

	if rc.mode == ModeClipping {
		// clipPath geometry is determined by each child's shape alone --
		// its own fill/stroke/visibility properties are irrelevant to
		// what area it contributes to the mask, only clip-rule is.
		clipRule := values.FillRuleNonZero
		if raw, ok := elem.Search(tree.PropertyClipRule, true); ok {
			if r, ok := values.ParseFillRule(raw); ok {
				clipRule = r
			}
		}
		if rc.canvas != nil {
			return rc.canvas.FillPath(path, st.ctm, clipRule, ResolvedPaint{Kind: ResolvedPaintSolid, Color: color.RGBA{A: 255}})
		}
		return nil
	}

	visible := rc.visible(elem)

	fillPaint, fillOK := rc.resolvePaint(elem, tree.PropertyFill, tree.PropertyFillOpacity, values.PaintValue{Kind: values.PaintColor, Color: color.RGBA{A: 255}}, drawOpacity, localBBox, st.viewportW, st.viewportH)
	strokePaint, strokeOK := rc.resolvePaint(elem, tree.PropertyStroke, tree.PropertyStrokeOpacity, values.PaintValue{Kind: values.PaintNone}, drawOpacity, localBBox, st.viewportW, st.viewportH)

	fillRule := values.FillRuleNonZero
	if raw, ok := elem.Search(tree.PropertyFillRule, true); ok {
		if r, ok := values.ParseFillRule(raw); ok {
			fillRule = r
		}
	}

	strokeWidth := resolveLengthInherit(elem, tree.PropertyStrokeWidth, values.Length{Value: 1, Unit: values.UnitNumber}, rc.doc.dpi, values.AxisOther, st.viewportW, st.viewportH, true)
	stroke := StrokeData{
		LineCap:    capFrom(elem),
		LineJoin:   joinFrom(elem),
		Width:      strokeWidth,
		MiterLimit: resolveNumber(elem, tree.PropertyStrokeMiterlimit, 4, true),
		DashOffset: resolveLengthInherit(elem, tree.PropertyStrokeDashoffset, values.Length{}, rc.doc.dpi, values.AxisOther, st.viewportW, st.viewportH, true),
		DashArray:  dashArrayFrom(elem, rc.doc.dpi, st.viewportW, st.viewportH),
	}

	switch rc.mode {
	case ModeDisplay:
		if visible && rc.canvas != nil {
			if fillOK {
				if err := rc.canvas.FillPath(path, st.ctm, fillRule, fillPaint); err != nil {
					return err
				}
			}
			if strokeOK {
				if err := rc.canvas.StrokePath(path, st.ctm, stroke, strokePaint); err != nil {
					return err
				}
			}
		}
		st.bbox = st.bbox.Union(st.ctm.MulRect(localBBox))
	case ModeBounding:
		inflate := strokeInflate(strokeOK, stroke)
		st.bbox = st.bbox.Union(st.ctm.MulRect(localBBox.Inflate(inflate)))
	}
	return nil
}

func strokeInflate(strokeOK bool, s StrokeData) float32 {
	if !strokeOK {
		return 0
	}
	delta := s.Width / 2
	capDelta := s.Width / 2
	if s.LineCap == values.CapSquare {
		capDelta *= 1.4142135
	}
	joinDelta := s.Width / 2
	if s.LineJoin == values.JoinMiter && s.MiterLimit > 1 {
		joinDelta *= s.MiterLimit
	}
	if capDelta > delta {
		delta = capDelta
	}
	if joinDelta > delta {
		delta = joinDelta
	}
	return delta
}

func capFrom(e *tree.Element) values.LineCap {
	if raw, ok := e.Search(tree.PropertyStrokeLinecap, true); ok {
		if c, ok := values.ParseLineCap(raw); ok {
			return c
		}
	}
	return values.CapButt
}

func joinFrom(e *tree.Element) values.LineJoin {
	if raw, ok := e.Search(tree.PropertyStrokeLinejoin, true); ok {
		if j, ok := values.ParseLineJoin(raw); ok {
			return j
		}
	}
	return values.JoinMiter
}

// dashArrayFrom parses a whitespace/comma-separated length list, keeping
// whatever prefix parses and dropping the rest on the first failure.
func dashArrayFrom(e *tree.Element, dpi, vw, vh float32) []float32 {
	raw, ok := e.Search(tree.PropertyStrokeDasharray, true)
	if !ok {
		return nil
	}
	c := values.NewCursor(raw)
	c.SkipWhitespace()
	var out []float32
	for !c.Eof() {
		l, ok := c.ParseLength()
		if !ok {
			break
		}
		out = append(out, l.Resolve(dpi, values.AxisOther, vw, vh))
		c.SkipCommaWhitespace()
	}
	return out
}

func (rc *renderContext) renderRect(elem *tree.Element, st *renderState, opacity float32) error {
	w := resolveLength(elem, tree.PropertyWidth, values.Length{}, rc.doc.dpi, values.AxisX, st.viewportW, st.viewportH)
	h := resolveLength(elem, tree.PropertyHeight, values.Length{}, rc.doc.dpi, values.AxisY, st.viewportW, st.viewportH)
	if w <= 0 || h <= 0 {
		return nil
	}
	x := resolveLength(elem, tree.PropertyX, values.Length{}, rc.doc.dpi, values.AxisX, st.viewportW, st.viewportH)
	y := resolveLength(elem, tree.PropertyY, values.Length{}, rc.doc.dpi, values.AxisY, st.viewportW, st.viewportH)
	rx := resolveLength(elem, tree.PropertyRX, values.Length{}, rc.doc.dpi, values.AxisX, st.viewportW, st.viewportH)
	ry := resolveLength(elem, tree.PropertyRY, values.Length{}, rc.doc.dpi, values.AxisY, st.viewportW, st.viewportH)
	if !elem.Has(tree.PropertyRX) && elem.Has(tree.PropertyRY) {
		rx = ry
	}
	if !elem.Has(tree.PropertyRY) && elem.Has(tree.PropertyRX) {
		ry = rx
	}

	var path geom.Path
	if rx > 0 && ry > 0 {
		path.AddRoundRect(x, y, w, h, rx, ry)
	} else {
		path.AddRect(x, y, w, h)
	}
	return rc.fillAndStroke(elem, &path, st, opacity)
}

func (rc *renderContext) renderCircle(elem *tree.Element, st *renderState, opacity float32) error {
	r := resolveLength(elem, tree.PropertyR, values.Length{}, rc.doc.dpi, values.AxisOther, st.viewportW, st.viewportH)
	if r <= 0 {
		return nil
	}
	cx := resolveLength(elem, tree.PropertyCX, values.Length{}, rc.doc.dpi, values.AxisX, st.viewportW, st.viewportH)
	cy := resolveLength(elem, tree.PropertyCY, values.Length{}, rc.doc.dpi, values.AxisY, st.viewportW, st.viewportH)
	var path geom.Path
	path.AddEllipse(cx, cy, r, r)
	return rc.fillAndStroke(elem, &path, st, opacity)
}

func (rc *renderContext) renderEllipse(elem *tree.Element, st *renderState, opacity float32) error {
	rx := resolveLength(elem, tree.PropertyRX, values.Length{}, rc.doc.dpi, values.AxisX, st.viewportW, st.viewportH)
	ry := resolveLength(elem, tree.PropertyRY, values.Length{}, rc.doc.dpi, values.AxisY, st.viewportW, st.viewportH)
	if rx <= 0 || ry <= 0 {
		return nil
	}
	cx := resolveLength(elem, tree.PropertyCX, values.Length{}, rc.doc.dpi, values.AxisX, st.viewportW, st.viewportH)
	cy := resolveLength(elem, tree.PropertyCY, values.Length{}, rc.doc.dpi, values.AxisY, st.viewportW, st.viewportH)
	var path geom.Path
	path.AddEllipse(cx, cy, rx, ry)
	return rc.fillAndStroke(elem, &path, st, opacity)
}

func (rc *renderContext) renderLine(elem *tree.Element, st *renderState, opacity float32) error {
	x1 := resolveLength(elem, tree.PropertyX1, values.Length{}, rc.doc.dpi, values.AxisX, st.viewportW, st.viewportH)
	y1 := resolveLength(elem, tree.PropertyY1, values.Length{}, rc.doc.dpi, values.AxisY, st.viewportW, st.viewportH)
	x2 := resolveLength(elem, tree.PropertyX2, values.Length{}, rc.doc.dpi, values.AxisX, st.viewportW, st.viewportH)
	y2 := resolveLength(elem, tree.PropertyY2, values.Length{}, rc.doc.dpi, values.AxisY, st.viewportW, st.viewportH)
	var path geom.Path
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	return rc.fillAndStroke(elem, &path, st, opacity)
}

func (rc *renderContext) renderPoly(elem *tree.Element, st *renderState, opacity float32, closed bool) error {
	raw, ok := elem.Local(tree.PropertyPoints)
	if !ok {
		return nil
	}
	var path geom.Path
	if !values.ParsePoints(raw, &path, closed) {
		return nil
	}
	return rc.fillAndStroke(elem, &path, st, opacity)
}

func (rc *renderContext) renderPath(elem *tree.Element, st *renderState, opacity float32) error {
	raw, ok := elem.Local(tree.PropertyD)
	if !ok {
		return nil
	}
	trimmed := trimASCIIBytes(raw)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] != 'M' && trimmed[0] != 'm' {
		return ErrPathMustStartWithMoveTo
	}
	var path geom.Path
	if !values.ParsePathData(raw, &path) {
		return nil
	}
	return rc.fillAndStroke(elem, &path, st, opacity)
}

// renderGroup recurses into elem's children. elem is <g>, <svg>, or any
// unrecognized element used purely as a grouping box.
func (rc *renderContext) renderGroup(elem *tree.Element, st *renderState) error {
	inner := st
	if elem.Tag == tree.TagSVG && elem != rc.doc.tree.Root {
		inner = rc.nestedSVGState(elem, st)
	}
	for child := elem.FirstChild; child != nil; child = child.NextSibling {
		if err := rc.renderElement(child, nil, inner); err != nil {
			return err
		}
	}
	if inner != st {
		st.bbox = st.bbox.Union(inner.bbox)
	}
	return nil
}

// nestedSVGState applies a nested <svg>'s x/y translation and, if it
// carries its own viewBox, the viewBox-to-viewport mapping, returning a
// fresh frame so the new viewport size doesn't leak to later siblings.
func (rc *renderContext) nestedSVGState(elem *tree.Element, parent *renderState) *renderState {
	x := resolveLength(elem, tree.PropertyX, values.Length{}, rc.doc.dpi, values.AxisX, parent.viewportW, parent.viewportH)
	y := resolveLength(elem, tree.PropertyY, values.Length{}, rc.doc.dpi, values.AxisY, parent.viewportW, parent.viewportH)
	w := resolveLength(elem, tree.PropertyWidth, values.Length{Value: 100, Unit: values.UnitPercent}, rc.doc.dpi, values.AxisX, parent.viewportW, parent.viewportH)
	h := resolveLength(elem, tree.PropertyHeight, values.Length{Value: 100, Unit: values.UnitPercent}, rc.doc.dpi, values.AxisY, parent.viewportW, parent.viewportH)

	m := geom.Translate2D(x, y).Mul(parent.ctm)
	viewportW, viewportH := w, h
	if vb, ok := resolveViewBox(elem); ok {
		par := values.PreserveAspectRatio{Align: values.AlignXMidYMid, Slice: values.Meet}
		if raw, ok := elem.Local(tree.PropertyPreserveAspectRatio); ok {
			if p, ok := values.ParsePreserveAspectRatio(raw); ok {
				par = p
			}
		}
		m = values.PositionMatrix(par, vb, w, h).Mul(m)
		viewportW, viewportH = vb.W, vb.H
	}
	return &renderState{ctm: m, opacity: parent.opacity, viewportW: viewportW, viewportH: viewportH}
}

// renderUse expands a <use> element: it draws the referenced element
// translated by x/y, passing the use element as effectiveParent rather
// than mutating the tree. Inherited property lookups do not consult
// effectiveParent: they walk the referenced element's own tree ancestors,
// so properties set on the <use> element or its ancestors are not
// inherited by the referenced content.
func (rc *renderContext) renderUse(elem *tree.Element, st *renderState) error {
	raw, ok := elem.Local(tree.PropertyXlinkHref)
	if !ok {
		return nil
	}
	id := trimHashRef(raw)
	target, ok := rc.doc.tree.ElementByID(id)
	if !ok {
		return nil
	}
	x := resolveLength(elem, tree.PropertyX, values.Length{}, rc.doc.dpi, values.AxisX, st.viewportW, st.viewportH)
	y := resolveLength(elem, tree.PropertyY, values.Length{}, rc.doc.dpi, values.AxisY, st.viewportW, st.viewportH)
	inner := &renderState{ctm: geom.Translate2D(x, y).Mul(st.ctm), opacity: st.opacity, viewportW: st.viewportW, viewportH: st.viewportH}
	if err := rc.renderElement(target, elem, inner); err != nil {
		return err
	}
	st.bbox = st.bbox.Union(inner.bbox)
	return nil
}
