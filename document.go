// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package otsvg renders a restricted subset of SVG 1.1 suitable for use
// as a glyph-rendering backend (OpenType SVG tables, icon fonts): no CSS
// selectors, text, filters, animation, or scripting -- only presentation
// attributes, shapes, gradients, clip-paths, and <use> indirection, drawn
// through a caller-supplied Canvas.
package otsvg

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/vglyph/otsvg/geom"
	"github.com/vglyph/otsvg/internal/tree"
	"github.com/vglyph/otsvg/internal/xmlscan"
	"github.com/vglyph/otsvg/values"
)

// Document is a parsed SVG document ready to be rendered or measured. The
// zero value is not usable; construct one with NewDocument.
type Document struct {
	tree *tree.Document

	fallbackWidth  float32
	fallbackHeight float32
	dpi            float32
	logger         *slog.Logger

	intrinsicW, intrinsicH float32
	viewBox                geom.Rect
	hasViewBox             bool
}

// Option configures a Document at construction time.
type Option func(*Document)

// WithFallbackSize sets the viewport size used to resolve a root
// width/height expressed as a percentage, when the root has no viewBox.
// The default is 100x100.
func WithFallbackSize(w, h float32) Option {
	return func(d *Document) { d.fallbackWidth, d.fallbackHeight = w, h }
}

// WithDPI sets the resolution used to convert absolute length units
// (pt, pc, in, cm, mm) to user units. The default is 96.
func WithDPI(dpi float32) Option {
	return func(d *Document) { d.dpi = dpi }
}

// WithLogger sets the Document's logger. The default discards everything;
// Load, Render and Rect do not write to it.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) { d.logger = logger }
}

// NewDocument returns an empty Document ready for Load.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		tree:           tree.NewDocument(),
		fallbackWidth:  100,
		fallbackHeight: 100,
		dpi:            96,
		logger:         slog.New(slog.NewTextHandler(discardWriter{}, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// Load parses src, replacing any previously loaded document. The arena
// backing the previous tree is reused (its chunks are freed for reuse,
// not released), matching Clear's behavior. src is borrowed for the
// lifetime of the parsed tree: every attribute value is a slice into it,
// so the caller must not mutate or discard src before the next Clear or
// Load.
func (d *Document) Load(src []byte) error {
	d.tree.Clear()
	d.intrinsicW, d.intrinsicH = 0, 0
	d.hasViewBox = false

	if err := xmlscan.Parse(src, d.tree); err != nil {
		return fmt.Errorf("otsvg: load: %w", err)
	}

	root := d.tree.Root
	if vb, ok := resolveViewBox(root); ok {
		d.viewBox = vb
		d.hasViewBox = true
		d.intrinsicW, d.intrinsicH = vb.W, vb.H
		return nil
	}

	w := resolveLength(root, tree.PropertyWidth, values.Length{Value: 100, Unit: values.UnitPercent}, d.dpi, values.AxisX, d.fallbackWidth, d.fallbackHeight)
	h := resolveLength(root, tree.PropertyHeight, values.Length{Value: 100, Unit: values.UnitPercent}, d.dpi, values.AxisY, d.fallbackWidth, d.fallbackHeight)
	d.intrinsicW, d.intrinsicH = w, h
	return nil
}

// Clear discards the loaded document, reusing its arena storage for the
// next Load.
func (d *Document) Clear() {
	d.tree.Clear()
	d.intrinsicW, d.intrinsicH = 0, 0
	d.hasViewBox = false
}

// Close is a no-op retained for io.Closer symmetry; the document's
// memory is reclaimed by the garbage collector once it becomes
// unreachable.
func (d *Document) Close() error { return nil }

// IntrinsicSize returns the document's natural size in user units: the
// viewBox size if present, otherwise width/height resolved against the
// fallback viewport set by WithFallbackSize.
func (d *Document) IntrinsicSize() (w, h float32) {
	return d.intrinsicW, d.intrinsicH
}

// Render draws the element named by id (the root <svg> if id is empty)
// onto canvas. palette resolves var(--name) paints; it may be nil, in
// which case every var() paint falls back to its fallback color or is
// skipped. ctx is checked for cancellation at each recursion frame
// boundary.
func (d *Document) Render(ctx context.Context, canvas Canvas, palette PaletteFunc, currentColor color.RGBA, id string) error {
	elem, err := d.resolveTarget(id)
	if err != nil {
		return err
	}

	rc := &renderContext{
		ctx:          ctx,
		doc:          d,
		canvas:       canvas,
		palette:      palette,
		currentColor: currentColor,
		mode:         ModeDisplay,
	}
	vw, vh := d.rootViewport()
	st := &renderState{
		ctm:       d.viewportMatrix(),
		opacity:   1,
		viewportW: vw,
		viewportH: vh,
	}
	if err := rc.renderElement(elem, nil, st); err != nil {
		return fmt.Errorf("otsvg: render: %w", err)
	}
	return nil
}

// Rect returns the bounding box the element named by id (the root if id
// is empty) would occupy when rendered, mapped through the element's own
// transform and the root viewBox mapping (transforms on the element's
// ancestors are not applied), without issuing any Canvas calls.
func (d *Document) Rect(id string) (geom.Rect, error) {
	elem, err := d.resolveTarget(id)
	if err != nil {
		return geom.Rect{}, err
	}

	rc := &renderContext{
		ctx:  context.Background(),
		doc:  d,
		mode: ModeBounding,
	}
	vw, vh := d.rootViewport()
	st := &renderState{
		ctm:       d.viewportMatrix(),
		opacity:   1,
		viewportW: vw,
		viewportH: vh,
	}
	if err := rc.renderElement(elem, nil, st); err != nil {
		return geom.Rect{}, fmt.Errorf("otsvg: rect: %w", err)
	}
	return st.bbox, nil
}

// rootViewport returns the percent-length basis for attributes on the
// root element: the viewBox size if present, otherwise the resolved
// intrinsic width/height.
func (d *Document) rootViewport() (w, h float32) {
	if d.hasViewBox {
		return d.viewBox.W, d.viewBox.H
	}
	return d.intrinsicW, d.intrinsicH
}

func (d *Document) resolveTarget(id string) (*tree.Element, error) {
	if d.tree.Root == nil {
		return nil, ErrNotLoaded
	}
	if id == "" {
		return d.tree.Root, nil
	}
	elem, ok := d.tree.ElementByID(id)
	if !ok {
		return nil, ErrElementNotFound
	}
	return elem, nil
}

// viewportMatrix is the identity unless the root carries a viewBox, in
// which case it maps viewBox space into the intrinsic-size viewport
// using the root's preserveAspectRatio (defaulting to "xMidYMid meet").
func (d *Document) viewportMatrix() geom.Matrix2 {
	if !d.hasViewBox {
		return geom.Identity2()
	}
	par := values.PreserveAspectRatio{Align: values.AlignXMidYMid, Slice: values.Meet}
	if raw, ok := d.tree.Root.Local(tree.PropertyPreserveAspectRatio); ok {
		if p, ok := values.ParsePreserveAspectRatio(raw); ok {
			par = p
		}
	}
	return values.PositionMatrix(par, d.viewBox, d.intrinsicW, d.intrinsicH)
}

func resolveViewBox(root *tree.Element) (geom.Rect, bool) {
	if root == nil {
		return geom.Rect{}, false
	}
	raw, ok := root.Local(tree.PropertyViewBox)
	if !ok {
		return geom.Rect{}, false
	}
	return values.ParseViewBox(raw)
}
