// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the affine-matrix and path-building primitives
// that the rest of otsvg is built on: a 2x3 affine matrix type, an
// axis-aligned rectangle with union/intersect/map operations, and a
// growable path builder with elliptical-arc-to-cubic conversion and
// rounded-rect/ellipse constructors.
//
// Every value here is float32, matching the precision used throughout
// glyph rendering pipelines (OpenType coordinates are themselves
// integers or 16.16 fixed-point, so float64 offers no extra fidelity).
package geom
