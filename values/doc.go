// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package values implements the small scanners that turn SVG presentation-
// attribute text into structured values: numbers, lengths, colors, paints,
// transform lists, viewBox, preserveAspectRatio, the path "d" mini-language,
// and points lists.
//
// Every parser here operates directly on the borrowed []byte slice that
// internal/tree stores for a property -- nothing is copied or unescaped
// (entity resolution is intentionally not performed, matching the
// document parser's own "no copy" discipline). A failed parse never
// panics; it reports ok=false and the caller substitutes the attribute's
// default.
package values
