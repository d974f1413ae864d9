// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree holds the arena-allocated element tree that a parsed
// document is built into: elements linked by parent/first-child/
// next-sibling/last-child pointers, each carrying a head-inserted list of
// raw attribute values, plus an id-to-element index for IRI lookups.
//
// Nothing here copies attribute text: every Property.Value is a slice of
// the original source document, so the document's bytes must outlive the
// tree built from them.
package tree
