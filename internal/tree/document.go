// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// Document is the parsed element tree plus the indices built alongside
// it. The scanner in internal/xmlscan populates a Document; the render
// package only ever reads one.
type Document struct {
	Root  *Element
	IDs   *IDMap
	Arena *Arena
}

// NewDocument returns an empty Document ready for xmlscan.Parse.
func NewDocument() *Document {
	return &Document{IDs: NewIDMap(), Arena: NewArena()}
}

// Clear resets the document to empty, reusing its arena and id-map
// storage for the next Parse.
func (d *Document) Clear() {
	d.Root = nil
	d.IDs.Clear()
	d.Arena.Clear()
}

// ElementByID resolves an id attribute to its element.
func (d *Document) ElementByID(id string) (*Element, bool) {
	return d.IDs.Get([]byte(id))
}
