// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// Element is one node of the parsed document tree.
type Element struct {
	Tag Tag

	Parent      *Element
	FirstChild  *Element
	LastChild   *Element
	NextSibling *Element

	Property *Property
}

// AppendChild links child as the new last child of e.
func (e *Element) AppendChild(child *Element) {
	child.Parent = e
	if e.LastChild != nil {
		e.LastChild.NextSibling = child
	} else {
		e.FirstChild = child
	}
	e.LastChild = child
}

// AddProperty head-inserts p onto e's property list.
func (e *Element) AddProperty(p *Property) {
	p.Next = e.Property
	e.Property = p
}

// Local returns the raw value of id set directly on e, without walking
// ancestors.
func (e *Element) Local(id PropertyID) ([]byte, bool) {
	for p := e.Property; p != nil; p = p.Next {
		if p.ID == id {
			return p.Value, true
		}
	}
	return nil, false
}

// Has reports whether id is set directly on e.
func (e *Element) Has(id PropertyID) bool {
	_, ok := e.Local(id)
	return ok
}

// Inherited returns the raw value of id found on e or the nearest
// ancestor that sets it.
func (e *Element) Inherited(id PropertyID) ([]byte, bool) {
	for cur := e; cur != nil; cur = cur.Parent {
		if v, ok := cur.Local(id); ok {
			return v, true
		}
	}
	return nil, false
}

// Search returns Local(id) if inherit is false, or Inherited(id) if it is
// true. This mirrors property_search in the reference parser, which every
// attribute accessor is built from: most attributes don't inherit past
// the element that sets them, but color, the paint server geometry
// properties, and several others explicitly do.
func (e *Element) Search(id PropertyID, inherit bool) ([]byte, bool) {
	if !inherit {
		return e.Local(id)
	}
	return e.Inherited(id)
}
