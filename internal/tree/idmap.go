// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// IDMap resolves an element's "id" attribute to the element that set it,
// for IRI ("#id") lookups. It's a small open-chaining hash map rather
// than a Go map so that Clear can reuse its bucket storage across
// document loads without forcing a GC pass over map internals.
type IDMap struct {
	buckets []*idEntry
	size    int
}

type idEntry struct {
	hash uint64
	name string
	elem *Element
	next *idEntry
}

const idMapInitialCapacity = 16

// NewIDMap returns an empty IDMap.
func NewIDMap() *IDMap {
	return &IDMap{buckets: make([]*idEntry, idMapInitialCapacity)}
}

func idHash(name []byte) uint64 {
	h := uint64(len(name))
	for _, b := range name {
		h = h*31 + uint64(b)
	}
	return h
}

// Put records that name resolves to elem, overwriting any prior binding
// for the same name, so the last element in document order with a given
// id wins.
func (m *IDMap) Put(name []byte, elem *Element) {
	hash := idHash(name)
	index := hash & uint64(len(m.buckets)-1)
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.hash == hash && e.name == string(name) {
			e.elem = elem
			return
		}
	}
	m.buckets[index] = &idEntry{hash: hash, name: string(name), elem: elem, next: m.buckets[index]}
	m.size++
	m.maybeExpand()
}

// Get resolves name to its element, if any.
func (m *IDMap) Get(name []byte) (*Element, bool) {
	hash := idHash(name)
	index := hash & uint64(len(m.buckets)-1)
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.hash == hash && e.name == string(name) {
			return e.elem, true
		}
	}
	return nil, false
}

func (m *IDMap) maybeExpand() {
	if m.size <= len(m.buckets)*3/4 {
		return
	}
	newBuckets := make([]*idEntry, len(m.buckets)*2)
	for _, head := range m.buckets {
		for e := head; e != nil; {
			next := e.next
			index := e.hash & uint64(len(newBuckets)-1)
			e.next = newBuckets[index]
			newBuckets[index] = e
			e = next
		}
	}
	m.buckets = newBuckets
}

// Clear empties the map, retaining its bucket storage for reuse.
func (m *IDMap) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}
