// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// chunkSize is the allocation granularity for Arena's backing storage.
const chunkSize = 4096

// Arena is a bump allocator for Element and Property values. Allocating
// from it never fails and never returns memory to the caller individually;
// Clear releases every value allocated so far in one step, retaining the
// chunks themselves for reuse by the next document loaded into the same
// Arena.
//
// This mirrors the heap_t arena used by the reference C parser: documents
// are reloaded far more often than new chunks are needed, so Clear keeps
// the chunk list around on a free list rather than releasing it.
type Arena struct {
	chunks    []*elementChunk
	freelist  []*elementChunk
	propChunk []*propertyChunk
	propFree  []*propertyChunk
}

type elementChunk struct {
	items [chunkSize / int(elementSize)]Element
	used  int
}

type propertyChunk struct {
	items [chunkSize / int(propertySize)]Property
	used  int
}

// Rough, deliberately approximate sizes used only to size chunk arrays;
// exact struct layout doesn't matter here, only getting a reasonable
// number of items per chunk.
const elementSize = 64
const propertySize = 48

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// NewElement allocates a zero-valued Element from the arena.
func (a *Arena) NewElement() *Element {
	if len(a.chunks) == 0 || a.chunks[len(a.chunks)-1].used >= len(a.chunks[len(a.chunks)-1].items) {
		a.chunks = append(a.chunks, a.takeElementChunk())
	}
	c := a.chunks[len(a.chunks)-1]
	e := &c.items[c.used]
	c.used++
	*e = Element{}
	return e
}

// NewProperty allocates a zero-valued Property from the arena.
func (a *Arena) NewProperty() *Property {
	if len(a.propChunk) == 0 || a.propChunk[len(a.propChunk)-1].used >= len(a.propChunk[len(a.propChunk)-1].items) {
		a.propChunk = append(a.propChunk, a.takePropertyChunk())
	}
	c := a.propChunk[len(a.propChunk)-1]
	p := &c.items[c.used]
	c.used++
	*p = Property{}
	return p
}

func (a *Arena) takeElementChunk() *elementChunk {
	if n := len(a.freelist); n > 0 {
		c := a.freelist[n-1]
		a.freelist = a.freelist[:n-1]
		c.used = 0
		return c
	}
	return &elementChunk{}
}

func (a *Arena) takePropertyChunk() *propertyChunk {
	if n := len(a.propFree); n > 0 {
		c := a.propFree[n-1]
		a.propFree = a.propFree[:n-1]
		c.used = 0
		return c
	}
	return &propertyChunk{}
}

// Clear discards every value allocated from the arena, returning the
// backing chunks to the free list for the next Load.
func (a *Arena) Clear() {
	a.freelist = append(a.freelist, a.chunks...)
	a.chunks = a.chunks[:0]
	a.propFree = append(a.propFree, a.propChunk...)
	a.propChunk = a.propChunk[:0]
}
