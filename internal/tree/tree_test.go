// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagFromName(t *testing.T) {
	assert.Equal(t, TagRect, TagFromName([]byte("rect")))
	assert.Equal(t, TagUnknown, TagFromName([]byte("foreignObject")))
}

func TestPropertyFromName(t *testing.T) {
	assert.Equal(t, PropertyStrokeWidth, PropertyFromName([]byte("stroke-width")))
	assert.Equal(t, PropertyUnknown, PropertyFromName([]byte("bogus")))
}

func TestElementLocalAndInherited(t *testing.T) {
	a := NewArena()
	parent := a.NewElement()
	parent.Tag = TagG
	fillProp := a.NewProperty()
	fillProp.ID = PropertyFill
	fillProp.Value = []byte("red")
	parent.AddProperty(fillProp)

	child := a.NewElement()
	child.Tag = TagRect
	parent.AppendChild(child)

	_, ok := child.Local(PropertyFill)
	assert.False(t, ok)

	v, ok := child.Inherited(PropertyFill)
	assert.True(t, ok)
	assert.Equal(t, "red", string(v))
}

func TestElementAppendChildOrder(t *testing.T) {
	a := NewArena()
	parent := a.NewElement()
	c1 := a.NewElement()
	c2 := a.NewElement()
	parent.AppendChild(c1)
	parent.AppendChild(c2)

	assert.Equal(t, c1, parent.FirstChild)
	assert.Equal(t, c2, parent.LastChild)
	assert.Equal(t, c2, c1.NextSibling)
	assert.Equal(t, parent, c2.Parent)
}

func TestIDMapPutGet(t *testing.T) {
	m := NewIDMap()
	a := NewArena()
	e := a.NewElement()
	m.Put([]byte("myid"), e)

	got, ok := m.Get([]byte("myid"))
	assert.True(t, ok)
	assert.Equal(t, e, got)

	_, ok = m.Get([]byte("other"))
	assert.False(t, ok)
}

func TestIDMapLastBindingWins(t *testing.T) {
	m := NewIDMap()
	a := NewArena()
	e1 := a.NewElement()
	e2 := a.NewElement()
	m.Put([]byte("dup"), e1)
	m.Put([]byte("dup"), e2)

	got, _ := m.Get([]byte("dup"))
	assert.Equal(t, e2, got)
}

func TestIDMapExpands(t *testing.T) {
	m := NewIDMap()
	a := NewArena()
	for i := 0; i < 100; i++ {
		e := a.NewElement()
		m.Put([]byte{byte('a' + i%26), byte(i)}, e)
	}
	assert.Greater(t, len(m.buckets), idMapInitialCapacity)
}

func TestArenaClearReusesChunks(t *testing.T) {
	a := NewArena()
	for i := 0; i < 1000; i++ {
		a.NewElement()
	}
	chunksBefore := len(a.chunks)
	a.Clear()
	assert.Equal(t, chunksBefore, len(a.freelist))
	a.NewElement()
	assert.Equal(t, chunksBefore-1, len(a.freelist))
}

func TestDocumentClearResetsRoot(t *testing.T) {
	d := NewDocument()
	d.Root = d.Arena.NewElement()
	d.IDs.Put([]byte("x"), d.Root)
	d.Clear()
	assert.Nil(t, d.Root)
	_, ok := d.ElementByID("x")
	assert.False(t, ok)
}
