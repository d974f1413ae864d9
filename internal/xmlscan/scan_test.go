// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xmlscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vglyph/otsvg/internal/tree"
)

func TestParseSimpleDocument(t *testing.T) {
	doc := tree.NewDocument()
	err := Parse([]byte(`<svg width="10" height="10"><rect x="1" y="2"/></svg>`), doc)
	assert.NoError(t, err)
	assert.NotNil(t, doc.Root)
	assert.Equal(t, tree.TagSVG, doc.Root.Tag)
	assert.NotNil(t, doc.Root.FirstChild)
	assert.Equal(t, tree.TagRect, doc.Root.FirstChild.Tag)

	v, ok := doc.Root.FirstChild.Local(tree.PropertyX)
	assert.True(t, ok)
	assert.Equal(t, "1", string(v))
}

func TestParseRequiresSVGRoot(t *testing.T) {
	doc := tree.NewDocument()
	err := Parse([]byte(`<rect x="1"/>`), doc)
	assert.ErrorIs(t, err, ErrNoRoot)
	assert.Nil(t, doc.Root)
}

func TestParseSkipsUnknownSubtree(t *testing.T) {
	doc := tree.NewDocument()
	err := Parse([]byte(`<svg><foreignObject><rect/></foreignObject><circle r="5"/></svg>`), doc)
	assert.NoError(t, err)
	assert.NotNil(t, doc.Root.FirstChild)
	assert.Equal(t, tree.TagCircle, doc.Root.FirstChild.Tag)
}

func TestParseSkipsCommentsAndCDATA(t *testing.T) {
	doc := tree.NewDocument()
	err := Parse([]byte(`<!-- hi --><svg><!--c--><rect/><![CDATA[ignored]]></svg>`), doc)
	assert.NoError(t, err)
	assert.Equal(t, tree.TagRect, doc.Root.FirstChild.Tag)
}

func TestParseSkipsXMLPrologAndDoctype(t *testing.T) {
	doc := tree.NewDocument()
	err := Parse([]byte(`<?xml version="1.0"?><!DOCTYPE svg><svg><rect/></svg>`), doc)
	assert.NoError(t, err)
	assert.Equal(t, tree.TagRect, doc.Root.FirstChild.Tag)
}

func TestParseIDAttributeGoesToIndex(t *testing.T) {
	doc := tree.NewDocument()
	err := Parse([]byte(`<svg><rect id="r1" x="3"/></svg>`), doc)
	assert.NoError(t, err)
	elem, ok := doc.ElementByID("r1")
	assert.True(t, ok)
	assert.Equal(t, tree.TagRect, elem.Tag)
	_, hasID := elem.Local(tree.PropertyIDAttr)
	assert.False(t, hasID, "id is indexed, not stored as a regular property")
}

func TestParseCloseTagNameIsNotVerifiedButDepthMustBalance(t *testing.T) {
	// A closing tag pops the current element by one level regardless of
	// the name it names, matching the reference parser -- but the
	// overall open/close count must still balance.
	doc := tree.NewDocument()
	err := Parse([]byte(`<svg><rect></svg>`), doc)
	assert.ErrorIs(t, err, ErrUnbalancedTags)
}

func TestParseSelfClosingRootIsBalanced(t *testing.T) {
	doc := tree.NewDocument()
	err := Parse([]byte(`<svg width="1" height="1"/>`), doc)
	assert.NoError(t, err)
}

func TestParseMalformedAttributeFails(t *testing.T) {
	doc := tree.NewDocument()
	err := Parse([]byte(`<svg width=10></svg>`), doc)
	assert.Error(t, err)
}

func TestParseRejectsContentAfterRootCloses(t *testing.T) {
	doc := tree.NewDocument()
	err := Parse([]byte(`<svg></svg><g></g>`), doc)
	assert.Error(t, err)
	assert.Nil(t, doc.Root)
}
