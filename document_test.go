// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otsvg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vglyph/otsvg/internal/tree"
)

func TestIntrinsicSizeFromViewBox(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(`<svg viewBox="0 0 32 16"/>`)))
	w, h := doc.IntrinsicSize()
	assert.Equal(t, float32(32), w)
	assert.Equal(t, float32(16), h)
}

func TestIntrinsicSizeFromWidthHeight(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Load([]byte(`<svg width="48" height="24"/>`)))
	w, h := doc.IntrinsicSize()
	assert.Equal(t, float32(48), w)
	assert.Equal(t, float32(24), h)
}

func TestIntrinsicSizeFallsBackToPercentDefaultAndFallbackViewport(t *testing.T) {
	doc := NewDocument(WithFallbackSize(64, 32))
	require.NoError(t, doc.Load([]byte(`<svg/>`)))
	w, h := doc.IntrinsicSize()
	assert.Equal(t, float32(64), w)
	assert.Equal(t, float32(32), h)
}

func TestLoadRejectsMissingRoot(t *testing.T) {
	doc := NewDocument()
	err := doc.Load([]byte(`<rect/>`))
	assert.ErrorIs(t, err, ErrNoRoot)
}

func TestLoadRejectsUnbalancedTags(t *testing.T) {
	doc := NewDocument()
	err := doc.Load([]byte(`<svg><rect>`))
	assert.ErrorIs(t, err, ErrUnbalancedTags)
}

func TestLoadClearLoadIsIdempotent(t *testing.T) {
	src := []byte(`<svg><rect id="a"/><rect id="b"/><g><rect id="c"/></g></svg>`)

	doc := NewDocument()
	require.NoError(t, doc.Load(src))
	firstCount := countElements(t, doc)

	doc.Clear()
	require.NoError(t, doc.Load(src))
	secondCount := countElements(t, doc)

	assert.Equal(t, firstCount, secondCount)
	for _, id := range []string{"a", "b", "c"} {
		_, ok := doc.tree.ElementByID(id)
		assert.True(t, ok, "id %q should be indexed after reload", id)
	}
}

// countElements walks the loaded tree via the same FirstChild/NextSibling
// linkage render.go's traversal uses.
func countElements(t *testing.T, doc *Document) int {
	t.Helper()
	var walk func(e *tree.Element) int
	walk = func(e *tree.Element) int {
		if e == nil {
			return 0
		}
		n := 1
		for c := e.FirstChild; c != nil; c = c.NextSibling {
			n += walk(c)
		}
		return n
	}
	return walk(doc.tree.Root)
}
