// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseViewBox(t *testing.T) {
	r, ok := ParseViewBox([]byte("0 0 100 50"))
	assert.True(t, ok)
	assert.Equal(t, float32(100), r.W)
	assert.Equal(t, float32(50), r.H)
}

func TestParseViewBoxCommaSeparated(t *testing.T) {
	r, ok := ParseViewBox([]byte("10, 20, 30, 40"))
	assert.True(t, ok)
	assert.Equal(t, float32(10), r.X)
	assert.Equal(t, float32(20), r.Y)
}

func TestParseViewBoxRejectsZeroSize(t *testing.T) {
	_, ok := ParseViewBox([]byte("0 0 0 50"))
	assert.False(t, ok)
}

func TestParseViewBoxRejectsMalformed(t *testing.T) {
	_, ok := ParseViewBox([]byte("0 0 100"))
	assert.False(t, ok)
}
