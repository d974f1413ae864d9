// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otsvg

import (
	"errors"

	"github.com/vglyph/otsvg/internal/xmlscan"
)

// ErrNoRoot is returned by Load when the document has no top-level <svg>
// element.
var ErrNoRoot = xmlscan.ErrNoRoot

// ErrMalformed is returned by Load for input that doesn't match the
// supported XML subset.
var ErrMalformed = xmlscan.ErrMalformed

// ErrUnbalancedTags is returned by Load when EOF is reached with an
// unbalanced element open/close count.
var ErrUnbalancedTags = xmlscan.ErrUnbalancedTags

// ErrPathMustStartWithMoveTo is returned when a <path> element's "d"
// attribute is present but does not begin with a moveto command.
var ErrPathMustStartWithMoveTo = errors.New("otsvg: path data must start with a moveto command")

// ErrNotLoaded is returned by Render/Rect when called before a successful
// Load.
var ErrNotLoaded = errors.New("otsvg: document has no loaded root element")

// ErrElementNotFound is returned when an id passed to Render or Rect
// does not resolve to any element in the loaded document.
var ErrElementNotFound = errors.New("otsvg: no element with the given id")
