// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// lookupNamedColor resolves an SVG/CSS named color case-insensitively,
// the same table cogentcore.org/core/color.go builds its FromString
// lookup on (golang.org/x/image/colornames.Map), per SPEC_FULL.md 4.B.
func lookupNamedColor(name []byte) (color.RGBA, bool) {
	low := strings.ToLower(string(name))
	rgba, ok := colornames.Map[low]
	return rgba, ok
}
