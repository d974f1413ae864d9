// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xmlscan parses the restricted XML subset this renderer
// supports -- elements, attributes, comments, CDATA, DOCTYPE, and the
// <?xml ...?> declaration (any other processing instruction is rejected
// as malformed), with no namespace resolution or entity
// expansion beyond what's needed to skip them -- directly into a
// tree.Document, without building a generic intermediate XML tree first.
//
// It is not a general XML parser: it is the minimum grammar the
// reference otfsvg document loader implements, expressed over
// tdewolff/parse/v2's buffered reader instead of hand-rolled pointer
// arithmetic.
package xmlscan
