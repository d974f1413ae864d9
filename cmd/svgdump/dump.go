// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/vglyph/otsvg"
	"github.com/vglyph/otsvg/geom"
	"github.com/vglyph/otsvg/values"
)

// dumpCanvas writes a bracketed, indented trace of every Canvas call to
// w -- a Go rendering of otfsvg-dump.c's writeFill/writeStroke/pushGroup/
// popGroup family. Image calls are left as NopCanvas no-ops, matching the
// original dump tool's canvas (decode_image and draw_image are both NULL
// there too).
type dumpCanvas struct {
	otsvg.NopCanvas
	w      io.Writer
	indent int
}

func newDumpCanvas(w io.Writer) *dumpCanvas { return &dumpCanvas{w: w} }

func (d *dumpCanvas) openBranch(name string) {
	d.writeIndent()
	fmt.Fprintf(d.w, "%s {\n", name)
	d.indent += 4
}

func (d *dumpCanvas) closeBranch() {
	d.indent -= 4
	d.writeIndent()
	fmt.Fprint(d.w, "}\n")
}

func (d *dumpCanvas) writeIndent() {
	for i := 0; i < d.indent; i++ {
		fmt.Fprint(d.w, " ")
	}
}

func (d *dumpCanvas) writeLine(format string, args ...any) {
	d.writeIndent()
	fmt.Fprintf(d.w, format, args...)
	fmt.Fprint(d.w, "\n")
}

func (d *dumpCanvas) writePath(path *geom.Path) {
	d.writeIndent()
	fmt.Fprint(d.w, "path : ")
	i := 0
	for _, cmd := range path.Commands {
		switch cmd {
		case geom.MoveTo:
			p := path.Points[i]
			fmt.Fprintf(d.w, "M%g %g", p.X, p.Y)
			i++
		case geom.LineTo:
			p := path.Points[i]
			fmt.Fprintf(d.w, "L%g %g", p.X, p.Y)
			i++
		case geom.CubicTo:
			c1, c2, e := path.Points[i], path.Points[i+1], path.Points[i+2]
			fmt.Fprintf(d.w, "C%g %g %g %g %g %g", c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y)
			i += 3
		case geom.Close:
			fmt.Fprint(d.w, "Z")
		}
	}
	fmt.Fprint(d.w, "\n")
}

func (d *dumpCanvas) writeTransform(m geom.Matrix2) {
	d.writeLine("transform : matrix(%g %g %g %g %g %g)", m.XX, m.YX, m.XY, m.YY, m.X0, m.Y0)
}

func (d *dumpCanvas) writeColor(c otsvg.ResolvedPaint) {
	d.writeLine("color : rgba(%d %d %d %d)", c.Color.R, c.Color.G, c.Color.B, c.Color.A)
}

func (d *dumpCanvas) writePaint(paint otsvg.ResolvedPaint) {
	if paint.Kind != otsvg.ResolvedPaintGradient {
		d.writeColor(paint)
		return
	}
	grad := paint.Gradient
	if grad.Kind == otsvg.GradientLinear {
		d.openBranch("linear-gradient")
		d.writeLine("points : %g %g %g %g", grad.X1, grad.Y1, grad.X2, grad.Y2)
	} else {
		d.openBranch("radial-gradient")
		d.writeLine("points : %g %g %g %g %g", grad.CX, grad.CY, grad.R, grad.FX, grad.FY)
	}
	d.writeTransform(grad.Matrix)
	spread := "pad"
	switch grad.Spread {
	case values.SpreadReflect:
		spread = "reflect"
	case values.SpreadRepeat:
		spread = "repeat"
	}
	d.writeLine("spread-method : %s", spread)
	for _, stop := range grad.Stops {
		d.openBranch("stop")
		d.writeLine("offset : %g", stop.Offset)
		d.writeColor(otsvg.ResolvedPaint{Color: stop.Color})
		d.closeBranch()
	}
	d.closeBranch()
}

func (d *dumpCanvas) FillPath(path *geom.Path, matrix geom.Matrix2, rule otsvg.FillRule, paint otsvg.ResolvedPaint) error {
	d.openBranch("fill")
	d.writePath(path)
	d.writeTransform(matrix)
	ruleName := "non-zero"
	if rule == otsvg.FillRuleEvenOdd {
		ruleName = "even-odd"
	}
	d.writeLine("fill-rule : %s", ruleName)
	d.writePaint(paint)
	d.closeBranch()
	return nil
}

func (d *dumpCanvas) StrokePath(path *geom.Path, matrix geom.Matrix2, stroke otsvg.StrokeData, paint otsvg.ResolvedPaint) error {
	d.openBranch("stroke")
	d.writePath(path)
	d.writeTransform(matrix)
	d.writeLine("line-width : %g", stroke.Width)
	d.writeLine("line-cap : %s", lineCapName(stroke.LineCap))
	d.writeLine("line-join : %s", lineJoinName(stroke.LineJoin))
	d.writeLine("miter-limit : %g", stroke.MiterLimit)
	if len(stroke.DashArray) > 0 {
		d.writeLine("dash-offset : %g", stroke.DashOffset)
		d.writeIndent()
		fmt.Fprint(d.w, "dash-array : ")
		for _, v := range stroke.DashArray {
			fmt.Fprintf(d.w, "%g ", v)
		}
		fmt.Fprint(d.w, "\n")
	}
	d.writePaint(paint)
	d.closeBranch()
	return nil
}

func (d *dumpCanvas) PushGroup(opacity float32, blend otsvg.BlendMode) error {
	d.openBranch("group")
	d.writeLine("opacity : %g", opacity)
	d.writeLine("mode : %s", blendModeName(blend))
	return nil
}

func (d *dumpCanvas) PopGroup(opacity float32, blend otsvg.BlendMode) error {
	d.closeBranch()
	return nil
}

func lineCapName(c values.LineCap) string {
	switch c {
	case values.CapRound:
		return "round"
	case values.CapSquare:
		return "square"
	default:
		return "butt"
	}
}

func lineJoinName(j values.LineJoin) string {
	switch j {
	case values.JoinRound:
		return "round"
	case values.JoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

func blendModeName(m otsvg.BlendMode) string {
	if m == otsvg.BlendDstIn {
		return "dst-in"
	}
	return "src-over"
}
