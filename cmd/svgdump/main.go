// Copyright (c) 2026, The otsvg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command svgdump parses an SVG document and prints a bracketed,
// indented trace of every canvas call its render would issue -- a Go
// rendering of otfsvg-dump.c, extended with an optional PNG raster
// output mode for visual sanity-checking.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vglyph/otsvg"
	"github.com/vglyph/otsvg/geom"
)

// config holds the optional YAML sidecar file's settings -- fallback
// viewport size for percent-sized roots without a viewBox, DPI for
// absolute-unit resolution, and a var(--name) palette table.
type config struct {
	FallbackWidth  float32           `yaml:"fallback_width"`
	FallbackHeight float32           `yaml:"fallback_height"`
	DPI            float32           `yaml:"dpi"`
	CurrentColor   string            `yaml:"current_color"`
	Palette        map[string]string `yaml:"palette"`
}

func loadConfig(path string) (config, error) {
	cfg := config{FallbackWidth: 100, FallbackHeight: 100, DPI: 96, CurrentColor: "black"}
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("svgdump: read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("svgdump: parse config: %w", err)
	}
	return cfg, nil
}

func main() {
	var id, configPath, pngPath string

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		fmt.Fprint(flag.CommandLine.Output(), "  svgdump [flags] input.svg\n\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&id, "id", "", "render the element with this id instead of the document root")
	flag.StringVar(&configPath, "config", "", "path to a YAML config (fallback size, dpi, palette)")
	flag.StringVar(&pngPath, "png", "", "optional path to also write a rasterized PNG")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := loadConfig(configPath)
	if err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}

	src, err := os.ReadFile(input)
	if err != nil {
		logger.Error("read input", "err", err)
		os.Exit(1)
	}

	doc := otsvg.NewDocument(
		otsvg.WithFallbackSize(cfg.FallbackWidth, cfg.FallbackHeight),
		otsvg.WithDPI(cfg.DPI),
		otsvg.WithLogger(logger),
	)
	if err := doc.Load(src); err != nil {
		logger.Error("load", "err", err)
		os.Exit(1)
	}

	rect, err := doc.Rect(id)
	if err != nil {
		logger.Error("rect", "err", err)
		os.Exit(1)
	}

	palette := paletteFromConfig(cfg.Palette)
	currentColor := colorFromName(cfg.CurrentColor)

	trace := newDumpCanvas(os.Stdout)
	trace.openBranch("document")
	trace.writeLine("rect : %g %g %g %g", rect.X, rect.Y, rect.W, rect.H)
	trace.openBranch("element")
	if err := doc.Render(context.Background(), trace, palette, currentColor, id); err != nil {
		logger.Error("render", "err", err)
		os.Exit(1)
	}
	trace.closeBranch()
	trace.closeBranch()

	if pngPath != "" {
		if err := dumpPNG(doc, id, pngPath, palette, currentColor, rect); err != nil {
			logger.Error("png", "err", err)
			os.Exit(1)
		}
	}
}

func paletteFromConfig(table map[string]string) otsvg.PaletteFunc {
	if len(table) == 0 {
		return nil
	}
	return func(name string) (color.RGBA, bool) {
		hex, ok := table[name]
		if !ok {
			return color.RGBA{}, false
		}
		return colorFromName(hex), true
	}
}

// colorFromName parses a #rrggbb / #rrggbbaa hex string, defaulting to
// opaque black on anything else -- config-file colors are not expected
// to carry the full CSS named-color or functional-notation grammar that
// values.ParseColor handles for document content.
func colorFromName(s string) color.RGBA {
	var r, g, b, a uint8 = 0, 0, 0, 255
	if len(s) == 7 && s[0] == '#' {
		fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b)
	} else if len(s) == 9 && s[0] == '#' {
		fmt.Sscanf(s[1:], "%02x%02x%02x%02x", &r, &g, &b, &a)
	}
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func dumpPNG(doc *otsvg.Document, id, path string, palette otsvg.PaletteFunc, currentColor color.RGBA, rect geom.Rect) error {
	w, h := int(rect.W+rect.X+0.999), int(rect.H+rect.Y+0.999)
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	canvas := newRasterCanvas(image.Rect(0, 0, w, h))
	if err := doc.Render(context.Background(), canvas, palette, currentColor, id); err != nil {
		return fmt.Errorf("svgdump: render png: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svgdump: create png: %w", err)
	}
	defer f.Close()
	return png.Encode(f, canvas.Image())
}
