// Package glyphart turns bitmaps into grids of styled text glyphs whose
// visual weight — character choice, font weight, opacity — tracks the
// image's local brightness.
//
// 🚀 What is glyphart?
//
//	A deterministic rendering pipeline built from small, composable stages:
//		• bitmap:     decode an image into an immutable RGBA buffer
//		• downsample: resample to a character-grid resolution (glyph-aspect aware)
//		• glyph:      luminance → (character, font-weight, opacity) mapping
//		• artdoc:     row-major assembly into a complete glyph-art document
//		• render:     HTML export — downloadable or print-ready markup
//		• pipeline:   single-flight orchestration with an async task boundary
//		• gridlabel:  companion fixed-grid labeling tool (separate collaborator)
//
// ✨ Why choose glyphart?
//
//   - Deterministic – identical input and config always yield identical output
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Explicit errors – sentinel values, no silent clamping, no partial documents
//   - Pure numeric core – no cgo, no hidden state, no randomness in the pipeline
//
// Data flows strictly left to right; no stage reads back from a downstream one:
//
//	bitmap ──▶ downsample ──▶ glyph ──▶ artdoc ──▶ render
//
// Quick example:
//
//	bm, _ := bitmap.Decode(file)
//	r := pipeline.NewRenderer()
//	doc, err := r.Render(ctx, bm, pipeline.DefaultRenderConfig())
//	if err != nil { ... }
//	markup, _ := render.HTML(doc, render.DefaultStyleParams())
//
// Dive into examples/ for runnable demos and each package's doc.go for the
// full contract.
//
//	go get github.com/katalvlaran/glyphart
package glyphart
