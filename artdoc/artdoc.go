package artdoc

import (
	"errors"
	"strings"

	"github.com/katalvlaran/glyphart/downsample"
	"github.com/katalvlaran/glyphart/glyph"
)

// ErrNilField indicates assembly was requested without a sampled field.
var ErrNilField = errors.New("artdoc: nil sampled field")

// Document is a complete glyph-art document: rows of styled cells in source
// row order. Immutable once returned from Assemble.
type Document struct {
	width, height int
	rows          [][]glyph.Cell
}

// Assemble walks f in row-major order, converting each sampled pixel to a
// styled cell under cfg. Each cell's transform depends only on its own
// sample and the immutable config; the produced document always preserves
// source row order.
// Complexity: O(width×height).
func Assemble(f *downsample.Field, cfg glyph.Config) (*Document, error) {
	if f == nil {
		return nil, ErrNilField
	}
	cycle := cfg.Cycle()
	w, h := f.Width(), f.Height()

	rows := make([][]glyph.Cell, h)
	for y := 0; y < h; y++ {
		row := make([]glyph.Cell, w)
		for x := 0; x < w; x++ {
			r, g, b, _ := f.RGBAAt(x, y)
			eff := glyph.Effective(glyph.Luminance(r, g, b), cfg.Invert)
			row[x] = glyph.Map(eff, cycle)
		}
		rows[y] = row
	}

	return &Document{width: w, height: h, rows: rows}, nil
}

// Width returns the row length (cells per row). Complexity: O(1).
func (d *Document) Width() int { return d.width }

// Height returns the row count. Complexity: O(1).
func (d *Document) Height() int { return d.height }

// Row returns row y. Callers must not mutate the returned slice.
func (d *Document) Row(y int) []glyph.Cell { return d.rows[y] }

// CellAt returns the cell at column x of row y.
func (d *Document) CellAt(x, y int) glyph.Cell { return d.rows[y][x] }

// String renders a plain-text preview: one line per row, characters only
// (weight and opacity are dropped). Useful for terminals and tests.
func (d *Document) String() string {
	var sb strings.Builder
	sb.Grow(d.height * (d.width + 1))
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			sb.WriteRune(d.rows[y][x].Char)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
