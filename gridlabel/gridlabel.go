package gridlabel

import (
	"errors"
	"strings"
)

// Sentinel errors for grid construction and label placement.
var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("gridlabel: grid must have at least one row and one column")
	// ErrLabelOutOfBounds indicates a label anchored outside the grid.
	ErrLabelOutOfBounds = errors.New("gridlabel: label position out of range")
)

// Default grid geometry and fill alphabet.
const (
	DefaultWidth       = 40
	DefaultHeight      = 12
	DefaultPlaceholder = ".,:;+*"
)

// Label positions a text run on the grid.
type Label struct {
	Row, Col int
	Text     string
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Width and Height fix the grid size in cells.
	Width, Height int
	// Placeholder is the alphabet the random fill draws from; blank falls
	// back to DefaultPlaceholder.
	Placeholder string
	// Seed drives the deterministic fill; 0 selects the stable default seed.
	Seed int64
}

// DefaultOptions returns a 40×12 grid with the default placeholder alphabet
// and the stable default seed.
func DefaultOptions() Options {
	return Options{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Placeholder: DefaultPlaceholder,
	}
}

// Grid is a fixed-size rune grid. Construct with New; mutate only through
// Place.
type Grid struct {
	width, height int
	cells         [][]rune
}

// New builds a Width×Height grid filled from the placeholder alphabet by a
// seed-derived RNG. Returns ErrEmptyGrid for non-positive dimensions.
// Complexity: O(W×H) time and memory.
func New(opts Options) (*Grid, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrEmptyGrid
	}
	alphabet := []rune(opts.Placeholder)
	if strings.TrimSpace(opts.Placeholder) == "" {
		alphabet = []rune(DefaultPlaceholder)
	}

	rng := rngFromSeed(opts.Seed)
	cells := make([][]rune, opts.Height)
	for y := 0; y < opts.Height; y++ {
		row := make([]rune, opts.Width)
		for x := 0; x < opts.Width; x++ {
			row[x] = alphabet[rng.Intn(len(alphabet))]
		}
		cells[y] = row
	}

	return &Grid{width: opts.Width, height: opts.Height, cells: cells}, nil
}

// Width returns the grid's column count. Complexity: O(1).
func (g *Grid) Width() int { return g.width }

// Height returns the grid's row count. Complexity: O(1).
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (col,row) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// Place writes labels onto the grid in argument order: later labels
// overwrite earlier ones (last write wins, deterministic given call
// order), and text running past the right edge is clipped. A label whose
// anchor cell lies outside the grid yields ErrLabelOutOfBounds and leaves
// the grid unchanged.
// Complexity: O(total label length).
func (g *Grid) Place(labels ...Label) error {
	for _, l := range labels {
		if !g.InBounds(l.Col, l.Row) {
			return ErrLabelOutOfBounds
		}
	}
	for _, l := range labels {
		x := l.Col
		for _, ch := range l.Text {
			if x >= g.width {
				break
			}
			g.cells[l.Row][x] = ch
			x++
		}
	}

	return nil
}

// String renders the grid, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for y := 0; y < g.height; y++ {
		sb.WriteString(string(g.cells[y]))
		sb.WriteByte('\n')
	}

	return sb.String()
}
