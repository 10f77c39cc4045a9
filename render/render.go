package render

import (
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/glyphart/artdoc"
)

// Sentinel errors for export and presentation.
var (
	// ErrNilDocument indicates export was requested without a document.
	ErrNilDocument = errors.New("render: nil document")
	// ErrPresentationUnavailable indicates the presentation surface refused
	// to open (e.g., a blocked print window). External failure, passed
	// through unchanged; the computed document survives it.
	ErrPresentationUnavailable = errors.New("render: presentation surface unavailable")
)

// Mode selects the stylesheet branch of the exported markup.
type Mode int

const (
	// ModeDownload produces a standalone static document.
	ModeDownload Mode = iota
	// ModePrint produces the same markup with a print-media stylesheet.
	ModePrint
)

// DefaultViewportWidth is the CSS-pixel width assumed when the caller
// supplies no viewport hint.
const DefaultViewportWidth = 1280.0

// StyleParams configures export.
type StyleParams struct {
	// ViewportWidth is the target surface width in CSS pixels; the
	// per-cell font size is ViewportWidth divided by the document's width.
	ViewportWidth float64
	// Mode chooses the download or print stylesheet branch.
	Mode Mode
	// Title becomes the document title (escaped).
	Title string
}

// DefaultStyleParams returns download-mode parameters with the default
// viewport width.
func DefaultStyleParams() StyleParams {
	return StyleParams{ViewportWidth: DefaultViewportWidth, Mode: ModeDownload, Title: "glyphart"}
}

// FontSize returns the font-size hint in CSS pixels for a document of
// cols columns: viewport width divided by the column count.
func (p StyleParams) FontSize(cols int) float64 {
	vw := p.ViewportWidth
	if vw <= 0 {
		vw = DefaultViewportWidth
	}
	if cols < 1 {
		cols = 1
	}

	return vw / float64(cols)
}

// estBytesPerCell pregrows the builder: tag, two style numbers, one glyph.
const estBytesPerCell = 56

// HTML serializes doc into a standalone markup document. Every cell is an
// inline-styled span carrying its opacity and font weight; each row ends
// in a line break inside a <pre> block so row order survives verbatim.
// Deterministic: identical (doc, params) yield byte-identical markup.
// Complexity: O(width×height).
func HTML(doc *artdoc.Document, p StyleParams) (string, error) {
	if doc == nil {
		return "", ErrNilDocument
	}

	var sb strings.Builder
	sb.Grow(doc.Width()*doc.Height()*estBytesPerCell + 1024)

	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	sb.WriteString(html.EscapeString(p.Title))
	sb.WriteString("</title>\n<style>\n")
	writeStylesheet(&sb, p, doc.Width())
	sb.WriteString("</style>\n</head>\n<body>\n<pre class=\"glyphart\">\n")

	for y := 0; y < doc.Height(); y++ {
		row := doc.Row(y)
		for x := range row {
			c := row[x]
			fmt.Fprintf(&sb, "<span style=\"font-weight:%d;opacity:%.3f\">%s</span>",
				c.Weight, c.Opacity, html.EscapeString(string(c.Char)))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("</pre>\n</body>\n</html>\n")

	return sb.String(), nil
}

// writeStylesheet emits the shared base rules plus the mode's branch.
func writeStylesheet(sb *strings.Builder, p StyleParams, cols int) {
	fmt.Fprintf(sb, "pre.glyphart { font-family: monospace; font-size: %.2fpx; line-height: 1; letter-spacing: 0; }\n", p.FontSize(cols))
	switch p.Mode {
	case ModePrint:
		sb.WriteString("@media print { body { margin: 0; } pre.glyphart { page-break-inside: avoid; } }\n")
	default:
		sb.WriteString("body { background: #ffffff; color: #000000; margin: 1em; }\n")
	}
}

// Surface is the presentation collaborator an exported document is sent to:
// a file sink, a print target, anything that can accept markup text.
type Surface interface {
	// Open prepares the target and returns the writer to stream markup into.
	Open() (io.Writer, error)
}

// Present serializes doc under p and streams it into s. A surface that
// cannot open — or fails mid-write — yields ErrPresentationUnavailable;
// doc itself is untouched either way.
func Present(doc *artdoc.Document, p StyleParams, s Surface) error {
	markup, err := HTML(doc, p)
	if err != nil {
		return err
	}
	w, err := s.Open()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPresentationUnavailable, err)
	}
	if _, err = io.WriteString(w, markup); err != nil {
		return fmt.Errorf("%w: %v", ErrPresentationUnavailable, err)
	}

	return nil
}

// WriterSurface adapts any io.Writer into a download-style Surface.
type WriterSurface struct {
	W io.Writer
}

// Open implements Surface.
func (s WriterSurface) Open() (io.Writer, error) {
	if s.W == nil {
		return nil, errors.New("render: no writer attached")
	}

	return s.W, nil
}

// FileSurface is a download-style Surface backed by a file at Path,
// created (or truncated) on Open. Call Close after Present to flush the
// handle.
type FileSurface struct {
	Path string

	f *os.File
}

// Open implements Surface.
func (s *FileSurface) Open() (io.Writer, error) {
	f, err := os.Create(s.Path)
	if err != nil {
		return nil, err
	}
	s.f = f

	return f, nil
}

// Close releases the underlying file handle. Safe to call when Open
// never succeeded.
func (s *FileSurface) Close() error {
	if s.f == nil {
		return nil
	}

	return s.f.Close()
}
