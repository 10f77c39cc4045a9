package render_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glyphart/artdoc"
	"github.com/katalvlaran/glyphart/bitmap"
	"github.com/katalvlaran/glyphart/downsample"
	"github.com/katalvlaran/glyphart/glyph"
	"github.com/katalvlaran/glyphart/render"
)

// testDocument assembles a small gradient document for export tests.
func testDocument(t *testing.T) *artdoc.Document {
	t.Helper()
	pix := make([]uint8, 16*16*4)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			off := (y*16 + x) * 4
			level := uint8(x * 16)
			pix[off], pix[off+1], pix[off+2], pix[off+3] = level, level, level, 255
		}
	}
	bm, err := bitmap.New(16, 16, pix)
	require.NoError(t, err)
	f, err := downsample.Resample(bm, 8)
	require.NoError(t, err)
	doc, err := artdoc.Assemble(f, glyph.DefaultConfig())
	require.NoError(t, err)

	return doc
}

// TestHTML_SpansCarryStyle: every cell is an inline-styled span with its
// opacity and font weight, and rows survive as line breaks.
func TestHTML_SpansCarryStyle(t *testing.T) {
	doc := testDocument(t)
	markup, err := render.HTML(doc, render.DefaultStyleParams())
	require.NoError(t, err)

	require.Equal(t, doc.Width()*doc.Height(), strings.Count(markup, "<span "))
	require.Contains(t, markup, "font-weight:")
	require.Contains(t, markup, "opacity:")

	first := doc.CellAt(0, 0)
	require.Contains(t, markup,
		fmt.Sprintf("<span style=\"font-weight:%d;opacity:%.3f\">", first.Weight, first.Opacity))

	pre := markup[strings.Index(markup, "<pre"):strings.Index(markup, "</pre>")]
	require.Equal(t, doc.Height()+1, strings.Count(pre, "\n"), "one line break per row inside <pre>")
}

// TestHTML_Modes: same cell markup, different stylesheet branch.
func TestHTML_Modes(t *testing.T) {
	doc := testDocument(t)

	download, err := render.HTML(doc, render.StyleParams{ViewportWidth: 800, Mode: render.ModeDownload, Title: "t"})
	require.NoError(t, err)
	printable, err := render.HTML(doc, render.StyleParams{ViewportWidth: 800, Mode: render.ModePrint, Title: "t"})
	require.NoError(t, err)

	require.NotContains(t, download, "@media print")
	require.Contains(t, printable, "@media print")

	// The glyph body is identical in both modes.
	body := func(s string) string { return s[strings.Index(s, "<body>"):] }
	require.Equal(t, body(download), body(printable))
}

// TestHTML_FontSizeHint: font size = viewport width / column count.
func TestHTML_FontSizeHint(t *testing.T) {
	p := render.StyleParams{ViewportWidth: 1000}
	require.InDelta(t, 10.0, p.FontSize(100), 1e-9)
	require.InDelta(t, render.DefaultViewportWidth, render.StyleParams{}.FontSize(1), 1e-9)

	doc := testDocument(t)
	markup, err := render.HTML(doc, render.StyleParams{ViewportWidth: 800})
	require.NoError(t, err)
	require.Contains(t, markup, fmt.Sprintf("font-size: %.2fpx", 800.0/float64(doc.Width())))
}

// TestHTML_EscapesContent: markup-significant characters cannot break out.
func TestHTML_EscapesContent(t *testing.T) {
	pix := make([]uint8, 8*8*4)
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 255
	}
	bm, err := bitmap.New(8, 8, pix)
	require.NoError(t, err)
	f, err := downsample.Resample(bm, 4)
	require.NoError(t, err)
	doc, err := artdoc.Assemble(f, glyph.Config{CharacterCycle: "<&>"})
	require.NoError(t, err)

	markup, err := render.HTML(doc, render.StyleParams{Title: "<script>"})
	require.NoError(t, err)
	require.Contains(t, markup, "<title>&lt;script&gt;</title>")
	require.Contains(t, markup, ">&lt;</span>")
	require.NotContains(t, markup, "><</span>")
}

// TestHTML_Deterministic: identical document and params, byte-identical markup.
func TestHTML_Deterministic(t *testing.T) {
	doc := testDocument(t)
	p := render.DefaultStyleParams()
	m1, err := render.HTML(doc, p)
	require.NoError(t, err)
	m2, err := render.HTML(doc, p)
	require.NoError(t, err)
	require.Equal(t, m1, m2)
}

// TestHTML_NilDocument surfaces the sentinel.
func TestHTML_NilDocument(t *testing.T) {
	_, err := render.HTML(nil, render.DefaultStyleParams())
	require.ErrorIs(t, err, render.ErrNilDocument)
}

//----------------------------------------------------------------------------//
// Present Tests
//----------------------------------------------------------------------------//

// blockedSurface simulates the reference's blocked print popup.
type blockedSurface struct{}

func (blockedSurface) Open() (io.Writer, error) {
	return nil, errors.New("popup blocked")
}

// TestPresent_WritesMarkup streams the full document into the surface.
func TestPresent_WritesMarkup(t *testing.T) {
	doc := testDocument(t)
	var buf bytes.Buffer
	require.NoError(t, render.Present(doc, render.DefaultStyleParams(), render.WriterSurface{W: &buf}))

	want, err := render.HTML(doc, render.DefaultStyleParams())
	require.NoError(t, err)
	require.Equal(t, want, buf.String())
}

// TestPresent_Unavailable: a surface that cannot open yields the sentinel
// and leaves the computed document untouched.
func TestPresent_Unavailable(t *testing.T) {
	doc := testDocument(t)
	before := doc.String()

	err := render.Present(doc, render.DefaultStyleParams(), blockedSurface{})
	require.ErrorIs(t, err, render.ErrPresentationUnavailable)
	require.Equal(t, before, doc.String(), "document must survive a presentation failure")
}

// TestWriterSurface_NoWriter: an unattached surface refuses to open.
func TestWriterSurface_NoWriter(t *testing.T) {
	err := render.Present(testDocument(t), render.DefaultStyleParams(), render.WriterSurface{})
	require.ErrorIs(t, err, render.ErrPresentationUnavailable)
}

// TestFileSurface_RoundTrip: Present through a FileSurface lands the exact
// markup on disk; an uncreatable path maps to the presentation sentinel.
func TestFileSurface_RoundTrip(t *testing.T) {
	doc := testDocument(t)
	path := filepath.Join(t.TempDir(), "art.html")

	s := &render.FileSurface{Path: path}
	require.NoError(t, render.Present(doc, render.DefaultStyleParams(), s))
	require.NoError(t, s.Close())

	want, err := render.HTML(doc, render.DefaultStyleParams())
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, string(got))

	bad := &render.FileSurface{Path: filepath.Join(path, "nested", "x.html")}
	err = render.Present(doc, render.DefaultStyleParams(), bad)
	require.ErrorIs(t, err, render.ErrPresentationUnavailable)
	require.NoError(t, bad.Close())
}
