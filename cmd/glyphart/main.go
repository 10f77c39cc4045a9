// Command glyphart renders an image into a glyph-art document: decode,
// downsample, map, assemble, export. HTML by default, plain text on demand.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/katalvlaran/glyphart/bitmap"
	"github.com/katalvlaran/glyphart/pipeline"
	"github.com/katalvlaran/glyphart/render"
)

// Slider range of the reference surface. The CLI clamps into it before
// invoking the core; the core itself only validates positivity.
const (
	sliderMinWidth = 50
	sliderMaxWidth = 300
)

type options struct {
	Width    int     `short:"w" long:"width" description:"Output width in characters (clamped to 50-300)" default:"100"`
	Cycle    string  `short:"c" long:"cycle" description:"Character cycle for brightness levels" default:"01"`
	Invert   bool    `short:"i" long:"invert" description:"Invert the brightness axis"`
	Output   string  `short:"o" long:"out" description:"File to write the document to (default stdout)"`
	Print    bool    `long:"print" description:"Emit the print-media stylesheet branch"`
	Viewport float64 `long:"viewport" description:"Viewport width hint in CSS pixels" default:"1280"`
	Text     bool    `long:"text" description:"Emit a plain-text preview instead of HTML"`

	Args struct {
		Image string `positional-arg-name:"IMAGE" description:"Input image (png, jpeg, gif, bmp, webp)"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}
	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "glyphart:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	f, err := os.Open(opts.Args.Image)
	if err != nil {
		return err
	}
	defer f.Close()

	bm, err := bitmap.Decode(f)
	if err != nil {
		return err
	}

	cfg := pipeline.RenderConfig{
		CharacterCycle: opts.Cycle,
		Invert:         opts.Invert,
		TargetWidth:    clampWidth(opts.Width),
	}
	doc, err := pipeline.NewRenderer().Render(context.Background(), bm, cfg)
	if err != nil {
		return err
	}

	out, closeOut, err := outputWriter(opts.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	if opts.Text {
		_, err = io.WriteString(out, doc.String())

		return err
	}

	params := render.StyleParams{
		ViewportWidth: opts.Viewport,
		Mode:          render.ModeDownload,
		Title:         opts.Args.Image,
	}
	if opts.Print {
		params.Mode = render.ModePrint
	}

	return render.Present(doc, params, render.WriterSurface{W: out})
}

func clampWidth(w int) int {
	if w < sliderMinWidth {
		return sliderMinWidth
	}
	if w > sliderMaxWidth {
		return sliderMaxWidth
	}

	return w
}

func outputWriter(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}
