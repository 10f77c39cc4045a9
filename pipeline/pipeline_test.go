package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/glyphart/bitmap"
	"github.com/katalvlaran/glyphart/downsample"
	"github.com/katalvlaran/glyphart/pipeline"
	"github.com/katalvlaran/glyphart/render"
)

// gradientBitmap builds a w×h bitmap with a horizontal brightness ramp.
func gradientBitmap(t testing.TB, w, h int) *bitmap.RawBitmap {
	t.Helper()
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := (y*w + x) * 4
			level := uint8(x * 255 / (w - 1))
			pix[off], pix[off+1], pix[off+2], pix[off+3] = level, level, level, 255
		}
	}
	bm, err := bitmap.New(w, h, pix)
	require.NoError(t, err)

	return bm
}

// RendererSuite exercises the generation pipeline end to end.
type RendererSuite struct {
	suite.Suite
}

// TestGeometry verifies the reference geometry: 200×100 source at width 100
// yields a 100×27 document.
func (s *RendererSuite) TestGeometry() {
	bm := gradientBitmap(s.T(), 200, 100)
	r := pipeline.NewRenderer()

	doc, err := r.Render(context.Background(), bm, pipeline.DefaultRenderConfig())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 100, doc.Width())
	require.Equal(s.T(), 27, doc.Height())
}

// TestDeterminism runs the pipeline twice on the same bitmap and config and
// demands byte-identical documents and byte-identical exported markup.
func (s *RendererSuite) TestDeterminism() {
	bm := gradientBitmap(s.T(), 120, 60)
	cfg := pipeline.RenderConfig{CharacterCycle: "@%#*+=-:. ", TargetWidth: 60}
	r := pipeline.NewRenderer()

	d1, err := r.Render(context.Background(), bm, cfg)
	require.NoError(s.T(), err)
	d2, err := r.Render(context.Background(), bm, cfg)
	require.NoError(s.T(), err)

	require.Equal(s.T(), d1.String(), d2.String())
	for y := 0; y < d1.Height(); y++ {
		require.Equal(s.T(), d1.Row(y), d2.Row(y), "row %d", y)
	}

	m1, err := render.HTML(d1, render.DefaultStyleParams())
	require.NoError(s.T(), err)
	m2, err := render.HTML(d2, render.DefaultStyleParams())
	require.NoError(s.T(), err)
	require.Equal(s.T(), m1, m2)
}

// TestValidation: invalid inputs fail explicitly, nothing is clamped.
func (s *RendererSuite) TestValidation() {
	r := pipeline.NewRenderer()
	ctx := context.Background()
	bm := gradientBitmap(s.T(), 50, 50)

	_, err := r.Render(ctx, nil, pipeline.DefaultRenderConfig())
	require.ErrorIs(s.T(), err, pipeline.ErrNilBitmap)

	_, err = r.Render(ctx, bm, pipeline.RenderConfig{TargetWidth: 0})
	require.ErrorIs(s.T(), err, downsample.ErrInvalidDimensions)

	_, err = r.Render(ctx, bm, pipeline.RenderConfig{TargetWidth: -7})
	require.ErrorIs(s.T(), err, downsample.ErrInvalidDimensions)
}

// TestEmptyCanvas: a 1000×1 source at width 1 rounds to zero rows and must
// surface ErrEmptyCanvas instead of a blank document.
func (s *RendererSuite) TestEmptyCanvas() {
	bm := gradientBitmap(s.T(), 1000, 1)
	r := pipeline.NewRenderer()

	_, err := r.Render(context.Background(), bm, pipeline.RenderConfig{TargetWidth: 1})
	require.ErrorIs(s.T(), err, downsample.ErrEmptyCanvas)
	require.Nil(s.T(), r.Latest(), "no document may be published on failure")
}

// TestLatestPublishing: the published document is replaced only by a
// successful run and never by a failing one.
func (s *RendererSuite) TestLatestPublishing() {
	bm := gradientBitmap(s.T(), 100, 50)
	r := pipeline.NewRenderer()
	ctx := context.Background()

	require.Nil(s.T(), r.Latest())

	doc, err := r.Render(ctx, bm, pipeline.DefaultRenderConfig())
	require.NoError(s.T(), err)
	require.Same(s.T(), doc, r.Latest())

	_, err = r.Render(ctx, bm, pipeline.RenderConfig{TargetWidth: 0})
	require.Error(s.T(), err)
	require.Same(s.T(), doc, r.Latest(), "failed run must not disturb the published document")

	next, err := r.Render(ctx, bm, pipeline.RenderConfig{CharacterCycle: "xy", TargetWidth: 50})
	require.NoError(s.T(), err)
	require.Same(s.T(), next, r.Latest(), "each success supersedes atomically")
}

// TestDispatch: submit-and-await over the async boundary delivers exactly
// one outcome.
func (s *RendererSuite) TestDispatch() {
	bm := gradientBitmap(s.T(), 80, 40)
	r := pipeline.NewRenderer()

	out := <-r.Dispatch(context.Background(), bm, pipeline.DefaultRenderConfig())
	require.NoError(s.T(), out.Err)
	require.NotNil(s.T(), out.Doc)
	require.Equal(s.T(), 100, out.Doc.Width())

	// The channel is closed after its single outcome.
	_, open := <-r.Dispatch(context.Background(), bm, pipeline.DefaultRenderConfig())
	require.True(s.T(), open)
}

// TestCancelledContext: an already-cancelled context aborts before work.
func (s *RendererSuite) TestCancelledContext() {
	bm := gradientBitmap(s.T(), 80, 40)
	r := pipeline.NewRenderer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Render(ctx, bm, pipeline.DefaultRenderConfig())
	require.ErrorIs(s.T(), err, context.Canceled)
	require.Nil(s.T(), r.Latest())
}

func TestRendererSuite(t *testing.T) {
	suite.Run(t, new(RendererSuite))
}

// TestRenderConfig_Defaults pins the documented defaults.
func TestRenderConfig_Defaults(t *testing.T) {
	cfg := pipeline.DefaultRenderConfig()
	require.Equal(t, pipeline.DefaultTargetWidth, cfg.TargetWidth)
	require.Equal(t, "01", cfg.CharacterCycle)
	require.False(t, cfg.Invert)
	require.NoError(t, cfg.Validate())
}
