package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/glyphart/artdoc"
	"github.com/katalvlaran/glyphart/bitmap"
	"github.com/katalvlaran/glyphart/downsample"
	"github.com/katalvlaran/glyphart/glyph"
)

// ErrNilBitmap indicates a generation run was requested without a decoded
// source bitmap (decoding is the caller's precondition, not ours).
var ErrNilBitmap = errors.New("pipeline: nil source bitmap")

// DefaultTargetWidth matches the reference surface's default column count.
const DefaultTargetWidth = 100

// RenderConfig is the caller-owned configuration threaded into each
// generation run. It has no persisted identity.
type RenderConfig struct {
	// CharacterCycle is the ordered character sequence for brightness
	// levels; blank falls back to the glyph package default.
	CharacterCycle string
	// Invert flips the brightness axis.
	Invert bool
	// TargetWidth is the output column count, ≥ 1. The reference UI limits
	// its slider to [50,300]; the core validates only positivity and fails
	// explicitly rather than clamping out-of-range programmatic values.
	TargetWidth int
}

// DefaultRenderConfig returns the default cycle, no inversion and
// DefaultTargetWidth columns.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		CharacterCycle: glyph.DefaultCycle,
		TargetWidth:    DefaultTargetWidth,
	}
}

// Validate rejects non-positive target widths with
// downsample.ErrInvalidDimensions. Complexity: O(1).
func (c RenderConfig) Validate() error {
	if c.TargetWidth < 1 {
		return fmt.Errorf("target width %d: %w", c.TargetWidth, downsample.ErrInvalidDimensions)
	}

	return nil
}

// glyphConfig projects the run configuration onto the glyph stage.
func (c RenderConfig) glyphConfig() glyph.Config {
	return glyph.Config{CharacterCycle: c.CharacterCycle, Invert: c.Invert}
}

// Outcome is the result of an asynchronous generation run.
type Outcome struct {
	Doc *artdoc.Document
	Err error
}

// Renderer runs generation requests one at a time and publishes the latest
// complete document atomically. The zero value is not ready; use
// NewRenderer.
type Renderer struct {
	mu     sync.Mutex // single-flight: one run in flight, queued in order
	latest atomic.Pointer[artdoc.Document]
}

// NewRenderer returns a Renderer with no published document.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render executes one synchronous generation pass: validate, downsample,
// map, assemble. Concurrent calls queue behind the single-flight guard and
// run in request order. On success the produced document supersedes the
// previously published one atomically; on any failure the previous
// document stays visible untouched.
//
// Determinism: identical (bitmap, config) always yield an identical
// document. Complexity: O(W×H + targetWidth×targetHeight).
func (r *Renderer) Render(ctx context.Context, bm *bitmap.RawBitmap, cfg RenderConfig) (*artdoc.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if bm == nil {
		return nil, ErrNilBitmap
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	field, err := downsample.Resample(bm, cfg.TargetWidth)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := artdoc.Assemble(field, cfg.glyphConfig())
	if err != nil {
		return nil, err
	}

	r.latest.Store(doc)

	return doc, nil
}

// Latest returns the last successfully published document, or nil when no
// run has completed yet. Never a partial result.
func (r *Renderer) Latest() *artdoc.Document {
	return r.latest.Load()
}

// Dispatch submits a generation run on the async task boundary and returns
// a channel that delivers exactly one Outcome when the run completes. The
// run itself still obeys the single-flight guard.
func (r *Renderer) Dispatch(ctx context.Context, bm *bitmap.RawBitmap, cfg RenderConfig) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		doc, err := r.Render(ctx, bm, cfg)
		ch <- Outcome{Doc: doc, Err: err}
		close(ch)
	}()

	return ch
}
