package downsample

import (
	"errors"
	"math"

	"github.com/nfnt/resize"

	"github.com/katalvlaran/glyphart/bitmap"
)

// Sentinel errors for downsampling. Deterministic functions of input;
// reported synchronously and never retried.
var (
	// ErrInvalidDimensions indicates a non-positive source dimension or target width.
	ErrInvalidDimensions = errors.New("downsample: source dimensions and target width must be positive")
	// ErrEmptyCanvas indicates the computed target height rounds to zero.
	ErrEmptyCanvas = errors.New("downsample: target height rounds to zero")
	// ErrNilBitmap indicates a nil source bitmap.
	ErrNilBitmap = errors.New("downsample: nil source bitmap")
)

// GlyphAspectFactor compensates for glyphs being visually taller than wide:
// the sampled field gets 0.55 rows per square-pixel row so the rendered
// document keeps the source's perceived aspect ratio.
const GlyphAspectFactor = 0.55

// samplePixelBytes is the RGBA quadruple width of the field buffer.
const samplePixelBytes = 4

// Field is a targetWidth × targetHeight grid of RGBA samples, one per
// future glyph cell. Immutable once produced; run-scoped like its source.
type Field struct {
	w, h int
	pix  []uint8 // interleaved RGBA, len = w*h*4
}

// TargetHeight computes the sampled row count for a source of srcW×srcH
// pixels rendered at targetWidth columns:
//
//	targetHeight = floor(targetWidth · srcH/srcW · GlyphAspectFactor)
//
// Returns ErrInvalidDimensions when any input is non-positive and
// ErrEmptyCanvas when the height rounds to zero.
// Complexity: O(1).
func TargetHeight(srcW, srcH, targetWidth int) (int, error) {
	if srcW <= 0 || srcH <= 0 || targetWidth <= 0 {
		return 0, ErrInvalidDimensions
	}
	th := int(math.Floor(float64(targetWidth) * float64(srcH) / float64(srcW) * GlyphAspectFactor))
	if th == 0 {
		return 0, ErrEmptyCanvas
	}

	return th, nil
}

// Resample scales bm into a targetWidth × TargetHeight field of RGBA
// samples using bilinear filtering. Each output cell maps deterministically
// to a rectangular region of the source; identical inputs always produce an
// identical field.
// Complexity: O(W×H) time, O(targetWidth×targetHeight) memory.
func Resample(bm *bitmap.RawBitmap, targetWidth int) (*Field, error) {
	if bm == nil {
		return nil, ErrNilBitmap
	}
	th, err := TargetHeight(bm.Width(), bm.Height(), targetWidth)
	if err != nil {
		return nil, err
	}

	scaled := resize.Resize(uint(targetWidth), uint(th), bm, resize.Bilinear)

	f := &Field{
		w:   targetWidth,
		h:   th,
		pix: make([]uint8, targetWidth*th*samplePixelBytes),
	}
	bounds := scaled.Bounds()
	for y := 0; y < th; y++ {
		for x := 0; x < targetWidth; x++ {
			r, g, b, a := scaled.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := (y*f.w + x) * samplePixelBytes
			f.pix[off] = uint8(r >> 8)
			f.pix[off+1] = uint8(g >> 8)
			f.pix[off+2] = uint8(b >> 8)
			f.pix[off+3] = uint8(a >> 8)
		}
	}

	return f, nil
}

// Width returns the field's column count. Complexity: O(1).
func (f *Field) Width() int { return f.w }

// Height returns the field's row count. Complexity: O(1).
func (f *Field) Height() int { return f.h }

// RGBAAt returns the sampled channels at cell (x,y). No bounds checking;
// callers iterate within [0,Width)×[0,Height).
func (f *Field) RGBAAt(x, y int) (r, g, b, a uint8) {
	off := (y*f.w + x) * samplePixelBytes

	return f.pix[off], f.pix[off+1], f.pix[off+2], f.pix[off+3]
}
