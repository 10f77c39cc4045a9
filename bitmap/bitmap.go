package bitmap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	// Register the decoders the reference surface accepts. Additional formats
	// can be registered by importing their decoder package for side effects.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Sentinel errors for bitmap construction and decoding.
var (
	// ErrDecode indicates the supplied bytes are not a decodable image.
	ErrDecode = errors.New("bitmap: image decode failed")
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("bitmap: width and height must be positive")
	// ErrPixelBuffer indicates the pixel buffer length does not match W×H×4.
	ErrPixelBuffer = errors.New("bitmap: pixel buffer length must equal width*height*4")
)

// bytesPerPixel is the RGBA quadruple width of the backing buffer.
const bytesPerPixel = 4

// RawBitmap is an immutable decoded pixel buffer: Width×Height RGBA
// quadruples, each channel in [0,255]. It implements image.Image so
// resampling code can consume it directly.
type RawBitmap struct {
	w, h int
	pix  []uint8 // interleaved RGBA, len = w*h*4
}

// New constructs a RawBitmap from raw interleaved RGBA data.
// The pixel slice is copied to guarantee immutability.
// Returns ErrInvalidDimensions or ErrPixelBuffer on malformed input.
// Complexity: O(W×H).
func New(w, h int, pix []uint8) (*RawBitmap, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(pix) != w*h*bytesPerPixel {
		return nil, ErrPixelBuffer
	}
	cp := make([]uint8, len(pix))
	copy(cp, pix)

	return &RawBitmap{w: w, h: h, pix: cp}, nil
}

// FromImage copies an already-decoded image into a RawBitmap.
// Returns ErrInvalidDimensions if the image has an empty bounds rectangle.
// Complexity: O(W×H).
func FromImage(img image.Image) (*RawBitmap, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	pix := make([]uint8, w*h*bytesPerPixel)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := (y*w + x) * bytesPerPixel
			pix[off] = uint8(r >> 8)
			pix[off+1] = uint8(g >> 8)
			pix[off+2] = uint8(b >> 8)
			pix[off+3] = uint8(a >> 8)
		}
	}

	return &RawBitmap{w: w, h: h, pix: pix}, nil
}

// Decode reads an encoded image from r and produces a RawBitmap.
// Decode failures wrap ErrDecode; match with errors.Is.
func Decode(r io.Reader) (*RawBitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return FromImage(img)
}

// DecodeBytes decodes an in-memory encoded image. See Decode.
func DecodeBytes(b []byte) (*RawBitmap, error) {
	return Decode(bytes.NewReader(b))
}

// Width returns the bitmap width in pixels. Complexity: O(1).
func (b *RawBitmap) Width() int { return b.w }

// Height returns the bitmap height in pixels. Complexity: O(1).
func (b *RawBitmap) Height() int { return b.h }

// RGBAAt returns the four channels of pixel (x,y). No bounds checking;
// callers iterate within [0,Width)×[0,Height).
func (b *RawBitmap) RGBAAt(x, y int) (r, g, bl, a uint8) {
	off := (y*b.w + x) * bytesPerPixel

	return b.pix[off], b.pix[off+1], b.pix[off+2], b.pix[off+3]
}

// ColorModel implements image.Image.
func (b *RawBitmap) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (b *RawBitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.w, b.h) }

// At implements image.Image.
func (b *RawBitmap) At(x, y int) color.Color {
	off := (y*b.w + x) * bytesPerPixel

	return color.RGBA{R: b.pix[off], G: b.pix[off+1], B: b.pix[off+2], A: b.pix[off+3]}
}
