// Package bitmap decodes user-supplied images into immutable RGBA pixel
// buffers consumed by the glyphart pipeline.
//
// What:
//
//   - RawBitmap wraps a width, a height and a W×H buffer of RGBA quadruples.
//   - Decode / DecodeBytes run the standard image decoders (gif, jpeg, png,
//     plus webp and bmp via golang.org/x/image registration).
//   - FromImage and New build a RawBitmap from an already-decoded image or
//     from raw pixel data.
//
// Why:
//
//   - The pipeline requires a fully decoded bitmap as a precondition; decoding
//     is the only potentially slow step and lives outside the numeric core.
//   - RawBitmap implements image.Image, so resampling libraries consume it
//     without an intermediate copy.
//
// Ownership:
//
//   - A RawBitmap is immutable once produced and owned exclusively by the
//     pipeline invocation that created it.
//
// Errors:
//
//   - ErrDecode: the byte stream is not a decodable image (external failure,
//     passed through unchanged by the pipeline).
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrPixelBuffer: pixel buffer length does not match W×H×4.
package bitmap
