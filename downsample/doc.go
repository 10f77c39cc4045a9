// Package downsample resamples a source bitmap to the character-grid
// resolution used by the glyphart pipeline.
//
// What:
//
//   - TargetHeight computes the output row count from a target column count:
//     floor(targetWidth · H/W · 0.55). The 0.55 factor compensates for text
//     glyphs being visually taller than wide, preserving perceived aspect.
//   - Resample scales the bitmap into a targetWidth × targetHeight Field of
//     RGBA samples (bilinear; deterministic for identical inputs).
//
// Why:
//
//   - One glyph cell stands in for a rectangular region of source pixels;
//     downsampling once up front keeps every later stage O(cells).
//
// Complexity:
//
//   - TargetHeight: O(1).
//   - Resample: O(W×H) time, O(targetWidth×targetHeight) memory.
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive source dimensions or target width.
//   - ErrEmptyCanvas: the target height rounds to zero. Surfaced to the
//     caller — never rendered silently as a blank document.
package downsample
