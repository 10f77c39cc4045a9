// Package artdoc assembles sampled fields into complete glyph-art documents.
//
// What:
//
//   - Document: an ordered sequence of rows, each an ordered sequence of
//     glyph.Cell — row count = target height, row length = target width.
//   - Assemble: walks the sampled field in row-major order, applying the
//     luminance and glyph mappings to each cell.
//
// Guarantees:
//
//   - A Document is produced fresh on every generation and is immutable once
//     returned; no partial document ever escapes (any failure aborts the
//     whole assembly).
//   - Row order in the document always matches source row order.
//
// Complexity:
//
//   - Assemble: O(width×height) time and memory.
//
// Errors:
//
//   - ErrNilField: assembly requested without a sampled field.
package artdoc
