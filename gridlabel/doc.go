// Package gridlabel builds fixed-size character grids with positioned text
// labels over a randomized placeholder fill — the companion tool to the
// glyphart pipeline.
//
// What:
//
//   - Grid: a Width×Height rune grid, filled from a placeholder alphabet by
//     a seeded deterministic RNG.
//   - Label: a tagged record {Row, Col, Text} placed onto the grid; later
//     placements overwrite earlier ones, and text is clipped at the right
//     edge.
//
// Why:
//
//   - Seating charts, name boards, mock layouts: anywhere a block of filler
//     texture needs a few readable strings dropped into exact positions.
//
// Randomness policy:
//
//   - The placeholder fill is intentionally randomized — unlike the glyphart
//     pipeline, which admits no randomness at all. The RNG is seed-derived
//     (same seed ⇒ identical grid) and never time-based, and this package
//     shares no state with the pipeline.
//
// Errors:
//
//   - ErrEmptyGrid: non-positive width or height.
//   - ErrLabelOutOfBounds: a label's anchor cell lies outside the grid.
package gridlabel
