// SPDX-License-Identifier: MIT

// Package glyph maps scalar luminance to styled glyph cells — the numeric
// heart of the glyphart pipeline.
//
// What:
//
//   - Luminance: perceptual brightness of an RGBA sample
//     (0.299·R + 0.587·G + 0.114·B, alpha ignored, range [0,255]).
//   - Effective: optional inversion (255 − luminance).
//   - Map: effective luminance → Cell{Char, Weight, Opacity}:
//     – Weight interpolates [MinWeight,MaxWeight] linearly, rounded, clamped.
//     – Opacity is effective/255 floored at MinOpacity.
//     – Character comes from a configured cycle sampled over Levels (14)
//     equal-width luminance bands — cyclic, not truncating, so a short
//     cycle alternates in fixed bands rather than blending smoothly.
//
// Why:
//
//   - Every transform here is a pure, stateless, per-cell function: no
//     error conditions, no side effects, no randomness. Identical
//     (effective, config) always yields an identical Cell, which is what
//     makes whole-document determinism trivial to guarantee.
//
// Complexity:
//
//   - All functions: O(1) per cell.
//
// Configuration:
//
//   - Config.CharacterCycle: ordered characters representing increasing
//     brightness levels; duplicates allowed; blank falls back to "01".
//   - Config.Invert: flip the brightness axis before mapping.
package glyph
