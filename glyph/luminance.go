// SPDX-License-Identifier: MIT
// Package glyph: luminance stage — perceptual brightness of a sampled pixel.
// Pure per-pixel functions with no error conditions and no side effects.

package glyph

// Perceptual channel weights (ITU-R BT.601 luma coefficients).
const (
	weightRed   = 0.299
	weightGreen = 0.587
	weightBlue  = 0.114
)

// MaxLuminance is the upper bound of the luminance scale.
const MaxLuminance = 255.0

// Luminance computes perceptual brightness of an RGBA sample in [0,255].
// Alpha is ignored by contract. Complexity: O(1).
func Luminance(r, g, b uint8) float64 {
	return weightRed*float64(r) + weightGreen*float64(g) + weightBlue*float64(b)
}

// Effective applies the configured inversion to a luminance value:
// 255 − lum when invert is set, lum otherwise. Complexity: O(1).
func Effective(lum float64, invert bool) float64 {
	if invert {
		return MaxLuminance - lum
	}

	return lum
}
