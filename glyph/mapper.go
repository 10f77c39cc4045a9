// SPDX-License-Identifier: MIT
// Package glyph: glyph mapping stage — effective luminance to a styled cell.
//
// DEFAULTS - single source of truth for the mapping scale. These constants
// MUST reflect the documented contract:
//   - font weight interpolates [300,700], rounded to nearest, clamped;
//   - opacity is effective/255 with a 0.1 visibility floor;
//   - character selection partitions [0,255] into exactly 14 equal-width
//     bands and indexes the cycle modulo its length.

package glyph

import (
	"math"
	"strings"
)

const (
	// MinWeight is the lightest font weight a cell may carry.
	MinWeight = 300
	// MaxWeight is the heaviest font weight a cell may carry.
	MaxWeight = 700

	// MinOpacity is the visibility floor: darker cells never vanish entirely.
	MinOpacity = 0.1

	// Levels is the number of equal-width luminance bands used for
	// character selection.
	Levels = 14

	// levelSize is the width of one luminance band. Kept as a float
	// quotient: integer division would hand luminance 255 a 15th band and
	// leave the top bands unbalanced.
	levelSize = 256.0 / Levels

	// DefaultCycle replaces an empty or blank character cycle.
	DefaultCycle = "01"
)

// Cell is one rendered position: a single character plus the weight and
// opacity it is drawn with. Purely derived; no independent lifecycle.
type Cell struct {
	Char    rune
	Weight  int     // [MinWeight, MaxWeight]
	Opacity float64 // [MinOpacity, 1.0]
}

// Config carries the per-invocation glyph mapping parameters. It has no
// persisted identity: callers own it and thread it into each run.
type Config struct {
	// CharacterCycle is an ordered, repeatable sequence of characters used
	// to represent increasing brightness levels. Duplicates allowed.
	CharacterCycle string
	// Invert flips the brightness axis before mapping.
	Invert bool
}

// DefaultConfig returns a Config with the default two-character cycle and
// no inversion.
func DefaultConfig() Config {
	return Config{CharacterCycle: DefaultCycle}
}

// Cycle returns the configured character cycle as runes, falling back to
// DefaultCycle when the cycle is empty or blank after trimming. The result
// is always non-empty.
func (c Config) Cycle() []rune {
	if strings.TrimSpace(c.CharacterCycle) == "" {
		return []rune(DefaultCycle)
	}

	return []rune(c.CharacterCycle)
}

// Map converts an effective luminance in [0,255] into a Cell using the
// given non-empty character cycle.
//
// Determinism: no randomness; identical (effective, cycle) always yields
// an identical Cell. Out-of-range inputs are clamped, never rejected.
// Complexity: O(1).
func Map(effective float64, cycle []rune) Cell {
	return Cell{
		Char:    charFor(effective, cycle),
		Weight:  weightFor(effective),
		Opacity: opacityFor(effective),
	}
}

// weightFor linearly interpolates effective/255 into [MinWeight,MaxWeight],
// rounds to the nearest integer and clamps. Monotone in effective.
func weightFor(effective float64) int {
	w := int(math.Round(MinWeight + effective/MaxLuminance*(MaxWeight-MinWeight)))
	if w < MinWeight {
		return MinWeight
	}
	if w > MaxWeight {
		return MaxWeight
	}

	return w
}

// opacityFor maps effective/255 onto [MinOpacity,1]: brighter cells
// approach full opacity linearly, darker ones never fall below the floor.
func opacityFor(effective float64) float64 {
	op := effective / MaxLuminance
	if op < MinOpacity {
		return MinOpacity
	}
	if op > 1 {
		return 1
	}

	return op
}

// charFor selects the cycle character for the luminance band containing
// effective. The band index is clamped to [0,Levels-1] and the cycle is
// indexed modulo its length, so darker regions preferentially draw from
// the front of a short cycle.
func charFor(effective float64, cycle []rune) rune {
	level := int(math.Floor(effective / levelSize))
	if level < 0 {
		level = 0
	}
	if level > Levels-1 {
		level = Levels - 1
	}

	return cycle[level%len(cycle)]
}
