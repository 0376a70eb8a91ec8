// seehuhn.de/go/slotdots - decorative dots for rounded slot borders
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package slotdots

import "math"

// RectSpec describes the slot rectangle in design units (rem).
type RectSpec struct {
	Width        float64
	Height       float64
	BorderWidth  float64 // stroke thickness of the border
	CornerRadius float64 // outer corner radius of the border
}

// ImageExtent is the size of the target image in render units,
// normally the width and height of the SVG viewBox.
type ImageExtent struct {
	Width  float64
	Height float64
}

// GlyphShape describes the filled circle used for a single dot.
// The default values reproduce the dots already present in the
// light bulb asset.
type GlyphShape struct {
	// Radius is the dot radius in render units.
	Radius float64

	// ControlNear and ControlFar are the Bézier control offsets of the
	// four-segment circle approximation, measured along and across the
	// tangent respectively.
	ControlNear float64
	ControlFar  float64
}

// Anchor identifies the splice point in the target document.
type Anchor struct {
	// Token is searched for from the end of the document.
	Token string

	// Offset is the number of bytes of Token kept before the insertion.
	Offset int
}

// Config collects every constant that influences dot placement.
// A Config is a plain value; components never modify it.
type Config struct {
	Slot  RectSpec
	Image ImageExtent
	Glyph GlyphShape

	// EdgeSpacingDivisor determines the straight-edge dot spacing as
	// Image.Width / EdgeSpacingDivisor.
	EdgeSpacingDivisor float64

	// MinCornerDots is the smallest number of dots placed on a corner arc.
	MinCornerDots int

	Anchor Anchor
}

// DefaultConfig returns the configuration of the original light bulb
// slot: a 32×12 rem slot with a 1.625 rem border and 1.25 rem corners,
// drawn into a 1000×230 viewBox.
func DefaultConfig() Config {
	return Config{
		Slot: RectSpec{
			Width:        32,
			Height:       12,
			BorderWidth:  1.625,
			CornerRadius: 1.25,
		},
		Image: ImageExtent{
			Width:  1000,
			Height: 230,
		},
		Glyph: GlyphShape{
			Radius:      defaultDotRadius,
			ControlNear: defaultControlNear,
			ControlFar:  defaultControlFar,
		},
		EdgeSpacingDivisor: defaultEdgeSpacingDivisor,
		MinCornerDots:      defaultMinCornerDots,
		Anchor: Anchor{
			Token:  defaultAnchorToken,
			Offset: defaultAnchorOffset,
		},
	}
}

// Validate checks the geometric consistency of the configuration.
// All problems are reported as InvalidConfiguration.
func (c Config) Validate() error {
	const op = "config.validate"

	s := c.Slot
	if !positive(s.Width) || !positive(s.Height) {
		return invalid(op, "slot size %gx%g must be positive", s.Width, s.Height)
	}
	if !positive(s.BorderWidth) {
		return invalid(op, "border width %g must be positive", s.BorderWidth)
	}
	if !positive(s.CornerRadius) {
		return invalid(op, "corner radius %g must be positive", s.CornerRadius)
	}
	if s.CornerRadius >= min(s.Width, s.Height)/2 {
		return invalid(op, "corner radius %g too large for a %gx%g slot",
			s.CornerRadius, s.Width, s.Height)
	}
	if s.BorderWidth >= 2*s.CornerRadius {
		return invalid(op, "border width %g too thick for corner radius %g",
			s.BorderWidth, s.CornerRadius)
	}

	if !positive(c.Image.Width) || !positive(c.Image.Height) {
		return invalid(op, "image extent %gx%g must be positive",
			c.Image.Width, c.Image.Height)
	}

	g := c.Glyph
	if !positive(g.Radius) {
		return invalid(op, "dot radius %g must be positive", g.Radius)
	}
	if g.ControlNear < 0 || g.ControlFar < 0 || g.ControlNear > g.Radius || g.ControlFar > g.Radius {
		return invalid(op, "dot control offsets %g/%g must lie in [0, %g]",
			g.ControlNear, g.ControlFar, g.Radius)
	}

	if !positive(c.EdgeSpacingDivisor) {
		return invalid(op, "edge spacing divisor %g must be positive", c.EdgeSpacingDivisor)
	}
	if c.MinCornerDots < 1 || c.MinCornerDots > MaxCornerDots {
		return invalid(op, "minimum corner dot count %d must lie in [1, %d]",
			c.MinCornerDots, MaxCornerDots)
	}
	// dots implied by the edge spacing, before the minimum is applied
	arcRadius := (s.CornerRadius - s.BorderWidth/2) / s.Width * c.Image.Width
	implied := math.Pi / 2 * arcRadius * c.EdgeSpacingDivisor / c.Image.Width
	if !(implied <= MaxCornerDots) {
		return invalid(op, "edge spacing divisor %g puts %.0f dots on each corner (at most %d)",
			c.EdgeSpacingDivisor, implied, MaxCornerDots)
	}

	if c.Anchor.Token == "" {
		return invalid(op, "anchor token is empty")
	}
	if c.Anchor.Offset < 0 || c.Anchor.Offset > len(c.Anchor.Token) {
		return invalid(op, "anchor offset %d outside token %q", c.Anchor.Offset, c.Anchor.Token)
	}
	return nil
}

// positive reports whether x is a finite number greater than zero.
func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// MaxCornerDots is the largest number of dots placed on one corner arc.
const MaxCornerDots = 10000

// Default values for the light bulb slot.
const (
	defaultDotRadius   = 5.9
	defaultControlNear = 3.2
	defaultControlFar  = 2.6

	// defaultEdgeSpacingDivisor yields roughly 33 render units between
	// neighbouring dots on the straight edges of a 1000 unit wide image.
	defaultEdgeSpacingDivisor = 30

	// defaultMinCornerDots keeps even tiny corners visibly rounded.
	defaultMinCornerDots = 3

	// The asset ends its main decorative path group with `z"/>`. New dots
	// are spliced in after the first two bytes of the last such token.
	defaultAnchorToken  = `z"/>`
	defaultAnchorOffset = 2
)
