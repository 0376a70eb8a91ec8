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

package config

import (
	"fmt"

	"seehuhn.de/go/slotdots"
	"seehuhn.de/go/slotdots/presets"
)

// Apply overlays the values present in yc onto base. If yc names a
// preset, the preset replaces base before the overlay.
func Apply(path string, base slotdots.Config, yc YAMLConfig) (slotdots.Config, error) {
	cfg := base
	if yc.Preset != "" {
		p, ok := presets.Get(yc.Preset)
		if !ok {
			return slotdots.Config{}, invalidField(path, "preset",
				fmt.Sprintf("unknown preset %q", yc.Preset))
		}
		cfg = p
	}

	set(&cfg.Slot.Width, yc.Slot.Width)
	set(&cfg.Slot.Height, yc.Slot.Height)
	set(&cfg.Slot.BorderWidth, yc.Slot.BorderWidth)
	set(&cfg.Slot.CornerRadius, yc.Slot.CornerRadius)

	set(&cfg.Image.Width, yc.Image.Width)
	set(&cfg.Image.Height, yc.Image.Height)

	set(&cfg.Glyph.Radius, yc.Dot.Radius)
	set(&cfg.Glyph.ControlNear, yc.Dot.ControlNear)
	set(&cfg.Glyph.ControlFar, yc.Dot.ControlFar)

	set(&cfg.Anchor.Token, yc.Anchor.Token)
	set(&cfg.Anchor.Offset, yc.Anchor.Offset)

	set(&cfg.EdgeSpacingDivisor, yc.EdgeSpacingDivisor)
	set(&cfg.MinCornerDots, yc.MinCornerDots)

	if err := cfg.Validate(); err != nil {
		return slotdots.Config{}, &slotdots.OpError{
			Op:   "config.apply",
			Kind: slotdots.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func invalidField(path, field, msg string) error {
	return &slotdots.OpError{
		Op:   "config.apply",
		Kind: slotdots.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%s: %s", field, msg),
	}
}
