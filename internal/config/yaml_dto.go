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

// YAMLConfig mirrors the configuration file. Pointer fields
// distinguish missing keys, which keep their base value, from zeros.
type YAMLConfig struct {
	Preset string     `yaml:"preset"`
	Slot   YAMLSlot   `yaml:"slot"`
	Image  YAMLImage  `yaml:"image"`
	Dot    YAMLDot    `yaml:"dot"`
	Anchor YAMLAnchor `yaml:"anchor"`

	EdgeSpacingDivisor *float64 `yaml:"edge_spacing_divisor"`
	MinCornerDots      *int     `yaml:"min_corner_dots"`
}

type YAMLSlot struct {
	Width        *float64 `yaml:"width"`
	Height       *float64 `yaml:"height"`
	BorderWidth  *float64 `yaml:"border_width"`
	CornerRadius *float64 `yaml:"corner_radius"`
}

type YAMLImage struct {
	Width  *float64 `yaml:"width"`
	Height *float64 `yaml:"height"`
}

type YAMLDot struct {
	Radius      *float64 `yaml:"radius"`
	ControlNear *float64 `yaml:"control_near"`
	ControlFar  *float64 `yaml:"control_far"`
}

type YAMLAnchor struct {
	Token  *string `yaml:"token"`
	Offset *int    `yaml:"offset"`
}
