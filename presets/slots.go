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

// Package presets provides named slot configurations.
//
// Every preset starts from [slotdots.DefaultConfig] and changes only the
// slot geometry and image size, so all presets share the dot shape and
// anchor of the light bulb asset.
package presets

import "seehuhn.de/go/slotdots"

// largeCorner has the light bulb slot size with a much larger corner
// radius, which raises the dot count above the minimum. The image keeps
// the slot's aspect ratio; with the squashed 1000×230 viewBox the arcs
// would leave the image.
func largeCorner() slotdots.Config {
	return withSlot(32, 12, 1, 5, 1000, 375)
}

// wideBorder has a border so thick that the centerline arc radius is
// only 0.125 rem. The minimum dot count applies.
func wideBorder() slotdots.Config {
	return withSlot(32, 12, 2.25, 1.25, 1000, 230)
}

// square is a square slot drawn into a square image, so horizontal and
// vertical scales agree and the corner arcs are exact circles.
func square() slotdots.Config {
	return withSlot(10, 10, 0.5, 2, 500, 500)
}

// tall is a portrait slot.
func tall() slotdots.Config {
	return withSlot(8, 20, 1, 3, 200, 500)
}

// withSlot returns the default configuration with the given slot size,
// border width, corner radius and image extent.
func withSlot(w, h, border, radius, imgW, imgH float64) slotdots.Config {
	cfg := slotdots.DefaultConfig()
	cfg.Slot = slotdots.RectSpec{
		Width:        w,
		Height:       h,
		BorderWidth:  border,
		CornerRadius: radius,
	}
	cfg.Image = slotdots.ImageExtent{Width: imgW, Height: imgH}
	return cfg
}
