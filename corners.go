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

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Corner identifies one of the four rounded corners of the slot.
type Corner int

// The corners, in the order in which their dots are emitted.
const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// AllCorners lists the corners in emission order.
var AllCorners = [4]Corner{TopLeft, TopRight, BottomRight, BottomLeft}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	}
	return "unknown"
}

// Sweep returns the start and end angle, in degrees, of the corner arc.
// 0° points along +X and positive angles turn towards +Y.
func (c Corner) Sweep() (start, end float64) {
	switch c {
	case TopLeft:
		return 180, 90
	case TopRight:
		return 90, 0
	case BottomRight:
		return 0, -90
	default:
		return -90, -180
	}
}

// Corners is the resolved border geometry in render space.
type Corners struct {
	// Centers holds the arc center of each corner, indexed by Corner.
	Centers [4]vec.Vec2

	// ArcRadius is the radius of the border centerline around each
	// corner. It is mapped with the horizontal scale only, so for
	// images whose aspect ratio differs from the design the corner
	// dots lie on a slightly non-circular path.
	ArcRadius float64

	// ArcRadiusY is the same radius mapped with the vertical scale.
	// It is not used for placement; it shows the size of the
	// approximation made by ArcRadius.
	ArcRadiusY float64

	// BorderWidth is the stroke thickness in horizontal render units.
	BorderWidth float64

	// Centerline positions of the four straight edges.
	Top, Bottom float64 // y coordinates
	Left, Right float64 // x coordinates

	// Bounds is the full image rectangle in render space.
	Bounds rect.Rect
}

// ResolveCorners computes the corner arc centers and the shared arc
// radius of the border centerline for cfg.
func ResolveCorners(cfg Config) (Corners, error) {
	const op = "corners.resolve"

	m, err := NewMapper(cfg.Slot, cfg.Image)
	if err != nil {
		return Corners{}, err
	}

	s := cfg.Slot
	borderCenter := s.BorderWidth / 2
	arcRadius := s.CornerRadius - borderCenter
	if arcRadius <= 0 {
		return Corners{}, invalid(op,
			"border width %g leaves no arc inside corner radius %g",
			s.BorderWidth, s.CornerRadius)
	}

	r := s.CornerRadius
	radii := m.ToRenderVec(vec.Vec2{X: arcRadius, Y: arcRadius})

	var res Corners
	res.Centers[TopLeft] = m.ToRender(vec.Vec2{X: r, Y: r})
	res.Centers[TopRight] = m.ToRender(vec.Vec2{X: s.Width - r, Y: r})
	res.Centers[BottomRight] = m.ToRender(vec.Vec2{X: s.Width - r, Y: s.Height - r})
	res.Centers[BottomLeft] = m.ToRender(vec.Vec2{X: r, Y: s.Height - r})
	res.ArcRadius = m.ToRenderX(arcRadius)
	res.ArcRadiusY = radii.Y

	res.BorderWidth = m.ToRenderX(s.BorderWidth)

	res.Top = m.ToRenderY(borderCenter)
	res.Bottom = m.ToRenderY(s.Height - borderCenter)
	res.Left = m.ToRenderX(borderCenter)
	res.Right = m.ToRenderX(s.Width - borderCenter)

	res.Bounds = rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: cfg.Image.Width,
		URy: cfg.Image.Height,
	}
	return res, nil
}

// Contains reports whether p lies inside the render-space bounds.
func (c Corners) Contains(p vec.Vec2) bool {
	b := c.Bounds
	return p.X >= b.LLx && p.X <= b.URx && p.Y >= b.LLy && p.Y <= b.URy
}
