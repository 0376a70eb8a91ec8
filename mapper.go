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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Mapper converts design-space measurements into render space.
// Each axis is scaled independently: x' = x / designWidth * renderWidth,
// and likewise for y.
type Mapper struct {
	// M is the design-to-render transformation. It is a pure scaling,
	// so translation entries are always zero.
	M matrix.Matrix

	design ImageExtent
	render ImageExtent
}

// NewMapper returns a Mapper for a design rectangle of the given size
// drawn into an image of the given extent.
func NewMapper(design RectSpec, img ImageExtent) (*Mapper, error) {
	const op = "mapper.new"
	if !positive(design.Width) || !positive(design.Height) {
		return nil, invalid(op, "design extent %gx%g must be positive", design.Width, design.Height)
	}
	if !positive(img.Width) || !positive(img.Height) {
		return nil, invalid(op, "render extent %gx%g must be positive", img.Width, img.Height)
	}

	return &Mapper{
		M:      matrix.Matrix{img.Width / design.Width, 0, 0, img.Height / design.Height, 0, 0},
		design: ImageExtent{Width: design.Width, Height: design.Height},
		render: img,
	}, nil
}

// ToRenderX maps a horizontal design measurement to render units.
func (m *Mapper) ToRenderX(x float64) float64 {
	return x / m.design.Width * m.render.Width
}

// ToRenderY maps a vertical design measurement to render units.
func (m *Mapper) ToRenderY(y float64) float64 {
	return y / m.design.Height * m.render.Height
}

// ToRender maps a design-space point to render space.
func (m *Mapper) ToRender(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: m.ToRenderX(p.X), Y: m.ToRenderY(p.Y)}
}

// ToRenderVec applies only the linear part of M to a vector.
// This is used where a direction or size, not a position, is mapped.
func (m *Mapper) ToRenderVec(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m.M[0]*v.X + m.M[2]*v.Y,
		Y: m.M[1]*v.X + m.M[3]*v.Y,
	}
}
