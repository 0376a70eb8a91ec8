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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Fragment is SVG path data for a single dot.
type Fragment string

// Glyph is a dot together with the point it was generated from.
type Glyph struct {
	Point    vec.Vec2
	Fragment Fragment
}

// Emitter turns sampled points into dot glyphs.
//
// The dot is a filled circle made of four cubic Bézier segments. The
// sampled point is the leftmost point of the circle, so the circle
// center lies Radius units to the right of it. This matches the
// straight-edge dots already present in the light bulb asset.
type Emitter struct {
	Shape GlyphShape
}

// NewEmitter returns an Emitter for the given dot shape.
func NewEmitter(shape GlyphShape) *Emitter {
	return &Emitter{Shape: shape}
}

// Emit renders the dot anchored at p. All numbers are written with one
// decimal place, the convention used throughout the asset.
func (e *Emitter) Emit(p vec.Vec2) Fragment {
	r := num(e.Shape.Radius)
	n := num(e.Shape.ControlNear)
	f := num(e.Shape.ControlFar)
	x, y := num(p.X), num(p.Y)

	var b strings.Builder
	b.Grow(128)

	b.WriteString("M" + x + "," + y)
	b.WriteString("c0-" + n + "," + f + "-" + r + "," + r + "-" + r)
	b.WriteString("l0,0")
	b.WriteString("c" + n + ",0," + r + "," + f + "," + r + "," + r)
	b.WriteString("l0,0")
	b.WriteString("c0," + n + "-" + f + "," + r + "-" + r + "," + r)
	b.WriteString("l0,0")
	b.WriteString("C" + num(p.X+e.Shape.ControlFar) + "," + num(p.Y+e.Shape.Radius) + ",")
	b.WriteString(x + "," + num(p.Y+e.Shape.ControlNear) + ",")
	b.WriteString(x + "," + y + "z ")

	return Fragment(b.String())
}

// Glyph returns the dot anchored at p together with its fragment.
func (e *Emitter) Glyph(p vec.Vec2) Glyph {
	return Glyph{Point: p, Fragment: e.Emit(p)}
}

// Outline returns the dot anchored at p as a closed path in absolute
// render coordinates. It traces the same curves as the fragment from
// Emit, without rounding.
func (e *Emitter) Outline(p vec.Vec2) *path.Data {
	R := e.Shape.Radius
	N := e.Shape.ControlNear
	F := e.Shape.ControlFar

	top := p.Add(vec.Vec2{X: R, Y: -R})
	right := p.Add(vec.Vec2{X: 2 * R, Y: 0})
	bottom := p.Add(vec.Vec2{X: R, Y: R})

	return (&path.Data{}).
		MoveTo(p).
		CubeTo(p.Add(vec.Vec2{X: 0, Y: -N}), p.Add(vec.Vec2{X: F, Y: -R}), top).
		CubeTo(top.Add(vec.Vec2{X: N, Y: 0}), top.Add(vec.Vec2{X: R, Y: F}), right).
		CubeTo(right.Add(vec.Vec2{X: 0, Y: N}), right.Add(vec.Vec2{X: -F, Y: R}), bottom).
		CubeTo(pt(p.X+F, p.Y+R), pt(p.X, p.Y+N), p).
		Close()
}

// Center returns the center of the dot anchored at p.
func (e *Emitter) Center(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: p.X + e.Shape.Radius, Y: p.Y}
}

// FormatCoord formats a render coordinate the way Emit does.
func FormatCoord(v float64) string {
	return num(v)
}

// num formats v with one decimal place.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
