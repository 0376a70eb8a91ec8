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
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// CornerArc holds the dots placed on one corner of the border.
type CornerArc struct {
	Corner Corner
	Arc    ArcSpec
	Points []vec.Vec2
}

// Layout is the complete set of corner dots for one configuration.
// A Layout is immutable after construction.
type Layout struct {
	Config    Config
	Corners   Corners
	DotCount  int // dots per corner
	Emitter   *Emitter
	arcs      [4]CornerArc
	glyphs    []Glyph
	fragments []Fragment
}

// NewLayout validates cfg and places the dots on all four corner arcs.
func NewLayout(cfg Config) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	corners, err := ResolveCorners(cfg)
	if err != nil {
		return nil, err
	}

	count := CornerDotCount(corners.ArcRadius, cfg.Image.Width,
		cfg.EdgeSpacingDivisor, cfg.MinCornerDots)

	l := &Layout{
		Config:   cfg,
		Corners:  corners,
		DotCount: count,
		Emitter:  NewEmitter(cfg.Glyph),
	}

	for _, c := range AllCorners {
		start, end := c.Sweep()
		arc := ArcSpec{
			Center:   corners.Centers[c],
			Radius:   corners.ArcRadius,
			StartDeg: start,
			EndDeg:   end,
			Count:    count,
		}
		pts := Sample(arc)
		l.arcs[c] = CornerArc{Corner: c, Arc: arc, Points: pts}
		for _, p := range pts {
			g := l.Emitter.Glyph(p)
			l.glyphs = append(l.glyphs, g)
			l.fragments = append(l.fragments, g.Fragment)
		}
	}

	return l, nil
}

// Arcs returns the four corner arcs in emission order.
// The result is a copy; changing it does not affect l.
func (l *Layout) Arcs() []CornerArc {
	res := make([]CornerArc, len(l.arcs))
	for i, a := range l.arcs {
		a.Points = slices.Clone(a.Points)
		res[i] = a
	}
	return res
}

// Arc returns a copy of the dots of a single corner.
func (l *Layout) Arc(c Corner) CornerArc {
	a := l.arcs[c]
	a.Points = slices.Clone(a.Points)
	return a
}

// Glyphs returns all corner dots: top-left first, then top-right,
// bottom-right and bottom-left. The result is a copy.
func (l *Layout) Glyphs() []Glyph {
	return slices.Clone(l.glyphs)
}

// Fragments returns the SVG fragments of all corner dots, in the
// same order as Glyphs. The result is a copy.
func (l *Layout) Fragments() []Fragment {
	return slices.Clone(l.fragments)
}

// ArcLength returns the render-space length of one corner arc.
func (l *Layout) ArcLength() float64 {
	return math.Pi / 2 * l.Corners.ArcRadius
}

// EdgeSpacing returns the distance between neighbouring dots on the
// straight edges.
func (l *Layout) EdgeSpacing() float64 {
	return l.Config.Image.Width / l.Config.EdgeSpacingDivisor
}

// Centerline returns the border centerline as a closed path in render
// coordinates: four straight edges joined by the corner arcs.
func (l *Layout) Centerline() *path.Data {
	c := l.Corners
	r := c.ArcRadius
	ctr := c.Centers

	p := (&path.Data{}).MoveTo(pt(ctr[TopLeft].X, ctr[TopLeft].Y-r))
	p = p.LineTo(pt(ctr[TopRight].X, ctr[TopRight].Y-r))
	p = quarter(p, ctr[TopRight], r, -90)
	p = p.LineTo(pt(ctr[BottomRight].X+r, ctr[BottomRight].Y))
	p = quarter(p, ctr[BottomRight], r, 0)
	p = p.LineTo(pt(ctr[BottomLeft].X, ctr[BottomLeft].Y+r))
	p = quarter(p, ctr[BottomLeft], r, 90)
	p = p.LineTo(pt(ctr[TopLeft].X-r, ctr[TopLeft].Y))
	p = quarter(p, ctr[TopLeft], r, 180)
	return p.Close()
}

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// quarter appends a clockwise (in image coordinates) quarter circle
// around center, starting at angle startDeg.
func quarter(p *path.Data, center vec.Vec2, r, startDeg float64) *path.Data {
	a0 := radians(startDeg)
	a1 := radians(startDeg + 90)
	d0 := vec.Vec2{X: math.Cos(a0), Y: math.Sin(a0)}
	d1 := vec.Vec2{X: math.Cos(a1), Y: math.Sin(a1)}

	p0 := center.Add(d0.Mul(r))
	p3 := center.Add(d1.Mul(r))
	p1 := p0.Add(d1.Mul(r * kappa))
	p2 := p3.Add(d0.Mul(r * kappa))
	return p.CubeTo(p1, p2, p3)
}
