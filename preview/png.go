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

// Package preview renders corner dot layouts for visual inspection.
//
// PNG previews are rasterised with golang.org/x/image/vector. PDF
// previews are written with seehuhn.de/go/pdf and additionally show the
// border centerline.
package preview

import (
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/slotdots"
)

// Raster returns a coverage image of all corner dots in l. One render
// unit corresponds to scale pixels. Scale must be positive.
func Raster(l *slotdots.Layout, scale float64) *image.Alpha {
	w := int(math.Ceil(l.Config.Image.Width * scale))
	h := int(math.Ceil(l.Config.Image.Height * scale))

	z := vector.NewRasterizer(w, h)
	for _, g := range l.Glyphs() {
		addPath(z, l.Emitter.Outline(g.Point), scale)
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// RenderPNG writes a PNG preview of the corner dots in l to w.
func RenderPNG(w io.Writer, l *slotdots.Layout, scale float64) error {
	return png.Encode(w, Raster(l, scale))
}

// addPath feeds p, scaled by s, into the rasterizer.
// Quadratic segments are passed through; vector handles them natively.
func addPath(z *vector.Rasterizer, p *path.Data, s float64) {
	f := func(v float64) float32 { return float32(v * s) }
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(f(pts[0].X), f(pts[0].Y))
		case path.CmdLineTo:
			z.LineTo(f(pts[0].X), f(pts[0].Y))
		case path.CmdQuadTo:
			z.QuadTo(f(pts[0].X), f(pts[0].Y), f(pts[1].X), f(pts[1].Y))
		case path.CmdCubeTo:
			z.CubeTo(f(pts[0].X), f(pts[0].Y), f(pts[1].X), f(pts[1].Y), f(pts[2].X), f(pts[2].Y))
		case path.CmdClose:
			z.ClosePath()
		}
	}
}
