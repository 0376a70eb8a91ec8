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

package preview

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/slotdots"
)

// WritePDF writes a single-page PDF showing the border centerline and
// the corner dots of l. One render unit is one PDF point.
func WritePDF(fname string, l *slotdots.Layout) error {
	w, h := l.Config.Image.Width, l.Config.Image.Height

	paper := &pdf.Rectangle{
		URx: w,
		URy: h,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left; SVG render space is top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	// Draw path - convert quadratic to cubic (PDF doesn't support quadratic)
	draw := func(p *path.Data) {
		for cmd, pts := range p.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	page.SetStrokeColor(color.DeviceGray(0.8))
	page.SetLineWidth(l.Corners.BorderWidth)
	draw(l.Centerline())
	page.Stroke()

	page.SetFillColor(color.DeviceGray(0))
	for _, g := range l.Glyphs() {
		draw(l.Emitter.Outline(g.Point))
	}
	page.Fill()

	return page.Close()
}
