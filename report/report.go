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

// Package report counts the dot glyphs in a patched SVG document.
//
// The expected coordinates are taken from a [slotdots.Layout], the same
// object used to generate the dots, so generator and verifier cannot
// drift apart when the configuration changes.
package report

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"seehuhn.de/go/slotdots"
)

// Edge identifies one straight side of the border.
type Edge int

// The four straight edges.
const (
	Top Edge = iota
	Bottom
	Left
	Right
)

func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Report holds the dot counts found in a document.
type Report struct {
	// Edges counts dots whose anchor lies on a straight-edge centerline.
	Edges [4]int

	// Corners counts dots at the generated corner positions.
	Corners [4]int

	// Expected is the number of dots per corner in the layout.
	Expected int

	// Other counts dot glyphs that match neither an edge nor a corner.
	Other int

	// Coordinates of the edge centerlines, as written in the document.
	TopY, BottomY, LeftX, RightX string
}

// dotStart matches the start of a dot glyph: an absolute move-to
// followed by the first relative curve.
var dotStart = regexp.MustCompile(`M(-?[0-9]+\.[0-9]),(-?[0-9]+\.[0-9])c0-`)

// Scan counts the dot glyphs in doc. Corner dots are matched against
// the positions generated by l; the remaining dots are assigned to an
// edge if their anchor lies on that edge's centerline.
func Scan(doc string, l *slotdots.Layout) *Report {
	r := &Report{
		Expected: l.DotCount,
		TopY:     slotdots.FormatCoord(l.Corners.Top),
		BottomY:  slotdots.FormatCoord(l.Corners.Bottom),
		LeftX:    slotdots.FormatCoord(l.Corners.Left),
		RightX:   slotdots.FormatCoord(l.Corners.Right),
	}

	corner := make(map[string]slotdots.Corner)
	for _, arc := range l.Arcs() {
		for _, p := range arc.Points {
			corner[key(slotdots.FormatCoord(p.X), slotdots.FormatCoord(p.Y))] = arc.Corner
		}
	}

	for _, m := range dotStart.FindAllStringSubmatch(doc, -1) {
		x, y := m[1], m[2]
		if c, ok := corner[key(x, y)]; ok {
			r.Corners[c]++
			continue
		}
		switch {
		case y == r.TopY:
			r.Edges[Top]++
		case y == r.BottomY:
			r.Edges[Bottom]++
		case x == r.LeftX:
			r.Edges[Left]++
		case x == r.RightX:
			r.Edges[Right]++
		default:
			r.Other++
		}
	}
	return r
}

// CornerTotal returns the number of corner dots found.
func (r *Report) CornerTotal() int {
	n := 0
	for _, c := range r.Corners {
		n += c
	}
	return n
}

// EdgeTotal returns the number of straight-edge dots found.
func (r *Report) EdgeTotal() int {
	n := 0
	for _, c := range r.Edges {
		n += c
	}
	return n
}

// Total returns the number of recognised dots.
func (r *Report) Total() int {
	return r.EdgeTotal() + r.CornerTotal()
}

// Complete reports whether every corner carries exactly the expected
// number of dots.
func (r *Report) Complete() bool {
	for _, c := range r.Corners {
		if c != r.Expected {
			return false
		}
	}
	return true
}

// Print writes a human-readable summary of r to w.
func (r *Report) Print(w io.Writer) error {
	rule := strings.Repeat("=", 60)
	ew := &errWriter{w: w}

	ew.printf("%s\n", rule)
	ew.printf("LIGHT BULB DOT ALIGNMENT REPORT\n")
	ew.printf("%s\n", rule)

	ew.printf("\nSTRAIGHT EDGES:\n")
	ew.printf("  ├─ Top edge dots (Y=%s):%*d dots\n", r.TopY, pad(r.TopY, 9), r.Edges[Top])
	ew.printf("  ├─ Bottom edge dots (Y=%s):%*d dots\n", r.BottomY, pad(r.BottomY, 6), r.Edges[Bottom])
	ew.printf("  ├─ Left edge dots (X=%s):%*d dots\n", r.LeftX, pad(r.LeftX, 8), r.Edges[Left])
	ew.printf("  └─ Right edge dots (X=%s):%*d dots\n", r.RightX, pad(r.RightX, 7), r.Edges[Right])

	ew.printf("\nROUNDED CORNERS:\n")
	for i, c := range slotdots.AllCorners {
		branch := "├─"
		if i == len(slotdots.AllCorners)-1 {
			branch = "└─"
		}
		label := c.String() + " corner:"
		ew.printf("  %s %-20s %d of %d dots\n", branch, label, r.Corners[c], r.Expected)
	}
	ew.printf("  TOTAL CORNER DOTS:      %d dots\n", r.CornerTotal())
	if r.Other > 0 {
		ew.printf("\nUNCLASSIFIED DOTS:        %d\n", r.Other)
	}

	ew.printf("\n%s\n", rule)
	ew.printf("GRAND TOTAL: %d decorative light bulb dots\n", r.Total())
	ew.printf("%s\n", rule)
	if r.Complete() {
		ew.printf("✓ All corners carry %d dots on the border centerline.\n", r.Expected)
	} else {
		ew.printf("✗ Corner dots are missing or duplicated.\n")
	}
	return ew.err
}

func key(x, y string) string {
	return x + "," + y
}

// pad returns the field width that right-aligns counts after labels of
// different lengths.
func pad(coord string, base int) int {
	return max(1, base-len(coord)+len("15.6"))
}

// errWriter remembers the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
