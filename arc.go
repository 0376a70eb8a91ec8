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

	"seehuhn.de/go/geom/vec"
)

// ArcSpec describes a circular arc together with the number of dots to
// place on it. Angles are in degrees; 0° points along +X and positive
// angles turn towards +Y.
type ArcSpec struct {
	Center   vec.Vec2
	Radius   float64
	StartDeg float64
	EndDeg   float64
	Count    int // number of dots, at least 1
}

// Sample returns Count evenly spaced points on the arc, from StartDeg to
// EndDeg inclusive. For Count == 1 the only point is at StartDeg.
// Sample returns nil if Count < 1.
func Sample(arc ArcSpec) []vec.Vec2 {
	if arc.Count < 1 {
		return nil
	}

	sweep := arc.EndDeg - arc.StartDeg
	pts := make([]vec.Vec2, arc.Count)
	for i := range pts {
		deg := arc.StartDeg
		if arc.Count > 1 {
			deg += sweep * float64(i) / float64(arc.Count-1)
		}
		theta := radians(deg)
		pts[i] = vec.Vec2{
			X: arc.Center.X + arc.Radius*math.Cos(theta),
			Y: arc.Center.Y + arc.Radius*math.Sin(theta),
		}
	}
	return pts
}

// CornerDotCount returns the number of dots for a quarter-circle arc of
// the given render-space radius. The dots are spaced like the dots on
// the straight edges, renderWidth/divisor apart, but there are never
// fewer than minimum. The spacing-derived count is capped at
// MaxCornerDots.
func CornerDotCount(arcRadius, renderWidth, divisor float64, minimum int) int {
	arcLength := math.Pi / 2 * arcRadius
	spacing := renderWidth / divisor
	n := math.Floor(arcLength / spacing)
	if !(n < MaxCornerDots) {
		// also catches NaN and values beyond the int range
		n = MaxCornerDots
	}
	return max(int(n), minimum)
}

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}
