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
	"testing"

	"seehuhn.de/go/geom/vec"
)

// angleOf returns the angle of p as seen from center, in degrees.
func angleOf(center, p vec.Vec2) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi
}

func TestSampleUniformSpacing(t *testing.T) {
	center := vec.Vec2{X: 100, Y: 50}
	sweeps := [][2]float64{
		{180, 90},
		{90, 0},
		{0, -90},
		{-90, -180},
		{10, 100},
	}

	for _, sw := range sweeps {
		for n := 2; n <= 9; n++ {
			arc := ArcSpec{Center: center, Radius: 20, StartDeg: sw[0], EndDeg: sw[1], Count: n}
			pts := Sample(arc)
			if len(pts) != n {
				t.Fatalf("%v n=%d: got %d points", sw, n, len(pts))
			}

			step := (sw[1] - sw[0]) / float64(n-1)
			for i := 1; i < n; i++ {
				d := angleOf(center, pts[i]) - angleOf(center, pts[i-1])
				// unwrap across ±180°
				for d > 180 {
					d -= 360
				}
				for d < -180 {
					d += 360
				}
				if math.Abs(d-step) > 1e-9 {
					t.Errorf("%v n=%d: step %d is %g°, want %g°", sw, n, i, d, step)
				}
			}

			for i, p := range pts {
				if r := p.Sub(center).Length(); math.Abs(r-20) > 1e-9 {
					t.Errorf("%v n=%d: point %d at distance %g", sw, n, i, r)
				}
			}
		}
	}
}

func TestSampleEndpoints(t *testing.T) {
	center := vec.Vec2{X: 10, Y: 10}
	pts := Sample(ArcSpec{Center: center, Radius: 5, StartDeg: 180, EndDeg: 90, Count: 3})

	want := []vec.Vec2{
		{X: 5, Y: 10},
		{X: 10 - 5*math.Sqrt2/2, Y: 10 + 5*math.Sqrt2/2},
		{X: 10, Y: 15},
	}
	for i := range want {
		if pts[i].Sub(want[i]).Length() > 1e-9 {
			t.Errorf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestSampleSinglePoint(t *testing.T) {
	center := vec.Vec2{X: 3, Y: 4}
	pts := Sample(ArcSpec{Center: center, Radius: 2, StartDeg: 90, EndDeg: 0, Count: 1})
	if len(pts) != 1 {
		t.Fatalf("got %d points, want 1", len(pts))
	}
	want := vec.Vec2{X: 3, Y: 6}
	if pts[0].Sub(want).Length() > 1e-12 {
		t.Errorf("got %v, want %v", pts[0], want)
	}
}

func TestSampleEmpty(t *testing.T) {
	for _, n := range []int{0, -1} {
		if pts := Sample(ArcSpec{Radius: 1, StartDeg: 0, EndDeg: 90, Count: n}); pts != nil {
			t.Errorf("Count=%d: got %v, want nil", n, pts)
		}
	}
}

func TestCornerDotCount(t *testing.T) {
	cases := []struct {
		radius, width, divisor float64
		minimum                int
		want                   int
	}{
		{13.671875, 1000, 30, 3, 3}, // light bulb slot: 21.5 units of arc
		{140.625, 1000, 30, 3, 6},
		{87.5, 500, 30, 3, 8},
		{62.5, 200, 30, 3, 14},
		{0.001, 1000, 30, 3, 3},
		{0.001, 1000, 30, 1, 1},
		{200, 1000, 30, 3, 9},
		{13.671875, 1000, 1e300, 3, MaxCornerDots},
		{13.671875, 1000, math.Inf(1), 3, MaxCornerDots},
		{math.NaN(), 1000, 30, 3, MaxCornerDots},
	}
	for _, c := range cases {
		got := CornerDotCount(c.radius, c.width, c.divisor, c.minimum)
		if got != c.want {
			t.Errorf("CornerDotCount(%g, %g, %g, %d) = %d, want %d",
				c.radius, c.width, c.divisor, c.minimum, got, c.want)
		}
	}
}
