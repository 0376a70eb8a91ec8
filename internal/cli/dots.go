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

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/slotdots"
)

func dotsCmd(opts *globalOptions) *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "dots",
		Short: "List the generated corner dots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := opts.loadLayout()
			if err != nil {
				return err
			}
			if asJSON {
				return writeDotsJSON(cmd.OutOrStdout(), l)
			}
			return writeDots(cmd.OutOrStdout(), l)
		},
	}

	c.Flags().BoolVar(&asJSON, "json", false, "write the dots as JSON")
	return c
}

func writeDots(w io.Writer, l *slotdots.Layout) error {
	if _, err := fmt.Fprintf(w, "Adding %d dots per corner arc\n", l.DotCount); err != nil {
		return err
	}
	for _, arc := range l.Arcs() {
		_, err := fmt.Fprintf(w, "\n%s corner dots (%g° to %g°):\n", arc.Corner, arc.Arc.StartDeg, arc.Arc.EndDeg)
		if err != nil {
			return err
		}
		for _, p := range arc.Points {
			if _, err := fmt.Fprintf(w, "  (%.1f, %.1f)\n", p.X, p.Y); err != nil {
				return err
			}
		}
	}
	return nil
}

type jsonLayout struct {
	ArcRadius float64      `json:"arc_radius"`
	DotCount  int          `json:"dots_per_corner"`
	Corners   []jsonCorner `json:"corners"`
}

type jsonCorner struct {
	Name     string     `json:"name"`
	Center   [2]float64 `json:"center"`
	StartDeg float64    `json:"start_deg"`
	EndDeg   float64    `json:"end_deg"`
	Dots     []jsonDot  `json:"dots"`
}

type jsonDot struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Path string  `json:"path"`
}

func writeDotsJSON(w io.Writer, l *slotdots.Layout) error {
	out := jsonLayout{
		ArcRadius: l.Corners.ArcRadius,
		DotCount:  l.DotCount,
	}
	for _, arc := range l.Arcs() {
		jc := jsonCorner{
			Name:     arc.Corner.String(),
			Center:   [2]float64{arc.Arc.Center.X, arc.Arc.Center.Y},
			StartDeg: arc.Arc.StartDeg,
			EndDeg:   arc.Arc.EndDeg,
		}
		for _, p := range arc.Points {
			jc.Dots = append(jc.Dots, jsonDot{
				X:    p.X,
				Y:    p.Y,
				Path: string(l.Emitter.Emit(p)),
			})
		}
		out.Corners = append(out.Corners, jc)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
