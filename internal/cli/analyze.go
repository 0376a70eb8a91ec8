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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/slotdots"
)

func analyzeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Print the border centerline and corner arc geometry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := opts.loadLayout()
			if err != nil {
				return err
			}
			return printAnalysis(cmd.OutOrStdout(), l)
		},
	}
}

func printAnalysis(w io.Writer, l *slotdots.Layout) error {
	s := l.Config.Slot
	c := l.Corners

	lines := []string{
		fmt.Sprintf("Slot: %g×%g rem, border %g rem, corner radius %g rem",
			s.Width, s.Height, s.BorderWidth, s.CornerRadius),
		fmt.Sprintf("Image: %g×%g render units", l.Config.Image.Width, l.Config.Image.Height),
		"",
		fmt.Sprintf("Border centerline: %.4f rem from the edges", s.BorderWidth/2),
		fmt.Sprintf("  Top edge:    Y = %.1f", c.Top),
		fmt.Sprintf("  Bottom edge: Y = %.1f", c.Bottom),
		fmt.Sprintf("  Left edge:   X = %.1f", c.Left),
		fmt.Sprintf("  Right edge:  X = %.1f", c.Right),
		"",
		"Corner arc centers:",
	}
	for _, corner := range slotdots.AllCorners {
		p := c.Centers[corner]
		lines = append(lines, fmt.Sprintf("  %-13s (%.1f, %.1f)", corner.String()+":", p.X, p.Y))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Arc radius: %.1f render units (%.4f rem)", c.ArcRadius, s.CornerRadius-s.BorderWidth/2),
		fmt.Sprintf("Arc radius with vertical scale: %.1f render units", c.ArcRadiusY),
		fmt.Sprintf("Arc length per corner: %.1f render units", l.ArcLength()),
		fmt.Sprintf("Straight-edge dot spacing: %.1f render units", l.EdgeSpacing()),
		fmt.Sprintf("Dots per corner arc: %d", l.DotCount),
	)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
