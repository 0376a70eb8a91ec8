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

	"github.com/spf13/cobra"

	"seehuhn.de/go/slotdots/presets"
)

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in slot configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range presets.Names() {
				cfg := presets.All[name]
				s := cfg.Slot
				_, err := fmt.Fprintf(out, "%-14s %g×%g rem, border %g, radius %g, image %g×%g\n",
					name, s.Width, s.Height, s.BorderWidth, s.CornerRadius,
					cfg.Image.Width, cfg.Image.Height)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
