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
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/slotdots"
	"seehuhn.de/go/slotdots/report"
)

func reportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report <file.svg>",
		Short: "Count the dots in a patched SVG asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.loadLayout()
			if err != nil {
				return err
			}

			b, err := os.ReadFile(args[0])
			if err != nil {
				return &slotdots.OpError{Op: "cli.report", Kind: slotdots.KindIO, Path: args[0], Err: err}
			}

			r := report.Scan(string(b), l)
			return r.Print(cmd.OutOrStdout())
		},
	}
}
