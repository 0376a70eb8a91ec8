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

	"seehuhn.de/go/slotdots/internal/logger"
	"seehuhn.de/go/slotdots/svgpatch"
)

func patchCmd(opts *globalOptions) *cobra.Command {
	var force bool
	var dryRun bool

	c := &cobra.Command{
		Use:   "patch <file.svg>",
		Short: "Insert the corner dots into an SVG asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.loadLayout()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Arc radius: %.1f SVG units\n", l.Corners.ArcRadius)
			fmt.Fprintf(out, "Arc length per corner: %.1f SVG units\n", l.ArcLength())
			if err := writeDots(out, l); err != nil {
				return err
			}

			log := logger.L()
			log.Info("patch.start", "path", args[0], "fragments", len(l.Fragments()), "dry_run", dryRun)

			p := svgpatch.New(l.Config.Anchor)
			res, err := p.PatchFile(args[0], l.Fragments(), svgpatch.Options{
				Force:  force,
				DryRun: dryRun,
				Logger: log,
			})
			if err != nil {
				log.Error("patch.failed", "path", args[0], "error", err)
				return err
			}

			verb := "Added"
			if !res.Written {
				verb = "Would add"
			}
			fmt.Fprintf(out, "\n✓ %s %d corner dots to %s at byte %d\n", verb, res.Inserted, res.Path, res.Position)
			fmt.Fprintf(out, "  Total: %d dots for all 4 rounded corners\n", l.DotCount*4)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "insert the dots even if the document already contains them")
	c.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "do not write the patched document")
	return c
}
