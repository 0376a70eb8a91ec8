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
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/slotdots"
	"seehuhn.de/go/slotdots/internal/logger"
	"seehuhn.de/go/slotdots/preview"
)

func previewCmd(opts *globalOptions) *cobra.Command {
	var scale float64
	var source string

	c := &cobra.Command{
		Use:   "preview <out.png|out.pdf>",
		Short: "Render the corner dots to a PNG or PDF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale <= 0 {
				return &slotdots.OpError{
					Op:   "cli.preview",
					Kind: slotdots.KindInvalidConfig,
					Err:  fmt.Errorf("scale %g must be positive", scale),
				}
			}

			out := args[0]
			if source != "" {
				if err := writeSVGPreview(out, source, scale); err != nil {
					return err
				}
				logger.L().Info("preview.written", "path", out, "source", source)
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", out)
				return nil
			}

			l, err := opts.loadLayout()
			if err != nil {
				return err
			}

			switch strings.ToLower(filepath.Ext(out)) {
			case ".pdf":
				err = preview.WritePDF(out, l)
			case ".png":
				err = writePNG(out, l, scale)
			default:
				return fmt.Errorf("unsupported preview format %q (want .png or .pdf)", filepath.Ext(out))
			}
			if err != nil {
				return &slotdots.OpError{Op: "cli.preview", Kind: slotdots.KindIO, Path: out, Err: err}
			}

			logger.L().Info("preview.written", "path", out)
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", out)
			return nil
		},
	}

	c.Flags().Float64Var(&scale, "scale", 1, "pixels per render unit (PNG only)")
	c.Flags().StringVar(&source, "svg", "", "render this SVG document, e.g. a patched asset, instead of the bare dots")
	return c
}

func writePNG(fname string, l *slotdots.Layout, scale float64) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := preview.RenderPNG(f, l, scale); err != nil {
		f.Close()
		os.Remove(fname)
		return err
	}
	return f.Close()
}

func writeSVGPreview(out, source string, scale float64) error {
	const op = "cli.preview"

	if ext := strings.ToLower(filepath.Ext(out)); ext != ".png" {
		return fmt.Errorf("unsupported format %q for an SVG preview (want .png)", ext)
	}

	in, err := os.Open(source)
	if err != nil {
		return &slotdots.OpError{Op: op, Kind: slotdots.KindIO, Path: source, Err: err}
	}
	defer in.Close()

	f, err := os.Create(out)
	if err != nil {
		return &slotdots.OpError{Op: op, Kind: slotdots.KindIO, Path: out, Err: err}
	}
	if err := preview.RenderSVG(f, in, scale); err != nil {
		f.Close()
		os.Remove(out)
		return fmt.Errorf("%s: rendering %s: %w", op, source, err)
	}
	if err := f.Close(); err != nil {
		return &slotdots.OpError{Op: op, Kind: slotdots.KindIO, Path: out, Err: err}
	}
	return nil
}
