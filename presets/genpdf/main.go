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

// Command genpdf writes preview images for all slot presets.
// For every preset it creates a PDF showing the border centerline with
// the corner dots, and a PNG of the dots alone.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/slotdots"
	"seehuhn.de/go/slotdots/presets"
	"seehuhn.de/go/slotdots/preview"
)

const outDir = "testdata/preview"

func main() {
	// Create output directory
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, name := range presets.Names() {
		l, err := slotdots.NewLayout(presets.All[name])
		if err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}

		pdfPath := filepath.Join(outDir, name+".pdf")
		pngPath := filepath.Join(outDir, name+".png")

		if err := preview.WritePDF(pdfPath, l); err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
		if err := renderPNG(l, pngPath); err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
	}
}

func renderPNG(l *slotdots.Layout, pngPath string) error {
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := preview.RenderPNG(f, l, 2); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
