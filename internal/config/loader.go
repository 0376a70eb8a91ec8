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

// Package config reads slot configurations from YAML files.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/slotdots"
)

// Load reads the YAML file at path and overlays it onto base.
// Unknown keys are rejected.
func Load(path string, base slotdots.Config) (slotdots.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return slotdots.Config{}, &slotdots.OpError{
			Op:   "config.load",
			Kind: slotdots.KindIO,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return slotdots.Config{}, &slotdots.OpError{
			Op:   "config.load",
			Kind: slotdots.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return Apply(path, base, dto)
}
