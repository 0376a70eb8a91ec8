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

package svgpatch

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"seehuhn.de/go/slotdots"
)

// Options control [Patcher.PatchFile].
type Options struct {
	// Force patches the file even if the fragments are already present.
	Force bool

	// DryRun computes the patched document but does not write it.
	DryRun bool

	// Logger receives progress events. Nil means no logging.
	Logger *slog.Logger
}

// Result describes a completed PatchFile call.
type Result struct {
	Path     string
	Position int // byte offset of the insertion
	Inserted int // number of fragments inserted
	BytesIn  int // size of the original document
	BytesOut int // size of the patched document
	Written  bool
	Document string // the patched document
}

// PatchFile reads the document at path, inserts frags and writes the
// result back. The file is left untouched if anything goes wrong: a
// missing anchor, an earlier insertion of the same fragments (unless
// opts.Force is set) or an I/O error.
func (p *Patcher) PatchFile(path string, frags []slotdots.Fragment, opts Options) (Result, error) {
	const op = "svgpatch.patch_file"

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, &slotdots.OpError{Op: op, Kind: slotdots.KindIO, Path: path, Err: err}
	}
	doc := string(b)
	log.Debug("patch.read", "path", path, "bytes", len(doc))

	if !opts.Force && p.AlreadyPatched(doc, frags) {
		return Result{}, &slotdots.OpError{
			Op:   op,
			Kind: slotdots.KindAlreadyPatched,
			Path: path,
			Err:  slotdots.ErrAlreadyPatched,
		}
	}

	patched, err := p.Patch(doc, frags)
	if err != nil {
		if oe, ok := err.(*slotdots.OpError); ok {
			oe.Path = path
		}
		return Result{}, err
	}

	res := Result{
		Path:     path,
		Position: p.Position(doc),
		Inserted: len(frags),
		BytesIn:  len(doc),
		BytesOut: len(patched),
		Document: patched,
	}

	if opts.DryRun {
		log.Info("patch.dry_run", "path", path, "fragments", len(frags))
		return res, nil
	}

	if err := writeFile(path, []byte(patched)); err != nil {
		return Result{}, &slotdots.OpError{Op: op, Kind: slotdots.KindIO, Path: path, Err: err}
	}
	res.Written = true
	log.Info("patch.written", "path", path, "fragments", len(frags), "bytes", len(patched))
	return res, nil
}

// writeFile replaces the file at path by data. The new content is
// written to a temporary file in the same directory first and renamed
// into place, so that readers never see a partially written document.
func writeFile(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
