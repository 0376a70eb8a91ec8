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
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/slotdots"
)

func writeSample(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "light-blubs.svg")
	if err := os.WriteFile(p, []byte(content), 0o640); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPatchFile(t *testing.T) {
	fname := writeSample(t, sampleDoc)
	frags := testFragments()

	var logBuf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logBuf, nil))

	res, err := defaultPatcher().PatchFile(fname, frags, Options{Logger: log})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Written || res.Inserted != len(frags) {
		t.Errorf("unexpected result %+v", res)
	}

	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := defaultPatcher().Patch(sampleDoc, frags)
	if string(b) != want {
		t.Errorf("file content %q, want %q", b, want)
	}
	if res.BytesOut != len(want) || res.BytesIn != len(sampleDoc) {
		t.Errorf("byte counts %d/%d, want %d/%d", res.BytesIn, res.BytesOut, len(sampleDoc), len(want))
	}

	fi, err := os.Stat(fname)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0o640 {
		t.Errorf("file mode %v, want 0640", fi.Mode().Perm())
	}

	if !strings.Contains(logBuf.String(), "patch.written") {
		t.Errorf("log lacks patch.written event: %s", logBuf.String())
	}

	// no temporary files left behind
	entries, err := os.ReadDir(filepath.Dir(fname))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want 1", len(entries))
	}
}

func TestPatchFileRefusesSecondRun(t *testing.T) {
	fname := writeSample(t, sampleDoc)
	frags := testFragments()
	p := defaultPatcher()

	if _, err := p.PatchFile(fname, frags, Options{}); err != nil {
		t.Fatal(err)
	}
	once, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}

	_, err = p.PatchFile(fname, frags, Options{})
	if !errors.Is(err, slotdots.ErrAlreadyPatched) {
		t.Fatalf("expected ErrAlreadyPatched, got %v", err)
	}
	again, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(once, again) {
		t.Error("refused patch modified the file")
	}

	// Force restores the historical behaviour.
	if _, err := p.PatchFile(fname, frags, Options{Force: true}); err != nil {
		t.Fatal(err)
	}
	forced, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(forced), Join(frags)); n != 2 {
		t.Errorf("found %d copies after forced patch, want 2", n)
	}
}

func TestPatchFileAnchorNotFound(t *testing.T) {
	content := `<svg><path d="M0,0"/></svg>`
	fname := writeSample(t, content)

	_, err := defaultPatcher().PatchFile(fname, testFragments(), Options{})
	if !slotdots.IsKind(err, slotdots.KindAnchorNotFound) {
		t.Fatalf("expected anchor_not_found, got %v", err)
	}
	if !strings.Contains(err.Error(), fname) {
		t.Errorf("error %q does not name the file", err)
	}

	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != content {
		t.Error("file modified despite missing anchor")
	}
}

func TestPatchFileDryRun(t *testing.T) {
	fname := writeSample(t, sampleDoc)

	res, err := defaultPatcher().PatchFile(fname, testFragments(), Options{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Written {
		t.Error("dry run reports a write")
	}
	if len(res.Document) <= len(sampleDoc) {
		t.Error("dry run did not compute the patched document")
	}

	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != sampleDoc {
		t.Error("dry run modified the file")
	}
}

func TestPatchFileMissing(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing.svg")

	_, err := defaultPatcher().PatchFile(fname, testFragments(), Options{})
	if !errors.Is(err, slotdots.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected the cause to be preserved, got %v", err)
	}
}
