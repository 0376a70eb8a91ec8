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

// Package svgpatch splices dot fragments into an SVG document.
//
// The document is treated as opaque text. The only structure relied on
// is an anchor token near the end of the decorative path group; the new
// fragments are inserted directly after the first bytes of its last
// occurrence.
package svgpatch

import (
	"errors"
	"strings"

	"seehuhn.de/go/slotdots"
)

// Patcher inserts fragments at a fixed anchor.
type Patcher struct {
	Anchor slotdots.Anchor
}

// New returns a Patcher for the given anchor.
func New(anchor slotdots.Anchor) *Patcher {
	return &Patcher{Anchor: anchor}
}

// Position returns the byte offset at which fragments would be inserted
// into doc, or -1 if the anchor token does not occur.
func (p *Patcher) Position(doc string) int {
	idx := strings.LastIndex(doc, p.Anchor.Token)
	if idx < 0 {
		return -1
	}
	return idx + p.Anchor.Offset
}

// Patch returns doc with the concatenation of frags inserted at the last
// occurrence of the anchor. If the anchor is missing, Patch returns doc
// unchanged together with an AnchorNotFound error.
//
// Patch does not check whether the fragments are already present;
// calling it twice inserts them twice. See [Patcher.AlreadyPatched].
func (p *Patcher) Patch(doc string, frags []slotdots.Fragment) (string, error) {
	pos := p.Position(doc)
	if pos < 0 {
		return doc, &slotdots.OpError{
			Op:   "svgpatch.patch",
			Kind: slotdots.KindAnchorNotFound,
			Err:  errors.New("token " + quote(p.Anchor.Token) + " not found"),
		}
	}

	ins := Join(frags)

	var b strings.Builder
	b.Grow(len(doc) + len(ins))
	b.WriteString(doc[:pos])
	b.WriteString(ins)
	b.WriteString(doc[pos:])
	return b.String(), nil
}

// AlreadyPatched reports whether doc already contains the exact run of
// fragments in frags. An empty fragment list is never reported as
// present.
func (p *Patcher) AlreadyPatched(doc string, frags []slotdots.Fragment) bool {
	ins := Join(frags)
	if ins == "" {
		return false
	}
	return strings.Contains(doc, ins)
}

// Join concatenates fragments in order.
func Join(frags []slotdots.Fragment) string {
	n := 0
	for _, f := range frags {
		n += len(f)
	}
	var b strings.Builder
	b.Grow(n)
	for _, f := range frags {
		b.WriteString(string(f))
	}
	return b.String()
}

func quote(s string) string {
	return "`" + s + "`"
}
