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

package slotdots

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrAnchorNotFound = errors.New("anchor not found")
	ErrIO             = errors.New("i/o failure")
	ErrAlreadyPatched = errors.New("document already patched")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidConfig  ErrorKind = "invalid_config"
	KindAnchorNotFound ErrorKind = "anchor_not_found"
	KindIO             ErrorKind = "io_failure"
	KindAlreadyPatched ErrorKind = "already_patched"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // optional: the file involved
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match an OpError against the sentinel of its kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	return target == e.Kind.sentinel()
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidConfig:
		return ErrInvalidConfig
	case KindAnchorNotFound:
		return ErrAnchorNotFound
	case KindIO:
		return ErrIO
	case KindAlreadyPatched:
		return ErrAlreadyPatched
	}
	return nil
}

// IsKind reports whether err is an OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// invalid builds an InvalidConfiguration error for op.
func invalid(op, format string, args ...any) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf(format, args...),
	}
}
