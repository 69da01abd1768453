// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bpa

import (
	"errors"
	"fmt"
)

// Kind classifies a reconstruction error per the taxonomy in spec §7.
type Kind int

const (
	// KindInvalidInput marks ρ ≤ 0, an empty cloud, a non-finite position
	// or normal, or a zero-length normal.
	KindInvalidInput Kind = iota + 1
	// KindTimeout marks a driver run that exceeded its iteration cap. A
	// should-continue hook returning false is not an error.
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindTimeout:
		return "Timeout"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the error type returned by Reconstruct. NoMesh is deliberately
// not represented here: spec §7 treats it as a successful return (a nil
// *Mesh with a nil error), not an error value.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, &bpa.Error{Kind: bpa.KindInvalidInput}).
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	return ok && te.Kind == e.Kind
}

// ErrNoMesh is a sentinel callers may compare a *wrapped* error against once
// they've chosen to treat "no mesh" as failure in their own context (e.g. a
// CLI that wants a non-zero exit code). Reconstruct itself never returns
// this value: per spec §7, NoMesh is a successful (nil, nil) return, not an
// error. bpaio/cmd callers that want an error to propagate construct one
// with fmt.Errorf("...: %w", bpa.ErrNoMesh) after observing a nil mesh.
var ErrNoMesh = errors.New("bpa: reconstruction produced no triangles")

func invalidInput(format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Msg: "bpa: " + fmt.Sprintf(format, args...)}
}

func timeout(format string, args ...any) error {
	return &Error{Kind: KindTimeout, Msg: "bpa: " + fmt.Sprintf(format, args...)}
}
