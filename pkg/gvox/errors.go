// SPDX-License-Identifier: MPL-2.0

package gvox

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// OpLoad identifies a failed scene load.
	OpLoad Op = "load"
	// OpSave identifies a failed scene save.
	OpSave Op = "save"
)

var (
	// ErrLibrary is the sentinel error wrapped by *Error.
	ErrLibrary = errors.New("gvox library error")
	// ErrContextClosed is returned when a Context is used after Close.
	ErrContextClosed = errors.New("gvox context is closed")
)

type (
	// Op names the library operation that failed.
	Op string

	// Error carries every message the library queued for a failed
	// operation, in queue order.
	Error struct {
		Op       Op
		Path     string
		Messages []string
	}
)

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "gvox %s %s failed", e.Op, e.Path)
	if len(e.Messages) > 0 {
		sb.WriteString(": ")
		sb.WriteString(strings.Join(e.Messages, "; "))
	}
	return sb.String()
}

// Unwrap returns ErrLibrary for errors.Is() compatibility.
func (e *Error) Unwrap() error { return ErrLibrary }
