// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ExitSuccess is returned for a completed conversion and for help/version output.
	ExitSuccess ExitCode = 0
	// ExitFailure is the generic failure code. It is reported for unknown
	// options, a missing input file, unexpected resolver failures, and
	// library-reported load/save errors alike.
	ExitFailure ExitCode = -1
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents the process exit status of a gvox-cli invocation.
	// Valid values are ExitFailure (-1) and the POSIX range 0-255.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// accepted range.
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be -1 or in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is neither ExitFailure nor in 0-255.
func (c ExitCode) Validate() error {
	if c == ExitFailure {
		return nil
	}
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates success.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// Ptr returns a pointer to a copy of c. It is used to populate optional
// exit-code fields.
func (c ExitCode) Ptr() *ExitCode { return &c }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
