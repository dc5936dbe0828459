// SPDX-License-Identifier: MPL-2.0

package types

// FilesystemPath is an input or output path as the user typed it or as
// the resolver derived it. It is never normalized; extensions are appended
// by concatenation. The empty path is a valid path without extension.
type FilesystemPath string

// String returns the string representation of the FilesystemPath.
func (p FilesystemPath) String() string { return string(p) }
