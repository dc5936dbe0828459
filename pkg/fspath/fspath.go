// SPDX-License-Identifier: MPL-2.0

// Package fspath provides the path operations used to resolve input and
// output files: extension inspection with the same rules for dotfiles and
// trailing dots everywhere, extension concatenation, and existence probing
// through an afero.Fs so resolution can be exercised against an in-memory
// filesystem.
package fspath

import (
	"fmt"
	"os"
	"strings"

	"github.com/GabeRundlett/gvox-cli/pkg/types"

	"github.com/spf13/afero"
)

// Filename returns the last element of p without stripping trailing
// separators. A path ending in a separator has an empty filename.
func Filename(p types.FilesystemPath) string {
	s := string(p)
	for i := len(s) - 1; i >= 0; i-- {
		if os.IsPathSeparator(s[i]) {
			return s[i+1:]
		}
	}
	return s
}

// Ext returns the extension of the filename of p, including the leading dot.
//
// Unlike filepath.Ext, a leading dot does not start an extension (".vox" has
// none) and "." and ".." have none. A trailing dot is an extension of its own
// ("scene." has extension ".").
func Ext(p types.FilesystemPath) string {
	name := Filename(p)
	if name == "." || name == ".." {
		return ""
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i:]
}

// ExtName returns Ext(p) without the leading dot.
func ExtName(p types.FilesystemPath) string {
	return strings.TrimPrefix(Ext(p), ".")
}

// HasExt reports whether p has an extension.
func HasExt(p types.FilesystemPath) bool {
	return Ext(p) != ""
}

// AppendExt returns p with "." + ext concatenated. Any existing extension is
// kept: AppendExt("scene.bin", "gvox") is "scene.bin.gvox".
func AppendExt(p types.FilesystemPath, ext string) types.FilesystemPath {
	return types.FilesystemPath(string(p) + "." + ext)
}

// Exists reports whether anything (file or directory) exists at p on fsys.
// The empty path names nothing.
func Exists(fsys afero.Fs, p types.FilesystemPath) (bool, error) {
	if p == "" {
		return false, nil
	}
	ok, err := afero.Exists(fsys, string(p))
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", p, err)
	}
	return ok, nil
}
