// SPDX-License-Identifier: MPL-2.0

package fspath

import (
	"testing"

	"github.com/GabeRundlett/gvox-cli/pkg/types"

	"github.com/spf13/afero"
)

func TestExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path types.FilesystemPath
		want string
	}{
		{"input", ""},
		{"input.gvox", ".gvox"},
		{"scene.bin.gvox", ".gvox"},
		{"models/castle.vox", ".vox"},
		{"models.d/castle", ""},
		{".vox", ""},
		{".hidden.vxl", ".vxl"},
		{"scene.", "."},
		{".", ""},
		{"..", ""},
		{"dir/", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			t.Parallel()

			if got := Ext(tt.path); got != tt.want {
				t.Errorf("Ext(%q) = %q, want %q", tt.path, got, tt.want)
			}
			if got, want := HasExt(tt.path), tt.want != ""; got != want {
				t.Errorf("HasExt(%q) = %v, want %v", tt.path, got, want)
			}
		})
	}
}

func TestExtName(t *testing.T) {
	t.Parallel()

	if got := ExtName("scene.vxl"); got != "vxl" {
		t.Errorf("ExtName(scene.vxl) = %q, want %q", got, "vxl")
	}
	if got := ExtName("scene"); got != "" {
		t.Errorf("ExtName(scene) = %q, want empty", got)
	}
}

func TestFilename(t *testing.T) {
	t.Parallel()

	if got := Filename("a/b/c.vox"); got != "c.vox" {
		t.Errorf("Filename(a/b/c.vox) = %q, want %q", got, "c.vox")
	}
	if got := Filename("a/b/"); got != "" {
		t.Errorf("Filename(a/b/) = %q, want empty", got)
	}
}

func TestAppendExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path types.FilesystemPath
		ext  string
		want types.FilesystemPath
	}{
		{"output", "gvox", "output.gvox"},
		{"foo.bin", "gvox", "foo.bin.gvox"},
		{"out/scene", "vox", "out/scene.vox"},
	}

	for _, tt := range tests {
		if got := AppendExt(tt.path, tt.ext); got != tt.want {
			t.Errorf("AppendExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}

func TestExists(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "scene.vox", []byte("VOX "), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := fsys.MkdirAll("models", 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	tests := []struct {
		path types.FilesystemPath
		want bool
	}{
		{"scene.vox", true},
		{"models", true},
		{"scene", false},
		{"scene.gvox", false},
		{"", false},
	}

	for _, tt := range tests {
		got, err := Exists(fsys, tt.path)
		if err != nil {
			t.Fatalf("Exists(%q) error: %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
