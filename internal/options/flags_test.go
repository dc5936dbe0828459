// SPDX-License-Identifier: MPL-2.0

package options

import (
	"slices"
	"testing"
)

func TestUnknownTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"none", nil, nil},
		{"known long flags", []string{"--input", "a", "--output_raw", "--output_fmt=vox"}, nil},
		{"known shorthands", []string{"-i", "a", "-o", "b", "-h"}, nil},
		{"shorthand with attached value", []string{"-iscene.vox"}, nil},
		{"value that looks like a flag is consumed", []string{"-i", "--bogus"}, nil},
		{"aliases", []string{"--i_fmt", "magicavoxel", "--o_fmt=vox", "--o_raw", "--input_format", "gvox", "--output_format", "vox"}, nil},
		{"shorthand bool with explicit value", []string{"-v=true", "-h=false"}, nil},
		{"shorthand with equals value", []string{"-i=scene", "-o=out"}, nil},
		{"unknown shorthand with equals value", []string{"-x=1"}, []string{"-x"}},
		{"unknown long flag", []string{"--bogus"}, []string{"--bogus"}},
		{"unknown long flag with value", []string{"--bogus=1", "-i", "a"}, []string{"--bogus=1"}},
		{"positional", []string{"scene.vox"}, []string{"scene.vox"}},
		{"unknown shorthand", []string{"-x"}, []string{"-x"}},
		{"cluster with unknown shorthand", []string{"-hx"}, []string{"-x"}},
		{"after terminator", []string{"-h", "--", "a", "--b"}, []string{"a", "--b"}},
		{"order is kept", []string{"b", "--a", "-z"}, []string{"b", "--a", "-z"}},
		{"single dash is positional", []string{"-"}, []string{"-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := UnknownTokens(NewFlagSet(), tt.args)
			if !slices.Equal(got, tt.want) {
				t.Errorf("UnknownTokens(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestNewFlagSet_Aliases(t *testing.T) {
	t.Parallel()

	fs := NewFlagSet()
	args := []string{"--i_fmt", "magicavoxel", "--o_fmt", "ace_of_spades", "--o_raw"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%q) = %v", args, err)
	}

	checks := map[string]string{
		FlagInputFormat:  "magicavoxel",
		FlagOutputFormat: "ace_of_spades",
		FlagOutputRaw:    "true",
	}
	for name, want := range checks {
		f := fs.Lookup(name)
		if f == nil {
			t.Fatalf("flag %q not registered", name)
		}
		if got := f.Value.String(); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
		if !fs.Changed(name) {
			t.Errorf("%s should be marked changed", name)
		}
	}
}

func TestNewFlagSet_Defaults(t *testing.T) {
	t.Parallel()

	fs := NewFlagSet()
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse(nil) = %v", err)
	}

	defaults := map[string]string{
		FlagInput:        DefaultInput,
		FlagInputFormat:  "gvox",
		FlagOutput:       DefaultOutput,
		FlagOutputFormat: "gvox_u32_palette",
		FlagOutputRaw:    "false",
		FlagVersion:      "false",
		FlagHelp:         "false",
	}
	for name, want := range defaults {
		if got := fs.Lookup(name).Value.String(); got != want {
			t.Errorf("default %s = %q, want %q", name, got, want)
		}
	}
}
