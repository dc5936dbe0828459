// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorScheme_Validate(t *testing.T) {
	t.Parallel()

	for _, cs := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		if err := cs.Validate(); err != nil {
			t.Errorf("ColorScheme(%q).Validate() = %v", cs, err)
		}
	}

	err := ColorScheme("neon").Validate()
	if !errors.Is(err, ErrInvalidColorScheme) {
		t.Errorf("Validate() = %v, want ErrInvalidColorScheme", err)
	}
	var csErr *InvalidColorSchemeError
	if !errors.As(err, &csErr) || csErr.Value != "neon" {
		t.Errorf("error should be *InvalidColorSchemeError with value, got %v", err)
	}
}

func TestColorScheme_GlamourStyle(t *testing.T) {
	t.Parallel()

	tests := map[ColorScheme]string{
		ColorSchemeAuto:  "auto",
		ColorSchemeDark:  "dark",
		ColorSchemeLight: "light",
		"":               "auto",
	}
	for cs, want := range tests {
		if got := cs.GlamourStyle(); got != want {
			t.Errorf("ColorScheme(%q).GlamourStyle() = %q, want %q", cs, got, want)
		}
	}
}

func TestConfig_ValidateCollectsFieldErrors(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Convert: ConvertConfig{InputFormat: "", OutputFormat: "a b"},
		UI:      UIConfig{ColorScheme: "neon"},
	}

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
	}
	var cfgErr *InvalidConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error should be *InvalidConfigError, got %T", err)
	}
	if len(cfgErr.FieldErrors) != 3 {
		t.Errorf("FieldErrors = %v, want 3 entries", cfgErr.FieldErrors)
	}
	if !errors.Is(cfgErr.FieldErrors[0], ErrInvalidFormat) {
		t.Errorf("first field error = %v, want ErrInvalidFormat", cfgErr.FieldErrors[0])
	}
}
