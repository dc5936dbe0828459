// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GabeRundlett/gvox-cli/pkg/gvox"
)

const (
	// ColorSchemeAuto detects the terminal background.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark glamour style.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light glamour style.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidFormat is returned when a configured format is empty or contains whitespace.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme selects the style used to render issue guides.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidFormatError is returned when a configured format is unusable.
	InvalidFormatError struct {
		Field string
		Value gvox.Format
	}

	// InvalidConfigError collects field-level validation errors.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Convert holds conversion defaults.
		Convert ConvertConfig `json:"convert" mapstructure:"convert"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// ConvertConfig holds defaults for flags the user did not set.
	ConvertConfig struct {
		// InputFormat is the default for --input_fmt.
		InputFormat gvox.Format `json:"input_format" mapstructure:"input_format"`
		// OutputFormat is the default for --output_fmt.
		OutputFormat gvox.Format `json:"output_format" mapstructure:"output_format"`
		// OutputRaw is the default for --output_raw.
		OutputRaw bool `json:"output_raw" mapstructure:"output_raw"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		// Verbose enables debug logging and issue guides.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// ColorScheme selects the issue guide style.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
// Its conversion defaults are the built-in flag defaults.
func DefaultConfig() *Config {
	return &Config{
		Convert: ConvertConfig{
			InputFormat:  gvox.Wrapped,
			OutputFormat: gvox.DefaultOutput,
			OutputRaw:    false,
		},
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// Validate returns an InvalidConfigError listing every invalid field.
func (c Config) Validate() error {
	var errs []error
	if err := validateFormat("convert.input_format", c.Convert.InputFormat); err != nil {
		errs = append(errs, err)
	}
	if err := validateFormat("convert.output_format", c.Convert.OutputFormat); err != nil {
		errs = append(errs, err)
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so errors.Is
// matches both the config-level sentinel and any field-level one.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// Validate returns an error if cs is not auto, dark or light.
func (cs ColorScheme) Validate() error {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: cs}
	}
}

// GlamourStyle returns the glamour standard style name for cs.
func (cs ColorScheme) GlamourStyle() string {
	switch cs {
	case ColorSchemeDark:
		return "dark"
	case ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface for InvalidFormatError.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s: invalid format %q: must be non-empty and contain no whitespace", e.Field, e.Value)
}

// Unwrap returns ErrInvalidFormat for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

func validateFormat(field string, f gvox.Format) error {
	s := string(f)
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return &InvalidFormatError{Field: field, Value: f}
	}
	return nil
}
