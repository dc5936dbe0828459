// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GabeRundlett/gvox-cli/internal/issue"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "gvox-cli"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// CUEExt is the primary config file extension.
	CUEExt = "cue"
	// TOMLExt is the alternative config file extension.
	TOMLExt = "toml"
	// LocalConfigFile is looked up in the working directory as a last resort.
	LocalConfigFile = AppName + "." + CUEExt

	// MaxFileSize bounds the config file size.
	MaxFileSize = 1 << 20
)

// ErrConfigNotFound is returned when an explicit --config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the gvox-cli configuration directory inside the
// platform's user configuration directory.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// loadWithOptions loads the configuration and reports which file, if any,
// it came from.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("convert.input_format", string(defaults.Convert.InputFormat))
	v.SetDefault("convert.output_format", string(defaults.Convert.OutputFormat))
	v.SetDefault("convert.output_raw", defaults.Convert.OutputRaw)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.color_scheme", string(defaults.UI.ColorScheme))

	resolvedPath := ""

	if opts.ConfigFilePath != "" {
		if !fileExists(fsys, opts.ConfigFilePath) {
			return nil, "", loadError(opts.ConfigFilePath,
				fmt.Errorf("%w: %s", ErrConfigNotFound, opts.ConfigFilePath),
				"Verify the --config path is correct",
				"Check that the file exists and is readable",
			)
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		// Without a user config directory only the local file is consulted.
		var candidates []string
		if cfgDir, err := configDirWithOverride(opts.ConfigDirPath); err == nil {
			candidates = append(candidates,
				filepath.Join(cfgDir, ConfigFileName+"."+CUEExt),
				filepath.Join(cfgDir, ConfigFileName+"."+TOMLExt),
			)
		}
		candidates = append(candidates, LocalConfigFile)
		for _, candidate := range candidates {
			if fileExists(fsys, candidate) {
				resolvedPath = candidate
				break
			}
		}
	}

	if resolvedPath != "" {
		if err := mergeFile(v, fsys, resolvedPath); err != nil {
			return nil, "", loadError(resolvedPath, err,
				"Check the file syntax",
				"Verify the configuration values match the expected schema",
			)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", loadError(resolvedPath, err,
			"Format names must be non-empty and contain no whitespace",
			"color_scheme must be one of auto, dark, light",
		)
	}

	return &cfg, resolvedPath, nil
}

func loadError(path string, cause error, suggestions ...string) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestions(suggestions...).
		WithIssue(issue.ConfigLoadFailedID).
		Wrap(cause).
		BuildError()
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// mergeFile reads path and merges it into v according to its extension.
// Anything that is not .toml is treated as CUE.
func mergeFile(v *viper.Viper, fsys afero.Fs, path string) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > MaxFileSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", path, len(data), MaxFileSize)
	}

	var configMap map[string]any
	if strings.EqualFold(filepath.Ext(path), "."+TOMLExt) {
		configMap, err = decodeTOML(data, path)
	} else {
		configMap, err = decodeCUE(data, path)
	}
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// decodeCUE validates data against #Config and decodes it to a map.
func decodeCUE(data []byte, path string) (map[string]any, error) {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return nil, formatCUEError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return nil, formatCUEError(err, path)
	}
	return configMap, nil
}

// tomlShape is the accepted TOML layout. It only exists to reject unknown keys.
type tomlShape struct {
	Convert struct {
		InputFormat  string `toml:"input_format"`
		OutputFormat string `toml:"output_format"`
		OutputRaw    bool   `toml:"output_raw"`
	} `toml:"convert"`
	UI struct {
		Verbose     bool   `toml:"verbose"`
		ColorScheme string `toml:"color_scheme"`
	} `toml:"ui"`
}

// decodeTOML decodes data strictly and returns it as a map.
func decodeTOML(data []byte, path string) (map[string]any, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var shape tomlShape
	if err := dec.Decode(&shape); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var configMap map[string]any
	if err := toml.Unmarshal(data, &configMap); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return configMap, nil
}

// formatCUEError flattens CUE errors into "<file>: <field.path>: <message>" lines.
func formatCUEError(err error, path string) error {
	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", path, err)
	}

	lines := make([]string, 0, len(cueErrs))
	for _, e := range cueErrs {
		fieldPath := strings.Join(cueerrors.Path(e), ".")
		msg := e.Error()
		if fieldPath != "" && strings.HasPrefix(msg, fieldPath) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, fieldPath), ":"))
		}
		if fieldPath != "" {
			lines = append(lines, fieldPath+": "+msg)
		} else {
			lines = append(lines, msg)
		}
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", path, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", path, strings.Join(lines, "\n  "))
}

// fileExists reports whether path exists on fsys and is not a directory.
func fileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}

// GenerateCUE renders cfg as a config.cue file.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// gvox-cli configuration file\n\n")

	sb.WriteString("convert: {\n")
	fmt.Fprintf(&sb, "\tinput_format:  %q\n", cfg.Convert.InputFormat)
	fmt.Fprintf(&sb, "\toutput_format: %q\n", cfg.Convert.OutputFormat)
	fmt.Fprintf(&sb, "\toutput_raw:    %v\n", cfg.Convert.OutputRaw)
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tverbose:      %v\n", cfg.UI.Verbose)
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	sb.WriteString("}\n")

	return sb.String()
}
