// SPDX-License-Identifier: MPL-2.0

package options

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GabeRundlett/gvox-cli/internal/config"
	"github.com/GabeRundlett/gvox-cli/internal/issue"
	"github.com/GabeRundlett/gvox-cli/internal/ui"
	"github.com/GabeRundlett/gvox-cli/pkg/fspath"
	"github.com/GabeRundlett/gvox-cli/pkg/gvox"
	"github.com/GabeRundlett/gvox-cli/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"golang.org/x/exp/slices"
)

const (
	// Description is the one-line program description shown in help.
	Description = "gvox-cli is a command line interface for the gvox format library"

	bugReportMessage = "Caught an exception. This should not happen! Please open a GitHub issue with " +
		"details of what arguments you supplied at https://github.com/GabeRundlett/gvox-cli/issues"

	outputExtWarning = "The specified output file has a custom file extension, but is being saved as a gvox file. " +
		"Consider saving as a raw file, or removing the file extension from the command line argument. Appending .gvox"
)

// ErrInputNotFound is wrapped by the error reported when no input file matches.
var ErrInputNotFound = errors.New("input file not found")

type (
	// Resolved is the outcome of option resolution. When ExitNow is set the
	// invocation is already complete (help, version, or a reported error)
	// and no other field is meaningful.
	Resolved struct {
		ExitNow *types.ExitCode

		InputFormat  gvox.Format
		OutputFormat gvox.Format
		// InputRaw selects the format-explicit load entry point.
		InputRaw bool
		// OutputRaw selects the format-explicit save entry point.
		OutputRaw bool
		// InputPath names an existing file.
		InputPath types.FilesystemPath
		// OutputPath always carries an extension; it ends in .gvox unless
		// OutputRaw is set.
		OutputPath types.FilesystemPath

		Verbose     bool
		ColorScheme config.ColorScheme
		// ConfigPath is the configuration file that supplied defaults, or
		// empty when built-in defaults were used.
		ConfigPath string
	}

	// Resolver resolves argument vectors. A zero Resolver is usable: it
	// reads the OS filesystem, writes to os.Stdout/os.Stderr, and loads
	// configuration from the default locations.
	Resolver struct {
		// Fs is searched for input files.
		Fs afero.Fs
		// Stdout receives help, version and the output-extension warning.
		Stdout io.Writer
		// Stderr receives errors and diagnostics.
		Stderr io.Writer
		// Config supplies defaults for flags the user did not set.
		Config config.Provider
		// ConfigDir overrides the configuration directory lookup.
		ConfigDir string
		// Version is printed by --version.
		Version string
		// Usage writes the help text. It defaults to a plain flag listing.
		Usage func(w io.Writer, fs *pflag.FlagSet) error
	}

	// resolution holds per-call state.
	resolution struct {
		*Resolver
		fs     *pflag.FlagSet
		logger *log.Logger
		style  string
	}
)

// Exited reports whether the invocation already finished, and with which code.
func (r *Resolved) Exited() (types.ExitCode, bool) {
	if r.ExitNow == nil {
		return types.ExitSuccess, false
	}
	return *r.ExitNow, true
}

func exitWith(code types.ExitCode) *Resolved {
	return &Resolved{ExitNow: code.Ptr()}
}

// Resolve parses args (without the program name) and resolves input and
// output. It never returns nil. Any unexpected failure, including a panic,
// is reported as an internal error with ExitNow set to ExitFailure.
func (r *Resolver) Resolve(ctx context.Context, args []string) (res *Resolved) {
	rs := &resolution{
		Resolver: r,
		fs:       NewFlagSet(),
		logger:   ui.Discard(),
		style:    config.ColorSchemeAuto.GlamourStyle(),
	}

	defer func() {
		if p := recover(); p != nil {
			res = rs.internalFailure(fmt.Errorf("panic: %v", p))
		}
	}()

	return rs.resolve(ctx, args)
}

func (rs *resolution) resolve(ctx context.Context, args []string) *Resolved {
	if unknown := UnknownTokens(rs.fs, args); len(unknown) > 0 {
		return rs.unknownOptions(unknown, requestsVerbose(args))
	}

	if err := rs.fs.Parse(args); err != nil {
		return rs.internalFailure(fmt.Errorf("parse arguments: %w", err))
	}

	if rs.boolFlag(FlagHelp) || len(args) == 0 {
		if err := rs.usage(rs.stdout()); err != nil {
			return rs.internalFailure(err)
		}
		return exitWith(types.ExitSuccess)
	}

	if rs.boolFlag(FlagVersion) {
		fmt.Fprintf(rs.stdout(), "gvox-cli version %s\n", rs.Version)
		return exitWith(types.ExitSuccess)
	}

	res := &Resolved{
		InputFormat:  gvox.Format(rs.stringFlag(FlagInputFormat)),
		OutputFormat: gvox.Format(rs.stringFlag(FlagOutputFormat)),
		OutputRaw:    rs.boolFlag(FlagOutputRaw),
		Verbose:      rs.boolFlag(FlagVerbose),
		ColorScheme:  config.ColorSchemeAuto,
	}
	rs.applyConfig(ctx, res)

	rs.logger = ui.NewLogger(rs.stderr(), res.Verbose)
	rs.style = res.ColorScheme.GlamourStyle()

	res.InputRaw = !res.InputFormat.IsWrapped()
	res.InputPath = types.FilesystemPath(rs.stringFlag(FlagInput))
	res.OutputPath = types.FilesystemPath(rs.stringFlag(FlagOutput))
	if hasForeignExt(res.InputPath) {
		res.InputRaw = true
	}

	if res.ConfigPath != "" {
		rs.logger.Debug("loaded configuration", "path", res.ConfigPath)
	}
	rs.logger.Debug("parsed options",
		"input", res.InputPath, "input_fmt", res.InputFormat,
		"output", res.OutputPath, "output_fmt", res.OutputFormat,
		"output_raw", res.OutputRaw)

	if err := rs.resolveInput(res); err != nil {
		if errors.Is(err, ErrInputNotFound) {
			return rs.inputNotFound(err)
		}
		return rs.internalFailure(err)
	}

	rs.resolveOutput(res)

	rs.logger.Debug("resolved",
		"input", res.InputPath, "input_raw", res.InputRaw,
		"output", res.OutputPath, "output_raw", res.OutputRaw)

	return res
}

// applyConfig fills formats and switches the user left unset from the
// configuration file. A configuration that fails to load is reported as a
// warning and ignored.
func (rs *resolution) applyConfig(ctx context.Context, res *Resolved) {
	provider := rs.Config
	if provider == nil {
		provider = config.NewProvider()
	}

	loaded, err := provider.Load(ctx, config.LoadOptions{
		ConfigFilePath: rs.stringFlag(FlagConfig),
		ConfigDirPath:  rs.ConfigDir,
		Fs:             rs.Fs,
	})
	if err != nil {
		fmt.Fprintln(rs.stderr(), ui.WarningTag()+" "+formatError(err, res.Verbose))
		if res.Verbose {
			issue.Explain(rs.stderr(), issue.IssueOf(err), rs.style)
			fmt.Fprintf(rs.stderr(), "A valid %s.%s with the built-in defaults:\n\n%s",
				config.ConfigFileName, config.CUEExt, config.GenerateCUE(config.DefaultConfig()))
		}
		return
	}

	cfg := loaded.Config
	if !rs.fs.Changed(FlagInputFormat) {
		res.InputFormat = cfg.Convert.InputFormat
	}
	if !rs.fs.Changed(FlagOutputFormat) {
		res.OutputFormat = cfg.Convert.OutputFormat
	}
	if !rs.fs.Changed(FlagOutputRaw) {
		res.OutputRaw = cfg.Convert.OutputRaw
	}
	res.Verbose = res.Verbose || cfg.UI.Verbose
	res.ColorScheme = cfg.UI.ColorScheme
	res.ConfigPath = loaded.Path
}

// resolveOutput applies the output extension policy.
func (rs *resolution) resolveOutput(res *Resolved) {
	if !res.OutputRaw {
		if fspath.HasExt(res.OutputPath) {
			fmt.Fprintln(rs.stdout(), ui.WarningTag()+" "+outputExtWarning)
		}
		res.OutputPath = fspath.AppendExt(res.OutputPath, gvox.WrappedExt)
		return
	}
	if !fspath.HasExt(res.OutputPath) {
		res.OutputPath = fspath.AppendExt(res.OutputPath, res.OutputFormat.Extension())
	}
}

func (rs *resolution) unknownOptions(unknown []string, verbose bool) *Resolved {
	w := rs.stdout()
	fmt.Fprintf(w, "\nPassed unknown options (%s)\n\n", strings.Join(unknown, ", "))
	if err := rs.usage(w); err != nil {
		return rs.internalFailure(err)
	}
	fmt.Fprintln(w, "\nClosing.")
	if verbose {
		issue.Explain(rs.stderr(), issue.UnknownOptionsID, rs.style)
	}
	return exitWith(types.ExitFailure)
}

// requestsVerbose reports whether args ask for verbose output. Flags are not
// parsed yet when unknown options are reported, so the raw tokens are
// inspected.
func requestsVerbose(args []string) bool {
	return slices.ContainsFunc(args, func(arg string) bool {
		return arg == "--"+FlagVerbose || arg == "--"+FlagVerbose+"=true"
	})
}

func (rs *resolution) inputNotFound(err error) *Resolved {
	var ae *issue.ActionableError
	path := ""
	if errors.As(err, &ae) {
		path = ae.Resource
	}
	fmt.Fprintf(rs.stderr(), "%s Failed to find the specified input file \"%s\"\n", ui.ErrorTag(), path)
	rs.logger.Debug(formatError(err, true))
	if rs.logger.GetLevel() <= log.DebugLevel {
		issue.Explain(rs.stderr(), issue.InputFileNotFoundID, rs.style)
	}
	return exitWith(types.ExitFailure)
}

func (rs *resolution) internalFailure(err error) *Resolved {
	fmt.Fprintln(rs.stderr(), ui.ErrorTag()+" "+bugReportMessage)
	rs.logger.Debug("resolution failed", "err", err)
	if rs.logger.GetLevel() <= log.DebugLevel {
		issue.Explain(rs.stderr(), issue.InternalFailureID, rs.style)
	}
	return exitWith(types.ExitFailure)
}

func (rs *resolution) usage(w io.Writer) error {
	if rs.Usage != nil {
		return rs.Usage(w, rs.fs)
	}
	return DefaultUsage(w, rs.fs)
}

// DefaultUsage writes a plain help text for fs.
func DefaultUsage(w io.Writer, fs *pflag.FlagSet) error {
	_, err := fmt.Fprintf(w, "%s\nUsage:\n  gvox-cli [OPTION...]\n\n%s", Description, fs.FlagUsages())
	return err
}

func (rs *resolution) stdout() io.Writer {
	if rs.Stdout != nil {
		return rs.Stdout
	}
	return os.Stdout
}

func (rs *resolution) stderr() io.Writer {
	if rs.Stderr != nil {
		return rs.Stderr
	}
	return os.Stderr
}

// stringFlag and boolFlag read flags registered by NewFlagSet; lookup
// errors are impossible for those names.
func (rs *resolution) stringFlag(name string) string {
	v, _ := rs.fs.GetString(name)
	return v
}

func (rs *resolution) boolFlag(name string) bool {
	v, _ := rs.fs.GetBool(name)
	return v
}

// formatError formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
func formatError(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
