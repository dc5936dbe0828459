// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/GabeRundlett/gvox-cli/internal/config"
	"github.com/GabeRundlett/gvox-cli/internal/convert"
	"github.com/GabeRundlett/gvox-cli/internal/libgvox"
	"github.com/GabeRundlett/gvox-cli/internal/options"
	"github.com/GabeRundlett/gvox-cli/internal/ui"
	"github.com/GabeRundlett/gvox-cli/pkg/gvox"
	"github.com/GabeRundlett/gvox-cli/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

type (
	// App holds the collaborators of one gvox-cli invocation.
	App struct {
		// Backend performs the conversion.
		Backend gvox.Backend
		// LibraryMissing reports that Backend cannot load or save anything.
		LibraryMissing bool
		// Fs is searched for input and configuration files.
		Fs afero.Fs
		// Config supplies option defaults.
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewApp returns an App converting with backend on the OS filesystem and
// standard streams.
func NewApp(backend gvox.Backend) *App {
	return &App{
		Backend: backend,
		Fs:      afero.NewOsFs(),
		Config:  config.NewProvider(),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs gvox-cli with os.Args against the native gvox library and
// exits the process. This is called by main.main().
func Execute() {
	app := NewApp(libgvox.New())
	app.LibraryMissing = !libgvox.Available
	os.Exit(int(app.Execute(context.Background(), os.Args[1:])))
}

// Execute runs gvox-cli with args (without the program name) and returns
// the process exit code.
func (a *App) Execute(ctx context.Context, args []string) types.ExitCode {
	rootCmd := a.newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.Stdout)
	rootCmd.SetErr(a.Stderr)

	// Use fang.Execute for enhanced Cobra styling
	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
		fang.WithErrorHandler(handleError),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code.Validate() == nil {
		return exitErr.Code
	}
	return types.ExitFailure
}

func (a *App) newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gvox-cli [OPTION...]",
		Short: "Convert voxel scenes between gvox formats",
		Long: ui.TitleStyle.Render("gvox-cli") + ui.SubtitleStyle.Render(" - "+options.Description) + `

The input may be given without an extension; gvox-cli then looks for a file
named after the input format, its conventional extension (.vox, .vxl) and
finally .gvox.

` + ui.SubtitleStyle.Render("Examples:") + `
  gvox-cli -i scene.vox -o scene                Wrap a MagicaVoxel scene as scene.gvox
  gvox-cli -i map --input_fmt ace_of_spades     Load map.vxl (or map.ace_of_spades)
  gvox-cli -i scene -o out --output_raw --output_fmt magicavoxel
                                                Write out.vox without the gvox wrapper`,
		Args: cobra.ArbitraryArgs,
		// The resolver parses flags itself so that every unknown option is
		// reported at once and takes precedence over --help.
		DisableFlagParsing: true,
		RunE:               a.runConvert,
	}
	rootCmd.Flags().AddFlagSet(options.NewFlagSet())
	return rootCmd
}

func (a *App) runConvert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	resolver := &options.Resolver{
		Fs:      a.Fs,
		Stdout:  stdout,
		Stderr:  stderr,
		Config:  a.Config,
		Version: Version,
		Usage: func(w io.Writer, _ *pflag.FlagSet) error {
			cmd.SetOut(w)
			return cmd.Help()
		},
	}
	opts := resolver.Resolve(ctx, args)

	code, exited := opts.Exited()
	if !exited {
		dispatcher := &convert.Dispatcher{
			Backend:        a.Backend,
			Stderr:         stderr,
			Logger:         ui.NewLogger(stderr, opts.Verbose),
			GuideStyle:     opts.ColorScheme.GlamourStyle(),
			LibraryMissing: a.LibraryMissing,
		}
		code = dispatcher.Run(ctx, opts)
	}

	if code.IsSuccess() {
		return nil
	}
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return &ExitError{Code: code}
}

// handleError prints errors other than a bare exit status, which has
// already been reported by the resolver or the dispatcher.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
