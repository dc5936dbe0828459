// SPDX-License-Identifier: MPL-2.0

package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/GabeRundlett/gvox-cli/internal/issue"
	"github.com/GabeRundlett/gvox-cli/internal/options"
	"github.com/GabeRundlett/gvox-cli/internal/ui"
	"github.com/GabeRundlett/gvox-cli/pkg/gvox"
	"github.com/GabeRundlett/gvox-cli/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// Dispatcher performs conversions on a gvox backend.
	Dispatcher struct {
		// Backend creates library contexts. Required.
		Backend gvox.Backend
		// Stderr receives library error reports. Defaults to os.Stderr.
		Stderr io.Writer
		// Logger receives debug records of library calls. Defaults to a
		// discarding logger.
		Logger *log.Logger
		// GuideStyle is the glamour style used for issue guides in verbose
		// mode.
		GuideStyle string
		// LibraryMissing marks a backend that cannot do any work; failures
		// then point at the library-unavailable guide.
		LibraryMissing bool
	}
)

// Run converts opts.InputPath to opts.OutputPath. The scene and the library
// context are released on every path. It returns ExitFailure after a load or
// save failure and ExitSuccess otherwise. A partially written output file is
// left in place.
func (d *Dispatcher) Run(ctx context.Context, opts *options.Resolved) types.ExitCode {
	if code, ok := opts.Exited(); ok {
		return code
	}

	gctx := gvox.NewContext(d.Backend)
	defer gctx.Close()

	logger := d.logger()

	var (
		scene *gvox.LoadedScene
		err   error
	)
	input := opts.InputPath.String()
	if opts.InputRaw {
		logger.Debug("load raw", "path", input, "format", opts.InputFormat)
		scene, err = gctx.LoadRaw(ctx, input, opts.InputFormat)
	} else {
		logger.Debug("load", "path", input)
		scene, err = gctx.Load(ctx, input)
	}
	defer scene.Close()
	if err != nil {
		d.report(err, opts.Verbose)
		return types.ExitFailure
	}

	output := opts.OutputPath.String()
	if opts.OutputRaw {
		logger.Debug("save raw", "path", output, "format", opts.OutputFormat)
		err = gctx.SaveRaw(ctx, scene, output, opts.OutputFormat)
	} else {
		logger.Debug("save", "path", output, "format", opts.OutputFormat)
		err = gctx.Save(ctx, scene, output, opts.OutputFormat)
	}
	if err != nil {
		d.report(err, opts.Verbose)
		return types.ExitFailure
	}

	logger.Debug("converted", "input", input, "output", output)
	return types.ExitSuccess
}

// report writes the error header and one line per queued library message.
func (d *Dispatcher) report(err error, verbose bool) {
	w := d.stderr()

	var gerr *gvox.Error
	if !errors.As(err, &gerr) {
		fmt.Fprintf(w, "%s %v\n", ui.ErrorTag(), err)
		return
	}

	verb := "loading"
	id := issue.SceneLoadFailedID
	if gerr.Op == gvox.OpSave {
		verb = "saving"
		id = issue.SceneSaveFailedID
	}
	fmt.Fprintf(w, "%s Internal gvox error while %s:\n", ui.ErrorTag(), verb)
	for _, msg := range gerr.Messages {
		fmt.Fprintf(w, "%s - %s\n", ui.LibraryTag(), msg)
	}

	if verbose {
		if d.LibraryMissing {
			id = issue.LibraryUnavailableID
		}
		issue.Explain(w, id, d.GuideStyle)
	}
}

func (d *Dispatcher) logger() *log.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return ui.Discard()
}

func (d *Dispatcher) stderr() io.Writer {
	if d.Stderr != nil {
		return d.Stderr
	}
	return os.Stderr
}
