// SPDX-License-Identifier: MPL-2.0

package options

import (
	"fmt"

	"github.com/GabeRundlett/gvox-cli/internal/issue"
	"github.com/GabeRundlett/gvox-cli/pkg/fspath"
	"github.com/GabeRundlett/gvox-cli/pkg/gvox"
	"github.com/GabeRundlett/gvox-cli/pkg/types"

	"github.com/spf13/afero"
	"golang.org/x/exp/slices"
)

// CandidateExtensions returns the extensions tried, in order, for an input
// path given without one. The wrapped extension is always last and the list
// holds no duplicates.
func CandidateExtensions(format gvox.Format) []string {
	candidates := []string{string(format)}
	switch format {
	case gvox.MagicaVoxel:
		candidates = append(candidates, gvox.MagicaVoxel.Extension())
	case gvox.AceOfSpades:
		candidates = append(candidates, gvox.AceOfSpades.Extension())
	}
	candidates = slices.DeleteFunc(candidates, func(ext string) bool { return ext == gvox.WrappedExt })
	return append(candidates, gvox.WrappedExt)
}

// resolveInput makes res.InputPath name an existing file. A path without an
// extension is completed by probing CandidateExtensions; a match other than
// the wrapped fallback switches to raw loading.
func (rs *resolution) resolveInput(res *Resolved) error {
	fsys := rs.fsys()
	literal := res.InputPath

	ok, err := fspath.Exists(fsys, literal)
	if err != nil {
		return err
	}
	rs.logger.Debug("check input", "path", literal, "exists", ok)
	if ok {
		return nil
	}
	if fspath.HasExt(literal) {
		return inputNotFoundError(literal, nil)
	}

	candidates := CandidateExtensions(res.InputFormat)
	for i, ext := range candidates {
		candidate := fspath.AppendExt(literal, ext)
		ok, err := fspath.Exists(fsys, candidate)
		if err != nil {
			return err
		}
		rs.logger.Debug("check input", "path", candidate, "exists", ok)
		if !ok {
			continue
		}
		res.InputPath = candidate
		if i < len(candidates)-1 {
			res.InputRaw = true
		}
		return nil
	}
	return inputNotFoundError(literal, candidates)
}

func inputNotFoundError(path types.FilesystemPath, tried []string) error {
	ec := issue.NewErrorContext().
		WithOperation("resolve input file").
		WithResource(string(path)).
		WithIssue(issue.InputFileNotFoundID).
		Wrap(ErrInputNotFound)
	if len(tried) > 0 {
		ec.WithSuggestion(fmt.Sprintf("Tried the extensions %v", tried))
	}
	return ec.
		WithSuggestion("Check the path passed with -i/--input").
		WithSuggestion("Pass the file name with its extension, or set --input_fmt to match it").
		BuildError()
}

// hasForeignExt reports whether p carries an extension other than the
// wrapped one.
func hasForeignExt(p types.FilesystemPath) bool {
	return fspath.HasExt(p) && fspath.ExtName(p) != gvox.WrappedExt
}

func (rs *resolution) fsys() afero.Fs {
	if rs.Fs != nil {
		return rs.Fs
	}
	return afero.NewOsFs()
}
