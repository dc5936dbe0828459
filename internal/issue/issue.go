// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	UnknownOptionsID ID = iota + 1
	InputFileNotFoundID
	InternalFailureID
	SceneLoadFailedID
	SceneSaveFailedID
	ConfigLoadFailedID
	LibraryUnavailableID
)

const issuesURL = "https://github.com/GabeRundlett/gvox-cli/issues"

type (
	// ID identifies a catalog issue.
	ID int

	// MarkdownMsg is the Markdown body of a guide.
	MarkdownMsg string

	// HTTPLink is a reference printed under "See also".
	HTTPLink string

	// Issue is a remediation guide for one class of failure.
	Issue struct {
		id       ID
		mdMsg    MarkdownMsg
		docLinks []HTTPLink
	}
)

func (i *Issue) ID() ID {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HTTPLink {
	return slices.Clone(i.docLinks)
}

// Render renders the guide with the given glamour style ("auto", "dark",
// "light", "notty", or a path to a JSON style).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if links := i.DocLinks(); len(links) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range links {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	unknownOptionsIssue = &Issue{
		id: UnknownOptionsID,
		mdMsg: `
# Unknown options

gvox-cli does not take positional arguments, and only accepts the options
listed in the help text.

## Things you can try
- Pass the input file with ` + "`-i`" + ` and the output file with ` + "`-o`" + `:
~~~
$ gvox-cli -i castle.vox --input_fmt magicavoxel -o castle
~~~
- Use ` + "`--input_fmt`" + ` / ` + "`--output_fmt`" + ` rather than ` + "`--input-fmt`" + `.`,
	}

	inputFileNotFoundIssue = &Issue{
		id: InputFileNotFoundID,
		mdMsg: `
# Input file not found

When the input path has no extension, gvox-cli tries, in order:
1. ` + "`<input>.<input_fmt>`" + `
2. ` + "`<input>.vox`" + ` when the input format is ` + "`magicavoxel`" + `
3. ` + "`<input>.vxl`" + ` when the input format is ` + "`ace_of_spades`" + `
4. ` + "`<input>.gvox`" + `

A path given with an extension is used as-is.

## Things you can try
- Check the spelling and the working directory
- Set ` + "`--input_fmt`" + ` so the matching extension is tried`,
	}

	internalFailureIssue = &Issue{
		id: InternalFailureID,
		mdMsg: `
# Unexpected failure

Option handling failed in a way that should not happen.

## Please report it
Include the exact command line you ran.`,
		docLinks: []HTTPLink{issuesURL},
	}

	sceneLoadFailedIssue = &Issue{
		id: SceneLoadFailedID,
		mdMsg: `
# The gvox library could not load the scene

The messages above come from the gvox library.

## Things you can try
- For files without the gvox wrapper, pass the format explicitly:
~~~
$ gvox-cli -i scene.vox --input_fmt magicavoxel
~~~
- Make sure the file is not truncated or still being written`,
	}

	sceneSaveFailedIssue = &Issue{
		id: SceneSaveFailedID,
		mdMsg: `
# The gvox library could not save the scene

The messages above come from the gvox library.

## Things you can try
- Check that ` + "`--output_fmt`" + ` names a format the library can write
- Check that the output directory exists and is writable
- A partially written output file may be left behind`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedID,
		mdMsg: `
# Configuration could not be loaded

Built-in defaults are used instead.

## Things you can try
- Run with ` + "`--verbose`" + ` to print a valid configuration with the
  built-in defaults
- Pass ` + "`--config`" + ` to use a different file`,
	}

	libraryUnavailableIssue = &Issue{
		id: LibraryUnavailableID,
		mdMsg: `
# Native gvox library not linked

This binary was built without the gvox library, so it cannot read or write
scenes.

## Rebuild with the library
~~~
$ CGO_ENABLED=1 go build -tags gvox .
~~~`,
	}

	// catalog is ordered by ID.
	catalog = []*Issue{
		unknownOptionsIssue,
		inputFileNotFoundIssue,
		internalFailureIssue,
		sceneLoadFailedIssue,
		sceneSaveFailedIssue,
		configLoadFailedIssue,
		libraryUnavailableIssue,
	}
)

// Get returns the issue for id, or nil.
func Get(id ID) *Issue {
	idx := slices.IndexFunc(catalog, func(i *Issue) bool { return i.id == id })
	if idx < 0 {
		return nil
	}
	return catalog[idx]
}
