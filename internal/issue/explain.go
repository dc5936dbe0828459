// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"io"
)

// Explain writes the rendered guide for id to w. When rendering fails the
// raw Markdown is written instead. Unknown IDs write nothing.
func Explain(w io.Writer, id ID, stylePath string) {
	i := Get(id)
	if i == nil {
		return
	}
	out, err := i.Render(stylePath)
	if err != nil {
		out = string(i.MarkdownMsg())
	}
	fmt.Fprintln(w, out)
}

// IssueOf returns the catalog ID attached to the first ActionableError in
// err's chain, or 0.
func IssueOf(err error) ID {
	var ae *ActionableError
	if errors.As(err, &ae) {
		return ae.Issue
	}
	return 0
}
