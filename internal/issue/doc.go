// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of remediation
// guides for the failures gvox-cli reports.
//
// An ActionableError carries the failed operation, the path involved and
// suggestions. Each catalog Issue is a Markdown guide rendered with glamour;
// the CLI prints it under --verbose after the one-line error.
package issue
