// SPDX-License-Identifier: MPL-2.0

// Package libgvox provides the gvox.Backend used by the gvox-cli binary.
//
// Built with the "gvox" build tag (and cgo enabled), New returns a binding to
// the native gvox library, linked with -lgvox. Without the tag, New returns a
// backend whose every load fails with a message explaining how to rebuild,
// so the CLI still resolves options and reports errors through the same
// error-queue path.
package libgvox
