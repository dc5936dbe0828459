// SPDX-License-Identifier: MPL-2.0

// Package types defines small value types shared by the resolver, the
// dispatcher and the CLI host.
//
// This package is a leaf dependency: it imports only the standard library.
package types
