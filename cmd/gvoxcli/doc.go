// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the gvox-cli command.
//
// The root command hands its raw arguments to the option resolver, so
// unknown options can be reported together instead of failing on the first
// one, and then runs the conversion through the gvox library.
package cmd
