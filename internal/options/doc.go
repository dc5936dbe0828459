// SPDX-License-Identifier: MPL-2.0

// Package options turns gvox-cli's argument vector into a Resolved value:
// which file to read and how, and which file to write and how.
//
// Resolution parses flags (collecting unknown ones instead of failing),
// handles help and version, applies configuration defaults to flags the user
// left unset, finds the input file by probing candidate extensions, and
// builds the output path. All user-facing messages of these steps are written
// by the Resolver itself; callers only look at Resolved.ExitNow.
package options
