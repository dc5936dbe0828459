// SPDX-License-Identifier: MPL-2.0

// Package config loads the optional gvox-cli configuration file using Viper,
// with CUE as the primary file format and TOML as an alternative.
//
// The file only supplies defaults: the input and output formats, whether
// output is raw, and UI settings. Command-line flags always win. Files are
// looked up at --config, then <user config dir>/gvox-cli/config.cue, then
// <user config dir>/gvox-cli/config.toml, then ./gvox-cli.cue. A missing
// file is not an error. CUE files are validated against an embedded #Config
// schema before they reach Viper. Environment variables are not consulted.
package config
