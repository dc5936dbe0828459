// SPDX-License-Identifier: MPL-2.0

package options

import (
	"io"
	"strings"

	"github.com/GabeRundlett/gvox-cli/pkg/gvox"

	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagInput        = "input"
	FlagInputFormat  = "input_fmt"
	FlagOutput       = "output"
	FlagOutputFormat = "output_fmt"
	FlagOutputRaw    = "output_raw"
	FlagVersion      = "version"
	FlagHelp         = "help"
	FlagVerbose      = "verbose"
	FlagConfig       = "config"
)

// Default paths used when -i/-o are not given.
const (
	DefaultInput  = "input"
	DefaultOutput = "output"
)

// flagAliases maps accepted alternative long names to canonical flag names.
var flagAliases = map[string]string{
	"input_format":  FlagInputFormat,
	"i_fmt":         FlagInputFormat,
	"output_format": FlagOutputFormat,
	"o_fmt":         FlagOutputFormat,
	"o_raw":         FlagOutputRaw,
}

// NewFlagSet returns the flag set understood by the resolver. The CLI host
// also attaches it to its command so help output lists the same flags.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("gvox-cli", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	fs.SetNormalizeFunc(normalizeFlagName)

	fs.StringP(FlagInput, "i", DefaultInput, "Input file")
	fs.String(FlagInputFormat, string(gvox.Wrapped), "Input file format")
	fs.StringP(FlagOutput, "o", DefaultOutput, "Output file")
	fs.String(FlagOutputFormat, string(gvox.DefaultOutput), "Output file format")
	fs.Bool(FlagOutputRaw, false, "Output the file without the gvox meta wrapper")
	fs.BoolP(FlagVersion, "v", false, "Print version")
	fs.BoolP(FlagHelp, "h", false, "Print usage")
	fs.Bool(FlagVerbose, false, "Log input probing and library calls")
	fs.String(FlagConfig, "", "Config file (default is <user config dir>/gvox-cli/config.cue)")

	return fs
}

func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		return pflag.NormalizedName(canonical)
	}
	return pflag.NormalizedName(name)
}

// UnknownTokens returns the arguments fs would not recognize, in order:
// unknown long flags (as written), unknown shorthands (as "-x"), and every
// positional argument, including those after "--". Values consumed by known
// flags are skipped.
func UnknownTokens(fs *pflag.FlagSet, args []string) []string {
	var unknown []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(unknown, args[i+1:]...)
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			f := fs.Lookup(name)
			if f == nil {
				unknown = append(unknown, arg)
				continue
			}
			if !hasValue && takesValue(f) {
				i++
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			shorts := arg[1:]
			for j := 0; j < len(shorts); j++ {
				f := fs.ShorthandLookup(shorts[j : j+1])
				if f == nil {
					unknown = append(unknown, "-"+shorts[j:j+1])
				}
				if j+1 < len(shorts) && shorts[j+1] == '=' {
					// -x=value: the rest of the cluster is the value.
					break
				}
				if f == nil {
					continue
				}
				if takesValue(f) {
					// The rest of the cluster is the value, or the next
					// argument when the cluster ends here.
					if j == len(shorts)-1 {
						i++
					}
					break
				}
			}
		default:
			unknown = append(unknown, arg)
		}
	}
	return unknown
}

// takesValue reports whether f consumes a value (bool switches do not).
func takesValue(f *pflag.Flag) bool {
	return f.NoOptDefVal == ""
}
