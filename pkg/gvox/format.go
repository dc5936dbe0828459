// SPDX-License-Identifier: MPL-2.0

package gvox

const (
	// Wrapped is the self-describing container format. A wrapped file embeds
	// its own format identifier and loads without a format hint.
	Wrapped Format = "gvox"
	// DefaultOutput is the format written inside the wrapper when the user
	// does not pick one.
	DefaultOutput Format = "gvox_u32_palette"
	// MagicaVoxel is the MagicaVoxel .vox format.
	MagicaVoxel Format = "magicavoxel"
	// AceOfSpades is the Ace of Spades .vxl map format.
	AceOfSpades Format = "ace_of_spades"

	// WrappedExt is the file extension of wrapped files, without the dot.
	WrappedExt = "gvox"
)

// Format is a gvox format identifier such as "gvox_u32_palette" or
// "magicavoxel". The set of formats is owned by the library; gvox-cli never
// validates identifiers, it only passes them through.
type Format string

// String returns the format identifier.
func (f Format) String() string { return string(f) }

// IsWrapped reports whether f names the self-describing wrapper format.
func (f Format) IsWrapped() bool { return f == Wrapped }

// Extension returns the conventional file extension for f, without the dot.
// Formats with a well-known foreign extension map to it; every other format
// uses its own identifier as extension.
func (f Format) Extension() string {
	switch f {
	case MagicaVoxel:
		return "vox"
	case AceOfSpades:
		return "vxl"
	default:
		return string(f)
	}
}
