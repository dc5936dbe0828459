// SPDX-License-Identifier: MPL-2.0

package ui

import "github.com/charmbracelet/lipgloss"

// Color palette, tuned for dark terminal backgrounds.
const (
	// ColorPrimary is purple - used for titles.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for subtitles and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorError is red.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for paths and format names.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for the program name in the help banner.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for the help banner description.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ErrorStyle is for the "[ERROR]" tag.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for the "[WARNING]" tag.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// LibraryStyle is for the "(gvox)" tag on library messages.
	LibraryStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// ErrorTag renders "[ERROR]".
func ErrorTag() string { return ErrorStyle.Render("[ERROR]") }

// WarningTag renders "[WARNING]".
func WarningTag() string { return WarningStyle.Render("[WARNING]") }

// LibraryTag renders "(gvox)".
func LibraryTag() string { return LibraryStyle.Render("(gvox)") }
